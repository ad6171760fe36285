package holiday

import (
	"net/http"

	"github.com/lsfhq/resource-booking-backend/internal/pkg/apperror"
)

var ErrUpstream = apperror.New(http.StatusBadGateway, "failed to fetch holidays")

// Holiday is a public holiday taken from the configured ICS feed.
type Holiday struct {
	Date        string `json:"date"` // YYYY-MM-DD
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}
