package resource

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/lsfhq/resource-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound        = apperror.New(http.StatusNotFound, "resource not found")
	ErrEmptyName       = apperror.New(http.StatusBadRequest, "name cannot be empty")
	ErrNegativeLead    = apperror.New(http.StatusBadRequest, "minimum lead time cannot be negative")
	ErrEmptyType       = apperror.New(http.StatusBadRequest, "type cannot be empty")
)

// Resource represents a bookable unit (room, vehicle, device, parking spot).
// Specs and FormFields are presentation data consumed by the UI; the engine
// stores them opaquely and never inspects their contents.
type Resource struct {
	ID               string
	Name             string
	Type             string
	Description      string
	IsActive         bool
	MinLeadTimeHours int
	Icon             string
	Color            string
	Specs            json.RawMessage
	FormFields       json.RawMessage
	CreatedAt        time.Time
}
