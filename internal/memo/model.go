package memo

import (
	"net/http"
	"time"

	"github.com/lsfhq/resource-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound          = apperror.New(http.StatusNotFound, "memo not found")
	ErrContentRequired   = apperror.New(http.StatusBadRequest, "content is required")
	ErrInvalidTTL        = apperror.New(http.StatusBadRequest, "ttl must be at least 1 day if specified")
	ErrRecipientUnknown  = apperror.New(http.StatusNotFound, "recipient email not found")
	ErrPermissionDenied  = apperror.New(http.StatusForbidden, "permission denied")
)

// BroadcastRecipient addresses a memo to every user.
const BroadcastRecipient = "broadcast"

// DefaultTTLDays is the memo retention period when the sender does not set one.
const DefaultTTLDays = 7

// Memo is a short message sent to one user by email, or broadcast to all.
// Memos expire after their TTL and stop being listed.
type Memo struct {
	ID        string
	SenderID  string
	Recipient string // recipient email, or BroadcastRecipient
	Content   string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Expired reports whether the memo's retention period has passed at t.
func (m *Memo) Expired(t time.Time) bool {
	return t.After(m.ExpiresAt)
}
