package http

import (
	"encoding/json"
	"time"

	"github.com/lsfhq/resource-booking-backend/internal/booking"
)

// BookingResponse is the JSON shape of a booking.
type BookingResponse struct {
	ID              string          `json:"id"`
	ResourceID      string          `json:"resourceId"`
	UserID          string          `json:"userId"`
	Start           time.Time       `json:"start"`
	End             time.Time       `json:"end"`
	Status          string          `json:"status"`
	CreatedAt       time.Time       `json:"createdAt"`
	RejectionReason *string         `json:"rejectionReason,omitempty"`
	Details         json.RawMessage `json:"details,omitempty"`
}

func NewBookingResponse(b *booking.Booking) BookingResponse {
	return BookingResponse{
		ID:              b.ID,
		ResourceID:      b.ResourceID,
		UserID:          b.UserID,
		Start:           b.Start,
		End:             b.End,
		Status:          string(b.Status),
		CreatedAt:       b.CreatedAt,
		RejectionReason: b.RejectionReason,
		Details:         b.Details,
	}
}

// CreateBookingBody is the payload for POST /bookings. UserID is optional and
// defaults to the authenticated user; only admins may book on behalf of others.
type CreateBookingBody struct {
	ResourceID string          `json:"resourceId" binding:"required"`
	UserID     string          `json:"userId"`
	Start      time.Time       `json:"start" binding:"required"`
	End        time.Time       `json:"end" binding:"required"`
	Details    json.RawMessage `json:"details"`
}

// ProcessBookingBody is the payload for POST /bookings/:id/process.
type ProcessBookingBody struct {
	Status          string `json:"status" binding:"required"`
	RejectionReason string `json:"rejectionReason"`
}

// RescheduleBookingBody is the payload for POST /bookings/:id/reschedule.
type RescheduleBookingBody struct {
	Start time.Time `json:"start" binding:"required"`
	End   time.Time `json:"end" binding:"required"`
}
