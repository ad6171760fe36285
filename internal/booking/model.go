package booking

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/lsfhq/resource-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound         = apperror.New(http.StatusNotFound, "booking not found")
	ErrResourceNotFound = apperror.New(http.StatusNotFound, "resource not found")
	ErrTimeConflict     = apperror.New(http.StatusConflict, "time slot already booked")
	ErrInvalidInterval  = apperror.New(http.StatusBadRequest, "end time must be after start time")
	ErrLeadTime         = apperror.New(http.StatusBadRequest, "booking starts sooner than the resource's minimum lead time")
	ErrInvalidStatus    = apperror.New(http.StatusBadRequest, "invalid booking status")
	ErrPermissionDenied = apperror.New(http.StatusForbidden, "permission denied")
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusRejected  Status = "rejected"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
	StatusCheckedIn Status = "checked_in"
	StatusProposed  Status = "proposed"
)

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusRejected, StatusCancelled,
		StatusCompleted, StatusCheckedIn, StatusProposed:
		return true
	}
	return false
}

// Blocking reports whether a booking in this status occupies its interval for
// conflict purposes. Cancelled and rejected bookings free their slot.
func (s Status) Blocking() bool {
	return s != StatusCancelled && s != StatusRejected
}

// Booking is a reservation of one resource by one user for the half-open
// interval [Start, End). Details is an opaque mapping from the resource's
// form field ids to the booker's answers.
type Booking struct {
	ID              string
	ResourceID      string
	UserID          string
	Start           time.Time
	End             time.Time
	Status          Status
	CreatedAt       time.Time
	RejectionReason *string
	Details         json.RawMessage
}

// Overlaps reports whether the booking's interval overlaps [start, end).
// Touching intervals (End == start) do not overlap.
func (b *Booking) Overlaps(start, end time.Time) bool {
	return start.Before(b.End) && end.After(b.Start)
}

// Filter defines parameters for listing bookings.
type Filter struct {
	ResourceID string
	UserID     string
	Status     string
}

// ResourceStat is one row of the utilization report.
type ResourceStat struct {
	ResourceID      string `json:"resourceId"`
	ResourceName    string `json:"resourceName"`
	ResourceType    string `json:"resourceType"`
	BookingCount    int    `json:"bookingCount"`
	TotalHours      int    `json:"totalHours"`
	UtilizationRate int    `json:"utilizationRate"`
}
