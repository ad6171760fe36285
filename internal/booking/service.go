package booking

import (
	"context"
	"encoding/json"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/lsfhq/resource-booking-backend/internal/resource"
	"github.com/lsfhq/resource-booking-backend/internal/user"
)

// CreateRequest carries the fields for a new booking.
type CreateRequest struct {
	ResourceID string
	UserID     string
	Start      time.Time
	End        time.Time
	Details    json.RawMessage
}

// Actor identifies who is performing a mutation, for permission checks.
type Actor struct {
	UserID  string
	IsAdmin bool
}

type Service interface {
	// Create validates the interval and lead time, checks for conflicts, and
	// appends a new booking. Admin creators get confirmed immediately; regular
	// users start out pending.
	Create(ctx context.Context, req CreateRequest) (*Booking, error)
	GetByID(ctx context.Context, id string) (*Booking, error)
	List(ctx context.Context, filter Filter) ([]*Booking, error)
	// Process moves a booking to newStatus. Confirming a pending or proposed
	// booking re-runs the conflict check so two overlapping pending bookings
	// cannot both be approved. An optional reason is stored on rejection.
	Process(ctx context.Context, id string, newStatus Status, reason string, actor Actor) (*Booking, error)
	// Reschedule moves a booking to a new interval and marks it proposed,
	// awaiting the owner's acceptance. On conflict the booking is untouched.
	Reschedule(ctx context.Context, id string, start, end time.Time, actor Actor) (*Booking, error)
	// Cancel soft-deletes a booking. Cancelling twice is not an error.
	Cancel(ctx context.Context, id string, actor Actor) (*Booking, error)
	// UtilizationStats reports per-resource confirmed hours against the
	// configured monthly capacity, in resource insertion order.
	UtilizationStats(ctx context.Context) ([]ResourceStat, error)
}

type service struct {
	// mu is the single-writer boundary around check-then-act mutations:
	// conflict checks and the writes they guard must not interleave.
	mu sync.Mutex

	repo          Repository
	resService    resource.Service
	userService   user.Service
	capacityHours int
}

// NewService creates a booking Service. capacityHours is the assumed monthly
// bookable capacity per resource used by the utilization report.
func NewService(repo Repository, resService resource.Service, userService user.Service, capacityHours int) Service {
	if capacityHours <= 0 {
		capacityHours = 160
	}
	return &service{
		repo:          repo,
		resService:    resService,
		userService:   userService,
		capacityHours: capacityHours,
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Booking, error) {
	if !req.Start.Before(req.End) {
		return nil, ErrInvalidInterval
	}

	res, err := s.resService.GetByID(ctx, req.ResourceID)
	if err != nil {
		return nil, ErrResourceNotFound
	}

	if res.MinLeadTimeHours > 0 {
		earliest := time.Now().UTC().Add(time.Duration(res.MinLeadTimeHours) * time.Hour)
		if req.Start.Before(earliest) {
			return nil, ErrLeadTime
		}
	}

	u, err := s.userService.GetByID(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	// Admin bookings skip approval.
	status := StatusPending
	if u.IsAdmin() {
		status = StatusConfirmed
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	conflict, err := s.repo.HasOverlap(ctx, req.ResourceID, req.Start, req.End, "")
	if err != nil {
		return nil, err
	}
	if conflict {
		return nil, ErrTimeConflict
	}

	b := &Booking{
		ID:         uuid.New().String(),
		ResourceID: req.ResourceID,
		UserID:     req.UserID,
		Start:      req.Start,
		End:        req.End,
		Status:     status,
		CreatedAt:  time.Now().UTC(),
		Details:    req.Details,
	}

	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Booking, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Booking, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Process(ctx context.Context, id string, newStatus Status, reason string, actor Actor) (*Booking, error) {
	if !newStatus.Valid() {
		return nil, ErrInvalidStatus
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Admins may process any booking; the owner may only accept a proposed
	// time slot.
	ownerAccepting := actor.UserID == b.UserID && b.Status == StatusProposed && newStatus == StatusConfirmed
	if !actor.IsAdmin && !ownerAccepting {
		return nil, ErrPermissionDenied
	}

	// Re-validate at confirmation time: two overlapping pending bookings must
	// not both end up confirmed.
	if newStatus == StatusConfirmed && (b.Status == StatusPending || b.Status == StatusProposed) {
		conflict, err := s.repo.HasOverlap(ctx, b.ResourceID, b.Start, b.End, b.ID)
		if err != nil {
			return nil, err
		}
		if conflict {
			return nil, ErrTimeConflict
		}
	}

	b.Status = newStatus
	if reason != "" {
		b.RejectionReason = &reason
	}

	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *service) Reschedule(ctx context.Context, id string, start, end time.Time, actor Actor) (*Booking, error) {
	if !start.Before(end) {
		return nil, ErrInvalidInterval
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !actor.IsAdmin && actor.UserID != b.UserID {
		return nil, ErrPermissionDenied
	}

	conflict, err := s.repo.HasOverlap(ctx, b.ResourceID, start, end, b.ID)
	if err != nil {
		return nil, err
	}
	if conflict {
		return nil, ErrTimeConflict
	}

	b.Start = start
	b.End = end
	b.Status = StatusProposed // Awaits the owner's acceptance.

	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *service) Cancel(ctx context.Context, id string, actor Actor) (*Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !actor.IsAdmin && actor.UserID != b.UserID {
		return nil, ErrPermissionDenied
	}

	b.Status = StatusCancelled
	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *service) UtilizationStats(ctx context.Context) ([]ResourceStat, error) {
	resources, err := s.resService.List(ctx)
	if err != nil {
		return nil, err
	}

	bookings, err := s.repo.List(ctx, Filter{Status: string(StatusConfirmed)})
	if err != nil {
		return nil, err
	}

	byResource := make(map[string][]*Booking)
	for _, b := range bookings {
		byResource[b.ResourceID] = append(byResource[b.ResourceID], b)
	}

	stats := make([]ResourceStat, 0, len(resources))
	for _, res := range resources {
		var total time.Duration
		for _, b := range byResource[res.ID] {
			total += b.End.Sub(b.Start)
		}

		totalHours := int(math.Round(total.Hours()))
		rate := int(math.Round(float64(totalHours) / float64(s.capacityHours) * 100))
		if rate > 100 {
			rate = 100
		}

		stats = append(stats, ResourceStat{
			ResourceID:      res.ID,
			ResourceName:    res.Name,
			ResourceType:    res.Type,
			BookingCount:    len(byResource[res.ID]),
			TotalHours:      totalHours,
			UtilizationRate: rate,
		})
	}
	return stats, nil
}
