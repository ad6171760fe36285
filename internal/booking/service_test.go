package booking_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lsfhq/resource-booking-backend/internal/booking"
	"github.com/lsfhq/resource-booking-backend/internal/resource"
	"github.com/lsfhq/resource-booking-backend/internal/user"
)

type fixture struct {
	bookings  booking.Service
	resources resource.Service
	users     user.Service

	admin   *user.User
	member  *user.User
	member2 *user.User
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()

	userService := user.NewService(user.NewMemoryRepository(), []string{"admin@corp.test"})
	resourceService := resource.NewService(resource.NewMemoryRepository())
	bookingService := booking.NewService(booking.NewMemoryRepository(), resourceService, userService, 160)

	admin, err := userService.GetOrProvision(ctx, "admin@corp.test")
	require.NoError(t, err)
	member, err := userService.GetOrProvision(ctx, "alice@corp.test")
	require.NoError(t, err)
	member2, err := userService.GetOrProvision(ctx, "bob@corp.test")
	require.NoError(t, err)

	return &fixture{
		bookings:  bookingService,
		resources: resourceService,
		users:     userService,
		admin:     admin,
		member:    member,
		member2:   member2,
	}
}

func (f *fixture) createResource(t *testing.T, name string, leadHours int) *resource.Resource {
	t.Helper()
	res, err := f.resources.Create(context.Background(), resource.CreateRequest{
		Name:             name,
		Type:             "room",
		MinLeadTimeHours: leadHours,
	})
	require.NoError(t, err)
	return res
}

// slot returns a future interval so lead-time checks never interfere.
func slot(dayOffset, startHour, endHour int) (time.Time, time.Time) {
	base := time.Now().UTC().AddDate(0, 0, 7+dayOffset).Truncate(24 * time.Hour)
	return base.Add(time.Duration(startHour) * time.Hour), base.Add(time.Duration(endHour) * time.Hour)
}

func TestBookingCreate(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	res := f.createResource(t, "Room A", 0)

	t.Run("Create: regular user starts pending", func(t *testing.T) {
		start, end := slot(0, 9, 11)
		b, err := f.bookings.Create(ctx, booking.CreateRequest{
			ResourceID: res.ID, UserID: f.member.ID, Start: start, End: end,
		})
		require.NoError(t, err)
		assert.NotEmpty(t, b.ID)
		assert.Equal(t, booking.StatusPending, b.Status)
		assert.Equal(t, f.member.ID, b.UserID)
	})

	t.Run("Create: admin is confirmed immediately", func(t *testing.T) {
		start, end := slot(1, 9, 11)
		b, err := f.bookings.Create(ctx, booking.CreateRequest{
			ResourceID: res.ID, UserID: f.admin.ID, Start: start, End: end,
		})
		require.NoError(t, err)
		assert.Equal(t, booking.StatusConfirmed, b.Status)
	})

	t.Run("Create: end must be after start", func(t *testing.T) {
		start, _ := slot(2, 9, 11)
		_, err := f.bookings.Create(ctx, booking.CreateRequest{
			ResourceID: res.ID, UserID: f.member.ID, Start: start, End: start,
		})
		assert.ErrorIs(t, err, booking.ErrInvalidInterval)

		_, err = f.bookings.Create(ctx, booking.CreateRequest{
			ResourceID: res.ID, UserID: f.member.ID, Start: start, End: start.Add(-time.Hour),
		})
		assert.ErrorIs(t, err, booking.ErrInvalidInterval)
	})

	t.Run("Create: unknown resource", func(t *testing.T) {
		start, end := slot(2, 9, 11)
		_, err := f.bookings.Create(ctx, booking.CreateRequest{
			ResourceID: "nope", UserID: f.member.ID, Start: start, End: end,
		})
		assert.ErrorIs(t, err, booking.ErrResourceNotFound)
	})

	t.Run("Create: minimum lead time enforced", func(t *testing.T) {
		guarded := f.createResource(t, "Telescope", 48)

		_, err := f.bookings.Create(ctx, booking.CreateRequest{
			ResourceID: guarded.ID,
			UserID:     f.member.ID,
			Start:      time.Now().UTC().Add(2 * time.Hour),
			End:        time.Now().UTC().Add(4 * time.Hour),
		})
		assert.ErrorIs(t, err, booking.ErrLeadTime)

		start, end := slot(3, 9, 11)
		_, err = f.bookings.Create(ctx, booking.CreateRequest{
			ResourceID: guarded.ID, UserID: f.member.ID, Start: start, End: end,
		})
		assert.NoError(t, err)
	})
}

func TestBookingConflicts(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	res := f.createResource(t, "Room A", 0)

	start, end := slot(0, 10, 12)
	first, err := f.bookings.Create(ctx, booking.CreateRequest{
		ResourceID: res.ID, UserID: f.member.ID, Start: start, End: end,
	})
	require.NoError(t, err)

	t.Run("Conflict: overlapping interval rejected", func(t *testing.T) {
		_, err := f.bookings.Create(ctx, booking.CreateRequest{
			ResourceID: res.ID, UserID: f.member2.ID,
			Start: start.Add(time.Hour), End: end.Add(time.Hour),
		})
		assert.ErrorIs(t, err, booking.ErrTimeConflict)
	})

	t.Run("Conflict: containing interval rejected", func(t *testing.T) {
		_, err := f.bookings.Create(ctx, booking.CreateRequest{
			ResourceID: res.ID, UserID: f.member2.ID,
			Start: start.Add(-time.Hour), End: end.Add(time.Hour),
		})
		assert.ErrorIs(t, err, booking.ErrTimeConflict)
	})

	t.Run("Conflict: touching intervals do not overlap", func(t *testing.T) {
		before, err := f.bookings.Create(ctx, booking.CreateRequest{
			ResourceID: res.ID, UserID: f.member2.ID,
			Start: start.Add(-2 * time.Hour), End: start,
		})
		require.NoError(t, err)
		assert.Equal(t, start, before.End)

		_, err = f.bookings.Create(ctx, booking.CreateRequest{
			ResourceID: res.ID, UserID: f.member2.ID,
			Start: end, End: end.Add(2 * time.Hour),
		})
		assert.NoError(t, err)
	})

	t.Run("Conflict: other resources are unaffected", func(t *testing.T) {
		other := f.createResource(t, "Room B", 0)
		_, err := f.bookings.Create(ctx, booking.CreateRequest{
			ResourceID: other.ID, UserID: f.member2.ID, Start: start, End: end,
		})
		assert.NoError(t, err)
	})

	t.Run("Conflict: cancelled booking frees its slot", func(t *testing.T) {
		_, err := f.bookings.Cancel(ctx, first.ID, booking.Actor{UserID: f.member.ID})
		require.NoError(t, err)

		_, err = f.bookings.Create(ctx, booking.CreateRequest{
			ResourceID: res.ID, UserID: f.member2.ID, Start: start, End: end,
		})
		assert.NoError(t, err)
	})
}

func TestBookingProcess(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	res := f.createResource(t, "Room A", 0)
	adminActor := booking.Actor{UserID: f.admin.ID, IsAdmin: true}

	t.Run("Process: admin confirms a pending booking", func(t *testing.T) {
		start, end := slot(0, 9, 11)
		b, err := f.bookings.Create(ctx, booking.CreateRequest{
			ResourceID: res.ID, UserID: f.member.ID, Start: start, End: end,
		})
		require.NoError(t, err)

		got, err := f.bookings.Process(ctx, b.ID, booking.StatusConfirmed, "", adminActor)
		require.NoError(t, err)
		assert.Equal(t, booking.StatusConfirmed, got.Status)
	})

	t.Run("Process: rejection stores the reason and frees the slot", func(t *testing.T) {
		start, end := slot(1, 9, 11)
		b, err := f.bookings.Create(ctx, booking.CreateRequest{
			ResourceID: res.ID, UserID: f.member.ID, Start: start, End: end,
		})
		require.NoError(t, err)

		got, err := f.bookings.Process(ctx, b.ID, booking.StatusRejected, "maintenance window", adminActor)
		require.NoError(t, err)
		assert.Equal(t, booking.StatusRejected, got.Status)
		require.NotNil(t, got.RejectionReason)
		assert.Equal(t, "maintenance window", *got.RejectionReason)

		_, err = f.bookings.Create(ctx, booking.CreateRequest{
			ResourceID: res.ID, UserID: f.member2.ID, Start: start, End: end,
		})
		assert.NoError(t, err)
	})

	t.Run("Process: confirmation re-checks the slot", func(t *testing.T) {
		// Seed the competing booking through the repository so the
		// create-time conflict check does not get in the way.
		repo := booking.NewMemoryRepository()
		svc := booking.NewService(repo, f.resources, f.users, 160)
		start, end := slot(2, 9, 11)

		a, err := svc.Create(ctx, booking.CreateRequest{
			ResourceID: res.ID, UserID: f.member.ID, Start: start, End: end,
		})
		require.NoError(t, err)

		competing := &booking.Booking{
			ID: "competing", ResourceID: res.ID, UserID: f.member2.ID,
			Start: start.Add(time.Hour), End: end.Add(time.Hour),
			Status: booking.StatusConfirmed, CreatedAt: time.Now().UTC(),
		}
		require.NoError(t, repo.Create(ctx, competing))

		_, err = svc.Process(ctx, a.ID, booking.StatusConfirmed, "", adminActor)
		assert.ErrorIs(t, err, booking.ErrTimeConflict)

		got, err := svc.GetByID(ctx, a.ID)
		require.NoError(t, err)
		assert.Equal(t, booking.StatusPending, got.Status)
	})

	t.Run("Process: regular user cannot approve bookings", func(t *testing.T) {
		start, end := slot(3, 9, 11)
		b, err := f.bookings.Create(ctx, booking.CreateRequest{
			ResourceID: res.ID, UserID: f.member.ID, Start: start, End: end,
		})
		require.NoError(t, err)

		_, err = f.bookings.Process(ctx, b.ID, booking.StatusConfirmed, "", booking.Actor{UserID: f.member.ID})
		assert.ErrorIs(t, err, booking.ErrPermissionDenied)
	})

	t.Run("Process: unknown status rejected", func(t *testing.T) {
		start, end := slot(4, 9, 11)
		b, err := f.bookings.Create(ctx, booking.CreateRequest{
			ResourceID: res.ID, UserID: f.member.ID, Start: start, End: end,
		})
		require.NoError(t, err)

		_, err = f.bookings.Process(ctx, b.ID, booking.Status("approved"), "", adminActor)
		assert.ErrorIs(t, err, booking.ErrInvalidStatus)
	})

	t.Run("Process: admin marks attendance lifecycle", func(t *testing.T) {
		start, end := slot(5, 9, 11)
		b, err := f.bookings.Create(ctx, booking.CreateRequest{
			ResourceID: res.ID, UserID: f.admin.ID, Start: start, End: end,
		})
		require.NoError(t, err)

		got, err := f.bookings.Process(ctx, b.ID, booking.StatusCheckedIn, "", adminActor)
		require.NoError(t, err)
		assert.Equal(t, booking.StatusCheckedIn, got.Status)

		got, err = f.bookings.Process(ctx, b.ID, booking.StatusCompleted, "", adminActor)
		require.NoError(t, err)
		assert.Equal(t, booking.StatusCompleted, got.Status)
	})

	t.Run("Process: unknown booking", func(t *testing.T) {
		_, err := f.bookings.Process(ctx, "nope", booking.StatusConfirmed, "", adminActor)
		assert.ErrorIs(t, err, booking.ErrNotFound)
	})
}

func TestBookingReschedule(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	res := f.createResource(t, "Room A", 0)
	adminActor := booking.Actor{UserID: f.admin.ID, IsAdmin: true}

	t.Run("Reschedule: moves the interval and proposes", func(t *testing.T) {
		start, end := slot(0, 9, 11)
		b, err := f.bookings.Create(ctx, booking.CreateRequest{
			ResourceID: res.ID, UserID: f.member.ID, Start: start, End: end,
		})
		require.NoError(t, err)

		newStart, newEnd := slot(0, 14, 16)
		got, err := f.bookings.Reschedule(ctx, b.ID, newStart, newEnd, adminActor)
		require.NoError(t, err)
		assert.Equal(t, newStart, got.Start)
		assert.Equal(t, newEnd, got.End)
		assert.Equal(t, booking.StatusProposed, got.Status)

		// Owner accepts the proposed slot.
		got, err = f.bookings.Process(ctx, b.ID, booking.StatusConfirmed, "", booking.Actor{UserID: f.member.ID})
		require.NoError(t, err)
		assert.Equal(t, booking.StatusConfirmed, got.Status)
	})

	t.Run("Reschedule: conflicting target leaves the booking untouched", func(t *testing.T) {
		startA, endA := slot(1, 9, 11)
		_, err := f.bookings.Create(ctx, booking.CreateRequest{
			ResourceID: res.ID, UserID: f.member2.ID, Start: startA, End: endA,
		})
		require.NoError(t, err)

		startB, endB := slot(1, 14, 16)
		b, err := f.bookings.Create(ctx, booking.CreateRequest{
			ResourceID: res.ID, UserID: f.member.ID, Start: startB, End: endB,
		})
		require.NoError(t, err)

		_, err = f.bookings.Reschedule(ctx, b.ID, startA, endA, adminActor)
		assert.ErrorIs(t, err, booking.ErrTimeConflict)

		got, err := f.bookings.GetByID(ctx, b.ID)
		require.NoError(t, err)
		assert.Equal(t, startB, got.Start)
		assert.Equal(t, endB, got.End)
		assert.Equal(t, booking.StatusPending, got.Status)
	})

	t.Run("Reschedule: rescheduling onto itself is not a conflict", func(t *testing.T) {
		start, end := slot(2, 9, 11)
		b, err := f.bookings.Create(ctx, booking.CreateRequest{
			ResourceID: res.ID, UserID: f.member.ID, Start: start, End: end,
		})
		require.NoError(t, err)

		got, err := f.bookings.Reschedule(ctx, b.ID, start, end.Add(time.Hour), adminActor)
		require.NoError(t, err)
		assert.Equal(t, booking.StatusProposed, got.Status)
	})

	t.Run("Reschedule: stranger denied", func(t *testing.T) {
		start, end := slot(3, 9, 11)
		b, err := f.bookings.Create(ctx, booking.CreateRequest{
			ResourceID: res.ID, UserID: f.member.ID, Start: start, End: end,
		})
		require.NoError(t, err)

		_, err = f.bookings.Reschedule(ctx, b.ID, start.Add(time.Hour), end.Add(time.Hour), booking.Actor{UserID: f.member2.ID})
		assert.ErrorIs(t, err, booking.ErrPermissionDenied)
	})

	t.Run("Reschedule: invalid interval", func(t *testing.T) {
		start, end := slot(4, 9, 11)
		b, err := f.bookings.Create(ctx, booking.CreateRequest{
			ResourceID: res.ID, UserID: f.member.ID, Start: start, End: end,
		})
		require.NoError(t, err)

		_, err = f.bookings.Reschedule(ctx, b.ID, end, start, adminActor)
		assert.ErrorIs(t, err, booking.ErrInvalidInterval)
	})
}

func TestBookingCancel(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	res := f.createResource(t, "Room A", 0)

	start, end := slot(0, 9, 11)
	b, err := f.bookings.Create(ctx, booking.CreateRequest{
		ResourceID: res.ID, UserID: f.member.ID, Start: start, End: end,
	})
	require.NoError(t, err)

	t.Run("Cancel: stranger denied", func(t *testing.T) {
		_, err := f.bookings.Cancel(ctx, b.ID, booking.Actor{UserID: f.member2.ID})
		assert.ErrorIs(t, err, booking.ErrPermissionDenied)
	})

	t.Run("Cancel: owner cancels", func(t *testing.T) {
		got, err := f.bookings.Cancel(ctx, b.ID, booking.Actor{UserID: f.member.ID})
		require.NoError(t, err)
		assert.Equal(t, booking.StatusCancelled, got.Status)
	})

	t.Run("Cancel: cancelling twice stays cancelled", func(t *testing.T) {
		got, err := f.bookings.Cancel(ctx, b.ID, booking.Actor{UserID: f.member.ID})
		require.NoError(t, err)
		assert.Equal(t, booking.StatusCancelled, got.Status)
	})

	t.Run("Cancel: unknown booking", func(t *testing.T) {
		_, err := f.bookings.Cancel(ctx, "nope", booking.Actor{UserID: f.member.ID})
		assert.ErrorIs(t, err, booking.ErrNotFound)
	})
}

func TestBookingList(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	resA := f.createResource(t, "Room A", 0)
	resB := f.createResource(t, "Room B", 0)

	s1, e1 := slot(0, 9, 11)
	s2, e2 := slot(0, 12, 14)

	b1, err := f.bookings.Create(ctx, booking.CreateRequest{ResourceID: resA.ID, UserID: f.member.ID, Start: s1, End: e1})
	require.NoError(t, err)
	_, err = f.bookings.Create(ctx, booking.CreateRequest{ResourceID: resA.ID, UserID: f.member2.ID, Start: s2, End: e2})
	require.NoError(t, err)
	_, err = f.bookings.Create(ctx, booking.CreateRequest{ResourceID: resB.ID, UserID: f.admin.ID, Start: s1, End: e1})
	require.NoError(t, err)

	t.Run("List: by resource", func(t *testing.T) {
		got, err := f.bookings.List(ctx, booking.Filter{ResourceID: resA.ID})
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("List: by user", func(t *testing.T) {
		got, err := f.bookings.List(ctx, booking.Filter{UserID: f.member.ID})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, b1.ID, got[0].ID)
	})

	t.Run("List: by status", func(t *testing.T) {
		got, err := f.bookings.List(ctx, booking.Filter{Status: string(booking.StatusConfirmed)})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, f.admin.ID, got[0].UserID)
	})

	t.Run("List: no filter returns everything", func(t *testing.T) {
		got, err := f.bookings.List(ctx, booking.Filter{})
		require.NoError(t, err)
		assert.Len(t, got, 3)
	})
}

func TestUtilizationStats(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	resA := f.createResource(t, "Room A", 0)
	resB := f.createResource(t, "Room B", 0)

	t.Run("Stats: resources with no bookings report zero", func(t *testing.T) {
		stats, err := f.bookings.UtilizationStats(ctx)
		require.NoError(t, err)
		require.Len(t, stats, 2)
		assert.Equal(t, 0, stats[0].TotalHours)
		assert.Equal(t, 0, stats[0].UtilizationRate)
		assert.Equal(t, 0, stats[0].BookingCount)
	})

	s1, e1 := slot(0, 9, 11)  // 2h
	s2, e2 := slot(1, 9, 12)  // 3h
	s3, e3 := slot(2, 9, 13)  // 4h, stays pending

	_, err := f.bookings.Create(ctx, booking.CreateRequest{ResourceID: resA.ID, UserID: f.admin.ID, Start: s1, End: e1})
	require.NoError(t, err)
	_, err = f.bookings.Create(ctx, booking.CreateRequest{ResourceID: resA.ID, UserID: f.admin.ID, Start: s2, End: e2})
	require.NoError(t, err)
	_, err = f.bookings.Create(ctx, booking.CreateRequest{ResourceID: resA.ID, UserID: f.member.ID, Start: s3, End: e3})
	require.NoError(t, err)

	t.Run("Stats: confirmed hours only, insertion order", func(t *testing.T) {
		stats, err := f.bookings.UtilizationStats(ctx)
		require.NoError(t, err)
		require.Len(t, stats, 2)

		assert.Equal(t, resA.ID, stats[0].ResourceID)
		assert.Equal(t, "Room A", stats[0].ResourceName)
		assert.Equal(t, 2, stats[0].BookingCount)
		assert.Equal(t, 5, stats[0].TotalHours)
		// round(5 / 160 * 100) = 3
		assert.Equal(t, 3, stats[0].UtilizationRate)

		assert.Equal(t, resB.ID, stats[1].ResourceID)
		assert.Equal(t, 0, stats[1].TotalHours)
	})

	t.Run("Stats: utilization is capped at 100", func(t *testing.T) {
		tiny := booking.NewService(booking.NewMemoryRepository(), f.resources, f.users, 1)
		stats, err := tiny.UtilizationStats(ctx)
		require.NoError(t, err)
		for _, st := range stats {
			assert.LessOrEqual(t, st.UtilizationRate, 100)
		}

		small := f.createResource(t, "Room C", 0)
		s, e := slot(3, 0, 10)
		_, err = tiny.Create(ctx, booking.CreateRequest{ResourceID: small.ID, UserID: f.admin.ID, Start: s, End: e})
		require.NoError(t, err)

		stats, err = tiny.UtilizationStats(ctx)
		require.NoError(t, err)
		last := stats[len(stats)-1]
		assert.Equal(t, small.ID, last.ResourceID)
		assert.Equal(t, 10, last.TotalHours)
		assert.Equal(t, 100, last.UtilizationRate)
	})
}
