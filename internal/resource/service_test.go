package resource_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lsfhq/resource-booking-backend/internal/resource"
)

func newService() resource.Service {
	return resource.NewService(resource.NewMemoryRepository())
}

func TestResourceCRUD(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	var created *resource.Resource

	t.Run("Create: assigns id and activates", func(t *testing.T) {
		var err error
		created, err = svc.Create(ctx, resource.CreateRequest{
			Name:             "Meeting Room A",
			Type:             "room",
			Description:      "Seats 8",
			MinLeadTimeHours: 2,
			Icon:             "door",
			Color:            "#aa33ff",
			Specs:            json.RawMessage(`{"seats":8}`),
			FormFields:       json.RawMessage(`[{"id":"purpose","label":"Purpose"}]`),
		})
		require.NoError(t, err)
		assert.NotEmpty(t, created.ID)
		assert.True(t, created.IsActive)
		assert.Equal(t, "Meeting Room A", created.Name)
		assert.JSONEq(t, `{"seats":8}`, string(created.Specs))
	})

	t.Run("Create: name and type are required", func(t *testing.T) {
		_, err := svc.Create(ctx, resource.CreateRequest{Name: "  ", Type: "room"})
		assert.ErrorIs(t, err, resource.ErrEmptyName)

		_, err = svc.Create(ctx, resource.CreateRequest{Name: "Desk", Type: ""})
		assert.ErrorIs(t, err, resource.ErrEmptyType)
	})

	t.Run("Create: lead time must not be negative", func(t *testing.T) {
		_, err := svc.Create(ctx, resource.CreateRequest{Name: "Desk", Type: "desk", MinLeadTimeHours: -1})
		assert.ErrorIs(t, err, resource.ErrNegativeLead)
	})

	t.Run("Get: round trips", func(t *testing.T) {
		got, err := svc.GetByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.ID, got.ID)
		assert.Equal(t, 2, got.MinLeadTimeHours)
	})

	t.Run("Get: unknown id", func(t *testing.T) {
		_, err := svc.GetByID(ctx, "nope")
		assert.ErrorIs(t, err, resource.ErrNotFound)
	})

	t.Run("Update: full replace keeps id and created time", func(t *testing.T) {
		got, err := svc.Update(ctx, created.ID, resource.UpdateRequest{
			Name:     "Meeting Room A1",
			Type:     "room",
			IsActive: false,
		})
		require.NoError(t, err)
		assert.Equal(t, created.ID, got.ID)
		assert.Equal(t, "Meeting Room A1", got.Name)
		assert.False(t, got.IsActive)
		assert.Empty(t, got.Icon) // replaced, not merged
		assert.Equal(t, created.CreatedAt, got.CreatedAt)
	})

	t.Run("Update: unknown id", func(t *testing.T) {
		_, err := svc.Update(ctx, "nope", resource.UpdateRequest{Name: "X", Type: "room"})
		assert.ErrorIs(t, err, resource.ErrNotFound)
	})

	t.Run("List: insertion order", func(t *testing.T) {
		second, err := svc.Create(ctx, resource.CreateRequest{Name: "Projector", Type: "equipment"})
		require.NoError(t, err)

		all, err := svc.List(ctx)
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, created.ID, all[0].ID)
		assert.Equal(t, second.ID, all[1].ID)
	})

	t.Run("Delete: removes the resource", func(t *testing.T) {
		require.NoError(t, svc.Delete(ctx, created.ID))

		_, err := svc.GetByID(ctx, created.ID)
		assert.ErrorIs(t, err, resource.ErrNotFound)
	})

	t.Run("Delete: unknown id succeeds", func(t *testing.T) {
		assert.NoError(t, svc.Delete(ctx, "nope"))
	})
}
