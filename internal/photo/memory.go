package photo

import (
	"context"
	"sync"
	"time"
)

type memoryRepository struct {
	mu     sync.RWMutex
	photos []*Photo
}

// NewMemoryRepository creates an empty in-memory Repository.
func NewMemoryRepository() Repository {
	return &memoryRepository{}
}

func (r *memoryRepository) Create(ctx context.Context, p *Photo) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	cp := *p
	r.photos = append(r.photos, &cp)
	return nil
}

func (r *memoryRepository) GetByID(ctx context.Context, id string) (*Photo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.photos {
		if p.ID == id {
			cp := *p
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memoryRepository) ListByResource(ctx context.Context, resourceID string) ([]*Photo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*Photo
	for _, p := range r.photos {
		if p.ResourceID == resourceID {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, p := range r.photos {
		if p.ID == id {
			r.photos = append(r.photos[:i], r.photos[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
