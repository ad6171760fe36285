package resource

import (
	"context"
	"sync"
	"time"
)

// memoryRepository keeps resources in an insertion-ordered slice, matching the
// reference in-memory store. Iteration order is insertion order, which is what
// the stats endpoint relies on.
type memoryRepository struct {
	mu        sync.RWMutex
	resources []*Resource
}

// NewMemoryRepository creates an empty in-memory Repository.
func NewMemoryRepository() Repository {
	return &memoryRepository{}
}

func (r *memoryRepository) Create(ctx context.Context, res *Resource) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if res.CreatedAt.IsZero() {
		res.CreatedAt = time.Now().UTC()
	}
	cp := *res
	r.resources = append(r.resources, &cp)
	return nil
}

func (r *memoryRepository) GetByID(ctx context.Context, id string) (*Resource, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, res := range r.resources {
		if res.ID == id {
			cp := *res
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memoryRepository) List(ctx context.Context) ([]*Resource, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Resource, len(r.resources))
	for i, res := range r.resources {
		cp := *res
		out[i] = &cp
	}
	return out, nil
}

func (r *memoryRepository) Update(ctx context.Context, res *Resource) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, existing := range r.resources {
		if existing.ID == res.ID {
			cp := *res
			cp.CreatedAt = existing.CreatedAt
			r.resources[i] = &cp
			return nil
		}
	}
	return ErrNotFound
}

func (r *memoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Filter semantics: removing a missing id is a no-op, not an error.
	kept := r.resources[:0]
	for _, res := range r.resources {
		if res.ID != id {
			kept = append(kept, res)
		}
	}
	r.resources = kept
	return nil
}
