package memo

import (
	"context"
	"sync"
	"time"
)

type memoryRepository struct {
	mu    sync.RWMutex
	memos []*Memo
}

// NewMemoryRepository creates an empty in-memory Repository.
func NewMemoryRepository() Repository {
	return &memoryRepository{}
}

func (r *memoryRepository) Create(ctx context.Context, m *Memo) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *m
	r.memos = append(r.memos, &cp)
	return nil
}

func (r *memoryRepository) GetByID(ctx context.Context, id string) (*Memo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, m := range r.memos {
		if m.ID == id {
			cp := *m
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memoryRepository) ListVisible(ctx context.Context, email, userID string) ([]*Memo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	now := time.Now().UTC()
	var out []*Memo
	for _, m := range r.memos {
		if m.Expired(now) {
			continue
		}
		if m.Recipient == BroadcastRecipient || m.Recipient == email || m.SenderID == userID {
			cp := *m
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, m := range r.memos {
		if m.ID == id {
			r.memos = append(r.memos[:i], r.memos[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
