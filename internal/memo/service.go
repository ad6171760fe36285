package memo

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lsfhq/resource-booking-backend/internal/user"
)

// SendRequest carries a memo to deliver. TTLDays of zero means the default
// retention period.
type SendRequest struct {
	SenderID  string
	Recipient string // recipient email, or BroadcastRecipient
	Content   string
	TTLDays   int
}

type Service interface {
	Send(ctx context.Context, req SendRequest) (*Memo, error)
	// ListVisible returns the memos the given user can see: broadcasts,
	// memos addressed to their email, and memos they sent.
	ListVisible(ctx context.Context, email, userID string) ([]*Memo, error)
	// Delete removes a memo. Only the sender or an admin may delete.
	Delete(ctx context.Context, id string, actorID string, isAdmin bool) error
}

type service struct {
	repo        Repository
	userService user.Service
}

func NewService(repo Repository, userService user.Service) Service {
	return &service{
		repo:        repo,
		userService: userService,
	}
}

func (s *service) Send(ctx context.Context, req SendRequest) (*Memo, error) {
	if strings.TrimSpace(req.Content) == "" {
		return nil, ErrContentRequired
	}
	if req.TTLDays < 0 {
		return nil, ErrInvalidTTL
	}

	recipient := strings.ToLower(strings.TrimSpace(req.Recipient))
	if recipient == "" {
		recipient = BroadcastRecipient
	}

	// Direct memos must address a known user.
	if recipient != BroadcastRecipient {
		if _, err := s.userService.GetByEmail(ctx, recipient); err != nil {
			return nil, ErrRecipientUnknown
		}
	}

	ttl := req.TTLDays
	if ttl == 0 {
		ttl = DefaultTTLDays
	}

	now := time.Now().UTC()
	m := &Memo{
		ID:        uuid.New().String(),
		SenderID:  req.SenderID,
		Recipient: recipient,
		Content:   req.Content,
		CreatedAt: now,
		ExpiresAt: now.AddDate(0, 0, ttl),
	}

	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *service) ListVisible(ctx context.Context, email, userID string) ([]*Memo, error) {
	return s.repo.ListVisible(ctx, email, userID)
}

func (s *service) Delete(ctx context.Context, id string, actorID string, isAdmin bool) error {
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if !isAdmin && m.SenderID != actorID {
		return ErrPermissionDenied
	}

	return s.repo.Delete(ctx, id)
}
