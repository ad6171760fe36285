package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Service defines business logic related to users.
type Service interface {
	// GetOrProvision resolves the user for an authenticated email, creating
	// the record on first sight. Emails in the admin list get the ADMIN role.
	GetOrProvision(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context) ([]*User, error)
	UpdateRole(ctx context.Context, id string, role Role) (*User, error)
}

type service struct {
	repo        Repository
	adminEmails map[string]bool
}

// NewService creates a new user Service. adminEmails lists addresses that are
// provisioned with the ADMIN role.
func NewService(repo Repository, adminEmails []string) Service {
	admins := make(map[string]bool, len(adminEmails))
	for _, e := range adminEmails {
		admins[normalizeEmail(e)] = true
	}
	return &service{
		repo:        repo,
		adminEmails: admins,
	}
}

func (s *service) GetOrProvision(ctx context.Context, email string) (*User, error) {
	cleanEmail := normalizeEmail(email)
	if cleanEmail == "" {
		return nil, ErrEmailRequired
	}

	u, err := s.repo.GetByEmail(ctx, cleanEmail)
	if err == nil {
		return u, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	role := RoleUser
	if s.adminEmails[cleanEmail] {
		role = RoleAdmin
	}

	newUser := &User{
		ID:    uuid.New().String(),
		Email: cleanEmail,
		Role:  role,
	}

	if err := s.repo.Create(ctx, newUser); err != nil {
		// A concurrent request may have provisioned the same email first.
		if errors.Is(err, ErrDuplicateEmail) {
			return s.repo.GetByEmail(ctx, cleanEmail)
		}
		return nil, fmt.Errorf("failed to provision user: %w", err)
	}

	return newUser, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) GetByEmail(ctx context.Context, email string) (*User, error) {
	return s.repo.GetByEmail(ctx, normalizeEmail(email))
}

func (s *service) List(ctx context.Context) ([]*User, error) {
	return s.repo.List(ctx)
}

func (s *service) UpdateRole(ctx context.Context, id string, role Role) (*User, error) {
	if !role.Valid() {
		return nil, ErrInvalidRole
	}
	if err := s.repo.UpdateRole(ctx, id, role); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

// normalizeEmail trims spaces and lowercases the email.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
