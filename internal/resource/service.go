package resource

import (
	"context"
	"strings"

	"github.com/google/uuid"
)

// CreateRequest carries the fields for a new resource. ID and IsActive are
// assigned by the service.
type CreateRequest struct {
	Name             string
	Type             string
	Description      string
	MinLeadTimeHours int
	Icon             string
	Color            string
	Specs            []byte
	FormFields       []byte
}

// UpdateRequest carries the full replacement of a resource's mutable fields.
type UpdateRequest struct {
	Name             string
	Type             string
	Description      string
	IsActive         bool
	MinLeadTimeHours int
	Icon             string
	Color            string
	Specs            []byte
	FormFields       []byte
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Resource, error)
	GetByID(ctx context.Context, id string) (*Resource, error)
	List(ctx context.Context) ([]*Resource, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Resource, error)
	// Delete removes a resource. Deleting an unknown id succeeds; existing
	// bookings referencing the resource are left in place.
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Resource, error) {
	if err := validateFields(req.Name, req.Type, req.MinLeadTimeHours); err != nil {
		return nil, err
	}

	res := &Resource{
		ID:               uuid.New().String(),
		Name:             req.Name,
		Type:             req.Type,
		Description:      req.Description,
		IsActive:         true,
		MinLeadTimeHours: req.MinLeadTimeHours,
		Icon:             req.Icon,
		Color:            req.Color,
		Specs:            req.Specs,
		FormFields:       req.FormFields,
	}

	if err := s.repo.Create(ctx, res); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Resource, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context) ([]*Resource, error) {
	return s.repo.List(ctx)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (*Resource, error) {
	res, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := validateFields(req.Name, req.Type, req.MinLeadTimeHours); err != nil {
		return nil, err
	}

	res.Name = req.Name
	res.Type = req.Type
	res.Description = req.Description
	res.IsActive = req.IsActive
	res.MinLeadTimeHours = req.MinLeadTimeHours
	res.Icon = req.Icon
	res.Color = req.Color
	res.Specs = req.Specs
	res.FormFields = req.FormFields

	if err := s.repo.Update(ctx, res); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func validateFields(name, typ string, leadHours int) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	if strings.TrimSpace(typ) == "" {
		return ErrEmptyType
	}
	if leadHours < 0 {
		return ErrNegativeLead
	}
	return nil
}
