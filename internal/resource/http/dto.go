package http

import (
	"encoding/json"
	"time"

	"github.com/lsfhq/resource-booking-backend/internal/resource"
)

// ResourceResponse is the JSON shape of a resource.
type ResourceResponse struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	Type             string          `json:"type"`
	Description      string          `json:"description"`
	IsActive         bool            `json:"isActive"`
	MinLeadTimeHours int             `json:"minLeadTimeHours"`
	Icon             string          `json:"icon,omitempty"`
	Color            string          `json:"color,omitempty"`
	Specs            json.RawMessage `json:"specs,omitempty"`
	FormFields       json.RawMessage `json:"formFields,omitempty"`
	CreatedAt        time.Time       `json:"createdAt"`
}

func NewResourceResponse(r *resource.Resource) ResourceResponse {
	return ResourceResponse{
		ID:               r.ID,
		Name:             r.Name,
		Type:             r.Type,
		Description:      r.Description,
		IsActive:         r.IsActive,
		MinLeadTimeHours: r.MinLeadTimeHours,
		Icon:             r.Icon,
		Color:            r.Color,
		Specs:            r.Specs,
		FormFields:       r.FormFields,
		CreatedAt:        r.CreatedAt,
	}
}

// CreateResourceBody is the payload for POST /resources.
// ID and isActive are assigned server-side.
type CreateResourceBody struct {
	Name             string          `json:"name" binding:"required"`
	Type             string          `json:"type" binding:"required"`
	Description      string          `json:"description"`
	MinLeadTimeHours int             `json:"minLeadTimeHours" binding:"omitempty,min=0"`
	Icon             string          `json:"icon"`
	Color            string          `json:"color"`
	Specs            json.RawMessage `json:"specs"`
	FormFields       json.RawMessage `json:"formFields"`
}

// UpdateResourceBody is the payload for PUT /resources/:id (full replace).
type UpdateResourceBody struct {
	Name             string          `json:"name" binding:"required"`
	Type             string          `json:"type" binding:"required"`
	Description      string          `json:"description"`
	IsActive         bool            `json:"isActive"`
	MinLeadTimeHours int             `json:"minLeadTimeHours" binding:"omitempty,min=0"`
	Icon             string          `json:"icon"`
	Color            string          `json:"color"`
	Specs            json.RawMessage `json:"specs"`
	FormFields       json.RawMessage `json:"formFields"`
}
