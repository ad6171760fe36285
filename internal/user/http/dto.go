package http

import (
	"time"

	"github.com/lsfhq/resource-booking-backend/internal/user"
)

// UserResponse is the JSON shape of a user.
type UserResponse struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	Role       string    `json:"role"`
	Avatar     string    `json:"avatar,omitempty"`
	Department string    `json:"department,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

func NewUserResponse(u *user.User) UserResponse {
	return UserResponse{
		ID:         u.ID,
		Email:      u.Email,
		Role:       string(u.Role),
		Avatar:     u.Avatar,
		Department: u.Department,
		CreatedAt:  u.CreatedAt,
	}
}

// UpdateRoleBody is the payload for PATCH /users/:id/role.
type UpdateRoleBody struct {
	Role string `json:"role" binding:"required,oneof=USER ADMIN"`
}
