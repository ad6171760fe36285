package user

import (
	"net/http"
	"time"

	"github.com/lsfhq/resource-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound      = apperror.New(http.StatusNotFound, "user not found")
	ErrEmailRequired = apperror.New(http.StatusBadRequest, "email is required")
	ErrInvalidRole   = apperror.New(http.StatusBadRequest, "invalid role")
)

// Role governs whether bookings auto-confirm and whether admin-only
// mutations are permitted.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// User represents an account in the system. Email is the stable identity key;
// records are provisioned from token claims on first authenticated request.
type User struct {
	ID         string
	Email      string
	Role       Role
	Avatar     string
	Department string
	CreatedAt  time.Time
}

// IsAdmin reports whether the user holds the ADMIN role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
