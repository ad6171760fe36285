package api

import (
	"context"

	"github.com/lsfhq/resource-booking-backend/internal/auth"
	"github.com/lsfhq/resource-booking-backend/internal/user"
)

// identityResolver adapts the user service to auth.IdentityResolver so the
// auth middleware can provision and look up accounts by token email.
type identityResolver struct {
	userService user.Service
}

func (r identityResolver) ResolveIdentity(ctx context.Context, email string) (auth.Identity, error) {
	u, err := r.userService.GetOrProvision(ctx, email)
	if err != nil {
		return auth.Identity{}, err
	}
	return auth.Identity{
		UserID:  u.ID,
		Email:   u.Email,
		IsAdmin: u.IsAdmin(),
	}, nil
}
