package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Identity is the resolved caller of an authenticated request.
type Identity struct {
	UserID  string
	Email   string
	IsAdmin bool
}

// IdentityResolver turns a validated token email into a user identity,
// provisioning the account on first sight.
type IdentityResolver interface {
	ResolveIdentity(ctx context.Context, email string) (Identity, error)
}

// AuthRequired is a Gin middleware that validates JWT from
// Authorization: Bearer <token> and resolves the caller's identity.
func AuthRequired(jwtManager *JWTManager, resolver IdentityResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			abortUnauthorized(c, "missing Authorization header")
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			abortUnauthorized(c, "invalid Authorization header format")
			return
		}

		claims, err := jwtManager.ParseAndValidate(parts[1])
		if err != nil {
			abortUnauthorized(c, "invalid or expired token")
			return
		}

		identity, err := resolver.ResolveIdentity(c.Request.Context(), claims.Email)
		if err != nil {
			abortUnauthorized(c, "failed to resolve user")
			return
		}

		setIdentity(c, identity)

		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"error":   msg,
	})
}
