package auth

import "github.com/gin-gonic/gin"

const (
	ctxKeyUserID  = "authUserID"
	ctxKeyEmail   = "authEmail"
	ctxKeyIsAdmin = "authIsAdmin"
)

func setIdentity(c *gin.Context, id Identity) {
	c.Set(ctxKeyUserID, id.UserID)
	c.Set(ctxKeyEmail, id.Email)
	c.Set(ctxKeyIsAdmin, id.IsAdmin)
}

// GetUserID returns the authenticated user's ID or empty string.
func GetUserID(c *gin.Context) string {
	if v, ok := c.Get(ctxKeyUserID); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// GetEmail returns the authenticated user's email or empty string.
func GetEmail(c *gin.Context) string {
	if v, ok := c.Get(ctxKeyEmail); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// IsAdmin reports whether the authenticated user holds the ADMIN role.
func IsAdmin(c *gin.Context) bool {
	if v, ok := c.Get(ctxKeyIsAdmin); ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return false
}
