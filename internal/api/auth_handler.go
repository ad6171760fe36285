package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lsfhq/resource-booking-backend/internal/auth"
	"github.com/lsfhq/resource-booking-backend/internal/pkg/apperror"
	"github.com/lsfhq/resource-booking-backend/internal/pkg/response"
	"github.com/lsfhq/resource-booking-backend/internal/user"
	userHttp "github.com/lsfhq/resource-booking-backend/internal/user/http"
)

type AuthHandler struct {
	userService user.Service
	jwtManager  *auth.JWTManager
}

func NewAuthHandler(userService user.Service, jwtManager *auth.JWTManager) *AuthHandler {
	return &AuthHandler{
		userService: userService,
		jwtManager:  jwtManager,
	}
}

//
// POST /v1/auth/token
//

// Token issues an access token for the given email. There are no passwords;
// the deployment fronts this with an SSO proxy that vouches for the email.
func (h *AuthHandler) Token(c *gin.Context) {
	var req TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Wrap(err, http.StatusBadRequest, "invalid request body"))
		return
	}

	token, err := h.jwtManager.GenerateAccessToken(req.Email)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusOK, TokenResponse{AccessToken: token})
}

//
// GET /v1/me
//

func (h *AuthHandler) Me(c *gin.Context) {
	u, err := h.userService.GetByID(c.Request.Context(), auth.GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusOK, userHttp.NewUserResponse(u))
}
