package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lsfhq/resource-booking-backend/internal/pkg/apperror"
	"github.com/lsfhq/resource-booking-backend/internal/pkg/response"
	"github.com/lsfhq/resource-booking-backend/internal/user"
)

type Handler struct {
	service user.Service
}

func NewHandler(service user.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(c *gin.Context) {
	users, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]UserResponse, len(users))
	for i, u := range users {
		items[i] = NewUserResponse(u)
	}
	response.OK(c, http.StatusOK, items)
}

func (h *Handler) UpdateRole(c *gin.Context) {
	id := c.Param("id")

	var body UpdateRoleBody
	if err := c.ShouldBindJSON(&body); err != nil {
		response.Error(c, apperror.Wrap(err, http.StatusBadRequest, "invalid request body"))
		return
	}

	u, err := h.service.UpdateRole(c.Request.Context(), id, user.Role(body.Role))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusOK, NewUserResponse(u))
}
