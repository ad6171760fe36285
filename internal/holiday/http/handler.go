package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lsfhq/resource-booking-backend/internal/holiday"
	"github.com/lsfhq/resource-booking-backend/internal/pkg/response"
)

type Handler struct {
	service holiday.Service
}

func NewHandler(service holiday.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(c *gin.Context) {
	holidays, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, http.StatusOK, holidays)
}
