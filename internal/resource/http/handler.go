package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lsfhq/resource-booking-backend/internal/pkg/apperror"
	"github.com/lsfhq/resource-booking-backend/internal/pkg/response"
	"github.com/lsfhq/resource-booking-backend/internal/resource"
)

type Handler struct {
	service resource.Service
}

func NewHandler(service resource.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(c *gin.Context) {
	resources, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]ResourceResponse, len(resources))
	for i, r := range resources {
		items[i] = NewResourceResponse(r)
	}
	response.OK(c, http.StatusOK, items)
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateResourceBody
	if err := c.ShouldBindJSON(&body); err != nil {
		response.Error(c, apperror.Wrap(err, http.StatusBadRequest, "invalid request body"))
		return
	}

	res, err := h.service.Create(c.Request.Context(), resource.CreateRequest{
		Name:             body.Name,
		Type:             body.Type,
		Description:      body.Description,
		MinLeadTimeHours: body.MinLeadTimeHours,
		Icon:             body.Icon,
		Color:            body.Color,
		Specs:            body.Specs,
		FormFields:       body.FormFields,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusCreated, NewResourceResponse(res))
}

func (h *Handler) Update(c *gin.Context) {
	id := c.Param("id")

	var body UpdateResourceBody
	if err := c.ShouldBindJSON(&body); err != nil {
		response.Error(c, apperror.Wrap(err, http.StatusBadRequest, "invalid request body"))
		return
	}

	res, err := h.service.Update(c.Request.Context(), id, resource.UpdateRequest{
		Name:             body.Name,
		Type:             body.Type,
		Description:      body.Description,
		IsActive:         body.IsActive,
		MinLeadTimeHours: body.MinLeadTimeHours,
		Icon:             body.Icon,
		Color:            body.Color,
		Specs:            body.Specs,
		FormFields:       body.FormFields,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusOK, NewResourceResponse(res))
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, http.StatusOK, true)
}
