package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lsfhq/resource-booking-backend/internal/auth"
	"github.com/lsfhq/resource-booking-backend/internal/memo"
	"github.com/lsfhq/resource-booking-backend/internal/pkg/apperror"
	"github.com/lsfhq/resource-booking-backend/internal/pkg/response"
)

type Handler struct {
	service memo.Service
}

func NewHandler(service memo.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(c *gin.Context) {
	memos, err := h.service.ListVisible(c.Request.Context(), auth.GetEmail(c), auth.GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]MemoResponse, len(memos))
	for i, m := range memos {
		items[i] = NewMemoResponse(m)
	}
	response.OK(c, http.StatusOK, items)
}

func (h *Handler) Send(c *gin.Context) {
	var body SendMemoBody
	if err := c.ShouldBindJSON(&body); err != nil {
		response.Error(c, apperror.Wrap(err, http.StatusBadRequest, "invalid request body"))
		return
	}

	m, err := h.service.Send(c.Request.Context(), memo.SendRequest{
		SenderID:  auth.GetUserID(c),
		Recipient: body.Recipient,
		Content:   body.Content,
		TTLDays:   body.TTLDays,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusCreated, NewMemoResponse(m))
}

func (h *Handler) Delete(c *gin.Context) {
	err := h.service.Delete(c.Request.Context(), c.Param("id"), auth.GetUserID(c), auth.IsAdmin(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, http.StatusOK, true)
}
