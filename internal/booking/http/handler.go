package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lsfhq/resource-booking-backend/internal/auth"
	"github.com/lsfhq/resource-booking-backend/internal/booking"
	"github.com/lsfhq/resource-booking-backend/internal/pkg/apperror"
	"github.com/lsfhq/resource-booking-backend/internal/pkg/response"
)

type Handler struct {
	service booking.Service
}

func NewHandler(service booking.Service) *Handler {
	return &Handler{service: service}
}

func actorFrom(c *gin.Context) booking.Actor {
	return booking.Actor{
		UserID:  auth.GetUserID(c),
		IsAdmin: auth.IsAdmin(c),
	}
}

func (h *Handler) List(c *gin.Context) {
	filter := booking.Filter{
		ResourceID: c.Query("resource_id"),
		UserID:     c.Query("user_id"),
		Status:     c.Query("status"),
	}

	bookings, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		items[i] = NewBookingResponse(b)
	}
	response.OK(c, http.StatusOK, items)
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateBookingBody
	if err := c.ShouldBindJSON(&body); err != nil {
		response.Error(c, apperror.Wrap(err, http.StatusBadRequest, "invalid request body"))
		return
	}

	actor := actorFrom(c)

	// Booking on behalf of another user is an admin action.
	userID := actor.UserID
	if body.UserID != "" && body.UserID != actor.UserID {
		if !actor.IsAdmin {
			response.Error(c, booking.ErrPermissionDenied)
			return
		}
		userID = body.UserID
	}

	b, err := h.service.Create(c.Request.Context(), booking.CreateRequest{
		ResourceID: body.ResourceID,
		UserID:     userID,
		Start:      body.Start,
		End:        body.End,
		Details:    body.Details,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusCreated, NewBookingResponse(b))
}

func (h *Handler) Process(c *gin.Context) {
	var body ProcessBookingBody
	if err := c.ShouldBindJSON(&body); err != nil {
		response.Error(c, apperror.Wrap(err, http.StatusBadRequest, "invalid request body"))
		return
	}

	b, err := h.service.Process(
		c.Request.Context(),
		c.Param("id"),
		booking.Status(body.Status),
		body.RejectionReason,
		actorFrom(c),
	)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusOK, NewBookingResponse(b))
}

func (h *Handler) Reschedule(c *gin.Context) {
	var body RescheduleBookingBody
	if err := c.ShouldBindJSON(&body); err != nil {
		response.Error(c, apperror.Wrap(err, http.StatusBadRequest, "invalid request body"))
		return
	}

	b, err := h.service.Reschedule(c.Request.Context(), c.Param("id"), body.Start, body.End, actorFrom(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusOK, NewBookingResponse(b))
}

func (h *Handler) Cancel(c *gin.Context) {
	if _, err := h.service.Cancel(c.Request.Context(), c.Param("id"), actorFrom(c)); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, http.StatusOK, true)
}

func (h *Handler) Stats(c *gin.Context) {
	stats, err := h.service.UtilizationStats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, http.StatusOK, stats)
}
