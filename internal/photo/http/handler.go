package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lsfhq/resource-booking-backend/internal/auth"
	"github.com/lsfhq/resource-booking-backend/internal/photo"
	"github.com/lsfhq/resource-booking-backend/internal/pkg/apperror"
	"github.com/lsfhq/resource-booking-backend/internal/pkg/response"
)

type Handler struct {
	service photo.Service
}

func NewHandler(service photo.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Upload(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		response.Error(c, apperror.Wrap(err, http.StatusBadRequest, "missing file upload"))
		return
	}

	src, err := header.Open()
	if err != nil {
		response.Error(c, apperror.Wrap(err, http.StatusBadRequest, "failed to open uploaded file"))
		return
	}
	defer src.Close()

	p, err := h.service.Upload(c.Request.Context(), photo.UploadRequest{
		ResourceID:  c.Param("id"),
		UploaderID:  auth.GetUserID(c),
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Content:     src,
		Size:        header.Size,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusCreated, NewPhotoResponse(p))
}

func (h *Handler) ListByResource(c *gin.Context) {
	photos, err := h.service.ListByResource(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]PhotoResponse, len(photos))
	for i, p := range photos {
		items[i] = NewPhotoResponse(p)
	}
	response.OK(c, http.StatusOK, items)
}

func (h *Handler) Download(c *gin.Context) {
	stream, p, err := h.service.Download(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	defer stream.Close()

	c.Header("Content-Type", p.ContentType)
	c.DataFromReader(http.StatusOK, p.Size, p.ContentType, stream, nil)
}

func (h *Handler) DownloadThumbnail(c *gin.Context) {
	stream, _, err := h.service.DownloadThumbnail(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	defer stream.Close()

	// Thumbnails are always encoded as JPEG; size is unknown without a stat.
	c.Header("Content-Type", "image/jpeg")
	c.DataFromReader(http.StatusOK, -1, "image/jpeg", stream, nil)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, http.StatusOK, true)
}
