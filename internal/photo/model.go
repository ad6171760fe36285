package photo

import (
	"net/http"
	"time"

	"github.com/lsfhq/resource-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound     = apperror.New(http.StatusNotFound, "photo not found")
	ErrNotAnImage   = apperror.New(http.StatusBadRequest, "uploaded file is not an image")
	ErrNoThumbnail  = apperror.New(http.StatusNotFound, "thumbnail not available")
	ErrResourceGone = apperror.New(http.StatusNotFound, "resource not found")
)

// Photo is an image attached to a resource.
type Photo struct {
	ID            string    `json:"id"`
	ResourceID    string    `json:"resourceId"`
	UploaderID    string    `json:"uploaderId"`
	Filename      string    `json:"filename"`
	StoragePath   string    `json:"-"`
	ThumbnailPath *string   `json:"-"`
	ContentType   string    `json:"contentType"`
	Size          int64     `json:"size"`
	CreatedAt     time.Time `json:"createdAt"`
}

// URL returns the public URL for a photo's content.
func URL(id string) string {
	return "/v1/photos/" + id
}

// ThumbnailURL returns the public URL for a photo's thumbnail.
func ThumbnailURL(id string) string {
	return "/v1/photos/" + id + "/thumbnail"
}
