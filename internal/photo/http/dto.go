package http

import (
	"time"

	"github.com/lsfhq/resource-booking-backend/internal/photo"
)

// PhotoResponse is the JSON shape of a photo's metadata.
type PhotoResponse struct {
	ID           string    `json:"id"`
	ResourceID   string    `json:"resourceId"`
	Filename     string    `json:"filename"`
	ContentType  string    `json:"contentType"`
	Size         int64     `json:"size"`
	URL          string    `json:"url"`
	ThumbnailURL string    `json:"thumbnailUrl,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

func NewPhotoResponse(p *photo.Photo) PhotoResponse {
	resp := PhotoResponse{
		ID:          p.ID,
		ResourceID:  p.ResourceID,
		Filename:    p.Filename,
		ContentType: p.ContentType,
		Size:        p.Size,
		URL:         photo.URL(p.ID),
		CreatedAt:   p.CreatedAt,
	}
	if p.ThumbnailPath != nil {
		resp.ThumbnailURL = photo.ThumbnailURL(p.ID)
	}
	return resp
}
