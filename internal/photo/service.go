package photo

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/lsfhq/resource-booking-backend/internal/pkg/storage"
	"github.com/lsfhq/resource-booking-backend/internal/resource"
)

// UploadRequest carries an image to attach to a resource.
type UploadRequest struct {
	ResourceID  string
	UploaderID  string
	Filename    string
	ContentType string
	Content     io.Reader
	Size        int64
}

type Service interface {
	Upload(ctx context.Context, req UploadRequest) (*Photo, error)
	ListByResource(ctx context.Context, resourceID string) ([]*Photo, error)
	// Download returns the photo content stream and its metadata.
	Download(ctx context.Context, id string) (io.ReadCloser, *Photo, error)
	DownloadThumbnail(ctx context.Context, id string) (io.ReadCloser, *Photo, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo       Repository
	resService resource.Service
	storage    storage.Storage
	imgProc    *storage.ImageProcessor
}

func NewService(repo Repository, resService resource.Service, store storage.Storage) Service {
	return &service{
		repo:       repo,
		resService: resService,
		storage:    store,
		imgProc:    storage.NewImageProcessor(),
	}
}

func (s *service) Upload(ctx context.Context, req UploadRequest) (*Photo, error) {
	if !strings.HasPrefix(req.ContentType, "image/") {
		return nil, ErrNotAnImage
	}

	if _, err := s.resService.GetByID(ctx, req.ResourceID); err != nil {
		return nil, ErrResourceGone
	}

	// Buffer the content so it can be read twice: once for the original,
	// once for the thumbnail.
	content, err := io.ReadAll(req.Content)
	if err != nil {
		return nil, fmt.Errorf("failed to read upload content: %w", err)
	}

	id := uuid.New().String()
	ext := strings.ToLower(filepath.Ext(req.Filename))
	shard := id[:2]
	storagePath := fmt.Sprintf("photos/%s/%s%s", shard, id, ext)

	if err := s.storage.Save(ctx, storagePath, bytes.NewReader(content)); err != nil {
		return nil, fmt.Errorf("failed to save photo: %w", err)
	}

	// Thumbnail generation is best effort: a corrupt-but-accepted image still
	// uploads, it just has no thumbnail.
	var thumbnailPath *string
	if thumb, err := s.imgProc.GenerateThumbnail(bytes.NewReader(content), 200, 200); err == nil {
		tPath := fmt.Sprintf("photos/%s/%s_thumb.jpg", shard, id)
		if err := s.storage.Save(ctx, tPath, thumb); err == nil {
			thumbnailPath = &tPath
		}
	}

	p := &Photo{
		ID:            id,
		ResourceID:    req.ResourceID,
		UploaderID:    req.UploaderID,
		Filename:      req.Filename,
		StoragePath:   storagePath,
		ThumbnailPath: thumbnailPath,
		ContentType:   req.ContentType,
		Size:          req.Size,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		_ = s.storage.Delete(ctx, storagePath)
		if thumbnailPath != nil {
			_ = s.storage.Delete(ctx, *thumbnailPath)
		}
		return nil, err
	}

	return p, nil
}

func (s *service) ListByResource(ctx context.Context, resourceID string) ([]*Photo, error) {
	return s.repo.ListByResource(ctx, resourceID)
}

func (s *service) Download(ctx context.Context, id string) (io.ReadCloser, *Photo, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	stream, err := s.storage.Get(ctx, p.StoragePath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to retrieve photo content: %w", err)
	}
	return stream, p, nil
}

func (s *service) DownloadThumbnail(ctx context.Context, id string) (io.ReadCloser, *Photo, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if p.ThumbnailPath == nil {
		return nil, nil, ErrNoThumbnail
	}

	stream, err := s.storage.Get(ctx, *p.ThumbnailPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to retrieve thumbnail: %w", err)
	}
	return stream, p, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	// Best effort cleanup; the record removal is what matters.
	_ = s.storage.Delete(ctx, p.StoragePath)
	if p.ThumbnailPath != nil {
		_ = s.storage.Delete(ctx, *p.ThumbnailPath)
	}

	return s.repo.Delete(ctx, id)
}
