package photo_test

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lsfhq/resource-booking-backend/internal/photo"
	"github.com/lsfhq/resource-booking-backend/internal/pkg/storage"
	"github.com/lsfhq/resource-booking-backend/internal/resource"
)

func newFixture(t *testing.T) (photo.Service, *resource.Resource) {
	t.Helper()
	ctx := context.Background()

	resources := resource.NewService(resource.NewMemoryRepository())
	res, err := resources.Create(ctx, resource.CreateRequest{Name: "Room A", Type: "room"})
	require.NoError(t, err)

	store, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	return photo.NewService(photo.NewMemoryRepository(), resources, store), res
}

// pngBytes renders a small solid PNG so thumbnail generation has something
// real to decode.
func pngBytes(t *testing.T) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 400, 300))
	for x := 0; x < 400; x++ {
		for y := 0; y < 300; y++ {
			img.Set(x, y, color.RGBA{R: 40, G: 120, B: 200, A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestPhotoUpload(t *testing.T) {
	ctx := context.Background()
	svc, res := newFixture(t)

	t.Run("Upload: stores original and thumbnail", func(t *testing.T) {
		content := pngBytes(t)

		p, err := svc.Upload(ctx, photo.UploadRequest{
			ResourceID:  res.ID,
			UploaderID:  "uploader-1",
			Filename:    "room.png",
			ContentType: "image/png",
			Content:     bytes.NewReader(content),
			Size:        int64(len(content)),
		})
		require.NoError(t, err)
		assert.NotEmpty(t, p.ID)
		assert.NotNil(t, p.ThumbnailPath)

		stream, got, err := svc.Download(ctx, p.ID)
		require.NoError(t, err)
		defer stream.Close()

		data, err := io.ReadAll(stream)
		require.NoError(t, err)
		assert.Equal(t, content, data)
		assert.Equal(t, "room.png", got.Filename)

		thumb, _, err := svc.DownloadThumbnail(ctx, p.ID)
		require.NoError(t, err)
		defer thumb.Close()

		thumbImg, _, err := image.Decode(thumb)
		require.NoError(t, err)
		assert.LessOrEqual(t, thumbImg.Bounds().Dx(), 200)
		assert.LessOrEqual(t, thumbImg.Bounds().Dy(), 200)
	})

	t.Run("Upload: corrupt image keeps original, no thumbnail", func(t *testing.T) {
		content := []byte("not really a png")

		p, err := svc.Upload(ctx, photo.UploadRequest{
			ResourceID:  res.ID,
			UploaderID:  "uploader-1",
			Filename:    "broken.png",
			ContentType: "image/png",
			Content:     bytes.NewReader(content),
			Size:        int64(len(content)),
		})
		require.NoError(t, err)
		assert.Nil(t, p.ThumbnailPath)

		_, _, err = svc.DownloadThumbnail(ctx, p.ID)
		assert.ErrorIs(t, err, photo.ErrNoThumbnail)
	})

	t.Run("Upload: non-image content type rejected", func(t *testing.T) {
		_, err := svc.Upload(ctx, photo.UploadRequest{
			ResourceID:  res.ID,
			ContentType: "application/pdf",
			Content:     bytes.NewReader([]byte("%PDF")),
		})
		assert.ErrorIs(t, err, photo.ErrNotAnImage)
	})

	t.Run("Upload: unknown resource rejected", func(t *testing.T) {
		_, err := svc.Upload(ctx, photo.UploadRequest{
			ResourceID:  "nope",
			ContentType: "image/png",
			Content:     bytes.NewReader(pngBytes(t)),
		})
		assert.ErrorIs(t, err, photo.ErrResourceGone)
	})
}

func TestPhotoListAndDelete(t *testing.T) {
	ctx := context.Background()
	svc, res := newFixture(t)
	content := pngBytes(t)

	p, err := svc.Upload(ctx, photo.UploadRequest{
		ResourceID:  res.ID,
		UploaderID:  "uploader-1",
		Filename:    "a.png",
		ContentType: "image/png",
		Content:     bytes.NewReader(content),
		Size:        int64(len(content)),
	})
	require.NoError(t, err)

	t.Run("List: photos of a resource", func(t *testing.T) {
		got, err := svc.ListByResource(ctx, res.ID)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, p.ID, got[0].ID)

		empty, err := svc.ListByResource(ctx, "other")
		require.NoError(t, err)
		assert.Empty(t, empty)
	})

	t.Run("Delete: removes record and files", func(t *testing.T) {
		require.NoError(t, svc.Delete(ctx, p.ID))

		_, _, err := svc.Download(ctx, p.ID)
		assert.ErrorIs(t, err, photo.ErrNotFound)
	})

	t.Run("Delete: unknown photo", func(t *testing.T) {
		assert.ErrorIs(t, svc.Delete(ctx, "nope"), photo.ErrNotFound)
	})
}
