package services

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"vhotelok-backend/config"
	"vhotelok-backend/errs"
	"vhotelok-backend/models"
	"vhotelok-backend/repositories"
	"vhotelok-backend/tasks"
)

var allowedImageTypes = map[string]struct{}{
	"jpg":  {},
	"jpeg": {},
	"png":  {},
	"webp": {},
}

// ImageService stores uploads under the media directory and hands the
// resize work to the background worker.
type ImageService struct {
	images   *repositories.ImageRepository
	worker   *tasks.Worker
	mediaDir string
}

func NewImageService(store *repositories.Store, worker *tasks.Worker, settings config.Settings) *ImageService {
	return &ImageService{
		images:   store.Images,
		worker:   worker,
		mediaDir: settings.MediaDir,
	}
}

// Upload writes the file to disk, records it and queues the resize job.
// Returns the stored file name.
func (s *ImageService) Upload(fileName string, src io.Reader) (string, error) {
	// Strip any path the client sent along.
	base := filepath.Base(fileName)
	if base == "" || base == "." || base == string(filepath.Separator) {
		return "", fmt.Errorf("%w: empty file name", errs.ErrUnsupportedFileFormat)
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(base), "."))
	if _, ok := allowedImageTypes[ext]; !ok {
		return "", fmt.Errorf("%w: use one of jpg, jpeg, png, webp", errs.ErrUnsupportedFileFormat)
	}

	if err := os.MkdirAll(s.mediaDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create media dir: %w", err)
	}

	path := filepath.Join(s.mediaDir, base)
	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return "", fmt.Errorf("failed to write file: %w", err)
	}
	if err := dst.Close(); err != nil {
		return "", fmt.Errorf("failed to close file: %w", err)
	}

	if err := s.images.Upsert(&models.Image{FileName: base}); err != nil {
		return "", fmt.Errorf("failed to record image: %w", err)
	}

	s.worker.Enqueue(func(ctx context.Context) {
		tasks.ResizeImage(s.images, path)
	})
	return base, nil
}
