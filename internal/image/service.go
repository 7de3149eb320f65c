// Package image implements the asset upload, retrieval, and deletion flow.
package image

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/recette/api/internal/storage"
)

// ErrInvalidMediaType is returned when the declared content type is missing
// or not an image type.
var ErrInvalidMediaType = errors.New("invalid image")

// Service validates uploads and drives the configured storage backend.
type Service struct {
	store storage.Backend
}

// NewService creates an image Service over the given backend.
func NewService(store storage.Backend) *Service {
	return &Service{store: store}
}

// ValidateMediaType accepts a declared content type iff it is present and
// has the image/ prefix. The check is declarative only: the caller's
// declaration is trusted and the bytes are never sniffed.
func ValidateMediaType(contentType string) error {
	if contentType == "" || !strings.HasPrefix(contentType, "image/") {
		return ErrInvalidMediaType
	}
	return nil
}

// Upload validates the declared type and stores the stream. Validation runs
// before any storage work so a rejected payload has no side effect.
func (s *Service) Upload(ctx context.Context, r io.Reader, size int64, contentType, originalFilename string) (*storage.StoredObject, error) {
	if err := ValidateMediaType(contentType); err != nil {
		return nil, err
	}
	return s.store.Store(ctx, r, size, contentType, originalFilename)
}

// Delete removes the asset under identifier.
func (s *Service) Delete(ctx context.Context, identifier string) error {
	return s.store.Delete(ctx, identifier)
}

// Open returns the stored bytes for identifier when the backend serves files
// through this service; remote backends return false.
func (s *Service) Open(ctx context.Context, identifier string) (io.ReadCloser, bool, error) {
	fs, ok := s.store.(storage.FileServer)
	if !ok {
		return nil, false, nil
	}
	rc, err := fs.Open(ctx, identifier)
	return rc, true, err
}

// ServesFiles reports whether the backend exposes a read-back path.
func (s *Service) ServesFiles() bool {
	_, ok := s.store.(storage.FileServer)
	return ok
}
