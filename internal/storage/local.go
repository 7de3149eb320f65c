package storage

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
)

// LocalBackend stores assets as files in a single upload directory. The
// public URL points back at this service's own retrieve endpoint.
type LocalBackend struct {
	dir     string
	baseURL string
}

// NewLocalBackend ensures the upload directory exists and returns a backend
// writing into it. publicBase is this service's externally visible base URL.
func NewLocalBackend(dir, publicBase string) (*LocalBackend, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir %s: %w", dir, err)
	}
	log.Printf("storage: local backend, dir=%s", dir)
	return &LocalBackend{dir: dir, baseURL: publicBase}, nil
}

// Store writes the stream to <dir>/<uuid><ext>. The generated name keeps the
// original filename's extension so files stay inspectable on disk; nothing
// else of the caller-supplied name is used.
func (b *LocalBackend) Store(ctx context.Context, r io.Reader, size int64, contentType, originalFilename string) (*StoredObject, error) {
	name := NewIdentifier() + SafeExt(originalFilename)

	f, err := os.Create(filepath.Join(b.dir, name))
	if err != nil {
		return nil, fmt.Errorf("%w: create %s: %v", ErrUnavailable, name, err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(f.Name())
		return nil, fmt.Errorf("%w: write %s: %v", ErrUnavailable, name, err)
	}

	return &StoredObject{
		Identifier: name,
		PublicURL:  b.baseURL + "/api/images/" + name,
	}, nil
}

// Open returns the stored bytes for identifier.
func (b *LocalBackend) Open(ctx context.Context, identifier string) (io.ReadCloser, error) {
	f, err := os.Open(b.path(identifier))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: open %s: %v", ErrUnavailable, identifier, err)
	}
	return f, nil
}

// Delete removes the asset file. A missing file reports ErrNotFound rather
// than failing silently, so repeated deletes surface as 404 to the caller.
func (b *LocalBackend) Delete(ctx context.Context, identifier string) error {
	err := os.Remove(b.path(identifier))
	if os.IsNotExist(err) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("%w: remove %s: %v", ErrUnavailable, identifier, err)
	}
	return nil
}

// path joins the identifier under the upload dir. Base strips any directory
// components so an identifier can never address outside the dir.
func (b *LocalBackend) path(identifier string) string {
	return filepath.Join(b.dir, filepath.Base(identifier))
}
