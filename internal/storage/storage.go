// Package storage defines the interface for asset storage backends.
// Swap implementations by changing the concrete type injected at startup —
// the service never branches on the backend kind at request time.
package storage

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ErrNotFound is returned when no asset exists under the given identifier.
var ErrNotFound = errors.New("asset not found")

// ErrUnavailable is returned when the underlying medium cannot be written or
// reached. The wrapped cause is for server logs only.
var ErrUnavailable = errors.New("storage unavailable")

// StoredObject is the result of a successful store call. It is the sole
// record of the asset: no metadata is persisted anywhere else, so callers
// must retain Identifier to delete the asset later.
type StoredObject struct {
	Identifier string
	PublicURL  string
}

// Backend is the interface every asset store implements.
type Backend interface {
	// Store persists the stream under a freshly generated identifier and
	// returns the identifier together with a publicly dereferenceable URL.
	Store(ctx context.Context, r io.Reader, size int64, contentType, originalFilename string) (*StoredObject, error)
	// Delete removes the asset; ErrNotFound if no such identifier exists.
	Delete(ctx context.Context, identifier string) error
}

// FileServer is implemented by backends whose assets are served back through
// this service itself. Remote backends return CDN URLs instead and do not
// implement it.
type FileServer interface {
	// Open returns the stored bytes for identifier; ErrNotFound if absent.
	Open(ctx context.Context, identifier string) (io.ReadCloser, error)
}

// NewIdentifier returns a random version-4 UUID in canonical hyphenated form.
// 128 bits of randomness stand in for a uniqueness check; concurrent uploads
// never legitimately collide.
func NewIdentifier() string {
	return uuid.NewString()
}

// SafeExt extracts a lowercase file extension from a caller-supplied
// filename. Only the extension is ever used — the rest of the name never
// reaches the stored key, so path traversal text in the original filename is
// inert.
func SafeExt(originalFilename string) string {
	ext := strings.ToLower(filepath.Ext(filepath.Base(originalFilename)))
	if ext == "." || strings.ContainsAny(ext, "/\\") {
		return ""
	}
	return ext
}
