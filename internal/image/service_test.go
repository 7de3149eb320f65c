package image

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recette/api/internal/storage"
)

// stubBackend records calls and returns canned results.
type stubBackend struct {
	storeCalls  int
	deleteCalls int
	storeErr    error
	deleteErr   error
	lastDeleted string
}

func (s *stubBackend) Store(ctx context.Context, r io.Reader, size int64, contentType, originalFilename string) (*storage.StoredObject, error) {
	s.storeCalls++
	if s.storeErr != nil {
		return nil, s.storeErr
	}
	return &storage.StoredObject{
		Identifier: storage.NewIdentifier(),
		PublicURL:  "http://cdn.example.com/recettes/stored",
	}, nil
}

func (s *stubBackend) Delete(ctx context.Context, identifier string) error {
	s.deleteCalls++
	s.lastDeleted = identifier
	return s.deleteErr
}

func TestValidateMediaType(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		wantErr     bool
	}{
		{"png", "image/png", false},
		{"jpeg", "image/jpeg", false},
		{"any image subtype", "image/x-whatever", false},
		{"text", "text/plain", true},
		{"json", "application/json", true},
		{"absent", "", true},
		{"image suffix not prefix", "not-image/png", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateMediaType(tt.contentType)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidMediaType)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// The check trusts the declared type: non-image bytes labeled image/* are
// accepted, the bytes are never sniffed.
func TestUploadTrustsDeclaredType(t *testing.T) {
	backend := &stubBackend{}
	svc := NewService(backend)

	obj, err := svc.Upload(context.Background(), strings.NewReader("definitely not a png"), 20, "image/png", "fake.png")
	require.NoError(t, err)
	assert.NotEmpty(t, obj.Identifier)
	assert.Equal(t, 1, backend.storeCalls)
}

func TestUploadRejectionHasNoSideEffect(t *testing.T) {
	backend := &stubBackend{}
	svc := NewService(backend)

	_, err := svc.Upload(context.Background(), strings.NewReader("hello"), 5, "text/plain", "a.txt")
	assert.ErrorIs(t, err, ErrInvalidMediaType)
	assert.Equal(t, 0, backend.storeCalls, "rejected upload must not touch storage")
}

func TestUploadPropagatesUnavailable(t *testing.T) {
	backend := &stubBackend{storeErr: storage.ErrUnavailable}
	svc := NewService(backend)

	_, err := svc.Upload(context.Background(), strings.NewReader("x"), 1, "image/png", "a.png")
	assert.ErrorIs(t, err, storage.ErrUnavailable)
}

func TestServesFilesFollowsBackendCapability(t *testing.T) {
	assert.False(t, NewService(&stubBackend{}).ServesFiles())

	local, err := storage.NewLocalBackend(t.TempDir(), "http://localhost:8080")
	require.NoError(t, err)
	assert.True(t, NewService(local).ServesFiles())
}

func TestOpenOnRemoteBackend(t *testing.T) {
	svc := NewService(&stubBackend{})
	_, ok, err := svc.Open(context.Background(), "recettes/whatever")
	assert.False(t, ok)
	assert.NoError(t, err)
}

func TestDeletePassesIdentifierThrough(t *testing.T) {
	backend := &stubBackend{deleteErr: storage.ErrNotFound}
	svc := NewService(backend)

	err := svc.Delete(context.Background(), "recettes/gone")
	assert.True(t, errors.Is(err, storage.ErrNotFound))
	assert.Equal(t, "recettes/gone", backend.lastDeleted)
}
