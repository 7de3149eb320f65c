package storage

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

var uuidPattern = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)

func TestNewIdentifierFormat(t *testing.T) {
	id := NewIdentifier()
	assert.Regexp(t, uuidPattern, id)
}

func TestNewIdentifierDistinct(t *testing.T) {
	const n = 1000
	seen := make(map[string]bool, n)
	for i := 0; i < n; i++ {
		id := NewIdentifier()
		assert.False(t, seen[id], "identifier %s generated twice", id)
		seen[id] = true
	}
}

func TestSafeExt(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		want     string
	}{
		{"plain", "photo.png", ".png"},
		{"uppercase", "PHOTO.JPG", ".jpg"},
		{"no extension", "photo", ""},
		{"trailing dot", "photo.", ""},
		{"hidden file", ".env", ".env"},
		{"traversal in name", "../../etc/passwd", ""},
		{"traversal keeps ext", "../../evil.png", ".png"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SafeExt(tt.filename))
		})
	}
}
