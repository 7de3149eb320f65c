package storage

import (
	"fmt"
	"strings"

	"github.com/recette/api/internal/config"
)

// NewBackend selects and constructs the asset store named by configuration.
// This is the only place the backend kind is branched on.
func NewBackend(cfg *config.Config) (Backend, error) {
	switch strings.ToLower(cfg.StorageBackend) {
	case "local":
		return NewLocalBackend(cfg.UploadDir, cfg.BaseURL)
	case "minio":
		return NewMinioBackend(
			cfg.StorageEndpoint,
			cfg.StorageAccessKey,
			cfg.StorageSecretKey,
			cfg.StorageBucket,
			cfg.StorageFolder,
			cfg.StoragePublicBase,
			cfg.StorageUseSSL,
		)
	default:
		return nil, fmt.Errorf("unsupported storage backend %q", cfg.StorageBackend)
	}
}
