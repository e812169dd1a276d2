package fs

import (
	"context"

	"github.com/dotdm/cdm/internal/config"
	"github.com/dotdm/cdm/internal/domain/models"
	"github.com/dotdm/cdm/internal/usecase"
)

// ManifestStoreAdapter reads and writes cdm manifests on the local filesystem
type ManifestStoreAdapter struct{}

// NewManifestStoreAdapter creates a new ManifestStoreAdapter
func NewManifestStoreAdapter() *ManifestStoreAdapter {
	return &ManifestStoreAdapter{}
}

// Locate returns the nearest manifest at or above startDir
func (s *ManifestStoreAdapter) Locate(ctx context.Context, startDir string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return config.FindManifest(startDir)
}

// Load parses the manifest at path
func (s *ManifestStoreAdapter) Load(ctx context.Context, path string) (*models.Manifest, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return config.LoadManifest(path)
}

// Save writes manifest to path
func (s *ManifestStoreAdapter) Save(ctx context.Context, path string, manifest *models.Manifest) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return config.WriteManifest(path, manifest)
}

// Ensure the adapter implements the interface
var _ usecase.ManifestRepository = (*ManifestStoreAdapter)(nil)
