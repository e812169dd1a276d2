package usecase

import (
	"context"

	"github.com/samber/lo"

	"github.com/dotdm/cdm/internal/domain/models"
)

// ListCache lists the packages held in the artifact cache
type ListCache struct {
	cache ArtifactCache
}

// NewListCache creates a new ListCache use case
func NewListCache(cache ArtifactCache) *ListCache {
	return &ListCache{cache: cache}
}

// Run executes the list cache use case
func (uc *ListCache) Run(ctx context.Context, targetID string) ([]models.CachedPackage, error) {
	packages, err := uc.cache.ListPackages(ctx)
	if err != nil {
		return nil, err
	}
	if targetID == "" {
		return packages, nil
	}
	return lo.Filter(packages, func(p models.CachedPackage, _ int) bool {
		return p.TargetID == targetID
	}), nil
}
