package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ethereum/go-ethereum/common"
	"github.com/samber/lo"

	"github.com/dotdm/cdm/internal/domain"
	"github.com/dotdm/cdm/internal/domain/config"
	"github.com/dotdm/cdm/internal/domain/models"
)

// AddToCacheParams contains parameters for importing a package version into the cache
type AddToCacheParams struct {
	Package string
	// Version is nil to append after the newest cached version
	Version *uint64
	// TargetID may be empty when Target is given; the id is then derived from its endpoints
	TargetID    string
	Target      *models.Target
	ABIPath     string
	Address     string
	MetadataURI string
	// Metadata is written as metadata.json when non-empty
	Metadata []byte
	// SkipManifest leaves cdm.json untouched
	SkipManifest bool
}

// AddToCacheResult contains the outcome of a cache import
type AddToCacheResult struct {
	Contract      models.CachedContract
	Path          string
	IsLatest      bool
	ManifestPath  string
	ManifestSpec  models.VersionSpec
	ManifestSaved bool
}

// AddToCache imports an interface description into the artifact cache and
// records the dependency in the manifest
type AddToCache struct {
	config    *config.RuntimeConfig
	manifests ManifestRepository
	cache     ArtifactCache
	loader    InterfaceLoader
	log       *slog.Logger
}

// NewAddToCache creates a new AddToCache use case
func NewAddToCache(
	cfg *config.RuntimeConfig,
	manifests ManifestRepository,
	cache ArtifactCache,
	loader InterfaceLoader,
	log *slog.Logger,
) *AddToCache {
	return &AddToCache{
		config:    cfg,
		manifests: manifests,
		cache:     cache,
		loader:    loader,
		log:       log.With("component", "AddToCache"),
	}
}

// Run executes the add to cache use case
func (uc *AddToCache) Run(ctx context.Context, params AddToCacheParams) (*AddToCacheResult, error) {
	if params.Package == "" {
		return nil, errors.New("package name is required")
	}
	targetID := params.TargetID
	if targetID == "" {
		if params.Target == nil {
			return nil, errors.New("a target id or target endpoints are required")
		}
		targetID = params.Target.Hash()
	}
	if params.Address != "" && !common.IsHexAddress(params.Address) {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidAddress, params.Address)
	}

	data, err := os.ReadFile(params.ABIPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read interface file: %w", err)
	}
	iface, err := uc.loader.Parse(params.ABIPath, data)
	if err != nil {
		return nil, err
	}

	existing, err := uc.cache.ListVersions(ctx, targetID, params.Package)
	if err != nil {
		return nil, err
	}
	newest, hasNewest := lo.Max(existing), len(existing) > 0

	version := uint64(0)
	switch {
	case params.Version != nil:
		version = *params.Version
	case hasNewest:
		version = newest + 1
	}
	isLatest := !hasNewest || version >= newest

	contract := models.CachedContract{
		Name:        params.Package,
		Target:      targetID,
		Version:     version,
		MetadataURI: params.MetadataURI,
	}
	if params.Address != "" {
		contract.Address = common.HexToAddress(params.Address).Hex()
	}

	spec := models.LatestVersion()
	if params.Version != nil {
		spec = models.PinnedVersion(version)
	}

	// A refused dependency must leave the cache untouched
	var manifest *models.Manifest
	var manifestPath string
	if !params.SkipManifest {
		if manifest, manifestPath, err = uc.prepareManifest(ctx, targetID, params.Package); err != nil {
			return nil, err
		}
	}

	path, err := uc.cache.SaveContract(ctx, CacheEntry{
		Contract:  contract,
		ABI:       iface.Raw,
		Metadata:  params.Metadata,
		SetLatest: isLatest,
	})
	if err != nil {
		return nil, err
	}
	uc.log.Debug("cached package version", "package", params.Package, "target", targetID, "version", version, "latest", isLatest)

	result := &AddToCacheResult{
		Contract: contract,
		Path:     path,
		IsLatest: isLatest,
	}
	if params.SkipManifest {
		return result, nil
	}

	if params.Target != nil {
		manifest.Normalize()
		manifest.Targets[targetID] = *params.Target
	}
	manifest.SetDependency(targetID, params.Package, spec)

	if err := uc.manifests.Save(ctx, manifestPath, manifest); err != nil {
		return nil, err
	}
	result.ManifestPath = manifestPath
	result.ManifestSpec = spec
	result.ManifestSaved = true
	return result, nil
}

// prepareManifest loads the project manifest, or starts a new one in the
// project root, and refuses a package another target already declares.
func (uc *AddToCache) prepareManifest(ctx context.Context, targetID, pkg string) (*models.Manifest, string, error) {
	manifest := models.NewManifest()
	manifestPath, err := uc.manifests.Locate(ctx, uc.config.WorkDir)
	switch {
	case err == nil:
		if manifest, err = uc.manifests.Load(ctx, manifestPath); err != nil {
			return nil, "", err
		}
	case errors.Is(err, domain.ErrManifestNotFound):
		manifestPath = filepath.Join(uc.config.ProjectRoot, "cdm.json")
	default:
		return nil, "", err
	}

	for otherID, deps := range manifest.Dependencies {
		if _, ok := deps[pkg]; ok && otherID != targetID {
			return nil, "", domain.AmbiguousTargetErr{Package: pkg, Targets: []string{otherID, targetID}}
		}
	}
	return manifest, manifestPath, nil
}
