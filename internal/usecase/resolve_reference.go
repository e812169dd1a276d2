package usecase

import (
	"context"
	"log/slog"

	"github.com/dotdm/cdm/internal/domain/config"
	"github.com/dotdm/cdm/internal/domain/models"
)

// ResolveReferenceParams contains parameters for resolving one package reference
type ResolveReferenceParams struct {
	Package string
	// StartDir is where manifest discovery begins; defaults to the working directory
	StartDir string
}

// ResolveReferenceResult contains the resolved reference and how it was reached
type ResolveReferenceResult struct {
	Reference    models.ResolvedReference
	ManifestPath string
	Spec         models.VersionSpec
}

// ResolveReference runs the resolution pipeline for a single package:
// locate manifest, parse it, pick the target, resolve the version, locate the artifact.
type ResolveReference struct {
	config    *config.RuntimeConfig
	manifests ManifestRepository
	versions  *ResolveVersion
	artifacts ArtifactLocator
	log       *slog.Logger
}

// NewResolveReference creates a new ResolveReference use case
func NewResolveReference(
	cfg *config.RuntimeConfig,
	manifests ManifestRepository,
	versions *ResolveVersion,
	artifacts ArtifactLocator,
	log *slog.Logger,
) *ResolveReference {
	return &ResolveReference{
		config:    cfg,
		manifests: manifests,
		versions:  versions,
		artifacts: artifacts,
		log:       log.With("component", "ResolveReference"),
	}
}

// Run executes the resolution pipeline
func (uc *ResolveReference) Run(ctx context.Context, params ResolveReferenceParams) (*ResolveReferenceResult, error) {
	startDir := params.StartDir
	if startDir == "" {
		startDir = uc.config.WorkDir
	}

	manifestPath, err := uc.manifests.Locate(ctx, startDir)
	if err != nil {
		return nil, err
	}
	manifest, err := uc.manifests.Load(ctx, manifestPath)
	if err != nil {
		return nil, err
	}
	uc.log.Debug("loaded manifest", "path", manifestPath, "targets", len(manifest.Targets))

	ref, spec, err := uc.ResolveIn(ctx, manifest, params.Package)
	if err != nil {
		return nil, err
	}

	return &ResolveReferenceResult{
		Reference:    *ref,
		ManifestPath: manifestPath,
		Spec:         spec,
	}, nil
}

// ResolveIn resolves pkg against an already loaded manifest.
func (uc *ResolveReference) ResolveIn(ctx context.Context, manifest *models.Manifest, pkg string) (*models.ResolvedReference, models.VersionSpec, error) {
	if err := ctx.Err(); err != nil {
		return nil, models.VersionSpec{}, err
	}

	targetID, spec, err := uc.versions.Lookup(manifest, pkg)
	if err != nil {
		return nil, models.VersionSpec{}, err
	}

	version, err := uc.versions.Resolve(ctx, targetID, pkg, spec)
	if err != nil {
		return nil, spec, err
	}

	path, err := uc.artifacts.LocateArtifact(ctx, targetID, pkg, version)
	if err != nil {
		return nil, spec, err
	}

	return &models.ResolvedReference{
		TargetID:     targetID,
		PackageName:  pkg,
		Version:      version,
		ArtifactPath: path,
	}, spec, nil
}
