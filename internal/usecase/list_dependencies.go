package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/dotdm/cdm/internal/domain"
	"github.com/dotdm/cdm/internal/domain/config"
	"github.com/dotdm/cdm/internal/domain/models"
)

// ListDependenciesParams contains parameters for listing dependencies
type ListDependenciesParams struct {
	StartDir string
}

// DependencyStatus is the resolution outcome of one declared dependency
type DependencyStatus struct {
	models.Dependency
	// Version is nil when resolution failed
	Version      *uint64
	ArtifactPath string
	Err          error
}

// Resolved reports whether the dependency resolved to a cached artifact.
func (s DependencyStatus) Resolved() bool {
	return s.Err == nil
}

// ListDependenciesResult contains every dependency with its status
type ListDependenciesResult struct {
	ManifestPath string
	Dependencies []DependencyStatus
	Summary      DependencySummary
}

// DependencySummary counts dependencies by outcome
type DependencySummary struct {
	Total      int
	Resolved   int
	Latest     int
	Missing    int
	Ambiguous  int
	ByTargetID map[string]int
}

// ListDependencies resolves every dependency in the manifest without failing
// on individual packages
type ListDependencies struct {
	config    *config.RuntimeConfig
	manifests ManifestRepository
	resolver  *ResolveReference
	log       *slog.Logger
}

// NewListDependencies creates a new ListDependencies use case
func NewListDependencies(
	cfg *config.RuntimeConfig,
	manifests ManifestRepository,
	resolver *ResolveReference,
	log *slog.Logger,
) *ListDependencies {
	return &ListDependencies{
		config:    cfg,
		manifests: manifests,
		resolver:  resolver,
		log:       log.With("component", "ListDependencies"),
	}
}

// Run executes the list dependencies use case
func (uc *ListDependencies) Run(ctx context.Context, params ListDependenciesParams) (*ListDependenciesResult, error) {
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

	result := &ListDependenciesResult{
		ManifestPath: manifestPath,
		Summary:      DependencySummary{ByTargetID: make(map[string]int)},
	}

	for _, dep := range manifest.DependencyList() {
		status := DependencyStatus{Dependency: dep}

		ref, _, err := uc.resolver.ResolveIn(ctx, manifest, dep.Package)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			uc.log.Debug("dependency did not resolve", "package", dep.Package, "target", dep.TargetID, "error", err)
			status.Err = err
		} else {
			version := ref.Version
			status.Version = &version
			status.ArtifactPath = ref.ArtifactPath
		}

		result.Dependencies = append(result.Dependencies, status)
		result.Summary.add(status)
	}

	return result, nil
}

func (s *DependencySummary) add(status DependencyStatus) {
	s.Total++
	s.ByTargetID[status.TargetID]++
	if status.Spec.IsLatest() {
		s.Latest++
	}
	switch {
	case status.Err == nil:
		s.Resolved++
	case errors.Is(status.Err, domain.ErrAmbiguousTarget):
		s.Ambiguous++
	default:
		s.Missing++
	}
}
