package usecase

import (
	"context"

	"github.com/dotdm/cdm/internal/domain/config"
	"github.com/dotdm/cdm/internal/domain/models"
)

// TargetStatus is one manifest target with its identifier audit
type TargetStatus struct {
	ID           string        `json:"id"`
	Target       models.Target `json:"target"`
	Declared     bool          `json:"declared"`
	ComputedHash string        `json:"computedHash,omitempty"`
	Dependencies int           `json:"dependencies"`
}

// HashMatches reports whether the target id is the hash of its endpoints.
func (s TargetStatus) HashMatches() bool {
	return s.Declared && s.ID == s.ComputedHash
}

// ListTargetsResult contains all targets of the manifest
type ListTargetsResult struct {
	ManifestPath string
	Targets      []TargetStatus
}

// ListTargets lists manifest targets and checks their identifiers
type ListTargets struct {
	config    *config.RuntimeConfig
	manifests ManifestRepository
}

// NewListTargets creates a new ListTargets use case
func NewListTargets(cfg *config.RuntimeConfig, manifests ManifestRepository) *ListTargets {
	return &ListTargets{config: cfg, manifests: manifests}
}

// Run executes the list targets use case
func (uc *ListTargets) Run(ctx context.Context, startDir string) (*ListTargetsResult, error) {
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

	result := &ListTargetsResult{ManifestPath: manifestPath}
	// Targets that only appear under dependencies are listed as undeclared
	for _, id := range manifest.TargetIDs() {
		target, declared := manifest.Targets[id]
		status := TargetStatus{
			ID:           id,
			Target:       target,
			Declared:     declared,
			Dependencies: len(manifest.Dependencies[id]),
		}
		if declared {
			status.ComputedHash = target.Hash()
		}
		result.Targets = append(result.Targets, status)
	}
	return result, nil
}
