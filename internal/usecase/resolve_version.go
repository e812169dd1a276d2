package usecase

import (
	"context"
	"log/slog"

	"github.com/dotdm/cdm/internal/domain"
	"github.com/dotdm/cdm/internal/domain/models"
)

// ResolveVersion finds the single target declaring a package and turns its
// version specifier into a concrete version number.
type ResolveVersion struct {
	pointers VersionPointerReader
	log      *slog.Logger
}

// NewResolveVersion creates a new ResolveVersion use case
func NewResolveVersion(pointers VersionPointerReader, log *slog.Logger) *ResolveVersion {
	return &ResolveVersion{
		pointers: pointers,
		log:      log.With("component", "ResolveVersion"),
	}
}

// Lookup searches every target's dependencies for pkg. The package must be
// declared by exactly one target.
func (uc *ResolveVersion) Lookup(manifest *models.Manifest, pkg string) (string, models.VersionSpec, error) {
	var (
		matches []string
		spec    models.VersionSpec
	)
	for targetID, deps := range manifest.Dependencies {
		if s, ok := deps[pkg]; ok {
			matches = append(matches, targetID)
			spec = s
		}
	}

	switch len(matches) {
	case 0:
		return "", models.VersionSpec{}, domain.PackageNotFoundErr{Package: pkg}
	case 1:
		return matches[0], spec, nil
	default:
		return "", models.VersionSpec{}, domain.AmbiguousTargetErr{Package: pkg, Targets: matches}
	}
}

// Resolve returns the version a specifier denotes. Pinned versions never
// touch the cache; Latest reads the pointer record on every call.
func (uc *ResolveVersion) Resolve(ctx context.Context, targetID, pkg string, spec models.VersionSpec) (uint64, error) {
	if v, ok := spec.Pinned(); ok {
		uc.log.Debug("using pinned version", "package", pkg, "target", targetID, "version", v)
		return v, nil
	}

	v, err := uc.pointers.ReadLatest(ctx, targetID, pkg)
	if err != nil {
		return 0, err
	}
	uc.log.Debug("resolved latest version", "package", pkg, "target", targetID, "version", v)
	return v, nil
}
