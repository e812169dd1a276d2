package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors for domain operations
var (
	// ErrNotFound is returned when a requested resource doesn't exist
	ErrNotFound = errors.New("not found")

	// ErrManifestNotFound is returned when no cdm manifest exists between the start directory and the filesystem root
	ErrManifestNotFound = errors.New("manifest not found")

	// ErrManifestMalformed is returned when the manifest cannot be decoded
	ErrManifestMalformed = errors.New("manifest malformed")

	// ErrPackageNotFound is returned when no target declares the package
	ErrPackageNotFound = errors.New("package not found")

	// ErrAmbiguousTarget is returned when more than one target declares the package
	ErrAmbiguousTarget = errors.New("ambiguous target")

	// ErrLatestPointerMissing is returned when a package has no "latest" pointer record in the cache
	ErrLatestPointerMissing = errors.New("latest pointer missing")

	// ErrLatestPointerMalformed is returned when the "latest" pointer does not name an integer version
	ErrLatestPointerMalformed = errors.New("latest pointer malformed")

	// ErrArtifactMissing is returned when the interface description is absent from the cache
	ErrArtifactMissing = errors.New("artifact missing")

	// ErrInvalidInterface is returned when an interface description cannot be parsed
	ErrInvalidInterface = errors.New("invalid interface description")

	// ErrInvalidAddress is returned when an address is not a 20-byte hex string
	ErrInvalidAddress = errors.New("invalid address")

	// ErrInvalidPackageName is returned when a package name cannot be mapped into the cache
	ErrInvalidPackageName = errors.New("invalid package name")

	// ErrInvalidTargetID is returned when a target identifier is not a single path segment
	ErrInvalidTargetID = errors.New("invalid target id")
)

// installHint is the remediation appended to cache-related failures.
func installHint(pkg string) string {
	return fmt.Sprintf("Run 'cdm install %s' first.", pkg)
}

// ManifestNotFoundErr reports that no manifest was found walking upward from StartDir.
type ManifestNotFoundErr struct {
	StartDir string
}

func (e ManifestNotFoundErr) Error() string {
	return fmt.Sprintf("cdm.json not found. Run 'cdm install' to create one. Searched from: %s", e.StartDir)
}

func (e ManifestNotFoundErr) Is(target error) bool { return target == ErrManifestNotFound }

// ManifestMalformedErr reports a structural or type mismatch in the manifest at Path.
type ManifestMalformedErr struct {
	Path string
	Err  error
}

func (e ManifestMalformedErr) Error() string {
	return fmt.Sprintf("failed to parse %s: %v", e.Path, e.Err)
}

func (e ManifestMalformedErr) Unwrap() error { return e.Err }

func (e ManifestMalformedErr) Is(target error) bool { return target == ErrManifestMalformed }

// PackageNotFoundErr reports that no target's dependency map contains Package.
type PackageNotFoundErr struct {
	Package string
}

func (e PackageNotFoundErr) Error() string {
	return fmt.Sprintf("package '%s' not found in cdm.json dependencies. %s", e.Package, installHint(e.Package))
}

func (e PackageNotFoundErr) Is(target error) bool { return target == ErrPackageNotFound }

// AmbiguousTargetErr reports that Package is declared by several targets.
type AmbiguousTargetErr struct {
	Package string
	Targets []string
}

func (e AmbiguousTargetErr) Error() string {
	// Sort for stable output regardless of map iteration order
	targets := make([]string, len(e.Targets))
	copy(targets, e.Targets)
	sort.Strings(targets)

	return fmt.Sprintf("package '%s' found in multiple targets: [%s]. Target disambiguation is not supported; remove the package from all but one target in cdm.json.",
		e.Package, strings.Join(targets, ", "))
}

func (e AmbiguousTargetErr) Is(target error) bool { return target == ErrAmbiguousTarget }

// LatestPointerMissingErr reports that the "latest" pointer record could not be read.
type LatestPointerMissingErr struct {
	Package string
	Path    string
	Err     error
}

func (e LatestPointerMissingErr) Error() string {
	msg := fmt.Sprintf("could not read latest pointer at %s", e.Path)
	if e.Err != nil {
		msg += fmt.Sprintf(": %v", e.Err)
	}
	return msg + ". " + installHint(e.Package)
}

func (e LatestPointerMissingErr) Unwrap() error { return e.Err }

func (e LatestPointerMissingErr) Is(target error) bool { return target == ErrLatestPointerMissing }

// LatestPointerMalformedErr reports that the "latest" pointer names something other than an integer version.
type LatestPointerMalformedErr struct {
	Package string
	Path    string
	Value   string
}

func (e LatestPointerMalformedErr) Error() string {
	return fmt.Sprintf("could not parse version from latest pointer at %s (points to %q). Reinstall with 'cdm install %s'.",
		e.Path, e.Value, e.Package)
}

func (e LatestPointerMalformedErr) Is(target error) bool { return target == ErrLatestPointerMalformed }

// ArtifactMissingErr reports that the interface description is not present at Path.
type ArtifactMissingErr struct {
	Package string
	Path    string
}

func (e ArtifactMissingErr) Error() string {
	return fmt.Sprintf("ABI file not found at %s. Run 'cdm install %s' to download it.", e.Path, e.Package)
}

func (e ArtifactMissingErr) Is(target error) bool { return target == ErrArtifactMissing }
