package fs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	iofs "io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/dotdm/cdm/internal/domain"
	"github.com/dotdm/cdm/internal/domain/config"
	"github.com/dotdm/cdm/internal/domain/models"
	"github.com/dotdm/cdm/internal/usecase"
)

const (
	contractsDirName  = "contracts"
	latestPointerName = "latest"
	infoFileName      = "info.json"
	metadataFileName  = "metadata.json"
)

// ArtifactCacheAdapter implements the artifact cache rooted at a per-user directory:
//
//	<root>/<target>/contracts/<package>/<version>/abi.json
//	<root>/<target>/contracts/<package>/latest
type ArtifactCacheAdapter struct {
	root string
	log  *slog.Logger
}

// NewArtifactCacheAdapter creates a new ArtifactCacheAdapter
func NewArtifactCacheAdapter(cfg *config.RuntimeConfig, log *slog.Logger) *ArtifactCacheAdapter {
	return &ArtifactCacheAdapter{
		root: cfg.CacheRoot,
		log:  log.With("component", "ArtifactCache"),
	}
}

// Root returns the cache root directory
func (a *ArtifactCacheAdapter) Root() string {
	return a.root
}

func (a *ArtifactCacheAdapter) packageDir(targetID, pkg string) string {
	return filepath.Join(a.root, targetID, contractsDirName, filepath.FromSlash(pkg))
}

// checkNames rejects a target or package that would address a path outside
// its own directory under the cache root.
func checkNames(targetID, pkg string) error {
	if !cleanSegment(targetID) {
		return fmt.Errorf("%w: %q", domain.ErrInvalidTargetID, targetID)
	}
	for _, segment := range strings.Split(pkg, "/") {
		if !cleanSegment(segment) {
			return fmt.Errorf("%w: %q", domain.ErrInvalidPackageName, pkg)
		}
	}
	return nil
}

func cleanSegment(s string) bool {
	return s != "" && s != "." && s != ".." && !strings.ContainsAny(s, `/\`)
}

// ReadLatest reads the latest pointer of a package. The pointer is either a
// symlink whose target's base name is the version, or a regular file holding it.
func (a *ArtifactCacheAdapter) ReadLatest(ctx context.Context, targetID, pkg string) (uint64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if err := checkNames(targetID, pkg); err != nil {
		return 0, err
	}
	path := filepath.Join(a.packageDir(targetID, pkg), latestPointerName)

	info, err := os.Lstat(path)
	if err != nil {
		return 0, domain.LatestPointerMissingErr{Package: pkg, Path: path, Err: err}
	}

	var value string
	switch {
	case info.Mode()&os.ModeSymlink != 0:
		dest, err := os.Readlink(path)
		if err != nil {
			return 0, domain.LatestPointerMissingErr{Package: pkg, Path: path, Err: err}
		}
		value = filepath.Base(dest)
	case info.Mode().IsRegular():
		data, err := os.ReadFile(path)
		if err != nil {
			return 0, domain.LatestPointerMissingErr{Package: pkg, Path: path, Err: err}
		}
		value = strings.TrimSpace(string(data))
	default:
		return 0, domain.LatestPointerMalformedErr{Package: pkg, Path: path, Value: info.Mode().String()}
	}

	version, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return 0, domain.LatestPointerMalformedErr{Package: pkg, Path: path, Value: value}
	}
	a.log.Debug("read latest pointer", "path", path, "version", version)
	return version, nil
}

// LocateArtifact returns the path of the interface file for one version.
// The file's content is not validated.
func (a *ArtifactCacheAdapter) LocateArtifact(ctx context.Context, targetID, pkg string, version uint64) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := checkNames(targetID, pkg); err != nil {
		return "", err
	}
	path := filepath.Join(a.packageDir(targetID, pkg), strconv.FormatUint(version, 10), models.InterfaceFileName)

	info, err := os.Stat(path)
	switch {
	case err == nil && !info.IsDir():
		return path, nil
	case err == nil, errors.Is(err, iofs.ErrNotExist):
		return "", domain.ArtifactMissingErr{Package: pkg, Path: path}
	default:
		return "", fmt.Errorf("failed to stat %s: %w", path, err)
	}
}

// SaveContract writes one package version and, when requested, re-points latest at it.
func (a *ArtifactCacheAdapter) SaveContract(ctx context.Context, entry usecase.CacheEntry) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	c := entry.Contract
	if err := checkNames(c.Target, c.Name); err != nil {
		return "", err
	}
	pkgDir := a.packageDir(c.Target, c.Name)
	versionName := strconv.FormatUint(c.Version, 10)
	versionDir := filepath.Join(pkgDir, versionName)

	if err := os.MkdirAll(versionDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create cache directory: %w", err)
	}

	if err := writeFileAtomic(filepath.Join(versionDir, models.InterfaceFileName), entry.ABI); err != nil {
		return "", err
	}
	if len(entry.Metadata) > 0 {
		if err := writeFileAtomic(filepath.Join(versionDir, metadataFileName), entry.Metadata); err != nil {
			return "", err
		}
	}
	info, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal %s: %w", infoFileName, err)
	}
	if err := writeFileAtomic(filepath.Join(versionDir, infoFileName), append(info, '\n')); err != nil {
		return "", err
	}

	if entry.SetLatest {
		if err := a.pointLatest(pkgDir, versionName); err != nil {
			return "", err
		}
	}
	return versionDir, nil
}

// pointLatest replaces the latest pointer in one rename so readers never
// observe a missing or half-written pointer.
func (a *ArtifactCacheAdapter) pointLatest(pkgDir, versionName string) error {
	latest := filepath.Join(pkgDir, latestPointerName)
	tmp := filepath.Join(pkgDir, fmt.Sprintf(".%s.%d", latestPointerName, os.Getpid()))
	_ = os.Remove(tmp)

	if err := os.Symlink(versionName, tmp); err != nil {
		// Filesystems without symlinks get a plain pointer file
		a.log.Debug("symlink unavailable, writing pointer file", "error", err)
		if err := os.WriteFile(tmp, []byte(versionName+"\n"), 0644); err != nil {
			return fmt.Errorf("failed to write latest pointer: %w", err)
		}
	}
	if err := os.Rename(tmp, latest); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to update latest pointer: %w", err)
	}
	return nil
}

// ListVersions returns the cached versions of a package, ascending.
func (a *ArtifactCacheAdapter) ListVersions(ctx context.Context, targetID, pkg string) ([]uint64, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := checkNames(targetID, pkg); err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(a.packageDir(targetID, pkg))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read cache: %w", err)
	}
	return versionsOf(entries), nil
}

// ListPackages walks the cache and summarises every package directory.
func (a *ArtifactCacheAdapter) ListPackages(ctx context.Context) ([]models.CachedPackage, error) {
	targets, err := os.ReadDir(a.root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read cache root: %w", err)
	}

	var packages []models.CachedPackage
	for _, target := range targets {
		if !target.IsDir() {
			continue
		}
		contractsDir := filepath.Join(a.root, target.Name(), contractsDirName)
		err := filepath.WalkDir(contractsDir, func(path string, d iofs.DirEntry, err error) error {
			if err != nil {
				if errors.Is(err, iofs.ErrNotExist) {
					return nil
				}
				return err
			}
			if err := ctx.Err(); err != nil {
				return err
			}
			if !d.IsDir() || path == contractsDir {
				return nil
			}

			entries, err := os.ReadDir(path)
			if err != nil {
				return err
			}
			if !isPackageDir(entries) {
				return nil
			}

			rel, err := filepath.Rel(contractsDir, path)
			if err != nil {
				return err
			}
			pkg := models.CachedPackage{
				TargetID: target.Name(),
				Package:  filepath.ToSlash(rel),
				Versions: versionsOf(entries),
			}
			if v, err := a.ReadLatest(ctx, pkg.TargetID, pkg.Package); err == nil {
				pkg.Latest = &v
			}
			packages = append(packages, pkg)
			return iofs.SkipDir
		})
		if err != nil {
			return nil, fmt.Errorf("failed to walk %s: %w", contractsDir, err)
		}
	}

	sort.Slice(packages, func(i, j int) bool {
		if packages[i].TargetID != packages[j].TargetID {
			return packages[i].TargetID < packages[j].TargetID
		}
		return packages[i].Package < packages[j].Package
	})
	return packages, nil
}

// isPackageDir reports whether a directory holds versions or a latest pointer.
func isPackageDir(entries []os.DirEntry) bool {
	return lo.SomeBy(entries, func(e os.DirEntry) bool {
		if e.Name() == latestPointerName {
			return true
		}
		_, err := strconv.ParseUint(e.Name(), 10, 64)
		return err == nil && e.IsDir()
	})
}

func versionsOf(entries []os.DirEntry) []uint64 {
	versions := lo.FilterMap(entries, func(e os.DirEntry, _ int) (uint64, bool) {
		if !e.IsDir() {
			return 0, false
		}
		v, err := strconv.ParseUint(e.Name(), 10, 64)
		return v, err == nil
	})
	sort.Slice(versions, func(i, j int) bool { return versions[i] < versions[j] })
	return versions
}

// Ensure the adapter implements the interfaces
var (
	_ usecase.VersionPointerReader = (*ArtifactCacheAdapter)(nil)
	_ usecase.ArtifactLocator      = (*ArtifactCacheAdapter)(nil)
	_ usecase.ArtifactCache        = (*ArtifactCacheAdapter)(nil)
)
