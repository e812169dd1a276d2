package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dotdm/cdm/internal/domain/models"
	"github.com/dotdm/cdm/internal/usecase"
)

// FileWriterAdapter writes generated bindings, one Go package directory per binding
type FileWriterAdapter struct{}

// NewFileWriterAdapter creates a new file writer adapter
func NewFileWriterAdapter() *FileWriterAdapter {
	return &FileWriterAdapter{}
}

// WriteBinding writes binding to <dir>/<identifier>/<identifier>.go
func (f *FileWriterAdapter) WriteBinding(ctx context.Context, dir string, binding *models.Binding) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	pkgDir := filepath.Join(dir, binding.Identifier)
	if err := os.MkdirAll(pkgDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create binding directory: %w", err)
	}

	path := filepath.Join(pkgDir, binding.Identifier+".go")
	if err := writeFileAtomic(path, binding.Source); err != nil {
		return "", err
	}
	return path, nil
}

// writeFileAtomic writes data to a sibling temp file and renames it into place.
func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("failed to create temp file for %s: %w", path, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// Ensure the adapter implements the interface
var _ usecase.BindingWriter = (*FileWriterAdapter)(nil)
