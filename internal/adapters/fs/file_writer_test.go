package fs

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dotdm/cdm/internal/domain/models"
)

func TestFileWriter_WriteBinding(t *testing.T) {
	dir := t.TempDir()
	writer := NewFileWriterAdapter()
	binding := &models.Binding{Identifier: "counter_writer", Source: []byte("package counter_writer\n")}

	path, err := writer.WriteBinding(context.Background(), dir, binding)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "counter_writer", "counter_writer.go"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "package counter_writer\n", string(data))

	// Rewriting replaces the file and leaves no temp files behind
	binding.Source = []byte("package counter_writer\n\nconst Version = 2\n")
	_, err = writer.WriteBinding(context.Background(), dir, binding)
	require.NoError(t, err)

	entries, err := os.ReadDir(filepath.Join(dir, "counter_writer"))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "const Version = 2")
}

func TestManifestStore(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	store := NewManifestStoreAdapter()

	manifest := models.NewManifest()
	manifest.SetDependency("aaaa", "counter", models.PinnedVersion(2))
	require.NoError(t, store.Save(ctx, filepath.Join(root, "cdm.json"), manifest))

	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0755))

	path, err := store.Locate(ctx, nested)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "cdm.json"), path)

	loaded, err := store.Load(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, models.PinnedVersion(2), loaded.Dependencies["aaaa"]["counter"])
}
