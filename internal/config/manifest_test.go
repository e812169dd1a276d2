package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dotdm/cdm/internal/domain"
	"github.com/dotdm/cdm/internal/domain/models"
)

const sampleManifest = `{
  "targets": {
    "cde13bf04ccf095c": {
      "asset-hub": "ws://127.0.0.1:10020",
      "bulletin": "http://127.0.0.1:8283",
      "registry": "0x0000000000000000000000000000000000000001"
    }
  },
  "dependencies": {
    "cde13bf04ccf095c": {
      "@polkadot/counter": 3,
      "@polkadot/reputation": "latest"
    }
  }
}`

func TestFindManifest(t *testing.T) {
	root := t.TempDir()
	manifest := filepath.Join(root, "cdm.json")
	writeFile(t, manifest, sampleManifest)
	deep := filepath.Join(root, "a", "b", "c", "d")
	require.NoError(t, os.MkdirAll(deep, 0755))

	fromRoot, err := FindManifest(root)
	require.NoError(t, err)
	fromDeep, err := FindManifest(deep)
	require.NoError(t, err)

	assert.Equal(t, manifest, fromRoot)
	assert.Equal(t, fromRoot, fromDeep)
}

func TestFindManifest_NearestWins(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "cdm.json"), `{}`)
	inner := filepath.Join(root, "pkg")
	writeFile(t, filepath.Join(inner, "cdm.yaml"), "targets: {}\n")

	found, err := FindManifest(filepath.Join(inner))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(inner, "cdm.yaml"), found)
}

func TestFindManifest_JSONPreferredOverYAML(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "cdm.yml"), "targets: {}\n")
	writeFile(t, filepath.Join(root, "cdm.json"), `{}`)

	found, err := FindManifest(root)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "cdm.json"), found)
}

func TestFindManifest_IgnoresDirectories(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "inner", "cdm.json"), 0755))
	writeFile(t, filepath.Join(root, "cdm.json"), `{}`)

	found, err := FindManifest(filepath.Join(root, "inner"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "cdm.json"), found)
}

func TestParseManifest(t *testing.T) {
	m, err := ParseManifest("cdm.json", []byte(sampleManifest))
	require.NoError(t, err)

	require.Contains(t, m.Targets, "cde13bf04ccf095c")
	target := m.Targets["cde13bf04ccf095c"]
	assert.Equal(t, "ws://127.0.0.1:10020", target.AssetHub)
	assert.Equal(t, "cde13bf04ccf095c", target.Hash())

	deps := m.Dependencies["cde13bf04ccf095c"]
	assert.Equal(t, models.PinnedVersion(3), deps["@polkadot/counter"])
	assert.True(t, deps["@polkadot/reputation"].IsLatest())
}

func TestParseManifest_MissingSections(t *testing.T) {
	m, err := ParseManifest("cdm.json", []byte(`{}`))
	require.NoError(t, err)
	assert.NotNil(t, m.Targets)
	assert.NotNil(t, m.Dependencies)
	assert.Empty(t, m.DependencyList())
}

func TestParseManifest_Malformed(t *testing.T) {
	tests := []struct {
		name string
		path string
		data string
	}{
		{"not json", "cdm.json", `{"targets": `},
		{"array root", "cdm.json", `[]`},
		{"negative version", "cdm.json", `{"dependencies": {"t": {"p": -1}}}`},
		{"float version", "cdm.json", `{"dependencies": {"t": {"p": 1.5}}}`},
		{"bool version", "cdm.json", `{"dependencies": {"t": {"p": true}}}`},
		{"object version", "cdm.json", `{"dependencies": {"t": {"p": {}}}}`},
		{"unknown field", "cdm.json", `{"targets": {}, "extra": 1}`},
		{"targets wrong type", "cdm.json", `{"targets": []}`},
		{"trailing data", "cdm.json", `{} {}`},
		{"empty yaml", "cdm.yaml", ``},
		{"yaml bool version", "cdm.yaml", "dependencies:\n  t:\n    p: true\n"},
		{"yaml unknown field", "cdm.yml", "extra: 1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseManifest(tt.path, []byte(tt.data))
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrManifestMalformed)
			assert.Contains(t, err.Error(), tt.path)
		})
	}
}

func TestParseManifest_YAML(t *testing.T) {
	data := `
targets:
  abcd:
    asset-hub: ws://hub
    bulletin: http://bulletin
    registry: "0x01"
dependencies:
  abcd:
    counter: 2
    token: latest
`
	m, err := ParseManifest("cdm.yaml", []byte(data))
	require.NoError(t, err)
	assert.Equal(t, "ws://hub", m.Targets["abcd"].AssetHub)
	assert.Equal(t, models.PinnedVersion(2), m.Dependencies["abcd"]["counter"])
	assert.True(t, m.Dependencies["abcd"]["token"].IsLatest())
}

func TestLoadManifest_Missing(t *testing.T) {
	_, err := LoadManifest(filepath.Join(t.TempDir(), "cdm.json"))
	assert.ErrorIs(t, err, domain.ErrManifestNotFound)
}

func TestWriteManifest_RoundTrip(t *testing.T) {
	for _, name := range []string{"cdm.json", "cdm.yaml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)

			m := models.NewManifest()
			m.Targets["abcd"] = models.Target{AssetHub: "ws://hub", Bulletin: "http://b", Registry: "0x01"}
			m.SetDependency("abcd", "counter", models.PinnedVersion(7))
			m.SetDependency("abcd", "token", models.LatestVersion())

			require.NoError(t, WriteManifest(path, m))
			loaded, err := LoadManifest(path)
			require.NoError(t, err)
			assert.Equal(t, m, loaded)
		})
	}
}

func TestWriteManifest_JSONFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cdm.json")
	m := models.NewManifest()
	m.SetDependency("abcd", "token", models.LatestVersion())

	require.NoError(t, WriteManifest(path, m))
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Contains(t, string(data), "\n  \"dependencies\": {")
	assert.Contains(t, string(data), `"token": "latest"`)
	assert.Equal(t, byte('\n'), data[len(data)-1])
}
