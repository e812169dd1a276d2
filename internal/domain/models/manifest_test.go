package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestVersionSpec_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    VersionSpec
		wantErr bool
	}{
		{name: "integer is pinned", input: `3`, want: PinnedVersion(3)},
		{name: "zero is pinned", input: `0`, want: PinnedVersion(0)},
		{name: "latest string", input: `"latest"`, want: LatestVersion()},
		{name: "any string is latest", input: `"whatever"`, want: LatestVersion()},
		{name: "empty string is latest", input: `""`, want: LatestVersion()},
		{name: "negative rejected", input: `-1`, wantErr: true},
		{name: "float rejected", input: `1.5`, wantErr: true},
		{name: "bool rejected", input: `true`, wantErr: true},
		{name: "object rejected", input: `{"v":1}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got VersionSpec
			err := json.Unmarshal([]byte(tt.input), &got)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestVersionSpec_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(map[string]VersionSpec{"a": PinnedVersion(7), "b": LatestVersion()})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a": 7, "b": "latest"}`, string(data))
}

func TestVersionSpec_Accessors(t *testing.T) {
	v, ok := PinnedVersion(12).Pinned()
	assert.True(t, ok)
	assert.Equal(t, uint64(12), v)
	assert.False(t, PinnedVersion(12).IsLatest())
	assert.Equal(t, "12", PinnedVersion(12).String())

	_, ok = LatestVersion().Pinned()
	assert.False(t, ok)
	assert.True(t, LatestVersion().IsLatest())
	assert.Equal(t, "latest", LatestVersion().String())
}

func TestParseVersionSpec(t *testing.T) {
	spec, err := ParseVersionSpec("4")
	require.NoError(t, err)
	assert.Equal(t, PinnedVersion(4), spec)

	spec, err = ParseVersionSpec("latest")
	require.NoError(t, err)
	assert.True(t, spec.IsLatest())

	spec, err = ParseVersionSpec("")
	require.NoError(t, err)
	assert.True(t, spec.IsLatest())

	_, err = ParseVersionSpec("v4")
	assert.Error(t, err)
}

func TestManifest_JSON(t *testing.T) {
	raw := `{
  "targets": {
    "cde13bf04ccf095c": {
      "asset-hub": "ws://127.0.0.1:10020",
      "bulletin": "http://127.0.0.1:8283",
      "registry": "0x0000000000000000000000000000000000000001"
    }
  },
  "dependencies": {
    "cde13bf04ccf095c": {
      "@polkadot/counter": 2,
      "@polkadot/reputation": "latest"
    }
  }
}`
	var m Manifest
	require.NoError(t, json.Unmarshal([]byte(raw), &m))

	require.Contains(t, m.Targets, "cde13bf04ccf095c")
	assert.Equal(t, "ws://127.0.0.1:10020", m.Targets["cde13bf04ccf095c"].AssetHub)
	assert.Equal(t, PinnedVersion(2), m.Dependencies["cde13bf04ccf095c"]["@polkadot/counter"])
	assert.True(t, m.Dependencies["cde13bf04ccf095c"]["@polkadot/reputation"].IsLatest())
}

func TestManifest_YAML(t *testing.T) {
	raw := `
targets:
  abcd:
    asset-hub: ws://localhost:9944
    bulletin: http://localhost:8283
    registry: "0x01"
dependencies:
  abcd:
    counter: 5
    token: latest
    hexed: 0x10
`
	var m Manifest
	require.NoError(t, yaml.Unmarshal([]byte(raw), &m))

	assert.Equal(t, PinnedVersion(5), m.Dependencies["abcd"]["counter"])
	assert.True(t, m.Dependencies["abcd"]["token"].IsLatest())
	assert.Equal(t, PinnedVersion(16), m.Dependencies["abcd"]["hexed"])
	assert.Equal(t, "0x01", m.Targets["abcd"].Registry)
}

func TestManifest_YAMLRejectsBadSpecs(t *testing.T) {
	for _, raw := range []string{
		"dependencies:\n  t:\n    counter: -3\n",
		"dependencies:\n  t:\n    counter: 1.5\n",
		"dependencies:\n  t:\n    counter: true\n",
		"dependencies:\n  t:\n    counter: [1]\n",
	} {
		var m Manifest
		assert.Error(t, yaml.Unmarshal([]byte(raw), &m), raw)
	}
}

func TestManifest_DependencyList(t *testing.T) {
	m := NewManifest()
	m.SetDependency("bbbb", "zeta", LatestVersion())
	m.SetDependency("aaaa", "omega", PinnedVersion(1))
	m.SetDependency("bbbb", "alpha", PinnedVersion(2))
	m.Targets["cccc"] = Target{}

	deps := m.DependencyList()
	require.Len(t, deps, 3)
	assert.Equal(t, Dependency{TargetID: "aaaa", Package: "omega", Spec: PinnedVersion(1)}, deps[0])
	assert.Equal(t, "alpha", deps[1].Package)
	assert.Equal(t, "zeta", deps[2].Package)

	assert.Equal(t, []string{"aaaa", "bbbb", "cccc"}, m.TargetIDs())
}
