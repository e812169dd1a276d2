package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolutionErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
		contains []string
	}{
		{
			name:     "manifest not found suggests install",
			err:      ManifestNotFoundErr{StartDir: "/work/app"},
			sentinel: ErrManifestNotFound,
			contains: []string{"/work/app", "cdm install"},
		},
		{
			name:     "malformed manifest carries path and cause",
			err:      ManifestMalformedErr{Path: "/work/cdm.json", Err: errors.New("unexpected EOF")},
			sentinel: ErrManifestMalformed,
			contains: []string{"/work/cdm.json", "unexpected EOF"},
		},
		{
			name:     "package not found names the package",
			err:      PackageNotFoundErr{Package: "@polkadot/reputation"},
			sentinel: ErrPackageNotFound,
			contains: []string{"'@polkadot/reputation'", "cdm install @polkadot/reputation"},
		},
		{
			name:     "latest pointer missing carries path",
			err:      LatestPointerMissingErr{Package: "counter", Path: "/c/counter/latest"},
			sentinel: ErrLatestPointerMissing,
			contains: []string{"/c/counter/latest", "cdm install counter"},
		},
		{
			name:     "latest pointer malformed carries value",
			err:      LatestPointerMalformedErr{Package: "counter", Path: "/c/counter/latest", Value: "v2"},
			sentinel: ErrLatestPointerMalformed,
			contains: []string{"/c/counter/latest", `"v2"`, "cdm install counter"},
		},
		{
			name:     "artifact missing carries path",
			err:      ArtifactMissingErr{Package: "counter", Path: "/c/counter/3/abi.json"},
			sentinel: ErrArtifactMissing,
			contains: []string{"/c/counter/3/abi.json", "cdm install counter"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := fmt.Errorf("resolve: %w", tt.err)
			assert.ErrorIs(t, wrapped, tt.sentinel)
			for _, s := range tt.contains {
				assert.Contains(t, tt.err.Error(), s)
			}
		})
	}
}

func TestAmbiguousTargetErr_StableOrder(t *testing.T) {
	a := AmbiguousTargetErr{Package: "token", Targets: []string{"beef", "abcd"}}
	b := AmbiguousTargetErr{Package: "token", Targets: []string{"abcd", "beef"}}

	assert.Equal(t, a.Error(), b.Error())
	assert.Contains(t, a.Error(), "[abcd, beef]")
	assert.ErrorIs(t, a, ErrAmbiguousTarget)
	// The caller's slice is left untouched
	assert.Equal(t, []string{"beef", "abcd"}, a.Targets)
}

func TestManifestMalformedErr_Unwrap(t *testing.T) {
	cause := errors.New("bad token")
	err := ManifestMalformedErr{Path: "cdm.json", Err: cause}
	assert.ErrorIs(t, err, cause)
}
