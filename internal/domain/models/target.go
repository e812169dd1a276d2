package models

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// Target identifies the deployment endpoints of one target. The resolver treats it as opaque.
type Target struct {
	AssetHub string `json:"asset-hub" yaml:"asset-hub"`
	Bulletin string `json:"bulletin" yaml:"bulletin"`
	Registry string `json:"registry" yaml:"registry"`
}

// Hash returns the identifier cdm assigns to this endpoint triple.
func (t Target) Hash() string {
	return ComputeTargetHash(t.AssetHub, t.Bulletin, t.Registry)
}

// ComputeTargetHash is the first 8 bytes of blake2b-256 over the newline-joined endpoints, hex encoded.
func ComputeTargetHash(assetHubURL, bulletinURL, registryAddress string) string {
	sum := blake2b.Sum256([]byte(assetHubURL + "\n" + bulletinURL + "\n" + registryAddress))
	return hex.EncodeToString(sum[:8])
}
