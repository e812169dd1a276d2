package models

import (
	"github.com/ethereum/go-ethereum/common"
)

// NamedContractInfo is the registry's record for one registered contract name.
// VersionCount-1 is the index of the latest published version.
type NamedContractInfo struct {
	Owner        common.Address
	VersionCount uint32
}

// PublishedContract is one immutable published version of a named contract.
type PublishedContract struct {
	Address     common.Address `json:"address"`
	MetadataURI string         `json:"metadataUri"`
}

// ContractVersion is a published contract together with its version index.
type ContractVersion struct {
	Index uint32 `json:"index"`
	PublishedContract
}

// RegistryEntry is the client-side view of a registered name, assembled from the registry accessors.
type RegistryEntry struct {
	Name         string         `json:"name"`
	Owner        common.Address `json:"owner"`
	VersionCount uint32         `json:"versionCount"`
	Address      common.Address `json:"address"`
	MetadataURI  string         `json:"metadataUri"`
}

// Registered reports whether anything has been published under the name.
func (e *RegistryEntry) Registered() bool {
	return e.VersionCount > 0
}
