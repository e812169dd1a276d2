package models

// InterfaceFileName is the name of the interface description inside a version directory.
const InterfaceFileName = "abi.json"

// ResolvedReference is the transient result of resolving one package reference.
type ResolvedReference struct {
	TargetID     string `json:"targetId"`
	PackageName  string `json:"packageName"`
	Version      uint64 `json:"version"`
	ArtifactPath string `json:"artifactPath"`
}

// CachedContract is the record the cache writer stores next to an interface description.
type CachedContract struct {
	Name        string `json:"name"`
	Target      string `json:"target"`
	Version     uint64 `json:"version"`
	Address     string `json:"address"`
	MetadataURI string `json:"metadataUri"`
}

// CachedPackage summarises one package directory of the artifact cache.
type CachedPackage struct {
	TargetID string
	Package  string
	Versions []uint64
	// Latest is nil when the package has no readable latest pointer
	Latest *uint64
}
