package usecase

import (
	"context"

	"github.com/ethereum/go-ethereum/common"

	"github.com/dotdm/cdm/internal/domain/models"
)

// ManifestRepository locates, loads and saves the project manifest
type ManifestRepository interface {
	Locate(ctx context.Context, startDir string) (string, error)
	Load(ctx context.Context, path string) (*models.Manifest, error)
	Save(ctx context.Context, path string, manifest *models.Manifest) error
}

// VersionPointerReader reads the "latest" pointer record of a cached package
type VersionPointerReader interface {
	ReadLatest(ctx context.Context, targetID, pkg string) (uint64, error)
}

// ArtifactLocator maps a resolved version to its interface file
type ArtifactLocator interface {
	LocateArtifact(ctx context.Context, targetID, pkg string, version uint64) (string, error)
}

// ArtifactCache is the writable side of the artifact cache
type ArtifactCache interface {
	SaveContract(ctx context.Context, entry CacheEntry) (string, error)
	ListVersions(ctx context.Context, targetID, pkg string) ([]uint64, error)
	ListPackages(ctx context.Context) ([]models.CachedPackage, error)
}

// CacheEntry is one package version to be written into the cache
type CacheEntry struct {
	Contract  models.CachedContract
	ABI       []byte
	Metadata  []byte
	SetLatest bool
}

// InterfaceLoader parses interface descriptions
type InterfaceLoader interface {
	Load(ctx context.Context, path string) (*models.InterfaceDescription, error)
	Parse(path string, data []byte) (*models.InterfaceDescription, error)
}

// BindingGenerator renders binding source for a resolved reference
type BindingGenerator interface {
	Generate(ctx context.Context, ref models.ResolvedReference, iface *models.InterfaceDescription) (*models.Binding, error)
}

// BindingWriter persists generated bindings
type BindingWriter interface {
	WriteBinding(ctx context.Context, dir string, binding *models.Binding) (string, error)
}

// RegistryClient calls the name registry
type RegistryClient interface {
	PublishLatest(ctx context.Context, caller common.Address, name string, addr common.Address, metadataURI string) error
	GetAddress(ctx context.Context, name string) (common.Address, error)
	GetMetadataURI(ctx context.Context, name string) (string, error)
	GetOwner(ctx context.Context, name string) (common.Address, error)
	GetVersionCount(ctx context.Context, name string) (uint32, error)
	GetContractCount(ctx context.Context) (uint32, error)
	GetContractNameAt(ctx context.Context, index uint32) (string, error)
	GetAddressAtVersion(ctx context.Context, name string, version uint32) (common.Address, error)
	GetMetadataURIAtVersion(ctx context.Context, name string, version uint32) (string, error)
}

// ContractSelector handles interactive selection of registry names
type ContractSelector interface {
	SelectContract(ctx context.Context, names []string, prompt string) (string, error)
}

// Progress tracking interfaces

// Progress stages reported by use cases
const (
	StageLoading   = "loading"
	StageBinding   = "binding"
	StageCompleted = "completed"
)

// ProgressEvent represents a progress update
type ProgressEvent struct {
	Stage   string
	Current int
	Total   int
	Message string
	Spinner bool
}

// ProgressSink receives progress events
type ProgressSink interface {
	OnProgress(ctx context.Context, event ProgressEvent)
	Info(message string)
	Error(message string)
}

// NopProgress is a no-op implementation of ProgressSink
type NopProgress struct{}

func (NopProgress) OnProgress(context.Context, ProgressEvent) {}
func (NopProgress) Info(string)                               {}
func (NopProgress) Error(string)                              {}
