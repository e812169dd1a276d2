package adapters

import (
	"log/slog"

	"github.com/google/wire"

	"github.com/dotdm/cdm/internal/adapters/abi"
	"github.com/dotdm/cdm/internal/adapters/fs"
	"github.com/dotdm/cdm/internal/adapters/interactive"
	"github.com/dotdm/cdm/internal/adapters/kvstore"
	"github.com/dotdm/cdm/internal/adapters/progress"
	"github.com/dotdm/cdm/internal/adapters/registry"
	"github.com/dotdm/cdm/internal/adapters/template"
	"github.com/dotdm/cdm/internal/domain/config"
	"github.com/dotdm/cdm/internal/usecase"
)

// ProvideRegistryHost hosts the registry on the configured store. The
// cleanup function closes it.
func ProvideRegistryHost(cfg *config.RuntimeConfig, log *slog.Logger) (*kvstore.Host, func()) {
	host := kvstore.NewHost(kvstore.NewBackend(cfg), log)
	cleanup := func() {
		if err := host.Close(); err != nil {
			log.Warn("failed to close registry store", "error", err)
		}
	}
	return host, cleanup
}

// FSSet provides filesystem-based implementations
var FSSet = wire.NewSet(
	fs.NewManifestStoreAdapter,
	wire.Bind(new(usecase.ManifestRepository), new(*fs.ManifestStoreAdapter)),

	fs.NewArtifactCacheAdapter,
	wire.Bind(new(usecase.VersionPointerReader), new(*fs.ArtifactCacheAdapter)),
	wire.Bind(new(usecase.ArtifactLocator), new(*fs.ArtifactCacheAdapter)),
	wire.Bind(new(usecase.ArtifactCache), new(*fs.ArtifactCacheAdapter)),

	fs.NewFileWriterAdapter,
	wire.Bind(new(usecase.BindingWriter), new(*fs.FileWriterAdapter)),
)

// ABISet provides interface description parsing
var ABISet = wire.NewSet(
	abi.NewInterfaceLoaderAdapter,
	wire.Bind(new(usecase.InterfaceLoader), new(*abi.InterfaceLoaderAdapter)),
)

// TemplateSet provides template-based implementations
var TemplateSet = wire.NewSet(
	template.NewBindingGeneratorAdapter,
	wire.Bind(new(usecase.BindingGenerator), new(*template.BindingGeneratorAdapter)),
)

// RegistrySet provides the registry host and its client
var RegistrySet = wire.NewSet(
	ProvideRegistryHost,
	wire.Bind(new(registry.Executor), new(*kvstore.Host)),
	registry.NewRegistryClientAdapter,
	wire.Bind(new(usecase.RegistryClient), new(*registry.RegistryClientAdapter)),
)

// InteractiveSet provides interactive implementations
var InteractiveSet = wire.NewSet(
	interactive.NewSelectorAdapter,
	wire.Bind(new(usecase.ContractSelector), new(*interactive.SelectorAdapter)),
)

// ProgressSet provides the session progress sink
var ProgressSet = wire.NewSet(
	progress.NewProgressSink,
)

// AllAdapters includes all adapter sets
var AllAdapters = wire.NewSet(
	FSSet,
	ABISet,
	TemplateSet,
	RegistrySet,
	InteractiveSet,
	ProgressSet,
)
