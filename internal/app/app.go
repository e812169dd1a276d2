package app

import (
	"log/slog"

	"github.com/dotdm/cdm/internal/domain/config"
	"github.com/dotdm/cdm/internal/usecase"
)

// App is the main application container that holds all use cases
type App struct {
	// Configuration
	Config *config.RuntimeConfig
	Log    *slog.Logger

	// Shared dependencies
	Sink usecase.ProgressSink

	// Resolution
	ResolveReference *usecase.ResolveReference
	GenerateBinding  *usecase.GenerateBinding
	ListDependencies *usecase.ListDependencies
	ListTargets      *usecase.ListTargets

	// Artifact cache
	AddToCache *usecase.AddToCache
	ListCache  *usecase.ListCache

	// Registry
	PublishContract *usecase.PublishContract
	ShowContract    *usecase.ShowContract
	ListContracts   *usecase.ListContracts
	ContractHistory *usecase.ContractHistory
}

// NewApp creates a new application instance with all use cases
func NewApp(
	cfg *config.RuntimeConfig,
	log *slog.Logger,
	sink usecase.ProgressSink,
	resolveReference *usecase.ResolveReference,
	generateBinding *usecase.GenerateBinding,
	listDependencies *usecase.ListDependencies,
	listTargets *usecase.ListTargets,
	addToCache *usecase.AddToCache,
	listCache *usecase.ListCache,
	publishContract *usecase.PublishContract,
	showContract *usecase.ShowContract,
	listContracts *usecase.ListContracts,
	contractHistory *usecase.ContractHistory,
) *App {
	return &App{
		Config:           cfg,
		Log:              log,
		Sink:             sink,
		ResolveReference: resolveReference,
		GenerateBinding:  generateBinding,
		ListDependencies: listDependencies,
		ListTargets:      listTargets,
		AddToCache:       addToCache,
		ListCache:        listCache,
		PublishContract:  publishContract,
		ShowContract:     showContract,
		ListContracts:    listContracts,
		ContractHistory:  contractHistory,
	}
}
