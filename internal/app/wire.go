//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/spf13/viper"

	"github.com/dotdm/cdm/internal/adapters"
	"github.com/dotdm/cdm/internal/config"
	"github.com/dotdm/cdm/internal/logging"
	"github.com/dotdm/cdm/internal/usecase"
)

// InitApp creates a fully wired App instance. The cleanup function releases
// the registry store.
func InitApp(v *viper.Viper) (*App, func(), error) {
	wire.Build(
		// Configuration
		config.Provider,
		logging.LoggingSet,

		// Adapters
		adapters.AllAdapters,

		// Use cases
		usecase.NewResolveVersion,
		usecase.NewResolveReference,
		usecase.NewGenerateBinding,
		usecase.NewListDependencies,
		usecase.NewListTargets,
		usecase.NewAddToCache,
		usecase.NewListCache,
		usecase.NewPublishContract,
		usecase.NewShowContract,
		usecase.NewListContracts,
		usecase.NewContractHistory,

		// App
		NewApp,
	)
	return nil, nil, nil
}
