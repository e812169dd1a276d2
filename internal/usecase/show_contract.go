package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/dotdm/cdm/internal/domain"
	"github.com/dotdm/cdm/internal/domain/config"
	"github.com/dotdm/cdm/internal/domain/models"
)

// ShowContract is the use case for showing one registry name
type ShowContract struct {
	config   *config.RuntimeConfig
	client   RegistryClient
	selector ContractSelector
}

// NewShowContract creates a new ShowContract use case
func NewShowContract(cfg *config.RuntimeConfig, client RegistryClient, selector ContractSelector) *ShowContract {
	return &ShowContract{
		config:   cfg,
		client:   client,
		selector: selector,
	}
}

// Run shows name, prompting for one when name is empty and the session is interactive
func (uc *ShowContract) Run(ctx context.Context, name string) (*models.RegistryEntry, error) {
	if name == "" {
		selected, err := uc.pick(ctx)
		if err != nil {
			return nil, err
		}
		name = selected
	}

	entry, err := readEntry(ctx, uc.client, name)
	if err != nil {
		return nil, err
	}
	if !entry.Registered() {
		return nil, fmt.Errorf("contract '%s' is not registered: %w", name, domain.ErrNotFound)
	}
	return entry, nil
}

func (uc *ShowContract) pick(ctx context.Context) (string, error) {
	if uc.selector == nil || uc.config.NonInteractive {
		return "", errors.New("contract name is required in non-interactive mode")
	}

	names, err := listNames(ctx, uc.client)
	if err != nil {
		return "", err
	}
	if len(names) == 0 {
		return "", fmt.Errorf("registry is empty: %w", domain.ErrNotFound)
	}

	name, err := uc.selector.SelectContract(ctx, names, "Select a contract:")
	if err != nil {
		return "", fmt.Errorf("contract selection failed: %w", err)
	}
	return name, nil
}
