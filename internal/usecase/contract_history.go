package usecase

import (
	"context"
	"fmt"

	"github.com/dotdm/cdm/internal/domain"
	"github.com/dotdm/cdm/internal/domain/models"
)

// ContractHistoryResult contains every published version of a name, oldest first
type ContractHistoryResult struct {
	Entry    models.RegistryEntry     `json:"entry"`
	Versions []models.ContractVersion `json:"versions"`
}

// ContractHistory lists the version history of one registry name
type ContractHistory struct {
	client RegistryClient
}

// NewContractHistory creates a new ContractHistory use case
func NewContractHistory(client RegistryClient) *ContractHistory {
	return &ContractHistory{client: client}
}

// Run executes the contract history use case
func (uc *ContractHistory) Run(ctx context.Context, name string) (*ContractHistoryResult, error) {
	entry, err := readEntry(ctx, uc.client, name)
	if err != nil {
		return nil, err
	}
	if !entry.Registered() {
		return nil, fmt.Errorf("contract '%s' is not registered: %w", name, domain.ErrNotFound)
	}

	result := &ContractHistoryResult{Entry: *entry}
	for i := uint32(0); i < entry.VersionCount; i++ {
		addr, err := uc.client.GetAddressAtVersion(ctx, name, i)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s@%d: %w", name, i, err)
		}
		uri, err := uc.client.GetMetadataURIAtVersion(ctx, name, i)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s@%d: %w", name, i, err)
		}
		result.Versions = append(result.Versions, models.ContractVersion{
			Index:             i,
			PublishedContract: models.PublishedContract{Address: addr, MetadataURI: uri},
		})
	}
	return result, nil
}
