package usecase

import (
	"context"
	"fmt"

	"github.com/dotdm/cdm/internal/domain/models"
)

// readEntry assembles the client-side view of one registry name.
func readEntry(ctx context.Context, client RegistryClient, name string) (*models.RegistryEntry, error) {
	entry := &models.RegistryEntry{Name: name}

	count, err := client.GetVersionCount(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read version count of %s: %w", name, err)
	}
	entry.VersionCount = count
	if count == 0 {
		return entry, nil
	}

	if entry.Owner, err = client.GetOwner(ctx, name); err != nil {
		return nil, fmt.Errorf("failed to read owner of %s: %w", name, err)
	}
	if entry.Address, err = client.GetAddress(ctx, name); err != nil {
		return nil, fmt.Errorf("failed to read address of %s: %w", name, err)
	}
	if entry.MetadataURI, err = client.GetMetadataURI(ctx, name); err != nil {
		return nil, fmt.Errorf("failed to read metadata uri of %s: %w", name, err)
	}
	return entry, nil
}

// listNames enumerates every registered name in registration order.
func listNames(ctx context.Context, client RegistryClient) ([]string, error) {
	count, err := client.GetContractCount(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read contract count: %w", err)
	}

	names := make([]string, 0, count)
	for i := uint32(0); i < count; i++ {
		name, err := client.GetContractNameAt(ctx, i)
		if err != nil {
			return nil, fmt.Errorf("failed to read contract name %d: %w", i, err)
		}
		names = append(names, name)
	}
	return names, nil
}
