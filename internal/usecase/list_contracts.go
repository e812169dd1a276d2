package usecase

import (
	"context"

	"github.com/dotdm/cdm/internal/domain/models"
)

// ListContracts lists every registered name with its latest version
type ListContracts struct {
	client RegistryClient
	sink   ProgressSink
}

// NewListContracts creates a new ListContracts use case
func NewListContracts(client RegistryClient, sink ProgressSink) *ListContracts {
	return &ListContracts{client: client, sink: sink}
}

// Run executes the list contracts use case
func (uc *ListContracts) Run(ctx context.Context) ([]*models.RegistryEntry, error) {
	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   StageLoading,
		Message: "Reading registry",
		Spinner: true,
	})

	names, err := listNames(ctx, uc.client)
	if err != nil {
		return nil, err
	}

	entries := make([]*models.RegistryEntry, 0, len(names))
	for _, name := range names {
		entry, err := readEntry(ctx, uc.client, name)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	uc.sink.OnProgress(ctx, ProgressEvent{Stage: StageCompleted, Total: len(entries)})
	return entries, nil
}
