package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ethereum/go-ethereum/common"

	"github.com/dotdm/cdm/internal/domain"
	"github.com/dotdm/cdm/internal/domain/config"
	"github.com/dotdm/cdm/internal/domain/models"
)

// PublishContractParams contains parameters for publishing a contract version
type PublishContractParams struct {
	Name        string
	Address     string
	MetadataURI string
	// Caller defaults to the configured caller
	Caller string
}

// PublishContractResult contains the registry state after publishing
type PublishContractResult struct {
	Entry models.RegistryEntry `json:"entry"`
	// Version is the index written by this call; meaningless when Skipped
	Version uint32 `json:"version"`
	// Registered is true when this call claimed the name
	Registered bool `json:"registered"`
	// Skipped is true when the caller does not own the name and nothing changed
	Skipped bool `json:"skipped"`
}

// PublishContract publishes a new latest version of a named contract
type PublishContract struct {
	config *config.RuntimeConfig
	client RegistryClient
	log    *slog.Logger
}

// NewPublishContract creates a new PublishContract use case
func NewPublishContract(cfg *config.RuntimeConfig, client RegistryClient, log *slog.Logger) *PublishContract {
	return &PublishContract{
		config: cfg,
		client: client,
		log:    log.With("component", "PublishContract"),
	}
}

// Run executes the publish contract use case. The registry accepts a
// non-owner publish silently; the outcome is detected here by comparing the
// version count before and after the call.
func (uc *PublishContract) Run(ctx context.Context, params PublishContractParams) (*PublishContractResult, error) {
	if params.Name == "" {
		return nil, errors.New("contract name is required")
	}
	if !common.IsHexAddress(params.Address) {
		return nil, fmt.Errorf("%w: contract address %q", domain.ErrInvalidAddress, params.Address)
	}

	callerHex := params.Caller
	if callerHex == "" {
		callerHex = uc.config.Caller
	}
	if callerHex == "" {
		return nil, errors.New("caller address is required (use --caller or CDM_CALLER)")
	}
	if !common.IsHexAddress(callerHex) {
		return nil, fmt.Errorf("%w: caller %q", domain.ErrInvalidAddress, callerHex)
	}
	caller := common.HexToAddress(callerHex)

	before, err := uc.client.GetVersionCount(ctx, params.Name)
	if err != nil {
		return nil, err
	}

	if err := uc.client.PublishLatest(ctx, caller, params.Name, common.HexToAddress(params.Address), params.MetadataURI); err != nil {
		return nil, fmt.Errorf("failed to publish %s: %w", params.Name, err)
	}

	entry, err := readEntry(ctx, uc.client, params.Name)
	if err != nil {
		return nil, err
	}

	result := &PublishContractResult{
		Entry:      *entry,
		Registered: before == 0 && entry.VersionCount > 0,
		Skipped:    entry.VersionCount == before,
	}
	if !result.Skipped {
		result.Version = entry.VersionCount - 1
	}

	if result.Skipped {
		uc.log.Warn("publish had no effect; caller does not own the name", "name", params.Name, "caller", caller.Hex(), "owner", entry.Owner.Hex())
	} else {
		uc.log.Debug("published contract version", "name", params.Name, "version", result.Version)
	}
	return result, nil
}
