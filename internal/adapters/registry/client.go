package registry

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ethereum/go-ethereum/common"

	"github.com/dotdm/cdm/internal/domain/bindings"
	"github.com/dotdm/cdm/internal/usecase"
)

// Executor runs encoded registry calls.
type Executor interface {
	Call(ctx context.Context, caller common.Address, calldata []byte) ([]byte, error)
	StaticCall(ctx context.Context, calldata []byte) ([]byte, error)
}

// RegistryClientAdapter encodes registry calls with the registry ABI
type RegistryClientAdapter struct {
	exec Executor
	log  *slog.Logger
}

// NewRegistryClientAdapter creates a new registry client adapter
func NewRegistryClientAdapter(exec Executor, log *slog.Logger) *RegistryClientAdapter {
	return &RegistryClientAdapter{
		exec: exec,
		log:  log.With("component", "RegistryClient"),
	}
}

// PublishLatest submits a publish call as caller.
func (c *RegistryClientAdapter) PublishLatest(ctx context.Context, caller common.Address, name string, addr common.Address, metadataURI string) error {
	data, err := bindings.RegistryABI.Pack(bindings.MethodPublishLatest, name, addr, metadataURI)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", bindings.MethodPublishLatest, err)
	}
	c.log.Debug("publishing", "name", name, "address", addr.Hex(), "caller", caller.Hex())
	if _, err := c.exec.Call(ctx, caller, data); err != nil {
		return fmt.Errorf("%s failed: %w", bindings.MethodPublishLatest, err)
	}
	return nil
}

// GetAddress returns the latest address of name.
func (c *RegistryClientAdapter) GetAddress(ctx context.Context, name string) (common.Address, error) {
	var out common.Address
	err := c.query(ctx, &out, bindings.MethodGetAddress, name)
	return out, err
}

// GetMetadataURI returns the latest metadata URI of name.
func (c *RegistryClientAdapter) GetMetadataURI(ctx context.Context, name string) (string, error) {
	var out string
	err := c.query(ctx, &out, bindings.MethodGetMetadataURI, name)
	return out, err
}

// GetOwner returns the owner of name.
func (c *RegistryClientAdapter) GetOwner(ctx context.Context, name string) (common.Address, error) {
	var out common.Address
	err := c.query(ctx, &out, bindings.MethodGetOwner, name)
	return out, err
}

// GetVersionCount returns how many versions of name were published.
func (c *RegistryClientAdapter) GetVersionCount(ctx context.Context, name string) (uint32, error) {
	var out uint32
	err := c.query(ctx, &out, bindings.MethodGetVersionCount, name)
	return out, err
}

// GetContractCount returns how many names are registered.
func (c *RegistryClientAdapter) GetContractCount(ctx context.Context) (uint32, error) {
	var out uint32
	err := c.query(ctx, &out, bindings.MethodGetContractCount)
	return out, err
}

// GetContractNameAt returns the name registered at index.
func (c *RegistryClientAdapter) GetContractNameAt(ctx context.Context, index uint32) (string, error) {
	var out string
	err := c.query(ctx, &out, bindings.MethodGetContractNameAt, index)
	return out, err
}

// GetAddressAtVersion returns the address of one published version.
func (c *RegistryClientAdapter) GetAddressAtVersion(ctx context.Context, name string, version uint32) (common.Address, error) {
	var out common.Address
	err := c.query(ctx, &out, bindings.MethodGetAddressAtVersion, name, version)
	return out, err
}

// GetMetadataURIAtVersion returns the metadata URI of one published version.
func (c *RegistryClientAdapter) GetMetadataURIAtVersion(ctx context.Context, name string, version uint32) (string, error) {
	var out string
	err := c.query(ctx, &out, bindings.MethodGetMetadataURIAtVersion, name, version)
	return out, err
}

// query runs a read-only call and decodes its single return value into out.
func (c *RegistryClientAdapter) query(ctx context.Context, out interface{}, method string, args ...interface{}) error {
	data, err := bindings.RegistryABI.Pack(method, args...)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", method, err)
	}
	result, err := c.exec.StaticCall(ctx, data)
	if err != nil {
		return fmt.Errorf("%s failed: %w", method, err)
	}
	if err := bindings.RegistryABI.UnpackIntoInterface(out, method, result); err != nil {
		return fmt.Errorf("failed to decode %s result: %w", method, err)
	}
	return nil
}

// Ensure the adapter implements the interface
var _ usecase.RegistryClient = (*RegistryClientAdapter)(nil)
