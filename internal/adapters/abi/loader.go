package abi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/accounts/abi"

	"github.com/dotdm/cdm/internal/domain"
	"github.com/dotdm/cdm/internal/domain/models"
	"github.com/dotdm/cdm/internal/usecase"
)

// InterfaceLoaderAdapter parses interface descriptions with go-ethereum's ABI parser.
// Both a bare ABI array and a compiler artifact object with an "abi" field are accepted.
type InterfaceLoaderAdapter struct{}

// NewInterfaceLoaderAdapter creates a new InterfaceLoaderAdapter
func NewInterfaceLoaderAdapter() *InterfaceLoaderAdapter {
	return &InterfaceLoaderAdapter{}
}

// Load reads and parses the interface file at path
func (l *InterfaceLoaderAdapter) Load(ctx context.Context, path string) (*models.InterfaceDescription, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read interface file %s: %w", path, err)
	}
	return l.Parse(path, data)
}

// Parse parses interface JSON; path is only used in error messages
func (l *InterfaceLoaderAdapter) Parse(path string, data []byte) (*models.InterfaceDescription, error) {
	raw, err := extractABI(data)
	if err != nil {
		return nil, invalid(path, err)
	}

	var compact bytes.Buffer
	if err := json.Compact(&compact, raw); err != nil {
		return nil, invalid(path, err)
	}

	parsed, err := abi.JSON(bytes.NewReader(compact.Bytes()))
	if err != nil {
		return nil, invalid(path, err)
	}

	return &models.InterfaceDescription{
		Path: path,
		Raw:  compact.Bytes(),
		ABI:  parsed,
	}, nil
}

// extractABI returns the ABI array, unwrapping {"abi": [...]} artifacts.
func extractABI(data []byte) ([]byte, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("empty document")
	}
	if trimmed[0] != '{' {
		return trimmed, nil
	}

	var artifact struct {
		ABI json.RawMessage `json:"abi"`
	}
	if err := json.Unmarshal(trimmed, &artifact); err != nil {
		return nil, err
	}
	if len(artifact.ABI) == 0 {
		return nil, fmt.Errorf("object has no \"abi\" field")
	}
	return artifact.ABI, nil
}

func invalid(path string, err error) error {
	return fmt.Errorf("%w %s: %v", domain.ErrInvalidInterface, path, err)
}

// Ensure the adapter implements the interface
var _ usecase.InterfaceLoader = (*InterfaceLoaderAdapter)(nil)
