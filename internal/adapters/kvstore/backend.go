// Package kvstore hosts the contract registry on a local key-value store.
// Every invocation runs inside one transaction: it commits only when the
// registry returns without error.
package kvstore

import (
	"context"
	"fmt"
	"sync"

	"github.com/dotdm/cdm/internal/domain/config"
	"github.com/dotdm/cdm/internal/registry"
)

// MemoryDSN selects the in-memory backend.
const MemoryDSN = ":memory:"

// Backend opens transactions over registry storage.
type Backend interface {
	Begin(ctx context.Context) (Tx, error)
	Close() error
}

// Tx is registry storage scoped to one invocation.
type Tx interface {
	registry.Storage
	// Err reports a storage failure hidden behind Get or Set
	Err() error
	Commit() error
	Rollback() error
}

// NewBackend selects the backend configured by cfg.RegistryDB. A database
// file is only opened on first use.
func NewBackend(cfg *config.RuntimeConfig) Backend {
	if cfg.RegistryDB == "" || cfg.RegistryDB == MemoryDSN {
		return NewMemoryBackend()
	}
	path := cfg.RegistryDB
	return &lazyBackend{open: func() (Backend, error) {
		backend, err := OpenSQLite(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open registry store: %w", err)
		}
		return backend, nil
	}}
}

type lazyBackend struct {
	once    sync.Once
	open    func() (Backend, error)
	backend Backend
	err     error
}

func (l *lazyBackend) Begin(ctx context.Context) (Tx, error) {
	l.once.Do(func() { l.backend, l.err = l.open() })
	if l.err != nil {
		return nil, l.err
	}
	return l.backend.Begin(ctx)
}

func (l *lazyBackend) Close() error {
	if l.backend == nil {
		return nil
	}
	return l.backend.Close()
}
