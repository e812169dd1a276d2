package kvstore

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/ethereum/go-ethereum/common"

	"github.com/dotdm/cdm/internal/registry"
)

// Host executes registry calls against a backend, one at a time.
type Host struct {
	mu      sync.Mutex
	backend Backend
	log     *slog.Logger
}

// NewHost creates a registry host over backend.
func NewHost(backend Backend, log *slog.Logger) *Host {
	return &Host{
		backend: backend,
		log:     log.With("component", "RegistryHost"),
	}
}

// Call executes calldata on behalf of caller and commits its writes. On any
// error, including corrupt stored state, nothing is written.
func (h *Host) Call(ctx context.Context, caller common.Address, calldata []byte) ([]byte, error) {
	return h.invoke(ctx, caller, calldata, true)
}

// StaticCall executes calldata and discards any writes.
func (h *Host) StaticCall(ctx context.Context, calldata []byte) ([]byte, error) {
	return h.invoke(ctx, common.Address{}, calldata, false)
}

// Close releases the backend.
func (h *Host) Close() error {
	return h.backend.Close()
}

func (h *Host) invoke(ctx context.Context, caller common.Address, calldata []byte, commit bool) ([]byte, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	tx, err := h.backend.Begin(ctx)
	if err != nil {
		return nil, err
	}

	out, err := execute(tx, caller, calldata)
	if err == nil {
		err = tx.Err()
	}
	if err != nil || !commit {
		if rbErr := tx.Rollback(); rbErr != nil {
			h.log.Warn("rollback failed", "error", rbErr)
		}
		if err != nil {
			h.log.Debug("registry call reverted", "caller", caller.Hex(), "error", err)
		}
		return out, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	h.log.Debug("registry call committed", "caller", caller.Hex(), "bytes", len(calldata))
	return out, nil
}

// execute runs the dispatcher and turns a corrupt-state panic into an error.
func execute(store registry.Storage, caller common.Address, calldata []byte) (out []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			var stateErr *registry.StateError
			if e, ok := r.(error); ok && errors.As(e, &stateErr) {
				out, err = nil, fmt.Errorf("registry call aborted: %w", stateErr)
				return
			}
			panic(r)
		}
	}()
	return registry.Dispatch(registry.New(store), caller, calldata)
}
