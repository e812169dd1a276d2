package kvstore

import (
	"context"
	"errors"
	"sync"

	"github.com/ethereum/go-ethereum/common"
)

var errTxDone = errors.New("transaction already finished")

// MemoryBackend keeps registry state in process memory.
type MemoryBackend struct {
	mu   sync.RWMutex
	data map[common.Hash][]byte
}

// NewMemoryBackend returns an empty in-memory backend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{data: make(map[common.Hash][]byte)}
}

// Begin starts a transaction that buffers writes until Commit.
func (b *MemoryBackend) Begin(ctx context.Context) (Tx, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return &memoryTx{backend: b, writes: make(map[common.Hash][]byte)}, nil
}

// Close is a no-op.
func (b *MemoryBackend) Close() error {
	return nil
}

// Len returns the number of stored slots.
func (b *MemoryBackend) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.data)
}

type memoryTx struct {
	backend *MemoryBackend
	writes  map[common.Hash][]byte
	done    bool
}

func (tx *memoryTx) Get(key common.Hash) ([]byte, bool) {
	if v, ok := tx.writes[key]; ok {
		return v, true
	}
	tx.backend.mu.RLock()
	defer tx.backend.mu.RUnlock()
	v, ok := tx.backend.data[key]
	return v, ok
}

func (tx *memoryTx) Set(key common.Hash, value []byte) {
	tx.writes[key] = append([]byte(nil), value...)
}

func (tx *memoryTx) Err() error {
	return nil
}

func (tx *memoryTx) Commit() error {
	if tx.done {
		return errTxDone
	}
	tx.done = true

	tx.backend.mu.Lock()
	defer tx.backend.mu.Unlock()
	for k, v := range tx.writes {
		tx.backend.data[k] = v
	}
	return nil
}

func (tx *memoryTx) Rollback() error {
	if tx.done {
		return errTxDone
	}
	tx.done = true
	tx.writes = nil
	return nil
}
