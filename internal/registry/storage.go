// Package registry implements the contract name registry: an append-only
// mapping from contract name to owner and ordered version history, executed
// against a host-provided key-value store.
package registry

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/rlp"
)

// Storage is the persistent key-value capability provided by the execution host.
type Storage interface {
	Get(key common.Hash) ([]byte, bool)
	Set(key common.Hash, value []byte)
}

// Storage fields. Each field is a separate keyspace.
const (
	fieldContractNameCount    = "contract_name_count"
	fieldContractNameAt       = "contract_name_at"
	fieldInfo                 = "info"
	fieldPublishedAddress     = "published_address"
	fieldPublishedMetadataURI = "published_metadata_uri"
)

// StorageKey derives the slot for field keyed by parts: keccak256(rlp([field, parts...])).
func StorageKey(field string, parts ...interface{}) common.Hash {
	items := make([]interface{}, 0, len(parts)+1)
	items = append(items, field)
	items = append(items, parts...)
	encoded, err := rlp.EncodeToBytes(items)
	if err != nil {
		// Keys are built from strings and unsigned integers only
		panic(fmt.Sprintf("registry: cannot encode storage key for %s: %v", field, err))
	}
	return crypto.Keccak256Hash(encoded)
}

// StateError reports a stored value that could not be decoded. The registry
// raises it as a panic; hosts recover it and abort the invocation.
type StateError struct {
	Key common.Hash
	Err error
}

func (e *StateError) Error() string {
	return fmt.Sprintf("corrupt registry state at %s: %v", e.Key.Hex(), e.Err)
}

func (e *StateError) Unwrap() error { return e.Err }

// load decodes the value at key into out and reports whether it existed.
func load(store Storage, key common.Hash, out interface{}) bool {
	raw, ok := store.Get(key)
	if !ok {
		return false
	}
	if err := rlp.DecodeBytes(raw, out); err != nil {
		panic(&StateError{Key: key, Err: err})
	}
	return true
}

// save encodes value and writes it at key.
func save(store Storage, key common.Hash, value interface{}) {
	encoded, err := rlp.EncodeToBytes(value)
	if err != nil {
		panic(&StateError{Key: key, Err: err})
	}
	store.Set(key, encoded)
}
