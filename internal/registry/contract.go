package registry

import (
	"errors"
	"math"

	"github.com/ethereum/go-ethereum/common"

	"github.com/dotdm/cdm/internal/domain/models"
)

var (
	// ErrVersionCountOverflow aborts a publish whose version count would exceed uint32
	ErrVersionCountOverflow = errors.New("publish_latest: version_count overflow")

	// ErrContractCountOverflow aborts a registration whose name count would exceed uint32
	ErrContractCountOverflow = errors.New("publish_latest: contract_name_count overflow")
)

// Registry is the name registry state machine. It holds no state of its own;
// every read and write goes through the injected Storage.
type Registry struct {
	store Storage
}

// New binds a registry to store. Constructing a registry has no side effect.
func New(store Storage) *Registry {
	return &Registry{store: store}
}

// PublishLatest publishes addr and uri as the newest version of name.
//
// An unregistered name is first registered to caller. A caller that does not
// own the name leaves state untouched and gets a nil error. The writes made by
// a call that returns an error must be discarded by the host.
func (r *Registry) PublishLatest(caller common.Address, name string, addr common.Address, uri string) error {
	info, registered := r.info(name)
	if !registered {
		info = models.NamedContractInfo{Owner: caller}
		count := r.GetContractCount()
		if count == math.MaxUint32 {
			return ErrContractCountOverflow
		}
		save(r.store, StorageKey(fieldContractNameAt, count), name)
		save(r.store, StorageKey(fieldContractNameCount), count+1)
	}

	if info.Owner != caller {
		return nil
	}

	if info.VersionCount == math.MaxUint32 {
		return ErrVersionCountOverflow
	}
	index := info.VersionCount
	info.VersionCount++
	save(r.store, StorageKey(fieldInfo, name), info)

	save(r.store, StorageKey(fieldPublishedAddress, name, index), addr)
	save(r.store, StorageKey(fieldPublishedMetadataURI, name, index), uri)
	return nil
}

// GetAddress returns the address of the latest version of name, or the zero address.
func (r *Registry) GetAddress(name string) common.Address {
	info, ok := r.info(name)
	if !ok {
		return common.Address{}
	}
	return r.GetAddressAtVersion(name, latestIndex(info))
}

// GetMetadataURI returns the metadata URI of the latest version of name, or "".
func (r *Registry) GetMetadataURI(name string) string {
	info, ok := r.info(name)
	if !ok {
		return ""
	}
	return r.GetMetadataURIAtVersion(name, latestIndex(info))
}

// GetAddressAtVersion returns the address published at index, or the zero address.
func (r *Registry) GetAddressAtVersion(name string, index uint32) common.Address {
	var addr common.Address
	load(r.store, StorageKey(fieldPublishedAddress, name, index), &addr)
	return addr
}

// GetMetadataURIAtVersion returns the metadata URI published at index, or "".
func (r *Registry) GetMetadataURIAtVersion(name string, index uint32) string {
	var uri string
	load(r.store, StorageKey(fieldPublishedMetadataURI, name, index), &uri)
	return uri
}

// GetContractNameAt returns the name registered at enumeration index, or "".
func (r *Registry) GetContractNameAt(index uint32) string {
	var name string
	load(r.store, StorageKey(fieldContractNameAt, index), &name)
	return name
}

// GetOwner returns the owner of name, or the zero address.
func (r *Registry) GetOwner(name string) common.Address {
	info, _ := r.info(name)
	return info.Owner
}

// GetVersionCount returns the number of versions published under name.
func (r *Registry) GetVersionCount(name string) uint32 {
	info, _ := r.info(name)
	return info.VersionCount
}

// GetContractCount returns the number of registered names.
func (r *Registry) GetContractCount() uint32 {
	var count uint32
	load(r.store, StorageKey(fieldContractNameCount), &count)
	return count
}

func (r *Registry) info(name string) (models.NamedContractInfo, bool) {
	var info models.NamedContractInfo
	ok := load(r.store, StorageKey(fieldInfo, name), &info)
	return info, ok
}

// latestIndex saturates at zero for a name with no published versions.
func latestIndex(info models.NamedContractInfo) uint32 {
	if info.VersionCount == 0 {
		return 0
	}
	return info.VersionCount - 1
}
