package models

import (
	"sort"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// InterfaceDescription is a parsed interface file from the artifact cache.
type InterfaceDescription struct {
	Path string
	// Raw is the compacted JSON document
	Raw []byte
	ABI abi.ABI
}

// MethodNames returns the callable method names, sorted.
func (d *InterfaceDescription) MethodNames() []string {
	names := make([]string, 0, len(d.ABI.Methods))
	for name := range d.ABI.Methods {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
