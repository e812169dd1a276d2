package registry

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"github.com/dotdm/cdm/internal/domain/bindings"
)

// ErrUnknownMethod is returned for calldata whose selector is not part of the registry ABI
var ErrUnknownMethod = errors.New("unknown method")

// SelectorLength is the number of calldata bytes that identify a method.
const SelectorLength = 4

// Dispatch decodes calldata against the registry ABI, invokes the selected
// method on reg as caller, and returns the ABI-encoded result.
func Dispatch(reg *Registry, caller common.Address, calldata []byte) ([]byte, error) {
	if len(calldata) < SelectorLength {
		return nil, fmt.Errorf("%w: calldata too short (%d bytes)", ErrUnknownMethod, len(calldata))
	}
	method, err := bindings.RegistryABI.MethodById(calldata[:SelectorLength])
	if err != nil {
		return nil, fmt.Errorf("%w: selector 0x%x", ErrUnknownMethod, calldata[:SelectorLength])
	}

	args, err := method.Inputs.Unpack(calldata[SelectorLength:])
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s arguments: %w", method.Name, err)
	}

	var result []interface{}
	switch method.Name {
	case bindings.MethodPublishLatest:
		if err := reg.PublishLatest(caller, args[0].(string), args[1].(common.Address), args[2].(string)); err != nil {
			return nil, err
		}
	case bindings.MethodGetAddress:
		result = append(result, reg.GetAddress(args[0].(string)))
	case bindings.MethodGetMetadataURI:
		result = append(result, reg.GetMetadataURI(args[0].(string)))
	case bindings.MethodGetContractNameAt:
		result = append(result, reg.GetContractNameAt(args[0].(uint32)))
	case bindings.MethodGetOwner:
		result = append(result, reg.GetOwner(args[0].(string)))
	case bindings.MethodGetVersionCount:
		result = append(result, reg.GetVersionCount(args[0].(string)))
	case bindings.MethodGetContractCount:
		result = append(result, reg.GetContractCount())
	case bindings.MethodGetAddressAtVersion:
		result = append(result, reg.GetAddressAtVersion(args[0].(string), args[1].(uint32)))
	case bindings.MethodGetMetadataURIAtVersion:
		result = append(result, reg.GetMetadataURIAtVersion(args[0].(string), args[1].(uint32)))
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownMethod, method.Name)
	}

	out, err := method.Outputs.Pack(result...)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s result: %w", method.Name, err)
	}
	return out, nil
}
