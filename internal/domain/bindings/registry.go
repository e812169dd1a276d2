package bindings

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// Registry method names as they appear in the ABI.
const (
	MethodPublishLatest           = "publishLatest"
	MethodGetAddress              = "getAddress"
	MethodGetMetadataURI          = "getMetadataUri"
	MethodGetContractNameAt       = "getContractNameAt"
	MethodGetOwner                = "getOwner"
	MethodGetVersionCount         = "getVersionCount"
	MethodGetContractCount        = "getContractCount"
	MethodGetAddressAtVersion     = "getAddressAtVersion"
	MethodGetMetadataURIAtVersion = "getMetadataUriAtVersion"
)

// RegistryABIJSON is the callable surface of the contracts registry.
const RegistryABIJSON = `[
  {"type": "constructor", "stateMutability": "nonpayable", "inputs": []},
  {
    "type": "function", "name": "publishLatest", "stateMutability": "nonpayable",
    "inputs": [
      {"name": "contract_name", "type": "string"},
      {"name": "contract_address", "type": "address"},
      {"name": "metadata_uri", "type": "string"}
    ],
    "outputs": []
  },
  {
    "type": "function", "name": "getAddress", "stateMutability": "view",
    "inputs": [{"name": "contract_name", "type": "string"}],
    "outputs": [{"name": "", "type": "address"}]
  },
  {
    "type": "function", "name": "getMetadataUri", "stateMutability": "view",
    "inputs": [{"name": "contract_name", "type": "string"}],
    "outputs": [{"name": "", "type": "string"}]
  },
  {
    "type": "function", "name": "getContractNameAt", "stateMutability": "view",
    "inputs": [{"name": "index", "type": "uint32"}],
    "outputs": [{"name": "", "type": "string"}]
  },
  {
    "type": "function", "name": "getOwner", "stateMutability": "view",
    "inputs": [{"name": "contract_name", "type": "string"}],
    "outputs": [{"name": "", "type": "address"}]
  },
  {
    "type": "function", "name": "getVersionCount", "stateMutability": "view",
    "inputs": [{"name": "contract_name", "type": "string"}],
    "outputs": [{"name": "", "type": "uint32"}]
  },
  {
    "type": "function", "name": "getContractCount", "stateMutability": "view",
    "inputs": [],
    "outputs": [{"name": "", "type": "uint32"}]
  },
  {
    "type": "function", "name": "getAddressAtVersion", "stateMutability": "view",
    "inputs": [{"name": "contract_name", "type": "string"}, {"name": "version", "type": "uint32"}],
    "outputs": [{"name": "", "type": "address"}]
  },
  {
    "type": "function", "name": "getMetadataUriAtVersion", "stateMutability": "view",
    "inputs": [{"name": "contract_name", "type": "string"}, {"name": "version", "type": "uint32"}],
    "outputs": [{"name": "", "type": "string"}]
  }
]`

// RegistryABI is the parsed form of RegistryABIJSON.
var RegistryABI = mustParseABI(RegistryABIJSON)

func mustParseABI(raw string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(raw))
	if err != nil {
		panic("bindings: invalid registry ABI: " + err.Error())
	}
	return parsed
}
