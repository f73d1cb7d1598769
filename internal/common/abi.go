package common

import (
	"bytes"
	_ "embed"
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi"
	gethCommon "github.com/ethereum/go-ethereum/common"
)

//go:embed erc20_abi.json
var erc20ABI []byte

const TokenNameMethod = "name"

// ERC20ABI returns the bundled ERC20 interface descriptor.
func ERC20ABI() []byte {
	return erc20ABI
}

func ParseABI(descriptor []byte) (*abi.ABI, error) {
	parsed, err := abi.JSON(bytes.NewReader(descriptor))
	if err != nil {
		return nil, fmt.Errorf("failed to parse abi: %w", err)
	}
	return &parsed, nil
}

// ContractHandle binds an interface descriptor to a deployed address.
type ContractHandle struct {
	Address gethCommon.Address
	ABI     *abi.ABI
}

func NewContractHandle(address gethCommon.Address, contractABI *abi.ABI) (*ContractHandle, error) {
	if contractABI == nil {
		return nil, fmt.Errorf("no abi provided for contract %s", address.Hex())
	}
	return &ContractHandle{Address: address, ABI: contractABI}, nil
}

func (c *ContractHandle) HasMethod(name string) bool {
	_, ok := c.ABI.Methods[name]
	return ok
}
