package common

import (
	"math/big"

	gethCommon "github.com/ethereum/go-ethereum/common"
)

type RawTransaction = map[string]interface{}

const SelectorLength = 4

type Transaction struct {
	Hash             string
	TransactionIndex uint64
	FromAddress      *gethCommon.Address
	// nil for contract creation transactions
	ToAddress *gethCommon.Address
	Value     *big.Int
	Gas       uint64
	GasPrice  *big.Int
	Data      []byte
}

func (t *Transaction) IsContractCreation() bool {
	return t.ToAddress == nil
}

// FunctionSelector returns the first four bytes of the call data.
func (t *Transaction) FunctionSelector() ([SelectorLength]byte, bool) {
	var selector [SelectorLength]byte
	if len(t.Data) < SelectorLength {
		return selector, false
	}
	copy(selector[:], t.Data[:SelectorLength])
	return selector, true
}

func (t *Transaction) Sender() gethCommon.Address {
	if t.FromAddress == nil {
		return gethCommon.Address{}
	}
	return *t.FromAddress
}
