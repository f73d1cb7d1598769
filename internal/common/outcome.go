package common

import (
	"math/big"
	"strconv"
	"strings"

	gethCommon "github.com/ethereum/go-ethereum/common"
)

type SkipReason string

const (
	SkipTransactionUnavailable SkipReason = "TransactionUnavailable"
	SkipNoRecipient            SkipReason = "NoRecipient"
	SkipCodeFetchFailed        SkipReason = "CodeFetchFailed"
	SkipNotAContract           SkipReason = "NotAContract"
	SkipContractInitFailed     SkipReason = "ContractInitFailed"
	SkipNameQueryFailed        SkipReason = "NameQueryFailed"
	SkipCallDataTooShort       SkipReason = "CallDataTooShort"
)

func (r SkipReason) String() string {
	return string(r)
}

const UnknownSignature = "[unknown]"

type EnrichedRecord struct {
	TransactionIndex uint64
	TransactionHash  string
	TokenName        string
	Selector         string
	// nil when the selector is not in the signature table
	Signatures   []string
	FromAddress  gethCommon.Address
	ToAddress    gethCommon.Address
	Value        *big.Int
	DisplayValue float64
	ExactValue   string
	Gas          uint64
	GasPrice     *big.Int
}

// Signature renders the resolved signatures as a bracketed list of quoted
// strings, or UnknownSignature when nothing matched the selector.
func (r *EnrichedRecord) Signature() string {
	if len(r.Signatures) == 0 {
		return UnknownSignature
	}
	quoted := make([]string, len(r.Signatures))
	for i, sig := range r.Signatures {
		quoted[i] = strconv.Quote(sig)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}

type Outcome struct {
	// Position is the index of the transaction hash inside the block
	Position        int
	TransactionHash string
	Record          *EnrichedRecord
	SkipReason      SkipReason
	Err             error
}

func (o Outcome) Skipped() bool {
	return o.Record == nil
}

func NewSkip(hash string, reason SkipReason, err error) Outcome {
	return Outcome{TransactionHash: hash, SkipReason: reason, Err: err}
}
