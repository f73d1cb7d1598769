package common

import (
	"math/big"
	"time"
)

type RawBlock = map[string]interface{}

type BlockHeader struct {
	Number           *big.Int
	Hash             string
	ParentHash       string
	Timestamp        uint64
	TransactionCount uint64
	GasUsed          *big.Int
	GasLimit         *big.Int
	// nil for blocks produced before the fee market upgrade
	BaseFeePerGas *big.Int
	Difficulty    *big.Int
	// nil when the node does not report it (post-merge clients drop the field)
	TotalDifficulty *big.Int
}

// Time converts the chain timestamp to UTC. It is only used for display.
func (h BlockHeader) Time() time.Time {
	return time.Unix(int64(h.Timestamp), 0).UTC()
}

type Block struct {
	Header            BlockHeader
	TransactionHashes []string
}
