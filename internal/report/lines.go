package report

import (
	"github.com/thirdweb-dev/inspector/internal/common"
)

type blockLine struct {
	Type             string  `json:"type"`
	Number           string  `json:"number"`
	Hash             string  `json:"hash"`
	ParentHash       string  `json:"parent_hash"`
	Timestamp        uint64  `json:"timestamp"`
	Time             string  `json:"time"`
	TransactionCount uint64  `json:"transaction_count"`
	GasUsed          string  `json:"gas_used"`
	GasLimit         string  `json:"gas_limit"`
	BaseFeePerGas    *string `json:"base_fee_per_gas"`
	Difficulty       string  `json:"difficulty"`
	TotalDifficulty  *string `json:"total_difficulty"`
}

type transactionLine struct {
	Type             string   `json:"type"`
	TransactionIndex uint64   `json:"transaction_index"`
	Hash             string   `json:"hash"`
	TokenName        string   `json:"token_name"`
	FunctionSelector string   `json:"function_selector"`
	Signatures       []string `json:"signatures"`
	Signature        string   `json:"signature"`
	FromAddress      string   `json:"from_address"`
	ToAddress        string   `json:"to_address"`
	Value            string   `json:"value"`
	ValueEther       float64  `json:"value_ether"`
	ValueEtherExact  string   `json:"value_ether_exact"`
	Gas              uint64   `json:"gas"`
	GasPrice         string   `json:"gas_price"`
}

type skipLine struct {
	Type     string `json:"type"`
	Position int    `json:"position"`
	Hash     string `json:"hash"`
	Reason   string `json:"reason"`
	Error    string `json:"error,omitempty"`
}

func newBlockLine(header common.BlockHeader) blockLine {
	line := blockLine{
		Type:             "block",
		Number:           bigString(header.Number),
		Hash:             header.Hash,
		ParentHash:       header.ParentHash,
		Timestamp:        header.Timestamp,
		Time:             header.Time().Format(timestampLayout),
		TransactionCount: header.TransactionCount,
		GasUsed:          bigString(header.GasUsed),
		GasLimit:         bigString(header.GasLimit),
		Difficulty:       bigString(header.Difficulty),
	}
	if header.BaseFeePerGas != nil {
		baseFee := header.BaseFeePerGas.String()
		line.BaseFeePerGas = &baseFee
	}
	if header.TotalDifficulty != nil {
		totalDifficulty := header.TotalDifficulty.String()
		line.TotalDifficulty = &totalDifficulty
	}
	return line
}

func newTransactionLine(record *common.EnrichedRecord) transactionLine {
	return transactionLine{
		Type:             "transaction",
		TransactionIndex: record.TransactionIndex,
		Hash:             record.TransactionHash,
		TokenName:        record.TokenName,
		FunctionSelector: "0x" + record.Selector,
		Signatures:       record.Signatures,
		Signature:        record.Signature(),
		FromAddress:      record.FromAddress.Hex(),
		ToAddress:        record.ToAddress.Hex(),
		Value:            bigString(record.Value),
		ValueEther:       record.DisplayValue,
		ValueEtherExact:  record.ExactValue,
		Gas:              record.Gas,
		GasPrice:         bigString(record.GasPrice),
	}
}

func newSkipLine(outcome common.Outcome) skipLine {
	line := skipLine{
		Type:     "skip",
		Position: outcome.Position,
		Hash:     outcome.TransactionHash,
		Reason:   outcome.SkipReason.String(),
	}
	if outcome.Err != nil {
		line.Error = outcome.Err.Error()
	}
	return line
}
