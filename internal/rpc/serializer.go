package rpc

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	gethCommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/rs/zerolog/log"
	"github.com/thirdweb-dev/inspector/internal/common"
)

func SerializeBlock(block common.RawBlock) common.Block {
	hashes := serializeTransactionHashes(block["transactions"])
	return common.Block{
		Header: common.BlockHeader{
			Number:           hexToBigInt(block["number"]),
			Hash:             interfaceToString(block["hash"]),
			ParentHash:       interfaceToString(block["parentHash"]),
			Timestamp:        hexToUint64(block["timestamp"]),
			TransactionCount: uint64(len(hashes)),
			GasUsed:          hexToBigInt(block["gasUsed"]),
			GasLimit:         hexToBigInt(block["gasLimit"]),
			BaseFeePerGas:    hexToOptionalBigInt(block["baseFeePerGas"]),
			Difficulty:       hexToBigInt(block["difficulty"]),
			TotalDifficulty:  hexToOptionalBigInt(block["totalDifficulty"]),
		},
		TransactionHashes: hashes,
	}
}

func serializeTransactionHashes(rawTransactions interface{}) []string {
	transactions, ok := rawTransactions.([]interface{})
	if !ok || len(transactions) == 0 {
		return []string{}
	}
	hashes := make([]string, 0, len(transactions))
	for _, tx := range transactions {
		switch v := tx.(type) {
		case string:
			hashes = append(hashes, v)
		case map[string]interface{}:
			// full transaction objects, only the hash is kept
			hashes = append(hashes, interfaceToString(v["hash"]))
		default:
			log.Debug().Msgf("Skipping unexpected transaction entry in block: %v", tx)
		}
	}
	return hashes
}

func SerializeTransaction(tx common.RawTransaction) (*common.Transaction, error) {
	data, err := decodeHexBytes(tx["input"])
	if err != nil {
		return nil, fmt.Errorf("invalid input data: %w", err)
	}
	return &common.Transaction{
		Hash:             interfaceToString(tx["hash"]),
		TransactionIndex: hexToUint64(tx["transactionIndex"]),
		FromAddress:      interfaceToAddress(tx["from"]),
		ToAddress:        interfaceToAddress(tx["to"]),
		Value:            hexToBigInt(tx["value"]),
		Gas:              hexToUint64(tx["gas"]),
		GasPrice:         hexToBigInt(tx["gasPrice"]),
		Data:             data,
	}, nil
}

func decodeHexBytes(value interface{}) ([]byte, error) {
	hexString := interfaceToString(value)
	if hexString == "" || hexString == "0x" {
		return []byte{}, nil
	}
	return hexutil.Decode(hexString)
}

func interfaceToAddress(value interface{}) *gethCommon.Address {
	hexString := interfaceToString(value)
	if !gethCommon.IsHexAddress(hexString) {
		return nil
	}
	address := gethCommon.HexToAddress(hexString)
	return &address
}

func hexToBigInt(hex interface{}) *big.Int {
	v := hexToOptionalBigInt(hex)
	if v == nil {
		return new(big.Int)
	}
	return v
}

func hexToOptionalBigInt(hex interface{}) *big.Int {
	hexString := strings.TrimPrefix(interfaceToString(hex), "0x")
	if hexString == "" {
		return nil
	}
	v, ok := new(big.Int).SetString(hexString, 16)
	if !ok {
		return nil
	}
	return v
}

func hexToUint64(hex interface{}) uint64 {
	hexString := strings.TrimPrefix(interfaceToString(hex), "0x")
	if hexString == "" {
		return 0
	}
	v, _ := strconv.ParseUint(hexString, 16, 64)
	return v
}

func interfaceToString(value interface{}) string {
	if value == nil {
		return ""
	}
	res, ok := value.(string)
	if !ok {
		return ""
	}
	return res
}
