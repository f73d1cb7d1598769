package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"math/big"
	"strings"
	"testing"

	gethCommon "github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thirdweb-dev/inspector/internal/common"
)

func testHeader() common.BlockHeader {
	return common.BlockHeader{
		Number:           big.NewInt(20000000),
		Hash:             "0xhash",
		ParentHash:       "0xparent",
		Timestamp:        1700000000,
		TransactionCount: 2,
		GasUsed:          big.NewInt(15000000),
		GasLimit:         big.NewInt(30000000),
		BaseFeePerGas:    big.NewInt(1000000000),
		Difficulty:       big.NewInt(0),
	}
}

func testRecord() *common.EnrichedRecord {
	value, _ := new(big.Int).SetString("2500000000000000000", 10)
	return &common.EnrichedRecord{
		TransactionIndex: 0,
		TransactionHash:  "0xaa",
		TokenName:        "Tether USD",
		Selector:         "a9059cbb",
		Signatures:       []string{"transfer(address,uint256)"},
		FromAddress:      gethCommon.HexToAddress("0x971add32Ea87f10bD192671630be3BE8A11b8623"),
		ToAddress:        gethCommon.HexToAddress("0xdAC17F958D2ee523a2206206994597C13D831ec7"),
		Value:            value,
		DisplayValue:     2.5,
		ExactValue:       "2.5",
		Gas:              65000,
		GasPrice:         big.NewInt(20000000000),
	}
}

func TestFormatHeader(t *testing.T) {
	assert.Equal(t,
		"[2023-11-14 22:13:20] block num 20000000, parent 0xparent, transactions: 2, gas used 15000000, gas limit 30000000, base fee 1000000000, difficulty 0, total difficulty none",
		FormatHeader(testHeader()),
	)

	legacy := testHeader()
	legacy.BaseFeePerGas = nil
	legacy.TotalDifficulty = big.NewInt(42)
	assert.Contains(t, FormatHeader(legacy), "base fee none, difficulty 0, total difficulty 42")
}

func TestFormatOutcome(t *testing.T) {
	enriched := common.Outcome{Position: 0, TransactionHash: "0xaa", Record: testRecord()}
	expected := `[0] (Tether USD -> ["transfer(address,uint256)"]) from ` + enriched.Record.FromAddress.Hex() +
		`, to 0xdAC17F958D2ee523a2206206994597C13D831ec7, value 2.5, gas 65000, gas price 20000000000`
	assert.Equal(t, expected, FormatOutcome(enriched))

	skipped := common.Outcome{Position: 1, TransactionHash: "0xbb", SkipReason: common.SkipNotAContract}
	assert.Equal(t, "[1] skipped: NotAContract (tx 0xbb)", FormatOutcome(skipped))
}

func TestReportPreservesOrder(t *testing.T) {
	var buf bytes.Buffer
	reporter, err := New(&buf, FormatText)
	require.NoError(t, err)

	outcomes := []common.Outcome{
		{Position: 0, TransactionHash: "0xaa", SkipReason: common.SkipNoRecipient},
		{Position: 1, TransactionHash: "0xbb", Record: func() *common.EnrichedRecord { r := testRecord(); r.TransactionIndex = 1; return r }()},
		{Position: 2, TransactionHash: "0xcc", SkipReason: common.SkipNameQueryFailed},
	}
	require.NoError(t, reporter.Report(testHeader(), outcomes))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "[2023-11-14 22:13:20] block num 20000000"))
	assert.Equal(t, "[0] skipped: NoRecipient (tx 0xaa)", lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "[1] (Tether USD -> "))
	assert.Equal(t, "[2] skipped: NameQueryFailed (tx 0xcc)", lines[3])
}

func TestReportJSON(t *testing.T) {
	var buf bytes.Buffer
	reporter, err := New(&buf, FormatJSON)
	require.NoError(t, err)

	outcomes := []common.Outcome{
		{Position: 0, TransactionHash: "0xaa", Record: testRecord()},
		{Position: 1, TransactionHash: "0xbb", SkipReason: common.SkipCodeFetchFailed, Err: errors.New("timeout")},
	}
	require.NoError(t, reporter.Report(testHeader(), outcomes))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)

	var block map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &block))
	assert.Equal(t, "block", block["type"])
	assert.Equal(t, "20000000", block["number"])
	assert.Equal(t, "1000000000", block["base_fee_per_gas"])
	assert.Nil(t, block["total_difficulty"])

	var tx map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &tx))
	assert.Equal(t, "transaction", tx["type"])
	assert.Equal(t, "0xa9059cbb", tx["function_selector"])
	assert.Equal(t, "2500000000000000000", tx["value"])
	assert.Equal(t, 2.5, tx["value_ether"])
	assert.Equal(t, "2.5", tx["value_ether_exact"])

	var skip map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[2]), &skip))
	assert.Equal(t, "skip", skip["type"])
	assert.Equal(t, "CodeFetchFailed", skip["reason"])
	assert.Equal(t, "timeout", skip["error"])
	assert.Equal(t, float64(1), skip["position"])
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	_, err := New(&bytes.Buffer{}, Format("xml"))
	assert.Error(t, err)

	reporter, err := New(&bytes.Buffer{}, "")
	require.NoError(t, err)
	assert.Equal(t, FormatText, reporter.format)
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "0", formatValue(0))
	assert.Equal(t, "1", formatValue(1))
	assert.Equal(t, "2.5", formatValue(2.5))
}
