package enricher

import (
	"context"
	"errors"
	"math/big"
	"testing"

	gethCommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/thirdweb-dev/inspector/internal/common"
	"github.com/thirdweb-dev/inspector/internal/signatures"
	"github.com/thirdweb-dev/inspector/test/mocks"
)

var (
	tokenAddress = gethCommon.HexToAddress("0xdAC17F958D2ee523a2206206994597C13D831ec7")
	senderAddr   = gethCommon.HexToAddress("0x971add32Ea87f10bD192671630be3BE8A11b8623")
	contractCode = hexutil.MustDecode("0x6080604052")
	transferData = hexutil.MustDecode("0xa9059cbb000000000000000000000000971add32ea87f10bd192671630be3be8a11b862300000000000000000000000000000000000000000000010df58ac64e49b91ea0")
)

func newTestTable(t *testing.T) *signatures.Table {
	table, err := signatures.New(map[string][]string{
		"a9059cbb": {"transfer(address,uint256)"},
		"23b872dd": {"transferFrom(address,address,uint256)", "gasprice_bit_ether(int128)"},
	})
	require.NoError(t, err)
	return table
}

func newTokenTransaction(data []byte) *common.Transaction {
	to := tokenAddress
	from := senderAddr
	value, _ := new(big.Int).SetString("2500000000000000000", 10)
	return &common.Transaction{
		Hash:             "0xabc",
		TransactionIndex: 7,
		FromAddress:      &from,
		ToAddress:        &to,
		Value:            value,
		Gas:              65000,
		GasPrice:         big.NewInt(20000000000),
		Data:             data,
	}
}

func TestEnrichTokenTransfer(t *testing.T) {
	mockSource := mocks.NewMockIChainSource(t)
	mockSource.On("GetCode", mock.Anything, tokenAddress).Return(contractCode, nil)
	mockSource.On("CallContract", mock.Anything, mock.MatchedBy(func(c *common.ContractHandle) bool {
		return c.Address == tokenAddress && c.HasMethod("name")
	}), "name").Return([]interface{}{"Tether USD"}, nil)

	enricher := New(mockSource, newTestTable(t))
	outcome := enricher.Enrich(context.Background(), newTokenTransaction(transferData))

	require.False(t, outcome.Skipped())
	record := outcome.Record
	assert.Equal(t, uint64(7), record.TransactionIndex)
	assert.Equal(t, "Tether USD", record.TokenName)
	assert.Equal(t, "a9059cbb", record.Selector)
	assert.Equal(t, []string{"transfer(address,uint256)"}, record.Signatures)
	assert.Equal(t, `["transfer(address,uint256)"]`, record.Signature())
	assert.Equal(t, senderAddr, record.FromAddress)
	assert.Equal(t, tokenAddress, record.ToAddress)
	assert.Equal(t, 2.5, record.DisplayValue)
	assert.Equal(t, "2.5", record.ExactValue)
	assert.Equal(t, uint64(65000), record.Gas)
	assert.Equal(t, big.NewInt(20000000000), record.GasPrice)
}

func TestEnrichNoRecipientIsCheckedFirst(t *testing.T) {
	mockSource := mocks.NewMockIChainSource(t)

	tx := newTokenTransaction(transferData)
	tx.ToAddress = nil
	outcome := New(mockSource, newTestTable(t)).Enrich(context.Background(), tx)

	assert.True(t, outcome.Skipped())
	assert.Equal(t, common.SkipNoRecipient, outcome.SkipReason)
	mockSource.AssertNotCalled(t, "GetCode", mock.Anything, mock.Anything)
}

func TestEnrichCodeFetchFailed(t *testing.T) {
	mockSource := mocks.NewMockIChainSource(t)
	mockSource.On("GetCode", mock.Anything, tokenAddress).Return(nil, errors.New("connection reset"))

	outcome := New(mockSource, newTestTable(t)).Enrich(context.Background(), newTokenTransaction(transferData))

	assert.Equal(t, common.SkipCodeFetchFailed, outcome.SkipReason)
	assert.EqualError(t, outcome.Err, "connection reset")
}

func TestEnrichNotAContract(t *testing.T) {
	mockSource := mocks.NewMockIChainSource(t)
	mockSource.On("GetCode", mock.Anything, tokenAddress).Return([]byte{}, nil)

	outcome := New(mockSource, newTestTable(t)).Enrich(context.Background(), newTokenTransaction(transferData))

	assert.Equal(t, common.SkipNotAContract, outcome.SkipReason)
	assert.Nil(t, outcome.Record)
	mockSource.AssertNotCalled(t, "CallContract", mock.Anything, mock.Anything, mock.Anything)
}

func TestEnrichContractInitFailed(t *testing.T) {
	mockSource := mocks.NewMockIChainSource(t)
	mockSource.On("GetCode", mock.Anything, tokenAddress).Return(contractCode, nil)

	enricher := New(mockSource, newTestTable(t), WithABIDescriptor([]byte(`[{"type":`)))
	outcome := enricher.Enrich(context.Background(), newTokenTransaction(transferData))

	assert.Equal(t, common.SkipContractInitFailed, outcome.SkipReason)
	assert.Error(t, outcome.Err)
	mockSource.AssertNotCalled(t, "CallContract", mock.Anything, mock.Anything, mock.Anything)
}

func TestEnrichNameQueryFailed(t *testing.T) {
	testCases := []struct {
		name   string
		result []interface{}
		err    error
	}{
		{"reverted", nil, errors.New("execution reverted")},
		{"empty result", []interface{}{}, nil},
		{"not a string", []interface{}{big.NewInt(1)}, nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockSource := mocks.NewMockIChainSource(t)
			mockSource.On("GetCode", mock.Anything, tokenAddress).Return(contractCode, nil)
			mockSource.On("CallContract", mock.Anything, mock.Anything, "name").Return(tc.result, tc.err)

			// the selector is known, the name failure still wins
			outcome := New(mockSource, newTestTable(t)).Enrich(context.Background(), newTokenTransaction(transferData))

			assert.Equal(t, common.SkipNameQueryFailed, outcome.SkipReason)
			assert.Error(t, outcome.Err)
		})
	}
}

func TestEnrichCallDataTooShort(t *testing.T) {
	for _, data := range [][]byte{nil, {0xa9}, {0xa9, 0x05, 0x9c}} {
		mockSource := mocks.NewMockIChainSource(t)
		mockSource.On("GetCode", mock.Anything, tokenAddress).Return(contractCode, nil)
		mockSource.On("CallContract", mock.Anything, mock.Anything, "name").Return([]interface{}{"Tether USD"}, nil)

		outcome := New(mockSource, newTestTable(t)).Enrich(context.Background(), newTokenTransaction(data))

		assert.Equal(t, common.SkipCallDataTooShort, outcome.SkipReason, "data %x", data)
	}
}

func TestEnrichSelectorIsFirstFourBytes(t *testing.T) {
	for _, data := range [][]byte{
		{0x23, 0xb8, 0x72, 0xdd},
		hexutil.MustDecode("0x23b872dd0000000000000000000000000000000000000000000000000000000000000001"),
	} {
		mockSource := mocks.NewMockIChainSource(t)
		mockSource.On("GetCode", mock.Anything, tokenAddress).Return(contractCode, nil)
		mockSource.On("CallContract", mock.Anything, mock.Anything, "name").Return([]interface{}{"Tether USD"}, nil)

		outcome := New(mockSource, newTestTable(t)).Enrich(context.Background(), newTokenTransaction(data))

		require.False(t, outcome.Skipped())
		assert.Equal(t, "23b872dd", outcome.Record.Selector)
		assert.Equal(t, `["transferFrom(address,address,uint256)", "gasprice_bit_ether(int128)"]`, outcome.Record.Signature())
	}
}

func TestEnrichUnknownSelectorStillSucceeds(t *testing.T) {
	mockSource := mocks.NewMockIChainSource(t)
	mockSource.On("GetCode", mock.Anything, tokenAddress).Return(contractCode, nil)
	mockSource.On("CallContract", mock.Anything, mock.Anything, "name").Return([]interface{}{"Wrapped Ether"}, nil)

	tx := newTokenTransaction(hexutil.MustDecode("0xdeadbeef00"))
	tx.FromAddress = nil
	tx.Value = big.NewInt(0)
	outcome := New(mockSource, newTestTable(t)).Enrich(context.Background(), tx)

	require.False(t, outcome.Skipped())
	assert.Nil(t, outcome.Record.Signatures)
	assert.Equal(t, "[unknown]", outcome.Record.Signature())
	assert.Equal(t, gethCommon.Address{}, outcome.Record.FromAddress)
	assert.Equal(t, 0.0, outcome.Record.DisplayValue)
}

func TestEnrichIsIdempotent(t *testing.T) {
	mockSource := mocks.NewMockIChainSource(t)
	mockSource.On("GetCode", mock.Anything, tokenAddress).Return(contractCode, nil)
	mockSource.On("CallContract", mock.Anything, mock.Anything, "name").Return([]interface{}{"Tether USD"}, nil)

	enricher := New(mockSource, newTestTable(t))
	tx := newTokenTransaction(transferData)
	first := enricher.Enrich(context.Background(), tx)
	second := enricher.Enrich(context.Background(), tx)

	assert.Equal(t, first, second)
}

func TestEnrichUsesTokenNameCache(t *testing.T) {
	mockSource := mocks.NewMockIChainSource(t)
	mockSource.On("GetCode", mock.Anything, tokenAddress).Return(contractCode, nil)
	mockSource.On("CallContract", mock.Anything, mock.Anything, "name").Return([]interface{}{"Tether USD"}, nil).Once()

	cache := NewMemoryTokenNameCache()
	enricher := New(mockSource, newTestTable(t), WithTokenNameCache(cache))

	for i := 0; i < 3; i++ {
		outcome := enricher.Enrich(context.Background(), newTokenTransaction(transferData))
		require.False(t, outcome.Skipped())
		assert.Equal(t, "Tether USD", outcome.Record.TokenName)
	}
	mockSource.AssertNumberOfCalls(t, "CallContract", 1)

	name, ok := cache.Get(context.Background(), tokenAddress)
	assert.True(t, ok)
	assert.Equal(t, "Tether USD", name)
}

func TestEnrichDoesNotCacheNameFailures(t *testing.T) {
	mockSource := mocks.NewMockIChainSource(t)
	mockSource.On("GetCode", mock.Anything, tokenAddress).Return(contractCode, nil)
	mockSource.On("CallContract", mock.Anything, mock.Anything, "name").Return(nil, errors.New("execution reverted"))

	cache := NewMemoryTokenNameCache()
	enricher := New(mockSource, newTestTable(t), WithTokenNameCache(cache))

	enricher.Enrich(context.Background(), newTokenTransaction(transferData))
	enricher.Enrich(context.Background(), newTokenTransaction(transferData))

	mockSource.AssertNumberOfCalls(t, "CallContract", 2)
	_, ok := cache.Get(context.Background(), tokenAddress)
	assert.False(t, ok)
}
