package enricher

import (
	"context"
	"encoding/hex"
	"fmt"
	"sync"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/rs/zerolog/log"
	"github.com/thirdweb-dev/inspector/internal/common"
	"github.com/thirdweb-dev/inspector/internal/rpc"
	"github.com/thirdweb-dev/inspector/internal/signatures"
)

// Enricher resolves the token name, function signature and display value of a
// transaction. It holds no mutable state of its own, one instance serves every
// transaction of a block concurrently.
type Enricher struct {
	source     rpc.IChainSource
	signatures *signatures.Table
	tokenNames TokenNameCache
	tokenABI   func() (*abi.ABI, error)
}

type Option func(*Enricher)

func WithTokenNameCache(cache TokenNameCache) Option {
	return func(e *Enricher) {
		e.tokenNames = cache
	}
}

// WithABIDescriptor replaces the bundled ERC20 descriptor used to build contract handles.
func WithABIDescriptor(descriptor []byte) Option {
	return func(e *Enricher) {
		e.tokenABI = parseOnce(descriptor)
	}
}

func New(source rpc.IChainSource, table *signatures.Table, opts ...Option) *Enricher {
	e := &Enricher{
		source:     source,
		signatures: table,
		tokenABI:   parseOnce(common.ERC20ABI()),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func parseOnce(descriptor []byte) func() (*abi.ABI, error) {
	return sync.OnceValues(func() (*abi.ABI, error) {
		return common.ParseABI(descriptor)
	})
}

// Enrich never returns an error: every failure is classified as a skip on the outcome.
// Steps run in a fixed order and the first failing one decides the reason.
func (e *Enricher) Enrich(ctx context.Context, tx *common.Transaction) common.Outcome {
	outcome := e.enrich(ctx, tx)
	if outcome.Skipped() {
		log.Debug().
			Str("tx", tx.Hash).
			Uint64("index", tx.TransactionIndex).
			Str("reason", outcome.SkipReason.String()).
			Err(outcome.Err).
			Msg("Skipping transaction")
	}
	return outcome
}

func (e *Enricher) enrich(ctx context.Context, tx *common.Transaction) common.Outcome {
	if tx.IsContractCreation() {
		return common.NewSkip(tx.Hash, common.SkipNoRecipient, nil)
	}
	recipient := *tx.ToAddress

	code, err := e.source.GetCode(ctx, recipient)
	if err != nil {
		return common.NewSkip(tx.Hash, common.SkipCodeFetchFailed, err)
	}
	if len(code) == 0 {
		return common.NewSkip(tx.Hash, common.SkipNotAContract, nil)
	}

	tokenABI, err := e.tokenABI()
	if err != nil {
		return common.NewSkip(tx.Hash, common.SkipContractInitFailed, err)
	}
	contract, err := common.NewContractHandle(recipient, tokenABI)
	if err != nil {
		return common.NewSkip(tx.Hash, common.SkipContractInitFailed, err)
	}

	tokenName, err := e.resolveTokenName(ctx, contract)
	if err != nil {
		return common.NewSkip(tx.Hash, common.SkipNameQueryFailed, err)
	}

	selector, ok := tx.FunctionSelector()
	if !ok {
		return common.NewSkip(tx.Hash, common.SkipCallDataTooShort, fmt.Errorf("call data has %d bytes, need %d", len(tx.Data), common.SelectorLength))
	}
	sigs, found := e.signatures.LookupBytes(selector)
	if !found {
		log.Debug().Str("tx", tx.Hash).Msgf("Function not found for selector 0x%x", selector)
	}

	return common.Outcome{
		TransactionHash: tx.Hash,
		Record: &common.EnrichedRecord{
			TransactionIndex: tx.TransactionIndex,
			TransactionHash:  tx.Hash,
			TokenName:        tokenName,
			Selector:         hex.EncodeToString(selector[:]),
			Signatures:       sigs,
			FromAddress:      tx.Sender(),
			ToAddress:        recipient,
			Value:            tx.Value,
			DisplayValue:     common.WeiToEther(tx.Value),
			ExactValue:       common.WeiToEtherExact(tx.Value),
			Gas:              tx.Gas,
			GasPrice:         tx.GasPrice,
		},
	}
}

// resolveTokenName optimistically calls name() on every contract target, contracts
// that are not tokens fail here and the transaction is skipped.
func (e *Enricher) resolveTokenName(ctx context.Context, contract *common.ContractHandle) (string, error) {
	if e.tokenNames != nil {
		if name, ok := e.tokenNames.Get(ctx, contract.Address); ok {
			return name, nil
		}
	}

	out, err := e.source.CallContract(ctx, contract, common.TokenNameMethod)
	if err != nil {
		return "", err
	}
	if len(out) == 0 {
		return "", fmt.Errorf("empty result from %s()", common.TokenNameMethod)
	}
	name, ok := out[0].(string)
	if !ok {
		return "", fmt.Errorf("unexpected %T result from %s()", out[0], common.TokenNameMethod)
	}

	if e.tokenNames != nil {
		e.tokenNames.Set(ctx, contract.Address, name)
	}
	return name, nil
}
