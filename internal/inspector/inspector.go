package inspector

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/thirdweb-dev/inspector/internal/common"
	"github.com/thirdweb-dev/inspector/internal/metrics"
	"github.com/thirdweb-dev/inspector/internal/rpc"
	"golang.org/x/sync/semaphore"
)

const DEFAULT_WORKERS = 8

type TransactionEnricher interface {
	Enrich(ctx context.Context, tx *common.Transaction) common.Outcome
}

type BlockReporter interface {
	Report(header common.BlockHeader, outcomes []common.Outcome) error
}

type Inspector struct {
	source   rpc.IChainSource
	enricher TransactionEnricher
	reporter BlockReporter
	workers  int64
}

type Summary struct {
	BlockNumber string
	Enriched    int
	Skipped     map[common.SkipReason]int
}

func New(source rpc.IChainSource, enricher TransactionEnricher, reporter BlockReporter, workers int) *Inspector {
	if workers <= 0 {
		workers = DEFAULT_WORKERS
	}
	return &Inspector{
		source:   source,
		enricher: enricher,
		reporter: reporter,
		workers:  int64(workers),
	}
}

// Run inspects the latest block once. Only a failure to fetch the block or to write
// the report is returned, transaction level failures end up in the report as skips.
func (i *Inspector) Run(ctx context.Context) (Summary, error) {
	block, err := i.source.GetLatestBlock(ctx)
	if err != nil {
		return Summary{}, err
	}
	log.Info().
		Str("block", block.Header.Number.String()).
		Int("transactions", len(block.TransactionHashes)).
		Msg("Inspecting latest block")
	metrics.InspectedBlock.Set(float64(block.Header.Number.Int64()))
	metrics.InspectedBlockTransactions.Set(float64(len(block.TransactionHashes)))

	start := time.Now()
	outcomes := i.Inspect(ctx, block.TransactionHashes)
	metrics.InspectionDuration.Observe(time.Since(start).Seconds())

	if err := i.reporter.Report(block.Header, outcomes); err != nil {
		return Summary{}, fmt.Errorf("failed to write report: %w", err)
	}
	return summarize(block.Header, outcomes), nil
}

// Inspect enriches every transaction with at most `workers` in flight. The returned
// slice follows the order of txHashes regardless of completion order.
func (i *Inspector) Inspect(ctx context.Context, txHashes []string) []common.Outcome {
	outcomes := make([]common.Outcome, len(txHashes))
	sem := semaphore.NewWeighted(i.workers)
	var wg sync.WaitGroup

	for idx, txHash := range txHashes {
		if err := sem.Acquire(ctx, 1); err != nil {
			outcomes[idx] = common.NewSkip(txHash, common.SkipTransactionUnavailable, err)
			outcomes[idx].Position = idx
			continue
		}
		wg.Add(1)
		go func(idx int, txHash string) {
			defer wg.Done()
			defer sem.Release(1)
			outcome := i.inspectTransaction(ctx, txHash)
			outcome.Position = idx
			outcomes[idx] = outcome
		}(idx, txHash)
	}
	wg.Wait()

	for _, outcome := range outcomes {
		recordOutcome(outcome)
	}
	return outcomes
}

func (i *Inspector) inspectTransaction(ctx context.Context, txHash string) common.Outcome {
	tx, err := i.source.GetTransaction(ctx, txHash)
	if err != nil {
		log.Debug().Err(err).Str("tx", txHash).Msg("Unable to fetch transaction")
		return common.NewSkip(txHash, common.SkipTransactionUnavailable, err)
	}
	if tx == nil {
		log.Debug().Str("tx", txHash).Msg("Transaction not found")
		return common.NewSkip(txHash, common.SkipTransactionUnavailable, fmt.Errorf("transaction %s not found", txHash))
	}
	return i.enricher.Enrich(ctx, tx)
}

func recordOutcome(outcome common.Outcome) {
	result := "enriched"
	if outcome.Skipped() {
		result = outcome.SkipReason.String()
	}
	metrics.EnrichmentOutcomes.WithLabelValues(result).Inc()
}

func summarize(header common.BlockHeader, outcomes []common.Outcome) Summary {
	summary := Summary{
		BlockNumber: header.Number.String(),
		Skipped:     make(map[common.SkipReason]int),
	}
	for _, outcome := range outcomes {
		if outcome.Skipped() {
			summary.Skipped[outcome.SkipReason]++
		} else {
			summary.Enriched++
		}
	}
	return summary
}
