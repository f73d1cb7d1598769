package metrics

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/push"
)

// RPC Metrics
var (
	rpcRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "inspector_rpc_operations_total",
		Help: "Count of node RPC operations.",
	}, []string{"operation", "status"})

	rpcRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "inspector_rpc_operation_duration_seconds",
		Help:    "Duration of node RPC operations.",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "status"})
)

// Inspector Metrics
var (
	InspectedBlock = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "inspector_inspected_block",
		Help: "The number of the last inspected block",
	})

	InspectedBlockTransactions = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "inspector_inspected_block_transactions",
		Help: "The number of transactions in the last inspected block",
	})

	EnrichmentOutcomes = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "inspector_enrichment_outcomes_total",
		Help: "The number of transaction enrichment outcomes by result",
	}, []string{"result"})

	InspectionDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "inspector_block_inspection_duration_seconds",
		Help:    "Time taken to enrich every transaction of a block",
		Buckets: prometheus.DefBuckets,
	})
)

// ObserveRPC records a single RPC call outcome and duration.
func ObserveRPC(operation string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	rpcRequestsTotal.WithLabelValues(operation, status).Inc()
	rpcRequestDuration.WithLabelValues(operation, status).Observe(time.Since(started).Seconds())
}

// Push sends every registered collector to a Pushgateway. The inspector exits after
// one block, so there is no long lived endpoint to scrape.
func Push(ctx context.Context, url string, job string) error {
	if job == "" {
		job = "inspector"
	}
	err := push.New(url, job).Gatherer(prometheus.DefaultGatherer).PushContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to push metrics to %s: %w", url, err)
	}
	return nil
}
