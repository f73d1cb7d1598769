package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	config "github.com/thirdweb-dev/inspector/configs"
	"github.com/thirdweb-dev/inspector/internal/enricher"
	"github.com/thirdweb-dev/inspector/internal/inspector"
	"github.com/thirdweb-dev/inspector/internal/metrics"
	"github.com/thirdweb-dev/inspector/internal/report"
	"github.com/thirdweb-dev/inspector/internal/rpc"
	"github.com/thirdweb-dev/inspector/internal/signatures"
)

var (
	inspectCmd = &cobra.Command{
		Use:   "inspect",
		Short: "Inspect the latest block once and exit",
		Long:  "Fetches the latest block, enriches each of its transactions and prints one report line per transaction.",
		Run: func(cmd *cobra.Command, args []string) {
			RunInspect(cmd, args)
		},
	}
)

func RunInspect(cmd *cobra.Command, args []string) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	table, err := signatures.Load(config.Cfg.Signatures.Path)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load signatures")
	}
	log.Debug().Int("selectors", table.Len()).Msg("Loaded signatures")

	source, err := rpc.Initialize()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize RPC")
	}
	defer source.Close()
	log.Info().
		Str("url", source.GetURL()).
		Bool("websocket", source.IsWebsocket()).
		Str("chain_id", source.GetChainID().String()).
		Msg("Connected to RPC")

	opts := []enricher.Option{}
	if cache := newTokenNameCache(source); cache != nil {
		opts = append(opts, enricher.WithTokenNameCache(cache))
	}

	reporter, err := report.New(os.Stdout, report.Format(config.Cfg.Output.Format))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create reporter")
	}

	summary, err := inspector.New(source, enricher.New(source, table, opts...), reporter, config.Cfg.Enricher.Workers).Run(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to inspect latest block")
	}
	log.Info().
		Str("block", summary.BlockNumber).
		Int("enriched", summary.Enriched).
		Interface("skipped", summary.Skipped).
		Msg("Finished inspecting block")

	pushMetrics(ctx)
}

func newTokenNameCache(source rpc.IChainSource) enricher.TokenNameCache {
	if !config.Cfg.Cache.Enabled {
		return nil
	}
	redisCfg := config.Cfg.Cache.Redis
	if redisCfg.Addr == "" {
		return enricher.NewMemoryTokenNameCache()
	}
	client := redis.NewClient(&redis.Options{
		Addr:     redisCfg.Addr,
		Password: redisCfg.Password,
		DB:       redisCfg.DB,
	})
	log.Debug().Str("addr", redisCfg.Addr).Msg("Using redis token name cache")
	return enricher.NewRedisTokenNameCache(client, source.GetChainID().String(), time.Duration(redisCfg.TTL)*time.Second)
}

func pushMetrics(ctx context.Context) {
	pushCfg := config.Cfg.Metrics.Pushgateway
	if pushCfg.URL == "" {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := metrics.Push(ctx, pushCfg.URL, pushCfg.Job); err != nil {
		log.Warn().Err(err).Msg("Failed to push metrics")
	}
}
