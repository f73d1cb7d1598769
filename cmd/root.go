package cmd

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	configs "github.com/thirdweb-dev/inspector/configs"
	"github.com/thirdweb-dev/inspector/internal/env"
	customLogger "github.com/thirdweb-dev/inspector/internal/log"
)

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   "inspector",
		Short: "Enrich the transactions of the latest block",
		Long:  "Fetches the most recently mined block and reports, for every transaction, the token name, the called function signature and the transferred value.",
		Run: func(cmd *cobra.Command, args []string) {
			RunInspect(cmd, args)
		},
	}
)

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./configs/config.yml)")
	rootCmd.PersistentFlags().String("rpc-url", "", "RPC Url of the node to inspect")
	rootCmd.PersistentFlags().Int("rpc-timeout", 10000, "Timeout in milliseconds for a single RPC call")
	rootCmd.PersistentFlags().Int("rpc-rate-limit", 0, "Maximum RPC requests per second, 0 for unlimited")
	rootCmd.PersistentFlags().String("log-level", "", "Log level to use for the application")
	rootCmd.PersistentFlags().Bool("log-prettify", false, "Whether to prettify the log output")
	rootCmd.PersistentFlags().String("signatures-path", "./configs/signatures.json", "Path to the function selector signatures file")
	rootCmd.PersistentFlags().Int("enricher-workers", 8, "How many transactions to enrich concurrently")
	rootCmd.PersistentFlags().Bool("cache-enabled", true, "Toggle the token name cache")
	rootCmd.PersistentFlags().String("cache-redis-addr", "", "Redis address for a token name cache shared between runs")
	rootCmd.PersistentFlags().String("cache-redis-password", "", "Redis password for the token name cache")
	rootCmd.PersistentFlags().Int("cache-redis-db", 0, "Redis database for the token name cache")
	rootCmd.PersistentFlags().Int("cache-redis-ttl", 86400, "Seconds to keep token names in redis")
	rootCmd.PersistentFlags().String("metrics-pushgateway-url", "", "Prometheus Pushgateway to push run metrics to")
	rootCmd.PersistentFlags().String("metrics-pushgateway-job", "inspector", "Pushgateway job name")
	rootCmd.PersistentFlags().String("output", "text", "Report format, text or json")
	viper.BindPFlag("rpc.url", rootCmd.PersistentFlags().Lookup("rpc-url"))
	viper.BindPFlag("rpc.timeout", rootCmd.PersistentFlags().Lookup("rpc-timeout"))
	viper.BindPFlag("rpc.rateLimit", rootCmd.PersistentFlags().Lookup("rpc-rate-limit"))
	viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("log.prettify", rootCmd.PersistentFlags().Lookup("log-prettify"))
	viper.BindPFlag("signatures.path", rootCmd.PersistentFlags().Lookup("signatures-path"))
	viper.BindPFlag("enricher.workers", rootCmd.PersistentFlags().Lookup("enricher-workers"))
	viper.BindPFlag("cache.enabled", rootCmd.PersistentFlags().Lookup("cache-enabled"))
	viper.BindPFlag("cache.redis.addr", rootCmd.PersistentFlags().Lookup("cache-redis-addr"))
	viper.BindPFlag("cache.redis.password", rootCmd.PersistentFlags().Lookup("cache-redis-password"))
	viper.BindPFlag("cache.redis.db", rootCmd.PersistentFlags().Lookup("cache-redis-db"))
	viper.BindPFlag("cache.redis.ttl", rootCmd.PersistentFlags().Lookup("cache-redis-ttl"))
	viper.BindPFlag("metrics.pushgateway.url", rootCmd.PersistentFlags().Lookup("metrics-pushgateway-url"))
	viper.BindPFlag("metrics.pushgateway.job", rootCmd.PersistentFlags().Lookup("metrics-pushgateway-job"))
	viper.BindPFlag("output.format", rootCmd.PersistentFlags().Lookup("output"))
	rootCmd.AddCommand(inspectCmd)
}

func initConfig() {
	env.Load()
	err := configs.LoadConfig(cfgFile)
	customLogger.InitLogger()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}
}
