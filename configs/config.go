package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type LogConfig struct {
	Level    string `mapstructure:"level"`
	Prettify bool   `mapstructure:"prettify"`
}

type RPCConfig struct {
	URL string `mapstructure:"url"`
	// Timeout is the per call timeout in milliseconds
	Timeout int `mapstructure:"timeout"`
	// RateLimit caps requests per second, 0 disables limiting
	RateLimit int    `mapstructure:"rateLimit"`
	ChainID   string `mapstructure:"chainId"`
}

type SignaturesConfig struct {
	Path string `mapstructure:"path"`
}

type EnricherConfig struct {
	Workers int `mapstructure:"workers"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	// TTL in seconds, 0 keeps entries forever
	TTL int `mapstructure:"ttl"`
}

type CacheConfig struct {
	Enabled bool        `mapstructure:"enabled"`
	Redis   RedisConfig `mapstructure:"redis"`
}

type PushgatewayConfig struct {
	URL string `mapstructure:"url"`
	Job string `mapstructure:"job"`
}

type MetricsConfig struct {
	Pushgateway PushgatewayConfig `mapstructure:"pushgateway"`
}

type OutputConfig struct {
	Format string `mapstructure:"format"`
}

type Config struct {
	RPC        RPCConfig        `mapstructure:"rpc"`
	Log        LogConfig        `mapstructure:"log"`
	Signatures SignaturesConfig `mapstructure:"signatures"`
	Enricher   EnricherConfig   `mapstructure:"enricher"`
	Cache      CacheConfig      `mapstructure:"cache"`
	Metrics    MetricsConfig    `mapstructure:"metrics"`
	Output     OutputConfig     `mapstructure:"output"`
}

var Cfg Config

func LoadConfig(cfgFile string) error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("error reading config file, %s", err)
		}
	} else {
		viper.SetConfigName("config")
		viper.AddConfigPath("./configs")

		// the config file is optional, flags and env are enough to run
		if err := viper.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return fmt.Errorf("error reading config file, %s", err)
			}
		}
	}

	// sets e.g. RPC_URL to rpc.url
	replacer := strings.NewReplacer(".", "_")
	viper.SetEnvKeyReplacer(replacer)

	viper.AutomaticEnv()

	// INFURA_MAIN is accepted for compatibility with older deployments
	if err := viper.BindEnv("rpc.url", "RPC_URL", "INFURA_MAIN"); err != nil {
		return fmt.Errorf("error binding rpc url env: %v", err)
	}

	err := viper.Unmarshal(&Cfg)
	if err != nil {
		return fmt.Errorf("error unmarshalling config: %v", err)
	}

	return nil
}
