// Package config resolves run configuration from, in increasing
// precedence: built-in defaults, an optional config.yaml, KAKEIBO_*
// environment variables, and command-line flags.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	OutputDir string `mapstructure:"output-dir"`
	Mode      string `mapstructure:"mode"`
	GroupBy   string `mapstructure:"group-by"`
	Rules     string `mapstructure:"rules"`
	MaxRows   int    `mapstructure:"max-rows"`
}

// Build loads configuration. cfgFile may be empty, in which case a
// config.yaml in the working directory is used when present. flags may
// be nil (no flag overrides).
func Build(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	v.SetDefault("output-dir", ".")
	v.SetDefault("mode", "keyword")
	v.SetDefault("group-by", "year")
	v.SetDefault("rules", "")
	v.SetDefault("max-rows", 1000)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		var notFound viper.ConfigFileNotFoundError
		if err := v.ReadInConfig(); err != nil && !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix("KAKEIBO")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("failed to bind flags: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}
