package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	apperrors "carbontrack/internal/platform/errors"
)

const (
	EnvPrefix              = "CARBONTRACK"
	DefaultTargetFootprint = 50
)

type Config struct {
	TargetFootprint int    `mapstructure:"target_footprint" yaml:"target_footprint"`
	LogFile         string `mapstructure:"log_file" yaml:"log_file"`
	LogLevel        string `mapstructure:"log_level" yaml:"log_level"`
	CatalogPath     string `mapstructure:"catalog_path" yaml:"catalog_path"`
	FixturesPath    string `mapstructure:"fixtures_path" yaml:"fixtures_path"`
	HistorySeed     uint64 `mapstructure:"history_seed" yaml:"history_seed"`

	// Source is the config file that was read, empty when only defaults and
	// environment applied.
	Source string `mapstructure:"-" yaml:"-"`
}

// New resolves configuration from defaults, an optional YAML file and
// CARBONTRACK_* environment variables, in increasing precedence. An empty
// configFile searches for carbontrack.yaml in the working directory and $HOME.
func New(configFile string) (Config, error) {
	v := viper.New()
	v.SetDefault("target_footprint", DefaultTargetFootprint)
	v.SetDefault("log_file", "")
	v.SetDefault("log_level", "info")
	v.SetDefault("catalog_path", "")
	v.SetDefault("fixtures_path", "")
	v.SetDefault("history_seed", 0)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", configFile, err)
		}
	} else {
		v.SetConfigName("carbontrack")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("read config: %w", err)
			}
		}
	}

	cfg := Config{}
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	cfg.Source = v.ConfigFileUsed()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.TargetFootprint <= 0 {
		return fmt.Errorf("%w: target_footprint must be positive, got %d", apperrors.ErrInvalidInput, c.TargetFootprint)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: unsupported log_level %q", apperrors.ErrInvalidInput, c.LogLevel)
	}
	return nil
}
