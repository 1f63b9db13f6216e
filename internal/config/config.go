// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config carries everything the CLI needs to reach the server: endpoint,
// credentials, logging, metrics and output preferences. Values come from a
// yaml config file overlaid with ZABBIX_* environment variables; flags are
// applied on top by the CLI layer.
type Config struct {
	API      string        `mapstructure:"api"`
	User     string        `mapstructure:"user"`
	Password string        `mapstructure:"password"`
	Vault    VaultConfig   `mapstructure:"vault"`
	Logging  LoggingConfig `mapstructure:"logging"`
	Metrics  MetricsConfig `mapstructure:"metrics"`
	Output   OutputConfig  `mapstructure:"output"`
}

type VaultConfig struct {
	Path    string `mapstructure:"path"`
	Service string `mapstructure:"service"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type MetricsConfig struct {
	Enabled     bool   `mapstructure:"enabled"`
	PushGateway string `mapstructure:"push_gateway"`
	Job         string `mapstructure:"job"`
}

type OutputConfig struct {
	Format string `mapstructure:"format"`
}

// Load reads the config file (an empty filename means ~/.xibbaz.yaml, which
// may be absent), applies environment overrides and defaults, and validates
// the result.
func Load(filename string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	setDefaults(v)

	v.SetEnvPrefix("ZABBIX")
	v.AutomaticEnv()
	_ = v.BindEnv("api", "ZABBIX_API")
	_ = v.BindEnv("user", "ZABBIX_USER")
	_ = v.BindEnv("password", "ZABBIX_PASS", "ZABBIX_PASSWORD")

	if filename != "" {
		v.SetConfigFile(filename)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		v.SetConfigName(".xibbaz")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("api", "")
	v.SetDefault("user", "")
	v.SetDefault("password", "")
	v.SetDefault("vault.path", defaultVaultPath())
	v.SetDefault("vault.service", "zabbix-api")
	v.SetDefault("logging.level", "warning")
	v.SetDefault("logging.format", "text")
	v.SetDefault("metrics.enabled", false)
	v.SetDefault("metrics.push_gateway", "")
	v.SetDefault("metrics.job", "xibbaz")
	v.SetDefault("output.format", "json")
}

func defaultVaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".xibbaz", "vault.db")
	}
	return filepath.Join(home, ".xibbaz", "vault.db")
}

func validate(cfg *Config) error {
	if _, err := logrus.ParseLevel(cfg.Logging.Level); err != nil {
		return fmt.Errorf("logging.level %q is not a valid level", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "text" && cfg.Logging.Format != "json" {
		return fmt.Errorf("logging.format must be text or json")
	}
	if cfg.Output.Format != "json" && cfg.Output.Format != "yaml" {
		return fmt.Errorf("output.format must be json or yaml")
	}
	if cfg.Metrics.Enabled && cfg.Metrics.PushGateway == "" {
		return fmt.Errorf("metrics.push_gateway is required when metrics are enabled")
	}
	if cfg.Vault.Path == "" {
		return fmt.Errorf("vault.path cannot be empty")
	}
	return nil
}
