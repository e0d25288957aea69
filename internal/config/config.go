// Package config loads server configuration from an optional yaml file
// and the environment. Environment variables override file values
// (LINKNEST_PORT, LINKNEST_DB_PATH, ...).
package config

import (
	"errors"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port        string `mapstructure:"port"`
	DBPath      string `mapstructure:"db_path"`
	CORSOrigins string `mapstructure:"cors_origins"`

	// Upstream base URLs, overridable for testing.
	CoinGeckoURL string `mapstructure:"coingecko_url"`
	NewsURL      string `mapstructure:"news_url"`

	// Watchlist snapshot refresh cadence.
	RefreshInterval time.Duration `mapstructure:"refresh_interval"`

	// Optional path to a built frontend to serve as an SPA.
	FrontendDistPath string `mapstructure:"frontend_dist_path"`
}

// Load reads ./configs/config.yaml if present, then applies environment
// overrides. A missing config file is fine; defaults cover everything.
func Load() (*Config, error) {
	viper.AddConfigPath("./configs")
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetEnvPrefix("linknest")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("port", "8080")
	viper.SetDefault("db_path", "./linknest.db")
	viper.SetDefault("cors_origins", "")
	viper.SetDefault("coingecko_url", "")
	viper.SetDefault("news_url", "")
	viper.SetDefault("refresh_interval", 5*time.Minute)
	viper.SetDefault("frontend_dist_path", "")

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// AllowedOrigins splits the configured CORS origin list.
func (c *Config) AllowedOrigins() []string {
	if c.CORSOrigins == "" {
		return []string{"http://localhost:5173", "http://localhost:3000"}
	}
	return strings.Split(c.CORSOrigins, ",")
}
