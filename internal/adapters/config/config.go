package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config represents application configuration
type Config struct {
	Refresh   RefreshConfig   `envconfig:"REFRESH"`
	News      NewsConfig      `envconfig:"NEWS"`
	Translate TranslateConfig `envconfig:"TRANSLATE"`
	Markets   MarketsConfig   `envconfig:"MARKETS"`
	Telegram  TelegramConfig  `envconfig:"TELEGRAM"`
	Health    HealthConfig    `envconfig:"HEALTH"`
	Logging   LoggingConfig   `envconfig:"LOGGING"`
}

// RefreshConfig controls the background refresh cycle
type RefreshConfig struct {
	Interval time.Duration `envconfig:"REFRESH_INTERVAL" default:"8m"`
}

// NewsConfig represents headline ingestion parameters
type NewsConfig struct {
	SourcesFile    string        `envconfig:"NEWS_SOURCES_FILE" default:"configs/sources.yaml"`
	PerSourceLimit int           `envconfig:"NEWS_PER_SOURCE_LIMIT" default:"5"`
	MaxItems       int           `envconfig:"NEWS_MAX_ITEMS" default:"25"`
	TopN           int           `envconfig:"NEWS_TOP_N" default:"5"`
	RequestTimeout time.Duration `envconfig:"NEWS_REQUEST_TIMEOUT" default:"8s"`
}

// TranslateConfig represents translation chain parameters
type TranslateConfig struct {
	SourceLang     string        `envconfig:"TRANSLATE_SOURCE_LANG" default:"en"`
	TargetLang     string        `envconfig:"TRANSLATE_TARGET_LANG" default:"ru"`
	RequestTimeout time.Duration `envconfig:"TRANSLATE_REQUEST_TIMEOUT" default:"6s"`
}

// MarketsConfig represents auxiliary market value parameters
type MarketsConfig struct {
	BTCSymbol      string        `envconfig:"MARKETS_BTC_SYMBOL" default:"BTCUSDT"`
	RequestTimeout time.Duration `envconfig:"MARKETS_REQUEST_TIMEOUT" default:"6s"`
}

// TelegramConfig represents Telegram bot configuration
type TelegramConfig struct {
	BotToken string `envconfig:"TELEGRAM_BOT_TOKEN" required:"true"`
}

// HealthConfig represents health check server configuration
type HealthConfig struct {
	Enabled bool   `envconfig:"HEALTH_ENABLED" default:"true"`
	Port    string `envconfig:"HEALTH_PORT" default:"8080"`
}

// LoggingConfig represents logging configuration
type LoggingConfig struct {
	Level string `envconfig:"LOG_LEVEL" default:"info"`
	File  string `envconfig:"LOG_FILE" default:""`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// Validate checks if configuration is valid
func (c *Config) Validate() error {
	if c.Refresh.Interval <= 0 {
		return fmt.Errorf("refresh interval must be positive")
	}
	if c.News.PerSourceLimit < 1 {
		return fmt.Errorf("per-source limit must be at least 1")
	}
	if c.News.MaxItems < 1 {
		return fmt.Errorf("max items must be at least 1")
	}
	if c.News.TopN < 1 {
		return fmt.Errorf("top N must be at least 1")
	}
	if c.Telegram.BotToken == "" {
		return fmt.Errorf("telegram bot token is required")
	}
	return nil
}
