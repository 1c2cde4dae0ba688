package config

import (
	"time"

	"github.com/Anxten/senti-quant/pkg/config"
)

// Fetcher holds fetch-stage configuration.
type Fetcher struct {
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
	MaxConcurrent  int           `mapstructure:"max_concurrent"`
}

// Scoring holds scoring-stage configuration.
type Scoring struct {
	BatchLimit int `mapstructure:"batch_limit"`
}

// Gemini holds the configuration for the Gemini sentiment classifier.
type Gemini struct {
	APIKey              string `mapstructure:"api_key"`
	Model               string `mapstructure:"model"`
	MaxRequestPerMinute int    `mapstructure:"max_request_per_minute"`
}

// Config holds the full configuration for the pipeline service.
type Config struct {
	App      config.App      `mapstructure:"app"`
	Logger   config.Logger   `mapstructure:"logger"`
	Database config.Database `mapstructure:"database"`
	Fetcher  Fetcher         `mapstructure:"fetcher"`
	Scoring  Scoring         `mapstructure:"scoring"`
	Gemini   Gemini          `mapstructure:"gemini"`
}

// Load loads the pipeline configuration from the given path and applies
// defaults for optional values.
func Load(path string) (*Config, error) {
	var cfg Config
	if err := config.Load(path, &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Database.Validate(); err != nil {
		return nil, err
	}

	if cfg.Fetcher.RequestTimeout == 0 {
		cfg.Fetcher.RequestTimeout = 10 * time.Second
	}
	if cfg.Fetcher.MaxConcurrent == 0 {
		cfg.Fetcher.MaxConcurrent = 8
	}
	if cfg.Scoring.BatchLimit == 0 {
		cfg.Scoring.BatchLimit = 50
	}

	return &cfg, nil
}
