package config

import (
	"github.com/Anxten/senti-quant/pkg/config"
)

// Config holds the full configuration for the stats service.
type Config struct {
	App      config.App      `mapstructure:"app"`
	Logger   config.Logger   `mapstructure:"logger"`
	Database config.Database `mapstructure:"database"`
	API      config.API      `mapstructure:"api"`
}

// Load loads the stats service configuration from the given path.
func Load(path string) (*Config, error) {
	var cfg Config
	if err := config.Load(path, &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Database.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
