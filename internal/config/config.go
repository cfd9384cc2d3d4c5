package config

import (
	"fmt"

	"github.com/spf13/viper"
)

const (
	DefaultUsers    = 100
	DefaultProducts = 100
	DefaultOrders   = 20
)

type Config struct {
	OutDir string `json:"out_dir" mapstructure:"out_dir"`
	Format string `json:"format" mapstructure:"format"`
	Counts Counts `json:"counts" mapstructure:"counts"`
}

type Counts struct {
	Users    int `json:"users,omitempty" mapstructure:"users"`
	Products int `json:"products,omitempty" mapstructure:"products"`
	Orders   int `json:"orders,omitempty" mapstructure:"orders"`
}

// Load reads whatever viper picked up (shopgen.config.json if present) and
// fills in defaults for everything the file leaves out.
func Load() (*Config, error) {
	var cfg Config

	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.OutDir == "" {
		cfg.OutDir = "."
	}
	if cfg.Format == "" {
		cfg.Format = "csv"
	}
	if cfg.Counts.Users == 0 && !viper.IsSet("counts.users") {
		cfg.Counts.Users = DefaultUsers
	}
	if cfg.Counts.Products == 0 && !viper.IsSet("counts.products") {
		cfg.Counts.Products = DefaultProducts
	}
	if cfg.Counts.Orders == 0 && !viper.IsSet("counts.orders") {
		cfg.Counts.Orders = DefaultOrders
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	switch c.Format {
	case "csv", "json", "sqlite":
		return nil
	default:
		return fmt.Errorf("unsupported output format: %q (expected csv, json or sqlite)", c.Format)
	}
}
