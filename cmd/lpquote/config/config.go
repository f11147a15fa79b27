package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/gagliardetto/solana-go"
	"gopkg.in/yaml.v3"
)

type Token struct {
	Symbol   string `yaml:"symbol"`
	Decimals uint8  `yaml:"decimals"`
}

type Config struct {
	// LogLevel is one of debug, info, warn, error. Defaults to info.
	LogLevel string `yaml:"log_level"`
	// ProgramID overrides the LP program that must own the LpPool account.
	ProgramID string `yaml:"program_id"`
	TokenX    Token  `yaml:"token_x"`
	TokenY    Token  `yaml:"token_y"`
	// PricePlaces is how many decimals the human price is rounded to.
	PricePlaces int32 `yaml:"price_places"`
}

func Default() *Config {
	return &Config{
		LogLevel:    "info",
		TokenX:      Token{Symbol: "X"},
		TokenY:      Token{Symbol: "Y"},
		PricePlaces: 8,
	}
}

// LoadConfig reads a YAML file over the defaults. A missing file is not an
// error when path is empty.
func LoadConfig(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	if c.ProgramID != "" {
		if _, err := solana.PublicKeyFromBase58(c.ProgramID); err != nil {
			return fmt.Errorf("program_id: %w", err)
		}
	}
	if c.PricePlaces < 0 {
		return errors.New("price_places cannot be negative")
	}
	return nil
}

// ProgramKey returns the configured program id, or false when unset.
func (c *Config) ProgramKey() (solana.PublicKey, bool) {
	if c.ProgramID == "" {
		return solana.PublicKey{}, false
	}
	key, err := solana.PublicKeyFromBase58(c.ProgramID)
	if err != nil {
		return solana.PublicKey{}, false
	}
	return key, true
}

func (c *Config) SlogLevel() (slog.Level, error) {
	switch strings.ToLower(c.LogLevel) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("unknown log_level %q", c.LogLevel)
}
