// Package config loads settings from <root>/.tuffous/config.toml and the
// environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/td0m/tuffous/pkg/query"
)

const FileName = "config.toml"

type Config struct {
	Log   LogConfig   `toml:"log"`
	Query QueryConfig `toml:"query"`
	UI    UIConfig    `toml:"ui"`
}

type LogConfig struct {
	Level       string `toml:"level"`
	Development bool   `toml:"development"`
}

type QueryConfig struct {
	MaxResults int `toml:"max_results"`
}

type UIConfig struct {
	// NerdFont selects Nerd Font glyphs for status flags instead of plain symbols
	NerdFont bool `toml:"nerd_font"`
}

func Default() Config {
	return Config{
		Log:   LogConfig{Level: "warn"},
		Query: QueryConfig{MaxResults: query.DefaultLimit},
	}
}

// Path is where the config file for a store rooted at root lives
func Path(root string) string {
	return filepath.Join(root, ".tuffous", FileName)
}

// Load reads the config of the store at root. A missing file leaves the
// defaults in place; environment variables win over both.
func Load(root string) (Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(Path(root), &cfg); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	applyEnv(&cfg)
	if cfg.Query.MaxResults <= 0 {
		return cfg, fmt.Errorf("query.max_results must be positive, got %d", cfg.Query.MaxResults)
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	cfg.Log.Level = getEnv("TUFFOUS_LOG_LEVEL", cfg.Log.Level)
	cfg.Log.Development = getEnvBool("TUFFOUS_LOG_DEV", cfg.Log.Development)
	cfg.Query.MaxResults = getEnvInt("TUFFOUS_MAX_RESULTS", cfg.Query.MaxResults)
	cfg.UI.NerdFont = getEnvBool("TUFFOUS_NERD_FONT", cfg.UI.NerdFont)
}

// Write stores cfg at root, replacing any existing file
func Write(root string, cfg Config) error {
	f, err := os.Create(Path(root))
	if err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(cfg)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		return value == "true" || value == "1" || value == "yes"
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
