// Package config provides runtime configuration values for the register.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the file paths and logging knobs of the register.
type Config struct {
	CatalogFile string `yaml:"catalog_file"`
	CounterFile string `yaml:"counter_file"`
	ReceiptDir  string `yaml:"receipt_dir"`
	LogLevel    string `yaml:"log_level"`
	LogFormat   string `yaml:"log_format"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		CatalogFile: "inventory.txt",
		CounterFile: "transaction_counter.txt",
		ReceiptDir:  ".",
		LogLevel:    "info",
		LogFormat:   "text",
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// Load collects configuration from an optional yaml file and environment
// overrides, env winning over file, file over defaults. An empty path falls
// back to $REGISTER_CONFIG, then "register.yaml"; a missing file is fine.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = getenv("REGISTER_CONFIG", "register.yaml")
	}
	b, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	case !os.IsNotExist(err):
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg.CatalogFile = getenv("CATALOG_FILE", cfg.CatalogFile)
	cfg.CounterFile = getenv("COUNTER_FILE", cfg.CounterFile)
	cfg.ReceiptDir = getenv("RECEIPT_DIR", cfg.ReceiptDir)
	cfg.LogLevel = getenv("LOG_LEVEL", cfg.LogLevel)
	cfg.LogFormat = getenv("LOG_FORMAT", cfg.LogFormat)
	return cfg, nil
}
