// Package config loads settings from defaults, an optional config file and
// the environment, in increasing order of precedence.
package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// FileEnv names the environment variable pointing at an optional config file.
const FileEnv = "ADDRESSBOOK_CONFIG"

type Config struct {
	// Contact storage
	DataBackend  string `mapstructure:"data_backend"`
	DataFile     string `mapstructure:"data_file"`
	SQLiteDBPath string `mapstructure:"sqlite_db_path"`

	// AMQP; an empty URL disables payment publishing
	AMQPURL      string `mapstructure:"amqp_url"`
	AMQPExchange string `mapstructure:"amqp_exchange"`
	AMQPQueue    string `mapstructure:"amqp_queue"`

	// Google Sheets payment ledger
	GoogleSpreadsheetID      string `mapstructure:"google_spreadsheet_id"`
	GoogleSheetName          string `mapstructure:"google_sheet_name"`
	GoogleServiceAccountFile string `mapstructure:"google_service_account_file"`
	GoogleServiceAccountJSON string `mapstructure:"google_service_account_json"`

	// Worker
	MetricsAddr     string        `mapstructure:"metrics_addr"`
	DedupeCacheSize int           `mapstructure:"dedupe_cache_size"`
	DedupeTTL       time.Duration `mapstructure:"dedupe_ttl"`

	// Logging
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
}

var (
	validBackends   = []string{"memory", "json", "sqlite"}
	validLogLevels  = []string{"debug", "info", "warn", "error"}
	validLogFormats = []string{"text", "json"}
)

var defaults = map[string]any{
	"data_backend":                "json",
	"data_file":                   "./data/addressbook.json",
	"sqlite_db_path":              "./data/addressbook.db",
	"amqp_url":                    "",
	"amqp_exchange":               "addressbook",
	"amqp_queue":                  "payments_marked",
	"google_spreadsheet_id":       "",
	"google_sheet_name":           "Payments",
	"google_service_account_file": "",
	"google_service_account_json": "",
	"metrics_addr":                ":9091",
	"dedupe_cache_size":           1000,
	"dedupe_ttl":                  "24h",
	"log_level":                   "info",
	"log_format":                  "text",
}

// Load reads the configuration. Every key can be overridden by the upper-case
// environment variable of the same name, e.g. DATA_BACKEND.
func Load() (*Config, error) {
	v := viper.New()
	for k, d := range defaults {
		v.SetDefault(k, d)
	}
	v.AutomaticEnv()

	if path := strings.TrimSpace(os.Getenv(FileEnv)); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	return &cfg, nil
}

// Validate validates the configuration and returns every problem found.
func (c *Config) Validate() error {
	var errors []string

	if !slices.Contains(validBackends, c.DataBackend) {
		errors = append(errors, fmt.Sprintf("invalid data backend '%s': must be one of %v", c.DataBackend, validBackends))
	}

	switch c.DataBackend {
	case "json":
		if c.DataFile == "" {
			errors = append(errors, "data file cannot be empty when using json backend")
		}
	case "sqlite":
		if c.SQLiteDBPath == "" {
			errors = append(errors, "SQLite database path cannot be empty when using sqlite backend")
		} else if dir := filepath.Dir(c.SQLiteDBPath); dir != "." && dir != "" {
			if info, err := os.Stat(dir); err == nil && !info.IsDir() {
				errors = append(errors, fmt.Sprintf("SQLite database directory '%s' is not a directory", dir))
			}
		}
	}

	if c.AMQPURL != "" {
		if parsedURL, err := url.Parse(c.AMQPURL); err != nil {
			errors = append(errors, fmt.Sprintf("invalid AMQP URL '%s': %v", c.AMQPURL, err))
		} else if parsedURL.Scheme != "amqp" && parsedURL.Scheme != "amqps" {
			errors = append(errors, fmt.Sprintf("invalid AMQP URL scheme '%s': must be 'amqp' or 'amqps'", parsedURL.Scheme))
		}
		if c.AMQPExchange == "" {
			errors = append(errors, "AMQP exchange name cannot be empty when AMQP URL is provided")
		}
		if c.AMQPQueue == "" {
			errors = append(errors, "AMQP queue name cannot be empty when AMQP URL is provided")
		}
	}

	if c.GoogleSpreadsheetID != "" {
		if c.GoogleSheetName == "" {
			errors = append(errors, "Google Sheet name is required when a spreadsheet ID is set")
		}
		if c.GoogleServiceAccountFile != "" {
			if _, err := os.Stat(c.GoogleServiceAccountFile); os.IsNotExist(err) {
				errors = append(errors, fmt.Sprintf("Google service account file does not exist: %s", c.GoogleServiceAccountFile))
			}
		}
	}

	if _, _, err := net.SplitHostPort(c.MetricsAddr); err != nil {
		errors = append(errors, fmt.Sprintf("invalid metrics address '%s': %v", c.MetricsAddr, err))
	}

	if c.DedupeCacheSize < 1 {
		errors = append(errors, fmt.Sprintf("invalid dedupe cache size %d: must be at least 1", c.DedupeCacheSize))
	} else if c.DedupeCacheSize > 1_000_000 {
		errors = append(errors, fmt.Sprintf("invalid dedupe cache size %d: must be at most 1000000", c.DedupeCacheSize))
	}
	if c.DedupeTTL < time.Minute {
		errors = append(errors, fmt.Sprintf("invalid dedupe TTL %v: must be at least 1 minute", c.DedupeTTL))
	}

	if !slices.Contains(validLogLevels, c.LogLevel) {
		errors = append(errors, fmt.Sprintf("invalid log level '%s': must be one of %v", c.LogLevel, validLogLevels))
	}
	if !slices.Contains(validLogFormats, c.LogFormat) {
		errors = append(errors, fmt.Sprintf("invalid log format '%s': must be one of %v", c.LogFormat, validLogFormats))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}
	return nil
}

// PublishingEnabled reports whether payment events go to a broker.
func (c *Config) PublishingEnabled() bool {
	return c.AMQPURL != ""
}
