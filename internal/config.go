package internal

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

type Config struct {
	Storage StorageConfig `mapstructure:"storage"`
	Logging LoggingConfig `mapstructure:"logging"`
	Export  ExportConfig  `mapstructure:"export"`
}

type StorageConfig struct {
	// Path is the sqlite database file that plays the role of the
	// browser's local storage. ":memory:" is accepted for testing.
	Path        string `mapstructure:"path"`
	SnapshotKey string `mapstructure:"snapshot_key"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type ExportConfig struct {
	Dir string `mapstructure:"dir"`
}

const (
	DefaultStoragePath = "leave_management.db"
	DefaultSnapshotKey = "leave_management_data"
)

// DefaultConfig returns the configuration used when no config file is present.
func DefaultConfig() *Config {
	return &Config{
		Storage: StorageConfig{
			Path:        DefaultStoragePath,
			SnapshotKey: DefaultSnapshotKey,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		Export: ExportConfig{
			Dir: ".",
		},
	}
}

// LoadConfigFromEnv builds a config purely from environment variables,
// used when running without a config file.
func LoadConfigFromEnv() *Config {
	cfg := DefaultConfig()
	cfg.Storage.Path = getEnv("STORAGE_PATH", cfg.Storage.Path)
	cfg.Storage.SnapshotKey = getEnv("STORAGE_SNAPSHOT_KEY", cfg.Storage.SnapshotKey)
	cfg.Logging.Level = getEnv("LOGGING_LEVEL", cfg.Logging.Level)
	cfg.Logging.Format = getEnv("LOGGING_FORMAT", cfg.Logging.Format)
	cfg.Export.Dir = getEnv("EXPORT_DIR", cfg.Export.Dir)
	return cfg
}

// ----------------- HELPERS -----------------

func getEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

// ----------------- VALIDATION -----------------

func (c *Config) Validate() error {
	var errs []string

	if err := c.Storage.Validate(); err != nil {
		errs = append(errs, fmt.Sprintf("storage config: %v", err))
	}

	if err := c.Logging.Validate(); err != nil {
		errs = append(errs, fmt.Sprintf("logging config: %v", err))
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}

	return nil
}

func (c *StorageConfig) Validate() error {
	if c.Path == "" {
		return errors.New("path is required")
	}
	if c.SnapshotKey == "" {
		return errors.New("snapshot_key is required")
	}
	return nil
}

func (c *LoggingConfig) Validate() error {
	switch strings.ToLower(c.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Level)
	}
	switch strings.ToLower(c.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format %q", c.Format)
	}
	return nil
}
