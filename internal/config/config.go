// Package config loads Lorekeeper settings from defaults, an optional YAML
// file and LOREKEEPER_* environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	// DefaultRecentCapacity bounds the in-session recent list.
	DefaultRecentCapacity = 100

	// DefaultAlternates is the number of alternatives offered per generation.
	DefaultAlternates = 10

	// MaxAlternates is one alternative per digit alias.
	MaxAlternates = 10
)

// Config holds all configuration for lorekeeper.
type Config struct {
	Journal JournalConfig `mapstructure:"journal"`
	Session SessionConfig `mapstructure:"session"`
	Random  RandomConfig  `mapstructure:"random"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// JournalConfig holds journal persistence settings.
type JournalConfig struct {
	Path    string `mapstructure:"path"`
	Enabled bool   `mapstructure:"enabled"`
}

// SessionConfig holds in-memory session settings.
type SessionConfig struct {
	RecentCapacity int `mapstructure:"recent_capacity"`
	Alternates     int `mapstructure:"alternates"`
}

// RandomConfig holds the generator seed. Zero seeds from the clock.
type RandomConfig struct {
	Seed uint64 `mapstructure:"seed"`
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration. A non-empty path names the config file to use;
// otherwise ~/.lorekeeper/config.yaml and ./config.yaml are tried.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("journal.path", filepath.Join(homeDir(), ".lorekeeper", "journal.db"))
	v.SetDefault("journal.enabled", true)

	v.SetDefault("session.recent_capacity", DefaultRecentCapacity)
	v.SetDefault("session.alternates", DefaultAlternates)

	v.SetDefault("random.seed", 0)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")

	// Config file
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(filepath.Join(homeDir(), ".lorekeeper"))
		v.AddConfigPath(".")
	}

	// Environment variables, e.g. LOREKEEPER_JOURNAL_PATH
	v.SetEnvPrefix("LOREKEEPER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || path != "" {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

// Validate checks that configuration fields are set and consistent.
func (c *Config) Validate() error {
	if c.Journal.Enabled && c.Journal.Path == "" {
		return fmt.Errorf("journal.path must not be empty when the journal is enabled")
	}
	if c.Session.RecentCapacity <= 0 {
		return fmt.Errorf("session.recent_capacity must be greater than 0")
	}
	if c.Session.Alternates < 0 || c.Session.Alternates > MaxAlternates {
		return fmt.Errorf("session.alternates must be between 0 and %d", MaxAlternates)
	}
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level %q must be one of debug, info, warn, error", c.Logging.Level)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("logging.format %q must be text or json", c.Logging.Format)
	}
	return nil
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
