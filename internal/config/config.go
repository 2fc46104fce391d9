// Package config handles TOML configuration loading with environment variable substitution.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Config is the root configuration structure.
type Config struct {
	Server   ServerConfig   `toml:"server"`
	State    StateConfig    `toml:"state"`
	Log      LogConfig      `toml:"log"`
	Activity ActivityConfig `toml:"activity"`
	Library  LibraryConfig  `toml:"library"`
	Discover DiscoverConfig `toml:"discover"`
}

type ServerConfig struct {
	URL        string        `toml:"url"`
	Timeout    time.Duration `toml:"timeout"`
	MinVersion string        `toml:"min_version"`
}

type StateConfig struct {
	Path string `toml:"path"`
}

type LogConfig struct {
	Level      string `toml:"level"`
	File       string `toml:"file"`
	MaxSizeMB  int    `toml:"max_size_mb"`
	MaxBackups int    `toml:"max_backups"`
	MaxAgeDays int    `toml:"max_age_days"`
}

type ActivityConfig struct {
	PollInterval time.Duration `toml:"poll_interval"`
	HistorySize  int           `toml:"history_size"`
}

type LibraryConfig struct {
	PageSize int `toml:"page_size"`
}

type DiscoverConfig struct {
	PagesPerSecond float64 `toml:"pages_per_second"`
}

// Defaults used when a setting is absent.
const (
	DefaultServerURL      = "http://localhost:8484/api"
	DefaultTimeout        = 30 * time.Second
	DefaultLogLevel       = "warn"
	DefaultPollInterval   = 5 * time.Second
	DefaultHistorySize    = 20
	DefaultPageSize       = 25
	DefaultPagesPerSecond = 2.0
)

// Default returns a configuration with every default applied, for running
// without a config file.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads, substitutes, parses and validates the configuration file.
func Load(path string) (*Config, error) {
	cfg, err := LoadWithoutValidation(path)
	if err != nil {
		return nil, err
	}
	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, &ConfigError{Path: path, Errors: errs}
	}
	return cfg, nil
}

// LoadWithoutValidation reads and parses the configuration without running
// Validate. Unresolved environment variables are still an error.
func LoadWithoutValidation(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	content, missing := substituteEnvVars(string(data))
	if len(missing) > 0 {
		return nil, &ConfigError{Path: path, Missing: missing}
	}

	var cfg Config
	if _, err := toml.Decode(content, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.URL == "" {
		c.Server.URL = DefaultServerURL
	}
	c.Server.URL = strings.TrimRight(c.Server.URL, "/")
	if c.Server.Timeout == 0 {
		c.Server.Timeout = DefaultTimeout
	}
	if c.State.Path == "" {
		c.State.Path = DefaultStatePath()
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
	if c.Log.MaxSizeMB == 0 {
		c.Log.MaxSizeMB = 10
	}
	if c.Log.MaxBackups == 0 {
		c.Log.MaxBackups = 3
	}
	if c.Log.MaxAgeDays == 0 {
		c.Log.MaxAgeDays = 28
	}
	if c.Activity.PollInterval == 0 {
		c.Activity.PollInterval = DefaultPollInterval
	}
	if c.Activity.HistorySize == 0 {
		c.Activity.HistorySize = DefaultHistorySize
	}
	if c.Library.PageSize == 0 {
		c.Library.PageSize = DefaultPageSize
	}
	if c.Discover.PagesPerSecond == 0 {
		c.Discover.PagesPerSecond = DefaultPagesPerSecond
	}
}

// DefaultStatePath returns the XDG state location of the local database.
func DefaultStatePath() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "./arrdeck.db"
		}
		stateHome = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(stateHome, "arrdeck", "state.db")
}

// envVarPattern matches ${VAR}, ${VAR:-default} and ${VAR:?message}.
var envVarPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)(?:(:-|:\?)([^}]*))?\}`)

// substituteEnvVars expands environment references. References that cannot
// be resolved are left in place and reported in missing; a ":?" reference
// reports its message alongside the name.
func substituteEnvVars(content string) (string, []string) {
	var missing []string
	out := envVarPattern.ReplaceAllStringFunc(content, func(match string) string {
		m := envVarPattern.FindStringSubmatch(match)
		name, op, arg := m[1], m[2], m[3]
		value, ok := os.LookupEnv(name)

		switch op {
		case ":-":
			if !ok || value == "" {
				return arg
			}
			return value
		case ":?":
			if !ok || value == "" {
				missing = append(missing, fmt.Sprintf("%s: %s", name, arg))
				return match
			}
			return value
		}
		if !ok {
			missing = append(missing, name)
			return match
		}
		return value
	})
	return out, missing
}
