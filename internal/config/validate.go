package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/Masterminds/semver/v3"
)

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true,
}

// Validate checks the configuration for errors.
// Returns a slice of error messages (empty if valid).
func (c *Config) Validate() []string {
	var errs []string

	u, err := url.Parse(c.Server.URL)
	switch {
	case err != nil:
		errs = append(errs, fmt.Sprintf("server.url: %v", err))
	case u.Scheme != "http" && u.Scheme != "https":
		errs = append(errs, fmt.Sprintf("server.url: scheme must be http or https, got %q", u.Scheme))
	case u.Host == "":
		errs = append(errs, "server.url: host is required")
	}
	if c.Server.Timeout < 0 {
		errs = append(errs, fmt.Sprintf("server.timeout: must be positive, got %s", c.Server.Timeout))
	}
	if c.Server.MinVersion != "" {
		if _, err := semver.NewConstraint(c.Server.MinVersion); err != nil {
			errs = append(errs, fmt.Sprintf("server.min_version: %v", err))
		}
	}

	if !validLogLevels[c.Log.Level] {
		errs = append(errs, fmt.Sprintf("log.level: must be one of debug, info, warn, error; got %q", c.Log.Level))
	}
	if c.Log.MaxSizeMB < 0 || c.Log.MaxBackups < 0 || c.Log.MaxAgeDays < 0 {
		errs = append(errs, "log: max_size_mb, max_backups and max_age_days must not be negative")
	}

	if c.Activity.PollInterval < time.Second {
		errs = append(errs, fmt.Sprintf("activity.poll_interval: must be at least 1s, got %s", c.Activity.PollInterval))
	}
	if c.Activity.HistorySize < 1 || c.Activity.HistorySize > 500 {
		errs = append(errs, fmt.Sprintf("activity.history_size: must be between 1 and 500, got %d", c.Activity.HistorySize))
	}

	if c.Library.PageSize < 1 || c.Library.PageSize > 500 {
		errs = append(errs, fmt.Sprintf("library.page_size: must be between 1 and 500, got %d", c.Library.PageSize))
	}

	if c.Discover.PagesPerSecond <= 0 {
		errs = append(errs, fmt.Sprintf("discover.pages_per_second: must be positive, got %g", c.Discover.PagesPerSecond))
	}

	return errs
}
