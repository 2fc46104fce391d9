package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Valid(t *testing.T) {
	path := writeConfig(t, `
[server]
url = "https://media.example.com/api/"
timeout = "10s"
min_version = ">= 2.1.0"

[library]
page_size = 50
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://media.example.com/api", cfg.Server.URL, "trailing slash trimmed")
	assert.Equal(t, 10*time.Second, cfg.Server.Timeout)
	assert.Equal(t, ">= 2.1.0", cfg.Server.MinVersion)
	assert.Equal(t, 50, cfg.Library.PageSize)
}

func TestLoad_AppliesDefaults(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", "/tmp/state-home")
	path := writeConfig(t, "")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultServerURL, cfg.Server.URL)
	assert.Equal(t, DefaultTimeout, cfg.Server.Timeout)
	assert.Equal(t, "/tmp/state-home/arrdeck/state.db", cfg.State.Path)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, 10, cfg.Log.MaxSizeMB)
	assert.Equal(t, 3, cfg.Log.MaxBackups)
	assert.Equal(t, 28, cfg.Log.MaxAgeDays)
	assert.Equal(t, DefaultPollInterval, cfg.Activity.PollInterval)
	assert.Equal(t, DefaultHistorySize, cfg.Activity.HistorySize)
	assert.Equal(t, DefaultPageSize, cfg.Library.PageSize)
	assert.InDelta(t, DefaultPagesPerSecond, cfg.Discover.PagesPerSecond, 0.0001)
}

func TestLoad_MissingEnvVar(t *testing.T) {
	path := writeConfig(t, `
[server]
url = "${ARRDECK_TEST_MISSING_URL_4242}"
`)

	_, err := Load(path)
	require.Error(t, err)

	var cfgErr *ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, []string{"ARRDECK_TEST_MISSING_URL_4242"}, cfgErr.Missing)
	assert.Equal(t, path, cfgErr.Path)
}

func TestLoad_EnvSubstitution(t *testing.T) {
	t.Setenv("ARRDECK_TEST_URL", "http://nas.local:8484/api")
	path := writeConfig(t, `
[server]
url = "${ARRDECK_TEST_URL}"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "http://nas.local:8484/api", cfg.Server.URL)
}

func TestLoad_ValidationError(t *testing.T) {
	path := writeConfig(t, `
[server]
url = "ftp://example.com"

[log]
level = "verbose"
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "server.url"), err.Error())
	assert.True(t, strings.Contains(err.Error(), "log.level"), err.Error())
}

func TestLoad_ParseError(t *testing.T) {
	path := writeConfig(t, "[server\nurl = ")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config")
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoadWithoutValidation_SkipsValidate(t *testing.T) {
	path := writeConfig(t, `
[library]
page_size = 9999
`)

	cfg, err := LoadWithoutValidation(path)
	require.NoError(t, err)
	assert.Equal(t, 9999, cfg.Library.PageSize)
	assert.NotEmpty(t, cfg.Validate())
}

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	assert.Empty(t, cfg.Validate())
}
