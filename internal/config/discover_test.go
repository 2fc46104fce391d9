package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPath_XDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/custom/config")
	assert.Equal(t, "/custom/config/arrdeck/config.toml", DefaultPath())
}

func TestDiscover_EnvVar(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.toml")
	require.NoError(t, os.WriteFile(path, []byte(""), 0o644))
	t.Setenv("ARRDECK_CONFIG", path)

	got, err := Discover()
	require.NoError(t, err)
	assert.Equal(t, path, got)
}

func TestDiscover_EnvVarMissingFile(t *testing.T) {
	t.Setenv("ARRDECK_CONFIG", filepath.Join(t.TempDir(), "nope.toml"))

	_, err := Discover()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ARRDECK_CONFIG")
}

func TestDiscover_XDG(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("ARRDECK_CONFIG", "")
	t.Setenv("XDG_CONFIG_HOME", tmp)
	t.Chdir(t.TempDir())

	path := filepath.Join(tmp, "arrdeck", "config.toml")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(""), 0o644))

	got, err := Discover()
	require.NoError(t, err)
	assert.Equal(t, path, got)
}

func TestResolve_FallsBackToDefault(t *testing.T) {
	if _, err := os.Stat("/etc/arrdeck/config.toml"); err == nil {
		t.Skip("system config present")
	}
	t.Setenv("ARRDECK_CONFIG", "")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Chdir(t.TempDir())

	_, err := Discover()
	assert.True(t, errors.Is(err, ErrNotFound))

	cfg, path, err := Resolve("")
	require.NoError(t, err)
	assert.Empty(t, path)
	assert.Equal(t, DefaultServerURL, cfg.Server.URL)
}

func TestResolve_ExplicitPath(t *testing.T) {
	path := writeConfig(t, "[library]\npage_size = 10\n")

	cfg, got, err := Resolve(path)
	require.NoError(t, err)
	assert.Equal(t, path, got)
	assert.Equal(t, 10, cfg.Library.PageSize)
}
