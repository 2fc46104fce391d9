package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vmunix/arrdeck/internal/config"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"bogus", slog.LevelInfo},
		{"", slog.LevelInfo},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestNew_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "arrdeck.log")

	log, closer, err := New(config.LogConfig{Level: "info", File: path, MaxSizeMB: 1}, false)
	require.NoError(t, err)

	log.Info("hello", "component", "test")
	log.Debug("hidden")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "msg=hello")
	assert.Contains(t, string(data), "component=test")
	assert.NotContains(t, string(data), "hidden")
}

func TestNew_VerboseOverridesLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arrdeck.log")

	log, closer, err := New(config.LogConfig{Level: "error", File: path}, true)
	require.NoError(t, err)
	log.Debug("shown")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "shown")
}

func TestNew_Stderr(t *testing.T) {
	log, closer, err := New(config.LogConfig{Level: "warn"}, false)
	require.NoError(t, err)
	assert.NotNil(t, log)
	assert.NoError(t, closer.Close())
	assert.False(t, log.Enabled(t.Context(), slog.LevelInfo))
}
