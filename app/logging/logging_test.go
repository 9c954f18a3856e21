package logging

import (
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}
	for name, want := range tests {
		got, err := ParseLevel(name)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseLevel("verbose")
	assert.ErrorIs(t, err, ErrInvalidLogLevel)
}

func TestNewWritesJSONToFiles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.json")
	f, err := os.Create(path)
	require.NoError(t, err)

	logger, err := New(f, "info")
	require.NoError(t, err)
	logger.Debug("hidden")
	logger.Info("command failed", "line", 3)
	require.NoError(t, f.Close())

	f, err = os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	data, err := io.ReadAll(f)
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(data, &entry))
	assert.Equal(t, "command failed", entry["msg"])
	assert.Equal(t, float64(3), entry["line"])
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, err := New(os.Stderr, "loud")
	assert.ErrorIs(t, err, ErrInvalidLogLevel)
}
