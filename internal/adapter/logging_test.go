package adapter

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLogLevel("DEBUG"))
	assert.Equal(t, slog.LevelDebug, parseLogLevel("debug"))
	assert.Equal(t, slog.LevelInfo, parseLogLevel("INFO"))
	assert.Equal(t, slog.LevelWarn, parseLogLevel("WARN"))
	assert.Equal(t, slog.LevelWarn, parseLogLevel("warning"))
	assert.Equal(t, slog.LevelError, parseLogLevel("ERROR"))
	assert.Equal(t, slog.LevelInfo, parseLogLevel("bogus"))
	assert.Equal(t, slog.LevelInfo, parseLogLevel(""))
}

func TestSetupLoggerWritesJSON(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "logs", "hosteldesk.log")

	logger, err := SetupLogger(&LoggingConfig{File: logPath, Level: "DEBUG"})
	require.NoError(t, err)

	logger.Info("session restored", "email", "asha@example.com")

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), `"msg":"session restored"`))
	assert.True(t, strings.Contains(string(data), `"email":"asha@example.com"`))
}

func TestNullLoggerDiscards(t *testing.T) {
	logger := NullLogger()
	require.NotNil(t, logger)
	logger.Info("goes nowhere")
}
