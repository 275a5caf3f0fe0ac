package helpers

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlainFormatter(t *testing.T) {
	var buf bytes.Buffer
	logger := NewFileLogger(&buf)

	logger.Infoln("binance: stream started")
	logger.Debugln("hidden at info level")

	assert.Regexp(t, `^INFO  \d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2} binance: stream started\n$`, buf.String())
}

func TestConfigureLoggerWritesToFile(t *testing.T) {
	config := DefaultConfig()
	config.LogFile = filepath.Join(t.TempDir(), "depthview.log")
	config.LogLevel = "debug"

	previous := Logger
	Logger = NewFileLogger(os.Stderr)
	defer func() { Logger = previous }()

	require.NoError(t, ConfigureLogger(config))
	Logger.Debugln("ui: resized")

	content, err := os.ReadFile(config.LogFile)
	require.NoError(t, err)
	assert.Contains(t, string(content), "DEBUG")
	assert.Contains(t, string(content), "ui: resized")
}

func TestConfigureLoggerTelegramNeedsToken(t *testing.T) {
	config := DefaultConfig()
	config.LogFile = filepath.Join(t.TempDir(), "depthview.log")
	config.TelegramOutput = true

	previous := Logger
	Logger = NewFileLogger(os.Stderr)
	defer func() { Logger = previous }()

	assert.Error(t, ConfigureLogger(config))
}

func TestConfigureLoggerBadLevelLeavesNoFile(t *testing.T) {
	config := DefaultConfig()
	config.LogFile = filepath.Join(t.TempDir(), "depthview.log")
	config.LogLevel = "loud"

	previous := Logger
	Logger = NewFileLogger(os.Stderr)
	defer func() { Logger = previous }()

	assert.Error(t, ConfigureLogger(config))
	_, err := os.Stat(config.LogFile)
	assert.True(t, os.IsNotExist(err), "log file must not be opened for a rejected level")
}
