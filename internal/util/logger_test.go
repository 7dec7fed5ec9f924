package util

import (
	"bytes"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCapturedLogger(level string) (*Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	logger := &Logger{
		level:  parseLogLevel(level),
		fields: make(map[string]interface{}),
	}
	logger.AddOutput(NewConsoleOutput(buf, FormatText))
	return logger, buf
}

func TestLoggerLevelFiltering(t *testing.T) {
	logger, buf := newCapturedLogger("warn")

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warn message")
	logger.Error("error message")

	out := buf.String()
	assert.NotContains(t, out, "debug message")
	assert.NotContains(t, out, "info message")
	assert.Contains(t, out, "[WARN] warn message")
	assert.Contains(t, out, "[ERROR] error message")
}

func TestLoggerFormattedMessages(t *testing.T) {
	logger, buf := newCapturedLogger("info")

	logger.Infof("recorded %.1f minutes for %s", 12.5, "Instagram")
	assert.Contains(t, buf.String(), "recorded 12.5 minutes for Instagram")
}

func TestLoggerWithFields(t *testing.T) {
	logger, buf := newCapturedLogger("info")

	scoped := logger.With(Field{Key: "component", Value: "tracker"})
	scoped.Info("usage recorded", Field{Key: "app", Value: "TikTok"})

	// Fields render sorted by key.
	assert.Contains(t, buf.String(), "usage recorded app=TikTok component=tracker")
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, LevelDebug, parseLogLevel("debug"))
	assert.Equal(t, LevelWarn, parseLogLevel("WARNING"))
	assert.Equal(t, LevelError, parseLogLevel("error"))
	assert.Equal(t, LevelInfo, parseLogLevel("nonsense"))
}

func TestRenderEntryJSON(t *testing.T) {
	entry := LogEntry{
		Timestamp: time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC),
		Level:     "INFO",
		Message:   "hello",
		Fields:    map[string]interface{}{"app": "TikTok"},
	}

	out, err := renderEntry(entry, FormatJSON)
	require.NoError(t, err)

	var decoded LogEntry
	require.NoError(t, sonic.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, "INFO", decoded.Level)
	assert.Equal(t, "hello", decoded.Message)
	assert.Equal(t, "TikTok", decoded.Fields["app"])
}
