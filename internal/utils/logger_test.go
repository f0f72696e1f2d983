package utils

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriterLogger("info", &buf)

	reqID := "req-1"
	logger.Debug(&reqID, "hidden %d", 1)
	logger.Info(&reqID, "shown %d", 2)
	logger.Error(nil, "failed %s", "badly")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "INFO: [req-1] shown 2")
	assert.Contains(t, out, "ERROR: failed badly")
}

func TestLoggerErrorLevelSilencesInfo(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriterLogger("ERROR", &buf)

	logger.Info(nil, "quiet")
	logger.Error(nil, "loud")

	assert.Equal(t, LevelError, logger.level)
	assert.NotContains(t, buf.String(), "quiet")
	assert.Contains(t, buf.String(), "loud")
}

func TestParseLogLevelDefaultsToInfo(t *testing.T) {
	assert.Equal(t, LevelInfo, parseLogLevel("verbose"))
	assert.Equal(t, LevelDebug, parseLogLevel("Debug"))
}
