package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sprintboard/internal/config"
)

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "sprintboard.log")

	logger, closer, err := New(config.Log{Level: "warn", Format: "json", File: path})
	require.NoError(t, err)
	logger.Info("dropped")
	logger.Warn("kept", "sprint_id", 1)
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "dropped")
	assert.Contains(t, string(data), `"msg":"kept"`)
	assert.Contains(t, string(data), `"sprint_id":1`)
}

func TestNewRejectsBadSettings(t *testing.T) {
	_, _, err := New(config.Log{Level: "loud"})
	assert.Error(t, err)

	_, _, err = New(config.Log{Level: "info", Format: "xml"})
	assert.EqualError(t, err, `unknown log format "xml"`)
}

func TestNewStderrCloserIsNoOp(t *testing.T) {
	logger, closer, err := New(config.Log{})
	require.NoError(t, err)
	assert.NotNil(t, logger)
	assert.NoError(t, closer.Close())
	assert.NoError(t, closer.Close())
}
