package logger

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"branches-api/pkg/config"
)

func TestNewLogger(t *testing.T) {
	out := filepath.Join(t.TempDir(), "app.log")
	log, err := NewLogger(config.LogConfig{Level: "info", Encoding: "json", Outputs: []string{out}})
	require.NoError(t, err)
	defer log.Sync() //nolint:errcheck

	assert.True(t, log.Core().Enabled(zapcore.InfoLevel))
	assert.False(t, log.Core().Enabled(zapcore.DebugLevel))
}

func TestNewLoggerRejectsBadLevel(t *testing.T) {
	_, err := NewLogger(config.LogConfig{Level: "loud", Encoding: "console"})
	assert.Error(t, err)
}
