package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestVerbosityToLevel(t *testing.T) {
	tests := []struct {
		verbosity int
		want      zapcore.Level
	}{
		{-1, zapcore.WarnLevel},
		{VerbosityUser, zapcore.WarnLevel},
		{VerbosityInfo, zapcore.InfoLevel},
		{VerbosityDebug, zapcore.DebugLevel},
		{7, zapcore.DebugLevel},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, VerbosityToLevel(tt.verbosity), "verbosity %d", tt.verbosity)
	}
}

func TestInitializeWriter(t *testing.T) {
	t.Cleanup(func() { _ = InitializeWriter(&bytes.Buffer{}, 0, false) })

	t.Run("json respects level", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, InitializeWriter(&buf, VerbosityUser, true))
		assert.True(t, JSONOutput)

		Logger.Infow("hidden at default verbosity")
		Logger.Warnw("unit failed", "unit", "order")
		Cleanup()

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "unit failed", entry["msg"])
		assert.Equal(t, "order", entry["unit"])
		assert.Equal(t, "warn", entry["level"])
	})

	t.Run("console at debug", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, InitializeWriter(&buf, VerbosityDebug, false))
		assert.False(t, JSONOutput)

		Logger.Debugw("symbol table built", "symbols", 3)
		Cleanup()

		assert.Contains(t, buf.String(), "symbol table built")
		assert.Contains(t, buf.String(), "symbols")
	})
}
