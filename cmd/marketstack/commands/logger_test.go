package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLogger(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	logger := NewZapLogger(zap.New(core))

	logger.Debug("HTTP Request", map[string]interface{}{"url": "/eod", "method": "GET"})
	logger.Info("info", nil)
	logger.Warn("warn", map[string]interface{}{"attempt": 2})
	logger.Error("error", map[string]interface{}{"error": "boom"})

	entries := logs.All()
	require.Len(t, entries, 4)

	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
	assert.Equal(t, "HTTP Request", entries[0].Message)
	assert.Equal(t, map[string]interface{}{"method": "GET", "url": "/eod"}, entries[0].ContextMap())
	assert.Equal(t, zapcore.InfoLevel, entries[1].Level)
	assert.Empty(t, entries[1].Context)
	assert.Equal(t, zapcore.WarnLevel, entries[2].Level)
	assert.Equal(t, int64(2), entries[2].ContextMap()["attempt"])
	assert.Equal(t, zapcore.ErrorLevel, entries[3].Level)
}

func TestZapFields_Sorted(t *testing.T) {
	t.Parallel()

	fields := zapFields(map[string]interface{}{"b": 1, "a": 2, "c": 3})

	keys := make([]string, 0, len(fields))
	for _, f := range fields {
		keys = append(keys, f.Key)
	}

	assert.Equal(t, []string{"a", "b", "c"}, keys)
}

func TestNewLogger(t *testing.T) {
	t.Parallel()

	quiet, err := NewLogger(false)
	require.NoError(t, err)
	quiet.Info("discarded", nil)

	verbose, err := NewLogger(true)
	require.NoError(t, err)
	assert.NotNil(t, verbose)
}
