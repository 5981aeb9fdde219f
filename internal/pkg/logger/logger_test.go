package logger

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in    string
		want  zapcore.Level
		valid bool
	}{
		{"debug", zapcore.DebugLevel, true},
		{"INFO", zapcore.InfoLevel, true},
		{"", zapcore.InfoLevel, true},
		{"warning", zapcore.WarnLevel, true},
		{"error", zapcore.ErrorLevel, true},
		{"verbose", zapcore.InfoLevel, false},
	}
	for _, tt := range tests {
		got, ok := ParseLevel(tt.in)
		assert.Equal(t, tt.want, got, tt.in)
		assert.Equal(t, tt.valid, ok, tt.in)
	}
}

func TestAdapterWritesThroughGlobalLogger(t *testing.T) {
	prev := globalLogger
	defer func() { globalLogger = prev }()

	buf := &bytes.Buffer{}
	SetDefault(slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	l := NewSlogAdapter()
	l.Debug("debug message", "key", "value")
	l.Warn("warn message")

	out := buf.String()
	require.NotEmpty(t, out)
	assert.Contains(t, out, `"msg":"debug message"`)
	assert.Contains(t, out, `"key":"value"`)
	assert.Contains(t, out, `"msg":"warn message"`)
}

func TestInitBuildsLogger(t *testing.T) {
	prev := globalLogger
	defer func() { globalLogger = prev }()

	zl, err := Init("debug", "")
	require.NoError(t, err)
	require.NotNil(t, zl)
	assert.True(t, zl.Core().Enabled(zapcore.DebugLevel))
}
