package logging

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"off", zerolog.Disabled},
		{"bogus", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseLevel(tt.input))
		})
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "info", cfg.Level)
	assert.Equal(t, "auto", cfg.Format)
	assert.Equal(t, "stderr", cfg.Output)
}

func TestTestLoggerCapturesOutput(t *testing.T) {
	tl := NewTestLogger(t)
	tl.Info().Str("file", "keybindings.json").Msg("merging")

	assert.True(t, tl.Contains("merging"))
	assert.True(t, tl.Contains("keybindings.json"))
}

func TestFromContext(t *testing.T) {
	t.Run("returns default without logger", func(t *testing.T) {
		assert.Equal(t, Default(), FromContext(context.Background()))
	})

	t.Run("round trips through context", func(t *testing.T) {
		tl := NewTestLogger(t)
		ctx := WithLogger(context.Background(), tl.Logger)
		FromContext(ctx).Warn().Msg("from ctx")
		assert.True(t, tl.Contains("from ctx"))
	})

	t.Run("nil context returns default", func(t *testing.T) {
		//nolint:staticcheck // Explicitly testing nil context handling
		assert.Equal(t, Default(), FromContext(nil))
	})
}
