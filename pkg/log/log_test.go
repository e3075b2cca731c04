package log

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"warn", zapcore.WarnLevel},
		{"ERROR", zapcore.ErrorLevel},
		{"", zapcore.InfoLevel},
		{"loud", zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, parseLevel(tt.in))
		})
	}
}

func TestWithContextFields(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	l := fromCore(core, "member-admin")

	ctx := WithContext(context.Background(), l, "view_id", "v1")
	l.Infof(ctx, "mounted %d rows", 25)
	l.Debug(ctx, "dropped")
	l.Warn(context.Background(), "plain")

	entries := logs.AllUntimed()
	require.Len(t, entries, 2)

	assert.Equal(t, "mounted 25 rows", entries[0].Message)
	fields := entries[0].ContextMap()
	assert.Equal(t, "v1", fields["view_id"])
	assert.Equal(t, "member-admin", fields["service"])

	assert.NotContains(t, entries[1].ContextMap(), "view_id")
}

func TestWithContextIgnoresForeignLogger(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, ctx, WithContext(ctx, nil, "k", "v"))
}
