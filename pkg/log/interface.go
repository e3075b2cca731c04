package log

import (
	"context"

	"go.uber.org/zap"
)

// Logger is the structured logger used across the service. Every call takes the request
// context so fields bound with WithContext show up on the entry.
type Logger interface {
	Debug(ctx context.Context, arg ...any)
	Debugf(ctx context.Context, template string, arg ...any)
	Info(ctx context.Context, arg ...any)
	Infof(ctx context.Context, template string, arg ...any)
	Warn(ctx context.Context, arg ...any)
	Warnf(ctx context.Context, template string, arg ...any)
	Error(ctx context.Context, arg ...any)
	Errorf(ctx context.Context, template string, arg ...any)
	Fatal(ctx context.Context, arg ...any)
	Fatalf(ctx context.Context, template string, arg ...any)
}

// New builds a zap backed Logger writing to stderr.
func New(opts Options) Logger {
	return fromCore(newCore(opts, stderr), opts.Service)
}

// NewNop returns a Logger that discards everything.
func NewNop() Logger {
	return &zapLogger{base: zap.NewNop().Sugar()}
}

// WithContext returns a copy of ctx whose log entries carry the given key/value pairs.
func WithContext(ctx context.Context, l Logger, keysAndValues ...any) context.Context {
	zl, ok := l.(*zapLogger)
	if !ok {
		return ctx
	}
	return context.WithValue(ctx, ctxKey{}, zl.from(ctx).With(keysAndValues...))
}
