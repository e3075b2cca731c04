package log

import (
	"context"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var stderr zapcore.WriteSyncer = zapcore.Lock(os.Stderr)

func parseLevel(s string) zapcore.Level {
	lvl, err := zapcore.ParseLevel(s)
	if err != nil {
		return zapcore.InfoLevel
	}
	return lvl
}

func encoderConfig(opts Options) zapcore.EncoderConfig {
	cfg := zap.NewProductionEncoderConfig()
	if opts.Format == FormatConsole {
		cfg = zap.NewDevelopmentEncoderConfig()
		if opts.Color {
			cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		}
	}
	cfg.TimeKey = "time"
	cfg.EncodeTime = zapcore.TimeEncoderOfLayout(timeLayout)
	return cfg
}

func newCore(opts Options, out zapcore.WriteSyncer) zapcore.Core {
	enc := zapcore.NewJSONEncoder(encoderConfig(opts))
	if opts.Format == FormatConsole {
		enc = zapcore.NewConsoleEncoder(encoderConfig(opts))
	}
	return zapcore.NewCore(enc, out, parseLevel(opts.Level))
}

// fromCore wraps core. Caller skip hides the Logger methods from the caller field.
func fromCore(core zapcore.Core, service string) *zapLogger {
	z := zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))
	if service != "" {
		z = z.With(zap.String("service", service))
	}
	return &zapLogger{base: z.Sugar()}
}

type ctxKey struct{}

// from returns the logger bound to ctx by WithContext, or the base logger.
func (l *zapLogger) from(ctx context.Context) *zap.SugaredLogger {
	if ctx != nil {
		if s, ok := ctx.Value(ctxKey{}).(*zap.SugaredLogger); ok {
			return s
		}
	}
	return l.base
}

func (l *zapLogger) Debug(ctx context.Context, args ...any) { l.from(ctx).Debug(args...) }
func (l *zapLogger) Info(ctx context.Context, args ...any)  { l.from(ctx).Info(args...) }
func (l *zapLogger) Warn(ctx context.Context, args ...any)  { l.from(ctx).Warn(args...) }
func (l *zapLogger) Error(ctx context.Context, args ...any) { l.from(ctx).Error(args...) }
func (l *zapLogger) Fatal(ctx context.Context, args ...any) { l.from(ctx).Fatal(args...) }

func (l *zapLogger) Debugf(ctx context.Context, format string, args ...any) {
	l.from(ctx).Debugf(format, args...)
}

func (l *zapLogger) Infof(ctx context.Context, format string, args ...any) {
	l.from(ctx).Infof(format, args...)
}

func (l *zapLogger) Warnf(ctx context.Context, format string, args ...any) {
	l.from(ctx).Warnf(format, args...)
}

func (l *zapLogger) Errorf(ctx context.Context, format string, args ...any) {
	l.from(ctx).Errorf(format, args...)
}

func (l *zapLogger) Fatalf(ctx context.Context, format string, args ...any) {
	l.from(ctx).Fatalf(format, args...)
}
