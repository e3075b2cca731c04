package log

import "go.uber.org/zap"

// Options configures New.
type Options struct {
	// Level is a zap level name. Unknown or empty means info.
	Level string
	// Format is FormatJSON or FormatConsole.
	Format string
	// Color only applies to the console format.
	Color bool
	// Service is attached to every entry when set.
	Service string
}

type zapLogger struct {
	base *zap.SugaredLogger
}
