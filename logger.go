package lexlink

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with lexlink-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithConnector adds a connector-text field to the logger.
func (l *Logger) WithConnector(text string) *Logger {
	return &Logger{
		Logger: l.Logger.With("connector", text),
	}
}

// WithCount adds a count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// LogAdd logs the registration of a connector string.
func (l *Logger) LogAdd(text string, err error) {
	if err != nil {
		l.Error("connector registration failed",
			"connector", text,
			"error", err,
		)
	} else {
		l.Debug("connector registered",
			"connector", text,
		)
	}
}

// LogFinalize logs the outcome of registry finalization.
func (l *Logger) LogFinalize(descriptors, groups int, err error) {
	if err != nil {
		l.Error("finalize failed",
			"error", err,
		)
	} else {
		l.Info("registry finalized",
			"descriptors", descriptors,
			"uc_groups", groups,
		)
	}
}
