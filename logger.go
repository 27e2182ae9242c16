package matchgo

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with matchgo-specific context.
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

// WithSubject adds the subject item ID to the logger.
func (l *Logger) WithSubject(id string) *Logger {
	return &Logger{
		Logger: l.Logger.With("subject", id),
	}
}

// WithMode adds the scoring mode to the logger.
func (l *Logger) WithMode(mode Mode) *Logger {
	return &Logger{
		Logger: l.Logger.With("mode", mode.String()),
	}
}

// LogRank logs a ranking operation.
func (l *Logger) LogRank(ctx context.Context, mode Mode, subject string, candidates, results int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "rank failed",
			"mode", mode.String(),
			"subject", subject,
			"candidates", candidates,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "rank completed",
			"mode", mode.String(),
			"subject", subject,
			"candidates", candidates,
			"results", results,
		)
	}
}
