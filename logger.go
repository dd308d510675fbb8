package ohmgo

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with ohmgo-specific context.
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
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithSeries adds a series field to the logger (useful for tagging operations).
func (l *Logger) WithSeries(series string) *Logger {
	return &Logger{
		Logger: l.Logger.With("series", series),
	}
}

// WithResistance adds a resistance field to the logger.
func (l *Logger) WithResistance(resistance float64) *Logger {
	return &Logger{
		Logger: l.Logger.With("resistance", resistance),
	}
}

// LogQuery logs a nearest-value query.
func (l *Logger) LogQuery(ctx context.Context, series string, target, matched float64, err error) {
	if err != nil {
		l.ErrorContext(ctx, "query failed",
			"series", series,
			"target", target,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "query completed",
			"series", series,
			"target", target,
			"matched", matched,
		)
	}
}

// LogBuild logs a catalog set build.
func (l *Logger) LogBuild(ctx context.Context, catalogs, networks int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "build failed",
			"catalogs", catalogs,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "build completed",
			"catalogs", catalogs,
			"networks", networks,
		)
	}
}

// LogLoad logs a catalog set load from a blob store.
func (l *Logger) LogLoad(ctx context.Context, catalogs, dropped int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "load failed",
			"catalogs", catalogs,
			"error", err,
		)
	} else if dropped > 0 {
		l.WarnContext(ctx, "load completed with dropped records",
			"catalogs", catalogs,
			"dropped", dropped,
		)
	} else {
		l.InfoContext(ctx, "load completed",
			"catalogs", catalogs,
		)
	}
}

// LogSave logs a catalog set persist.
func (l *Logger) LogSave(ctx context.Context, catalogs int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "save failed",
			"catalogs", catalogs,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "save completed",
			"catalogs", catalogs,
		)
	}
}
