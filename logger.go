package flexvec

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger for container structural events. Containers
// log only when their layout changes (reallocation, recentering, buffer
// promotion) or when a failed operation tears them down; a nil *Logger
// logs nothing.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses a text handler to stderr at Info level.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{Logger: slog.New(handler)}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(w io.Writer, level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
func NewJSONLogger(w io.Writer, level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000),
	}))
}

func (l *Logger) enabled(level slog.Level) bool {
	return l != nil && l.Logger != nil && l.Enabled(context.Background(), level)
}

func layoutAttrs(cfg Config) slog.Attr {
	return slog.Group("layout",
		slog.String("storage", cfg.Storage.String()),
		slog.String("placement", cfg.Placement.String()),
	)
}

func (l *Logger) reallocate(cfg Config, from, to, size int) {
	if !l.enabled(slog.LevelDebug) {
		return
	}
	l.Debug("reallocated",
		layoutAttrs(cfg),
		slog.Int("from", from),
		slog.Int("to", to),
		slog.Int("size", size),
	)
}

func (l *Logger) promote(cfg Config, size, capacity int) {
	if !l.enabled(slog.LevelDebug) {
		return
	}
	l.Debug("buffer promoted to dynamic block",
		layoutAttrs(cfg),
		slog.Int("size", size),
		slog.Int("capacity", capacity),
	)
}

func (l *Logger) demote(cfg Config, size, released int) {
	if !l.enabled(slog.LevelDebug) {
		return
	}
	l.Debug("dynamic block returned to buffer",
		layoutAttrs(cfg),
		slog.Int("size", size),
		slog.Int("released", released),
	)
}

func (l *Logger) recenter(cfg Config, sd side, size, frontGap, backGap int) {
	if !l.enabled(slog.LevelDebug) {
		return
	}
	l.Debug("recentered",
		layoutAttrs(cfg),
		slog.String("side", sd.String()),
		slog.Int("size", size),
		slog.Int("front_gap", frontGap),
		slog.Int("back_gap", backGap),
	)
}

func (l *Logger) teardown(cfg Config, err error) {
	if !l.enabled(slog.LevelWarn) {
		return
	}
	l.Warn("element operation failed, container emptied",
		layoutAttrs(cfg),
		slog.Any("error", err),
	)
}
