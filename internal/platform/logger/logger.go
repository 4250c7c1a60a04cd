package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/sjnakib/portfolio/internal/config"
)

type contextKey struct{}

// ParseLevel maps a configured level name (case-insensitive) to a slog.Level.
// The second return value is false for unknown names, in which case
// slog.LevelInfo is returned.
func ParseLevel(name string) (slog.Level, bool) {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}

// Setup initializes and configures the application's logging system based on
// the provided configuration. It creates a structured JSON logger writing to
// stdout with the appropriate log level and sets it as the default logger.
func Setup(cfg config.ServerConfig) (*slog.Logger, error) {
	return SetupWithWriter(cfg, os.Stdout)
}

// SetupWithWriter is Setup with an explicit output.
func SetupWithWriter(cfg config.ServerConfig, out io.Writer) (*slog.Logger, error) {
	level, ok := ParseLevel(cfg.LogLevel)
	if !ok {
		// Use a temporary logger so the warning is visible even before the
		// JSON handler is installed.
		tmpLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
		tmpLogger.Warn("invalid log level configured, using default level",
			"configured_level", cfg.LogLevel,
			"default_level", "info")
	}

	handler := slog.NewJSONHandler(out, &slog.HandlerOptions{Level: level})
	logger := slog.New(handler)

	// Allow package-level slog calls (slog.Info, slog.Error...) to use it.
	slog.SetDefault(logger)

	return logger, nil
}

// WithLogger returns a copy of ctx carrying l. It panics if l is nil.
func WithLogger(ctx context.Context, l *slog.Logger) context.Context {
	if l == nil {
		panic("logger: nil logger")
	}
	return context.WithValue(ctx, contextKey{}, l)
}

// FromContext returns the logger stored in ctx, or slog.Default().
func FromContext(ctx context.Context) *slog.Logger {
	return FromContextOrDefault(ctx, slog.Default())
}

// FromContextOrDefault returns the logger stored in ctx, or def when ctx is
// nil or carries no logger.
func FromContextOrDefault(ctx context.Context, def *slog.Logger) *slog.Logger {
	if ctx == nil {
		return def
	}
	if l, ok := ctx.Value(contextKey{}).(*slog.Logger); ok && l != nil {
		return l
	}
	return def
}
