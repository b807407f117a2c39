// Package logger provides a structured, levelled logger built on log/slog.
//
// The process-wide logger L writes human-readable text in development and
// JSON in production. Configure attaches the optional MongoDB sink and the
// verbose (debug) level requested on the command line:
//
//	cleanup := logger.Configure(verbose)
//	defer cleanup()
//	logger.Info("seed started", "preset", name)
package logger

import (
	"log/slog"
	"os"

	"github.com/vitralapp/vitral/config"
)

var L *slog.Logger

func init() {
	L = slog.New(consoleHandler(false))
	slog.SetDefault(L)
}

// consoleHandler picks the stdout handler for the current environment.
func consoleHandler(verbose bool) slog.Handler {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	switch config.AppEnv() {
	case "production", "prod":
		return slog.NewJSONHandler(os.Stdout, opts) // structured JSON for log aggregators
	default:
		return slog.NewTextHandler(os.Stdout, opts) // human-readable for dev
	}
}

// Configure rebuilds the process logger with the requested level and, when
// LOG_MONGO_URI is set, fans every record out to MongoDB as well. The
// returned cleanup flushes and closes the Mongo sink; callers should defer
// it before logging anything.
func Configure(verbose bool) func() {
	console := consoleHandler(verbose)
	cleanup := func() {}

	if uri := config.LogMongoURI(); uri != "" {
		mh, err := NewMongoHandler(uri, config.LogMongoDatabase(), config.LogMongoCollection())
		if err != nil {
			L = slog.New(console)
			slog.SetDefault(L)
			L.Warn("mongo log sink unavailable", "error", err)
			return cleanup
		}
		L = slog.New(NewMultiHandler(console, mh))
		slog.SetDefault(L)
		return mh.Close
	}

	L = slog.New(console)
	slog.SetDefault(L)
	return cleanup
}

// ─────────────────────────────────────────────
// Short-hand helpers (use base logger)
// ─────────────────────────────────────────────

// Debug logs at DEBUG level.
func Debug(msg string, args ...any) { L.Debug(msg, args...) }

// Info logs at INFO level.
func Info(msg string, args ...any) { L.Info(msg, args...) }

// Warn logs at WARN level.
func Warn(msg string, args ...any) { L.Warn(msg, args...) }

// Error logs at ERROR level.
func Error(msg string, args ...any) { L.Error(msg, args...) }
