package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/phrazzld/eks-decision-api/internal/config"
)

// Setup initializes the application's logging system from cfg, writing to
// stdout, and installs the result as the slog default.
func Setup(cfg config.ServerConfig) (*slog.Logger, error) {
	return SetupWithWriter(cfg, os.Stdout)
}

// SetupWithWriter is like Setup but writes log records to w.
//
// An unrecognized level falls back to info and an unrecognized format falls
// back to JSON; a warning is emitted in both cases.
func SetupWithWriter(cfg config.ServerConfig, w io.Writer) (*slog.Logger, error) {
	level, levelOK := ParseLevel(cfg.LogLevel)
	opts := &slog.HandlerOptions{
		Level: level,
	}

	var handler slog.Handler
	switch strings.ToLower(cfg.LogFormat) {
	case "console":
		handler = slog.NewTextHandler(w, opts)
	case "json", "":
		handler = slog.NewJSONHandler(w, opts)
	default:
		handler = slog.NewJSONHandler(w, opts)
		slog.New(handler).Warn("invalid log format configured, using json",
			"configured_format", cfg.LogFormat)
	}

	if !levelOK {
		slog.New(handler).Warn("invalid log level configured, using default level",
			"configured_level", cfg.LogLevel,
			"default_level", "info")
	}

	logger := slog.New(handler).With(slog.String("service", ServiceName))

	// This allows using the slog package functions directly (slog.Info, slog.Error, etc.)
	slog.SetDefault(logger)

	return logger, nil
}

// ServiceName is attached to every record produced by Setup.
const ServiceName = "eks_decision_engine"

// ParseLevel maps a case-insensitive level name to a slog.Level.
// The boolean is false for unknown names, in which case info is returned.
func ParseLevel(name string) (slog.Level, bool) {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}
