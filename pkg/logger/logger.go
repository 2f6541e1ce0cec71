// Package logger wraps charmbracelet/log with application-level configuration.
package logger

import (
	"os"
	"strings"

	charm "github.com/charmbracelet/log"

	"github.com/agetick/agetick/pkg/schema"
)

// Logger is a thin wrapper around a charm logger so call sites depend on this
// package instead of the logging library directly.
type Logger struct {
	*charm.Logger
}

// New creates a Logger writing to stderr with default settings.
func New() *Logger {
	return &Logger{charm.New(os.Stderr)}
}

// Configure applies the log level and destination from the configuration to
// the global default logger. Unknown levels fall back to Info.
func Configure(cfg schema.Logs) error {
	l := Default()

	switch strings.ToLower(cfg.Level) {
	case "debug":
		l.SetLevel(charm.DebugLevel)
	case "warn", "warning":
		l.SetLevel(charm.WarnLevel)
	case "error":
		l.SetLevel(charm.ErrorLevel)
	case "", "info":
		l.SetLevel(charm.InfoLevel)
	default:
		l.SetLevel(charm.InfoLevel)
	}

	switch cfg.File {
	case "", "/dev/stderr":
		l.SetOutput(os.Stderr)
	case "/dev/stdout":
		l.SetOutput(os.Stdout)
	default:
		f, err := os.OpenFile(cfg.File, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0o644)
		if err != nil {
			return err
		}
		l.SetOutput(f)
	}

	return nil
}
