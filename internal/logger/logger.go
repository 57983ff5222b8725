// Package logger holds the process logger. Protocol output never goes
// through here; this is for diagnostics on stderr or a log file.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// L is the global logger instance. It's initialized to discard all output by default.
// Call Init() to enable logging.
var L = Discard()

var closer io.Closer

// Options configures the logger initialization.
type Options struct {
	Enabled bool      // If false, all logging is discarded
	File    string    // Append to this file instead of Output when set
	Level   string    // debug, info, warn, error. Default: warn
	Output  io.Writer // Destination when File is empty. Default: os.Stderr
}

// Init configures logging. Call from main() before any log calls.
// If opts.Enabled is false, all log output is discarded.
func Init(opts Options) error {
	if err := Close(); err != nil {
		return err
	}
	if !opts.Enabled {
		L = Discard()
		return nil
	}

	level := log.WarnLevel
	if opts.Level != "" {
		parsed, err := log.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return fmt.Errorf("logger: %w", err)
		}
		level = parsed
	}

	w := opts.Output
	if w == nil {
		w = os.Stderr
	}
	if opts.File != "" {
		if err := os.MkdirAll(filepath.Dir(opts.File), 0o755); err != nil {
			return fmt.Errorf("logger: %w", err)
		}
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("logger: %w", err)
		}
		closer = f
		w = f
	}

	L = slog.New(log.NewWithOptions(w, log.Options{
		Prefix:          "minifs",
		Level:           level,
		ReportTimestamp: true,
	}))
	return nil
}

// Close releases the log file opened by Init, if any, and resets L to discard.
func Close() error {
	L = Discard()
	if closer == nil {
		return nil
	}
	err := closer.Close()
	closer = nil
	return err
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// OrDiscard returns l, or a discarding logger when l is nil.
func OrDiscard(l *slog.Logger) *slog.Logger {
	if l == nil {
		return Discard()
	}
	return l
}
