// Package logging builds the structured loggers used by the game and servers.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// New creates a logger writing to w at the named level (debug, info, warn,
// error). Unknown levels fall back to info.
func New(w io.Writer, level string) *log.Logger {
	lvl, err := log.ParseLevel(strings.ToLower(level))
	if err != nil {
		lvl = log.InfoLevel
	}
	return log.NewWithOptions(w, log.Options{
		Level:           lvl,
		ReportTimestamp: true,
		Prefix:          "spaceship",
	})
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard)
}

// OpenFile returns a logger appending to path, or a discarding logger when
// path is empty. The terminal is the game screen, so in-game logs must never
// go to stdout. The returned closer is always non-nil.
func OpenFile(path, level string) (*log.Logger, io.Closer, error) {
	if path == "" {
		return Discard(), io.NopCloser(nil), nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, WrapError(err, "open log file %s", path)
	}
	return New(f, level), f, nil
}

// WrapError wraps an error with additional context information.
// This preserves the original error while adding descriptive context.
func WrapError(err error, context string, args ...any) error {
	if err == nil {
		return nil
	}
	if len(args) > 0 {
		context = fmt.Sprintf(context, args...)
	}
	return fmt.Errorf("%s: %w", context, err)
}
