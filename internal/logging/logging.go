// Package logging builds the charmbracelet/log loggers used by the CLI and hosts.
//
// Both interactive hosts own the screen, so they log to a file; headless commands
// log to stderr.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/log"
)

// Prefix is attached to every log line.
const Prefix = "flippy"

const stateLogRel = "flippy/flippy.log"

// Options configures a logger.
type Options struct {
	Level  string    // debug, info, warn, error; empty means info
	File   string    // Log file path; empty means the XDG state file
	Writer io.Writer // When set, log here instead of a file
}

// New builds a logger. The returned closer releases the log file, if one was opened.
func New(opts Options) (*log.Logger, io.Closer, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, nil, err
	}

	w := opts.Writer
	closer := io.Closer(nopCloser{})
	if w == nil {
		path, err := Path(opts.File)
		if err != nil {
			return nil, nil, err
		}
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("logging: cannot open %s: %w", path, err)
		}
		w, closer = f, f
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.StampMilli,
		Prefix:          Prefix,
		Level:           level,
	})
	return logger, closer, nil
}

// Stderr returns a logger writing to stderr at the given level.
func Stderr(level string) (*log.Logger, error) {
	logger, _, err := New(Options{Level: level, Writer: os.Stderr})
	return logger, err
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}

// ParseLevel parses a level name. Empty means info.
func ParseLevel(s string) (log.Level, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return log.InfoLevel, nil
	}
	level, err := log.ParseLevel(s)
	if err != nil {
		return log.InfoLevel, fmt.Errorf("logging: %w", err)
	}
	return level, nil
}

// Path resolves the log file location, creating its directory.
// An empty custom path resolves to $XDG_STATE_HOME/flippy/flippy.log.
func Path(custom string) (string, error) {
	if custom != "" {
		if err := os.MkdirAll(filepath.Dir(custom), 0o755); err != nil {
			return "", fmt.Errorf("logging: cannot create log directory: %w", err)
		}
		return custom, nil
	}
	path, err := xdg.StateFile(stateLogRel)
	if err != nil {
		return "", fmt.Errorf("logging: cannot resolve state file: %w", err)
	}
	return path, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
