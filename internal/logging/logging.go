// Package logging provides cctail's logging infrastructure built on
// charmbracelet/log.
//
// All log output goes to stderr: stdout is reserved for the rendered event
// stream, which downstream tools may pipe or capture. Setup must be called
// before New; charmbracelet/log child loggers copy state at creation time,
// so later changes to the default logger do not propagate to existing
// children.
package logging

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// Level aliases for charmbracelet/log levels, re-exported so consumers do
// not need to import charmbracelet/log directly.
const (
	LevelDebug = log.DebugLevel
	LevelInfo  = log.InfoLevel
	LevelWarn  = log.WarnLevel
	LevelError = log.ErrorLevel
)

// Setup configures the global logging defaults. Call once during CLI
// initialization. verbose selects Debug, quiet selects Error; quiet wins when
// both are set so that scripted runs stay silent regardless of other flags.
// jsonFormat switches to the NDJSON formatter for log aggregation.
func Setup(verbose, quiet, jsonFormat bool) {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	if quiet {
		level = log.ErrorLevel
	}

	log.SetLevel(level)
	log.SetOutput(os.Stderr)

	if jsonFormat {
		log.SetFormatter(log.JSONFormatter)
	} else {
		log.SetFormatter(log.TextFormatter)
	}
}

// New creates a logger with the given component prefix. The returned logger
// inherits global level and output settings at creation time. An empty
// component produces a logger without a prefix.
func New(component string) *log.Logger {
	return log.WithPrefix(component)
}

// SetOutput overrides the output writer for the default logger. Primarily
// useful in tests, where output is captured with a bytes.Buffer.
func SetOutput(w io.Writer) {
	log.SetOutput(w)
}
