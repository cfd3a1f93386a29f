package logging

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// Setup configures the global logging defaults. Call once during CLI
// initialization.
//
//   - verbose: sets level to Debug
//   - quiet: sets level to Error (hides Info and Warn)
//   - jsonFormat: switches to the NDJSON formatter
//
// If both verbose and quiet are set, quiet wins: in scripted
// environments --quiet should suppress noise regardless of other flags.
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

// New creates a logger with the given component prefix. The returned
// logger inherits the global level and output settings current at
// creation time. An empty component produces a logger without a prefix.
func New(component string) *log.Logger {
	return log.WithPrefix(component)
}

// SetOutput overrides the output writer for the default logger.
// Primarily useful for capturing output in tests; restore the original
// writer with t.Cleanup.
func SetOutput(w io.Writer) {
	log.SetOutput(w)
}
