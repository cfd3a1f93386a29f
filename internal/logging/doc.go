// Package logging provides quill's logging infrastructure built on
// charmbracelet/log.
//
// It wraps charmbracelet/log with a centralized factory for loggers with
// component prefixes, level configuration, and stderr-only output. All
// log output goes to stderr; stdout is reserved for transformed text,
// which callers may be piping somewhere.
//
// Usage:
//
//	// During CLI initialization (PersistentPreRun):
//	logging.Setup(verbose, quiet, jsonFormat)
//
//	// In each package:
//	var logger = logging.New("render")
//	logger.Debug("rendering", "bytes", len(in))
//
// Setup must be called before New: charmbracelet/log child loggers copy
// state at creation time, so later changes to the default logger do not
// propagate to existing children.
package logging
