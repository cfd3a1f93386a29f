package quill

import (
	"fmt"
	"os"
	"sync"

	"github.com/mattn/go-isatty"
)

// When controls whether RenderWhen emits SGR escape sequences.
type When int

const (
	// WhenAuto emits escape sequences only when standard output is
	// connected to a terminal that appears to support them.
	WhenAuto When = iota

	// WhenAlways emits escape sequences unconditionally.
	WhenAlways

	// WhenNever strips markup without emitting escape sequences.
	WhenNever
)

// String returns the flag-style name of the mode.
func (w When) String() string {
	switch w {
	case WhenAlways:
		return "always"
	case WhenNever:
		return "never"
	default:
		return "auto"
	}
}

// ParseWhen maps a flag or configuration value to a When mode.
func ParseWhen(s string) (When, error) {
	switch s {
	case "auto":
		return WhenAuto, nil
	case "always":
		return WhenAlways, nil
	case "never":
		return WhenNever, nil
	default:
		return WhenAuto, fmt.Errorf("invalid when value %q (expected \"auto\", \"always\" or \"never\")", s)
	}
}

// RenderWhen renders markup according to the given mode: WhenAlways
// behaves like Render, WhenNever like Strip, and WhenAuto picks between
// the two based on HasTerminalSupport.
func RenderWhen(markup string, when When) (string, error) {
	if when == WhenAlways || (when == WhenAuto && HasTerminalSupport()) {
		return Render(markup)
	}
	return Strip(markup)
}

var (
	supportOnce sync.Once
	supportVal  bool
)

// HasTerminalSupport reports whether standard output is connected to a
// terminal that appears to support SGR attributes: it must be a TTY
// backed by a character device, and TERM must not be "dumb". The result
// is computed once per process.
func HasTerminalSupport() bool {
	supportOnce.Do(func() {
		supportVal = supportsSGR(os.Stdout, os.Getenv("TERM"))
	})
	return supportVal
}

// supportsSGR implements the HasTerminalSupport check against an
// arbitrary file and TERM value.
func supportsSGR(f *os.File, term string) bool {
	if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		return false
	}
	if fi, err := f.Stat(); err == nil && fi.Mode()&os.ModeCharDevice == 0 {
		return false
	}
	return term != "dumb"
}
