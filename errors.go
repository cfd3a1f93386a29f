package quill

import "fmt"

// SyntaxError reports a markup syntax error found by Render or Strip.
// The message is fixed per error kind and is part of the package's
// external contract: the command-line tools surface it verbatim.
type SyntaxError struct {
	msg string
}

// Error returns the diagnostic message.
func (e *SyntaxError) Error() string { return e.msg }

// The fixed parse diagnostics. The first error encountered aborts the
// whole parse; there is no partial output and no recovery.
var (
	errEmptyTag         = &SyntaxError{msg: "Empty opening tag"}
	errUnterminatedTag  = &SyntaxError{msg: "Expecting `]` to terminate the opening tag"}
	errExpectingColor   = &SyntaxError{msg: "Expecting color letter"}
	errIncompleteEscape = &SyntaxError{msg: "Incomplete escape sequence at end of string"}
	errInvalidEscape    = &SyntaxError{msg: "Invalid escape sequence"}
	errUnbalancedClose  = &SyntaxError{msg: "Unbalanced closing tag"}
	errExpectingBracket = &SyntaxError{msg: "Expecting `]` after `[/`"}
	errUnbalancedOpen   = &SyntaxError{msg: "Unbalanced opening tag"}
	errMaxDepth         = &SyntaxError{msg: "Maximum nesting depth exceeded"}
)

// errUnknownColor builds the diagnostic for an unrecognized color
// letter, quoting the offending character.
func errUnknownColor(c byte) *SyntaxError {
	return &SyntaxError{msg: fmt.Sprintf("Unknown color letter `%c`", c)}
}
