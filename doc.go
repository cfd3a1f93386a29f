// Package quill renders a small bracket-tag markup language into
// terminal SGR ("Select Graphic Rendition") escape sequences.
//
// Markup uses opening tags such as `[!r]` and the closing tag `[/]`:
//
//	out, err := quill.Render("[!r]bold red[/] and plain")
//
// An opening tag body is an unordered sequence of directives:
//
//	!        bold
//	-        dim
//	_        underline
//	#        italic
//	*        bright foreground
//	COLOR    foreground color letter
//	:COLOR   background color letter
//
// where COLOR is one of d (default), k (black), r (red), g (green),
// y (yellow), b (blue), m (magenta), c (cyan) or w (white).
//
// Tags nest up to MaxDepth levels and must be balanced. Nesting is
// additive: a nested tag inherits every attribute of its parent and
// cannot cancel one, though it may replace the foreground or background
// color for its own extent. Closing a tag restores the enclosing
// style exactly; closing the outermost tag emits a plain reset.
//
// Literal `[` and `\` characters are written as `\[` and `\\`; Escape
// produces that form for arbitrary text. Strip applies the same grammar
// but discards all styling, returning plain text.
//
// All transforms are pure functions of their input and safe for
// concurrent use.
package quill
