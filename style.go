package quill

import (
	"strconv"
	"strings"
)

// Style is an immutable snapshot of the attributes active at one tag
// nesting level. The zero value is the root style: no attributes and no
// colors, rendering as a plain reset.
//
// HasFg and HasBg distinguish "no color mentioned anywhere" from an
// explicit Default, which carries its own SGR code.
type Style struct {
	Bold      bool
	Dim       bool
	Italic    bool
	Underline bool
	Bright    bool
	Fg        Color
	Bg        Color
	HasFg     bool
	HasBg     bool
}

// merge derives the style of a child tag from its enclosing style.
// Boolean attributes accumulate: anything active in the parent stays
// active in the child. A color mentioned by the tag replaces the
// inherited one for that category only; the parent's color comes back
// automatically when the child closes, because the parent's own
// snapshot is still on the stack.
func merge(parent, tag Style) Style {
	out := parent
	out.Bold = parent.Bold || tag.Bold
	out.Dim = parent.Dim || tag.Dim
	out.Italic = parent.Italic || tag.Italic
	out.Underline = parent.Underline || tag.Underline
	out.Bright = parent.Bright || tag.Bright
	if tag.HasFg {
		out.Fg, out.HasFg = tag.Fg, true
	}
	if tag.HasBg {
		out.Bg, out.HasBg = tag.Bg, true
	}
	return out
}

// SGR returns the escape sequence that selects exactly this style.
//
// The code list always begins with a reset (0), so the sequence never
// depends on what the terminal was displaying before. The remaining
// codes follow in a fixed order regardless of how the style was
// written in markup: bold (1), dim (2), italic (3), underline (4),
// foreground, background. Bright shifts the foreground code only; a
// bright style without a foreground color renders no extra code at
// all, and backgrounds are never shifted.
func (s Style) SGR() string {
	var b strings.Builder
	b.WriteString("\x1b[0")
	if s.Bold {
		b.WriteString(";1")
	}
	if s.Dim {
		b.WriteString(";2")
	}
	if s.Italic {
		b.WriteString(";3")
	}
	if s.Underline {
		b.WriteString(";4")
	}
	if s.HasFg {
		code := s.Fg.fgCode()
		if s.Bright {
			code = s.Fg.fgBrightCode()
		}
		b.WriteByte(';')
		b.WriteString(strconv.Itoa(code))
	}
	if s.HasBg {
		b.WriteByte(';')
		b.WriteString(strconv.Itoa(s.Bg.bgCode()))
	}
	b.WriteByte('m')
	return b.String()
}
