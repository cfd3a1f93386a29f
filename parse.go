package quill

import "strings"

// MaxDepth is the maximum number of simultaneously open tags.
const MaxDepth = 5

// Render converts markup to text carrying SGR escape sequences. It
// returns a *SyntaxError when the markup is malformed.
func Render(markup string) (string, error) {
	return transform(markup, true)
}

// Strip removes markup tags and resolves escapes, returning the plain
// text with all styling discarded. It applies the exact same grammar as
// Render and fails with the same diagnostics.
func Strip(markup string) (string, error) {
	return transform(markup, false)
}

func transform(markup string, emit bool) (string, error) {
	p := parser{in: markup, emit: emit}
	p.out.Grow(len(markup))
	if err := p.run(); err != nil {
		return "", err
	}
	return p.out.String(), nil
}

// parser scans markup left to right, maintaining a bounded stack of the
// styles opened so far. End of input is handled as an ordinary
// character class in every state, so the scan terminates
// unconditionally. Each call to Render or Strip gets its own parser;
// nothing is shared between invocations.
type parser struct {
	in    string
	pos   int
	out   strings.Builder
	stack [MaxDepth]Style
	depth int
	emit  bool
}

// run is the Literal state: characters are copied through verbatim
// until a backslash or an opening bracket switches states.
func (p *parser) run() error {
	for p.pos < len(p.in) {
		switch c := p.in[p.pos]; c {
		case '\\':
			p.pos++
			if err := p.scanEscape(); err != nil {
				return err
			}
		case '[':
			p.pos++
			if err := p.scanTag(); err != nil {
				return err
			}
		default:
			p.out.WriteByte(c)
			p.pos++
		}
	}
	if p.depth > 0 {
		return errUnbalancedOpen
	}
	return nil
}

// scanEscape handles the character following a backslash. Only `\\`
// and `\[` are valid escape sequences.
func (p *parser) scanEscape() error {
	if p.pos >= len(p.in) {
		return errIncompleteEscape
	}
	switch c := p.in[p.pos]; c {
	case '\\', '[':
		p.out.WriteByte(c)
		p.pos++
		return nil
	default:
		return errInvalidEscape
	}
}

// scanTag handles the character following `[`, dispatching between the
// closing tag `[/]` and an opening tag body.
func (p *parser) scanTag() error {
	if p.pos < len(p.in) && p.in[p.pos] == '/' {
		p.pos++
		return p.scanCloseTag()
	}
	return p.scanOpenTag()
}

// scanCloseTag handles the character following `[/`. On a valid close
// it pops the stack and re-emits the enclosing style, which is a plain
// reset when the outermost tag was just closed.
func (p *parser) scanCloseTag() error {
	if p.pos >= len(p.in) || p.in[p.pos] != ']' {
		return errExpectingBracket
	}
	p.pos++
	if p.depth == 0 {
		return errUnbalancedClose
	}
	p.depth--
	p.emitSGR(p.top())
	return nil
}

// scanOpenTag accumulates one opening tag body directive by directive,
// then merges it with the enclosing style, pushes the result and emits
// its escape sequence. Directives may appear in any order; when the
// same category is set twice, the later occurrence wins.
func (p *parser) scanOpenTag() error {
	if p.pos < len(p.in) && p.in[p.pos] == ']' {
		return errEmptyTag
	}

	var tag Style
	for p.pos < len(p.in) && p.in[p.pos] != ']' {
		switch p.in[p.pos] {
		case '!':
			tag.Bold = true
			p.pos++
		case '-':
			tag.Dim = true
			p.pos++
		case '_':
			tag.Underline = true
			p.pos++
		case '#':
			tag.Italic = true
			p.pos++
		case '*':
			tag.Bright = true
			p.pos++
		case ':':
			p.pos++
			col, err := p.scanColorLetter()
			if err != nil {
				return err
			}
			tag.Bg, tag.HasBg = col, true
		default:
			col, err := p.scanColorLetter()
			if err != nil {
				return err
			}
			tag.Fg, tag.HasFg = col, true
		}
	}
	if p.pos >= len(p.in) {
		return errUnterminatedTag
	}
	p.pos++ // consume `]`

	if p.depth == MaxDepth {
		return errMaxDepth
	}
	child := merge(p.top(), tag)
	p.stack[p.depth] = child
	p.depth++
	p.emitSGR(child)
	return nil
}

// scanColorLetter consumes exactly one color letter.
func (p *parser) scanColorLetter() (Color, error) {
	if p.pos >= len(p.in) {
		return 0, errExpectingColor
	}
	c := p.in[p.pos]
	p.pos++
	col, ok := colorFromLetter(c)
	if !ok {
		return 0, errUnknownColor(c)
	}
	return col, nil
}

// top returns the innermost open style, or the root style when no tag
// is open. The root style is implicit; it never occupies a stack slot.
func (p *parser) top() Style {
	if p.depth == 0 {
		return Style{}
	}
	return p.stack[p.depth-1]
}

func (p *parser) emitSGR(s Style) {
	if p.emit {
		p.out.WriteString(s.SGR())
	}
}
