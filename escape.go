package quill

import "strings"

// Escape returns text with every `\` written as `\\` and every `[`
// written as `\[`, making it safe to embed verbatim in markup. It never
// fails; rendering the result (with no surrounding tags) reproduces
// text exactly.
func Escape(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(text); i++ {
		switch c := text[i]; c {
		case '\\':
			b.WriteString(`\\`)
		case '[':
			b.WriteString(`\[`)
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}
