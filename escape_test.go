package quill_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AbdelazizMoustafa10m/quill"
)

func TestEscape(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty", input: "", want: ""},
		{name: "plain text unchanged", input: "hello", want: "hello"},
		{name: "backslash", input: `\`, want: `\\`},
		{name: "bracket", input: "[", want: `\[`},
		{name: "both", input: `\[`, want: `\\\[`},
		{name: "closing bracket passes through", input: "]", want: "]"},
		{name: "tag-like text", input: "[red]", want: `\[red]`},
		{name: "mixed", input: "Use [r] for red", want: `Use \[r] for red`},
		{name: "multiple brackets", input: "[red] [blue]", want: `\[red] \[blue]`},
		{name: "multiple backslashes", input: `\\\`, want: `\\\\\\`},
		{name: "full tag syntax", input: "[!r]bold red[/]", want: `\[!r]bold red\[/]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, quill.Escape(tt.input))
		})
	}
}

// TestEscape_RoundTrip verifies that rendering escaped text reproduces
// the original text byte for byte, for both Render and Strip.
func TestEscape_RoundTrip(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"",
		"plain",
		`\`,
		"[",
		"[!r]bold red[/]",
		`already \[escaped] and \\ mixed`,
		"deep [[[ brackets ]]] and trailing slash \\",
	}

	for _, in := range inputs {
		rendered, err := quill.Render(quill.Escape(in))
		require.NoError(t, err, "input %q", in)
		assert.Equal(t, in, rendered, "Render(Escape(%q))", in)

		stripped, err := quill.Strip(quill.Escape(in))
		require.NoError(t, err, "input %q", in)
		assert.Equal(t, in, stripped, "Strip(Escape(%q))", in)
	}
}
