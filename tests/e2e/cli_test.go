package e2e_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuillVersion(t *testing.T) {
	t.Parallel()

	stdout, _, code := runTool(t, "quill", "version")
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "quill v")
}

func TestQuillVersionJSON(t *testing.T) {
	t.Parallel()

	stdout, _, code := runTool(t, "quill", "version", "--json")
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, `"version"`)
}

func TestQuillRender_WhenAlways(t *testing.T) {
	t.Parallel()

	stdout, _, code := runTool(t, "quill", "render", "--when", "always", "[!r]bold red[/]")
	assert.Equal(t, 0, code)
	assert.Equal(t, "\x1b[0;1;31mbold red\x1b[0m", stdout)
}

// TestQuillRender_AutoWithoutTTY verifies the auto mode strips markup
// when stdout is a pipe, as it is here.
func TestQuillRender_AutoWithoutTTY(t *testing.T) {
	t.Parallel()

	stdout, _, code := runTool(t, "quill", "render", "[!r]bold red[/]")
	assert.Equal(t, 0, code)
	assert.Equal(t, "bold red", stdout)
}

func TestQuillStrip(t *testing.T) {
	t.Parallel()

	stdout, _, code := runTool(t, "quill", "strip", "[r]red[/] and [b]blue[/]")
	assert.Equal(t, 0, code)
	assert.Equal(t, "red and blue", stdout)
}

func TestQuillEscape(t *testing.T) {
	t.Parallel()

	stdout, _, code := runTool(t, "quill", "escape", "[red]")
	assert.Equal(t, 0, code)
	assert.Equal(t, `\[red]`, stdout)
}

func TestQuillRender_SyntaxErrorExitCode(t *testing.T) {
	t.Parallel()

	stdout, stderr, code := runTool(t, "quill", "render", "[x]oops[/]")
	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "Unknown color letter `x`")
}

func TestQuillUnknownSubcommand(t *testing.T) {
	t.Parallel()

	_, _, code := runTool(t, "quill", "nonexistent-command")
	assert.NotEqual(t, 0, code)
}
