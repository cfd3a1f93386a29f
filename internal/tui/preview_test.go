package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPreview(t *testing.T) {
	t.Parallel()

	p := NewPreview()
	assert.False(t, p.quitting)
	assert.Empty(t, p.input.Value())
}

func TestPreview_QuitKeys(t *testing.T) {
	t.Parallel()

	for _, key := range []tea.KeyType{tea.KeyEsc, tea.KeyCtrlC} {
		p := NewPreview()
		model, cmd := p.Update(tea.KeyMsg{Type: key})
		updated, ok := model.(Preview)
		require.True(t, ok)
		assert.True(t, updated.quitting)
		require.NotNil(t, cmd)
		assert.Equal(t, tea.Quit(), cmd())
	}
}

func TestPreview_ResizePropagates(t *testing.T) {
	t.Parallel()

	p := NewPreview()
	model, _ := p.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	updated := model.(Preview)
	assert.Equal(t, 100, updated.width)
	assert.Equal(t, 40, updated.height)
}

func TestPreview_ViewRendersInput(t *testing.T) {
	t.Parallel()

	p := NewPreview()
	p.input.SetValue("[!]bold[/]")

	view := p.View()
	assert.Contains(t, view, "quill preview")
	assert.Contains(t, view, "\x1b[0;1mbold\x1b[0m")
}

func TestPreview_ViewShowsDiagnostic(t *testing.T) {
	t.Parallel()

	p := NewPreview()
	p.input.SetValue("[x]oops[/]")

	view := p.View()
	assert.Contains(t, view, "ERROR: Unknown color letter `x`")
}

func TestPreview_ViewEmptyAfterQuit(t *testing.T) {
	t.Parallel()

	p := NewPreview()
	p.quitting = true
	assert.Empty(t, p.View())
}
