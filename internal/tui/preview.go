package tui

import (
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/AbdelazizMoustafa10m/quill"
)

// inputHeight is the number of editor rows in the input pane.
const inputHeight = 5

// Preview is the Bubble Tea model for the live markup preview. Markup
// typed into the input pane is rendered on every keystroke; syntax
// errors replace the rendered pane with their diagnostic.
type Preview struct {
	input    textarea.Model
	width    int
	height   int
	quitting bool
}

// NewPreview constructs the preview model with an empty, focused input.
func NewPreview() Preview {
	ta := textarea.New()
	ta.Placeholder = "[!r]bold red[/] ..."
	ta.ShowLineNumbers = false
	ta.SetHeight(inputHeight)
	ta.Focus()
	return Preview{input: ta}
}

// Init starts the cursor blink.
func (p Preview) Init() tea.Cmd {
	return textarea.Blink
}

// Update handles resizing and quit keys, delegating everything else to
// the input pane.
func (p Preview) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		p.width = m.Width
		p.height = m.Height
		p.input.SetWidth(m.Width - 4)
		return p, nil

	case tea.KeyMsg:
		switch m.Type {
		case tea.KeyEsc, tea.KeyCtrlC:
			p.quitting = true
			return p, tea.Quit
		}
	}

	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd
}

// View renders the title, the input pane, the live preview pane and a
// one-line help footer.
func (p Preview) View() string {
	if p.quitting {
		return ""
	}

	preview, err := quill.Render(p.input.Value())
	if err != nil {
		preview = errorStyle.Render("ERROR: " + err.Error())
	}
	if preview == "" {
		preview = helpStyle.Render("(type markup above)")
	}

	width := p.width - 2
	if width < 20 {
		width = 20
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("quill preview"),
		inputPaneStyle.Width(width).Render(p.input.View()),
		previewPaneStyle.Width(width).Render(preview),
		helpStyle.Render("esc/ctrl+c: quit"),
	)
}
