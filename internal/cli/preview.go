package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/AbdelazizMoustafa10m/quill/internal/tui"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Interactively preview markup as you type",
	Long: `Preview opens a small editor: markup typed into the input pane is
rendered live in the pane below, and syntax errors are shown inline.
Press Esc or Ctrl+C to quit.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p := tea.NewProgram(tui.NewPreview(), tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("running preview: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(previewCmd)
}
