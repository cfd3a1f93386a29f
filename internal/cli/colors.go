package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/AbdelazizMoustafa10m/quill"
)

var (
	colorsHeaderStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	colorsTagStyle    = lipgloss.NewStyle().Faint(true)
)

var colorsCmd = &cobra.Command{
	Use:   "colors",
	Short: "Show the markup directive and color letter reference",
	Long: `Colors prints every tag directive and color letter together with a live
sample. Samples follow the effective --when / config mode, so piping
the output strips them to plain text under "auto".`,
	Args: cobra.NoArgs,
	RunE: runColors,
}

var colorsWhen string

func init() {
	colorsCmd.Flags().StringVar(&colorsWhen, "when", "", "When to emit escape sequences in samples: auto, always or never")
	rootCmd.AddCommand(colorsCmd)
}

func runColors(cmd *cobra.Command, args []string) error {
	when, err := resolveWhen(colorsWhen)
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()

	sample := func(body string) string {
		out, err := quill.RenderWhen(fmt.Sprintf("[%s]sample[/]", body), when)
		if err != nil {
			// Every body below is valid markup; a failure here is a bug.
			panic(err)
		}
		return out
	}

	fmt.Fprintln(w, colorsHeaderStyle.Render("Directives"))
	directives := []struct {
		body    string
		meaning string
	}{
		{body: "!", meaning: "bold"},
		{body: "-", meaning: "dim"},
		{body: "_", meaning: "underline"},
		{body: "#", meaning: "italic"},
		{body: "*", meaning: "bright foreground"},
	}
	for _, d := range directives {
		fmt.Fprintf(w, "  %s  %-18s %s\n", colorsTagStyle.Render("["+d.body+"]"), d.meaning, sample(d.body))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, colorsHeaderStyle.Render("Colors"))
	letters := []quill.Color{
		quill.Default, quill.Black, quill.Red, quill.Green, quill.Yellow,
		quill.Blue, quill.Magenta, quill.Cyan, quill.White,
	}
	for _, c := range letters {
		l := string(c.Letter())
		fmt.Fprintf(w, "  %s  %-8s fg: %s  bg: %s  bright: %s\n",
			colorsTagStyle.Render("["+l+"]"), c.String(),
			sample(l), sample(":"+l), sample("*"+l))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, colorsTagStyle.Render(`Close tags with [/]. Escape literals as \[ and \\.`))
	return nil
}
