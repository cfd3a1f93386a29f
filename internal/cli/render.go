package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AbdelazizMoustafa10m/quill"
	"github.com/AbdelazizMoustafa10m/quill/internal/logging"
)

var (
	renderWhen  string
	renderFiles bool
	renderJobs  int
)

var renderLogger = logging.New("render")

var renderCmd = &cobra.Command{
	Use:   "render [markup]",
	Short: "Render markup tags into ANSI escape sequences",
	Long: `Render converts markup tags in the argument (or standard input when no
argument is given) into ANSI SGR escape sequences.

With --files, the arguments are glob patterns (doublestar syntax, e.g.
'docs/**/*.txt'); every matched file is rendered and the results are
written to standard output in match order.`,
	Args: cobra.ArbitraryArgs,
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVar(&renderWhen, "when", "", "When to emit escape sequences: auto, always or never (default from config)")
	renderCmd.Flags().BoolVar(&renderFiles, "files", false, "Treat arguments as glob patterns naming files to render")
	renderCmd.Flags().IntVar(&renderJobs, "jobs", defaultJobs, "Maximum number of files transformed concurrently (with --files)")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	when, err := resolveWhen(renderWhen)
	if err != nil {
		return err
	}

	transform := func(s string) (string, error) {
		return quill.RenderWhen(s, when)
	}

	if renderFiles {
		return transformFiles(cmd, args, renderJobs, transform)
	}

	in, err := singleInput(cmd, args)
	if err != nil {
		return err
	}
	renderLogger.Debug("rendering", "bytes", len(in), "when", when.String())

	out, err := transform(in)
	if err != nil {
		return fmt.Errorf("rendering markup: %w", err)
	}
	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}
