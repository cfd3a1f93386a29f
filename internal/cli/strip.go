package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AbdelazizMoustafa10m/quill"
	"github.com/AbdelazizMoustafa10m/quill/internal/logging"
)

var (
	stripFiles bool
	stripJobs  int
)

var stripLogger = logging.New("strip")

var stripCmd = &cobra.Command{
	Use:   "strip [markup]",
	Short: "Remove markup tags, keeping the plain text",
	Long: `Strip removes markup tags from the argument (or standard input when no
argument is given) and resolves escapes, producing plain text with all
styling discarded. Malformed markup is rejected with the same
diagnostics as render.

With --files, the arguments are glob patterns; every matched file is
stripped and the results are written to standard output in match
order.`,
	Args: cobra.ArbitraryArgs,
	RunE: runStrip,
}

func init() {
	stripCmd.Flags().BoolVar(&stripFiles, "files", false, "Treat arguments as glob patterns naming files to strip")
	stripCmd.Flags().IntVar(&stripJobs, "jobs", defaultJobs, "Maximum number of files transformed concurrently (with --files)")
	rootCmd.AddCommand(stripCmd)
}

func runStrip(cmd *cobra.Command, args []string) error {
	if stripFiles {
		return transformFiles(cmd, args, stripJobs, quill.Strip)
	}

	in, err := singleInput(cmd, args)
	if err != nil {
		return err
	}
	stripLogger.Debug("stripping", "bytes", len(in))

	out, err := quill.Strip(in)
	if err != nil {
		return fmt.Errorf("stripping markup: %w", err)
	}
	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}
