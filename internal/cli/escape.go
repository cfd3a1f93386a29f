package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AbdelazizMoustafa10m/quill"
)

var escapeCmd = &cobra.Command{
	Use:   "escape [text]",
	Short: "Escape literal text for embedding in markup",
	Long: `Escape rewrites the argument (or standard input when no argument is
given) so that it can be embedded verbatim in markup: every backslash
becomes \\ and every opening bracket becomes \[.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := singleInput(cmd, args)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), quill.Escape(in))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(escapeCmd)
}
