package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/AbdelazizMoustafa10m/quill"
	"github.com/AbdelazizMoustafa10m/quill/internal/config"
	"github.com/AbdelazizMoustafa10m/quill/internal/logging"
)

// Global flag values accessible to all subcommands.
var (
	flagVerbose bool
	flagQuiet   bool
	flagConfig  string
	flagNoColor bool
)

// cfg is the effective configuration, resolved in PersistentPreRunE
// before any subcommand runs.
var cfg = config.Default()

// rootCmd is the base command for quill.
var rootCmd = &cobra.Command{
	Use:   "quill",
	Short: "Inline terminal text styling with markup tags",
	Long: `Quill renders a small bracket-tag markup language into terminal SGR
escape sequences, so tools can write [!r]bold red[/] instead of raw
escape codes. It also escapes literal text for safe embedding in markup
and strips markup back down to plain text.

Tag directives: ! bold, - dim, _ underline, # italic, * bright,
COLOR foreground, :COLOR background, where COLOR is one of
d k r g y b m c w. Close with [/]. See "quill colors" for a live
reference.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Check env vars for flags not explicitly set on command line.
		if !cmd.Flags().Changed("verbose") && os.Getenv("QUILL_VERBOSE") != "" {
			flagVerbose = true
		}
		if !cmd.Flags().Changed("quiet") && os.Getenv("QUILL_QUIET") != "" {
			flagQuiet = true
		}
		if !cmd.Flags().Changed("no-color") && (os.Getenv("NO_COLOR") != "" || os.Getenv("QUILL_NO_COLOR") != "") {
			flagNoColor = true
		}

		// Initialize logging.
		jsonFormat := os.Getenv("QUILL_LOG_FORMAT") == "json"
		logging.Setup(flagVerbose, flagQuiet, jsonFormat)

		// Resolve configuration.
		loaded, md, path, err := config.Load(flagConfig)
		if err != nil {
			return err
		}
		cfg = loaded
		logger := logging.New("config")
		if path != "" {
			logger.Debug("loaded config", "path", path)
		}
		for _, key := range md.Undecoded() {
			logger.Warn("unknown config key", "key", key.String())
		}

		// Handle --no-color: disable colored output of the CLI itself.
		if flagNoColor || cfg.Output.NoColor {
			lipgloss.SetColorProfile(termenv.Ascii)
		}

		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable verbose (debug) output (env: QUILL_VERBOSE)")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress all output except errors (env: QUILL_QUIET)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to quill.toml config file")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored CLI output (env: QUILL_NO_COLOR, NO_COLOR)")
}

// Execute runs the root command and returns the exit code.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

// NewRootCmd returns a fresh instance of the root command for use by
// external generators (shell completions, man pages). It carries the
// same persistent flags and subcommands as the global rootCmd.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:               rootCmd.Use,
		Short:             rootCmd.Short,
		Long:              rootCmd.Long,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: rootCmd.PersistentPreRunE,
	}

	// Register the same persistent flags with local targets so the
	// exported command is safe for concurrent use by generators.
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose (debug) output (env: QUILL_VERBOSE)")
	cmd.PersistentFlags().BoolP("quiet", "q", false, "Suppress all output except errors (env: QUILL_QUIET)")
	cmd.PersistentFlags().String("config", "", "Path to quill.toml config file")
	cmd.PersistentFlags().Bool("no-color", false, "Disable colored CLI output (env: QUILL_NO_COLOR, NO_COLOR)")

	for _, child := range rootCmd.Commands() {
		cmd.AddCommand(child)
	}
	return cmd
}

// resolveWhen picks the emission mode: an explicit --when value wins,
// otherwise the configured default applies.
func resolveWhen(flagValue string) (quill.When, error) {
	if flagValue == "" {
		return cfg.When(), nil
	}
	return quill.ParseWhen(flagValue)
}

// singleInput returns the one positional argument, or all of standard
// input when no argument was given.
func singleInput(cmd *cobra.Command, args []string) (string, error) {
	switch len(args) {
	case 0:
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("reading standard input: %w", err)
		}
		return string(data), nil
	case 1:
		return args[0], nil
	default:
		return "", fmt.Errorf("expected at most one argument, got %d", len(args))
	}
}
