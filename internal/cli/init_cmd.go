package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/AbdelazizMoustafa10m/quill/internal/config"
	"github.com/AbdelazizMoustafa10m/quill/internal/logging"
)

// ErrInitCancelled is returned when the user aborts the init wizard.
var ErrInitCancelled = errors.New("init cancelled by user")

var initForce bool

var initLogger = logging.New("init")

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a quill.toml in the current directory",
	Long: `Init interactively creates a quill.toml configuration file in the
current directory. The file sets the default emission mode used by
render when --when is not given, and whether the CLI's own output is
colored.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing quill.toml")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	path := filepath.Join(".", config.ConfigFileName)
	if _, err := os.Stat(path); err == nil && !initForce {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	out := config.Default()
	if err := runInitForm(out); err != nil {
		return err
	}

	if err := config.Save(path, out); err != nil {
		return err
	}
	initLogger.Info("wrote config", "path", path, "when", out.Output.When)
	fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
	return nil
}

// runInitForm fills cfg from the interactive wizard. Separated from
// runInit so tests can exercise the surrounding file handling without
// a terminal.
var runInitForm = func(cfg *config.Config) error {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("When should quill emit escape sequences?").
				Description("The default for render when --when is not given.").
				Options(
					huh.NewOption("auto — only when stdout is a terminal", "auto"),
					huh.NewOption("always", "always"),
					huh.NewOption("never — always strip markup", "never"),
				).
				Value(&cfg.Output.When),
			huh.NewConfirm().
				Title("Disable color in quill's own CLI output?").
				Value(&cfg.Output.NoColor),
		),
	)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return ErrInitCancelled
		}
		return fmt.Errorf("running init wizard: %w", err)
	}
	return nil
}
