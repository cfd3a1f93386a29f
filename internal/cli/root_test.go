package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AbdelazizMoustafa10m/quill"
	"github.com/AbdelazizMoustafa10m/quill/internal/config"
)

// resetRootCmd restores all package-level command state so tests do not
// leak flags or configuration into each other.
func resetRootCmd(t *testing.T) {
	t.Helper()

	flagVerbose = false
	flagQuiet = false
	flagConfig = ""
	flagNoColor = false
	cfg = config.Default()

	renderWhen = ""
	renderFiles = false
	renderJobs = defaultJobs
	stripFiles = false
	stripJobs = defaultJobs
	colorsWhen = ""
	initForce = false
	versionJSON = false

	resetFlags := func(fs *pflag.FlagSet) {
		fs.VisitAll(func(f *pflag.Flag) {
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		})
	}
	resetFlags(rootCmd.PersistentFlags())
	for _, c := range rootCmd.Commands() {
		resetFlags(c.Flags())
	}

	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetIn(nil)
	})
}

// runCommand executes the root command with the given args, returning
// the exit code and captured stdout.
func runCommand(t *testing.T, args ...string) (int, string) {
	t.Helper()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(new(bytes.Buffer))
	rootCmd.SetArgs(args)

	code := Execute()
	return code, out.String()
}

func TestResolveWhen_FlagWins(t *testing.T) {
	resetRootCmd(t)
	cfg.Output.When = "never"

	got, err := resolveWhen("always")
	require.NoError(t, err)
	assert.Equal(t, quill.WhenAlways, got)
}

func TestResolveWhen_DefaultsToConfig(t *testing.T) {
	resetRootCmd(t)
	cfg.Output.When = "never"

	got, err := resolveWhen("")
	require.NoError(t, err)
	assert.Equal(t, quill.WhenNever, got)
}

func TestResolveWhen_RejectsBadValue(t *testing.T) {
	resetRootCmd(t)

	_, err := resolveWhen("whenever")
	assert.Error(t, err)
}

func TestSingleInput_Arg(t *testing.T) {
	resetRootCmd(t)

	cmd := &cobra.Command{}
	got, err := singleInput(cmd, []string{"hello"})
	require.NoError(t, err)
	assert.Equal(t, "hello", got)
}

func TestSingleInput_Stdin(t *testing.T) {
	resetRootCmd(t)

	cmd := &cobra.Command{}
	cmd.SetIn(strings.NewReader("from stdin"))
	got, err := singleInput(cmd, nil)
	require.NoError(t, err)
	assert.Equal(t, "from stdin", got)
}

func TestSingleInput_TooManyArgs(t *testing.T) {
	resetRootCmd(t)

	cmd := &cobra.Command{}
	_, err := singleInput(cmd, []string{"a", "b"})
	assert.Error(t, err)
}

func TestNewRootCmd_CarriesSubcommands(t *testing.T) {
	resetRootCmd(t)

	fresh := NewRootCmd()
	names := make(map[string]bool)
	for _, c := range fresh.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"render", "strip", "escape", "colors", "preview", "init", "version", "completion"} {
		assert.True(t, names[want], "missing subcommand %s", want)
	}
}
