package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/frcopy/frcopy/internal/errors"
	"github.com/frcopy/frcopy/internal/logger"
	"github.com/frcopy/frcopy/internal/ui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Keys of the global settings, also the flag names.
const (
	keyDir           = "dir"
	keyVerbose       = "verbose"
	keyNoInteraction = "no-interaction"
	keyNoColor       = "no-color"
)

// settings holds the global flags, overridable as FRCOPY_<FLAG> env vars.
var settings = newSettings()

func newSettings() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("FRCOPY")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

var rootCmd = &cobra.Command{
	Use:   "frcopy",
	Short: "Set up and push Craft projects to their frbit deploy hosts",
	Long: `frcopy sets up a deploy profile for an App, checks the tools deploys need,
and pushes code and database to the App's deploy host.

Start with:
  frcopy setup`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.SetVerbose(settings.GetBool(keyVerbose))
		if settings.GetBool(keyNoColor) || os.Getenv("NO_COLOR") != "" {
			ui.DisableColors()
		}
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String(keyDir, ".", "project directory")
	flags.BoolP(keyVerbose, "v", false, "show debug output")
	flags.BoolP(keyNoInteraction, "n", false, "don't ask questions, take the defaults")
	flags.Bool(keyNoColor, false, "disable colored output")

	for _, key := range []string{keyDir, keyVerbose, keyNoInteraction, keyNoColor} {
		_ = settings.BindPFlag(key, flags.Lookup(key))
	}
}

// projectDir returns the absolute project directory.
func projectDir() (string, error) {
	dir, err := filepath.Abs(settings.GetString(keyDir))
	if err != nil {
		return "", errors.WrapWithCode(err, errors.ErrConfig,
			"Can't resolve the project directory",
			"Pass an existing directory with --dir")
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return "", errors.New(errors.ErrConfig,
			fmt.Sprintf("'%s' is not a directory", dir),
			"Pass an existing directory with --dir")
	}
	return dir, nil
}

// interactive reports whether prompts should reach the operator.
func interactive() bool {
	return !settings.GetBool(keyNoInteraction) && ui.StdinIsTerminal()
}

// Execute runs the root command and returns the process exit status.
func Execute(ctx context.Context) int {
	err := rootCmd.ExecuteContext(ctx)
	return exitStatus(err)
}

// exitStatus prints err where needed and maps it to an exit status.
func exitStatus(err error) int {
	if err == nil {
		return 0
	}

	if code, ok := errors.GetExitCode(err); ok {
		return code
	}

	if errors.IsReported(err) {
		return 1
	}

	if isUnknownCommandError(err) {
		fmt.Fprintln(os.Stderr, ui.ErrorStyle().Render(ui.SymbolFail+" "+err.Error()))
		if name := extractUnknownCommand(err); name != "" {
			fmt.Fprintf(os.Stderr, "\n  '%s' isn't a frcopy command. Run 'frcopy --help' for the list.\n", name)
		}
		return 1
	}

	var frErr *errors.Error
	if stderrors.As(err, &frErr) {
		fmt.Fprint(os.Stderr, frErr.Error())
		return 1
	}

	fmt.Fprintln(os.Stderr, ui.ErrorStyle().Render(ui.SymbolFail+" "+err.Error()))
	return 1
}

func isUnknownCommandError(err error) bool {
	msg := err.Error()
	return strings.HasPrefix(msg, "unknown command") || strings.HasPrefix(msg, "unknown flag") ||
		strings.HasPrefix(msg, "unknown shorthand flag")
}

// extractUnknownCommand pulls the command name out of cobra's
// `unknown command "foo" for "frcopy"` message.
func extractUnknownCommand(err error) string {
	msg := err.Error()
	start := strings.Index(msg, `"`)
	if start == -1 {
		return ""
	}
	end := strings.Index(msg[start+1:], `"`)
	if end == -1 {
		return ""
	}
	return msg[start+1 : start+1+end]
}
