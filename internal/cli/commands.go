package cli

import (
	"os"

	"github.com/frcopy/frcopy/internal/deploy"
	"github.com/frcopy/frcopy/internal/errors"
	"github.com/gosimple/slug"
	"github.com/spf13/cobra"
)

// deployEnvFlag selects the profile for code up / db up.
var deployEnvFlag string

// setupCmd runs the guided setup
var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Set up the deploy profile and the plugin on the remote",
	Long: `Ask for the App name and deploy environment, write the deploy profile,
check rsync, mysqldump and SSH access, then install the plugin on the remote
and push the database.

Run it again to repair a partial setup.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := projectDir()
		if err != nil {
			return err
		}
		return newApp(dir, interactive(), cmd.OutOrStdout()).orchestrator().Run(cmd.Context())
	},
}

// codeCmd groups code sub-operations
var codeCmd = &cobra.Command{
	Use:   "code",
	Short: "Code deployment",
}

var codeUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Push the project code to the deploy host",
	Long: `Mirror the project directory to the deploy host with rsync.

Files matching sync.exclude in the deploy profile are left out; files missing
locally are removed on the remote.

Examples:
  frcopy code up
  frcopy code up --env staging -n`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runOperation(cmd, deploy.OpCodeUp)
	},
}

// dbCmd groups database sub-operations
var dbCmd = &cobra.Command{
	Use:   "db",
	Short: "Database deployment",
}

var dbUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Push the local database to the deploy host",
	Long: `Dump the local database with mysqldump, upload the dump and import it
into the App's database. Connection settings come from DB_SERVER, DB_PORT,
DB_USER, DB_PASSWORD and DB_DATABASE in .env.

This replaces the remote database.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runOperation(cmd, deploy.OpDBUp)
	},
}

func runOperation(cmd *cobra.Command, name string) error {
	dir, err := projectDir()
	if err != nil {
		return err
	}

	a := newApp(dir, interactive(), cmd.OutOrStdout())
	if env := deployEnvironment(deployEnvFlag); env != "" {
		a.store.SetDeployEnvironment(env)
	}

	if code := a.ops.Run(cmd.Context(), name, a.prompter.Interactive()); code != 0 {
		return errors.NewExitError(code)
	}
	return nil
}

// deployEnvironment normalizes --env the way setup names profiles, so
// "--env Staging" and the profile written for "Staging" agree.
func deployEnvironment(flag string) string {
	return slug.Make(flag)
}

// completionCmd generates shell completion scripts
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long: `Generate shell completion scripts for frcopy.

Examples:
  # Bash
  frcopy completion bash > /etc/bash_completion.d/frcopy

  # Zsh
  frcopy completion zsh > "${fpath[1]}/_frcopy"

  # Fish
  frcopy completion fish > ~/.config/fish/completions/frcopy.fish`,
	ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletion(os.Stdout)
		case "zsh":
			return rootCmd.GenZshCompletion(os.Stdout)
		case "fish":
			return rootCmd.GenFishCompletion(os.Stdout, true)
		case "powershell":
			return rootCmd.GenPowerShellCompletion(os.Stdout)
		default:
			return errors.New(errors.ErrInput,
				"Unknown shell: "+args[0],
				"Supported shells: bash, zsh, fish, powershell")
		}
	},
}

func init() {
	for _, c := range []*cobra.Command{codeUpCmd, dbUpCmd} {
		c.Flags().StringVarP(&deployEnvFlag, "env", "e", "", "deploy environment (default $DEPLOY_ENVIRONMENT or production)")
	}

	codeCmd.AddCommand(codeUpCmd)
	dbCmd.AddCommand(dbUpCmd)

	rootCmd.AddCommand(setupCmd)
	rootCmd.AddCommand(codeCmd)
	rootCmd.AddCommand(dbCmd)
	rootCmd.AddCommand(completionCmd)
}
