package setup

import (
	"context"
	"strings"

	"github.com/frcopy/frcopy/internal/config"
	"github.com/frcopy/frcopy/internal/deploy"
	"github.com/frcopy/frcopy/internal/logger"
	"github.com/frcopy/frcopy/internal/region"
	"github.com/frcopy/frcopy/internal/remote"
	"github.com/frcopy/frcopy/internal/ui"
)

// Remote helper commands.
const (
	HelperProbeCommand   = "ls vendor/bin/craft-copy-installer.php | wc -l"
	HelperInstallCommand = "php vendor/bin/craft-copy-installer.php"
)

// BootstrapState is a step of the remote bootstrap.
type BootstrapState string

const (
	StateProbeHelper    BootstrapState = "ProbeHelper"
	StateConfirmInstall BootstrapState = "ConfirmInstall"
	StateRunCodeDeploy  BootstrapState = "RunCodeDeploy"
	StateRunInstaller   BootstrapState = "RunInstaller"
	StateRunDbMigration BootstrapState = "RunDbMigration"
	StateDone           BootstrapState = "Done"
	StateFailed         BootstrapState = "Failed"
)

// ShellFactory opens a remote shell for an ssh URL.
type ShellFactory func(sshUrl string) remote.Shell

// Bootstrapper installs and runs the helper on the remote, then pushes the database.
type Bootstrapper struct {
	NewShell ShellFactory
	Runner   deploy.Runner
	Prompter ui.Prompter
	Out      *ui.Output
	Log      logger.Logger

	state BootstrapState
}

// State returns the state the last SetupRemote ended in.
func (b *Bootstrapper) State() BootstrapState {
	return b.state
}

func (b *Bootstrapper) enter(s BootstrapState) {
	b.Log.Debug("bootstrap: %s -> %s", b.state, s)
	b.state = s
}

func (b *Bootstrapper) fail(msg string) bool {
	if msg != "" {
		b.Out.ErrorBlock(msg)
	}
	b.enter(StateFailed)
	return false
}

// SetupRemote drives the bootstrap for cfg and reports whether it finished.
// The steps run strictly in order and a failure stops the sequence.
func (b *Bootstrapper) SetupRemote(ctx context.Context, cfg *config.DeployConfig, interactive bool) bool {
	b.state = ""
	b.enter(StateProbeHelper)

	shell := b.NewShell(cfg.SSHUrl)
	if c, ok := shell.(interface{ Close() error }); ok {
		defer c.Close()
	}

	installed := shell.Exec(HelperProbeCommand)
	if err := shell.Err(); err != nil {
		b.Out.Println(err.Error())
		return b.fail("")
	}
	if !installed || strings.TrimSpace(shell.Output()) != "1" {
		b.enter(StateConfirmInstall)
		if !interactive {
			return b.fail("The plugin is not installed on the remote. Run 'frcopy code up' first or run setup interactively.")
		}

		ok, err := b.Prompter.Confirm("The plugin is not installed on the remote! Do you want to deploy now?", true)
		if err != nil {
			b.Log.Debug("confirm failed: %v", err)
			return b.fail("")
		}
		if !ok {
			return b.fail("")
		}

		b.enter(StateRunCodeDeploy)
		if code := b.Runner.Run(ctx, deploy.OpCodeUp, interactive); code != 0 {
			b.Log.Debug("%s returned %d", deploy.OpCodeUp, code)
			return b.fail("")
		}
	}

	b.enter(StateRunInstaller)
	if shell.Exec(HelperInstallCommand) {
		b.Out.Passthrough(shell.Output())
	} else {
		b.Log.Warn("installer on %s didn't succeed: %s", cfg.SSHUrl, strings.TrimSpace(shell.Output()))
	}

	b.enter(StateRunDbMigration)
	b.Out.Command("frcopy db up")
	if code := b.Runner.Run(ctx, deploy.OpDBUp, interactive); code != 0 {
		b.Log.Debug("%s returned %d", deploy.OpDBUp, code)
		return b.fail("")
	}

	b.Out.SuccessBlock("Check it in the browser: https://" + region.Hostname(cfg.Name))
	b.enter(StateDone)
	return true
}
