package cli

import (
	"io"

	"github.com/frcopy/frcopy/internal/config"
	"github.com/frcopy/frcopy/internal/deploy"
	"github.com/frcopy/frcopy/internal/exec"
	"github.com/frcopy/frcopy/internal/logger"
	"github.com/frcopy/frcopy/internal/region"
	"github.com/frcopy/frcopy/internal/remote"
	"github.com/frcopy/frcopy/internal/setup"
	"github.com/frcopy/frcopy/internal/ui"
	"github.com/frcopy/frcopy/pkg/sshutil"
)

// app wires the collaborators shared by all commands.
type app struct {
	dir      string
	store    *config.FileStore
	prompter ui.Prompter
	out      *ui.Output
	ops      *deploy.Operations
	dial     sshutil.Dialer
}

func newApp(dir string, interactive bool, w io.Writer) *app {
	store := config.NewFileStore(dir)
	prompter := ui.NewHuhPrompter(interactive)
	out := ui.NewOutput(w)
	return &app{
		dir:      dir,
		store:    store,
		prompter: prompter,
		out:      out,
		ops:      deploy.NewOperations(store, dir, out, prompter, logger.NewEnvLogger("deploy")),
		dial:     sshutil.DialWithTimeout(remote.DefaultDialTimeout),
	}
}

func (a *app) orchestrator() *setup.Orchestrator {
	log := logger.NewEnvLogger("setup")
	remoteLog := logger.NewEnvLogger("remote")
	return &setup.Orchestrator{
		Dir:      a.dir,
		Store:    a.store,
		Resolver: region.NewResolver(logger.NewEnvLogger("region")),
		Prober:   exec.NewShellProber(logger.NewEnvLogger("probe")),
		Prompter: a.prompter,
		Out:      a.out,
		Log:      log,
		Bootstrapper: &setup.Bootstrapper{
			NewShell: func(sshUrl string) remote.Shell {
				return remote.NewSSHShell(sshUrl, a.dial, remoteLog)
			},
			Runner:   a.ops,
			Prompter: a.prompter,
			Out:      a.out,
			Log:      log,
		},
	}
}
