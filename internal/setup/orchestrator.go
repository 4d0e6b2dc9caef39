package setup

import (
	"context"

	"github.com/frcopy/frcopy/internal/config"
	"github.com/frcopy/frcopy/internal/errors"
	"github.com/frcopy/frcopy/internal/exec"
	"github.com/frcopy/frcopy/internal/logger"
	"github.com/frcopy/frcopy/internal/region"
	"github.com/frcopy/frcopy/internal/ui"
	"github.com/frcopy/frcopy/internal/util"
	"github.com/gosimple/slug"
)

// Probe commands for the capability checks.
const (
	RsyncProbe     = "rsync --help"
	MysqldumpProbe = "mysqldump --help"
)

// Environments offered at the environment prompt. Any other name is accepted.
var Environments = []string{config.DefaultEnvironment, "staging"}

// SSHProbe returns the command that checks key-based access to sshUrl.
// Batch mode keeps a missing key from turning into a password prompt.
func SSHProbe(sshUrl string) string {
	return "ssh -o BatchMode=yes -o ConnectTimeout=5 -o StrictHostKeyChecking=accept-new " +
		util.ShellQuote(sshUrl) + " secrets"
}

// RegionResolver maps an App name to its region.
type RegionResolver interface {
	Resolve(ctx context.Context, app string) (string, bool)
}

// Orchestrator runs the guided setup.
type Orchestrator struct {
	Dir          string
	Store        config.Store
	Resolver     RegionResolver
	Prober       exec.Prober
	Prompter     ui.Prompter
	Out          *ui.Output
	Log          logger.Logger
	Bootstrapper *Bootstrapper
}

// abort reports msg as an error block and returns the matching handled error.
func (o *Orchestrator) abort(code, msg string) error {
	o.Out.ErrorBlock(msg)
	return errors.NewReported(code, msg)
}

// Run performs one setup. It returns nil on success and an already reported
// error on every handled failure. Storage failures come back unreported.
func (o *Orchestrator) Run(ctx context.Context) error {
	interactive := o.Prompter.Interactive()

	// The App name can't be defaulted, so this prompt always reaches the operator.
	var app string
	err := ui.WithInteractive(o.Prompter, true, func() error {
		var err error
		app, err = o.Prompter.Ask("What's the name of your App?")
		return err
	})
	if err != nil {
		return err
	}

	if err := config.ValidateAppName(app); err != nil {
		o.Log.Debug("rejected App name %q", app)
		return o.abort(errors.ErrInput, "Invalid App name.")
	}

	var reg string
	var ok bool
	o.Out.Spin("Looking up "+region.Hostname(app), func() {
		reg, ok = o.Resolver.Resolve(ctx, app)
	})
	if !ok {
		return o.abort(errors.ErrDNS, "App not found")
	}
	o.Log.Debug("App %s is in region %s", app, reg)

	env, err := o.Prompter.Choose("What's the environment?", Environments, config.DefaultEnvironment)
	if err != nil {
		return err
	}
	env = slug.Make(env)
	if env == "" {
		env = config.DefaultEnvironment
	}

	cfg, err := WriteDeployConfig(o.Store, o.Dir, app, reg, env)
	if err != nil {
		return err
	}

	o.Out.Println()
	o.Out.Check("Testing DNS - "+region.Label(reg), true)
	o.Out.Check("Testing rsync", o.Prober.CanExec(ctx, RsyncProbe))
	mysqldump := o.Out.Check("Testing mysqldump", o.Prober.CanExec(ctx, MysqldumpProbe))
	ssh := o.Out.Check("Testing ssh access", o.Prober.CanExec(ctx, SSHProbe(cfg.SSHUrl)))

	install, err := o.Prompter.Confirm("Do you want to install and enable the plugin on the remote?", true)
	if err != nil {
		return err
	}
	if !install {
		o.Out.NoteBlock("Abort")
		return errors.NewReported(errors.ErrAbort, "Abort")
	}

	if !mysqldump {
		return o.abort(errors.ErrDeps, "Mysqldump is required.")
	}
	if !ssh {
		o.Out.ErrorBlock("SSH is required.")
		o.Out.Println("  " + sshKeyHint())
		return errors.NewReported(errors.ErrDeps, "SSH is required.")
	}

	if !o.Bootstrapper.SetupRemote(ctx, cfg, interactive) {
		return errors.NewReported(errors.ErrRemote, "Remote setup failed")
	}
	return nil
}
