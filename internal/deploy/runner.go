// Package deploy implements the sub-operations that push an App's code and
// database to its deploy host.
package deploy

import (
	"context"
	"io"

	"github.com/frcopy/frcopy/internal/config"
	"github.com/frcopy/frcopy/internal/errors"
	"github.com/frcopy/frcopy/internal/exec"
	"github.com/frcopy/frcopy/internal/logger"
	"github.com/frcopy/frcopy/internal/remote"
	"github.com/frcopy/frcopy/internal/ui"
	"github.com/frcopy/frcopy/pkg/sshutil"
)

// Sub-operation names.
const (
	OpCodeUp = "code/up"
	OpDBUp   = "db/up"
)

// Runner invokes a named sub-operation and returns its exit status, 0 on success.
type Runner interface {
	Run(ctx context.Context, name string, interactive bool) int
}

// LocalExecFunc matches exec.ExecuteLocalEnv.
type LocalExecFunc func(ctx context.Context, cmd, workDir string, env []string, stdout, stderr io.Writer) (int, error)

// Operations implements code/up and db/up for the profile in Store.
type Operations struct {
	Store    config.Store
	Dir      string
	Out      *ui.Output
	Prompter ui.Prompter
	Log      logger.Logger

	// LocalExec runs local commands; defaults to exec.ExecuteLocalEnv.
	LocalExec LocalExecFunc
	// Dial opens the SSH connection for remote steps; defaults to sshutil.Dial.
	Dial sshutil.Dialer
}

// NewOperations creates Operations with the default local executor and dialer.
func NewOperations(store config.Store, dir string, out *ui.Output, prompter ui.Prompter, log logger.Logger) *Operations {
	if log == nil {
		log = logger.Noop()
	}
	return &Operations{
		Store:     store,
		Dir:       dir,
		Out:       out,
		Prompter:  prompter,
		Log:       log,
		LocalExec: exec.ExecuteLocalEnv,
		Dial:      sshutil.DialWithTimeout(remote.DefaultDialTimeout),
	}
}

// Run dispatches name with the prompter switched to the requested mode.
func (o *Operations) Run(ctx context.Context, name string, interactive bool) int {
	var op func(context.Context) error
	switch name {
	case OpCodeUp:
		op = o.CodeUp
	case OpDBUp:
		op = o.DBUp
	default:
		o.Log.Error("unknown sub-operation %q", name)
		o.Out.ErrorBlock("Unknown operation: " + name)
		return 1
	}

	o.Log.Debug("running %s (interactive=%t)", name, interactive)
	err := ui.WithInteractive(o.Prompter, interactive, func() error {
		return op(ctx)
	})
	if err != nil {
		o.Log.Debug("%s failed: %v", name, err)
		if !errors.IsReported(err) {
			o.Out.Println(err.Error())
		}
		return 1
	}
	return 0
}
