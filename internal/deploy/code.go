package deploy

import (
	"context"
	"fmt"

	"github.com/frcopy/frcopy/internal/errors"
	"github.com/frcopy/frcopy/internal/util"
)

// CodeUp mirrors the project directory to the home directory of the deploy host.
func (o *Operations) CodeUp(ctx context.Context) error {
	cfg, err := o.Store.Get()
	if err != nil {
		return err
	}

	if o.Prompter.Interactive() {
		ok, err := o.Prompter.Confirm(fmt.Sprintf("Push the code in %s to %s?", o.dirLabel(), cfg.SSHUrl), true)
		if err != nil {
			return err
		}
		if !ok {
			o.Out.NoteBlock("Abort")
			return errors.NewReported(errors.ErrAbort, "code up declined")
		}
	}

	args := append([]string{"rsync"}, RsyncArgs("./", cfg.SSHUrl+":~/", cfg.Sync.Exclude, true)...)
	cmd := util.ShellJoin(args)
	o.Out.Command(cmd)

	exitCode, err := o.LocalExec(ctx, cmd, o.Dir, nil, o.Out.Writer(), o.Out.Writer())
	if err != nil {
		return err
	}
	if exitCode != 0 {
		return errors.New(errors.ErrExec,
			fmt.Sprintf("rsync exited with code %d", exitCode),
			"Check SSH access with: ssh "+cfg.SSHUrl)
	}

	o.Out.SuccessBlock("Code pushed to " + cfg.SSHUrl)
	return nil
}

func (o *Operations) dirLabel() string {
	if o.Dir == "" {
		return "."
	}
	return o.Dir
}
