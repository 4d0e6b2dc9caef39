package deploy

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/frcopy/frcopy/internal/config"
	"github.com/frcopy/frcopy/internal/errors"
	"github.com/frcopy/frcopy/internal/remote"
	"github.com/frcopy/frcopy/internal/util"
)

// Database connection variables read from .env.
const (
	EnvDBServer   = "DB_SERVER"
	EnvDBPort     = "DB_PORT"
	EnvDBUser     = "DB_USER"
	EnvDBPassword = "DB_PASSWORD"
	EnvDBDatabase = "DB_DATABASE"

	defaultDBPort = "3306"
)

// DBCredentials are the local database settings used by mysqldump.
type DBCredentials struct {
	Server   string
	Port     string
	User     string
	Password string
	Database string
}

// LoadDBCredentials reads the connection settings from dir/.env, falling back
// to the process environment.
func LoadDBCredentials(dir string) (*DBCredentials, error) {
	vars, err := config.ReadDotEnv(dir)
	if err != nil {
		return nil, err
	}

	creds := &DBCredentials{
		Server:   config.LookupEnv(vars, EnvDBServer),
		Port:     config.LookupEnv(vars, EnvDBPort),
		User:     config.LookupEnv(vars, EnvDBUser),
		Password: config.LookupEnv(vars, EnvDBPassword),
		Database: config.LookupEnv(vars, EnvDBDatabase),
	}
	if creds.Server == "" {
		creds.Server = "localhost"
	}
	if creds.Port == "" {
		creds.Port = defaultDBPort
	}
	if creds.Database == "" {
		return nil, errors.New(errors.ErrConfig,
			EnvDBDatabase+" is not set",
			"Add "+EnvDBDatabase+"=<name> to your .env file")
	}
	return creds, nil
}

// DumpCommand returns the shell command that dumps the database to dumpPath.
// The password is not part of it; pass DumpEnv to the process instead.
func (c *DBCredentials) DumpCommand(dumpPath string) string {
	args := []string{
		"mysqldump",
		"--host=" + c.Server,
		"--port=" + c.Port,
		"--add-drop-table",
		"--single-transaction",
	}
	if c.User != "" {
		args = append(args, "--user="+c.User)
	}
	args = append(args, c.Database)
	return util.ShellJoin(args) + " > " + util.ShellQuote(dumpPath)
}

// DumpEnv returns the environment entries DumpCommand needs.
func (c *DBCredentials) DumpEnv() []string {
	return []string{"MYSQL_PWD=" + c.Password}
}

// RemoteImportCommand loads file into the deploy host's database using the
// DB_* variables of the remote environment. The password is handed to mysql
// through MYSQL_PWD so it stays off the remote process list.
func RemoteImportCommand(file string) string {
	return fmt.Sprintf(`MYSQL_PWD="$%s" mysql --host="$%s" --port="${%s:-%s}" --user="$%s" "$%s" < %s`,
		EnvDBPassword, EnvDBServer, EnvDBPort, defaultDBPort, EnvDBUser, EnvDBDatabase, util.ShellQuote(file))
}

// DBUp dumps the local database, uploads the dump and imports it on the deploy host.
func (o *Operations) DBUp(ctx context.Context) error {
	cfg, err := o.Store.Get()
	if err != nil {
		return err
	}

	creds, err := LoadDBCredentials(o.Dir)
	if err != nil {
		return err
	}

	if o.Prompter.Interactive() {
		ok, err := o.Prompter.Confirm(fmt.Sprintf("Replace the database of %s with %s?", cfg.SSHUrl, creds.Database), true)
		if err != nil {
			return err
		}
		if !ok {
			o.Out.NoteBlock("Abort")
			return errors.NewReported(errors.ErrAbort, "db up declined")
		}
	}

	o.Out.InfoBlock(fmt.Sprintf("Pushing database %s to %s", creds.Database, cfg.SSHUrl))

	dumpPath := cfg.DB.DumpPath
	if err := os.MkdirAll(filepath.Join(o.Dir, filepath.Dir(dumpPath)), 0755); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Couldn't create the dump directory",
			"Check directory permissions or change db.dump_path")
	}
	defer os.Remove(filepath.Join(o.Dir, dumpPath))

	dumpCmd := creds.DumpCommand(dumpPath)
	o.Out.Command(dumpCmd)
	if err := o.runLocal(ctx, dumpCmd, creds.DumpEnv(), "mysqldump"); err != nil {
		return err
	}

	remoteFile := path.Base(filepath.ToSlash(dumpPath))
	uploadCmd := util.ShellJoin(append([]string{"rsync"}, RsyncArgs(dumpPath, cfg.SSHUrl+":~/"+remoteFile, nil, false)...))
	o.Out.Command(uploadCmd)
	if err := o.runLocal(ctx, uploadCmd, nil, "rsync"); err != nil {
		return err
	}

	shell := remote.NewSSHShell(cfg.SSHUrl, o.Dial, o.Log)
	defer shell.Close()

	importCmd := RemoteImportCommand(remoteFile)
	o.Out.Command("ssh " + cfg.SSHUrl + " " + importCmd)
	imported := shell.Exec(importCmd)
	out := shell.Output()

	// The dump is removed whether or not the import worked.
	if shell.Err() == nil {
		if !shell.Exec("rm -f " + util.ShellQuote(remoteFile)) {
			o.Log.Warn("couldn't remove %s on %s", remoteFile, cfg.SSHUrl)
		}
	}

	if !imported {
		if err := shell.Err(); err != nil {
			return err
		}
		o.Out.Passthrough(out)
		return errors.New(errors.ErrRemote,
			"Database import failed on "+cfg.SSHUrl,
			"Check the remote DB_* variables and retry")
	}

	o.Out.SuccessBlock("Database pushed to " + cfg.SSHUrl)
	return nil
}

func (o *Operations) runLocal(ctx context.Context, cmd string, env []string, name string) error {
	var stderr bytes.Buffer
	exitCode, err := o.LocalExec(ctx, cmd, o.Dir, env, o.Out.Writer(), &stderr)
	if err != nil {
		return err
	}
	if exitCode != 0 {
		o.Out.Passthrough(stderr.String())
		return errors.New(errors.ErrExec,
			fmt.Sprintf("%s exited with code %d", name, exitCode),
			"")
	}
	return nil
}
