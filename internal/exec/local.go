package exec

import (
	"context"
	"io"
	"os"
	"os/exec"

	"github.com/frcopy/frcopy/internal/errors"
)

// shellCommand builds a command that runs cmd through the user's shell so
// pipes, redirects and quoting behave the way they do in a terminal.
func shellCommand(ctx context.Context, cmd, workDir string) *exec.Cmd {
	shell := os.Getenv("SHELL")
	if shell == "" {
		shell = "/bin/sh"
	}

	command := exec.CommandContext(ctx, shell, "-c", cmd)
	if workDir != "" {
		command.Dir = workDir
	}
	return command
}

// ExecuteLocal runs a command locally, streaming output to the provided writers.
// Returns the exit code and any execution error.
// A non-zero exit is not an error: the command ran and reported failure.
func ExecuteLocal(ctx context.Context, cmd string, workDir string, stdout, stderr io.Writer) (exitCode int, err error) {
	command := shellCommand(ctx, cmd, workDir)
	command.Stdout = stdout
	command.Stderr = stderr

	return runCommand(command)
}

// ExecuteLocalEnv is ExecuteLocal with extra KEY=value pairs added to the
// command's environment. Secrets passed this way stay out of the command line.
func ExecuteLocalEnv(ctx context.Context, cmd, workDir string, env []string, stdout, stderr io.Writer) (exitCode int, err error) {
	command := shellCommand(ctx, cmd, workDir)
	if len(env) > 0 {
		command.Env = append(os.Environ(), env...)
	}
	command.Stdout = stdout
	command.Stderr = stderr

	return runCommand(command)
}

func runCommand(command *exec.Cmd) (int, error) {
	runErr := command.Run()
	if runErr != nil {
		if exitErr, ok := runErr.(*exec.ExitError); ok {
			return exitErr.ExitCode(), nil
		}
		return -1, errors.WrapWithCode(runErr, errors.ErrExec,
			"Couldn't run the command locally",
			"Make sure the command exists and is executable.")
	}

	return 0, nil
}
