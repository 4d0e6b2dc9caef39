package sshutil

import "io"

// SSHClient is the command-execution surface of an SSH connection.
// Both Client and testing.MockClient satisfy it.
type SSHClient interface {
	// Exec runs a command and returns stdout, stderr, and exit code.
	// Exit code is -1 if the command couldn't be executed at all.
	// A non-zero exit code with nil error means the command ran but failed.
	Exec(cmd string) (stdout, stderr []byte, exitCode int, err error)

	// ExecStream runs a command and streams output to the provided writers.
	ExecStream(cmd string, stdout, stderr io.Writer) (exitCode int, err error)

	// Close closes the SSH connection.
	Close() error

	// GetHost returns the original user@host used to connect.
	GetHost() string
}

// Dialer opens SSH connections. It lets callers swap the network for a mock.
type Dialer func(host string) (SSHClient, error)
