// Package remote runs commands on an App's deploy host.
package remote

import (
	"sync"
	"time"

	"github.com/frcopy/frcopy/internal/errors"
	"github.com/frcopy/frcopy/internal/logger"
	"github.com/frcopy/frcopy/pkg/sshutil"
)

// DefaultDialTimeout bounds connection setup only; commands themselves run
// until they finish.
const DefaultDialTimeout = 15 * time.Second

// Shell runs commands on the deploy host and keeps the last command's output.
type Shell interface {
	// Exec runs cmd and reports whether it exited with status zero.
	Exec(cmd string) bool
	// Output returns the combined stdout and stderr of the last Exec.
	Output() string
	// Err returns the transport error of the last Exec, nil if the command ran.
	Err() error
}

// SSHShell is a Shell over one lazily dialed SSH connection.
type SSHShell struct {
	host string
	dial sshutil.Dialer
	log  logger.Logger

	mu     sync.Mutex
	client sshutil.SSHClient
	output string
	err    error
}

// NewSSHShell creates a shell for sshUrl (user@host). The connection is
// opened on the first Exec.
func NewSSHShell(sshUrl string, dial sshutil.Dialer, log logger.Logger) *SSHShell {
	if dial == nil {
		dial = sshutil.DialWithTimeout(DefaultDialTimeout)
	}
	if log == nil {
		log = logger.Noop()
	}
	return &SSHShell{host: sshUrl, dial: dial, log: log}
}

// Exec runs cmd on the deploy host.
func (s *SSHShell) Exec(cmd string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.output = ""
	s.err = nil

	if s.client == nil {
		client, err := s.dial(s.host)
		if err != nil {
			s.log.Debug("dial %s failed: %v", s.host, err)
			s.err = err
			return false
		}
		s.client = client
	}

	s.log.Debug("exec on %s: %s", s.host, cmd)
	stdout, stderr, exitCode, err := s.client.Exec(cmd)
	s.output = string(stdout) + string(stderr)
	if err != nil {
		s.log.Debug("exec %q failed: %v", cmd, err)
		s.err = errors.WrapWithCode(err, errors.ErrRemote,
			"Couldn't run a command on "+s.host,
			"Check your SSH access with: ssh "+s.host)
		return false
	}

	s.log.Debug("exec %q exited with %d", cmd, exitCode)
	return exitCode == 0
}

// Output returns the combined output of the last Exec.
func (s *SSHShell) Output() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.output
}

// Err returns the transport error of the last Exec.
func (s *SSHShell) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Close closes the connection if one was opened.
func (s *SSHShell) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.client == nil {
		return nil
	}
	err := s.client.Close()
	s.client = nil
	return err
}
