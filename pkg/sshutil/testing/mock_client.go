// Package testing provides an in-memory SSH client for tests.
package testing

import (
	"errors"
	"io"
	"regexp"
	"sync"

	"github.com/frcopy/frcopy/pkg/sshutil"
)

// CommandResponse defines a canned response for a specific command pattern.
type CommandResponse struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int
	Error    error
}

// MockClient simulates an SSH connection. Commands are answered from canned
// responses; anything unknown succeeds with no output.
type MockClient struct {
	mu       sync.Mutex
	host     string
	closed   bool
	commands map[string]CommandResponse
	executed []string
}

var _ sshutil.SSHClient = (*MockClient)(nil)

// NewMockClient creates a mock SSH client for host.
func NewMockClient(host string) *MockClient {
	return &MockClient{
		host:     host,
		commands: make(map[string]CommandResponse),
	}
}

// Exec answers cmd from the canned responses: exact matches first, then regex patterns.
func (m *MockClient) Exec(cmd string) (stdout, stderr []byte, exitCode int, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil, nil, -1, errors.New("connection closed")
	}

	m.executed = append(m.executed, cmd)

	if resp, ok := m.commands[cmd]; ok {
		return resp.Stdout, resp.Stderr, resp.ExitCode, resp.Error
	}

	for pattern, resp := range m.commands {
		if matched, _ := regexp.MatchString(pattern, cmd); matched {
			return resp.Stdout, resp.Stderr, resp.ExitCode, resp.Error
		}
	}

	return nil, nil, 0, nil
}

// ExecStream runs Exec and copies the output to the writers.
func (m *MockClient) ExecStream(cmd string, stdout, stderr io.Writer) (exitCode int, err error) {
	out, errOut, code, execErr := m.Exec(cmd)
	if execErr != nil {
		return -1, execErr
	}

	if stdout != nil && len(out) > 0 {
		stdout.Write(out)
	}
	if stderr != nil && len(errOut) > 0 {
		stderr.Write(errOut)
	}

	return code, nil
}

// Close marks the connection as closed.
func (m *MockClient) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// Closed reports whether Close was called.
func (m *MockClient) Closed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

// GetHost returns the host name.
func (m *MockClient) GetHost() string {
	return m.host
}

// SetCommandResponse registers a canned response for a command pattern.
// The pattern can be an exact string or a regex pattern.
func (m *MockClient) SetCommandResponse(pattern string, resp CommandResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.commands[pattern] = resp
}

// Executed returns the commands run so far, in order.
func (m *MockClient) Executed() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.executed...)
}

// Dialer returns an sshutil.Dialer that always hands out this client.
func (m *MockClient) Dialer() sshutil.Dialer {
	return func(host string) (sshutil.SSHClient, error) {
		return m, nil
	}
}

// FailingDialer returns an sshutil.Dialer that always fails with err.
func FailingDialer(err error) sshutil.Dialer {
	return func(host string) (sshutil.SSHClient, error) {
		return nil, err
	}
}
