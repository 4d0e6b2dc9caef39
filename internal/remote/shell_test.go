package remote

import (
	"errors"
	"testing"

	"github.com/frcopy/frcopy/pkg/sshutil"
	sshtesting "github.com/frcopy/frcopy/pkg/sshutil/testing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSSHShell_ExecSuccess(t *testing.T) {
	mock := sshtesting.NewMockClient("acme@deploy.eu2.frbit.com")
	mock.SetCommandResponse("ls vendor/bin/craft-copy-installer.php | wc -l", sshtesting.CommandResponse{Stdout: []byte("1\n")})

	sh := NewSSHShell("acme@deploy.eu2.frbit.com", mock.Dialer(), nil)

	assert.True(t, sh.Exec("ls vendor/bin/craft-copy-installer.php | wc -l"))
	assert.Equal(t, "1\n", sh.Output())
	assert.NoError(t, sh.Err())
}

func TestSSHShell_ExecNonZeroExit(t *testing.T) {
	mock := sshtesting.NewMockClient("acme@deploy.eu2.frbit.com")
	mock.SetCommandResponse("php vendor/bin/craft-copy-installer.php", sshtesting.CommandResponse{
		Stdout:   []byte("partial\n"),
		Stderr:   []byte("PHP Fatal error\n"),
		ExitCode: 255,
	})

	sh := NewSSHShell("acme@deploy.eu2.frbit.com", mock.Dialer(), nil)

	assert.False(t, sh.Exec("php vendor/bin/craft-copy-installer.php"))
	assert.Equal(t, "partial\nPHP Fatal error\n", sh.Output())
	assert.NoError(t, sh.Err(), "a non-zero exit is not a transport error")
}

func TestSSHShell_DialFailure(t *testing.T) {
	sh := NewSSHShell("acme@deploy.eu2.frbit.com", sshtesting.FailingDialer(errors.New("connection refused")), nil)

	assert.False(t, sh.Exec("true"))
	assert.Empty(t, sh.Output())
	require.Error(t, sh.Err())
	assert.Contains(t, sh.Err().Error(), "connection refused")
}

func TestSSHShell_ExecTransportError(t *testing.T) {
	mock := sshtesting.NewMockClient("acme@deploy.eu2.frbit.com")
	mock.SetCommandResponse("true", sshtesting.CommandResponse{ExitCode: -1, Error: errors.New("session closed")})

	sh := NewSSHShell("acme@deploy.eu2.frbit.com", mock.Dialer(), nil)

	assert.False(t, sh.Exec("true"))
	require.Error(t, sh.Err())
}

func TestSSHShell_ResetsStateBetweenCommands(t *testing.T) {
	mock := sshtesting.NewMockClient("acme@deploy.eu2.frbit.com")
	mock.SetCommandResponse("first", sshtesting.CommandResponse{Stdout: []byte("one")})

	sh := NewSSHShell("acme@deploy.eu2.frbit.com", mock.Dialer(), nil)

	require.True(t, sh.Exec("first"))
	require.True(t, sh.Exec("second"))
	assert.Empty(t, sh.Output())
}

func TestSSHShell_DialsOnce(t *testing.T) {
	mock := sshtesting.NewMockClient("acme@deploy.eu2.frbit.com")
	dials := 0
	dial := mock.Dialer()

	sh := NewSSHShell("acme@deploy.eu2.frbit.com", func(host string) (sshutil.SSHClient, error) {
		dials++
		return dial(host)
	}, nil)

	sh.Exec("a")
	sh.Exec("b")

	assert.Equal(t, 1, dials)
	require.NoError(t, sh.Close())
	assert.True(t, mock.Closed())
}
