package testing

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockClient_CannedResponses(t *testing.T) {
	m := NewMockClient("acme@deploy.eu2.frbit.com")
	m.SetCommandResponse("ls vendor/bin/craft-copy-installer.php | wc -l", CommandResponse{Stdout: []byte("1\n")})
	m.SetCommandResponse(`^php .*installer`, CommandResponse{Stdout: []byte("installed"), ExitCode: 0})

	stdout, _, code, err := m.Exec("ls vendor/bin/craft-copy-installer.php | wc -l")
	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.Equal(t, "1\n", string(stdout))

	stdout, _, _, err = m.Exec("php vendor/bin/craft-copy-installer.php")
	require.NoError(t, err)
	assert.Equal(t, "installed", string(stdout))

	stdout, _, code, err = m.Exec("uptime")
	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.Empty(t, stdout)

	assert.Len(t, m.Executed(), 3)
}

func TestMockClient_ExecStream(t *testing.T) {
	m := NewMockClient("host")
	m.SetCommandResponse("fail", CommandResponse{Stderr: []byte("boom"), ExitCode: 2})

	var stdout, stderr bytes.Buffer
	code, err := m.ExecStream("fail", &stdout, &stderr)

	require.NoError(t, err)
	assert.Equal(t, 2, code)
	assert.Equal(t, "boom", stderr.String())
}

func TestMockClient_Closed(t *testing.T) {
	m := NewMockClient("host")
	require.NoError(t, m.Close())
	assert.True(t, m.Closed())

	_, _, code, err := m.Exec("echo")
	assert.Error(t, err)
	assert.Equal(t, -1, code)
}

func TestDialers(t *testing.T) {
	m := NewMockClient("host")
	c, err := m.Dialer()("anything")
	require.NoError(t, err)
	assert.Equal(t, "host", c.GetHost())

	_, err = FailingDialer(errors.New("unreachable"))("anything")
	assert.EqualError(t, err, "unreachable")
}
