package exec

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecuteLocal_SimpleCommand(t *testing.T) {
	var stdout, stderr bytes.Buffer

	exitCode, err := ExecuteLocal(context.Background(), "echo hello", "", &stdout, &stderr)

	require.NoError(t, err)
	assert.Equal(t, 0, exitCode)
	assert.Equal(t, "hello\n", stdout.String())
	assert.Empty(t, stderr.String())
}

func TestExecuteLocal_CommandWithPipe(t *testing.T) {
	var stdout, stderr bytes.Buffer

	exitCode, err := ExecuteLocal(context.Background(), "echo 'hello world' | tr ' ' '_'", "", &stdout, &stderr)

	require.NoError(t, err)
	assert.Equal(t, 0, exitCode)
	assert.Equal(t, "hello_world\n", stdout.String())
}

func TestExecuteLocal_NonZeroExitCode(t *testing.T) {
	var stdout, stderr bytes.Buffer

	exitCode, err := ExecuteLocal(context.Background(), "exit 42", "", &stdout, &stderr)

	require.NoError(t, err) // command ran, just had non-zero exit
	assert.Equal(t, 42, exitCode)
}

func TestExecuteLocal_WorkingDirectory(t *testing.T) {
	tempDir := t.TempDir()
	var stdout, stderr bytes.Buffer

	exitCode, err := ExecuteLocal(context.Background(), "pwd", tempDir, &stdout, &stderr)

	require.NoError(t, err)
	assert.Equal(t, 0, exitCode)
	assert.Contains(t, strings.TrimSpace(stdout.String()), filepath.Base(tempDir))
}

func TestExecuteLocal_StderrOutput(t *testing.T) {
	var stdout, stderr bytes.Buffer

	exitCode, err := ExecuteLocal(context.Background(), "echo error >&2", "", &stdout, &stderr)

	require.NoError(t, err)
	assert.Equal(t, 0, exitCode)
	assert.Empty(t, stdout.String())
	assert.Equal(t, "error\n", stderr.String())
}

func TestExecuteLocal_CommandNotFound(t *testing.T) {
	var stdout, stderr bytes.Buffer

	exitCode, err := ExecuteLocal(context.Background(), "this_command_does_not_exist_xyz123", "", &stdout, &stderr)

	require.NoError(t, err)
	assert.NotEqual(t, 0, exitCode) // 127 on most shells
}

func TestExecuteLocal_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	exitCode, err := ExecuteLocal(ctx, "echo never", "", nil, nil)

	assert.Error(t, err)
	assert.Equal(t, -1, exitCode)
}

func TestExecuteLocalEnv(t *testing.T) {
	tests := []struct {
		name string
		env  []string
		want string
	}{
		{name: "adds variable", env: []string{"FRCOPY_TEST_SECRET=s3cr$et"}, want: "s3cr$et\n"},
		{name: "no extra variables", env: nil, want: "\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("FRCOPY_TEST_SECRET", "")
			var stdout, stderr bytes.Buffer

			exitCode, err := ExecuteLocalEnv(context.Background(), `echo "$FRCOPY_TEST_SECRET"`, "", tt.env, &stdout, &stderr)

			require.NoError(t, err)
			assert.Equal(t, 0, exitCode)
			assert.Equal(t, tt.want, stdout.String())
		})
	}
}
