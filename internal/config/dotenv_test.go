package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetDotEnvVar_CreatesFile(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, SetDotEnvVar(dir, DeployEnvironmentEnv, "staging"))

	vars, err := ReadDotEnv(dir)
	require.NoError(t, err)
	assert.Equal(t, "staging", vars[DeployEnvironmentEnv])
}

func TestSetDotEnvVar_KeepsOtherKeys(t *testing.T) {
	dir := t.TempDir()
	existing := "DB_SERVER=localhost\nDB_USER=root\nDEPLOY_ENVIRONMENT=production\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, DotEnvFile), []byte(existing), 0644))

	require.NoError(t, SetDotEnvVar(dir, DeployEnvironmentEnv, "staging"))

	vars, err := ReadDotEnv(dir)
	require.NoError(t, err)
	assert.Equal(t, "localhost", vars["DB_SERVER"])
	assert.Equal(t, "root", vars["DB_USER"])
	assert.Equal(t, "staging", vars[DeployEnvironmentEnv])
}

func TestSetDotEnvVar_PreservesFileBytes(t *testing.T) {
	tests := []struct {
		name     string
		existing string
		want     string
	}{
		{
			name:     "appends missing key",
			existing: "# Craft environment\nENVIRONMENT=dev\nDB_PASSWORD=s3cr$et\nSITE_URL=${BASE}/site\n",
			want:     "# Craft environment\nENVIRONMENT=dev\nDB_PASSWORD=s3cr$et\nSITE_URL=${BASE}/site\nDEPLOY_ENVIRONMENT=\"staging\"\n",
		},
		{
			name:     "replaces existing key in place",
			existing: "# Craft environment\nDEPLOY_ENVIRONMENT=production\nSITE_URL=${BASE}/site\n",
			want:     "# Craft environment\nDEPLOY_ENVIRONMENT=\"staging\"\nSITE_URL=${BASE}/site\n",
		},
		{
			name:     "replaces exported key",
			existing: "export DEPLOY_ENVIRONMENT=production\n",
			want:     "DEPLOY_ENVIRONMENT=\"staging\"\n",
		},
		{
			name:     "adds newline before appending",
			existing: "ENVIRONMENT=dev",
			want:     "ENVIRONMENT=dev\nDEPLOY_ENVIRONMENT=\"staging\"\n",
		},
		{
			name:     "leaves similarly named keys alone",
			existing: "DEPLOY_ENVIRONMENT_OLD=x\n",
			want:     "DEPLOY_ENVIRONMENT_OLD=x\nDEPLOY_ENVIRONMENT=\"staging\"\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			path := filepath.Join(dir, DotEnvFile)
			require.NoError(t, os.WriteFile(path, []byte(tt.existing), 0644))

			require.NoError(t, SetDotEnvVar(dir, DeployEnvironmentEnv, "staging"))

			got, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestReadDotEnv_Missing(t *testing.T) {
	vars, err := ReadDotEnv(t.TempDir())

	require.NoError(t, err)
	assert.Empty(t, vars)
}

func TestExportEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(DeployEnvironmentEnv, "")

	require.NoError(t, ExportEnv(dir, DeployEnvironmentEnv, "staging-eu"))

	assert.Equal(t, "staging-eu", os.Getenv(DeployEnvironmentEnv))
	vars, err := ReadDotEnv(dir)
	require.NoError(t, err)
	assert.Equal(t, "staging-eu", vars[DeployEnvironmentEnv])
}

func TestLookupEnv(t *testing.T) {
	t.Setenv("FRCOPY_TEST_VAR", "from-process")

	assert.Equal(t, "from-file", LookupEnv(map[string]string{"FRCOPY_TEST_VAR": "from-file"}, "FRCOPY_TEST_VAR"))
	assert.Equal(t, "from-process", LookupEnv(map[string]string{}, "FRCOPY_TEST_VAR"))
}
