package config

import "fmt"

// CurrentConfigVersion is the schema version for deploy profiles.
const CurrentConfigVersion = 1

// DeployEnvironmentEnv is the variable that selects the active deploy profile.
const DeployEnvironmentEnv = "DEPLOY_ENVIRONMENT"

// DefaultEnvironment is used when no deploy environment has been chosen.
const DefaultEnvironment = "production"

// ProviderDomain is the domain that hosts the deploy endpoints.
const ProviderDomain = "frbit.com"

// DeployConfig is the deploy profile of one App in one environment.
type DeployConfig struct {
	Version int `yaml:"version" mapstructure:"version"`

	// Name is the App name on the provider.
	Name string `yaml:"name" mapstructure:"name"`

	// SSHUrl is the deploy endpoint, <name>@deploy.<region>.frbit.com.
	SSHUrl string `yaml:"ssh_url" mapstructure:"ssh_url"`

	// GitRemote is the remote branch used for git deployments.
	GitRemote string `yaml:"git_remote" mapstructure:"git_remote"`

	Sync SyncConfig `yaml:"sync" mapstructure:"sync"`
	DB   DBConfig   `yaml:"db" mapstructure:"db"`
}

// SyncConfig controls how code is pushed by 'code up'.
type SyncConfig struct {
	// Exclude patterns for files/dirs not sent to remote (rsync syntax).
	Exclude []string `yaml:"exclude" mapstructure:"exclude"`
}

// DBConfig controls how the database is pushed by 'db up'.
type DBConfig struct {
	// DumpPath is where the local SQL dump is written, relative to the project.
	DumpPath string `yaml:"dump_path" mapstructure:"dump_path"`
}

// SSHUrl derives the deploy endpoint for an App in a region.
func SSHUrl(name, region string) string {
	return fmt.Sprintf("%s@deploy.%s.%s", name, region, ProviderDomain)
}

// GitRemote derives the git remote branch for an App.
func GitRemote(name string) string {
	return name + "/master"
}

// NewDeployConfig builds the deploy profile for a validated App name and a
// resolved region. Everything but the name and region is a default.
func NewDeployConfig(name, region string) *DeployConfig {
	cfg := DefaultDeployConfig()
	cfg.Name = name
	cfg.SSHUrl = SSHUrl(name, region)
	cfg.GitRemote = GitRemote(name)
	return cfg
}

// DefaultDeployConfig returns a profile with defaults and no App.
func DefaultDeployConfig() *DeployConfig {
	return &DeployConfig{
		Version: CurrentConfigVersion,
		Sync: SyncConfig{
			Exclude: []string{
				".git",
				".env",
				"node_modules",
				"storage/runtime",
			},
		},
		DB: DBConfig{
			DumpPath: "storage/frcopy-dump.sql",
		},
	}
}
