package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/frcopy/frcopy/internal/errors"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Store persists deploy profiles, one per deploy environment.
type Store interface {
	// SetDeployEnvironment selects the environment Persist and Get work on.
	SetDeployEnvironment(name string)
	// DeployEnvironment returns the selected environment.
	DeployEnvironment() string
	// Persist writes cfg as the profile of the selected environment.
	Persist(cfg *DeployConfig) error
	// Get loads the profile of the selected environment.
	Get() (*DeployConfig, error)
}

// FileStore keeps profiles as .frcopy.<env>.yaml files in a project directory.
type FileStore struct {
	Dir string
	env string
}

// NewFileStore creates a store rooted at dir. The environment starts as
// DEPLOY_ENVIRONMENT, or production when unset.
func NewFileStore(dir string) *FileStore {
	env := os.Getenv(DeployEnvironmentEnv)
	if env == "" {
		env = DefaultEnvironment
	}
	return &FileStore{Dir: dir, env: env}
}

// ProfileFileName returns the file name of the profile for env.
func ProfileFileName(env string) string {
	return fmt.Sprintf(".frcopy.%s.yaml", env)
}

// SetDeployEnvironment selects the environment Persist and Get work on.
func (s *FileStore) SetDeployEnvironment(name string) {
	s.env = name
}

// DeployEnvironment returns the selected environment.
func (s *FileStore) DeployEnvironment() string {
	return s.env
}

// Path returns the profile path of the selected environment.
func (s *FileStore) Path() string {
	return filepath.Join(s.Dir, ProfileFileName(s.env))
}

// Persist writes cfg, replacing any existing profile for the environment.
func (s *FileStore) Persist(cfg *DeployConfig) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to generate deploy config",
			"This shouldn't happen - please report this bug")
	}

	header := fmt.Sprintf(`# frcopy deploy config for the '%s' environment
# Written by 'frcopy setup'. Used by 'frcopy code up' and 'frcopy db up'.

`, s.env)

	path := s.Path()
	if err := os.WriteFile(path, []byte(header+string(data)), 0644); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("Failed to write deploy config: %s", path),
			"Check directory permissions")
	}

	return nil
}

// Get loads the profile of the selected environment with defaults merged in.
func (s *FileStore) Get() (*DeployConfig, error) {
	path := s.Path()

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.WrapWithCode(err, errors.ErrConfig,
				fmt.Sprintf("No deploy config for the '%s' environment", s.env),
				"Run 'frcopy setup' to create one")
		}
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to read deploy config",
			"Check the file exists and is valid YAML: "+path)
	}

	cfg := &DeployConfig{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Invalid deploy config format",
			"Check the YAML syntax in "+path)
	}

	applyDefaults(cfg)

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyDefaults fills fields the profile left empty.
func applyDefaults(cfg *DeployConfig) {
	def := DefaultDeployConfig()
	if cfg.Version == 0 {
		cfg.Version = def.Version
	}
	if cfg.Sync.Exclude == nil {
		cfg.Sync.Exclude = def.Sync.Exclude
	}
	if cfg.DB.DumpPath == "" {
		cfg.DB.DumpPath = def.DB.DumpPath
	}
}
