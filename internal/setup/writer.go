package setup

import (
	"github.com/frcopy/frcopy/internal/config"
)

// WriteDeployConfig builds the profile for app in region, persists it as the
// profile of env and exports env as the active deploy environment for the
// rest of the process and for later runs via .env.
func WriteDeployConfig(store config.Store, dir, app, region, env string) (*config.DeployConfig, error) {
	cfg := config.NewDeployConfig(app, region)

	store.SetDeployEnvironment(env)
	if err := store.Persist(cfg); err != nil {
		return nil, err
	}

	if err := config.ExportEnv(dir, config.DeployEnvironmentEnv, env); err != nil {
		return nil, err
	}

	return cfg, nil
}
