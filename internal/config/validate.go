package config

import (
	"fmt"
	"unicode/utf8"

	"github.com/frcopy/frcopy/internal/errors"
)

const (
	// MinAppNameLength is the shortest App name the provider accepts.
	MinAppNameLength = 3
	// MaxAppNameLength is the longest App name the provider accepts.
	MaxAppNameLength = 16
)

// ValidateAppName checks the App name length in characters. It does no I/O.
func ValidateAppName(name string) error {
	n := utf8.RuneCountInString(name)
	if n < MinAppNameLength || n > MaxAppNameLength {
		return errors.New(errors.ErrInput,
			"Invalid App name.",
			fmt.Sprintf("App names are %d to %d characters long", MinAppNameLength, MaxAppNameLength))
	}
	return nil
}

// Validate checks a loaded profile for missing fields.
func Validate(cfg *DeployConfig) error {
	if cfg.Version > CurrentConfigVersion {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("This deploy config is from the future (version %d, but frcopy only knows up to %d)", cfg.Version, CurrentConfigVersion),
			"Update frcopy to the latest release")
	}
	if err := ValidateAppName(cfg.Name); err != nil {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Deploy config has an invalid App name '%s'", cfg.Name),
			"Run 'frcopy setup' to recreate it")
	}
	if cfg.SSHUrl == "" {
		return errors.New(errors.ErrConfig,
			"Deploy config has no ssh_url",
			"Run 'frcopy setup' to recreate it")
	}
	return nil
}
