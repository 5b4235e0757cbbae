// Package settings reads the generator settings from the environment.
package settings

import (
	"github.com/caarlos0/env/v11"
	"go.trai.ch/casgen/internal/core/domain"
	"go.trai.ch/zerr"
)

// Load reads the settings from the process environment.
func Load() (domain.Settings, error) {
	return validate(env.ParseAs[domain.Settings]())
}

// LoadFrom reads the settings from the given environment. Unset or empty
// variables fall back to their defaults.
func LoadFrom(environment map[string]string) (domain.Settings, error) {
	return validate(env.ParseAsWithOptions[domain.Settings](env.Options{Environment: environment}))
}

func validate(s domain.Settings, err error) (domain.Settings, error) {
	if err != nil {
		return domain.Settings{}, zerr.Wrap(err, domain.ErrSettingsParseFailed.Error())
	}
	if err := s.Validate(); err != nil {
		return domain.Settings{}, err
	}
	return s, nil
}
