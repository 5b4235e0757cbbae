package domain

import (
	"path/filepath"

	"go.trai.ch/zerr"
)

// Settings configures a generator run. Fields are read from the environment
// and may be overridden by command-line flags.
type Settings struct {
	ConfigPath string `env:"OPENCAS_CONFIG_FILE"    envDefault:"/etc/opencas/opencas.conf"`
	KmsgPath   string `env:"OPENCAS_GENERATOR_KMSG" envDefault:"/dev/kmsg"`
	CasadmPath string `env:"OPENCAS_CASADM"         envDefault:"/usr/sbin/casadm"`
	MaxCaches  int    `env:"OPENCAS_MAX_CACHES"     envDefault:"50"`
	MaxCores   int    `env:"OPENCAS_MAX_CORES"      envDefault:"600"`
}

// DefaultSettings returns the settings used when the environment sets nothing.
func DefaultSettings() Settings {
	return Settings{
		ConfigPath: DefaultConfigPath,
		KmsgPath:   DefaultKmsgPath,
		CasadmPath: DefaultCasadmPath,
		MaxCaches:  DefaultMaxCaches,
		MaxCores:   DefaultMaxCores,
	}
}

// Limits returns the record capacity implied by the settings.
func (s Settings) Limits() Limits {
	return Limits{MaxCaches: s.MaxCaches, MaxCores: s.MaxCores}
}

// Validate checks the settings. The configuration path may be relative so that
// files outside /etc can be rendered or inspected.
func (s Settings) Validate() error {
	switch {
	case s.ConfigPath == "":
		return zerr.Wrap(ErrInvalidSettings, "configuration path is empty")
	case !filepath.IsAbs(s.KmsgPath):
		return zerr.With(zerr.Wrap(ErrInvalidSettings, "kernel log path must be absolute"), "path", s.KmsgPath)
	case !filepath.IsAbs(s.CasadmPath):
		return zerr.With(zerr.Wrap(ErrInvalidSettings, "casadm path must be absolute"), "path", s.CasadmPath)
	case s.MaxCaches <= 0:
		return zerr.With(zerr.Wrap(ErrInvalidSettings, "cache limit must be positive"), "limit", s.MaxCaches)
	case s.MaxCores <= 0:
		return zerr.With(zerr.Wrap(ErrInvalidSettings, "core device limit must be positive"), "limit", s.MaxCores)
	}
	return nil
}
