package domain

import "go.trai.ch/zerr"

var (
	// ErrConfigOpenFailed is returned when the configuration file cannot be opened.
	ErrConfigOpenFailed = zerr.New("cannot open configuration file")

	// ErrConfigReadFailed is returned when reading the configuration file fails midway.
	ErrConfigReadFailed = zerr.New("failed to read configuration file")

	// ErrMalformedRecord is returned when a cache or core record has fewer fields than required.
	ErrMalformedRecord = zerr.New("malformed configuration record")

	// ErrInvalidID is returned when a cache or core id is not a non-negative integer.
	ErrInvalidID = zerr.New("invalid numeric id")

	// ErrTooManyCaches is returned when the configuration declares more caches than allowed.
	ErrTooManyCaches = zerr.New("too many caches")

	// ErrTooManyCores is returned when the configuration declares more core devices than allowed.
	ErrTooManyCores = zerr.New("too many core devices")

	// ErrCacheNotFound is returned when a core device points to a cache id that is not configured.
	ErrCacheNotFound = zerr.New("core device points to non-existing cache")

	// ErrNetworkPolicyViolation is returned when a local core device depends on a network cache.
	ErrNetworkPolicyViolation = zerr.New("non-remote core device depends on cache with _netdev option")

	// ErrDevicePathNotAbsolute is returned when a device path does not start with '/'.
	ErrDevicePathNotAbsolute = zerr.New("device path does not start with '/'")

	// ErrOutputDirMissing is returned when the generator destination is not an existing directory.
	ErrOutputDirMissing = zerr.New("destination directory does not exist")

	// ErrUnitCreateFailed is returned when a unit file cannot be created.
	ErrUnitCreateFailed = zerr.New("unable to create unit file")

	// ErrUnitWriteFailed is returned when a unit file cannot be fully written.
	ErrUnitWriteFailed = zerr.New("failed to write unit file")

	// ErrUnitRenderFailed is returned when a unit descriptor cannot be rendered.
	ErrUnitRenderFailed = zerr.New("failed to render unit descriptor")

	// ErrRequiresDirFailed is returned when a requirement-group directory cannot be created.
	ErrRequiresDirFailed = zerr.New("cannot create dir")

	// ErrSymlinkFailed is returned when a requirement-group symlink cannot be created.
	ErrSymlinkFailed = zerr.New("cannot create symlink")

	// ErrSettingsParseFailed is returned when the generator settings cannot be read from the environment.
	ErrSettingsParseFailed = zerr.New("failed to parse generator settings")

	// ErrInvalidSettings is returned when the generator settings are inconsistent.
	ErrInvalidSettings = zerr.New("invalid generator settings")

	// ErrExportFailed is returned when the resolved topology cannot be serialized.
	ErrExportFailed = zerr.New("failed to export topology")

	// ErrGeneratorFailed is the final error reported when a generation run aborts.
	ErrGeneratorFailed = zerr.New("activation generator failed")
)
