package domain

const (
	// GeneratorName is the tag prefixed to every kernel log line.
	GeneratorName = "opencas-generator"

	// DefaultConfigPath is the location of the cache configuration file.
	DefaultConfigPath = "/etc/opencas/opencas.conf"

	// DefaultKmsgPath is the kernel log device.
	DefaultKmsgPath = "/dev/kmsg"

	// DefaultCasadmPath is the cache administration tool invoked by generated units.
	DefaultCasadmPath = "/usr/sbin/casadm"

	// DefaultMaxCaches bounds the number of cache records in one configuration.
	DefaultMaxCaches = 50

	// DefaultMaxCores bounds the number of core device records in one configuration.
	DefaultMaxCores = 600

	// LocalActivationTarget groups the units of local core devices.
	LocalActivationTarget = "opencas.target"

	// RemoteActivationTarget groups the units of network core devices.
	RemoteActivationTarget = "remote-opencas.target"

	// LocalFSPreTarget is ordered after the units of local core devices.
	LocalFSPreTarget = "local-fs-pre.target"

	// RemoteFSPreTarget is ordered after the units of network core devices.
	RemoteFSPreTarget = "remote-fs-pre.target"

	// RequiresSuffix names the requirement-group directory of a unit.
	RequiresSuffix = ".requires"

	// DirPerm is the permission for requirement-group directories (rwxr-xr-x).
	DirPerm = 0o755

	// FilePerm is the permission for generated unit files (rw-r--r--).
	FilePerm = 0o644
)
