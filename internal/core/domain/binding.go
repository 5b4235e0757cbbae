package domain

import (
	"fmt"
	"strconv"
)

// Binding is a validated (core device, cache) pair together with the escaped
// names every generated artifact is derived from.
type Binding struct {
	Cache Cache
	Core  CoreDevice

	// CacheDevice and CoreDevice are the escaped device unit names, without ".device".
	CacheDevice string
	CoreDevice  string

	// Pair is the escaped name of the exported volume /dev/opencas<cache>-<core>.
	Pair string
}

// NewBinding computes the escaped names for a resolved pair. It fails before any
// output exists when either device path is not absolute.
func NewBinding(cache Cache, core CoreDevice) (Binding, error) {
	cacheDev, err := EscapeDevicePath(cache.Device)
	if err != nil {
		return Binding{}, err
	}
	coreDev, err := EscapeDevicePath(core.Device)
	if err != nil {
		return Binding{}, err
	}
	pair, err := EscapeDevicePath(VolumePath(core.CacheID, core.CoreID))
	if err != nil {
		return Binding{}, err
	}

	return Binding{
		Cache:       cache,
		Core:        core,
		CacheDevice: cacheDev,
		CoreDevice:  coreDev,
		Pair:        pair,
	}, nil
}

// VolumePath returns the block device the cache exposes for a core device.
func VolumePath(cacheID, coreID int) string {
	return fmt.Sprintf("/dev/opencas%d-%d", cacheID, coreID)
}

// UnitName is the file name of the generated unit.
func (b Binding) UnitName() string {
	return "opencas@opencas" + strconv.Itoa(b.Core.CacheID) + "-" + strconv.Itoa(b.Core.CoreID) + ".service"
}

// PairTarget is the per-volume aggregation target ordered after the unit.
func (b Binding) PairTarget() string {
	return "blockdev@" + b.Pair + ".target"
}

// DeviceRequiresDir is the requirement group pulled in when the volume device appears.
func (b Binding) DeviceRequiresDir() string {
	return b.Pair + ".device" + RequiresSuffix
}

// ActivationTarget is the global cache activation target the unit belongs to.
func (b Binding) ActivationTarget() string {
	if b.Core.Network {
		return RemoteActivationTarget
	}
	return LocalActivationTarget
}

// FSPreTarget is the filesystem preparation target ordered after the unit.
func (b Binding) FSPreTarget() string {
	if b.Core.Network {
		return RemoteFSPreTarget
	}
	return LocalFSPreTarget
}

// TargetRequiresDir is the requirement group of the activation target.
func (b Binding) TargetRequiresDir() string {
	return b.ActivationTarget() + RequiresSuffix
}

// LinkTarget is the relative symlink target placed inside a requirement group.
func (b Binding) LinkTarget() string {
	return "../" + b.UnitName()
}
