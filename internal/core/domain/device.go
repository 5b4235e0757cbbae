package domain

import "strings"

// NetworkOption is the mount-option marker that flags a device as network dependent.
const NetworkOption = "_netdev"

// Cache is a configured caching device identified by a numeric id.
type Cache struct {
	ID      int
	Device  string
	Mode    string
	Network bool
}

// CoreDevice is a block device attached to the cache identified by CacheID.
type CoreDevice struct {
	CacheID int
	CoreID  int
	Device  string
	Network bool
}

// HasNetworkOption reports whether the comma-separated option list contains NetworkOption.
// Empty elements are skipped, so ",,_netdev," still matches.
func HasNetworkOption(options string) bool {
	for opt := range strings.SplitSeq(options, ",") {
		if opt == NetworkOption {
			return true
		}
	}
	return false
}
