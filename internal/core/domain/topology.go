// Package domain contains the core records and rules of the cache activation generator.
package domain

import (
	"fmt"
	"slices"

	"go.trai.ch/zerr"
)

// Limits bounds the number of records a Topology accepts. A zero field means unbounded.
type Limits struct {
	MaxCaches int
	MaxCores  int
}

// Topology owns the caches and core devices read from one configuration file,
// in the order they were declared.
type Topology struct {
	source string
	limits Limits
	caches []Cache
	cores  []CoreDevice
}

// NewTopology creates an empty Topology for the configuration file at source.
func NewTopology(source string, limits Limits) *Topology {
	return &Topology{
		source: source,
		limits: limits,
	}
}

// Source returns the path of the configuration file the topology was read from.
func (t *Topology) Source() string {
	return t.source
}

// AddCache appends a cache record. Id uniqueness is not enforced here.
func (t *Topology) AddCache(c Cache) error {
	if t.limits.MaxCaches > 0 && len(t.caches) >= t.limits.MaxCaches {
		err := zerr.Wrap(ErrTooManyCaches, fmt.Sprintf("cannot add cache %d", c.ID))
		return zerr.With(err, "limit", t.limits.MaxCaches)
	}
	t.caches = append(t.caches, c)
	return nil
}

// AddCore appends a core device record. The referenced cache is not checked here.
func (t *Topology) AddCore(d CoreDevice) error {
	if t.limits.MaxCores > 0 && len(t.cores) >= t.limits.MaxCores {
		err := zerr.Wrap(ErrTooManyCores, fmt.Sprintf("cannot add core device %d of cache %d", d.CoreID, d.CacheID))
		return zerr.With(err, "limit", t.limits.MaxCores)
	}
	t.cores = append(t.cores, d)
	return nil
}

// Caches returns the cache records in declaration order.
func (t *Topology) Caches() []Cache {
	return slices.Clone(t.caches)
}

// Cores returns the core device records in declaration order.
func (t *Topology) Cores() []CoreDevice {
	return slices.Clone(t.cores)
}

// LookupCache returns the first cache declared with the given id.
func (t *Topology) LookupCache(id int) (Cache, bool) {
	i := slices.IndexFunc(t.caches, func(c Cache) bool { return c.ID == id })
	if i < 0 {
		return Cache{}, false
	}
	return t.caches[i], true
}

// DuplicateCacheIDs returns every cache id declared more than once, in first-seen order.
func (t *Topology) DuplicateCacheIDs() []int {
	seen := make(map[int]int, len(t.caches))
	var dups []int
	for _, c := range t.caches {
		seen[c.ID]++
		if seen[c.ID] == 2 {
			dups = append(dups, c.ID)
		}
	}
	return dups
}

// Resolve finds the cache backing the core device and enforces the network-locality
// policy: a local core device must not depend on a network cache.
func (t *Topology) Resolve(core CoreDevice) (Cache, error) {
	cache, ok := t.LookupCache(core.CacheID)
	if !ok {
		err := zerr.Wrap(ErrCacheNotFound, fmt.Sprintf(
			"core device with id %d points to non-existing cache with id %d", core.CoreID, core.CacheID))
		err = zerr.With(err, "cache_id", core.CacheID)
		return Cache{}, zerr.With(err, "core_id", core.CoreID)
	}

	if cache.Network && !core.Network {
		err := zerr.Wrap(ErrNetworkPolicyViolation, fmt.Sprintf(
			"a non-remote core device %d depends on cache (%d) with _netdev option", core.CoreID, cache.ID))
		err = zerr.With(err, "cache_id", cache.ID)
		return Cache{}, zerr.With(err, "core_id", core.CoreID)
	}

	return cache, nil
}
