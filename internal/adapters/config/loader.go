// Package config provides the configuration loader for the activation generator.
package config

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"go.trai.ch/casgen/internal/core/domain"
	"go.trai.ch/casgen/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ConfigLoader = (*Loader)(nil)

const (
	cachesHeader = "[caches]"
	coresHeader  = "[cores]"

	// maxLineSize bounds a single configuration line.
	maxLineSize = 1 << 20
)

// section is the parser state. Only an exact header line changes it.
type section int

const (
	sectionProlog section = iota
	sectionCaches
	sectionCores
)

// Loader implements ports.ConfigLoader for the opencas.conf format.
type Loader struct {
	fs FileSystem
}

// NewLoader creates a new Loader reading through fsys.
func NewLoader(fsys FileSystem) *Loader {
	return &Loader{fs: fsys}
}

// Load reads the configuration file at path. Lines before the first section header
// are ignored. References between cores and caches are left to the caller.
func (l *Loader) Load(path string, limits domain.Limits) (*domain.Topology, error) {
	f, err := l.fs.Open(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigOpenFailed.Error()), "path", path)
	}
	defer f.Close() //nolint:errcheck // read-only file

	topo := domain.NewTopology(path, limits)
	state := sectionProlog

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 4096), maxLineSize)

	lineNo := 0
	for scanner.Scan() {
		lineNo++

		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		switch {
		case line == cachesHeader:
			state = sectionCaches
			continue
		case line == coresHeader:
			state = sectionCores
			continue
		}

		switch state {
		case sectionProlog:
			continue
		case sectionCaches:
			err = parseCache(topo, line)
		case sectionCores:
			err = parseCore(topo, line)
		}
		if err != nil {
			return nil, zerr.With(zerr.With(err, "path", path), "line", lineNo)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	return topo, nil
}

// parseCache handles "<id> <device> [mode] [options]".
func parseCache(topo *domain.Topology, line string) error {
	fields := splitFields(line)
	if len(fields) < 2 {
		return zerr.With(zerr.Wrap(domain.ErrMalformedRecord, "cache record needs an id and a device"), "record", line)
	}

	id, err := parseID("cache id", fields[0])
	if err != nil {
		return err
	}

	c := domain.Cache{ID: id, Device: fields[1]}
	if len(fields) > 2 {
		c.Mode = fields[2]
	}
	if len(fields) > 3 {
		c.Network = domain.HasNetworkOption(fields[3])
	}
	return topo.AddCache(c)
}

// parseCore handles "<cache-id> <core-id> <device> [options]".
func parseCore(topo *domain.Topology, line string) error {
	fields := splitFields(line)
	if len(fields) < 3 {
		return zerr.With(zerr.Wrap(domain.ErrMalformedRecord, "core record needs a cache id, a core id and a device"), "record", line)
	}

	cacheID, err := parseID("cache id", fields[0])
	if err != nil {
		return err
	}
	coreID, err := parseID("core id", fields[1])
	if err != nil {
		return err
	}

	d := domain.CoreDevice{CacheID: cacheID, CoreID: coreID, Device: fields[2]}
	if len(fields) > 3 {
		d.Network = domain.HasNetworkOption(fields[3])
	}
	return topo.AddCore(d)
}

func splitFields(line string) []string {
	return strings.FieldsFunc(line, func(r rune) bool { return r == ' ' || r == '\t' })
}

func parseID(field, raw string) (int, error) {
	id, err := strconv.Atoi(raw)
	if err != nil || id < 0 {
		return 0, zerr.With(zerr.Wrap(domain.ErrInvalidID, fmt.Sprintf("%s %q is not a non-negative integer", field, raw)), "field", field)
	}
	return id, nil
}
