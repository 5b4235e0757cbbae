package config

import (
	"bytes"

	"go.trai.ch/casgen/internal/core/domain"
	"go.trai.ch/casgen/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.TopologyExporter = (*YAMLExporter)(nil)

// YAMLExporter implements ports.TopologyExporter.
type YAMLExporter struct{}

// NewYAMLExporter creates a new YAMLExporter.
func NewYAMLExporter() *YAMLExporter {
	return &YAMLExporter{}
}

// Export renders the topology and the bindings resolved from it as YAML.
func (e *YAMLExporter) Export(topo *domain.Topology, bindings []domain.Binding) ([]byte, error) {
	dto := TopologyDTO{
		Source: topo.Source(),
		Caches: make([]CacheDTO, 0, len(topo.Caches())),
		Cores:  make([]CoreDTO, 0, len(bindings)),
	}

	for _, c := range topo.Caches() {
		dto.Caches = append(dto.Caches, CacheDTO{
			ID:      c.ID,
			Device:  c.Device,
			Mode:    c.Mode,
			Network: c.Network,
		})
	}

	for _, b := range bindings {
		dto.Cores = append(dto.Cores, CoreDTO{
			CacheID:    b.Core.CacheID,
			CoreID:     b.Core.CoreID,
			Device:     b.Core.Device,
			Network:    b.Core.Network,
			Unit:       b.UnitName(),
			Target:     b.ActivationTarget(),
			Before:     []string{b.PairTarget(), b.ActivationTarget(), b.FSPreTarget()},
			BindsTo:    []string{b.CacheDevice + ".device", b.CoreDevice + ".device"},
			RequiredBy: []string{b.DeviceRequiresDir(), b.TargetRequiresDir()},
		})
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(dto); err != nil {
		return nil, zerr.Wrap(err, domain.ErrExportFailed.Error())
	}
	if err := enc.Close(); err != nil {
		return nil, zerr.Wrap(err, domain.ErrExportFailed.Error())
	}
	return buf.Bytes(), nil
}
