// Package generator implements the activation pipeline: it resolves every core
// device against its cache, writes the unit descriptor and links it into the
// requirement groups the init system scans at boot.
package generator

import (
	"context"
	"fmt"

	"go.trai.ch/casgen/internal/core/domain"
	"go.trai.ch/casgen/internal/core/ports"
	"go.trai.ch/zerr"
)

// Job describes one generation run.
type Job struct {
	Topology   *domain.Topology
	Output     ports.Output
	CasadmPath string
}

// Generator writes activation units for a topology.
type Generator struct {
	logger ports.Logger
	hasher ports.Hasher
}

// New creates a new Generator.
func New(logger ports.Logger, hasher ports.Hasher) *Generator {
	return &Generator{
		logger: logger,
		hasher: hasher,
	}
}

// Run processes the core devices in declaration order. Resolution, policy and unit
// write failures abort the run at the device where they occur; units written for
// earlier devices stay in place. Link failures are only reported.
func (g *Generator) Run(ctx context.Context, job Job) (*domain.Report, error) {
	for _, id := range job.Topology.DuplicateCacheIDs() {
		g.logger.Warn(fmt.Sprintf("cache id %d is declared more than once, using the first declaration", id))
	}

	report := &domain.Report{}
	var digests []byte

	for _, core := range job.Topology.Cores() {
		if err := ctx.Err(); err != nil {
			return nil, zerr.Wrap(err, "generation interrupted")
		}

		unit, failures, err := g.generate(job, core)
		if err != nil {
			return nil, err
		}

		report.Units = append(report.Units, unit)
		report.LinkFailures += failures
		digests = fmt.Appendf(digests, "%s\x00%s\x00", unit.Name, unit.Digest)
	}

	report.Digest = g.hasher.Sum(digests)
	return report, nil
}

func (g *Generator) generate(job Job, core domain.CoreDevice) (domain.GeneratedUnit, int, error) {
	cache, err := job.Topology.Resolve(core)
	if err != nil {
		return domain.GeneratedUnit{}, 0, err
	}

	b, err := domain.NewBinding(cache, core)
	if err != nil {
		return domain.GeneratedUnit{}, 0, zerr.With(zerr.With(err, "cache_id", core.CacheID), "core_id", core.CoreID)
	}

	text, err := RenderUnit(b, job.Topology.Source(), job.CasadmPath)
	if err != nil {
		return domain.GeneratedUnit{}, 0, err
	}

	if err := job.Output.WriteFile(b.UnitName(), text); err != nil {
		return domain.GeneratedUnit{}, 0, err
	}
	g.logger.Info("generated " + b.UnitName())

	links, failures := g.link(job.Output, b)

	return domain.GeneratedUnit{
		Name:   b.UnitName(),
		Target: b.ActivationTarget(),
		Links:  links,
		Digest: g.hasher.Sum(text),
	}, failures, nil
}
