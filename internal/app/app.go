// Package app implements the application layer for opencas-generator.
package app

import (
	"context"
	"fmt"
	"io"

	"go.trai.ch/casgen/internal/core/domain"
	"go.trai.ch/casgen/internal/core/ports"
	"go.trai.ch/casgen/internal/engine/generator"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	generator    *generator.Generator
	outputs      ports.OutputFactory
	exporter     ports.TopologyExporter
	logger       ports.Logger
	settings     domain.Settings
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	gen *generator.Generator,
	outputs ports.OutputFactory,
	exporter ports.TopologyExporter,
	log ports.Logger,
	settings domain.Settings,
) *App {
	return &App{
		configLoader: loader,
		generator:    gen,
		outputs:      outputs,
		exporter:     exporter,
		logger:       log,
		settings:     settings,
	}
}

// Options overrides settings for a single invocation. Empty fields keep the
// values from the environment.
type Options struct {
	ConfigPath string
	CasadmPath string
}

// SetVerbose switches the interactive log output between warnings and informational messages.
func (a *App) SetVerbose(verbose bool) {
	if v, ok := a.logger.(interface{ SetVerbose(bool) }); ok {
		v.SetVerbose(verbose)
	}
}

// Generate writes the activation units for the configuration into dir, the
// generator's normal-priority output directory.
func (a *App) Generate(ctx context.Context, dir string, opts Options) (*domain.Report, error) {
	topo, err := a.load(opts)
	if err != nil {
		return nil, err
	}

	out, err := a.outputs.Open(dir)
	if err != nil {
		return nil, err
	}

	report, err := a.generator.Run(ctx, a.job(topo, out, opts))
	if err != nil {
		return nil, err
	}

	a.logger.Info(fmt.Sprintf("generated %d units from %s", len(report.Units), topo.Source()))
	if report.LinkFailures > 0 {
		a.logger.Warn(fmt.Sprintf("%d requirement links could not be created", report.LinkFailures))
	}
	return report, nil
}

// Render runs the generator against an in-memory destination and prints every
// produced file and symlink to w, followed by the content digest.
func (a *App) Render(ctx context.Context, opts Options, w io.Writer) error {
	topo, err := a.load(opts)
	if err != nil {
		return err
	}

	out := a.outputs.InMemory()
	report, err := a.generator.Run(ctx, a.job(topo, out, opts))
	if err != nil {
		return err
	}

	artifacts, err := out.Snapshot()
	if err != nil {
		return err
	}

	for _, art := range artifacts {
		if art.IsLink {
			_, _ = fmt.Fprintf(w, "==> %s -> %s\n", art.Path, art.LinkTarget)
			continue
		}
		_, _ = fmt.Fprintf(w, "==> %s\n%s\n", art.Path, art.Content)
	}
	_, err = fmt.Fprintf(w, "digest: %s\n", report.Digest)
	return err
}

// Inspect validates the configuration and writes the resolved topology to w as YAML.
func (a *App) Inspect(opts Options, w io.Writer) error {
	topo, err := a.load(opts)
	if err != nil {
		return err
	}

	cores := topo.Cores()
	bindings := make([]domain.Binding, 0, len(cores))
	for _, core := range cores {
		cache, err := topo.Resolve(core)
		if err != nil {
			return err
		}
		b, err := domain.NewBinding(cache, core)
		if err != nil {
			return zerr.With(zerr.With(err, "cache_id", core.CacheID), "core_id", core.CoreID)
		}
		bindings = append(bindings, b)
	}

	data, err := a.exporter.Export(topo, bindings)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

func (a *App) load(opts Options) (*domain.Topology, error) {
	path := a.settings.ConfigPath
	if opts.ConfigPath != "" {
		path = opts.ConfigPath
	}
	return a.configLoader.Load(path, a.settings.Limits())
}

func (a *App) job(topo *domain.Topology, out ports.Output, opts Options) generator.Job {
	casadm := a.settings.CasadmPath
	if opts.CasadmPath != "" {
		casadm = opts.CasadmPath
	}
	return generator.Job{Topology: topo, Output: out, CasadmPath: casadm}
}
