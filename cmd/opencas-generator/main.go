// Package main is the entry point for the Open CAS activation generator.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/casgen/cmd/opencas-generator/commands"
	"go.trai.ch/casgen/internal/adapters/logger"
	"go.trai.ch/casgen/internal/app"
	"go.trai.ch/casgen/internal/core/domain"
	"go.trai.ch/casgen/internal/core/ports"
	_ "go.trai.ch/casgen/internal/wiring"
)

// ComponentProvider is a function that returns the application components.
// Human-readable log output goes to stderr.
type ComponentProvider func(ctx context.Context, stderr io.Writer) (*app.Components, func(), error)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stderr, provideComponents))
}

func provideComponents(ctx context.Context, stderr io.Writer) (*app.Components, func(), error) {
	// The graph is resolved once per run; a cached logger would keep the
	// writer of an earlier run.
	c, _, err := graft.ExecuteFor[*app.Components](ctx,
		graft.Patch[ports.Logger](logger.NewNode(stderr)),
		graft.DisableCache(),
	)
	if err != nil {
		return nil, nil, err
	}
	return c, func() { _ = c.Close() }, nil
}

func run(
	ctx context.Context,
	args []string,
	stderr io.Writer,
	provider ComponentProvider,
) int {
	// 0. Context with signal handling
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// 1. Initialize application components
	components, cleanup, err := provider(ctx, stderr)
	if err != nil {
		// Logger is not available yet if initialization failed
		_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
		return 1
	}
	defer cleanup()

	// 2. Interface - CLI
	cli := commands.New(components.App)
	cli.SetArgs(args)
	cli.SetOutput(os.Stdout, stderr)

	// 3. Execution
	if err := cli.Execute(ctx); err != nil {
		components.Logger.Error(err)
		components.Logger.Error(domain.ErrGeneratorFailed)
		return 1
	}
	return 0
}
