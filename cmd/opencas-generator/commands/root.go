// Package commands implements the CLI commands for opencas-generator.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/casgen/internal/app"
	"go.trai.ch/casgen/internal/build"
	"go.trai.ch/casgen/internal/core/domain"
)

// CLI represents the command line interface for opencas-generator.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Generate(ctx context.Context, dir string, opts app.Options) (*domain.Report, error)
	Render(ctx context.Context, opts app.Options, w io.Writer) error
	Inspect(opts app.Options, w io.Writer) error
	SetVerbose(verbose bool)
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	c := &CLI{app: a}

	rootCmd := &cobra.Command{
		Use:   domain.GeneratorName + " [flags] <normal-dir> <early-dir> <late-dir>",
		Short: "Generate activation units for Open CAS cached volumes",
		Long: `Reads the Open CAS configuration and writes one activation unit per core
device into the normal-priority output directory, linking each unit into the
requirement groups of its cached volume and of the local or remote activation
target. The early and late directories are accepted but not used.`,
		Args:          cobra.ExactArgs(3),
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := c.options(cmd)
			_, err := c.app.Generate(cmd.Context(), args[0], opts)
			return err
		},
	}

	// Registered before the version flag so that -v stays with --verbose.
	flags := rootCmd.PersistentFlags()
	flags.StringP("config", "c", "", "Configuration file (overrides OPENCAS_CONFIG_FILE)")
	flags.String("casadm", "", "Administration tool invoked by the units (overrides OPENCAS_CASADM)")
	flags.BoolP("verbose", "v", false, "Print informational messages to stderr")

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c.rootCmd = rootCmd

	rootCmd.AddCommand(c.newRenderCmd())
	rootCmd.AddCommand(c.newInspectCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

// options reads the shared flags and applies the verbosity to the app.
func (c *CLI) options(cmd *cobra.Command) app.Options {
	configPath, _ := cmd.Flags().GetString("config")
	casadm, _ := cmd.Flags().GetString("casadm")
	verbose, _ := cmd.Flags().GetBool("verbose")

	c.app.SetVerbose(verbose)

	return app.Options{
		ConfigPath: configPath,
		CasadmPath: casadm,
	}
}
