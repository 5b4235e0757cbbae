package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/casgen/internal/build"
	"go.trai.ch/casgen/internal/core/domain"
)

func (c *CLI) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the application version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s version %s (commit: %s, date: %s)\n",
				domain.GeneratorName, build.Version, build.Commit, build.Date)
		},
	}
}
