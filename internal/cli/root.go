package cli

import (
	"context"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/hexforge/hexforge/pkg/buildinfo"
)

var (
	flagVerbose bool
	flagConfig  string
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hexforge",
		Short: "Assemble and render hexagonal tile grids",
		Long: `hexforge builds hexagonal tile grids from a shape, an orientation and
dimensions, and turns them into JSON, SVG or ASCII output.

Grids can be built one at a time from flags, in batches from a YAML board
spec, or on demand over HTTP with the serve command.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := log.InfoLevel
			if flagVerbose {
				level = log.DebugLevel
			}
			logger := newLogger(os.Stderr, level)
			cmd.SetContext(withLogger(cmd.Context(), logger))
		},
	}

	cmd.SetVersionTemplate(buildinfo.Template())

	cmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
	cmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to config file (default ./hexforge.toml)")

	cmd.AddCommand(newBuildCmd())
	cmd.AddCommand(newRenderCmd())
	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newCacheCmd())

	return cmd
}

// Execute runs the root command. It returns the error from the selected
// subcommand so main can map it to an exit code.
func Execute(ctx context.Context) error {
	cmd := newRootCmd()
	if err := cmd.ExecuteContext(ctx); err != nil {
		printError("%s", err)
		return err
	}
	return nil
}
