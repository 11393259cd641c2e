package cli

import (
	"github.com/spf13/cobra"

	"github.com/hexforge/hexforge/pkg/gridio"
)

func newRenderCmd() *cobra.Command {
	var (
		flagOut    string
		flagFormat string
		flagLabels bool
	)

	cmd := &cobra.Command{
		Use:   "render <grid.json>",
		Short: "Render a previously saved grid file",
		Long: `Render reads a grid JSON file written by the build command and re-emits
it as SVG or ASCII without rebuilding the grid.`,
		Example: `  hexforge render board.json --format svg -o board.svg
  hexforge render board.json --format ascii`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			if err := checkFormat(flagFormat); err != nil {
				return err
			}
			ctl, err := gridio.ReadGridFile(args[0])
			if err != nil {
				return err
			}
			logger.Debug("grid loaded", "file", args[0], "hexagons", ctl.Grid.Len())

			if err := emit(ctl, flagFormat, flagOut, flagLabels); err != nil {
				return err
			}
			if flagOut != "" {
				printSuccess("Wrote %s (%d hexagons)", flagOut, ctl.Grid.Len())
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&flagOut, "out", "o", "", "output file (default stdout)")
	cmd.Flags().StringVarP(&flagFormat, "format", "f", "svg", "output format: json, svg or ascii")
	cmd.Flags().BoolVar(&flagLabels, "labels", false, "label SVG hexagons with their coordinates")

	return cmd
}
