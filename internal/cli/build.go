package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/hexforge/hexforge/pkg/builder"
	"github.com/hexforge/hexforge/pkg/cache"
	"github.com/hexforge/hexforge/pkg/errors"
	"github.com/hexforge/hexforge/pkg/gridio"
	"github.com/hexforge/hexforge/pkg/hex"
	"github.com/hexforge/hexforge/pkg/layout"
	"github.com/hexforge/hexforge/pkg/observability"
	"github.com/hexforge/hexforge/pkg/render"
)

func newBuildCmd() *cobra.Command {
	var (
		flagShape       string
		flagOrientation string
		flagRadius      float64
		flagWidth       int
		flagHeight      int
		flagSpec        string
		flagOut         string
		flagFormat      string
		flagLabels      bool
		flagNoCache     bool
	)

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build a hexagonal grid and write it out",
		Long: `Build assembles a grid from a shape, orientation and dimensions, then
writes it in the requested format.

With --spec, a YAML board-spec file is built instead: every board in the
file is assembled and written to --out (a directory), named after the
board.`,
		Example: `  hexforge build --shape hexagon --width 5 --height 5
  hexforge build --shape rectangle --width 8 --height 6 --format svg -o board.svg
  hexforge build --spec boards.yaml -o out/`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			cfg, err := loadConfig(flagConfig)
			if err != nil {
				return err
			}
			if flagOrientation == "" {
				flagOrientation = cfg.Defaults.Orientation
			}
			if flagRadius == 0 {
				flagRadius = cfg.Defaults.Radius
			}
			if err := checkFormat(flagFormat); err != nil {
				return err
			}

			cacheCfg := cfg.Cache
			if flagNoCache {
				cacheCfg.Backend = "none"
			}
			store, err := openCache(ctx, cacheCfg)
			if err != nil {
				return err
			}
			defer store.Close()

			if flagSpec != "" {
				return runSpecBuild(ctx, store, cacheCfg.cacheTTL(), flagSpec, flagOut, flagFormat, flagLabels)
			}

			if flagShape == "" {
				return errors.New(errors.ErrCodeInvalidShape, "missing --shape (or use --spec)")
			}
			shape, err := layout.ParseShape(flagShape)
			if err != nil {
				return err
			}
			o, err := hex.ParseOrientation(flagOrientation)
			if err != nil {
				return err
			}

			p := newProgress(logger)
			ctl, hit, err := buildCached(ctx, store, cacheCfg.cacheTTL(), shape, o, flagRadius, flagWidth, flagHeight)
			if err != nil {
				return err
			}
			if hit {
				logger.Debug("cache hit", "shape", shape, "width", flagWidth, "height", flagHeight)
			}
			p.done(fmt.Sprintf("Built %d hexagons", ctl.Grid.Len()))

			if err := emit(ctl, flagFormat, flagOut, flagLabels); err != nil {
				return err
			}
			printSuccess("%s", summarize(shape.String(), ctl))
			return nil
		},
	}

	cmd.Flags().StringVarP(&flagShape, "shape", "s", "", "grid shape: rectangle, triangle, trapezoid or hexagon")
	cmd.Flags().StringVar(&flagOrientation, "orientation", "", "hexagon orientation: flat or pointy")
	cmd.Flags().Float64VarP(&flagRadius, "radius", "r", 0, "hexagon outer radius in pixels")
	cmd.Flags().IntVarP(&flagWidth, "width", "W", 0, "grid width in hexagons")
	cmd.Flags().IntVarP(&flagHeight, "height", "H", 0, "grid height in hexagons")
	cmd.Flags().StringVar(&flagSpec, "spec", "", "YAML board-spec file to build instead of flags")
	cmd.Flags().StringVarP(&flagOut, "out", "o", "", "output file, or directory with --spec (default stdout)")
	cmd.Flags().StringVarP(&flagFormat, "format", "f", "json", "output format: json, svg or ascii")
	cmd.Flags().BoolVar(&flagLabels, "labels", false, "label SVG hexagons with their coordinates")
	cmd.Flags().BoolVar(&flagNoCache, "no-cache", false, "bypass the built-grid cache")

	return cmd
}

func checkFormat(format string) error {
	switch format {
	case "json", "svg", "ascii":
		return nil
	default:
		return errors.New(errors.ErrCodeInvalidSpec, "unknown format %q (want json, svg or ascii)", format)
	}
}

// buildCached assembles a grid, going through the cache keyed by the full
// parameter set. The bool reports whether the grid came from the cache.
// Cache failures degrade to a plain build rather than failing the command.
func buildCached(ctx context.Context, store cache.Cache, ttl time.Duration, shape layout.Shape, o hex.Orientation, radius float64, width, height int) (*builder.Control, bool, error) {
	logger := loggerFromContext(ctx)
	key := cache.GridKey(shape.String(), o.String(), radius, width, height)

	if data, err := store.Get(ctx, key); err == nil {
		ctl, err := gridio.UnmarshalGrid(data)
		if err == nil {
			observability.Cache().OnCacheHit(ctx, "grid")
			return ctl, true, nil
		}
		logger.Warn("discarding corrupt cache entry", "key", key, "err", err)
	} else if !cache.IsMiss(err) {
		logger.Warn("cache read failed", "err", err)
	}
	observability.Cache().OnCacheMiss(ctx, "grid")

	ctl, err := builder.New().Build(ctx, shape, o, radius, width, height)
	if err != nil {
		return nil, false, err
	}

	if data, err := gridio.MarshalGrid(ctl); err != nil {
		logger.Warn("cache encode failed", "err", err)
	} else if err := store.Set(ctx, key, data, ttl); err != nil {
		logger.Warn("cache write failed", "err", err)
	} else {
		observability.Cache().OnCacheSet(ctx, "grid", len(data))
	}
	return ctl, false, nil
}

// runSpecBuild builds every board in a spec file. Output files land in
// outDir, named <board>.<format extension>.
func runSpecBuild(ctx context.Context, store cache.Cache, ttl time.Duration, specPath, outDir, format string, labels bool) error {
	logger := loggerFromContext(ctx)

	spec, err := gridio.ReadSpecFile(specPath)
	if err != nil {
		return err
	}
	if outDir == "" {
		outDir = "."
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create output directory %s: %w", outDir, err)
	}

	p := newProgress(logger)
	for _, board := range spec.Boards {
		shape, err := layout.ParseShape(board.Shape)
		if err != nil {
			return err
		}
		o, err := hex.ParseOrientation(board.Orientation)
		if err != nil {
			return err
		}
		ctl, _, err := buildCached(ctx, store, ttl, shape, o, board.Radius, board.Width, board.Height)
		if err != nil {
			return fmt.Errorf("board %s: %w", board.Name, err)
		}
		out := filepath.Join(outDir, board.Name+formatExt(format))
		if err := emit(ctl, format, out, labels); err != nil {
			return fmt.Errorf("board %s: %w", board.Name, err)
		}
		printSuccess("%s", summarize(board.Name, ctl))
	}
	p.done(fmt.Sprintf("Built %d boards", len(spec.Boards)))
	return nil
}

func formatExt(format string) string {
	switch format {
	case "svg":
		return ".svg"
	case "ascii":
		return ".txt"
	default:
		return ".json"
	}
}

// emit writes ctl in the given format to path, or to stdout when path is
// empty.
func emit(ctl *builder.Control, format, path string, labels bool) error {
	if format == "json" && path != "" {
		return gridio.WriteGridFile(ctl, path)
	}

	w := os.Stdout
	if path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("create %s: %w", path, err)
		}
		defer f.Close()
		w = f
	}

	switch format {
	case "json":
		return gridio.WriteGrid(ctl, w)
	case "svg":
		opts := render.DefaultSVGOptions()
		opts.Labels = labels
		return render.SVG(w, ctl, opts)
	case "ascii":
		_, err := fmt.Fprint(w, render.ASCII(ctl))
		return err
	}
	return checkFormat(format)
}
