// Package builder assembles hexagon grids: it selects the layout strategy
// for the requested shape, validates the size parameters, enumerates the
// coordinates, and populates a fresh grid with one hexagon per coordinate.
//
// A failed validation propagates the strategy's error before any mutation,
// so a rejected build never produces partial state. Each call assembles an
// independent grid over its own storage; the builder itself is stateless and
// safe to share.
//
// # Usage
//
//	ctl, err := builder.New().BuildHexagon(ctx, hex.PointyTop, 10, 5, 5)
//	if err != nil {
//	    // INVALID_SIZE with a message naming the offending pair
//	}
//	ctl.Grid.Len()          // 19
//	ctl.Calc.MovementRange(ctl.Grid.Hexagons()[0], 2)
package builder

import (
	"context"
	"time"

	"github.com/hexforge/hexforge/pkg/calc"
	"github.com/hexforge/hexforge/pkg/grid"
	"github.com/hexforge/hexforge/pkg/hex"
	"github.com/hexforge/hexforge/pkg/layout"
	"github.com/hexforge/hexforge/pkg/observability"
)

// Control bundles everything a caller needs to work with one assembled
// grid: the grid itself, a calculator bound to it, and the shared metadata.
type Control struct {
	Grid *grid.Grid
	Calc *calc.Calculator
	Data *grid.Data
}

// Attach wraps an already-populated grid in a Control, binding a fresh
// calculator to it. Used when grids arrive from serialization rather than
// from enumeration.
func Attach(g *grid.Grid) *Control {
	return &Control{Grid: g, Calc: calc.New(g), Data: g.Data()}
}

// Builder assembles grids. The zero value is usable; New exists for
// symmetry with the rest of the API.
type Builder struct{}

// New creates a Builder.
func New() *Builder { return &Builder{} }

// Build assembles a grid of the given shape. It resolves the strategy,
// validates the size pair, enumerates coordinates, and inserts one hexagon
// record per coordinate into fresh storage.
func (b *Builder) Build(ctx context.Context, shape layout.Shape, o hex.Orientation, radius float64, width, height int) (*Control, error) {
	start := time.Now()
	observability.Build().OnBuildStart(ctx, shape.String(), width, height)

	ctl, err := b.build(shape, o, radius, width, height)

	count := 0
	if ctl != nil {
		count = ctl.Grid.Len()
	}
	observability.Build().OnBuildComplete(ctx, shape.String(), count, time.Since(start), err)
	return ctl, err
}

func (b *Builder) build(shape layout.Shape, o hex.Orientation, radius float64, width, height int) (*Control, error) {
	strat, err := layout.ForShape(shape)
	if err != nil {
		return nil, err
	}
	if err := strat.CheckSize(width, height); err != nil {
		return nil, err
	}

	data := grid.NewData(shape, o, radius, width, height)
	g := grid.New(data, grid.NewMapStorage())

	for _, c := range strat.GridCoords(width, height, o) {
		if err := g.Add(grid.NewHexagon(data, c)); err != nil {
			// Unreachable for correct strategies; duplicate enumeration
			// is an invariant violation worth surfacing loudly.
			return nil, err
		}
	}

	return &Control{Grid: g, Calc: calc.New(g), Data: data}, nil
}

// BuildRectangle assembles a rectangular grid.
func (b *Builder) BuildRectangle(ctx context.Context, o hex.Orientation, radius float64, width, height int) (*Control, error) {
	return b.Build(ctx, layout.ShapeRectangular, o, radius, width, height)
}

// BuildHexagon assembles a hexagon-of-hexagons grid.
func (b *Builder) BuildHexagon(ctx context.Context, o hex.Orientation, radius float64, width, height int) (*Control, error) {
	return b.Build(ctx, layout.ShapeHexagonal, o, radius, width, height)
}

// BuildTriangle assembles a triangular grid.
func (b *Builder) BuildTriangle(ctx context.Context, o hex.Orientation, radius float64, width, height int) (*Control, error) {
	return b.Build(ctx, layout.ShapeTriangular, o, radius, width, height)
}

// BuildTrapezoid assembles a trapezoid grid.
func (b *Builder) BuildTrapezoid(ctx context.Context, o hex.Orientation, radius float64, width, height int) (*Control, error) {
	return b.Build(ctx, layout.ShapeTrapezoid, o, radius, width, height)
}
