package render

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/hexforge/hexforge/pkg/builder"
)

// SVGOptions controls SVG output. The zero value is usable; DefaultSVGOptions
// fills in the house style.
type SVGOptions struct {
	Fill        string  // polygon fill color
	Stroke      string  // polygon stroke color
	StrokeWidth float64 // polygon stroke width
	Padding     float64 // whitespace around the board, in pixels
	Labels      bool    // draw "x,z" at each hexagon center
}

// DefaultSVGOptions returns the default rendering style.
func DefaultSVGOptions() SVGOptions {
	return SVGOptions{
		Fill:        "#f2efe9",
		Stroke:      "#4a4a4a",
		StrokeWidth: 1.5,
		Padding:     8,
	}
}

// SVG writes the grid as an SVG document: one polygon per hexagon, with
// optional coordinate labels. The viewport is fitted to the board's
// bounding box plus padding.
func SVG(w io.Writer, ctl *builder.Control, opts SVGOptions) error {
	if opts.Fill == "" {
		opts.Fill = DefaultSVGOptions().Fill
	}
	if opts.Stroke == "" {
		opts.Stroke = DefaultSVGOptions().Stroke
	}
	if opts.StrokeWidth == 0 {
		opts.StrokeWidth = DefaultSVGOptions().StrokeWidth
	}

	// An empty grid (deserialized docs can carry zero hexes) has no
	// bounding box; emit an empty viewport instead of Inf dimensions.
	if ctl.Grid.Len() == 0 {
		_, err := io.WriteString(w, `<svg xmlns="http://www.w3.org/2000/svg" width="0" height="0"/>`+"\n")
		return err
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, h := range ctl.Grid.Hexagons() {
		for _, p := range h.Corners() {
			minX = math.Min(minX, p.X)
			minY = math.Min(minY, p.Y)
			maxX = math.Max(maxX, p.X)
			maxY = math.Max(maxY, p.Y)
		}
	}

	offX := opts.Padding - minX
	offY := opts.Padding - minY
	width := maxX - minX + 2*opts.Padding
	height := maxY - minY + 2*opts.Padding

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%.1f" height="%.1f" viewBox="0 0 %.1f %.1f">`+"\n",
		width, height, width, height)

	for _, h := range ctl.Grid.Hexagons() {
		points := make([]string, 0, 6)
		for _, p := range h.Corners() {
			points = append(points, fmt.Sprintf("%.2f,%.2f", p.X+offX, p.Y+offY))
		}
		fmt.Fprintf(&b, `  <polygon points="%s" fill="%s" stroke="%s" stroke-width="%.2f"/>`+"\n",
			strings.Join(points, " "), opts.Fill, opts.Stroke, opts.StrokeWidth)

		if opts.Labels {
			c := h.Center()
			fmt.Fprintf(&b, `  <text x="%.2f" y="%.2f" font-size="%.1f" text-anchor="middle" dominant-baseline="middle">%d,%d</text>`+"\n",
				c.X+offX, c.Y+offY, ctl.Data.Radius*0.4, h.Cube().X, h.Cube().Z)
		}
	}

	b.WriteString("</svg>\n")
	_, err := io.WriteString(w, b.String())
	return err
}
