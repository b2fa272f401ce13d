// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package render draws previews of generated lattices: an SVG top view of
// the cells and a PNG chart of nearest-neighbor spacing.
package render

import (
	"errors"
	"io"
	"math"
	"slices"

	"github.com/2dChan/celllattice"
	svg "github.com/ajstarks/svgo"
)

const (
	defaultScale = 4

	backgroundStyle = "fill:rgb(255,255,255)"
	cellStyle       = "fill:rgb(220,220,255);stroke:rgb(90,90,170);stroke-width:1;fill-opacity:0.6"
	markedStyle     = "fill:rgb(255,180,180);stroke:rgb(200,0,0);stroke-width:1;fill-opacity:0.8"
	centerStyle     = "fill:rgb(0,0,0)"
)

type SVGOptions struct {
	// Scale is the number of pixels per length unit.
	Scale float64
	// Marked cells are drawn in a highlight color, e.g. overlapping or
	// boundary cells.
	Marked []int
}

// LatticeSVG writes a top view (x, y) of points to w, each cell drawn as a
// circle of the given radius around its center.
func LatticeSVG(w io.Writer, points celllattice.PointSet, radius float64, opts SVGOptions) error {
	if len(points) == 0 {
		return errors.New("LatticeSVG: no points")
	}
	if radius <= 0 {
		return errors.New("LatticeSVG: radius must be positive")
	}
	scale := opts.Scale
	if scale <= 0 {
		scale = defaultScale
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range points {
		minX, maxX = min(minX, p.X), max(maxX, p.X)
		minY, maxY = min(minY, p.Y), max(maxY, p.Y)
	}
	minX -= radius
	minY -= radius
	maxX += radius
	maxY += radius

	width := int(math.Ceil((maxX - minX) * scale))
	height := int(math.Ceil((maxY - minY) * scale))
	toScreen := func(x, y float64) (int, int) {
		// SVG y grows downward.
		return int(math.Round((x - minX) * scale)), int(math.Round((maxY - y) * scale))
	}
	r := max(1, int(math.Round(radius*scale)))

	canvas := svg.New(w)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, backgroundStyle)
	for i, p := range points {
		x, y := toScreen(p.X, p.Y)
		style := cellStyle
		if slices.Contains(opts.Marked, i) {
			style = markedStyle
		}
		canvas.Circle(x, y, r, style)
	}
	for _, p := range points {
		x, y := toScreen(p.X, p.Y)
		canvas.Circle(x, y, max(1, r/8), centerStyle)
	}
	canvas.End()
	return nil
}
