// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package celllattice generates initial cell-center configurations for
// cell-based simulations: regular square/cubic and staggered triangular
// lattices, bounded random disorder, and nearest-neighbor spacing analysis.
package celllattice

import (
	"fmt"
	"io"
	"log"
	"math"

	"github.com/golang/geo/r3"
)

const (
	// Every odd row of a triangular lattice is shifted right by this
	// fraction of the column step.
	triangularRowShift = 0.75

	// MaxPoints bounds the number of points a single build may produce.
	MaxPoints = 1 << 26
)

// PointSet is an ordered sequence of cell centers. The index of a point is
// its identity and the order is the order written to position files.
type PointSet []r3.Vector

// Kind names a lattice topology.
type Kind int

const (
	Square Kind = iota
	Triangular
)

func (k Kind) String() string {
	switch k {
	case Square:
		return "square"
	case Triangular:
		return "triangular"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind returns the Kind named by s ("square", "cubic" or "triangular").
func ParseKind(s string) (Kind, error) {
	switch s {
	case "square", "cubic":
		return Square, nil
	case "triangular":
		return Triangular, nil
	}
	return 0, fmt.Errorf("ParseKind: unknown lattice kind %q: %w", s, ErrInvalidArgument)
}

// Spec describes a lattice to build.
// Square lattices use Spacing and NX, NY, NZ. Triangular lattices use
// NX, NY, Width, Height, ZPlane and EdgeOffset.
type Spec struct {
	Kind    Kind
	Spacing float64

	NX, NY, NZ int

	Width, Height float64
	ZPlane        float64
	EdgeOffset    float64
}

// Len returns the number of points a build of s produces.
func (s Spec) Len() int {
	if s.Kind == Triangular {
		return s.NX * s.NY
	}
	return s.NX * s.NY * s.NZ
}

type Options struct {
	Logger *log.Logger
}

type Option func(*Options) error

// WithLogger sets the logger receiving build diagnostics.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) error {
		if l == nil {
			return fmt.Errorf("WithLogger: logger must be non-nil: %w", ErrInvalidArgument)
		}
		o.Logger = l
		return nil
	}
}

// WithoutLogging discards build diagnostics.
func WithoutLogging() Option {
	return func(o *Options) error {
		o.Logger = log.New(io.Discard, "", 0)
		return nil
	}
}

func newOptions(setters []Option) (Options, error) {
	opts := Options{
		Logger: log.Default(),
	}
	for _, set := range setters {
		if err := set(&opts); err != nil {
			return Options{}, err
		}
	}
	return opts, nil
}

// Build builds the lattice described by spec.
func Build(spec Spec, setters ...Option) (PointSet, error) {
	if _, err := newOptions(setters); err != nil {
		return nil, err
	}
	switch spec.Kind {
	case Square:
		return NewSquareLattice(spec.Spacing, spec.NX, spec.NY, spec.NZ)
	case Triangular:
		return NewTriangularLattice(spec.NX, spec.NY, spec.Width, spec.Height,
			spec.ZPlane, spec.EdgeOffset, setters...)
	}
	return nil, fmt.Errorf("Build: unsupported lattice kind %v: %w", spec.Kind, ErrInvalidArgument)
}

// NewSquareLattice returns nx*ny*nz cell centers on a square (cubic) grid.
// The center of cell (ix, iy, iz) lies at round(spacing*i + spacing/2) on
// each axis, where round is math.Round (halves round away from zero).
// Points are ordered with x varying fastest, then y, then z.
func NewSquareLattice(spacing float64, nx, ny, nz int) (PointSet, error) {
	if !isPositive(spacing) {
		return nil, fmt.Errorf("NewSquareLattice: spacing %v must be positive: %w", spacing, ErrInvalidArgument)
	}
	if nx < 1 || ny < 1 || nz < 1 {
		return nil, fmt.Errorf("NewSquareLattice: extents %dx%dx%d must be >= 1: %w",
			nx, ny, nz, ErrInvalidArgument)
	}

	n, ok := pointCount(nx, ny, nz)
	if !ok {
		return nil, fmt.Errorf("NewSquareLattice: extents %dx%dx%d exceed %d points: %w",
			nx, ny, nz, MaxPoints, ErrInvalidArgument)
	}

	points := make(PointSet, 0, n)
	for z := 0; z < nz; z++ {
		for y := 0; y < ny; y++ {
			for x := 0; x < nx; x++ {
				points = append(points, r3.Vector{
					X: cellCenter(spacing, x),
					Y: cellCenter(spacing, y),
					Z: cellCenter(spacing, z),
				})
			}
		}
	}
	return points, nil
}

// NewTriangularLattice returns nx*ny cell centers in a width x height domain
// arranged in staggered rows: odd rows are shifted right by 0.75 of the
// column step. This approximates a triangular packing; the row step is not
// adjusted to the equilateral height. Every y is offset by edgeOffset and
// every z equals zPlane. Points are ordered row by row.
func NewTriangularLattice(nx, ny int, width, height, zPlane, edgeOffset float64, setters ...Option) (PointSet, error) {
	if nx < 1 || ny < 1 {
		return nil, fmt.Errorf("NewTriangularLattice: extents %dx%d must be >= 1: %w", nx, ny, ErrInvalidArgument)
	}
	if !isPositive(width) || !isPositive(height) {
		return nil, fmt.Errorf("NewTriangularLattice: domain %vx%v must be positive: %w",
			width, height, ErrInvalidArgument)
	}
	n, ok := pointCount(nx, ny)
	if !ok {
		return nil, fmt.Errorf("NewTriangularLattice: extents %dx%d exceed %d points: %w",
			nx, ny, MaxPoints, ErrInvalidArgument)
	}
	opts, err := newOptions(setters)
	if err != nil {
		return nil, err
	}

	dx := width / float64(nx)
	dy := height / float64(ny)
	shift := triangularRowShift * dx

	points := make(PointSet, 0, n)
	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			x := float64(i) * dx
			if j%2 == 1 {
				x += shift
			}
			points = append(points, r3.Vector{
				X: x,
				Y: float64(j)*dy + edgeOffset,
				Z: zPlane,
			})
		}
	}
	opts.Logger.Printf("triangular lattice: %d points", len(points))
	return points, nil
}

func cellCenter(spacing float64, i int) float64 {
	return math.Round(spacing*float64(i) + spacing/2)
}

// pointCount returns the product of the positive extents, or false when it
// exceeds MaxPoints.
func pointCount(extents ...int) (int, bool) {
	n := 1
	for _, e := range extents {
		if e > MaxPoints/n {
			return 0, false
		}
		n *= e
	}
	return n, true
}

func isPositive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}
