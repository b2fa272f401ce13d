// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package hull computes the convex hull of a three-dimensional lattice and
// the cells lying on it.
package hull

import (
	"errors"
	"fmt"
	"slices"

	"github.com/2dChan/celllattice"
	"github.com/golang/geo/r3"
	"github.com/markus-wa/quickhull-go/v2"
)

const (
	defaultEps = 1e-9
)

// ErrDegenerate reports a point set without volume: fewer than four points,
// or all points collinear or coplanar (as in quasi-2D lattices).
var ErrDegenerate = errors.New("hull: degenerate point set")

type Hull struct {
	Points celllattice.PointSet
	// NOTE: Sort in CCW per triangle(look from outside the hull)
	Triangles [][3]int

	eps float64
}

func (h *Hull) TriangleVertices(tIdx int) (r3.Vector, r3.Vector, r3.Vector) {
	if tIdx < 0 || tIdx >= len(h.Triangles) {
		panic("TriangleVertices: tIdx out of bounds")
	}
	t := h.Triangles[tIdx]
	return h.Points[t[0]], h.Points[t[1]], h.Points[t[2]]
}

// VertexIndices returns the sorted indices of the points that are hull
// vertices. Points lying inside the hull or inside a hull face are not
// included.
func (h *Hull) VertexIndices() []int {
	idx := make([]int, 0, len(h.Triangles)*3)
	for _, t := range h.Triangles {
		idx = append(idx, t[0], t[1], t[2])
	}
	slices.Sort(idx)
	return slices.Compact(idx)
}

type Options struct {
	Eps float64
}

type Option func(*Options) error

func WithEps(eps float64) Option {
	return func(o *Options) error {
		if eps <= 0 {
			return errors.New("WithEps: eps must be positive")
		}
		o.Eps = eps
		return nil
	}
}

// SurfaceIndices returns the sorted indices of the points lying within eps
// of a hull face plane: the hull vertices plus every point on a face or edge
// of the hull.
func (h *Hull) SurfaceIndices() []int {
	type plane struct {
		normal r3.Vector
		origin r3.Vector
	}
	planes := make([]plane, 0, len(h.Triangles))
	for i := range h.Triangles {
		a, b, c := h.TriangleVertices(i)
		n := b.Sub(a).Cross(c.Sub(a))
		if n.Norm() == 0 {
			continue
		}
		planes = append(planes, plane{normal: n.Normalize(), origin: a})
	}

	eps := h.eps
	if eps <= 0 {
		eps = defaultEps
	}
	var idx []int
	for i, p := range h.Points {
		for _, pl := range planes {
			if d := pl.normal.Dot(p.Sub(pl.origin)); d <= eps && d >= -eps {
				idx = append(idx, i)
				break
			}
		}
	}
	return idx
}

func NewHull(points celllattice.PointSet, setters ...Option) (*Hull, error) {
	opts := Options{
		Eps: defaultEps,
	}
	for _, set := range setters {
		if err := set(&opts); err != nil {
			return nil, err
		}
	}

	numPoints := len(points)
	if numPoints < 4 {
		return nil, fmt.Errorf("hull: %d points, minimum 4 required: %w", numPoints, ErrDegenerate)
	}
	if isFlat(points, opts.Eps) {
		return nil, fmt.Errorf("hull: points are coplanar: %w", ErrDegenerate)
	}

	qh := new(quickhull.QuickHull)
	ch := qh.ConvexHull(points, true, true, opts.Eps)
	if len(ch.Indices) == 0 || len(ch.Indices)%3 != 0 {
		return nil, errors.New("hull: inconsistent number of indices returned from QuickHull")
	}

	h := &Hull{
		Points:    points,
		Triangles: make([][3]int, len(ch.Indices)/3),
		eps:       opts.Eps,
	}
	centroid := centroidOf(points)
	for i := range h.Triangles {
		base := i * 3
		for j := 0; j < 3; j++ {
			v := ch.Indices[base+j]
			if v < 0 || v >= numPoints {
				return nil, fmt.Errorf("hull: QuickHull index %d out of range [0 %d)", v, numPoints)
			}
			h.Triangles[i][j] = v
		}
		sortTriangleVerticesCCW(&h.Triangles[i], points, centroid)
	}

	return h, nil
}

// BoundaryCells returns the sorted indices of the cells on the convex hull
// of points: every cell within the hull tolerance of a hull face, not only
// the hull vertices.
func BoundaryCells(points celllattice.PointSet, setters ...Option) ([]int, error) {
	h, err := NewHull(points, setters...)
	if err != nil {
		return nil, err
	}
	return h.SurfaceIndices(), nil
}

func sortTriangleVerticesCCW(t *[3]int, v celllattice.PointSet, centroid r3.Vector) {
	p0, p1, p2 := v[t[0]], v[t[1]], v[t[2]]
	norm := p1.Sub(p0).Cross(p2.Sub(p0))
	if norm.Dot(p0.Sub(centroid)) < 0 {
		t[1], t[2] = t[2], t[1]
	}
}

func centroidOf(points celllattice.PointSet) r3.Vector {
	var c r3.Vector
	for _, p := range points {
		c = c.Add(p)
	}
	return c.Mul(1 / float64(len(points)))
}

// isFlat reports whether all points lie within eps (relative to the extent
// of the set) of a common plane.
func isFlat(points celllattice.PointSet, eps float64) bool {
	p0 := points[0]

	far, farDist := -1, 0.0
	for i, p := range points {
		if d := p.Sub(p0).Norm(); d > farDist {
			far, farDist = i, d
		}
	}
	tol := eps * max(1, farDist)
	if farDist <= tol {
		return true
	}
	axis := points[far].Sub(p0)

	var normal r3.Vector
	for _, p := range points {
		n := axis.Cross(p.Sub(p0))
		if n.Norm() > tol*farDist && n.Norm() > normal.Norm() {
			normal = n
		}
	}
	if normal.Norm() == 0 {
		return true
	}
	normal = normal.Normalize()

	for _, p := range points {
		if d := normal.Dot(p.Sub(p0)); d > tol || d < -tol {
			return false
		}
	}
	return true
}
