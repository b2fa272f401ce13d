// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package celllattice

import (
	"fmt"

	"github.com/golang/geo/r3"
)

// Cell is a read-only view of one point in a PointSet.
type Cell struct {
	idx int
	ps  PointSet
}

// Cell returns the view of the point at index i.
// It returns an error if the index is out of range.
func (ps PointSet) Cell(i int) (Cell, error) {
	if i < 0 || i >= len(ps) {
		return Cell{}, fmt.Errorf("Cell: index %d out of range [0 %d)", i, len(ps))
	}
	return Cell{idx: i, ps: ps}, nil
}

// Index returns the index of the cell in its PointSet.
func (c Cell) Index() int {
	return c.idx
}

// Center returns the cell center.
func (c Cell) Center() r3.Vector {
	return c.ps[c.idx]
}

// NearestNeighbor returns the index of and distance to the closest other
// cell. Ties resolve to the lowest index. It reports false when the cell is
// alone.
func (c Cell) NearestNeighbor() (int, float64, bool) {
	return nearest(c.ps, c.idx)
}

// Clone returns a copy of ps that shares no storage with it.
func (ps PointSet) Clone() PointSet {
	if ps == nil {
		return nil
	}
	out := make(PointSet, len(ps))
	copy(out, ps)
	return out
}
