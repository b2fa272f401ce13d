// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package celllattice

import (
	"fmt"
	"math"
)

// Sampler is the random source used by Disorder. *rand.Rand satisfies it.
type Sampler interface {
	// Float64 returns a uniform value in [0, 1).
	Float64() float64
	// Intn returns a uniform value in [0, n).
	Intn(n int) int
}

// Disorder displaces every point in place. Each axis of each point moves by
// s*p, where p is uniform in [0, maxDisplacement) and s is a random sign,
// drawn independently per axis. For every point the three signs (x, y, z)
// are drawn first, then the three magnitudes. Length and order of points are
// unchanged. A zero bound leaves the coordinates untouched.
func Disorder(points PointSet, maxDisplacement float64, src Sampler) error {
	if maxDisplacement < 0 || math.IsNaN(maxDisplacement) || math.IsInf(maxDisplacement, 0) {
		return fmt.Errorf("Disorder: max displacement %v must be finite and >= 0: %w",
			maxDisplacement, ErrInvalidArgument)
	}
	if src == nil {
		return fmt.Errorf("Disorder: %w", ErrNilSampler)
	}

	for i := range points {
		sx, sy, sz := sign(src), sign(src), sign(src)
		px := uniform(src, maxDisplacement)
		py := uniform(src, maxDisplacement)
		pz := uniform(src, maxDisplacement)

		points[i].X += sx * px
		points[i].Y += sy * py
		points[i].Z += sz * pz
	}
	return nil
}

// NewDisorderedLattice builds the regular square lattice that Disorder is
// applied to. It is the same lattice as NewSquareLattice.
func NewDisorderedLattice(spacing float64, nx, ny, nz int) (PointSet, error) {
	return NewSquareLattice(spacing, nx, ny, nz)
}

func sign(src Sampler) float64 {
	if src.Intn(2) == 1 {
		return -1
	}
	return 1
}

func uniform(src Sampler, upper float64) float64 {
	return upper * src.Float64()
}
