// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package utils provides seeded random sources and random point clouds for
// lattice generation and tests.

package utils

import (
	"math/rand"

	"github.com/golang/geo/r3"
)

// NewRand returns a random source seeded with seed.
// The seed parameter ensures reproducibility.
func NewRand(seed int64) *rand.Rand {
	//nolint:gosec
	return rand.New(rand.NewSource(seed))
}

// GenerateRandomPoints generates cnt points uniformly distributed in the box
// [0, box.X) x [0, box.Y) x [0, box.Z).
// The seed parameter ensures reproducibility.
func GenerateRandomPoints(cnt int, box r3.Vector, seed int64) []r3.Vector {
	random := NewRand(seed)
	points := make([]r3.Vector, cnt)

	for i := 0; i < cnt; i++ {
		points[i] = r3.Vector{
			X: random.Float64() * box.X,
			Y: random.Float64() * box.Y,
			Z: random.Float64() * box.Z,
		}
	}

	return points
}

// SequenceSampler replays fixed sequences of draws. It is meant for tests
// that need exact control over a stochastic operation. Sequences wrap around
// when exhausted.
type SequenceSampler struct {
	Floats []float64
	Ints   []int

	fi, ii int
}

// Float64 returns the next value of Floats.
func (s *SequenceSampler) Float64() float64 {
	v := s.Floats[s.fi%len(s.Floats)]
	s.fi++
	return v
}

// Intn returns the next value of Ints modulo n.
func (s *SequenceSampler) Intn(n int) int {
	v := s.Ints[s.ii%len(s.Ints)]
	s.ii++
	return v % n
}
