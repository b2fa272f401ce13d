// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package utils

import (
	"testing"

	"github.com/golang/geo/r3"
	"github.com/google/go-cmp/cmp"
)

func TestGenerateRandomPoints_Length(t *testing.T) {
	box := r3.Vector{X: 10, Y: 10, Z: 10}
	tests := []struct {
		name string
		cnt  int
		seed int64
	}{
		{"zero points", 0, 42},
		{"one point", 1, 42},
		{"ten points", 10, 0},
		{"hundred points", 100, 99},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			points := GenerateRandomPoints(tt.cnt, box, tt.seed)
			if len(points) != tt.cnt {
				t.Errorf("GenerateRandomPoints(%v, %v, %v) len = %v, want %v", tt.cnt, box, tt.seed,
					len(points), tt.cnt)
			}
		})
	}
}

func TestGenerateRandomPoints_InsideBox(t *testing.T) {
	const (
		cnt  = 100
		seed = 0
	)
	box := r3.Vector{X: 32, Y: 16, Z: 4}
	points := GenerateRandomPoints(cnt, box, seed)
	for i, p := range points {
		if p.X < 0 || p.X >= box.X || p.Y < 0 || p.Y >= box.Y || p.Z < 0 || p.Z >= box.Z {
			t.Errorf("GenerateRandomPoints(%v, %v, %v)[%d] = %v, want inside box", cnt, box, seed, i, p)
		}
	}
}

func TestGenerateRandomPoints_Determinism(t *testing.T) {
	const (
		cnt  = 10
		seed = 0
	)
	box := r3.Vector{X: 1, Y: 1, Z: 1}
	a := GenerateRandomPoints(cnt, box, seed)
	b := GenerateRandomPoints(cnt, box, seed)
	if diff := cmp.Diff(b, a); diff != "" {
		t.Errorf("GenerateRandomPoints(%v, %v, %v) mismatch (-want +got):\n%v", cnt, box, seed, diff)
	}
}

func TestSequenceSampler(t *testing.T) {
	s := &SequenceSampler{Floats: []float64{0.25, 0.5}, Ints: []int{1, 0, 3}}

	gotFloats := []float64{s.Float64(), s.Float64(), s.Float64()}
	if diff := cmp.Diff([]float64{0.25, 0.5, 0.25}, gotFloats); diff != "" {
		t.Errorf("s.Float64() mismatch (-want +got):\n%v", diff)
	}

	gotInts := []int{s.Intn(2), s.Intn(2), s.Intn(2), s.Intn(2)}
	if diff := cmp.Diff([]int{1, 0, 1, 1}, gotInts); diff != "" {
		t.Errorf("s.Intn(2) mismatch (-want +got):\n%v", diff)
	}
}
