// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package celllattice

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// MinDistance returns the smallest Euclidean distance from points[index] to
// any other point. It reports false when the set has fewer than two points
// or index is out of range.
func MinDistance(points PointSet, index int) (float64, bool) {
	_, d, ok := nearest(points, index)
	return d, ok
}

// NearestDistances returns MinDistance for every index, in order.
// It returns nil when the set has fewer than two points.
func NearestDistances(points PointSet) []float64 {
	if len(points) < 2 {
		return nil
	}
	dists := make([]float64, len(points))
	for i := range points {
		dists[i], _ = MinDistance(points, i)
	}
	return dists
}

// SpacingSummary describes the distribution of nearest-neighbor distances.
type SpacingSummary struct {
	Min    float64
	Max    float64
	Mean   float64
	StdDev float64
}

// SummarizeSpacing summarizes the nearest-neighbor distances of points.
// It reports false when the set has fewer than two points.
// StdDev is the unbiased sample standard deviation.
func SummarizeSpacing(points PointSet) (SpacingSummary, bool) {
	dists := NearestDistances(points)
	if dists == nil {
		return SpacingSummary{}, false
	}
	mean, std := stat.MeanStdDev(dists, nil)
	return SpacingSummary{
		Min:    floats.Min(dists),
		Max:    floats.Max(dists),
		Mean:   mean,
		StdDev: std,
	}, true
}

// Overlaps returns, in ascending order, the indices of points whose nearest
// neighbor is closer than minDistance. Use 2R to find cells of radius R that
// would overlap.
func Overlaps(points PointSet, minDistance float64) []int {
	var idx []int
	for i, d := range NearestDistances(points) {
		if d < minDistance {
			idx = append(idx, i)
		}
	}
	return idx
}

func nearest(points PointSet, index int) (int, float64, bool) {
	if len(points) < 2 || index < 0 || index >= len(points) {
		return -1, 0, false
	}
	p := points[index]
	best, bestDist := -1, math.Inf(1)
	for j, q := range points {
		if j == index {
			continue
		}
		if d := p.Distance(q); d < bestDist {
			best, bestDist = j, d
		}
	}
	return best, bestDist, true
}
