// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package render

import (
	"errors"
	"fmt"
	"io"

	"github.com/wcharczuk/go-chart/v2"
	"gonum.org/v1/gonum/floats"
)

const (
	chartWidth  = 800
	chartHeight = 300
)

// SpacingChart writes a PNG plot of the nearest-neighbor distance of every
// cell, with a horizontal line at threshold (e.g. one cell diameter).
// A threshold <= 0 omits the line. At least two distances are required.
func SpacingChart(w io.Writer, distances []float64, threshold float64) error {
	n := len(distances)
	if n < 2 {
		return fmt.Errorf("SpacingChart: %d distances, minimum 2 required", n)
	}
	if floats.HasNaN(distances) {
		return errors.New("SpacingChart: distances contain NaN")
	}

	xs := make([]float64, n)
	floats.Span(xs, 0, float64(n-1))
	yMax := max(floats.Max(distances), threshold) * 1.1
	if yMax <= 0 {
		yMax = 1
	}

	series := []chart.Series{
		chart.ContinuousSeries{
			Name:    "nearest distance",
			XValues: xs,
			YValues: distances,
			Style: chart.Style{
				StrokeColor: chart.ColorBlue,
				StrokeWidth: 2.0,
			},
		},
	}
	if threshold > 0 {
		series = append(series, chart.ContinuousSeries{
			Name:    "threshold",
			XValues: []float64{0, float64(n - 1)},
			YValues: []float64{threshold, threshold},
			Style: chart.Style{
				StrokeColor: chart.ColorRed,
				StrokeWidth: 1.0,
			},
		})
	}

	graph := chart.Chart{
		Width:  chartWidth,
		Height: chartHeight,
		XAxis: chart.XAxis{
			Name:  "cell",
			Range: &chart.ContinuousRange{Min: 0, Max: float64(n - 1)},
			ValueFormatter: func(v interface{}) string {
				return fmt.Sprintf("%d", int(v.(float64)))
			},
		},
		YAxis: chart.YAxis{
			Name:  "nearest distance",
			Range: &chart.ContinuousRange{Min: 0, Max: yMax},
		},
		Series: series,
	}
	return graph.Render(chart.PNG, w)
}
