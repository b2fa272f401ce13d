// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package cardfile reads and writes the plain-text files exchanged with the
// simulator: position files, parameter cards, summary rows and flat value
// exports.
package cardfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/2dChan/celllattice"
	"github.com/golang/geo/r3"
)

// ErrMalformedLine reports a line that does not follow the file format.
var ErrMalformedLine = errors.New("cardfile: malformed line")

// WritePositions writes one "x y z" line per point, in order. The z column
// is zPlane for every line, not the point's own z.
func WritePositions(w io.Writer, points celllattice.PointSet, zPlane float64) error {
	bw := bufio.NewWriter(w)
	z := FormatNumber(zPlane)
	for _, p := range points {
		if _, err := fmt.Fprintf(bw, "%s %s %s\n", FormatNumber(p.X), FormatNumber(p.Y), z); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WritePoints writes one "x y z" line per point using each point's own z.
func WritePoints(w io.Writer, points celllattice.PointSet) error {
	bw := bufio.NewWriter(w)
	for _, p := range points {
		if _, err := fmt.Fprintf(bw, "%s %s %s\n", FormatNumber(p.X), FormatNumber(p.Y), FormatNumber(p.Z)); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ReadPositions parses a position file. Blank lines are skipped.
func ReadPositions(r io.Reader) (celllattice.PointSet, error) {
	var points celllattice.PointSet
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 3 {
			return nil, fmt.Errorf("ReadPositions: line %d: got %d fields, want 3: %w", line, len(fields), ErrMalformedLine)
		}
		var xyz [3]float64
		for i, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("ReadPositions: line %d: %v: %w", line, err, ErrMalformedLine)
			}
			xyz[i] = v
		}
		points = append(points, r3.Vector{X: xyz[0], Y: xyz[1], Z: xyz[2]})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return points, nil
}

// FormatNumber returns the shortest decimal representation of v that
// parses back to v, without an exponent.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// WriteFile creates or truncates the named file and fills it with write.
func WriteFile(name string, write func(io.Writer) error) (err error) {
	file, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return write(file)
}
