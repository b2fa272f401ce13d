// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package cardfile

import (
	"bufio"
	"io"
	"os"
	"strings"
)

// AppendSummary appends one row of space-separated values to the named
// file, creating it if needed.
func AppendSummary(name string, values ...float64) (err error) {
	file, err := os.OpenFile(name, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	_, err = io.WriteString(file, SummaryRow(values...))
	return err
}

// SummaryRow formats values as a summary row, newline included.
func SummaryRow(values ...float64) string {
	cols := make([]string, len(values))
	for i, v := range values {
		cols[i] = FormatNumber(v)
	}
	return strings.Join(cols, " ") + "\n"
}

// ExportValues writes one value per line.
func ExportValues(w io.Writer, values []float64) error {
	bw := bufio.NewWriter(w)
	for _, v := range values {
		if _, err := bw.WriteString(FormatNumber(v) + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}
