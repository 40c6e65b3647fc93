// SPDX-License-Identifier: MIT

package matrix

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseWeightMatrix reads a whitespace- or comma-separated matrix, one row per
// line. "-" means "no edge" (stored as 0), "inf"/"-inf" are accepted, blank
// lines and lines starting with '#' are skipped. Shape is checked
// (ErrNonSquare); symmetry is left to the importers.
func ParseWeightMatrix(r io.Reader) ([][]float64, error) {
	_, m, err := ReadWeightMatrix(r)

	return m, err
}

// ReadWeightMatrix is ParseWeightMatrix that also returns the node IDs from a
// leading "# id id ..." header, as written by WriteWeightMatrix. ids is nil
// when there is no header or its length differs from the matrix order.
func ReadWeightMatrix(r io.Reader) ([]string, [][]float64, error) {
	var (
		m      [][]float64
		header []string
	)
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		if strings.HasPrefix(text, "#") {
			if m == nil && header == nil {
				header = strings.Fields(strings.TrimPrefix(text, "#"))
			}
			continue
		}
		fields := strings.FieldsFunc(text, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t' || r == ';'
		})
		row := make([]float64, len(fields))
		for j, f := range fields {
			if f == "-" {
				continue
			}
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, nil, fmt.Errorf("%w: line %d column %d: %q", ErrBadValue, line, j+1, f)
			}
			row[j] = v
		}
		m = append(m, row)
	}
	if err := sc.Err(); err != nil {
		return nil, nil, fmt.Errorf("matrix: read: %w", err)
	}
	if err := validateSquare(m); err != nil {
		return nil, nil, err
	}
	if len(header) != len(m) {
		header = nil
	}

	return header, m, nil
}

// WriteWeightMatrix writes ids as a '#' header line followed by the matrix,
// using "-" for absent edges. The output parses back with ParseWeightMatrix.
func WriteWeightMatrix(w io.Writer, ids []string, m [][]float64) error {
	bw := bufio.NewWriter(w)
	if len(ids) > 0 {
		fmt.Fprintf(bw, "# %s\n", strings.Join(ids, " "))
	}
	for _, row := range m {
		cells := make([]string, len(row))
		for j, v := range row {
			if noEdge(v) {
				cells[j] = "-"
				continue
			}
			cells[j] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		fmt.Fprintln(bw, strings.Join(cells, " "))
	}

	return bw.Flush()
}
