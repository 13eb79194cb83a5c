// Package dataset holds the in-memory table every analysis reads from, the
// missing-value classifier, and the loaders that build tables from CSV, TSV,
// XLSX files or a stream.
package dataset

import (
	"math"
	"strconv"
	"strings"
)

// Dataset is a rectangular table of raw string cells.
// Loaders guarantee len(row) == len(Headers) for every row; accessors still
// treat an out-of-range cell as empty.
type Dataset struct {
	Name    string
	Headers []string
	Rows    [][]string
	// Skipped counts rows dropped because of Options.MaxRows.
	Skipped int
}

// OptFloat is one entry of a numeric column view. OK is false when the cell is
// missing or does not parse as a finite number.
type OptFloat struct {
	V  float64
	OK bool
}

// New builds a dataset from headers and rows without copying them.
func New(headers []string, rows [][]string) *Dataset {
	return &Dataset{Headers: headers, Rows: rows}
}

// NRows returns the number of data rows.
func (d *Dataset) NRows() int { return len(d.Rows) }

// NCols returns the number of columns.
func (d *Dataset) NCols() int { return len(d.Headers) }

// ColIndex returns the position of the named column, or -1.
func (d *Dataset) ColIndex(name string) int {
	for i, h := range d.Headers {
		if h == name {
			return i
		}
	}
	return -1
}

// Has reports whether the named column exists.
func (d *Dataset) Has(name string) bool { return d.ColIndex(name) >= 0 }

// Cell returns the raw value at (row, col), or "" when out of range.
func (d *Dataset) Cell(row, col int) string {
	if row < 0 || row >= len(d.Rows) || col < 0 || col >= len(d.Rows[row]) {
		return ""
	}
	return d.Rows[row][col]
}

// Column returns the raw values of the named column in row order.
func (d *Dataset) Column(name string) ([]string, bool) {
	idx := d.ColIndex(name)
	if idx < 0 {
		return nil, false
	}
	out := make([]string, len(d.Rows))
	for i := range d.Rows {
		out[i] = d.Cell(i, idx)
	}
	return out, true
}

// NumericColumn returns the numeric view of the named column: one entry per
// row, absent where the cell is missing or unparseable.
func (d *Dataset) NumericColumn(name string) ([]OptFloat, bool) {
	idx := d.ColIndex(name)
	if idx < 0 {
		return nil, false
	}
	out := make([]OptFloat, len(d.Rows))
	for i := range d.Rows {
		if v, ok := ParseNumber(d.Cell(i, idx)); ok {
			out[i] = OptFloat{V: v, OK: true}
		}
	}
	return out, true
}

// ValidNumericColumn returns only the present values of the numeric view.
func (d *Dataset) ValidNumericColumn(name string) ([]float64, bool) {
	col, ok := d.NumericColumn(name)
	if !ok {
		return nil, false
	}
	return Present(col), true
}

// SelectColumns returns a dataset restricted to the named columns in the
// given order. Unknown names are skipped.
func (d *Dataset) SelectColumns(names []string) *Dataset {
	var idxs []int
	var headers []string
	for _, n := range names {
		if i := d.ColIndex(n); i >= 0 {
			idxs = append(idxs, i)
			headers = append(headers, d.Headers[i])
		}
	}
	rows := make([][]string, len(d.Rows))
	for r := range d.Rows {
		row := make([]string, len(idxs))
		for j, i := range idxs {
			row[j] = d.Cell(r, i)
		}
		rows[r] = row
	}
	return &Dataset{Name: d.Name, Headers: headers, Rows: rows, Skipped: d.Skipped}
}

// Present drops absent entries from a numeric view.
func Present(col []OptFloat) []float64 {
	out := make([]float64, 0, len(col))
	for _, v := range col {
		if v.OK {
			out = append(out, v.V)
		}
	}
	return out
}

// CompletePairs keeps the row positions where both views are present.
// Views of unequal length are compared over the shorter one.
func CompletePairs(x, y []OptFloat) (xs, ys []float64) {
	n := len(x)
	if len(y) < n {
		n = len(y)
	}
	for i := 0; i < n; i++ {
		if x[i].OK && y[i].OK {
			xs = append(xs, x[i].V)
			ys = append(ys, y[i].V)
		}
	}
	return xs, ys
}

// ParseNumber parses a raw cell as a finite float64 using Go's
// locale-independent syntax. Missing cells and non-finite results are rejected.
func ParseNumber(s string) (float64, bool) {
	v := strings.TrimSpace(s)
	if IsMissing(v) {
		return 0, false
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
