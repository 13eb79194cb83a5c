// Package plot renders terminal histograms, boxplots and scatter plots as
// plain strings. Nothing here does I/O.
package plot

import "math"

// Linear maps the closed data range [Min, Max] onto Cells discrete cells.
// A zero-width range is degenerate and uses a span of 1.
type Linear struct {
	Min, Max float64
	Cells    int
}

// NewLinear returns a bucketizer with at least one cell.
func NewLinear(min, max float64, cells int) Linear {
	if cells < 1 {
		cells = 1
	}
	return Linear{Min: min, Max: max, Cells: cells}
}

// Degenerate reports whether the data range has zero width.
func (l Linear) Degenerate() bool { return !(l.Max > l.Min) }

// Range is Max-Min, or 1 when degenerate.
func (l Linear) Range() float64 {
	if l.Degenerate() {
		return 1
	}
	return l.Max - l.Min
}

// Width is the data span of one bucket, or 1 when degenerate.
func (l Linear) Width() float64 {
	if l.Degenerate() {
		return 1
	}
	return l.Range() / float64(l.Cells)
}

// Bucket returns the bucket index of v; Max falls in the last bucket.
func (l Linear) Bucket(v float64) int {
	return l.clamp(int(math.Floor((v - l.Min) / l.Width())))
}

// Position rounds v onto cells 0..Cells-1, left to right.
func (l Linear) Position(v float64) int {
	return l.clamp(int(math.Round((v - l.Min) / l.Range() * float64(l.Cells-1))))
}

// InvertedPosition is Position measured from Max, so the largest value lands
// on cell 0. Used for rows drawn top to bottom.
func (l Linear) InvertedPosition(v float64) int {
	return l.clamp(int(math.Round((l.Max - v) / l.Range() * float64(l.Cells-1))))
}

// Edge returns the lower bound of bucket i.
func (l Linear) Edge(i int) float64 {
	return l.Min + float64(i)*l.Width()
}

func (l Linear) clamp(i int) int {
	if i < 0 {
		return 0
	}
	if i >= l.Cells {
		return l.Cells - 1
	}
	return i
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
