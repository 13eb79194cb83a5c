package plot

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/KaramelBytes/tabstat-cli/internal/dataset"
)

const (
	minScatterHeight = 8
	maxScatterHeight = 20
)

// Scatter plots y against x over the rows where both are present. Cells are
// marked by how many points land in them: · for one, ◦ for two or three,
// ● for more.
func Scatter(xName, yName string, x, y []dataset.OptFloat, width, height int) string {
	xs, ys := dataset.CompletePairs(x, y)
	if len(xs) == 0 {
		return fmt.Sprintf("%s vs %s: No complete pairs of data", xName, yName)
	}
	xMin, xMax := bounds(xs)
	yMin, yMax := bounds(ys)

	w := clampInt(width, minPlotWidth, maxPlotWidth)
	h := clampInt(height, minScatterHeight, maxScatterHeight)
	xScale := NewLinear(xMin, xMax, w)
	yScale := NewLinear(yMin, yMax, h)

	density := make(map[[2]int]int, len(xs))
	for i := range xs {
		density[[2]int{yScale.InvertedPosition(ys[i]), xScale.Position(xs[i])}]++
	}
	grid := make([][]rune, h)
	for r := range grid {
		grid[r] = blank(w)
	}
	for cell, count := range density {
		mark := '·'
		switch {
		case count > 3:
			mark = '●'
		case count > 1:
			mark = '◦'
		}
		grid[cell[0]][cell[1]] = mark
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s vs %s (n=%d)\n\n", yName, xName, len(xs))
	for r, row := range grid {
		if r == 0 || r == h-1 || r == h/2 {
			yv := yMax - float64(r)/float64(h-1)*yScale.Range()
			fmt.Fprintf(&b, "%8.1f│", yv)
		} else {
			b.WriteString("        │")
		}
		b.WriteString(string(row))
		b.WriteByte('\n')
	}
	b.WriteString("        └")
	b.WriteString(strings.Repeat("─", w))
	b.WriteByte('\n')

	maxLabel := fmt.Sprintf("%.1f", xMax)
	fmt.Fprintf(&b, "         %-*s%s\n", max(w-len(maxLabel), 0), fmt.Sprintf("%.1f", xMin), maxLabel)
	fmt.Fprintf(&b, "         %s\n", center(xName, w))
	return b.String()
}

func bounds(vals []float64) (lo, hi float64) {
	lo, hi = vals[0], vals[0]
	for _, v := range vals[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}

// center pads s with spaces to width runes, extra space going right.
func center(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	left := (width - n) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-n-left)
}
