package plot

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/KaramelBytes/tabstat-cli/internal/analysis"
)

const (
	minPlotWidth = 20
	maxPlotWidth = 60
)

// BoxStats are the five-number summary and Tukey whiskers of a sample.
type BoxStats struct {
	Min, Q1, Median, Q3, Max float64
	LowerWhisker             float64
	UpperWhisker             float64
	Outliers                 []float64
}

// IQR is Q3-Q1.
func (s BoxStats) IQR() float64 { return s.Q3 - s.Q1 }

// ComputeBox derives box statistics from an ascending, non-empty slice.
// Whiskers reach the most extreme values within 1.5 IQR of the quartiles.
func ComputeBox(sorted []float64) BoxStats {
	n := len(sorted)
	s := BoxStats{
		Min:    sorted[0],
		Q1:     analysis.Percentile(sorted, 25),
		Median: analysis.Percentile(sorted, 50),
		Q3:     analysis.Percentile(sorted, 75),
		Max:    sorted[n-1],
	}
	lo := s.Q1 - 1.5*s.IQR()
	hi := s.Q3 + 1.5*s.IQR()

	s.LowerWhisker = s.Min
	for _, v := range sorted {
		if v >= lo {
			s.LowerWhisker = v
			break
		}
	}
	s.UpperWhisker = s.Max
	for i := n - 1; i >= 0; i-- {
		if sorted[i] <= hi {
			s.UpperWhisker = sorted[i]
			break
		}
	}
	for _, v := range sorted {
		if v < s.LowerWhisker || v > s.UpperWhisker {
			s.Outliers = append(s.Outliers, v)
		}
	}
	return s
}

// Boxplot draws a horizontal box-and-whisker plot of values.
func Boxplot(name string, values []float64, width int) string {
	if len(values) == 0 {
		return fmt.Sprintf("%s: No valid numeric data", name)
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	s := ComputeBox(sorted)

	w := clampInt(width, minPlotWidth, maxPlotWidth)
	scale := NewLinear(s.Min, s.Max, w)
	pos := func(v float64) int {
		if scale.Degenerate() {
			return w / 2
		}
		return scale.Position(v)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s: Boxplot (n=%d)\n\n", name, len(sorted))

	top := blank(w)
	for _, o := range s.Outliers {
		top[pos(o)] = 'o'
	}
	writeLine(&b, top)

	line := blank(w)
	lw, q1, med, q3, uw := pos(s.LowerWhisker), pos(s.Q1), pos(s.Median), pos(s.Q3), pos(s.UpperWhisker)
	for i := lw; i <= uw; i++ {
		line[i] = '─'
	}
	for i := q1; i <= q3; i++ {
		line[i] = '█'
	}
	line[med] = '│'
	line[lw] = '├'
	line[uw] = '┤'
	writeLine(&b, line)

	b.WriteString("  ")
	b.WriteString(strings.Repeat("─", w))
	b.WriteByte('\n')

	minLabel, maxLabel := FormatShort(s.Min), FormatShort(s.Max)
	fmt.Fprintf(&b, "  %-*s%s\n\n", max(w-utf8.RuneCountInString(maxLabel), 0), minLabel, maxLabel)

	fmt.Fprintf(&b, "Min: %.2f | Q1: %.2f | Median: %.2f | Q3: %.2f | Max: %.2f",
		s.Min, s.Q1, s.Median, s.Q3, s.Max)
	if len(s.Outliers) > 0 {
		fmt.Fprintf(&b, "\nOutliers: %d values", len(s.Outliers))
	}
	return b.String()
}

func blank(n int) []rune {
	out := make([]rune, n)
	for i := range out {
		out[i] = ' '
	}
	return out
}

func writeLine(b *strings.Builder, cells []rune) {
	b.WriteString("  ")
	b.WriteString(string(cells))
	b.WriteByte('\n')
}
