package plot

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/KaramelBytes/tabstat-cli/internal/analysis"
)

const (
	minBins       = 5
	maxHistHeight = 15
)

// binCount applies Sturges' rule, ceil(log2 n)+1, bounded to [5, width/2].
// A single value gets one bin and the result is never below one.
func binCount(n, width int) int {
	if n <= 1 {
		return 1
	}
	bins := int(math.Ceil(math.Log2(float64(n)))) + 1
	if bins < minBins {
		bins = minBins
	}
	if bins > width/2 {
		bins = width / 2
	}
	if bins < 1 {
		bins = 1
	}
	return bins
}

// Histogram draws a vertical bar chart of values. Each bin is two characters
// wide; height is capped at 15 rows.
func Histogram(name string, values []float64, width, height int) string {
	if len(values) == 0 {
		return fmt.Sprintf("%s: No valid numeric data", name)
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	n := len(sorted)

	nbins := binCount(n, width)
	scale := NewLinear(sorted[0], sorted[n-1], nbins)
	bins := make([]int, nbins)
	for _, v := range sorted {
		bins[scale.Bucket(v)]++
	}
	maxCount := 0
	for _, c := range bins {
		if c > maxCount {
			maxCount = c
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s: Distribution (n=%d)\n\n", name, n)

	rows := clampInt(height, 1, maxHistHeight)
	half := float64(maxCount) / float64(rows) / 2
	for row := rows - 1; row >= 0; row-- {
		threshold := (float64(row) + 0.5) / float64(rows) * float64(maxCount)
		switch {
		case row == rows-1:
			fmt.Fprintf(&b, "%4d", maxCount)
		case row == 0:
			fmt.Fprintf(&b, "%4d", 0)
		case row == rows/2:
			fmt.Fprintf(&b, "%4d", maxCount/2)
		default:
			b.WriteString("    ")
		}
		b.WriteByte('|')
		for _, c := range bins {
			count := float64(c)
			switch {
			case count >= threshold:
				b.WriteString("██")
			case count >= threshold-half:
				b.WriteString("▄▄")
			default:
				b.WriteString("  ")
			}
		}
		b.WriteByte('\n')
	}

	b.WriteString("    └")
	b.WriteString(strings.Repeat("──", nbins))
	b.WriteByte('\n')

	b.WriteString("     ")
	step := nbins / 5
	if step < 1 {
		step = 1
	}
	for i := 0; i < nbins; i++ {
		if i%step != 0 {
			b.WriteString("  ")
			continue
		}
		label := FormatShort(scale.Edge(i))
		b.WriteString(label)
		// labels up to two wide are followed by a two-space gap, longer ones shrink it
		if pad := 2 - max(utf8.RuneCountInString(label)-2, 0); pad > 0 {
			b.WriteString(strings.Repeat(" ", pad))
		}
	}
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "Mean: %.2f | Median: %.2f | Std: %.2f",
		analysis.Mean(sorted), analysis.Percentile(sorted, 50), analysis.StdDev(sorted))
	return b.String()
}
