package plot

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KaramelBytes/tabstat-cli/internal/dataset"
)

func TestBinCount(t *testing.T) {
	assert.Equal(t, 1, binCount(1, 50))
	assert.Equal(t, 5, binCount(4, 50), "small samples get at least five bins")
	assert.Equal(t, 11, binCount(1000, 50))
	assert.Equal(t, 10, binCount(100000, 20), "bounded by half the width")
	assert.Equal(t, 1, binCount(100, 1))
}

func TestHistogram(t *testing.T) {
	values := []float64{1, 2, 2, 3, 3, 3, 4, 4, 5, 10}
	out := Histogram("score", values, 50, 12)
	lines := strings.Split(out, "\n")

	assert.Equal(t, "score: Distribution (n=10)", lines[0])
	assert.True(t, strings.HasPrefix(lines[2], "   5|"), lines[2])
	assert.Contains(t, out, "    └"+strings.Repeat("──", 5))
	assert.Contains(t, out, "Mean: 3.70 | Median: 3.00 | Std: 2.50")
	assert.Contains(t, out, "██")
	// 12 bar rows plus the title, a blank line, axis, labels, blank, footer
	assert.Len(t, lines, 12+6)
}

func TestHistogramHeightCap(t *testing.T) {
	out := Histogram("v", []float64{1, 2, 3}, 50, 40)
	// 15 bar rows plus the two footer separators
	assert.Equal(t, 15+2, strings.Count(out, "|"))
}

func TestHistogramEmpty(t *testing.T) {
	assert.Equal(t, "v: No valid numeric data", Histogram("v", nil, 50, 12))
}

func TestHistogramConstant(t *testing.T) {
	out := Histogram("c", []float64{7, 7, 7, 7}, 50, 12)
	assert.Contains(t, out, "c: Distribution (n=4)")
	assert.Contains(t, out, "Std: 0.00")
	assert.Contains(t, out, "   4|██")
}

func TestHistogramSingleValue(t *testing.T) {
	out := Histogram("one", []float64{2}, 50, 12)
	assert.Contains(t, out, "    └──\n")
	assert.Contains(t, out, "Mean: 2.00 | Median: 2.00 | Std: 0.00")
}

func TestComputeBox(t *testing.T) {
	s := ComputeBox([]float64{1, 2, 3, 4, 5, 6, 7, 8, 100})
	assert.Equal(t, 3.0, s.Q1)
	assert.Equal(t, 5.0, s.Median)
	assert.Equal(t, 7.0, s.Q3)
	assert.Equal(t, 1.0, s.LowerWhisker)
	assert.Equal(t, 8.0, s.UpperWhisker)
	assert.Equal(t, []float64{100}, s.Outliers)
}

func TestBoxplot(t *testing.T) {
	out := Boxplot("latency", []float64{100, 1, 2, 3, 4, 5, 6, 7, 8}, 40)
	lines := strings.Split(out, "\n")
	require.GreaterOrEqual(t, len(lines), 8)

	assert.Equal(t, "latency: Boxplot (n=9)", lines[0])
	assert.Equal(t, "  "+strings.Repeat(" ", 39)+"o", lines[2])
	assert.True(t, strings.HasPrefix(lines[3], "  ├"), lines[3])
	assert.Contains(t, lines[3], "█")
	assert.Contains(t, lines[3], "│")
	assert.Contains(t, lines[3], "┤")
	assert.Equal(t, "  "+strings.Repeat("─", 40), lines[4])
	assert.Equal(t, "  1"+strings.Repeat(" ", 36)+"100", lines[5])
	assert.Contains(t, out, "Min: 1.00 | Q1: 3.00 | Median: 5.00 | Q3: 7.00 | Max: 100.00")
	assert.True(t, strings.HasSuffix(out, "Outliers: 1 values"))
}

func TestBoxplotWidthClamp(t *testing.T) {
	narrow := strings.Split(Boxplot("v", []float64{1, 2, 3}, 5), "\n")
	assert.Equal(t, "  "+strings.Repeat("─", 20), narrow[4])
	wide := strings.Split(Boxplot("v", []float64{1, 2, 3}, 500), "\n")
	assert.Equal(t, "  "+strings.Repeat("─", 60), wide[4])
}

func TestBoxplotConstant(t *testing.T) {
	out := Boxplot("c", []float64{4, 4, 4}, 30)
	lines := strings.Split(out, "\n")
	assert.Equal(t, "  "+strings.Repeat(" ", 15)+"┤"+strings.Repeat(" ", 14), lines[3])
	assert.NotContains(t, out, "Outliers")
}

func TestBoxplotEmpty(t *testing.T) {
	assert.Equal(t, "v: No valid numeric data", Boxplot("v", nil, 50))
}

func TestScatter(t *testing.T) {
	x := []dataset.OptFloat{{V: 0, OK: true}, {V: 10, OK: true}, {V: 5, OK: true}, {}, {V: 10, OK: true}}
	y := []dataset.OptFloat{{V: 0, OK: true}, {V: 100, OK: true}, {V: 50, OK: true}, {V: 1, OK: true}, {V: 100, OK: true}}
	out := Scatter("x", "y", x, y, 21, 11)
	lines := strings.Split(out, "\n")

	assert.Equal(t, "y vs x (n=4)", lines[0])
	assert.Equal(t, "   100.0│"+strings.Repeat(" ", 20)+"◦", lines[2])
	assert.Equal(t, "    50.0│"+strings.Repeat(" ", 10)+"·"+strings.Repeat(" ", 10), lines[7])
	assert.Equal(t, "     0.0│·"+strings.Repeat(" ", 20), lines[12])
	assert.Equal(t, "        └"+strings.Repeat("─", 21), lines[13])
	assert.Equal(t, "         0.0"+strings.Repeat(" ", 14)+"10.0", lines[14])
	assert.Equal(t, "         "+strings.Repeat(" ", 10)+"x"+strings.Repeat(" ", 10), lines[15])
}

func TestScatterDensity(t *testing.T) {
	var x, y []dataset.OptFloat
	for i := 0; i < 5; i++ {
		x = append(x, dataset.OptFloat{V: 1, OK: true})
		y = append(y, dataset.OptFloat{V: 1, OK: true})
	}
	out := Scatter("a", "b", x, y, 20, 8)
	assert.Equal(t, 1, strings.Count(out, "●"))
	assert.Contains(t, out, "b vs a (n=5)")
}

func TestScatterNoPairs(t *testing.T) {
	x := []dataset.OptFloat{{V: 1, OK: true}, {}}
	y := []dataset.OptFloat{{}, {V: 2, OK: true}}
	assert.Equal(t, "a vs b: No complete pairs of data", Scatter("a", "b", x, y, 40, 10))
}

func TestColumnWrappers(t *testing.T) {
	ds := dataset.New([]string{"a", "b"}, [][]string{{"1", "2"}, {"2", "4"}, {"3", "NA"}})

	out, ok := HistogramColumn(ds, "a", 50, 10)
	require.True(t, ok)
	assert.Contains(t, out, "a: Distribution (n=3)")

	out, ok = BoxplotColumn(ds, "b", 50)
	require.True(t, ok)
	assert.Contains(t, out, "b: Boxplot (n=2)")

	out, ok = ScatterColumns(ds, "a", "b", 40, 10)
	require.True(t, ok)
	assert.Contains(t, out, "b vs a (n=2)")

	_, ok = HistogramColumn(ds, "zzz", 50, 10)
	assert.False(t, ok)
	_, ok = BoxplotColumn(ds, "zzz", 50)
	assert.False(t, ok)
	_, ok = ScatterColumns(ds, "a", "zzz", 40, 10)
	assert.False(t, ok)
}
