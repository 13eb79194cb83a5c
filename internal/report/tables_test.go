package report

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KaramelBytes/tabstat-cli/internal/analysis"
	"github.com/KaramelBytes/tabstat-cli/internal/dataset"
)

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{math.NaN(), "NaN"},
		{math.Inf(1), "Inf"},
		{math.Inf(-1), "-Inf"},
		{0, "0.00"},
		{3.14159, "3.14"},
		{-1234567.891, "-1234567.89"},
		{0.123456, "0.1235"},
		{-0.5, "-0.5000"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatFloat(tt.in))
	}
}

func sample() *dataset.Dataset {
	return dataset.New(
		[]string{"height", "weight", "city"},
		[][]string{
			{"150", "50", "Oslo"},
			{"160", "NA", "Rome"},
			{"170", "70", "Oslo"},
			{"180", "80", ""},
		},
	)
}

func TestFormatSummary(t *testing.T) {
	out := Formatter{}.FormatSummary(analysis.DescribeAll(sample()))
	for _, want := range []string{"Variable", "Median", "height", "weight", "165.00", "╭", "╰"} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, "\x1b[")
}

func TestFormatCategorical(t *testing.T) {
	out := Formatter{}.FormatCategorical(analysis.CategoricalSummaries(sample()))
	assert.Contains(t, out, "Top Values")
	assert.Contains(t, out, "Oslo (2), Rome (1)")
}

func TestFormatMissing(t *testing.T) {
	f := Formatter{}
	out := f.FormatMissing(analysis.AnalyzeMissing(sample()))
	assert.True(t, strings.HasPrefix(out, "Missing Data Report:\n"))
	assert.Contains(t, out, "25.00%")

	pat := f.FormatMissingPatterns(analysis.MissingPatterns(sample()))
	assert.Contains(t, pat, "50.00% of observations (2/4) have at least one missing value")
	assert.Contains(t, pat, "Most common missing patterns:")
	assert.Contains(t, pat, "weight")

	none := f.FormatMissingPatterns(analysis.MissingPatterns(dataset.New([]string{"a"}, [][]string{{"1"}})))
	assert.Equal(t, "No missing data found.\n", none)
}

func TestFormatCorrelation(t *testing.T) {
	m := analysis.CorrMatrix{
		Columns: []string{"alpha", "a_very_long_name"},
		Values:  [][]float64{{1, math.NaN()}, {math.NaN(), 1}},
	}
	out := Formatter{}.FormatCorrelation(m)
	lines := strings.Split(out, "\n")
	assert.Equal(t, "Correlation Matrix (Pearson):", lines[0])
	assert.Equal(t, "            alphaa_very_l", lines[1])
	assert.Equal(t, "   alpha     1.00     NaN", lines[2])
	assert.Equal(t, "a_very_l      NaN    1.00", lines[3])
}

func TestFormatCorrelationPlainHasNoEscapes(t *testing.T) {
	m := analysis.CorrMatrix{Columns: []string{"a", "b"}, Values: [][]float64{{1, 0.9}, {0.9, 1}}}
	out := Formatter{Color: false}.FormatCorrelation(m)
	assert.NotContains(t, out, "\x1b[")
	assert.Contains(t, out, "    0.90")
}

func TestFormatHighCorrelations(t *testing.T) {
	f := Formatter{}
	assert.Equal(t, "", f.FormatHighCorrelations(nil, 0.5))
	out := f.FormatHighCorrelations([]analysis.PairCorr{{A: "x", B: "y", R: -0.8123}}, 0.5)
	assert.Equal(t, "\nHigh correlations (|r| > 0.5):\n  - x ↔ y: -0.81\n", out)
}

func TestFormatTypes(t *testing.T) {
	f := Formatter{}
	infos := analysis.InferTypes(sample())
	plain := f.FormatTypes(infos, false)
	assert.True(t, strings.HasPrefix(plain, "Data Types:\n"))
	assert.Contains(t, plain, "Numeric")
	assert.Contains(t, plain, "Categorical")
	assert.NotContains(t, plain, "Levels")

	levels := f.FormatTypes(infos, true)
	assert.Contains(t, levels, "Levels")
	assert.Contains(t, levels, "Oslo, Rome")
}

func TestFormatComparison(t *testing.T) {
	left := sample()
	left.Name = "a.csv"
	right := sample()
	right.Name = "b.csv"
	out := Formatter{}.FormatComparison(analysis.Compare(left, right, nil))
	assert.True(t, strings.HasPrefix(out, "Comparison: a.csv vs b.csv\n"))
	assert.Contains(t, out, "a.csv Mean")
	assert.Contains(t, out, "Diff Mean")
	assert.Contains(t, out, "Missing Data Comparison:")
	assert.Contains(t, out, "a.csv Missing")
	assert.Equal(t, "+3", signed(3))
	assert.Equal(t, "0", signed(0))
	assert.Equal(t, "-2", signed(-2))
}
