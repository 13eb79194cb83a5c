package analysis

import (
	"math"
	"sort"

	"github.com/montanaflynn/stats"

	"github.com/KaramelBytes/tabstat-cli/internal/dataset"
)

// DescriptiveStats summarizes one numeric column.
type DescriptiveStats struct {
	Name    string
	Count   int
	Missing int
	Mean    float64
	StdDev  float64
	Min     float64
	Q1      float64
	Median  float64
	Q3      float64
	Max     float64
}

// topValues bounds CategoricalSummary.TopValues.
const topValues = 10

// CategoricalSummary holds value frequencies for a non-numeric column.
type CategoricalSummary struct {
	Name      string
	Total     int
	Missing   int
	Unique    int
	TopValues []ValueCount
}

// Mean returns the arithmetic mean, or NaN for no values.
func Mean(values []float64) float64 {
	m, err := stats.Mean(values)
	if err != nil {
		return math.NaN()
	}
	return m
}

// StdDev returns the sample standard deviation. Fewer than two values give 0.
func StdDev(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	sd, err := stats.StandardDeviationSample(values)
	if err != nil {
		return 0
	}
	return sd
}

// Percentile interpolates linearly between the closest ranks of an ascending
// slice: index = p/100*(n-1). p is clamped to [0, 100]; an empty slice gives NaN.
func Percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return math.NaN()
	}
	if n == 1 {
		return sorted[0]
	}
	p = math.Max(0, math.Min(100, p))
	idx := p / 100 * float64(n-1)
	lo := int(math.Floor(idx))
	hi := int(math.Ceil(idx))
	if lo == hi {
		return sorted[lo]
	}
	frac := idx - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}

// Describe computes descriptive statistics for the named column.
// ok is false when the column does not exist.
func Describe(ds *dataset.Dataset, name string) (DescriptiveStats, bool) {
	col, ok := ds.NumericColumn(name)
	if !ok {
		return DescriptiveStats{}, false
	}
	values := dataset.Present(col)
	return describeValues(name, values, len(col)-len(values)), true
}

func describeValues(name string, values []float64, missing int) DescriptiveStats {
	if len(values) == 0 {
		nan := math.NaN()
		return DescriptiveStats{
			Name: name, Missing: missing,
			Mean: nan, StdDev: nan, Min: nan, Q1: nan, Median: nan, Q3: nan, Max: nan,
		}
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	return DescriptiveStats{
		Name:    name,
		Count:   len(sorted),
		Missing: missing,
		Mean:    Mean(sorted),
		StdDev:  StdDev(sorted),
		Min:     sorted[0],
		Q1:      Percentile(sorted, 25),
		Median:  Percentile(sorted, 50),
		Q3:      Percentile(sorted, 75),
		Max:     sorted[len(sorted)-1],
	}
}

// DescribeAll describes every Numeric column in header order.
func DescribeAll(ds *dataset.Dataset) []DescriptiveStats {
	return DescribeSelected(ds, NumericColumns(ds))
}

// DescribeSelected describes the named columns in the given order, dropping
// names that are not in the dataset.
func DescribeSelected(ds *dataset.Dataset, names []string) []DescriptiveStats {
	out := make([]DescriptiveStats, 0, len(names))
	for _, name := range names {
		if s, ok := Describe(ds, name); ok {
			out = append(out, s)
		}
	}
	return out
}

// CategoricalSummaryFor counts the non-missing values of the named column.
func CategoricalSummaryFor(ds *dataset.Dataset, name string) (CategoricalSummary, bool) {
	values, ok := ds.Column(name)
	if !ok {
		return CategoricalSummary{}, false
	}
	s := CategoricalSummary{Name: name, Total: len(values)}
	counts := newTally()
	for _, v := range nonMissing(values) {
		counts.add(v)
	}
	s.Missing = s.Total - countPresent(counts)
	s.Unique = counts.len()
	top := counts.sorted()
	if len(top) > topValues {
		top = top[:topValues]
	}
	s.TopValues = top
	return s, true
}

// CategoricalSummaries summarizes every non-Numeric column in header order.
func CategoricalSummaries(ds *dataset.Dataset) []CategoricalSummary {
	var out []CategoricalSummary
	for _, info := range InferTypes(ds) {
		if info.Type == Numeric {
			continue
		}
		if s, ok := CategoricalSummaryFor(ds, info.Name); ok {
			out = append(out, s)
		}
	}
	return out
}

func countPresent(t *tally) int {
	n := 0
	for _, it := range t.items {
		n += it.Count
	}
	return n
}
