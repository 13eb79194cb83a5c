package analysis

import "github.com/KaramelBytes/tabstat-cli/internal/dataset"

// StatsComparison pairs the statistics of one column in two datasets.
type StatsComparison struct {
	Name     string
	Left     DescriptiveStats
	Right    DescriptiveStats
	MeanDiff float64 // Right.Mean - Left.Mean; NaN if either is NaN
}

// MissingComparison pairs the missing counts of one column in two datasets.
type MissingComparison struct {
	Name  string
	Left  MissingInfo
	Right MissingInfo
	Diff  int // Right.Missing - Left.Missing
}

// Comparison is a side-by-side view of two datasets.
type Comparison struct {
	LeftLabel  string
	RightLabel string
	Stats      []StatsComparison
	Missing    []MissingComparison
}

// Compare describes the named columns (every Numeric column of each side when
// names is nil) and matches them by name. Columns present on only one side
// are left out.
func Compare(left, right *dataset.Dataset, names []string) Comparison {
	cmp := Comparison{LeftLabel: left.Name, RightLabel: right.Name}

	var ls, rs []DescriptiveStats
	if names == nil {
		ls, rs = DescribeAll(left), DescribeAll(right)
	} else {
		ls, rs = DescribeSelected(left, names), DescribeSelected(right, names)
	}
	byName := make(map[string]DescriptiveStats, len(rs))
	for _, s := range rs {
		byName[s.Name] = s
	}
	for _, l := range ls {
		r, ok := byName[l.Name]
		if !ok {
			continue
		}
		cmp.Stats = append(cmp.Stats, StatsComparison{Name: l.Name, Left: l, Right: r, MeanDiff: r.Mean - l.Mean})
	}

	rm := make(map[string]MissingInfo)
	for _, m := range AnalyzeMissing(right) {
		rm[m.Name] = m
	}
	for _, l := range AnalyzeMissing(left) {
		r, ok := rm[l.Name]
		if !ok {
			continue
		}
		cmp.Missing = append(cmp.Missing, MissingComparison{Name: l.Name, Left: l, Right: r, Diff: r.Missing - l.Missing})
	}
	return cmp
}
