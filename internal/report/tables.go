package report

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/KaramelBytes/tabstat-cli/internal/analysis"
)

const corrColWidth = 8

// FormatSummary renders descriptive statistics, one row per column.
func (f Formatter) FormatSummary(stats []analysis.DescriptiveStats) string {
	rows := make([][]string, 0, len(stats))
	for _, s := range stats {
		rows = append(rows, []string{
			s.Name,
			strconv.Itoa(s.Count),
			FormatFloat(s.Mean),
			FormatFloat(s.StdDev),
			FormatFloat(s.Min),
			FormatFloat(s.Q1),
			FormatFloat(s.Median),
			FormatFloat(s.Q3),
			FormatFloat(s.Max),
		})
	}
	return f.table([]string{"Variable", "Count", "Mean", "Std", "Min", "Q1", "Median", "Q3", "Max"}, rows)
}

// FormatCategorical renders value frequencies; at most five top values per column.
func (f Formatter) FormatCategorical(sums []analysis.CategoricalSummary) string {
	rows := make([][]string, 0, len(sums))
	for _, s := range sums {
		var top []string
		for i, vc := range s.TopValues {
			if i == 5 {
				break
			}
			top = append(top, fmt.Sprintf("%s (%d)", vc.Value, vc.Count))
		}
		rows = append(rows, []string{
			s.Name,
			strconv.Itoa(s.Total),
			strconv.Itoa(s.Missing),
			strconv.Itoa(s.Unique),
			strings.Join(top, ", "),
		})
	}
	return f.table([]string{"Variable", "Total", "Missing", "Unique", "Top Values"}, rows)
}

// FormatMissing renders per-column missing counts.
func (f Formatter) FormatMissing(infos []analysis.MissingInfo) string {
	rows := make([][]string, 0, len(infos))
	for _, m := range infos {
		rows = append(rows, []string{m.Name, strconv.Itoa(m.Missing), fmt.Sprintf("%.2f%%", m.Pct)})
	}
	return "Missing Data Report:\n" + f.table([]string{"Variable", "Missing", "% Missing"}, rows)
}

// FormatMissingPatterns renders the row-level share of missing data and the
// most common patterns.
func (f Formatter) FormatMissingPatterns(rep analysis.MissingPatternReport) string {
	if rep.RowsWithMissing == 0 {
		return "No missing data found.\n"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "\n%.2f%% of observations (%d/%d) have at least one missing value\n",
		rep.PctWithMissing, rep.RowsWithMissing, rep.TotalRows)
	if len(rep.Patterns) > 0 {
		b.WriteString("\nMost common missing patterns:\n")
		rows := make([][]string, 0, len(rep.Patterns))
		for _, p := range rep.Patterns {
			rows = append(rows, []string{strings.Join(p.Columns, ", "), strconv.Itoa(p.Count)})
		}
		b.WriteString(f.table([]string{"Missing Columns", "Count"}, rows))
	}
	return b.String()
}

// FormatCorrelation renders the matrix with fixed-width columns. Off-diagonal
// cells with |r| >= 0.7 are red, >= 0.5 yellow, when color is on.
func (f Formatter) FormatCorrelation(m analysis.CorrMatrix) string {
	var b strings.Builder
	b.WriteString("Correlation Matrix (Pearson):\n")
	fmt.Fprintf(&b, "%*s", corrColWidth+1, "")
	for _, c := range m.Columns {
		fmt.Fprintf(&b, "%*s", corrColWidth, truncate(c, corrColWidth))
	}
	b.WriteByte('\n')
	for i, name := range m.Columns {
		fmt.Fprintf(&b, "%*s ", corrColWidth, truncate(name, corrColWidth))
		for j := range m.Columns {
			r := m.Values[i][j]
			cell := fmt.Sprintf("%*s", corrColWidth, "NaN")
			if !math.IsNaN(r) {
				cell = fmt.Sprintf("%*.2f", corrColWidth, r)
			}
			b.WriteString(f.corrCell(cell, r, i == j))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// FormatHighCorrelations lists the strong pairs, or returns "" when there are none.
func (f Formatter) FormatHighCorrelations(pairs []analysis.PairCorr, threshold float64) string {
	if len(pairs) == 0 {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "\nHigh correlations (|r| > %.1f):\n", threshold)
	for _, p := range pairs {
		fmt.Fprintf(&b, "  - %s ↔ %s: %.2f\n", p.A, p.B, p.R)
	}
	return b.String()
}

// FormatTypes renders inferred column types, optionally with their levels.
func (f Formatter) FormatTypes(infos []analysis.ColumnTypeInfo, showLevels bool) string {
	headers := []string{"Variable", "Type", "Unique"}
	if showLevels {
		headers = append(headers, "Levels")
	}
	rows := make([][]string, 0, len(infos))
	for _, info := range infos {
		row := []string{info.Name, info.Type.String(), strconv.Itoa(info.UniqueCount)}
		if showLevels {
			row = append(row, strings.Join(info.Levels, ", "))
		}
		rows = append(rows, row)
	}
	return "Data Types:\n" + f.table(headers, rows)
}

// FormatComparison renders count, mean and std side by side followed by the
// missing-data comparison.
func (f Formatter) FormatComparison(c analysis.Comparison) string {
	l, r := c.LeftLabel, c.RightLabel
	rows := make([][]string, 0, len(c.Stats))
	for _, s := range c.Stats {
		rows = append(rows, []string{
			s.Name,
			strconv.Itoa(s.Left.Count),
			strconv.Itoa(s.Right.Count),
			FormatFloat(s.Left.Mean),
			FormatFloat(s.Right.Mean),
			FormatFloat(s.MeanDiff),
			FormatFloat(s.Left.StdDev),
			FormatFloat(s.Right.StdDev),
		})
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Comparison: %s vs %s\n", l, r)
	b.WriteString(f.table([]string{
		"Variable", l + " Count", r + " Count", l + " Mean", r + " Mean", "Diff Mean", l + " Std", r + " Std",
	}, rows))

	if len(c.Missing) > 0 {
		mrows := make([][]string, 0, len(c.Missing))
		for _, m := range c.Missing {
			mrows = append(mrows, []string{
				m.Name,
				fmt.Sprintf("%d (%.1f%%)", m.Left.Missing, m.Left.Pct),
				fmt.Sprintf("%d (%.1f%%)", m.Right.Missing, m.Right.Pct),
				signed(m.Diff),
			})
		}
		b.WriteString("\n\nMissing Data Comparison:\n")
		b.WriteString(f.table([]string{"Variable", l + " Missing", r + " Missing", "Diff"}, mrows))
	}
	return b.String()
}

func signed(n int) string {
	if n > 0 {
		return "+" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}

func truncate(s string, n int) string {
	rs := []rune(s)
	if len(rs) <= n {
		return s
	}
	return string(rs[:n])
}
