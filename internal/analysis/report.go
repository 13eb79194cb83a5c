package analysis

import (
	"fmt"

	"github.com/KaramelBytes/tabstat-cli/internal/dataset"
)

// ReportOptions controls BuildReport.
type ReportOptions struct {
	// SampleRows determines how many example rows to include in the report.
	SampleRows int
	// Correlations computes the Pearson matrix among numeric columns.
	Correlations bool
	// CorrThreshold is the |r| cut-off for highlighted pairs.
	CorrThreshold float64
}

// DefaultReportOptions returns reasonable defaults for a dataset report.
func DefaultReportOptions() ReportOptions {
	return ReportOptions{SampleRows: 5, Correlations: true, CorrThreshold: 0.5}
}

// Report gathers every analysis of one dataset.
type Report struct {
	Name        string
	Rows        int
	Skipped     int
	Types       []ColumnTypeInfo
	Numeric     []DescriptiveStats
	Categorical []CategoricalSummary
	Missing     []MissingInfo
	Patterns    MissingPatternReport
	Corr        *CorrMatrix
	HighCorr    []PairCorr
	Headers     []string
	Samples     [][]string
	Warnings    []string
}

// BuildReport runs the full analysis over ds.
func BuildReport(ds *dataset.Dataset, opt ReportOptions) *Report {
	rep := &Report{
		Name:     ds.Name,
		Rows:     ds.NRows(),
		Skipped:  ds.Skipped,
		Types:    InferTypes(ds),
		Missing:  AnalyzeMissing(ds),
		Patterns: MissingPatterns(ds),
		Headers:  ds.Headers,
	}
	var numeric []string
	for _, info := range rep.Types {
		if info.Type == Numeric {
			numeric = append(numeric, info.Name)
		} else if s, ok := CategoricalSummaryFor(ds, info.Name); ok {
			rep.Categorical = append(rep.Categorical, s)
		}
	}
	rep.Numeric = DescribeSelected(ds, numeric)

	if opt.Correlations && len(numeric) >= 2 {
		m := CorrelationMatrix(ds, numeric)
		rep.Corr = &m
		rep.HighCorr = HighCorrelations(m, opt.CorrThreshold)
	}

	for i := 0; i < opt.SampleRows && i < len(ds.Rows); i++ {
		row := make([]string, len(ds.Rows[i]))
		copy(row, ds.Rows[i])
		rep.Samples = append(rep.Samples, row)
	}

	if ds.Skipped > 0 {
		rep.Warnings = append(rep.Warnings, fmt.Sprintf("processed only %d/%d rows due to MaxRows", ds.NRows(), ds.NRows()+ds.Skipped))
	}
	for _, m := range rep.Missing {
		if m.Total > 0 && m.Missing == m.Total {
			rep.Warnings = append(rep.Warnings, fmt.Sprintf("column %q has no non-missing values", m.Name))
		}
	}
	return rep
}
