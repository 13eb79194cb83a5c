package report

import (
	"fmt"
	"strings"

	"github.com/KaramelBytes/tabstat-cli/internal/analysis"
)

// maxCorrPairs bounds the [CORRELATIONS] section.
const maxCorrPairs = 10

// Markdown renders a full dataset report as plain Markdown-friendly text.
func Markdown(r *analysis.Report) string {
	var b strings.Builder
	b.WriteString("[DATASET SUMMARY]\n")
	if r.Name != "" {
		b.WriteString(fmt.Sprintf("File: %s\n", r.Name))
	}
	if r.Skipped > 0 {
		b.WriteString(fmt.Sprintf("Rows: ~%d (processed %d)\n", r.Rows+r.Skipped, r.Rows))
	} else {
		b.WriteString(fmt.Sprintf("Rows: %d\n", r.Rows))
	}
	b.WriteString(fmt.Sprintf("Columns: %d\n\n", len(r.Types)))

	numeric := make(map[string]analysis.DescriptiveStats, len(r.Numeric))
	for _, s := range r.Numeric {
		numeric[s.Name] = s
	}
	categorical := make(map[string]analysis.CategoricalSummary, len(r.Categorical))
	for _, s := range r.Categorical {
		categorical[s.Name] = s
	}
	missing := make(map[string]analysis.MissingInfo, len(r.Missing))
	for _, m := range r.Missing {
		missing[m.Name] = m
	}

	b.WriteString("[SCHEMA]\n")
	for _, t := range r.Types {
		m := missing[t.Name]
		b.WriteString(fmt.Sprintf("- %s: %s (non-null %d, missing %.1f%%)",
			safeName(t.Name), strings.ToLower(t.Type.String()), m.Total-m.Missing, m.Pct))
		if s, ok := numeric[t.Name]; ok && s.Count > 0 {
			b.WriteString(fmt.Sprintf(": min %.4g, q1 %.4g, median %.4g, q3 %.4g, max %.4g, mean %.4g, std %.4g",
				s.Min, s.Q1, s.Median, s.Q3, s.Max, s.Mean, s.StdDev))
		}
		if c, ok := categorical[t.Name]; ok && len(c.TopValues) > 0 {
			b.WriteString(": top ")
			for i, kv := range c.TopValues {
				if i > 0 {
					b.WriteString(", ")
				}
				b.WriteString(fmt.Sprintf("%s(%d)", safeVal(kv.Value), kv.Count))
			}
			if c.Unique > len(c.TopValues) {
				b.WriteString(fmt.Sprintf("; unique=%d", c.Unique))
			}
		}
		b.WriteString("\n")
	}

	if r.Patterns.RowsWithMissing > 0 {
		b.WriteString("\n[MISSING PATTERNS]\n")
		b.WriteString(fmt.Sprintf("%.2f%% of rows (%d/%d) have at least one missing value\n",
			r.Patterns.PctWithMissing, r.Patterns.RowsWithMissing, r.Patterns.TotalRows))
		for _, p := range r.Patterns.Patterns {
			b.WriteString(fmt.Sprintf("- %s: %d\n", strings.Join(p.Columns, ", "), p.Count))
		}
	}

	if r.Corr != nil && len(r.Corr.Columns) >= 2 {
		b.WriteString("\n[CORRELATIONS]\n")
		pairs := analysis.HighCorrelations(*r.Corr, 0)
		if len(pairs) > maxCorrPairs {
			pairs = pairs[:maxCorrPairs]
		}
		if len(pairs) == 0 {
			b.WriteString("- no defined pairwise correlations\n")
		}
		for _, p := range pairs {
			b.WriteString(fmt.Sprintf("- %s ~ %s: r=%.3f\n", p.A, p.B, p.R))
		}
	}

	if len(r.Samples) > 0 {
		b.WriteString("\n[HEAD AND SAMPLE ROWS]\n")
		b.WriteString("| ")
		for i, h := range r.Headers {
			if i > 0 {
				b.WriteString(" | ")
			}
			b.WriteString(safeName(h))
		}
		b.WriteString(" |\n")
		b.WriteString("| ")
		for i := range r.Headers {
			if i > 0 {
				b.WriteString(" | ")
			}
			b.WriteString("---")
		}
		b.WriteString(" |\n")
		for _, row := range r.Samples {
			b.WriteString("| ")
			for i := range r.Headers {
				if i > 0 {
					b.WriteString(" | ")
				}
				val := ""
				if i < len(row) {
					val = row[i]
				}
				if len(val) > 80 {
					val = val[:77] + "..."
				}
				b.WriteString(safeVal(val))
			}
			b.WriteString(" |\n")
		}
	}

	var notes []string
	notes = append(notes, r.Warnings...)
	for _, p := range r.HighCorr {
		notes = append(notes, fmt.Sprintf("strong correlation %s ~ %s (r=%.2f)", p.A, p.B, p.R))
	}
	if len(notes) > 0 {
		b.WriteString("\n[NOTES]\n")
		for _, w := range notes {
			b.WriteString("- ")
			b.WriteString(w)
			b.WriteString("\n")
		}
	}
	return b.String()
}

func safeName(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "(unnamed)"
	}
	return s
}

func safeVal(s string) string { return strings.ReplaceAll(strings.ReplaceAll(s, "\n", " "), "|", "/") }
