// Package report turns analysis results into terminal tables, a Markdown
// dataset report, and export envelopes.
package report

import (
	"fmt"
	"math"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	strongStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	moderateStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	headerStyle   = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle     = lipgloss.NewStyle().Padding(0, 1)
)

// Formatter renders results as text. With Color off the output carries no
// ANSI escape sequences, which is what files and pipes need.
type Formatter struct {
	Color bool
}

// FormatFloat renders a statistic: NaN/Inf spelled out, two decimals, or four
// for magnitudes below one.
func FormatFloat(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Inf"
	case math.IsInf(v, -1):
		return "-Inf"
	case v == 0:
		return "0.00"
	case math.Abs(v) >= 1:
		return fmt.Sprintf("%.2f", v)
	default:
		return fmt.Sprintf("%.4f", v)
	}
}

func (f Formatter) table(headers []string, rows [][]string) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow && f.Color {
				return headerStyle
			}
			return cellStyle
		})
	return t.String()
}

func (f Formatter) corrCell(s string, r float64, diagonal bool) string {
	if !f.Color || diagonal || math.IsNaN(r) {
		return s
	}
	switch a := math.Abs(r); {
	case a >= 0.7:
		return strongStyle.Render(s)
	case a >= 0.5:
		return moderateStyle.Render(s)
	}
	return s
}
