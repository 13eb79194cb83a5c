package analysis

import (
	"strings"

	"github.com/KaramelBytes/tabstat-cli/internal/dataset"
)

// topPatterns bounds MissingPatternReport.Patterns.
const topPatterns = 10

// MissingInfo is the missing-value count of one column.
type MissingInfo struct {
	Name    string
	Missing int
	Total   int
	Pct     float64
}

// MissingPattern is a set of columns that are missing together in Count rows.
type MissingPattern struct {
	Columns []string
	Count   int
}

// MissingPatternReport describes row-level co-occurrence of missing values.
type MissingPatternReport struct {
	TotalRows       int
	RowsWithMissing int
	PctWithMissing  float64
	Patterns        []MissingPattern
}

// AnalyzeMissing counts missing cells per column in header order.
func AnalyzeMissing(ds *dataset.Dataset) []MissingInfo {
	total := ds.NRows()
	out := make([]MissingInfo, 0, ds.NCols())
	for j, name := range ds.Headers {
		missing := 0
		for i := 0; i < total; i++ {
			if dataset.IsMissing(ds.Cell(i, j)) {
				missing++
			}
		}
		out = append(out, MissingInfo{Name: name, Missing: missing, Total: total, Pct: percent(missing, total)})
	}
	return out
}

// OnlyMissing keeps the columns with at least one missing value.
func OnlyMissing(infos []MissingInfo) []MissingInfo {
	var out []MissingInfo
	for _, info := range infos {
		if info.Missing > 0 {
			out = append(out, info)
		}
	}
	return out
}

// RowsWithMissing counts rows holding at least one missing cell.
func RowsWithMissing(ds *dataset.Dataset) int {
	n := 0
	for i := range ds.Rows {
		if strings.Contains(fingerprint(ds, i), "1") {
			n++
		}
	}
	return n
}

// MissingPatterns tallies per-row missing fingerprints and reports the most
// frequent non-empty ones. Count ties keep first-occurrence order.
func MissingPatterns(ds *dataset.Dataset) MissingPatternReport {
	total := ds.NRows()
	rep := MissingPatternReport{TotalRows: total}
	counts := newTally()
	for i := range ds.Rows {
		fp := fingerprint(ds, i)
		if strings.Contains(fp, "1") {
			rep.RowsWithMissing++
		}
		counts.add(fp)
	}
	rep.PctWithMissing = percent(rep.RowsWithMissing, total)

	for _, vc := range counts.sorted() {
		if !strings.Contains(vc.Value, "1") {
			continue
		}
		if len(rep.Patterns) == topPatterns {
			break
		}
		var cols []string
		for j, bit := range vc.Value {
			if bit == '1' {
				cols = append(cols, ds.Headers[j])
			}
		}
		rep.Patterns = append(rep.Patterns, MissingPattern{Columns: cols, Count: vc.Count})
	}
	return rep
}

// fingerprint encodes which cells of a row are missing as a '0'/'1' string,
// one byte per column.
func fingerprint(ds *dataset.Dataset, row int) string {
	var b strings.Builder
	b.Grow(ds.NCols())
	for j := range ds.Headers {
		if dataset.IsMissing(ds.Cell(row, j)) {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}

func percent(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}
