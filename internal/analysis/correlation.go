package analysis

import (
	"math"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"

	"github.com/KaramelBytes/tabstat-cli/internal/dataset"
)

// CorrMatrix holds a symmetric Pearson correlation matrix.
type CorrMatrix struct {
	Columns []string
	Values  [][]float64 // row-major, Values[i][j]
}

// PairCorr is one off-diagonal entry of a CorrMatrix.
type PairCorr struct {
	A, B string
	R    float64
}

// Pearson returns the correlation of two numeric views over pairwise-complete
// observations. It is NaN when fewer than two complete pairs remain or when
// either side is constant within those pairs.
func Pearson(x, y []dataset.OptFloat) float64 {
	xs, ys := dataset.CompletePairs(x, y)
	return pearson(xs, ys)
}

func pearson(xs, ys []float64) float64 {
	if len(xs) < 2 || len(xs) != len(ys) {
		return math.NaN()
	}
	if constant(xs) || constant(ys) {
		return math.NaN()
	}
	r := stat.Correlation(xs, ys, nil)
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return math.NaN()
	}
	// rounding can push |r| a hair past 1
	return math.Max(-1, math.Min(1, r))
}

func constant(vals []float64) bool {
	for _, v := range vals[1:] {
		if v != vals[0] {
			return false
		}
	}
	return true
}

// CorrelationMatrix correlates the named columns, or every Numeric column
// when names is nil. Names not present in the dataset are dropped. The
// diagonal is 1 by construction.
func CorrelationMatrix(ds *dataset.Dataset, names []string) CorrMatrix {
	var cols []string
	if names == nil {
		cols = NumericColumns(ds)
	} else {
		for _, n := range names {
			if ds.Has(n) {
				cols = append(cols, n)
			}
		}
	}
	n := len(cols)
	data := make([][]dataset.OptFloat, n)
	values := make([][]float64, n)
	for i, c := range cols {
		data[i], _ = ds.NumericColumn(c)
		values[i] = make([]float64, n)
		values[i][i] = 1
	}

	// Each goroutine owns the cells (i, j) and (j, i) for j > i.
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			for j := i + 1; j < n; j++ {
				r := Pearson(data[i], data[j])
				values[i][j] = r
				values[j][i] = r
			}
			return nil
		})
	}
	_ = g.Wait()

	return CorrMatrix{Columns: cols, Values: values}
}

// HighCorrelations lists pairs i<j with |r| >= threshold, strongest first.
// Equal magnitudes keep row-major upper-triangle order.
func HighCorrelations(m CorrMatrix, threshold float64) []PairCorr {
	var out []PairCorr
	n := len(m.Columns)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			r := m.Values[i][j]
			if math.IsNaN(r) || math.Abs(r) < threshold {
				continue
			}
			out = append(out, PairCorr{A: m.Columns[i], B: m.Columns[j], R: r})
		}
	}
	sort.SliceStable(out, func(a, b int) bool {
		return math.Abs(out[a].R) > math.Abs(out[b].R)
	})
	return out
}
