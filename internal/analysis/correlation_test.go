package analysis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KaramelBytes/tabstat-cli/internal/dataset"
)

func opt(values ...float64) []dataset.OptFloat {
	out := make([]dataset.OptFloat, len(values))
	for i, v := range values {
		if math.IsNaN(v) {
			continue
		}
		out[i] = dataset.OptFloat{V: v, OK: true}
	}
	return out
}

var absent = math.NaN()

func TestPearson(t *testing.T) {
	assert.InDelta(t, 1.0, Pearson(opt(1, 2, 3, 4), opt(1, 2, 3, 4)), 1e-12)
	assert.InDelta(t, -1.0, Pearson(opt(1, 2, 3, 4), opt(4, 3, 2, 1)), 1e-12)
	assert.True(t, math.IsNaN(Pearson(opt(5, 5, 5), opt(1, 2, 3))))
	assert.True(t, math.IsNaN(Pearson(opt(1, 2, 3), opt(7, 7, 7))))
}

func TestPearsonPairwiseComplete(t *testing.T) {
	x := opt(1, absent, 3, 4, 5)
	y := opt(2, 4, absent, 8, 10)
	assert.InDelta(t, 1.0, Pearson(x, y), 1e-12)
}

func TestPearsonTooFewPairs(t *testing.T) {
	assert.True(t, math.IsNaN(Pearson(opt(1, absent, 3), opt(absent, 2, 6))))
	assert.True(t, math.IsNaN(Pearson(nil, nil)))
}

func corrDataset() *dataset.Dataset {
	return dataset.New(
		[]string{"a", "b", "c", "flat", "name"},
		[][]string{
			{"1", "2", "9", "3", "x"},
			{"2", "4", "7", "3", "y"},
			{"3", "6", "8", "3", "z"},
			{"4", "8", "2", "3", "w"},
			{"5", "10", "1", "3", "v"},
		},
	)
}

func TestCorrelationMatrix(t *testing.T) {
	m := CorrelationMatrix(corrDataset(), nil)
	require.Equal(t, []string{"a", "b", "c", "flat"}, m.Columns)

	n := len(m.Columns)
	for i := 0; i < n; i++ {
		assert.Equal(t, 1.0, m.Values[i][i])
		for j := 0; j < n; j++ {
			a, b := m.Values[i][j], m.Values[j][i]
			if math.IsNaN(a) {
				assert.True(t, math.IsNaN(b))
				continue
			}
			assert.Equal(t, a, b)
		}
	}
	assert.InDelta(t, 1.0, m.Values[0][1], 1e-12)
	assert.True(t, math.IsNaN(m.Values[0][3]))
}

func TestCorrelationMatrixNames(t *testing.T) {
	m := CorrelationMatrix(corrDataset(), []string{"c", "unknown", "a", "name"})
	require.Equal(t, []string{"c", "a", "name"}, m.Columns)
	assert.Less(t, m.Values[0][1], 0.0)
	assert.True(t, math.IsNaN(m.Values[0][2]))
	assert.Equal(t, 1.0, m.Values[2][2])
}

func TestHighCorrelationsOrdering(t *testing.T) {
	m := CorrelationMatrix(corrDataset(), nil)
	for _, threshold := range []float64{0, 0.3, 0.5, 0.9, 1} {
		pairs := HighCorrelations(m, threshold)
		for k, p := range pairs {
			assert.False(t, math.IsNaN(p.R))
			assert.GreaterOrEqual(t, math.Abs(p.R), threshold)
			if k > 0 {
				assert.GreaterOrEqual(t, math.Abs(pairs[k-1].R), math.Abs(p.R))
			}
		}
	}
}

func TestHighCorrelationsTies(t *testing.T) {
	m := CorrMatrix{
		Columns: []string{"a", "b", "c"},
		Values: [][]float64{
			{1, 0.8, -0.8},
			{0.8, 1, 0.9},
			{-0.8, 0.9, 1},
		},
	}
	got := HighCorrelations(m, 0.5)
	assert.Equal(t, []PairCorr{{"b", "c", 0.9}, {"a", "b", 0.8}, {"a", "c", -0.8}}, got)
	assert.Empty(t, HighCorrelations(m, 0.95))
}
