package plot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLinearBuckets(t *testing.T) {
	l := NewLinear(0, 10, 5)
	assert.False(t, l.Degenerate())
	assert.Equal(t, 10.0, l.Range())
	assert.Equal(t, 2.0, l.Width())
	assert.Equal(t, 0, l.Bucket(0))
	assert.Equal(t, 0, l.Bucket(1.99))
	assert.Equal(t, 1, l.Bucket(2))
	assert.Equal(t, 4, l.Bucket(10), "max value falls in the last bucket")
	assert.Equal(t, 0, l.Bucket(-3))
	assert.Equal(t, 4.0, l.Edge(2))
}

func TestLinearPositions(t *testing.T) {
	l := NewLinear(0, 10, 11)
	assert.Equal(t, 0, l.Position(0))
	assert.Equal(t, 5, l.Position(5))
	assert.Equal(t, 10, l.Position(10))
	assert.Equal(t, 10, l.Position(99))
	assert.Equal(t, 0, l.InvertedPosition(10))
	assert.Equal(t, 10, l.InvertedPosition(0))
}

func TestLinearDegenerate(t *testing.T) {
	l := NewLinear(3, 3, 0)
	assert.True(t, l.Degenerate())
	assert.Equal(t, 1, l.Cells)
	assert.Equal(t, 1.0, l.Range())
	assert.Equal(t, 1.0, l.Width())
	assert.Equal(t, 0, l.Bucket(3))
	assert.Equal(t, 0, l.Position(3))
	assert.Equal(t, 0, l.InvertedPosition(3))
}

func TestFormatShort(t *testing.T) {
	tests := map[float64]string{
		1_234_567: "1.2M",
		-2_500_000: "-2.5M",
		3_400:     "3.4k",
		42:        "42",
		-7:        "-7",
		0.5:       "0.5",
		12.34:     "12.3",
	}
	for in, want := range tests {
		assert.Equal(t, want, FormatShort(in), "FormatShort(%v)", in)
	}
}
