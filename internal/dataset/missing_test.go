package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsMissing(t *testing.T) {
	for _, v := range []string{"", "NA", "na", "N/A", "n/a", "null", "NULL", ".", "NaN", "nan", "-", "None", "none"} {
		assert.True(t, IsMissing(v), "%q should be missing", v)
	}
}

func TestIsMissingTrimsWhitespace(t *testing.T) {
	for _, v := range []string{"  ", "  NA  ", "\tNaN\t", " none\n"} {
		assert.True(t, IsMissing(v), "%q should be missing", v)
	}
}

func TestIsMissingRejectsValues(t *testing.T) {
	for _, v := range []string{"0", "hello", "123", "3.14", "true", "N/A value", "NAN", "Null", "--"} {
		assert.False(t, IsMissing(v), "%q should not be missing", v)
	}
}
