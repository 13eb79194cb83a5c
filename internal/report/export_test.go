package report

import (
	"testing"

	gojson "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestEncodeJSON(t *testing.T) {
	env := NewEnvelope("summary", []string{"data.csv"}, "table text")
	b, err := Encode("out.JSON", env)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, gojson.Unmarshal(b, &got))
	assert.Equal(t, "table text", got["output"])
	assert.Equal(t, "summary", got["command"])
	_, err = uuid.Parse(got["id"].(string))
	assert.NoError(t, err)
}

func TestEncodeYAML(t *testing.T) {
	env := NewEnvelope("missing", nil, "line one\nline two")
	b, err := Encode("report.yml", env)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, yaml.Unmarshal(b, &got))
	assert.Equal(t, "line one\nline two", got["output"])
	assert.Equal(t, env.ID, got["id"])
	assert.NotContains(t, got, "sources")
}

func TestEncodePlain(t *testing.T) {
	for _, path := range []string{"out.txt", "out.md", "out.csv", "out"} {
		b, err := Encode(path, NewEnvelope("types", nil, "body"))
		require.NoError(t, err)
		assert.Equal(t, "body\n", string(b))
	}
}

func TestNewEnvelopeIDsDiffer(t *testing.T) {
	a := NewEnvelope("x", nil, "")
	b := NewEnvelope("x", nil, "")
	assert.NotEqual(t, a.ID, b.ID)
	assert.False(t, a.GeneratedAt.IsZero())
}
