package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewRejectsBadLevel(t *testing.T) {
	_, err := New(Config{Level: "loud"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
}

func TestInitWritesJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.jsonl")
	require.NoError(t, Init(Config{Level: "debug", Encoding: "json", OutputPaths: []string{path}}))
	t.Cleanup(func() { require.NoError(t, Init(Config{Level: "error"})) })

	L().Debug("loaded dataset", zap.Int("rows", 3))
	Sync()

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	line := strings.TrimSpace(string(b))
	assert.Contains(t, line, `"message":"loaded dataset"`)
	assert.Contains(t, line, `"rows":3`)
}

func TestLevelFilters(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.txt")
	require.NoError(t, Init(Config{Level: "warn", OutputPaths: []string{path}}))
	t.Cleanup(func() { require.NoError(t, Init(Config{Level: "error"})) })

	L().Info("hidden")
	L().Warn("shown")
	Sync()

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(b), "hidden")
	assert.Contains(t, string(b), "shown")
}
