package report

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	gojson "github.com/goccy/go-json"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// Envelope wraps rendered output for structured export.
type Envelope struct {
	ID          string    `json:"id" yaml:"id"`
	Command     string    `json:"command" yaml:"command"`
	Sources     []string  `json:"sources,omitempty" yaml:"sources,omitempty"`
	GeneratedAt time.Time `json:"generated_at" yaml:"generated_at"`
	Output      string    `json:"output" yaml:"output"`
}

// NewEnvelope stamps output with a fresh id and the current time.
func NewEnvelope(command string, sources []string, output string) Envelope {
	return Envelope{
		ID:          uuid.NewString(),
		Command:     command,
		Sources:     sources,
		GeneratedAt: time.Now().UTC(),
		Output:      output,
	}
}

// Encode serializes env according to the extension of path: .json and
// .yaml/.yml get a structured envelope, anything else the plain output.
func Encode(path string, env Envelope) ([]byte, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		b, err := gojson.MarshalIndent(env, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshal json: %w", err)
		}
		return append(b, '\n'), nil
	case ".yaml", ".yml":
		b, err := yaml.Marshal(env)
		if err != nil {
			return nil, fmt.Errorf("marshal yaml: %w", err)
		}
		return b, nil
	default:
		out := env.Output
		if !strings.HasSuffix(out, "\n") {
			out += "\n"
		}
		return []byte(out), nil
	}
}
