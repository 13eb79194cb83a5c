package analysis

import (
	"fmt"
	"sort"
	"strings"

	"github.com/KaramelBytes/tabstat-cli/internal/dataset"
)

// ColumnType is the inferred kind of a column.
type ColumnType int

const (
	Numeric ColumnType = iota
	Boolean
	Categorical
)

func (t ColumnType) String() string {
	switch t {
	case Numeric:
		return "Numeric"
	case Boolean:
		return "Boolean"
	case Categorical:
		return "Categorical"
	}
	return fmt.Sprintf("ColumnType(%d)", int(t))
}

// numericShare is the fraction of non-missing values that must parse as
// numbers for a column to count as Numeric.
const numericShare = 0.8

// maxLevels bounds how many distinct values are listed as levels.
const maxLevels = 20

// ColumnTypeInfo describes one column's inferred type.
type ColumnTypeInfo struct {
	Name        string
	Type        ColumnType
	UniqueCount int
	Levels      []string
}

// InferTypes classifies every column in header order.
func InferTypes(ds *dataset.Dataset) []ColumnTypeInfo {
	out := make([]ColumnTypeInfo, 0, ds.NCols())
	for _, name := range ds.Headers {
		values, ok := ds.Column(name)
		if !ok {
			continue
		}
		out = append(out, inferColumn(name, values))
	}
	return out
}

// NumericColumns returns the names of Numeric columns in header order.
func NumericColumns(ds *dataset.Dataset) []string {
	var names []string
	for _, info := range InferTypes(ds) {
		if info.Type == Numeric {
			names = append(names, info.Name)
		}
	}
	return names
}

func inferColumn(name string, values []string) ColumnTypeInfo {
	present := nonMissing(values)

	seen := make(map[string]struct{}, len(present))
	var unique []string
	for _, v := range present {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		unique = append(unique, v)
	}
	sort.Strings(unique)

	kind := Categorical
	switch {
	case isBoolean(present):
		kind = Boolean
	case isNumeric(present):
		kind = Numeric
	}

	var levels []string
	switch {
	case kind == Numeric:
		levels = []string{"-"}
	case len(unique) <= maxLevels:
		levels = unique
	default:
		levels = []string{fmt.Sprintf("(%d unique)", len(unique))}
	}
	return ColumnTypeInfo{Name: name, Type: kind, UniqueCount: len(unique), Levels: levels}
}

func nonMissing(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if dataset.IsMissing(v) {
			continue
		}
		out = append(out, strings.TrimSpace(v))
	}
	return out
}

func isBoolean(present []string) bool {
	if len(present) == 0 {
		return false
	}
	for _, v := range present {
		switch strings.ToLower(v) {
		case "true", "false", "yes", "no", "1", "0":
		default:
			return false
		}
	}
	return true
}

func isNumeric(present []string) bool {
	if len(present) == 0 {
		return false
	}
	parsed := 0
	for _, v := range present {
		if _, ok := dataset.ParseNumber(v); ok {
			parsed++
		}
	}
	return float64(parsed)/float64(len(present)) >= numericShare
}
