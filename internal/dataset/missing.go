package dataset

import "strings"

// missingTokens is the fixed vocabulary of cell values that stand for "no value".
var missingTokens = map[string]struct{}{
	"":     {},
	"NA":   {},
	"na":   {},
	"N/A":  {},
	"n/a":  {},
	"null": {},
	"NULL": {},
	".":    {},
	"NaN":  {},
	"nan":  {},
	"-":    {},
	"None": {},
	"none": {},
}

// IsMissing reports whether a raw cell represents a missing value.
// The cell is trimmed first; the match against the vocabulary is exact.
func IsMissing(s string) bool {
	_, ok := missingTokens[strings.TrimSpace(s)]
	return ok
}
