package dataset

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

type csvLoader struct{}

func (csvLoader) CanLoad(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".tsv", ".tab", ".txt":
		return true
	}
	return false
}

func (csvLoader) Load(path string, opt Options) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open file '%s': %w", path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("file '%s' is empty: %w", path, ErrEmptyInput)
	}
	if opt.Delimiter == 0 {
		ext := strings.ToLower(filepath.Ext(path))
		if ext == ".tsv" || ext == ".tab" {
			opt.Delimiter = '\t'
		}
	}
	ds, err := Read(bytes.NewReader(data), opt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse '%s': %w", path, err)
	}
	ds.Name = filepath.Base(path)
	return ds, nil
}

// Read parses delimited text from r. The delimiter is sniffed from the header
// line unless opt.Delimiter is set.
func Read(r io.Reader, opt Options) (*Dataset, error) {
	br := bufio.NewReader(r)
	delim := opt.Delimiter
	if delim == 0 {
		// Peek returns what it has along with an error when the input is
		// shorter than the window, which is fine for sniffing.
		head, _ := br.Peek(64 << 10)
		first, _, _ := strings.Cut(string(head), "\n")
		if strings.TrimSpace(first) == "" {
			return nil, ErrEmptyInput
		}
		delim = SniffDelimiter(first)
	}
	cr := csv.NewReader(br)
	cr.Comma = delim
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = delim != '\t'
	cr.LazyQuotes = true
	var records [][]string
	for {
		rec, err := cr.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("read row %d: %w", len(records), err)
		}
		records = append(records, rec)
	}
	return fromRecords("", records, opt)
}

// ReadStdin parses delimited text piped on standard input. r is normally
// os.Stdin.
func ReadStdin(r io.Reader, opt Options) (*Dataset, error) {
	ds, err := Read(r, opt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse stdin input: %w", err)
	}
	ds.Name = "stdin"
	return ds, nil
}

// SniffDelimiter picks the most frequent of ',', '\t' and ';' in the header
// line. Comma wins ties and lines with none of them.
func SniffDelimiter(line string) rune {
	best, bestN := ',', strings.Count(line, ",")
	for _, c := range []rune{'\t', ';'} {
		if n := strings.Count(line, string(c)); n > bestN {
			best, bestN = c, n
		}
	}
	return best
}
