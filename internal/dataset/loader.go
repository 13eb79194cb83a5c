package dataset

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var (
	// ErrEmptyInput indicates the input holds no header line.
	ErrEmptyInput = errors.New("input data is empty")
	// ErrNoColumns indicates the header line has no columns.
	ErrNoColumns = errors.New("no columns found in input")
	// ErrUnsupportedFormat indicates a file format tabstat cannot read.
	ErrUnsupportedFormat = errors.New("unsupported file format")
	// ErrSheetNotFound indicates the requested XLSX sheet does not exist.
	ErrSheetNotFound = errors.New("sheet not found")
)

// Options controls how a file is turned into a Dataset.
type Options struct {
	// Delimiter for CSV. If 0, sniffed from the extension and the header line.
	Delimiter rune
	// Sheet selects an XLSX sheet by name or 1-based index. Empty means the first sheet.
	Sheet string
	// MaxRows limits rows kept; 0 means unlimited.
	MaxRows int
}

// Loader reads one family of file formats.
type Loader interface {
	CanLoad(path string) bool
	Load(path string, opt Options) (*Dataset, error)
}

var registry []Loader

// Register adds a loader implementation to the registry.
func Register(l Loader) {
	registry = append(registry, l)
}

// Load selects a loader based on the file name and reads the file.
// Files with an unknown extension are read as delimited text.
func Load(path string, opt Options) (*Dataset, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("cannot open file '%s': %w", path, err)
	}
	if strings.EqualFold(filepath.Ext(path), ".xls") {
		return nil, fmt.Errorf("%w: %s (save the workbook as .xlsx)", ErrUnsupportedFormat, filepath.Base(path))
	}
	for _, l := range registry {
		if l.CanLoad(path) {
			return l.Load(path, opt)
		}
	}
	return csvLoader{}.Load(path, opt)
}

// fromRecords normalizes raw records (header first) into a Dataset: cells are
// trimmed, short rows padded with "", long rows truncated.
func fromRecords(name string, records [][]string, opt Options) (*Dataset, error) {
	if len(records) == 0 {
		return nil, ErrEmptyInput
	}
	header := records[0]
	headers := make([]string, 0, len(header))
	for _, h := range header {
		headers = append(headers, strings.TrimSpace(h))
	}
	if len(headers) == 0 || (len(headers) == 1 && headers[0] == "") {
		return nil, ErrNoColumns
	}
	ncol := len(headers)
	ds := &Dataset{Name: name, Headers: headers}
	for _, rec := range records[1:] {
		if opt.MaxRows > 0 && len(ds.Rows) >= opt.MaxRows {
			ds.Skipped++
			continue
		}
		row := make([]string, ncol)
		for j := 0; j < ncol && j < len(rec); j++ {
			row[j] = strings.TrimSpace(rec[j])
		}
		ds.Rows = append(ds.Rows, row)
	}
	return ds, nil
}

func init() {
	Register(xlsxLoader{})
	Register(csvLoader{})
}
