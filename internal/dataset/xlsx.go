package dataset

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

type xlsxLoader struct{}

func (xlsxLoader) CanLoad(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return true
	}
	return false
}

// Load reads the selected sheet. opt.Sheet matches a sheet name
// case-insensitively, or a 1-based position when it is a number.
func (xlsxLoader) Load(path string, opt Options) (*Dataset, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open xlsx: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook '%s': %w", filepath.Base(path), ErrEmptyInput)
	}
	sheet, err := resolveSheet(sheets, opt.Sheet)
	if err != nil {
		return nil, fmt.Errorf("workbook '%s': %w", filepath.Base(path), err)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	ds, err := fromRecords(filepath.Base(path), rows, opt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse '%s' (sheet: %s): %w", path, sheet, err)
	}
	return ds, nil
}

func resolveSheet(sheets []string, want string) (string, error) {
	want = strings.TrimSpace(want)
	if want == "" {
		return sheets[0], nil
	}
	for _, s := range sheets {
		if strings.EqualFold(s, want) {
			return s, nil
		}
	}
	if idx, err := strconv.Atoi(want); err == nil && idx >= 1 && idx <= len(sheets) {
		return sheets[idx-1], nil
	}
	return "", fmt.Errorf("%w: %q (available: %s)", ErrSheetNotFound, want, strings.Join(sheets, ", "))
}
