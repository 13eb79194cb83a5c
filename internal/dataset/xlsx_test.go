package dataset

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeWorkbook(t *testing.T) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]interface{}{"ignored"}))
	_, err := f.NewSheet("Data")
	require.NoError(t, err)
	require.NoError(t, f.SetSheetRow("Data", "A1", &[]interface{}{"group", "value", "note"}))
	require.NoError(t, f.SetSheetRow("Data", "A2", &[]interface{}{"A", 1.5, "first"}))
	require.NoError(t, f.SetSheetRow("Data", "A3", &[]interface{}{"B", 2}))
	p := filepath.Join(t.TempDir(), "book.xlsx")
	require.NoError(t, f.SaveAs(p))
	return p
}

func TestLoadXLSXByName(t *testing.T) {
	p := writeWorkbook(t)
	ds, err := Load(p, Options{Sheet: "data"})
	require.NoError(t, err)
	assert.Equal(t, "book.xlsx", ds.Name)
	assert.Equal(t, []string{"group", "value", "note"}, ds.Headers)
	require.Equal(t, 2, ds.NRows())
	assert.Equal(t, []string{"B", "2", ""}, ds.Rows[1])

	vals, ok := ds.ValidNumericColumn("value")
	require.True(t, ok)
	assert.Equal(t, []float64{1.5, 2}, vals)
}

func TestLoadXLSXByIndex(t *testing.T) {
	p := writeWorkbook(t)
	ds, err := Load(p, Options{Sheet: "2"})
	require.NoError(t, err)
	assert.Equal(t, "group", ds.Headers[0])

	ds, err = Load(p, Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"ignored"}, ds.Headers)
}

func TestLoadXLSXUnknownSheet(t *testing.T) {
	p := writeWorkbook(t)
	_, err := Load(p, Options{Sheet: "Nope"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSheetNotFound))
	assert.Contains(t, err.Error(), "Sheet1, Data")
}
