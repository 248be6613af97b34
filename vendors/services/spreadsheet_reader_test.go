package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempCSV(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vendors.csv")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestReadSpreadsheetCSV(t *testing.T) {
	path := writeTempCSV(t, "Vendor Name,Vendor Code,Company Code\nAcme Ltd,V-1,C01\nBeta Traders,V-2,C02\n")

	sheet, err := ReadSpreadsheet(path)

	require.NoError(t, err)
	assert.Equal(t, []string{"Vendor Name", "Vendor Code", "Company Code"}, sheet.Headers)
	require.Len(t, sheet.Rows, 2)
	assert.Equal(t, 0, sheet.Rows[0].Index)
	assert.Equal(t, "Acme Ltd", sheet.Rows[0].Cells["Vendor Name"])
	assert.Equal(t, 1, sheet.Rows[1].Index)
	assert.Equal(t, "C02", sheet.Rows[1].Cells["Company Code"])
}

// Short rows leave trailing cells absent rather than empty.
func TestReadSpreadsheetRaggedRows(t *testing.T) {
	path := writeTempCSV(t, "Vendor Name,Vendor Code,Company Code\nAcme Ltd,V-1\n")

	sheet, err := ReadSpreadsheet(path)

	require.NoError(t, err)
	require.Len(t, sheet.Rows, 1)
	_, present := sheet.Rows[0].Cells["Company Code"]
	assert.False(t, present)
}

func TestReadSpreadsheetEmptyCSV(t *testing.T) {
	path := writeTempCSV(t, "")

	_, err := ReadSpreadsheet(path)

	assert.Error(t, err)
}

func TestReadSpreadsheetUnsupportedExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vendors.pdf")
	require.NoError(t, os.WriteFile(path, []byte("junk"), 0o644))

	_, err := ReadSpreadsheet(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported file type")
}

func TestReadSpreadsheetMissingFile(t *testing.T) {
	_, err := ReadSpreadsheet(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}
