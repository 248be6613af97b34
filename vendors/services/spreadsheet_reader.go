package services

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ImportRow is one source record: its zero-based ordinal position in the file
// and the raw header->value cells, untouched by any cleaning.
type ImportRow struct {
	Index int               `json:"index"`
	Cells map[string]string `json:"cells"`
}

// SheetData is the ordered contents of one uploaded file. Headers keep the
// original column order; Rows keep the original row order.
type SheetData struct {
	Headers []string    `json:"headers"`
	Rows    []ImportRow `json:"rows"`
}

// ReadSpreadsheet loads a CSV or XLSX file into rows keyed by the header row.
// The first row is the header row; trailing cells missing from short rows are
// simply absent from the map.
func ReadSpreadsheet(filePath string) (*SheetData, error) {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".csv":
		return readCSV(filePath)
	case ".xlsx", ".xlsm":
		return readExcel(filePath)
	default:
		return nil, fmt.Errorf("unsupported file type '%s', expected .csv or .xlsx", filepath.Ext(filePath))
	}
}

func readCSV(filePath string) (*SheetData, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // ragged rows are fine, we key cells by header

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("CSV file is empty")
		}
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	data := &SheetData{Headers: header}
	for index := 0; ; index++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV row %d: %w", index+2, err)
		}
		data.Rows = append(data.Rows, rowFromRecord(header, record, index))
	}
	return data, nil
}

func readExcel(filePath string) (*SheetData, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows from sheet '%s': %w", sheetName, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet '%s' is empty", sheetName)
	}

	data := &SheetData{Headers: rows[0]}
	for i, record := range rows[1:] {
		data.Rows = append(data.Rows, rowFromRecord(rows[0], record, i))
	}
	return data, nil
}

func rowFromRecord(header, record []string, index int) ImportRow {
	cells := make(map[string]string, len(header))
	for col, name := range header {
		if col < len(record) {
			cells[name] = record[col]
		}
	}
	return ImportRow{Index: index, Cells: cells}
}
