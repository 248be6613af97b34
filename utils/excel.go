package utils

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"vendor-import-backend/db/models"
)

const reportDir = "./public/files"

// EnsureDirectoryExists ensures the specified directory exists before file saving
func EnsureDirectoryExists(filePath string) error {
	dir := filepath.Dir(filePath)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		err := os.MkdirAll(dir, 0755)
		if err != nil {
			return fmt.Errorf("error creating directory: %v", err)
		}
	}
	return nil
}

// GenerateImportErrorReport writes the rejected/failed rows of a batch into
// an Excel file under public/files and returns its path. The operator gets
// the row number, vendor name and the precise complaints per row.
func GenerateImportErrorReport(rows []models.ImportRowLog, batchID string) (string, error) {
	filePath := fmt.Sprintf("%s/import-errors-%s.xlsx", reportDir, batchID)
	if err := EnsureDirectoryExists(filePath); err != nil {
		return "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Errors"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return "", fmt.Errorf("error creating sheet: %v", err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headers := []string{"Row", "Vendor Name", "Outcome", "Errors", "Warnings", "Raw Row"}
	for col, header := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return "", err
		}
		if err := f.SetCellValue(sheetName, cell, header); err != nil {
			return "", fmt.Errorf("error setting header %s: %v", header, err)
		}
	}

	for i, row := range rows {
		values := []interface{}{
			row.RowIndex + 1,
			row.VendorName,
			string(row.Outcome),
			string(row.Errors),
			string(row.Warnings),
			string(row.RawRow),
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return "", err
			}
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return "", fmt.Errorf("error writing row %d: %v", i+2, err)
			}
		}
	}

	if err := f.SaveAs(filePath); err != nil {
		return "", fmt.Errorf("error saving Excel file: %v", err)
	}
	return filePath, nil
}
