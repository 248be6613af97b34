package controllers

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"vendor-import-backend/utils"
	"vendor-import-backend/vendors/services"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// PreviewImportMappingController resolves the header mapping for an uploaded
// file without writing anything. Operators use it to inspect coverage and
// supply overrides before committing to a full import.
func (vc *VendorController) PreviewImportMappingController(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Failed to get file"})
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImportExtensions[ext] {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": fmt.Sprintf("Unsupported file type %s, expected .csv, .xlsx or .xlsm", ext),
		})
	}

	overrides, err := parseHeaderOverrides(c.FormValue("overrides"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid 'overrides' field, expected a JSON object of header to field"})
	}

	tempFilePath := fmt.Sprintf("./tmp/preview-%s%s", uuid.New().String(), ext)
	if err := utils.EnsureDirectoryExists(tempFilePath); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to prepare upload directory"})
	}
	if err := c.SaveFile(file, tempFilePath); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to save file"})
	}
	defer os.Remove(tempFilePath)

	sheet, err := services.ReadSpreadsheet(tempFilePath)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Failed to read spreadsheet",
			"error":   err.Error(),
		})
	}

	mapping := services.BuildHeaderMapping(sheet.Headers, overrides)

	// A handful of mapped sample rows so the operator can sanity-check the
	// mapping against real data before importing.
	sampleLimit := 5
	if len(sheet.Rows) < sampleLimit {
		sampleLimit = len(sheet.Rows)
	}
	samples := make([]map[string]string, 0, sampleLimit)
	for _, row := range sheet.Rows[:sampleLimit] {
		samples = append(samples, services.ApplyMapping(&mapping, services.CleanRow(row.Cells)))
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"file_name":   file.Filename,
		"total_rows":  len(sheet.Rows),
		"mapping":     mapping,
		"sample_rows": samples,
	})
}
