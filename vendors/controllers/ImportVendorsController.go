package controllers

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"vendor-import-backend/config"
	"vendor-import-backend/db/models"
	"vendor-import-backend/tasks"
	"vendor-import-backend/utils"
	"vendor-import-backend/vendors/services"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var allowedImportExtensions = map[string]bool{
	".csv":  true,
	".xlsx": true,
	".xlsm": true,
}

// ImportVendorsController handles the bulk vendor upload. The default mode
// runs the batch inline and returns the full report; mode=async enqueues the
// batch for the worker and returns the batch id for polling.
func (vc *VendorController) ImportVendorsController(c *fiber.Ctx) error {
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

	userEmail := c.FormValue("created_by")
	if userEmail == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Missing 'created_by' field in FormData"})
	}

	overrides, err := parseHeaderOverrides(c.FormValue("overrides"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid 'overrides' field, expected a JSON object of header to field"})
	}

	batchID := uuid.New()
	tempFilePath := fmt.Sprintf("./tmp/%s%s", batchID.String(), ext)
	if err := utils.EnsureDirectoryExists(tempFilePath); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to prepare upload directory"})
	}
	if err := c.SaveFile(file, tempFilePath); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to save file"})
	}

	batch := &models.ImportBatch{
		ID:        batchID,
		FileName:  file.Filename,
		Status:    models.PendingImportBatch,
		CreatedBy: userEmail,
	}
	if err := vc.BatchRepo.CreateBatch(batch); err != nil {
		os.Remove(tempFilePath)
		config.Logger.Error("Failed to create import batch", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to create import batch"})
	}

	if c.FormValue("mode") == "async" {
		task, err := tasks.NewVendorImportTask(tasks.VendorImportPayload{
			BatchID:   batchID,
			FilePath:  tempFilePath,
			CreatedBy: userEmail,
			Overrides: overrides,
		})
		if err != nil {
			os.Remove(tempFilePath)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to build import task"})
		}
		if _, err := vc.AsynqClient.Enqueue(task); err != nil {
			os.Remove(tempFilePath)
			config.Logger.Error("Failed to enqueue import task", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to enqueue import task"})
		}
		return c.Status(fiber.StatusAccepted).JSON(fiber.Map{
			"message":  "Import queued",
			"batch_id": batchID,
			"status":   models.PendingImportBatch,
		})
	}

	// Synchronous path: run the batch inline and return the full report.
	defer os.Remove(tempFilePath)

	if err := vc.BatchRepo.MarkBatchRunning(batchID); err != nil {
		config.Logger.Error("Failed to mark batch running", zap.Error(err))
	}

	sheet, err := services.ReadSpreadsheet(tempFilePath)
	if err != nil {
		if markErr := vc.BatchRepo.MarkBatchFailed(batchID, err.Error()); markErr != nil {
			config.Logger.Error("Failed to mark batch failed", zap.Error(markErr))
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message":  "Failed to read spreadsheet",
			"batch_id": batchID,
			"error":    err.Error(),
		})
	}

	report, err := tasks.RunImportBatch(c.Context(), vc.VendorRepo, vc.BatchRepo, vc.BleveRepo, config.Logger, batchID, services.BatchInput{
		Sheet:     sheet,
		Overrides: overrides,
		CreatedBy: userEmail,
	})
	if err != nil {
		config.Logger.Error("Import batch failed", zap.String("batch_id", batchID.String()), zap.Error(err))
		if markErr := vc.BatchRepo.MarkBatchFailed(batchID, err.Error()); markErr != nil {
			config.Logger.Error("Failed to mark batch failed", zap.Error(markErr))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message":  "Import failed",
			"batch_id": batchID,
			"error":    err.Error(),
		})
	}

	if err := vc.ReportCache.SaveReport(c.Context(), batchID, report); err != nil {
		config.Logger.Warn("Failed to cache import report", zap.Error(err))
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":  "Import completed",
		"batch_id": batchID,
		"report":   report,
	})
}

func parseHeaderOverrides(raw string) (map[string]string, error) {
	if raw == "" {
		return nil, nil
	}
	overrides := make(map[string]string)
	if err := json.Unmarshal([]byte(raw), &overrides); err != nil {
		return nil, err
	}
	return overrides, nil
}
