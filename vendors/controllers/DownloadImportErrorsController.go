package controllers

import (
	"vendor-import-backend/config"
	"vendor-import-backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DownloadImportErrorsController serves the rejected-row report for a batch.
// The file generated while the batch ran is reused when it still exists;
// otherwise it is rebuilt from the stored row logs.
func (vc *VendorController) DownloadImportErrorsController(c *fiber.Ctx) error {
	batchID, err := uuid.Parse(c.Params("batchID"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid batch id"})
	}

	batch, err := vc.BatchRepo.GetBatchByID(batchID)
	if err != nil {
		config.Logger.Error("Failed to fetch import batch", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to fetch import batch"})
	}
	if batch == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Import batch not found"})
	}

	filePath := batch.ErrorReportPath
	if filePath == "" {
		rejected, err := vc.BatchRepo.GetRejectedRowLogs(batchID)
		if err != nil {
			config.Logger.Error("Failed to fetch rejected rows", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to fetch rejected rows"})
		}
		if len(rejected) == 0 {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Batch has no rejected rows"})
		}
		filePath, err = utils.GenerateImportErrorReport(rejected, batchID.String())
		if err != nil {
			config.Logger.Error("Failed to generate error report", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to generate error report"})
		}
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"batch_id":      batchID,
		"download_link": utils.GetDownloadURL(c, filePath),
	})
}
