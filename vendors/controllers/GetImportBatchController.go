package controllers

import (
	"vendor-import-backend/config"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// GetImportBatchController returns the state of one batch. Completed batches
// are served from the cached report when it is still present; the database
// record covers everything else, including reports whose cache entry expired.
func (vc *VendorController) GetImportBatchController(c *fiber.Ctx) error {
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

	response := fiber.Map{
		"batch": batch,
	}

	report, err := vc.ReportCache.GetReport(c.Context(), batchID)
	if err != nil {
		config.Logger.Warn("Failed to read cached report", zap.String("batch_id", batchID.String()), zap.Error(err))
	}
	if report != nil {
		response["report"] = report
		response["errors"] = report.AllErrors()
		response["warnings"] = report.AllWarnings()
	}

	return c.Status(fiber.StatusOK).JSON(response)
}

// GetImportBatchRowsController returns the per-row outcomes of a batch from
// the database, independent of the report cache.
func (vc *VendorController) GetImportBatchRowsController(c *fiber.Ctx) error {
	batchID, err := uuid.Parse(c.Params("batchID"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid batch id"})
	}

	rows, err := vc.BatchRepo.GetRowLogs(batchID)
	if err != nil {
		config.Logger.Error("Failed to fetch batch rows", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to fetch batch rows"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"batch_id": batchID,
		"rows":     rows,
	})
}
