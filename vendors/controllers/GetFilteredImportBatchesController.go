package controllers

import (
	"vendor-import-backend/config"
	"vendor-import-backend/utils/pagination"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func (vc *VendorController) GetFilteredImportBatchesController(c *fiber.Ctx) error {
	params := pagination.ParsePaginationParams(c)
	if err := pagination.ValidatePaginationParams(params); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	offset := (params.Page - 1) * params.PageSize

	batches, total, err := vc.BatchRepo.GetFilteredBatches(params.PageSize, offset, params.Filters)
	if err != nil {
		config.Logger.Error("Failed to fetch filtered import batches", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch filtered import batches"})
	}

	return c.Status(fiber.StatusOK).JSON(pagination.BuildResponse(batches, params, total))
}
