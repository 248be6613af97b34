package controllers

import (
	"vendor-import-backend/config"
	"vendor-import-backend/utils/pagination"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func (vc *VendorController) GetFilteredVendorsController(c *fiber.Ctx) error {
	params := pagination.ParsePaginationParams(c)
	if err := pagination.ValidatePaginationParams(params); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	offset := (params.Page - 1) * params.PageSize

	vendors, total, err := vc.VendorRepo.GetFilteredVendors(params.PageSize, offset, params.Filters)
	if err != nil {
		config.Logger.Error("Failed to fetch filtered vendors", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch filtered vendors"})
	}

	return c.Status(fiber.StatusOK).JSON(pagination.BuildResponse(vendors, params, total))
}

// GetVendorController returns one vendor with its company codes, company
// details, company links and payment detail preloaded.
func (vc *VendorController) GetVendorController(c *fiber.Ctx) error {
	vendorID, err := uuid.Parse(c.Params("vendorID"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid vendor id"})
	}

	vendor, err := vc.VendorRepo.GetVendorByID(vendorID)
	if err != nil {
		config.Logger.Error("Failed to fetch vendor", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to fetch vendor"})
	}
	if vendor == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Vendor not found"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"data": vendor})
}
