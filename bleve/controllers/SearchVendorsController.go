package controllers

import (
	"github.com/gofiber/fiber/v2"

	"vendor-import-backend/bleve/repositories"
)

type SearchController struct {
	repo *repositories.BleveRepository
}

func NewSearchController(repo *repositories.BleveRepository) *SearchController {
	return &SearchController{repo: repo}
}

func (c *SearchController) SearchVendorsController(ctx *fiber.Ctx) error {
	query := ctx.Query("q")
	status := ctx.Query("status")
	country := ctx.Query("country")

	results, err := c.repo.SearchVendors(query, status, country)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Search failed",
		})
	}

	var matches []interface{}
	for _, hit := range results.Hits {
		doc, err := c.repo.GetVendorDocument(hit.ID)
		if err != nil {
			continue
		}
		matches = append(matches, doc)
	}

	return ctx.JSON(fiber.Map{
		"results": matches,
		"total":   results.Total,
	})
}
