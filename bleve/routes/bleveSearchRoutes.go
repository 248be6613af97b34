package routes

import (
	"github.com/gofiber/fiber/v2"

	"vendor-import-backend/bleve/controllers"
)

func InitBleveRoutes(app *fiber.App, searchController *controllers.SearchController) {
	searchRoutes := app.Group("/search")
	searchRoutes.Get("/vendors", searchController.SearchVendorsController)
}
