package routes

import (
	indexing_repository "vendor-import-backend/bleve/repositories"
	"vendor-import-backend/tasks"
	"vendor-import-backend/vendors/controllers"
	"vendor-import-backend/vendors/repositories"

	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
	"gorm.io/gorm"
)

func VendorRouterInit(
	app *fiber.App,
	db *gorm.DB,
	vendorRepository repositories.VendorRepository,
	batchRepository repositories.ImportBatchRepository,
	bleveRepository indexing_repository.BleveRepositoryInterface,
	asynqClient *asynq.Client,
	reportCache *tasks.ReportCache,
) {
	vendorController := &controllers.VendorController{
		VendorRepo:  vendorRepository,
		BatchRepo:   batchRepository,
		BleveRepo:   bleveRepository,
		AsynqClient: asynqClient,
		ReportCache: reportCache,
		DB:          db,
	}

	vendorRoutes := app.Group("/vendors")
	vendorRoutes.Get("/", vendorController.GetFilteredVendorsController)
	vendorRoutes.Post("/import", vendorController.ImportVendorsController)
	vendorRoutes.Post("/import/preview", vendorController.PreviewImportMappingController)
	vendorRoutes.Get("/import/batches", vendorController.GetFilteredImportBatchesController)
	vendorRoutes.Get("/import/:batchID", vendorController.GetImportBatchController)
	vendorRoutes.Get("/import/:batchID/rows", vendorController.GetImportBatchRowsController)
	vendorRoutes.Get("/import/:batchID/errors", vendorController.DownloadImportErrorsController)
	vendorRoutes.Get("/:vendorID", vendorController.GetVendorController)
}
