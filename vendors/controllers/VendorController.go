package controllers

import (
	indexing_repository "vendor-import-backend/bleve/repositories"
	"vendor-import-backend/tasks"
	"vendor-import-backend/vendors/repositories"

	"github.com/hibiken/asynq"
	"gorm.io/gorm"
)

type VendorController struct {
	VendorRepo  repositories.VendorRepository
	BatchRepo   repositories.ImportBatchRepository
	BleveRepo   indexing_repository.BleveRepositoryInterface
	AsynqClient *asynq.Client
	ReportCache *tasks.ReportCache
	DB          *gorm.DB
}
