package main

import (
	"context"

	"vendor-import-backend/config"
	"vendor-import-backend/db"
	"vendor-import-backend/middleware"
	"vendor-import-backend/tasks"
	"vendor-import-backend/utils"

	vendor_repositories "vendor-import-backend/vendors/repositories"
	vendor_routes "vendor-import-backend/vendors/routes"

	// bleve
	bleveControllers "vendor-import-backend/bleve/controllers"
	bleveRepositories "vendor-import-backend/bleve/repositories"
	bleveRoutes "vendor-import-backend/bleve/routes"
	bleveServices "vendor-import-backend/bleve/services"

	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// Initialize Zap logger
	config.InitLogger()

	// Load environment variables
	err := godotenv.Load(".env")
	if err != nil {
		config.Logger.Fatal("Error loading .env file", zap.Error(err))
	}

	app := fiber.New()

	// Apply CORS middleware from middleware package
	middleware.InitCors(app)

	// Initialize database and configs
	gormDB := config.ConfigureDatabase()
	port := config.GetEnv("PORT")
	ctx := context.Background()

	redisAddr := config.GetEnvOrDefault("REDIS_ADDRESS", "localhost:6379")
	redisClient := config.InitRedisServer(ctx)

	asynqRedisOpt := asynq.RedisClientOpt{
		Addr:     redisAddr,
		Password: config.GetEnv("REDIS_PASSWORD"),
		DB:       0,
	}

	asynqClient := asynq.NewClient(asynqRedisOpt)
	defer asynqClient.Close()

	indexPath := config.GetEnvOrDefault("BLEVE_INDEX_PATH", "./bleve_data")

	// Serve static files
	app.Static("/public", "./public")
	app.Static("/uploads", "./uploads")

	// Repositories
	bleveIndexingService := bleveServices.NewIndexingService(config.Logger, indexPath)
	bleveServiceRepo, bleveInterfaceRepo := bleveRepositories.NewBleveRepository(bleveIndexingService)
	vendorRepo := vendor_repositories.NewVendorRepository(gormDB)
	batchRepo := vendor_repositories.NewImportBatchRepository(gormDB)
	reportCache := tasks.NewReportCache(redisClient)

	// Background import worker
	importHandler := tasks.NewImportTaskHandler(vendorRepo, batchRepo, bleveInterfaceRepo, reportCache, config.Logger)
	go tasks.StartImportWorker(asynqRedisOpt, importHandler, config.Logger)

	// Routes
	vendor_routes.VendorRouterInit(app, gormDB, vendorRepo, batchRepo, bleveInterfaceRepo, asynqClient, reportCache)

	// Bleve Routes
	bleveController := bleveControllers.NewSearchController(bleveServiceRepo)
	bleveRoutes.InitBleveRoutes(app, bleveController)

	// Background cleanup tasks
	go utils.RunScheduledCleanup(redisClient)

	// Rebuild the search index from the database, for fresh deployments or a
	// lost index directory
	if config.GetEnv("REINDEX_ON_START") == "true" {
		go reindexVendors(vendorRepo, bleveInterfaceRepo)
	}

	// Seed reference masters (companies, banks) for development
	if config.GetEnv("SEED_MASTERS") == "true" {
		if err := db.SeedMasters(gormDB); err != nil {
			config.Logger.Error("Database seeding failed", zap.Error(err))
		}
	}

	// Start the application
	config.Logger.Info("Server starting", zap.String("port", port))
	config.Logger.Fatal("Server failed", zap.String("port", port), zap.Error(app.Listen(":"+port)))
}

const reindexPageSize = 500

func reindexVendors(vendorRepo vendor_repositories.VendorRepository, bleveRepo bleveRepositories.BleveRepositoryInterface) {
	indexed := 0
	for offset := 0; ; offset += reindexPageSize {
		vendors, _, err := vendorRepo.GetFilteredVendors(reindexPageSize, offset, nil)
		if err != nil {
			config.Logger.Error("Vendor reindex aborted", zap.Int("indexed", indexed), zap.Error(err))
			return
		}
		if len(vendors) == 0 {
			config.Logger.Info("Vendor reindex complete", zap.Int("indexed", indexed))
			return
		}
		if err := bleveRepo.IndexExistingVendors(vendors); err != nil {
			config.Logger.Error("Vendor reindex aborted", zap.Int("indexed", indexed), zap.Error(err))
			return
		}
		indexed += len(vendors)
	}
}
