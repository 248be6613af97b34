package config

import (
	"fmt"
	"log"

	"vendor-import-backend/db/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// allModels lists every model that gets migrated. This is the only place a
// new model needs to be registered.
var allModels = []interface{}{
	// Masters
	&models.Company{},
	&models.StateMaster{},
	&models.CityMaster{},
	&models.PincodeMaster{},
	&models.BankMaster{},

	// Vendor and dependents
	&models.Vendor{},
	&models.MultiCompanyLink{},
	&models.CompanyVendorCode{},
	&models.VendorCodeEntry{},
	&models.CompanyDetail{},
	&models.PaymentDetail{},
	&models.DomesticBankBlock{},
	&models.InternationalBankBlock{},
	&models.IntermediateBankBlock{},

	// Import bookkeeping
	&models.ImportBatch{},
	&models.ImportRowLog{},
}

func ConfigureDatabase() *gorm.DB {
	host := GetEnv("DB_HOST")
	user := GetEnv("POSTGRES_USER")
	password := GetEnv("POSTGRES_PASSWORD")
	dbname := GetEnv("POSTGRES_DB")
	port := GetEnv("DB_PORT")
	timezone := GetEnv("DB_TIMEZONE")

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=%s",
		host, user, password, dbname, port, timezone,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("[DB-CONNECT] Failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(allModels...); err != nil {
		log.Fatalf("[DB-MIGRATE] Failed to migrate models: %v", err)
	}

	return db
}
