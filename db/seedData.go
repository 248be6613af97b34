package db

import (
	"vendor-import-backend/db/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SeedMasters populates the company and bank reference masters used by
// imports in development. Companies are never auto-created by the engine,
// so a fresh database needs them seeded before the first upload.
func SeedMasters(db *gorm.DB) error {
	if err := seedCompanies(db, "system"); err != nil {
		return err
	}
	return seedBanks(db, "system")
}

func seedCompanies(db *gorm.DB, createdBy string) error {
	companies := []models.Company{
		{CompanyCode: "C01", CompanyName: "Acme Industries Ltd", IsActive: true, CreatedBy: createdBy},
		{CompanyCode: "C02", CompanyName: "Acme Chemicals Ltd", IsActive: true, CreatedBy: createdBy},
		{CompanyCode: "C03", CompanyName: "Acme Exports Ltd", IsActive: true, CreatedBy: createdBy},
	}

	for _, company := range companies {
		var existing models.Company
		if err := db.Where("company_code = ?", company.CompanyCode).First(&existing).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				company.ID = uuid.New()
				if err := db.Create(&company).Error; err != nil {
					return err
				}
			} else {
				return err
			}
		}
	}
	return nil
}

func seedBanks(db *gorm.DB, createdBy string) error {
	banks := []models.BankMaster{
		{BankName: "State Bank of India", SwiftCode: "SBININBB", IsActive: true, CreatedBy: createdBy},
		{BankName: "HDFC Bank", SwiftCode: "HDFCINBB", IsActive: true, CreatedBy: createdBy},
		{BankName: "ICICI Bank", SwiftCode: "ICICINBB", IsActive: true, CreatedBy: createdBy},
		{BankName: "Axis Bank", SwiftCode: "AXISINBB", IsActive: true, CreatedBy: createdBy},
	}

	for _, bank := range banks {
		var existing models.BankMaster
		if err := db.Where("bank_name = ?", bank.BankName).First(&existing).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				bank.ID = uuid.New()
				if err := db.Create(&bank).Error; err != nil {
					return err
				}
			} else {
				return err
			}
		}
	}
	return nil
}
