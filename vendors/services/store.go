package services

import (
	"github.com/google/uuid"

	"vendor-import-backend/db/models"
)

// ImportStore is everything the upsert orchestrator needs from persistence.
// Lookups return (nil, nil) when no record matches; an error always means the
// store itself failed. Each call is individually atomic; the engine assumes
// no multi-call transaction.
type ImportStore interface {
	CompanyResolver

	GetVendorByName(name string) (*models.Vendor, error)
	GetVendorByEmail(email string) (*models.Vendor, error)
	CreateVendor(vendor *models.Vendor) error
	UpdateVendorFields(vendorID uuid.UUID, fields map[string]interface{}) error

	GetCompanyVendorCode(vendorID, companyID uuid.UUID) (*models.CompanyVendorCode, error)
	CreateCompanyVendorCode(cvc *models.CompanyVendorCode) error
	GetVendorCodeEntries(companyVendorCodeID uuid.UUID) ([]models.VendorCodeEntry, error)
	AppendVendorCodeEntry(entry *models.VendorCodeEntry) error

	GetCompanyDetail(vendorID, companyID uuid.UUID) (*models.CompanyDetail, error)
	CreateCompanyDetail(detail *models.CompanyDetail) error

	GetMultiCompanyLink(vendorID, companyID uuid.UUID) (*models.MultiCompanyLink, error)
	CreateMultiCompanyLink(link *models.MultiCompanyLink) error

	GetPaymentDetail(vendorID uuid.UUID) (*models.PaymentDetail, error)
	CreatePaymentDetail(detail *models.PaymentDetail) error
	UpdatePaymentDetailFields(paymentDetailID uuid.UUID, fields map[string]interface{}) error
	ReplaceBankBlocks(paymentDetailID uuid.UUID, domestic *models.DomesticBankBlock, international *models.InternationalBankBlock, intermediate *models.IntermediateBankBlock) error

	// Master lookups. State, city and pincode are created on a miss; banks
	// and companies never are.
	ResolveStateMaster(name, createdBy string) (*models.StateMaster, error)
	ResolveCityMaster(name, createdBy string) (*models.CityMaster, error)
	ResolvePincodeMaster(code, createdBy string) (*models.PincodeMaster, error)
	LookupBankMaster(name string) (*models.BankMaster, error)
}
