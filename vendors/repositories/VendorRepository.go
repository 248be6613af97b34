package repositories

import (
	"errors"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gorm.io/gorm"

	"vendor-import-backend/db/models"
)

// VendorRepository is the persistence surface of the import engine. Every
// lookup returns (nil, nil) on a miss so callers can branch on presence
// without string-matching error text.
type VendorRepository interface {
	GetCompanyByCode(code string) (*models.Company, error)

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

	ResolveStateMaster(name, createdBy string) (*models.StateMaster, error)
	ResolveCityMaster(name, createdBy string) (*models.CityMaster, error)
	ResolvePincodeMaster(code, createdBy string) (*models.PincodeMaster, error)
	LookupBankMaster(name string) (*models.BankMaster, error)

	GetVendorByID(vendorID uuid.UUID) (*models.Vendor, error)
	GetFilteredVendors(pageSize int, offset int, filters map[string]string) ([]models.Vendor, int64, error)
}

type vendorRepository struct {
	db *gorm.DB
}

func NewVendorRepository(db *gorm.DB) VendorRepository {
	return &vendorRepository{
		db: db,
	}
}

// firstOrNil folds gorm's not-found error into a nil record.
func firstOrNil[T any](tx *gorm.DB, dest *T) (*T, error) {
	if err := tx.Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return dest, nil
}

func (r *vendorRepository) GetCompanyByCode(code string) (*models.Company, error) {
	var company models.Company
	return firstOrNil(r.db.First(&company, "company_code = ?", code), &company)
}

func (r *vendorRepository) GetVendorByName(name string) (*models.Vendor, error) {
	var vendor models.Vendor
	return firstOrNil(r.db.First(&vendor, "vendor_name = ?", name), &vendor)
}

func (r *vendorRepository) GetVendorByEmail(email string) (*models.Vendor, error) {
	var vendor models.Vendor
	return firstOrNil(r.db.First(&vendor, "office_email_primary = ?", email), &vendor)
}

func (r *vendorRepository) GetVendorByID(vendorID uuid.UUID) (*models.Vendor, error) {
	var vendor models.Vendor
	tx := r.db.
		Preload("MultiCompanyLinks.Company").
		Preload("CompanyVendorCodes.Entries").
		Preload("CompanyDetails").
		First(&vendor, "id = ?", vendorID)
	return firstOrNil(tx, &vendor)
}

func (r *vendorRepository) CreateVendor(vendor *models.Vendor) error {
	if vendor.ID == uuid.Nil {
		vendor.ID = uuid.New()
	}
	return r.db.Create(vendor).Error
}

func (r *vendorRepository) UpdateVendorFields(vendorID uuid.UUID, fields map[string]interface{}) error {
	return r.db.Model(&models.Vendor{}).Where("id = ?", vendorID).Updates(fields).Error
}

func (r *vendorRepository) GetCompanyVendorCode(vendorID, companyID uuid.UUID) (*models.CompanyVendorCode, error) {
	var cvc models.CompanyVendorCode
	return firstOrNil(r.db.First(&cvc, "vendor_id = ? AND company_id = ?", vendorID, companyID), &cvc)
}

func (r *vendorRepository) CreateCompanyVendorCode(cvc *models.CompanyVendorCode) error {
	return r.db.Create(cvc).Error
}

func (r *vendorRepository) GetVendorCodeEntries(companyVendorCodeID uuid.UUID) ([]models.VendorCodeEntry, error) {
	var entries []models.VendorCodeEntry
	err := r.db.Where("company_vendor_code_id = ?", companyVendorCodeID).Order("created_at ASC").Find(&entries).Error
	return entries, err
}

func (r *vendorRepository) AppendVendorCodeEntry(entry *models.VendorCodeEntry) error {
	return r.db.Create(entry).Error
}

func (r *vendorRepository) GetCompanyDetail(vendorID, companyID uuid.UUID) (*models.CompanyDetail, error) {
	var detail models.CompanyDetail
	return firstOrNil(r.db.First(&detail, "vendor_id = ? AND company_id = ?", vendorID, companyID), &detail)
}

func (r *vendorRepository) CreateCompanyDetail(detail *models.CompanyDetail) error {
	return r.db.Create(detail).Error
}

func (r *vendorRepository) GetMultiCompanyLink(vendorID, companyID uuid.UUID) (*models.MultiCompanyLink, error) {
	var link models.MultiCompanyLink
	return firstOrNil(r.db.First(&link, "vendor_id = ? AND company_id = ?", vendorID, companyID), &link)
}

func (r *vendorRepository) CreateMultiCompanyLink(link *models.MultiCompanyLink) error {
	return r.db.Create(link).Error
}

func (r *vendorRepository) GetPaymentDetail(vendorID uuid.UUID) (*models.PaymentDetail, error) {
	var detail models.PaymentDetail
	return firstOrNil(r.db.First(&detail, "vendor_id = ?", vendorID), &detail)
}

func (r *vendorRepository) CreatePaymentDetail(detail *models.PaymentDetail) error {
	return r.db.Create(detail).Error
}

func (r *vendorRepository) UpdatePaymentDetailFields(paymentDetailID uuid.UUID, fields map[string]interface{}) error {
	return r.db.Model(&models.PaymentDetail{}).Where("id = ?", paymentDetailID).Updates(fields).Error
}

// ReplaceBankBlocks swaps out all three nested bank blocks for the payment
// detail in one transaction. Blocks passed as nil are still deleted; the
// replacement is wholesale, not a merge.
func (r *vendorRepository) ReplaceBankBlocks(paymentDetailID uuid.UUID, domestic *models.DomesticBankBlock, international *models.InternationalBankBlock, intermediate *models.IntermediateBankBlock) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("payment_detail_id = ?", paymentDetailID).Delete(&models.DomesticBankBlock{}).Error; err != nil {
			return err
		}
		if err := tx.Where("payment_detail_id = ?", paymentDetailID).Delete(&models.InternationalBankBlock{}).Error; err != nil {
			return err
		}
		if err := tx.Where("payment_detail_id = ?", paymentDetailID).Delete(&models.IntermediateBankBlock{}).Error; err != nil {
			return err
		}
		if domestic != nil {
			if err := tx.Create(domestic).Error; err != nil {
				return err
			}
		}
		if international != nil {
			if err := tx.Create(international).Error; err != nil {
				return err
			}
		}
		if intermediate != nil {
			if err := tx.Create(intermediate).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

var titleCaser = cases.Title(language.English)

func (r *vendorRepository) ResolveStateMaster(name, createdBy string) (*models.StateMaster, error) {
	var state models.StateMaster
	found, err := firstOrNil(r.db.First(&state, "name = ?", titleCaser.String(name)), &state)
	if err != nil || found != nil {
		return found, err
	}
	state = models.StateMaster{ID: uuid.New(), Name: titleCaser.String(name), CreatedBy: createdBy}
	if err := r.db.Create(&state).Error; err != nil {
		return nil, err
	}
	return &state, nil
}

func (r *vendorRepository) ResolveCityMaster(name, createdBy string) (*models.CityMaster, error) {
	var city models.CityMaster
	found, err := firstOrNil(r.db.First(&city, "name = ?", titleCaser.String(name)), &city)
	if err != nil || found != nil {
		return found, err
	}
	city = models.CityMaster{ID: uuid.New(), Name: titleCaser.String(name), CreatedBy: createdBy}
	if err := r.db.Create(&city).Error; err != nil {
		return nil, err
	}
	return &city, nil
}

func (r *vendorRepository) ResolvePincodeMaster(code, createdBy string) (*models.PincodeMaster, error) {
	var pincode models.PincodeMaster
	found, err := firstOrNil(r.db.First(&pincode, "code = ?", code), &pincode)
	if err != nil || found != nil {
		return found, err
	}
	pincode = models.PincodeMaster{ID: uuid.New(), Code: code, CreatedBy: createdBy}
	if err := r.db.Create(&pincode).Error; err != nil {
		return nil, err
	}
	return &pincode, nil
}

func (r *vendorRepository) LookupBankMaster(name string) (*models.BankMaster, error) {
	var bank models.BankMaster
	return firstOrNil(r.db.First(&bank, "bank_name = ?", name), &bank)
}

// GetFilteredVendors retrieves vendors with filtering and pagination.
func (r *vendorRepository) GetFilteredVendors(pageSize int, offset int, filters map[string]string) ([]models.Vendor, int64, error) {
	var vendors []models.Vendor
	var total int64

	db := r.db.Model(&models.Vendor{})

	for key, value := range filters {
		switch key {
		case "vendor_name":
			db = db.Where("vendor_name ILIKE ?", "%"+value+"%")
		case "email":
			db = db.Where("office_email_primary ILIKE ?", "%"+value+"%")
		case "country":
			db = db.Where("country = ?", value)
		case "status":
			db = db.Where("status = ?", value)
		case "added_via":
			db = db.Where("added_via = ?", value)
		case "created_by":
			db = db.Where("created_by ILIKE ?", "%"+value+"%")
		case "start_date":
			db = db.Where("Date(created_at) >= ?", value)
		case "end_date":
			db = db.Where("Date(created_at) <= ?", value)
		}
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := db.Limit(pageSize).Offset(offset).Order("created_at DESC").Find(&vendors).Error; err != nil {
		return nil, 0, err
	}

	return vendors, total, nil
}
