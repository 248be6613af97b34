package models

import (
	"time"

	"github.com/google/uuid"
)

type VendorStatus string

const (
	ActiveVendor   VendorStatus = "ACTIVE"
	InactiveVendor VendorStatus = "INACTIVE"
)

type AddedVia string

const (
	BulkImportAddedVia AddedVia = "BULK_IMPORT"
	ManualAddedVia     AddedVia = "MANUAL"
)

// Vendor is the primary imported record; every dependent record
// (company vendor codes, company details, payment details) hangs off it.
type Vendor struct {
	ID                   uuid.UUID `gorm:"type:uuid;primary_key;" json:"id"`
	VendorName           string    `gorm:"not null;uniqueIndex" json:"vendor_name"`
	OfficeEmailPrimary   *string   `gorm:"index" json:"office_email_primary"`
	OfficeEmailSecondary *string   `json:"office_email_secondary"`
	MobileNumber         *string   `json:"mobile_number"`
	Country              *string   `json:"country"`

	// SAP-bound invoice verification flags; default to true on bulk-created vendors
	PayeeInDocument             *bool `gorm:"default:true" json:"payee_in_document"`
	GRBasedInvVerification      *bool `gorm:"default:true" json:"gr_based_inv_verification"`
	ServiceBasedInvVerification *bool `gorm:"default:true" json:"service_based_inv_verification"`
	CheckDoubleInvoice          *bool `gorm:"default:true" json:"check_double_invoice"`

	Status   VendorStatus `gorm:"default:'ACTIVE'" json:"status"`
	AddedVia AddedVia     `json:"added_via"`

	// Relationships
	MultiCompanyLinks  []MultiCompanyLink  `gorm:"foreignKey:VendorID" json:"multi_company_links"`
	CompanyVendorCodes []CompanyVendorCode `gorm:"foreignKey:VendorID" json:"company_vendor_codes"`
	CompanyDetails     []CompanyDetail     `gorm:"foreignKey:VendorID" json:"company_details"`

	// Metadata
	CreatedBy string    `json:"created_by"`
	UpdatedBy string    `json:"updated_by"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// MultiCompanyLink records one company a vendor trades under, plus the
// company-specific commercial terms. At most one entry per (vendor, company).
type MultiCompanyLink struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;" json:"id"`
	VendorID  uuid.UUID `gorm:"type:uuid;not null;index:idx_vendor_company_link,unique" json:"vendor_id"`
	CompanyID uuid.UUID `gorm:"type:uuid;not null;index:idx_vendor_company_link,unique" json:"company_id"`
	Company   Company   `gorm:"foreignKey:CompanyID" json:"company"`

	PurchaseOrganization  *string `json:"purchase_organization"`
	AccountGroup          *string `json:"account_group"`
	TermsOfPayment        *string `json:"terms_of_payment"`
	OrderCurrency         *string `json:"order_currency"`
	Incoterms             *string `json:"incoterms"`
	ReconciliationAccount *string `json:"reconciliation_account"`

	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
