package models

import (
	"time"

	"github.com/google/uuid"
)

// Company is an externally-owned master record. The import engine looks
// companies up by code and never creates them; an unknown code is a
// validation issue on the row, not a missing master to fix up.
type Company struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;" json:"id"`
	CompanyCode string    `gorm:"not null;uniqueIndex" json:"company_code"`
	CompanyName string    `json:"company_name"`
	IsActive    bool      `gorm:"default:true" json:"is_active"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// CompanyVendorCode holds the SAP vendor codes a vendor carries for one
// company. One record per (vendor, company); codes grow as a child list.
type CompanyVendorCode struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;" json:"id"`
	VendorID  uuid.UUID `gorm:"type:uuid;not null;index:idx_company_vendor_code,unique" json:"vendor_id"`
	CompanyID uuid.UUID `gorm:"type:uuid;not null;index:idx_company_vendor_code,unique" json:"company_id"`
	Company   Company   `gorm:"foreignKey:CompanyID" json:"company"`

	Entries []VendorCodeEntry `gorm:"foreignKey:CompanyVendorCodeID" json:"entries"`

	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// VendorCodeEntry is one (vendor code, state, GST) triple under a
// CompanyVendorCode. An identical triple is never stored twice.
type VendorCodeEntry struct {
	ID                  uuid.UUID `gorm:"type:uuid;primary_key;" json:"id"`
	CompanyVendorCodeID uuid.UUID `gorm:"type:uuid;not null;index" json:"company_vendor_code_id"`
	VendorCode          string    `json:"vendor_code"`
	State               *string   `json:"state"`
	GSTNo               *string   `json:"gst_no"`
	CreatedAt           time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// CompanyDetail keeps the address/registration block a vendor filed for one
// company. Created once per (vendor, company) pair.
type CompanyDetail struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;" json:"id"`
	VendorID  uuid.UUID `gorm:"type:uuid;not null;index:idx_vendor_company_detail,unique" json:"vendor_id"`
	CompanyID uuid.UUID `gorm:"type:uuid;not null;index:idx_vendor_company_detail,unique" json:"company_id"`
	Company   Company   `gorm:"foreignKey:CompanyID" json:"company"`

	PANNumber        *string `json:"company_pan_number"`
	GSTNo            *string `json:"gst_no"`
	AddressLine1     *string `json:"address_line_1"`
	AddressLine2     *string `json:"address_line_2"`
	City             *string `json:"city"`
	State            *string `json:"state"`
	Country          *string `json:"country"`
	Pincode          *string `json:"pincode"`
	NatureOfBusiness *string `json:"nature_of_business"`

	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
