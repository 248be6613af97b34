package models

import (
	"time"

	"github.com/google/uuid"
)

// PaymentDetail holds a vendor's banking data. Exactly one record per vendor;
// re-imports update the basic fields and replace the nested bank blocks
// wholesale rather than merging them.
type PaymentDetail struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;" json:"id"`
	VendorID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"vendor_id"`

	BankName            *string `json:"bank_name"`
	IFSCCode            *string `json:"ifsc_code"`
	AccountNumber       *string `json:"account_number"`
	NameOfAccountHolder *string `json:"name_of_account_holder"`
	TypeOfAccount       *string `json:"type_of_account"`
	Currency            *string `json:"currency"`

	DomesticBank      *DomesticBankBlock      `gorm:"foreignKey:PaymentDetailID" json:"domestic_bank"`
	InternationalBank *InternationalBankBlock `gorm:"foreignKey:PaymentDetailID" json:"international_bank"`
	IntermediateBank  *IntermediateBankBlock  `gorm:"foreignKey:PaymentDetailID" json:"intermediate_bank"`

	CreatedBy string    `json:"created_by"`
	UpdatedBy string    `json:"updated_by"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

type DomesticBankBlock struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;" json:"id"`
	PaymentDetailID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"payment_detail_id"`

	BankName            *string `json:"bank_name"`
	IFSCCode            *string `json:"ifsc_code"`
	AccountNumber       *string `json:"account_number"`
	NameOfAccountHolder *string `json:"name_of_account_holder"`
	TypeOfAccount       *string `json:"type_of_account"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

type InternationalBankBlock struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;" json:"id"`
	PaymentDetailID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"payment_detail_id"`

	BeneficiaryName        *string `json:"beneficiary_name"`
	BeneficiaryBankName    *string `json:"beneficiary_bank_name"`
	BeneficiarySwiftCode   *string `json:"beneficiary_swift_code"`
	BeneficiaryIBAN        *string `json:"beneficiary_iban"`
	BeneficiaryAccountNo   *string `json:"beneficiary_account_no"`
	BeneficiaryBankAddress *string `json:"beneficiary_bank_address"`
	BeneficiaryCurrency    *string `json:"beneficiary_currency"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

type IntermediateBankBlock struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;" json:"id"`
	PaymentDetailID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"payment_detail_id"`

	IntermediateBankName  *string `json:"intermediate_bank_name"`
	IntermediateSwiftCode *string `json:"intermediate_swift_code"`
	IntermediateAccountNo *string `json:"intermediate_account_no"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
