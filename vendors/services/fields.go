package services

// Canonical target fields an import column can map to. The alias table below
// is ordered: the header matcher tries fields top to bottom and the first
// alias hit wins, so more specific fields must sit above the generic ones
// (office_email_secondary before office_email_primary, beneficiary/intermediate
// bank fields before the plain bank ones, and so on).
const (
	FieldVendorName           = "vendor_name"
	FieldVendorCode           = "vendor_code"
	FieldCompanyCode          = "company_code"
	FieldOfficeEmailSecondary = "office_email_secondary"
	FieldOfficeEmailPrimary   = "office_email_primary"
	FieldMobileNumber         = "mobile_number"
	FieldCountry              = "country"
	FieldGSTNo                = "gst_no"
	FieldCompanyPANNumber     = "company_pan_number"
	FieldAddressLine1         = "address_line_1"
	FieldAddressLine2         = "address_line_2"
	FieldCity                 = "city"
	FieldState                = "state"
	FieldPincode              = "pincode"
	FieldNatureOfBusiness     = "nature_of_business"

	FieldPurchaseOrganization  = "purchase_organization"
	FieldAccountGroup          = "account_group"
	FieldTermsOfPayment        = "terms_of_payment"
	FieldOrderCurrency         = "order_currency"
	FieldIncoterms             = "incoterms"
	FieldReconciliationAccount = "reconciliation_account"

	FieldBankName            = "bank_name"
	FieldIFSCCode            = "ifsc_code"
	FieldAccountNumber       = "account_number"
	FieldNameOfAccountHolder = "name_of_account_holder"
	FieldTypeOfAccount       = "type_of_account"
	FieldCurrency            = "currency"

	FieldBeneficiaryName        = "beneficiary_name"
	FieldBeneficiaryBankName    = "beneficiary_bank_name"
	FieldBeneficiarySwiftCode   = "beneficiary_swift_code"
	FieldBeneficiaryIBAN        = "beneficiary_iban"
	FieldBeneficiaryAccountNo   = "beneficiary_account_no"
	FieldBeneficiaryBankAddress = "beneficiary_bank_address"
	FieldBeneficiaryCurrency    = "beneficiary_currency"

	FieldIntermediateBankName  = "intermediate_bank_name"
	FieldIntermediateSwiftCode = "intermediate_swift_code"
	FieldIntermediateAccountNo = "intermediate_account_no"
)

type fieldAliases struct {
	Field   string
	Aliases []string
}

// defaultAliasTable drives auto-mapping of source headers. Order matters;
// see the note on the field constants.
var defaultAliasTable = []fieldAliases{
	{FieldVendorCode, []string{"vendor code", "vendor_code", "sap vendor code", "vendor no"}},
	{FieldVendorName, []string{"vendor name", "vendor_name", "name of vendor", "supplier name", "vendor"}},
	{FieldCompanyCode, []string{"company code", "company_code", "comp code"}},
	{FieldOfficeEmailSecondary, []string{"secondary email", "email secondary", "office email secondary", "alternate email"}},
	{FieldOfficeEmailPrimary, []string{"primary email", "email primary", "office email", "email id", "email", "mail"}},
	{FieldMobileNumber, []string{"mobile number", "mobile no", "mobile", "phone number", "phone", "contact number", "contact no"}},
	{FieldGSTNo, []string{"gst no", "gst number", "gstin", "gst"}},
	{FieldCompanyPANNumber, []string{"pan number", "pan no", "company pan", "pan"}},
	{FieldAddressLine1, []string{"address line 1", "address line1", "address1", "address 1", "street 1"}},
	{FieldAddressLine2, []string{"address line 2", "address line2", "address2", "address 2", "street 2"}},
	{FieldPincode, []string{"pincode", "pin code", "postal code", "zip code", "zip"}},
	{FieldNatureOfBusiness, []string{"nature of business", "business nature", "business type"}},
	{FieldCity, []string{"city", "town"}},

	{FieldPurchaseOrganization, []string{"purchase organization", "purchase org", "purchasing org"}},
	{FieldAccountGroup, []string{"account group", "acct group"}},
	{FieldTermsOfPayment, []string{"terms of payment", "payment terms"}},
	{FieldOrderCurrency, []string{"order currency", "po currency"}},
	{FieldIncoterms, []string{"incoterms", "incoterm"}},
	{FieldReconciliationAccount, []string{"reconciliation account", "recon account", "reconciliation"}},

	{FieldBeneficiaryBankName, []string{"beneficiary bank name", "beneficiary bank"}},
	{FieldBeneficiarySwiftCode, []string{"beneficiary swift", "swift code", "swift"}},
	{FieldBeneficiaryIBAN, []string{"beneficiary iban", "iban"}},
	{FieldBeneficiaryAccountNo, []string{"beneficiary account", "beneficiary acc no"}},
	{FieldBeneficiaryBankAddress, []string{"beneficiary bank address"}},
	{FieldBeneficiaryCurrency, []string{"beneficiary currency"}},
	{FieldBeneficiaryName, []string{"beneficiary name", "beneficiary"}},

	{FieldIntermediateBankName, []string{"intermediate bank name", "intermediate bank"}},
	{FieldIntermediateSwiftCode, []string{"intermediate swift"}},
	{FieldIntermediateAccountNo, []string{"intermediate account"}},

	{FieldIFSCCode, []string{"ifsc code", "ifsc", "routing code", "routing number"}},
	{FieldAccountNumber, []string{"account number", "account no", "bank account number", "acc no"}},
	{FieldNameOfAccountHolder, []string{"account holder name", "name of account holder", "account holder"}},
	{FieldTypeOfAccount, []string{"type of account", "account type"}},
	{FieldBankName, []string{"bank name", "name of bank", "bank"}},
	{FieldCurrency, []string{"bank currency", "account currency", "currency"}},

	// Generic location fields last so the address-specific ones above win.
	{FieldState, []string{"state", "province"}},
	{FieldCountry, []string{"country"}},
}

// KnownField reports whether key is a member of the canonical field vocabulary.
func KnownField(key string) bool {
	for _, fa := range defaultAliasTable {
		if fa.Field == key {
			return true
		}
	}
	return false
}
