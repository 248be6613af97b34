package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"vendor-import-backend/db/models"

	"github.com/google/uuid"
)

// fakeCompanyResolver resolves company codes from a fixed map; a nil map
// means every lookup misses.
type fakeCompanyResolver struct {
	companies map[string]*models.Company
	err       error
}

func (f *fakeCompanyResolver) GetCompanyByCode(code string) (*models.Company, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.companies[code], nil
}

func knownCompanies(codes ...string) *fakeCompanyResolver {
	companies := make(map[string]*models.Company, len(codes))
	for _, code := range codes {
		companies[code] = &models.Company{ID: uuid.New(), CompanyCode: code}
	}
	return &fakeCompanyResolver{companies: companies}
}

func TestValidateRowHappyPath(t *testing.T) {
	mapped := map[string]string{
		FieldVendorName:         "Acme Industries Ltd",
		FieldVendorCode:         "V-100",
		FieldCompanyCode:        "C01",
		FieldOfficeEmailPrimary: "accounts@acme.example.com",
		FieldGSTNo:              "27AAPFU0939F1ZV",
		FieldCompanyPANNumber:   "AAPFU0939F",
		FieldMobileNumber:       "+91 98765 43210",
		FieldPincode:            "400001",
	}

	outcome := ValidateRow(mapped, 0, knownCompanies("C01"))

	assert.True(t, outcome.IsValid())
	assert.Empty(t, outcome.Errors)
	assert.Empty(t, outcome.Warnings)
}

func TestValidateRowMissingVendorNameIsBlocking(t *testing.T) {
	outcome := ValidateRow(map[string]string{
		FieldVendorCode:  "V-100",
		FieldCompanyCode: "C01",
	}, 2, knownCompanies("C01"))

	assert.False(t, outcome.IsValid())
	assert.Contains(t, outcome.Errors, "Row 3: Vendor Name is required")
}

func TestValidateRowBadEmailIsBlocking(t *testing.T) {
	outcome := ValidateRow(map[string]string{
		FieldVendorName:         "Acme",
		FieldVendorCode:         "V-100",
		FieldCompanyCode:        "C01",
		FieldOfficeEmailPrimary: "not-an-email",
	}, 0, knownCompanies("C01"))

	assert.False(t, outcome.IsValid())
	assert.Contains(t, outcome.Errors, "Row 1: Invalid email format 'not-an-email'")
}

func TestValidateRowAbsentEmailIsNotChecked(t *testing.T) {
	outcome := ValidateRow(map[string]string{
		FieldVendorName:  "Acme",
		FieldVendorCode:  "V-100",
		FieldCompanyCode: "C01",
	}, 0, knownCompanies("C01"))

	assert.True(t, outcome.IsValid())
}

func TestValidateRowMissingCodesAreWarnings(t *testing.T) {
	outcome := ValidateRow(map[string]string{
		FieldVendorName: "Acme",
	}, 0, knownCompanies())

	assert.True(t, outcome.IsValid())
	assert.Contains(t, outcome.Warnings, "Row 1: Vendor Code is missing")
	assert.Contains(t, outcome.Warnings, "Row 1: Company Code is missing")
}

func TestValidateRowUnknownCompanyIsWarning(t *testing.T) {
	outcome := ValidateRow(map[string]string{
		FieldVendorName:  "Acme",
		FieldVendorCode:  "V-100",
		FieldCompanyCode: "C99",
	}, 0, knownCompanies("C01"))

	assert.True(t, outcome.IsValid())
	assert.Contains(t, outcome.Warnings, "Row 1: Company with code C99 not found")
}

func TestValidateRowCompanyLookupFailureIsWarning(t *testing.T) {
	resolver := &fakeCompanyResolver{err: errors.New("connection refused")}

	outcome := ValidateRow(map[string]string{
		FieldVendorName:  "Acme",
		FieldVendorCode:  "V-100",
		FieldCompanyCode: "C01",
	}, 0, resolver)

	assert.True(t, outcome.IsValid())
	assert.Contains(t, outcome.Warnings, "Row 1: Failed to look up company 'C01': connection refused")
}

// A malformed GST number downgrades to a warning; the row still imports.
func TestValidateRowBadFormatsAreWarnings(t *testing.T) {
	mapped := map[string]string{
		FieldVendorName:       "Acme",
		FieldVendorCode:       "V-100",
		FieldCompanyCode:      "C01",
		FieldGSTNo:            "1234",
		FieldCompanyPANNumber: "NOTAPAN",
		FieldMobileNumber:     "12345",
		FieldPincode:          "40001",
	}

	outcome := ValidateRow(mapped, 4, knownCompanies("C01"))

	assert.True(t, outcome.IsValid())
	assert.Empty(t, outcome.Errors)
	assert.Contains(t, outcome.Warnings, "Row 5: Invalid GST format '1234'")
	assert.Contains(t, outcome.Warnings, "Row 5: Invalid PAN format 'NOTAPAN'")
	assert.Contains(t, outcome.Warnings, "Row 5: Invalid mobile number '12345' (need 10-15 digits)")
	assert.Contains(t, outcome.Warnings, "Row 5: Invalid pincode '40001' (must be 6 digits)")
}

func TestValidateRowLowercaseGSTAndPANAccepted(t *testing.T) {
	outcome := ValidateRow(map[string]string{
		FieldVendorName:       "Acme",
		FieldVendorCode:       "V-100",
		FieldCompanyCode:      "C01",
		FieldGSTNo:            "27aapfu0939f1zv",
		FieldCompanyPANNumber: "aapfu0939f",
	}, 0, knownCompanies("C01"))

	assert.True(t, outcome.IsValid())
	assert.Empty(t, outcome.Warnings)
}

func TestValidateRowPhoneWithFormattingAccepted(t *testing.T) {
	outcome := ValidateRow(map[string]string{
		FieldVendorName:   "Acme",
		FieldVendorCode:   "V-100",
		FieldCompanyCode:  "C01",
		FieldMobileNumber: "(022) 4000-1234",
	}, 0, knownCompanies("C01"))

	assert.True(t, outcome.IsValid())
	assert.Empty(t, outcome.Warnings)
}
