package services

import (
	"fmt"
	"regexp"
	"strings"

	"vendor-import-backend/db/models"
)

// CompanyResolver is the slice of the repository the validator needs.
type CompanyResolver interface {
	GetCompanyByCode(code string) (*models.Company, error)
}

// ValidationOutcome separates blocking errors from advisory warnings for one
// row. Warnings never make a row invalid; they ride along into the report.
type ValidationOutcome struct {
	RowIndex int      `json:"row_index"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

func (v *ValidationOutcome) IsValid() bool {
	return len(v.Errors) == 0
}

func (v *ValidationOutcome) addError(format string, args ...interface{}) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}

func (v *ValidationOutcome) addWarning(format string, args ...interface{}) {
	v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
}

var (
	emailRegex   = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	gstRegex     = regexp.MustCompile(`^[0-9]{2}[A-Z]{5}[0-9]{4}[A-Z][1-9A-Z]Z[0-9A-Z]$`)
	panRegex     = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]$`)
	pincodeRegex = regexp.MustCompile(`^[0-9]{6}$`)
	nonDigits    = regexp.MustCompile(`[^0-9]`)
)

// ValidateRow applies the per-field rules to a mapped row. Missing vendor
// name and a malformed primary email are the only blocking failures; every
// other issue (missing codes, unknown company, bad GST/PAN/phone/pincode) is
// advisory so the vendor itself still gets processed.
func ValidateRow(mapped map[string]string, rowIndex int, companies CompanyResolver) ValidationOutcome {
	outcome := ValidationOutcome{RowIndex: rowIndex}

	if mapped[FieldVendorName] == "" {
		outcome.addError("Row %d: Vendor Name is required", rowIndex+1)
	}

	if email, ok := mapped[FieldOfficeEmailPrimary]; ok {
		if !emailRegex.MatchString(email) {
			outcome.addError("Row %d: Invalid email format '%s'", rowIndex+1, email)
		}
	}

	if _, ok := mapped[FieldVendorCode]; !ok {
		outcome.addWarning("Row %d: Vendor Code is missing", rowIndex+1)
	}

	if code, ok := mapped[FieldCompanyCode]; !ok {
		outcome.addWarning("Row %d: Company Code is missing", rowIndex+1)
	} else {
		company, err := companies.GetCompanyByCode(code)
		if err != nil {
			outcome.addWarning("Row %d: Failed to look up company '%s': %s", rowIndex+1, code, err.Error())
		} else if company == nil {
			outcome.addWarning("Row %d: Company with code %s not found", rowIndex+1, code)
		}
	}

	if gst, ok := mapped[FieldGSTNo]; ok {
		if !gstRegex.MatchString(strings.ToUpper(gst)) {
			outcome.addWarning("Row %d: Invalid GST format '%s'", rowIndex+1, gst)
		}
	}

	if pan, ok := mapped[FieldCompanyPANNumber]; ok {
		if !panRegex.MatchString(strings.ToUpper(pan)) {
			outcome.addWarning("Row %d: Invalid PAN format '%s'", rowIndex+1, pan)
		}
	}

	if phone, ok := mapped[FieldMobileNumber]; ok {
		digits := nonDigits.ReplaceAllString(phone, "")
		if len(digits) < 10 || len(digits) > 15 {
			outcome.addWarning("Row %d: Invalid mobile number '%s' (need 10-15 digits)", rowIndex+1, phone)
		}
	}

	if pincode, ok := mapped[FieldPincode]; ok {
		if !pincodeRegex.MatchString(pincode) {
			outcome.addWarning("Row %d: Invalid pincode '%s' (must be 6 digits)", rowIndex+1, pincode)
		}
	}

	return outcome
}
