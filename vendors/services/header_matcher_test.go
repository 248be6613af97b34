package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildHeaderMappingMatchesAliases(t *testing.T) {
	tests := []struct {
		header string
		field  string
	}{
		{"Vendor Name", FieldVendorName},
		{"VENDOR_NAME", FieldVendorName},
		{"Supplier Name", FieldVendorName},
		{"Vendor Code", FieldVendorCode},
		{"SAP Vendor Code", FieldVendorCode},
		{"Company Code", FieldCompanyCode},
		{"Email ID", FieldOfficeEmailPrimary},
		{"Email", FieldOfficeEmailPrimary},
		{"Secondary Email", FieldOfficeEmailSecondary},
		{"Mobile No", FieldMobileNumber},
		{"GSTIN", FieldGSTNo},
		{"PAN Number", FieldCompanyPANNumber},
		{"Pin Code", FieldPincode},
		{"IFSC Code", FieldIFSCCode},
		{"Beneficiary Bank Name", FieldBeneficiaryBankName},
		{"Intermediate Bank Name", FieldIntermediateBankName},
		{"Terms of Payment", FieldTermsOfPayment},
		{"State", FieldState},
		{"Country", FieldCountry},
		{"Totally Unknown Column", ""},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			mapping := BuildHeaderMapping([]string{tt.header}, nil)
			assert.Equal(t, tt.field, mapping.FieldFor(tt.header))
		})
	}
}

// Specific fields must win over generic ones that share alias substrings.
func TestBuildHeaderMappingPriorityOrder(t *testing.T) {
	headers := []string{
		"Vendor Code",           // must not fall into vendor_name via "vendor"
		"Secondary Email",       // must not fall into office_email_primary via "email"
		"Beneficiary Bank Name", // must not fall into bank_name via "bank name"
		"Beneficiary Currency",  // must not fall into currency
	}

	mapping := BuildHeaderMapping(headers, nil)

	assert.Equal(t, FieldVendorCode, mapping.FieldFor("Vendor Code"))
	assert.Equal(t, FieldOfficeEmailSecondary, mapping.FieldFor("Secondary Email"))
	assert.Equal(t, FieldBeneficiaryBankName, mapping.FieldFor("Beneficiary Bank Name"))
	assert.Equal(t, FieldBeneficiaryCurrency, mapping.FieldFor("Beneficiary Currency"))
}

func TestBuildHeaderMappingIsDeterministic(t *testing.T) {
	headers := []string{"Vendor Name", "Email", "Bank", "Mystery"}

	first := BuildHeaderMapping(headers, nil)
	second := BuildHeaderMapping(headers, nil)

	assert.Equal(t, first, second)
}

func TestBuildHeaderMappingOverrides(t *testing.T) {
	headers := []string{"Ref No", "Vendor Name", "Internal Notes"}
	overrides := map[string]string{
		"Ref No":         FieldVendorCode, // manual assignment of an unmatched header
		"Internal Notes": "",              // deliberately unmapped
		"Vendor Name":    FieldCountry,    // manual override beats the alias table
	}

	mapping := BuildHeaderMapping(headers, overrides)

	require.Len(t, mapping.Columns, 3)
	assert.Equal(t, FieldVendorCode, mapping.FieldFor("Ref No"))
	assert.Equal(t, FieldCountry, mapping.FieldFor("Vendor Name"))
	assert.Equal(t, "", mapping.FieldFor("Internal Notes"))

	for _, col := range mapping.Columns {
		assert.True(t, col.Overridden, col.SourceHeader)
	}
}

func TestBuildHeaderMappingRejectsUnknownOverrideField(t *testing.T) {
	mapping := BuildHeaderMapping([]string{"Ref No"}, map[string]string{"Ref No": "not_a_field"})

	assert.Equal(t, "", mapping.FieldFor("Ref No"))
	assert.Equal(t, 1, mapping.Unmapped)
}

func TestBuildHeaderMappingCoverage(t *testing.T) {
	mapping := BuildHeaderMapping([]string{"Vendor Name", "Email", "Mystery A", "Mystery B"}, nil)

	assert.Equal(t, 2, mapping.Mapped)
	assert.Equal(t, 2, mapping.Unmapped)
	assert.InDelta(t, 50.0, mapping.Coverage, 0.001)
}

func TestApplyMapping(t *testing.T) {
	mapping := BuildHeaderMapping([]string{"Vendor Name", "Mystery", "Supplier Name"}, nil)

	mapped := ApplyMapping(&mapping, map[string]string{
		"Vendor Name":   "Acme Ltd",
		"Mystery":       "dropped",
		"Supplier Name": "should not overwrite",
	})

	// Unmapped cells are dropped; when two headers map to the same field the
	// earlier column wins.
	assert.Equal(t, map[string]string{FieldVendorName: "Acme Ltd"}, mapped)
}
