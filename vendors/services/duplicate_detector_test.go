package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeVendorName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lowercases", "ACME", "acme"},
		{"strips punctuation", "Acme, Inc.", "acme"},
		{"collapses whitespace", "  Acme   Industries ", "acme industries"},
		{"strips ltd", "Beta Ltd", "beta"},
		{"strips limited", "BETA LIMITED", "beta"},
		{"strips pvt ltd", "Acme Pvt. Ltd", "acme"},
		{"strips private limited", "ACME PRIVATE LIMITED", "acme"},
		{"strips stacked suffixes", "Acme Co Ltd", "acme"},
		{"keeps inner words", "Limited Edition Traders", "limited edition traders"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeVendorName(tt.in))
		})
	}
}

func TestFindDuplicatesByNormalizedName(t *testing.T) {
	rows := []map[string]string{
		{FieldVendorName: "Beta Ltd"},
		{FieldVendorName: "Gamma Traders"},
		{FieldVendorName: "BETA LIMITED"},
	}

	entries := FindDuplicates(rows)

	require.Len(t, entries, 1)
	assert.Equal(t, VendorNameDuplicate, entries[0].Type)
	assert.Equal(t, "BETA LIMITED", entries[0].Value)
	assert.Equal(t, []int{0, 2}, entries[0].Rows)
}

func TestFindDuplicatesByVendorCodeCompanyPair(t *testing.T) {
	rows := []map[string]string{
		{FieldVendorName: "Alpha", FieldVendorCode: "V-1", FieldCompanyCode: "C01"},
		{FieldVendorName: "Beta", FieldVendorCode: "V-1", FieldCompanyCode: "C02"}, // same code, other company
		{FieldVendorName: "Gamma", FieldVendorCode: "V-1", FieldCompanyCode: "C01"},
	}

	entries := FindDuplicates(rows)

	require.Len(t, entries, 1)
	assert.Equal(t, VendorCodeDuplicate, entries[0].Type)
	assert.Equal(t, "V-1 @ C01", entries[0].Value)
	assert.Equal(t, []int{0, 2}, entries[0].Rows)
}

func TestFindDuplicatesByEmailCaseInsensitive(t *testing.T) {
	rows := []map[string]string{
		{FieldVendorName: "Alpha", FieldOfficeEmailPrimary: "ap@alpha.example.com"},
		{FieldVendorName: "Beta", FieldOfficeEmailPrimary: "AP@Alpha.Example.Com"},
	}

	entries := FindDuplicates(rows)

	require.Len(t, entries, 1)
	assert.Equal(t, EmailDuplicate, entries[0].Type)
	assert.Equal(t, []int{0, 1}, entries[0].Rows)
}

// Every repeat after the first occurrence points back at the first row, and
// entries come out in source order.
func TestFindDuplicatesRepeatedKeyAlwaysReferencesFirstRow(t *testing.T) {
	rows := []map[string]string{
		{FieldVendorName: "Acme"},
		{FieldVendorName: "Acme Ltd"},
		{FieldVendorName: "ACME"},
	}

	entries := FindDuplicates(rows)

	require.Len(t, entries, 2)
	assert.Equal(t, []int{0, 1}, entries[0].Rows)
	assert.Equal(t, []int{0, 2}, entries[1].Rows)
}

func TestFindDuplicatesIgnoresMissingKeys(t *testing.T) {
	rows := []map[string]string{
		{FieldVendorCode: "V-1"}, // no company code, pair key incomplete
		{FieldVendorCode: "V-1"},
		{},
		{},
	}

	assert.Empty(t, FindDuplicates(rows))
}
