package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanCell(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want *string
	}{
		{"plain value", "Acme Industries", strPtr("Acme Industries")},
		{"surrounding whitespace trimmed", "  Acme  ", strPtr("Acme")},
		{"empty string", "", nil},
		{"whitespace only", "   ", nil},
		{"pandas nan", "nan", nil},
		{"uppercase NaN", "NaN", nil},
		{"none token", "None", nil},
		{"null token", "NULL", nil},
		{"n/a token", "N/A", nil},
		{"value containing nan is kept", "Banana", strPtr("Banana")},
		{"zero is a real value", "0", strPtr("0")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CleanCell(tt.raw)
			if tt.want == nil {
				assert.Nil(t, got)
			} else {
				if assert.NotNil(t, got) {
					assert.Equal(t, *tt.want, *got)
				}
			}
		})
	}
}

func TestCleanRowDropsNullCells(t *testing.T) {
	raw := map[string]string{
		"Vendor Name": " Acme Ltd ",
		"GST No":      "nan",
		"City":        "",
		"Country":     "India",
	}

	cleaned := CleanRow(raw)

	assert.Equal(t, map[string]string{
		"Vendor Name": "Acme Ltd",
		"Country":     "India",
	}, cleaned)
}

func strPtr(s string) *string {
	return &s
}
