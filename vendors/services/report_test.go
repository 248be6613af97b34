package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReportFlattensErrorsAndWarningsInRowOrder(t *testing.T) {
	report := &ImportReport{
		Rows: []RowResult{
			{Index: 0, State: RowRejected, Errors: []string{"Row 1: Vendor Name is required"}},
			{Index: 1, State: RowCommitted, Warnings: []string{"Row 2: Vendor Code is missing"}},
			{Index: 2, State: RowRejected,
				Errors:   []string{"Row 3: Invalid email format 'x'"},
				Warnings: []string{"Row 3: Company Code is missing"}},
		},
	}

	assert.Equal(t, []string{
		"Row 1: Vendor Name is required",
		"Row 3: Invalid email format 'x'",
	}, report.AllErrors())
	assert.Equal(t, []string{
		"Row 2: Vendor Code is missing",
		"Row 3: Company Code is missing",
	}, report.AllWarnings())
}

func TestReportFlattenersEmptyOnCleanBatch(t *testing.T) {
	report := &ImportReport{
		Rows: []RowResult{{Index: 0, State: RowCommitted}},
	}

	assert.Empty(t, report.AllErrors())
	assert.Empty(t, report.AllWarnings())
}
