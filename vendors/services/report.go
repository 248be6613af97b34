package services

// RowState is the terminal state of one row's pass through the engine.
type RowState string

const (
	RowCommitted RowState = "COMMITTED"
	RowRejected  RowState = "REJECTED"
	RowFailed    RowState = "FAILED"
)

// RowResult is the per-row outcome surfaced in the batch report. VendorID is
// set once the row's primary vendor has been committed, so downstream
// consumers (search indexing, row logs) can reference it.
type RowResult struct {
	Index      int               `json:"index"`
	VendorName string            `json:"vendor_name"`
	VendorID   string            `json:"vendor_id,omitempty"`
	State      RowState          `json:"state"`
	Errors     []string          `json:"errors,omitempty"`
	Warnings   []string          `json:"warnings,omitempty"`
	Raw        map[string]string `json:"raw,omitempty"`
}

// EntityCounts tracks created/updated records per entity type for one batch.
type EntityCounts struct {
	VendorsCreated        int `json:"vendors_created"`
	VendorsUpdated        int `json:"vendors_updated"`
	CodeEntriesAdded      int `json:"code_entries_added"`
	CompanyDetailsCreated int `json:"company_details_created"`
	CompanyLinksAdded     int `json:"company_links_added"`
	PaymentDetailsCreated int `json:"payment_details_created"`
	PaymentDetailsUpdated int `json:"payment_details_updated"`
}

// ImportReport is the aggregate result of one batch run. It is pure
// bookkeeping: totals, per-entity counts, per-row outcomes in source order,
// the advisory duplicate report and the header mapping the batch used.
type ImportReport struct {
	TotalRows   int `json:"total_rows"`
	ValidRows   int `json:"valid_rows"`
	InvalidRows int `json:"invalid_rows"`

	Counts     EntityCounts     `json:"counts"`
	Mapping    HeaderMapping    `json:"mapping"`
	Rows       []RowResult      `json:"rows"`
	Duplicates []DuplicateEntry `json:"duplicates,omitempty"`
}

// AllErrors flattens every row's blocking errors, preserving row order.
func (r *ImportReport) AllErrors() []string {
	var out []string
	for _, row := range r.Rows {
		out = append(out, row.Errors...)
	}
	return out
}

// AllWarnings flattens every row's warnings, preserving row order.
func (r *ImportReport) AllWarnings() []string {
	var out []string
	for _, row := range r.Rows {
		out = append(out, row.Warnings...)
	}
	return out
}
