package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ImportBatchStatus string

const (
	PendingImportBatch   ImportBatchStatus = "PENDING"
	RunningImportBatch   ImportBatchStatus = "RUNNING"
	CompletedImportBatch ImportBatchStatus = "COMPLETED"
	FailedImportBatch    ImportBatchStatus = "FAILED"
)

type ImportRowOutcome string

const (
	CommittedRowOutcome ImportRowOutcome = "COMMITTED"
	RejectedRowOutcome  ImportRowOutcome = "REJECTED"
	FailedRowOutcome    ImportRowOutcome = "FAILED"
)

// ImportBatch is one bulk-import run. Counters are written once the batch
// finishes so reports survive restarts and can be polled after the fact.
type ImportBatch struct {
	ID       uuid.UUID         `gorm:"type:uuid;primary_key;" json:"id"`
	FileName string            `json:"file_name"`
	Status   ImportBatchStatus `gorm:"default:'PENDING'" json:"status"`

	TotalRows   int `json:"total_rows"`
	ValidRows   int `json:"valid_rows"`
	InvalidRows int `json:"invalid_rows"`

	VendorsCreated        int `json:"vendors_created"`
	VendorsUpdated        int `json:"vendors_updated"`
	CodeEntriesAdded      int `json:"code_entries_added"`
	CompanyDetailsCreated int `json:"company_details_created"`
	CompanyLinksAdded     int `json:"company_links_added"`
	PaymentDetailsCreated int `json:"payment_details_created"`
	PaymentDetailsUpdated int `json:"payment_details_updated"`

	MappedHeaders   int     `json:"mapped_headers"`
	UnmappedHeaders int     `json:"unmapped_headers"`
	HeaderCoverage  float64 `json:"header_coverage"`

	ErrorReportPath string `json:"error_report_path"`
	FailureReason   string `json:"failure_reason"`

	CreatedBy   string     `json:"created_by"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`
	StartedAt   *time.Time `json:"started_at"`
	CompletedAt *time.Time `json:"completed_at"`
}

// ImportRowLog records the per-row outcome of a batch, including the raw
// source row so rejected rows can be exported back to the operator.
type ImportRowLog struct {
	ID       uuid.UUID        `gorm:"type:uuid;primary_key;" json:"id"`
	BatchID  uuid.UUID        `gorm:"type:uuid;not null;index" json:"batch_id"`
	RowIndex int              `json:"row_index"`
	Outcome  ImportRowOutcome `json:"outcome"`

	VendorName string `json:"vendor_name"`

	Errors   datatypes.JSON `json:"errors"`
	Warnings datatypes.JSON `json:"warnings"`
	RawRow   datatypes.JSON `json:"raw_row"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
