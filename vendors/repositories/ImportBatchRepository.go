package repositories

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"vendor-import-backend/db/models"
	"vendor-import-backend/vendors/services"
)

type ImportBatchRepository interface {
	CreateBatch(batch *models.ImportBatch) error
	GetBatchByID(batchID uuid.UUID) (*models.ImportBatch, error)
	MarkBatchRunning(batchID uuid.UUID) error
	MarkBatchFailed(batchID uuid.UUID, reason string) error
	CompleteBatch(batchID uuid.UUID, report *services.ImportReport, errorReportPath string) error
	SaveRowLogs(batchID uuid.UUID, rows []services.RowResult) error
	GetRowLogs(batchID uuid.UUID) ([]models.ImportRowLog, error)
	GetRejectedRowLogs(batchID uuid.UUID) ([]models.ImportRowLog, error)
	GetFilteredBatches(pageSize int, offset int, filters map[string]string) ([]models.ImportBatch, int64, error)
}

type importBatchRepository struct {
	db *gorm.DB
}

func NewImportBatchRepository(db *gorm.DB) ImportBatchRepository {
	return &importBatchRepository{
		db: db,
	}
}

func (r *importBatchRepository) CreateBatch(batch *models.ImportBatch) error {
	if batch.ID == uuid.Nil {
		batch.ID = uuid.New()
	}
	return r.db.Create(batch).Error
}

func (r *importBatchRepository) GetBatchByID(batchID uuid.UUID) (*models.ImportBatch, error) {
	var batch models.ImportBatch
	return firstOrNil(r.db.First(&batch, "id = ?", batchID), &batch)
}

func (r *importBatchRepository) MarkBatchRunning(batchID uuid.UUID) error {
	now := time.Now()
	return r.db.Model(&models.ImportBatch{}).Where("id = ?", batchID).Updates(map[string]interface{}{
		"status":     models.RunningImportBatch,
		"started_at": &now,
	}).Error
}

func (r *importBatchRepository) MarkBatchFailed(batchID uuid.UUID, reason string) error {
	now := time.Now()
	return r.db.Model(&models.ImportBatch{}).Where("id = ?", batchID).Updates(map[string]interface{}{
		"status":         models.FailedImportBatch,
		"failure_reason": reason,
		"completed_at":   &now,
	}).Error
}

// CompleteBatch persists the batch counters so the report can be served after
// the redis cache entry expires.
func (r *importBatchRepository) CompleteBatch(batchID uuid.UUID, report *services.ImportReport, errorReportPath string) error {
	now := time.Now()
	return r.db.Model(&models.ImportBatch{}).Where("id = ?", batchID).Updates(map[string]interface{}{
		"status":                  models.CompletedImportBatch,
		"total_rows":              report.TotalRows,
		"valid_rows":              report.ValidRows,
		"invalid_rows":            report.InvalidRows,
		"vendors_created":         report.Counts.VendorsCreated,
		"vendors_updated":         report.Counts.VendorsUpdated,
		"code_entries_added":      report.Counts.CodeEntriesAdded,
		"company_details_created": report.Counts.CompanyDetailsCreated,
		"company_links_added":     report.Counts.CompanyLinksAdded,
		"payment_details_created": report.Counts.PaymentDetailsCreated,
		"payment_details_updated": report.Counts.PaymentDetailsUpdated,
		"mapped_headers":          report.Mapping.Mapped,
		"unmapped_headers":        report.Mapping.Unmapped,
		"header_coverage":         report.Mapping.Coverage,
		"error_report_path":       errorReportPath,
		"completed_at":            &now,
	}).Error
}

// SaveRowLogs stores every row outcome, raw cells included, so rejected rows
// can be exported back to the operator later.
func (r *importBatchRepository) SaveRowLogs(batchID uuid.UUID, rows []services.RowResult) error {
	if len(rows) == 0 {
		return nil
	}

	logs := make([]models.ImportRowLog, 0, len(rows))
	for _, row := range rows {
		logs = append(logs, models.ImportRowLog{
			ID:         uuid.New(),
			BatchID:    batchID,
			RowIndex:   row.Index,
			Outcome:    models.ImportRowOutcome(row.State),
			VendorName: row.VendorName,
			Errors:     toJSON(row.Errors),
			Warnings:   toJSON(row.Warnings),
			RawRow:     toJSON(row.Raw),
		})
	}
	return r.db.CreateInBatches(logs, 200).Error
}

func (r *importBatchRepository) GetRowLogs(batchID uuid.UUID) ([]models.ImportRowLog, error) {
	var logs []models.ImportRowLog
	err := r.db.Where("batch_id = ?", batchID).Order("row_index ASC").Find(&logs).Error
	return logs, err
}

func (r *importBatchRepository) GetRejectedRowLogs(batchID uuid.UUID) ([]models.ImportRowLog, error) {
	var logs []models.ImportRowLog
	err := r.db.
		Where("batch_id = ? AND outcome IN ?", batchID, []models.ImportRowOutcome{models.RejectedRowOutcome, models.FailedRowOutcome}).
		Order("row_index ASC").
		Find(&logs).Error
	return logs, err
}

// GetFilteredBatches retrieves import batches with filtering and pagination.
func (r *importBatchRepository) GetFilteredBatches(pageSize int, offset int, filters map[string]string) ([]models.ImportBatch, int64, error) {
	var batches []models.ImportBatch
	var total int64

	db := r.db.Model(&models.ImportBatch{})

	for key, value := range filters {
		switch key {
		case "status":
			db = db.Where("status = ?", value)
		case "created_by":
			db = db.Where("created_by ILIKE ?", "%"+value+"%")
		case "start_date":
			db = db.Where("Date(created_at) >= ?", value)
		case "end_date":
			db = db.Where("Date(created_at) <= ?", value)
		}
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := db.Limit(pageSize).Offset(offset).Order("created_at DESC").Find(&batches).Error; err != nil {
		return nil, 0, err
	}

	return batches, total, nil
}

func toJSON(v interface{}) datatypes.JSON {
	b, err := json.Marshal(v)
	if err != nil {
		return datatypes.JSON([]byte("null"))
	}
	return datatypes.JSON(b)
}
