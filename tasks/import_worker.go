package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	bleveRepositories "vendor-import-backend/bleve/repositories"
	"vendor-import-backend/utils"
	"vendor-import-backend/vendors/repositories"
	"vendor-import-backend/vendors/services"
)

// ImportTaskHandler processes queued vendor import batches. One batch is one
// unit of work: the whole file runs row by row on the worker and pollers read
// progress from the cached report, never from a half-done batch.
type ImportTaskHandler struct {
	vendorRepo  repositories.VendorRepository
	batchRepo   repositories.ImportBatchRepository
	bleveRepo   bleveRepositories.BleveRepositoryInterface
	reportCache *ReportCache
	logger      *zap.Logger
}

func NewImportTaskHandler(
	vendorRepo repositories.VendorRepository,
	batchRepo repositories.ImportBatchRepository,
	bleveRepo bleveRepositories.BleveRepositoryInterface,
	reportCache *ReportCache,
	logger *zap.Logger,
) *ImportTaskHandler {
	return &ImportTaskHandler{
		vendorRepo:  vendorRepo,
		batchRepo:   batchRepo,
		bleveRepo:   bleveRepo,
		reportCache: reportCache,
		logger:      logger,
	}
}

func (h *ImportTaskHandler) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var payload VendorImportPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal import payload: %v: %w", err, asynq.SkipRetry)
	}

	h.logger.Info("starting queued vendor import",
		zap.String("batch_id", payload.BatchID.String()),
		zap.String("file", payload.FilePath))

	if err := h.batchRepo.MarkBatchRunning(payload.BatchID); err != nil {
		return fmt.Errorf("failed to mark batch running: %w", err)
	}

	sheet, err := services.ReadSpreadsheet(payload.FilePath)
	if err != nil {
		// A file that cannot be parsed will not parse on retry either.
		h.failBatch(payload.BatchID, err)
		return fmt.Errorf("failed to read spreadsheet: %v: %w", err, asynq.SkipRetry)
	}

	report, err := RunImportBatch(ctx, h.vendorRepo, h.batchRepo, h.bleveRepo, h.logger, payload.BatchID, services.BatchInput{
		Sheet:     sheet,
		Overrides: payload.Overrides,
		CreatedBy: payload.CreatedBy,
	})
	if err != nil {
		h.failBatch(payload.BatchID, err)
		return err
	}

	if err := h.reportCache.SaveReport(ctx, payload.BatchID, report); err != nil {
		h.logger.Warn("failed to cache import report", zap.Error(err))
	}

	os.Remove(payload.FilePath)
	return nil
}

func (h *ImportTaskHandler) failBatch(batchID uuid.UUID, cause error) {
	if err := h.batchRepo.MarkBatchFailed(batchID, cause.Error()); err != nil {
		h.logger.Error("failed to mark batch failed", zap.String("batch_id", batchID.String()), zap.Error(err))
	}
}

// RunImportBatch runs the engine over one sheet and persists the outcome:
// row logs, batch counters, the rejected-row report file and the search
// index. Shared by the worker and the synchronous upload path.
func RunImportBatch(
	ctx context.Context,
	vendorRepo repositories.VendorRepository,
	batchRepo repositories.ImportBatchRepository,
	bleveRepo bleveRepositories.BleveRepositoryInterface,
	logger *zap.Logger,
	batchID uuid.UUID,
	input services.BatchInput,
) (*services.ImportReport, error) {
	engine := services.NewImportEngine(vendorRepo, logger)
	report := engine.RunBatch(input)

	if err := batchRepo.SaveRowLogs(batchID, report.Rows); err != nil {
		logger.Error("failed to save row logs", zap.String("batch_id", batchID.String()), zap.Error(err))
	}

	var errorReportPath string
	if report.InvalidRows > 0 {
		rejected, err := batchRepo.GetRejectedRowLogs(batchID)
		if err != nil {
			logger.Warn("failed to load rejected rows for report", zap.Error(err))
		} else if len(rejected) > 0 {
			errorReportPath, err = utils.GenerateImportErrorReport(rejected, batchID.String())
			if err != nil {
				logger.Warn("failed to generate error report", zap.Error(err))
			}
		}
	}

	if err := batchRepo.CompleteBatch(batchID, report, errorReportPath); err != nil {
		return report, fmt.Errorf("failed to complete batch: %w", err)
	}

	// Index committed vendors after the batch has been persisted. Indexing
	// failures are eventually consistent, never fatal.
	for _, row := range report.Rows {
		if row.State != services.RowCommitted || row.VendorID == "" {
			continue
		}
		vendorID, err := uuid.Parse(row.VendorID)
		if err != nil {
			continue
		}
		vendor, err := vendorRepo.GetVendorByID(vendorID)
		if err != nil || vendor == nil {
			continue
		}
		if err := bleveRepo.IndexSingleVendor(*vendor); err != nil {
			logger.Warn("failed to index vendor",
				zap.String("vendor_id", row.VendorID),
				zap.Error(err))
		}
	}

	return report, nil
}
