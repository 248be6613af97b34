package repositories

import (
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"vendor-import-backend/db/models"
)

func newMockBatchRepository(t *testing.T) (ImportBatchRepository, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return NewImportBatchRepository(gormDB), mock
}

func TestGetBatchByID(t *testing.T) {
	repo, mock := newMockBatchRepository(t)

	batchID := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "import_batches" WHERE id = $1`)).
		WithArgs(batchID, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "file_name", "status", "total_rows"}).
			AddRow(batchID.String(), "vendors.xlsx", "COMPLETED", 42))

	batch, err := repo.GetBatchByID(batchID)

	require.NoError(t, err)
	require.NotNil(t, batch)
	assert.Equal(t, models.CompletedImportBatch, batch.Status)
	assert.Equal(t, 42, batch.TotalRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetBatchByIDMissReturnsNilNil(t *testing.T) {
	repo, mock := newMockBatchRepository(t)

	batchID := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "import_batches" WHERE id = $1`)).
		WithArgs(batchID, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	batch, err := repo.GetBatchByID(batchID)

	require.NoError(t, err)
	assert.Nil(t, batch)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkBatchFailed(t *testing.T) {
	repo, mock := newMockBatchRepository(t)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "import_batches" SET`)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.MarkBatchFailed(uuid.New(), "failed to read spreadsheet")

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetRejectedRowLogsFiltersOutcomes(t *testing.T) {
	repo, mock := newMockBatchRepository(t)

	batchID := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "import_row_logs" WHERE batch_id = $1 AND outcome IN ($2,$3)`)).
		WithArgs(batchID, models.RejectedRowOutcome, models.FailedRowOutcome).
		WillReturnRows(sqlmock.NewRows([]string{"id", "batch_id", "row_index", "outcome", "vendor_name"}).
			AddRow(uuid.New().String(), batchID.String(), 3, "REJECTED", "").
			AddRow(uuid.New().String(), batchID.String(), 7, "FAILED", "Broken Vendor"))

	logs, err := repo.GetRejectedRowLogs(batchID)

	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, models.RejectedRowOutcome, logs[0].Outcome)
	assert.Equal(t, 7, logs[1].RowIndex)
	assert.NoError(t, mock.ExpectationsWereMet())
}
