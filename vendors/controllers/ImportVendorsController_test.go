package controllers

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"vendor-import-backend/config"
	"vendor-import-backend/db/models"
	"vendor-import-backend/vendors/repositories"
	"vendor-import-backend/vendors/services"
)

func init() {
	config.Logger = zap.NewNop()
}

// stubVendorRepo embeds the interface so only the methods a test actually
// reaches need implementations.
type stubVendorRepo struct {
	repositories.VendorRepository
}

func (s *stubVendorRepo) GetCompanyByCode(code string) (*models.Company, error) {
	return nil, nil
}

type stubBleveRepo struct{}

func (s *stubBleveRepo) IndexSingleVendor(vendor models.Vendor) error       { return nil }
func (s *stubBleveRepo) IndexExistingVendors(vendors []models.Vendor) error { return nil }

type fakeBatchRepo struct {
	created       *models.ImportBatch
	markedRunning bool
	failedReason  string
	completeErr   error
	rowLogs       []services.RowResult
}

func (f *fakeBatchRepo) CreateBatch(batch *models.ImportBatch) error {
	f.created = batch
	return nil
}

func (f *fakeBatchRepo) GetBatchByID(batchID uuid.UUID) (*models.ImportBatch, error) {
	return f.created, nil
}

func (f *fakeBatchRepo) MarkBatchRunning(batchID uuid.UUID) error {
	f.markedRunning = true
	return nil
}

func (f *fakeBatchRepo) MarkBatchFailed(batchID uuid.UUID, reason string) error {
	f.failedReason = reason
	return nil
}

func (f *fakeBatchRepo) CompleteBatch(batchID uuid.UUID, report *services.ImportReport, errorReportPath string) error {
	return f.completeErr
}

func (f *fakeBatchRepo) SaveRowLogs(batchID uuid.UUID, rows []services.RowResult) error {
	f.rowLogs = rows
	return nil
}

func (f *fakeBatchRepo) GetRowLogs(batchID uuid.UUID) ([]models.ImportRowLog, error) {
	return nil, nil
}

func (f *fakeBatchRepo) GetRejectedRowLogs(batchID uuid.UUID) ([]models.ImportRowLog, error) {
	return nil, nil
}

func (f *fakeBatchRepo) GetFilteredBatches(pageSize int, offset int, filters map[string]string) ([]models.ImportBatch, int64, error) {
	return nil, 0, nil
}

func newImportTestApp(t *testing.T, batchRepo *fakeBatchRepo) *fiber.App {
	t.Helper()
	t.Cleanup(func() { os.RemoveAll("./tmp") })

	vc := &VendorController{
		VendorRepo: &stubVendorRepo{},
		BatchRepo:  batchRepo,
		BleveRepo:  &stubBleveRepo{},
	}
	app := fiber.New()
	app.Post("/vendors/import", vc.ImportVendorsController)
	app.Post("/vendors/import/preview", vc.PreviewImportMappingController)
	return app
}

func uploadRequest(t *testing.T, url, fileName, fileBody string, fields map[string]string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	fw, err := w.CreateFormFile("file", fileName)
	require.NoError(t, err)
	_, err = fw.Write([]byte(fileBody))
	require.NoError(t, err)
	for key, value := range fields {
		require.NoError(t, w.WriteField(key, value))
	}
	require.NoError(t, w.Close())

	req, err := http.NewRequest(http.MethodPost, url, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func TestPreviewImportMappingReturnsMappingAndSamples(t *testing.T) {
	app := newImportTestApp(t, &fakeBatchRepo{})

	csv := "Vendor Name,Email,Mystery Column\nAcme Traders,info@acme.test,zz\n"
	req := uploadRequest(t, "/vendors/import/preview", "vendors.csv", csv, nil)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var body struct {
		FileName   string                 `json:"file_name"`
		TotalRows  int                    `json:"total_rows"`
		Mapping    services.HeaderMapping `json:"mapping"`
		SampleRows []map[string]string    `json:"sample_rows"`
	}
	require.NoError(t, json.Unmarshal(raw, &body))

	assert.Equal(t, "vendors.csv", body.FileName)
	assert.Equal(t, 1, body.TotalRows)
	assert.Equal(t, services.FieldVendorName, body.Mapping.FieldFor("Vendor Name"))
	assert.Equal(t, services.FieldOfficeEmailPrimary, body.Mapping.FieldFor("Email"))
	assert.Equal(t, 1, body.Mapping.Unmapped)

	require.Len(t, body.SampleRows, 1)
	assert.Equal(t, "Acme Traders", body.SampleRows[0][services.FieldVendorName])
	assert.Equal(t, "info@acme.test", body.SampleRows[0][services.FieldOfficeEmailPrimary])
	assert.NotContains(t, body.SampleRows[0], "Mystery Column")
}

func TestPreviewImportMappingRejectsUnsupportedExtension(t *testing.T) {
	app := newImportTestApp(t, &fakeBatchRepo{})

	req := uploadRequest(t, "/vendors/import/preview", "vendors.pdf", "not a spreadsheet", nil)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestImportVendorsSyncMarksBatchFailedOnPersistenceError(t *testing.T) {
	batchRepo := &fakeBatchRepo{completeErr: errors.New("connection reset")}
	app := newImportTestApp(t, batchRepo)

	csv := "Vendor Name,Email\n,not-an-email\n"
	req := uploadRequest(t, "/vendors/import", "vendors.csv", csv, map[string]string{
		"created_by": "ops@example.test",
	})

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	require.NotNil(t, batchRepo.created)
	assert.True(t, batchRepo.markedRunning)
	assert.Contains(t, batchRepo.failedReason, "connection reset")
}
