package repositories

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	bleveindex "vendor-import-backend/bleve/services"
	"vendor-import-backend/config"
	"vendor-import-backend/db/models"
)

func init() {
	config.Logger = zap.NewNop()
}

func newTestBleveRepository(t *testing.T) *BleveRepository {
	t.Helper()
	indexer := bleveindex.NewIndexingService(zap.NewNop(), t.TempDir())
	repo, _ := NewBleveRepository(indexer)
	return repo
}

func indexedVendor(name, email string) models.Vendor {
	vendor := models.Vendor{
		ID:         uuid.New(),
		VendorName: name,
		Status:     models.ActiveVendor,
		AddedVia:   models.BulkImportAddedVia,
	}
	if email != "" {
		vendor.OfficeEmailPrimary = &email
	}
	return vendor
}

func TestIndexExistingVendorsSearchable(t *testing.T) {
	repo := newTestBleveRepository(t)

	vendors := []models.Vendor{
		indexedVendor("Acme Traders", "info@acme.test"),
		indexedVendor("Beta Metals", ""),
	}
	require.NoError(t, repo.IndexExistingVendors(vendors))

	result, err := repo.SearchVendors("", "", "")
	require.NoError(t, err)
	assert.Equal(t, uint64(2), result.Total)

	result, err = repo.SearchVendors("acme", "", "")
	require.NoError(t, err)
	require.NotZero(t, result.Total)
	assert.Equal(t, vendors[0].ID.String(), result.Hits[0].ID)
}

func TestSearchVendorsStatusFilter(t *testing.T) {
	repo := newTestBleveRepository(t)

	active := indexedVendor("Acme Traders", "")
	inactive := indexedVendor("Beta Metals", "")
	inactive.Status = models.InactiveVendor
	require.NoError(t, repo.IndexExistingVendors([]models.Vendor{active, inactive}))

	result, err := repo.SearchVendors("", "INACTIVE", "")
	require.NoError(t, err)
	require.Equal(t, uint64(1), result.Total)
	assert.Equal(t, inactive.ID.String(), result.Hits[0].ID)
}
