package repositories

import (
	"strings"

	"github.com/blevesearch/bleve/v2"
	"go.uber.org/zap"

	bleveindex "vendor-import-backend/bleve/services"
	"vendor-import-backend/config"
	"vendor-import-backend/db/models"
)

const vendorIndexName = "vendors"

type BleveRepository struct {
	indexer *bleveindex.IndexingService
}

type BleveRepositoryInterface interface {
	IndexSingleVendor(vendor models.Vendor) error
	IndexExistingVendors(vendors []models.Vendor) error
}

// Constructor returning both the struct and the interface
func NewBleveRepository(indexer *bleveindex.IndexingService) (*BleveRepository, BleveRepositoryInterface) {
	repo := &BleveRepository{indexer: indexer}
	return repo, repo
}

type bleveVendorDoc struct {
	ID         string `json:"id"`
	VendorName string `json:"vendor_name"`
	Email      string `json:"email,omitempty"`
	Mobile     string `json:"mobile,omitempty"`
	Country    string `json:"country,omitempty"`
	Status     string `json:"status"`
	AddedVia   string `json:"added_via"`
}

func vendorToDoc(vendor models.Vendor) bleveVendorDoc {
	doc := bleveVendorDoc{
		ID:         vendor.ID.String(),
		VendorName: vendor.VendorName,
		Status:     string(vendor.Status),
		AddedVia:   string(vendor.AddedVia),
	}
	if vendor.OfficeEmailPrimary != nil {
		doc.Email = *vendor.OfficeEmailPrimary
	}
	if vendor.MobileNumber != nil {
		doc.Mobile = *vendor.MobileNumber
	}
	if vendor.Country != nil {
		doc.Country = *vendor.Country
	}
	return doc
}

func (r *BleveRepository) IndexSingleVendor(vendor models.Vendor) error {
	err := r.indexer.IndexDocument(vendorIndexName, vendor.ID.String(), vendorToDoc(vendor))
	if err != nil {
		config.Logger.Error("Failed to index vendor into Bleve",
			zap.Error(err),
			zap.String("vendor_id", vendor.ID.String()))
		return err
	}
	return nil
}

func (r *BleveRepository) IndexExistingVendors(vendors []models.Vendor) error {
	for _, vendor := range vendors {
		if err := r.IndexSingleVendor(vendor); err != nil {
			return err
		}
	}
	return nil
}

// SearchVendors combines exact, prefix and fuzzy strategies over the vendor
// name and email fields, with optional status/country term filters.
func (r *BleveRepository) SearchVendors(queryString, status, country string) (*bleve.SearchResult, error) {
	booleanQuery := bleve.NewBooleanQuery()
	queryString = strings.TrimSpace(queryString)
	queryStringLower := strings.ToLower(queryString)

	if queryString != "" {
		should := bleve.NewBooleanQuery()

		nameExact := bleve.NewTermQuery(queryStringLower)
		nameExact.SetField("vendor_name")
		nameExact.SetBoost(10.0)
		should.AddShould(nameExact)

		nameMatch := bleve.NewMatchQuery(queryString)
		nameMatch.SetField("vendor_name")
		nameMatch.SetBoost(8.0)
		should.AddShould(nameMatch)

		emailExact := bleve.NewTermQuery(queryStringLower)
		emailExact.SetField("email")
		emailExact.SetBoost(9.0)
		should.AddShould(emailExact)

		namePrefix := bleve.NewPrefixQuery(queryStringLower)
		namePrefix.SetField("vendor_name")
		namePrefix.SetBoost(6.0)
		should.AddShould(namePrefix)

		fuzzy := bleve.NewFuzzyQuery(queryStringLower)
		fuzzy.SetField("vendor_name")
		fuzzy.SetBoost(4.0)
		fuzzy.SetFuzziness(1)
		should.AddShould(fuzzy)

		booleanQuery.AddMust(should)
	} else {
		booleanQuery.AddMust(bleve.NewMatchAllQuery())
	}

	if status != "" {
		statusQuery := bleve.NewTermQuery(strings.ToLower(status))
		statusQuery.SetField("status")
		booleanQuery.AddMust(statusQuery)
	}

	if country != "" {
		countryQuery := bleve.NewTermQuery(strings.ToLower(country))
		countryQuery.SetField("country")
		booleanQuery.AddMust(countryQuery)
	}

	return r.indexer.SearchIndex(vendorIndexName, booleanQuery, 50)
}

// GetVendorDocument fetches the stored fields of one indexed vendor.
func (r *BleveRepository) GetVendorDocument(id string) (interface{}, error) {
	return r.indexer.GetDocument(vendorIndexName, id)
}
