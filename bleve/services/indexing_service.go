package services

import (
	"fmt"
	"os"
	"strings"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/search/query"
	"go.uber.org/zap"
)

type IndexingServiceInterface interface {
	IndexDocument(indexName, id string, document interface{}) error
	DeleteDocument(indexName, id string) error
	SearchIndex(indexName string, q query.Query, size int) (*bleve.SearchResult, error)
	GetDocument(indexName, id string) (interface{}, error)
	DeleteIndex(indexName string) error
}

// IndexingService manages one bleve index per entity type under basePath,
// opening lazily and creating on first use.
type IndexingService struct {
	indexes  map[string]bleve.Index
	logger   *zap.Logger
	basePath string
}

func NewIndexingService(logger *zap.Logger, basePath string) *IndexingService {
	return &IndexingService{
		indexes:  make(map[string]bleve.Index),
		logger:   logger,
		basePath: basePath,
	}
}

func (s *IndexingService) getOrCreateIndex(indexName string) (bleve.Index, error) {
	if idx, ok := s.indexes[indexName]; ok {
		return idx, nil
	}

	fullPath := fmt.Sprintf("%s/%s.bleve", s.basePath, indexName)
	mapping := bleve.NewIndexMapping()

	idx, err := bleve.Open(fullPath)
	if err != nil {
		idx, err = bleve.New(fullPath, mapping)
		if err != nil {
			return nil, fmt.Errorf("failed to create index %s: %w", fullPath, err)
		}
	}

	s.indexes[indexName] = idx
	return idx, nil
}

func (s *IndexingService) IndexDocument(indexName, id string, document interface{}) error {
	idx, err := s.getOrCreateIndex(indexName)
	if err != nil {
		return err
	}
	if err := idx.Index(id, document); err != nil {
		s.logger.Error("failed to index document",
			zap.String("index", indexName),
			zap.String("id", id),
			zap.Error(err))
		return err
	}
	return nil
}

func (s *IndexingService) DeleteDocument(indexName, id string) error {
	idx, err := s.getOrCreateIndex(indexName)
	if err != nil {
		return err
	}
	return idx.Delete(id)
}

// SearchIndex performs a search and requests stored fields so hits can be
// rendered without a database round trip.
func (s *IndexingService) SearchIndex(indexName string, q query.Query, size int) (*bleve.SearchResult, error) {
	idx, err := s.getOrCreateIndex(indexName)
	if err != nil {
		return nil, err
	}

	req := bleve.NewSearchRequestOptions(q, size, 0, false)
	req.Fields = []string{"*"}
	return idx.Search(req)
}

func (s *IndexingService) GetDocument(indexName, id string) (interface{}, error) {
	idx, err := s.getOrCreateIndex(indexName)
	if err != nil {
		return nil, err
	}

	doc := bleve.NewDocIDQuery([]string{id})
	req := bleve.NewSearchRequestOptions(doc, 1, 0, false)
	req.Fields = []string{"*"}

	result, err := idx.Search(req)
	if err != nil {
		return nil, err
	}
	if result.Total == 0 {
		return nil, fmt.Errorf("document %s not found in index %s", id, indexName)
	}
	return result.Hits[0].Fields, nil
}

func (s *IndexingService) DeleteIndex(indexName string) error {
	if idx, ok := s.indexes[indexName]; ok {
		if err := idx.Close(); err != nil {
			return err
		}
		delete(s.indexes, indexName)
	}

	fullPath := fmt.Sprintf("%s/%s.bleve", s.basePath, indexName)
	if !strings.HasPrefix(fullPath, s.basePath) {
		return fmt.Errorf("refusing to delete index outside base path: %s", fullPath)
	}
	return os.RemoveAll(fullPath)
}
