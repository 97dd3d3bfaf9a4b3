// Package search maintains the in-memory full-text index behind the
// autocomplete endpoint. It complements, not replaces, the literal substring
// search in internal/content: the substring search is the contract for list
// pages, the index serves ranked type-ahead hits.
package search

import (
	"sync"

	"github.com/blevesearch/bleve"

	"github.com/receptbanken/receptbanken/models"
)

// Index is a memory-only bleve index over the search-doc projection of the
// catalog. Safe for concurrent queries; Build swaps the whole index.
type Index struct {
	mu   sync.RWMutex
	idx  bleve.Index
	docs map[string]models.SearchDoc
}

// New returns an empty index.
func New() *Index {
	return &Index{docs: make(map[string]models.SearchDoc)}
}

// Build indexes the given items, replacing whatever was indexed before.
func (x *Index) Build(items []models.ContentItem) error {
	idx, err := bleve.NewMemOnly(bleve.NewIndexMapping())
	if err != nil {
		return err
	}
	docs := make(map[string]models.SearchDoc, len(items))
	batch := idx.NewBatch()
	for _, item := range items {
		doc := models.NewSearchDoc(item)
		docs[doc.Slug] = doc
		if err := batch.Index(doc.Slug, doc); err != nil {
			return err
		}
	}
	if err := idx.Batch(batch); err != nil {
		return err
	}

	x.mu.Lock()
	old := x.idx
	x.idx, x.docs = idx, docs
	x.mu.Unlock()
	if old != nil {
		_ = old.Close()
	}
	return nil
}

// Len reports the number of indexed documents.
func (x *Index) Len() int {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return len(x.docs)
}

// Query returns up to k ranked hits for q. k is clamped to [1,50] with a
// default of 10. An empty query or an unbuilt index yields no hits.
func (x *Index) Query(q string, k int) ([]models.SearchDoc, error) {
	if q == "" {
		return nil, nil
	}
	if k < 1 || k > 50 {
		k = 10
	}

	x.mu.RLock()
	defer x.mu.RUnlock()
	if x.idx == nil {
		return nil, nil
	}

	query := bleve.NewQueryStringQuery(q)
	req := bleve.NewSearchRequestOptions(query, k, 0, false)
	res, err := x.idx.Search(req)
	if err != nil {
		return nil, err
	}
	var out []models.SearchDoc
	for _, hit := range res.Hits {
		if doc, ok := x.docs[hit.ID]; ok {
			out = append(out, doc)
		}
		if len(out) >= k {
			break
		}
	}
	return out, nil
}
