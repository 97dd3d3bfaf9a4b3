package server

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/receptbanken/receptbanken/internal/content"
	"github.com/receptbanken/receptbanken/internal/search"
	"github.com/receptbanken/receptbanken/models"
)

// Library holds the serving snapshot of the catalog. The content store
// itself re-reads on every call; the library is the server-side cache that
// keeps list pages from re-parsing the whole tree per request. Reload swaps
// the snapshot atomically, so readers always see a complete catalog.
type Library struct {
	store       *content.Store
	types       []string
	defaultType string
	index       *search.Index
	logger      *log.Logger

	mu       sync.RWMutex
	byType   map[string][]models.ContentItem
	loadedAt time.Time
}

// NewLibrary creates an empty library; call Reload before serving.
func NewLibrary(store *content.Store, types []string, defaultType string, index *search.Index, logger *log.Logger) *Library {
	if logger == nil {
		logger = log.New(log.Writer(), "[LIBRARY] ", log.LstdFlags)
	}
	return &Library{
		store:       store,
		types:       types,
		defaultType: defaultType,
		index:       index,
		logger:      logger,
		byType:      make(map[string][]models.ContentItem),
	}
}

// Reload re-reads every content type from disk and rebuilds the search
// index over the default type.
func (l *Library) Reload() error {
	byType := make(map[string][]models.ContentItem, len(l.types))
	for _, t := range l.types {
		items, err := l.store.GetAll(t)
		if err != nil {
			return fmt.Errorf("loading %s: %w", t, err)
		}
		byType[t] = items
	}
	if l.index != nil {
		if err := l.index.Build(byType[l.defaultType]); err != nil {
			return fmt.Errorf("building search index: %w", err)
		}
	}

	l.mu.Lock()
	l.byType = byType
	l.loadedAt = time.Now()
	l.mu.Unlock()

	contentReloads.Inc()
	for t, items := range byType {
		contentItems.WithLabelValues(t).Set(float64(len(items)))
		l.logger.Printf("loaded %d %s", len(items), t)
	}
	return nil
}

// Items returns the current snapshot of a content type, newest first.
func (l *Library) Items(contentType string) []models.ContentItem {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.byType[contentType]
}

// Find looks a slug up in the snapshot. Returns nil when absent.
func (l *Library) Find(contentType, slug string) *models.ContentItem {
	l.mu.RLock()
	defer l.mu.RUnlock()
	for i := range l.byType[contentType] {
		if l.byType[contentType][i].Slug == slug {
			item := l.byType[contentType][i]
			return &item
		}
	}
	return nil
}

// LoadedAt reports when the snapshot was last rebuilt.
func (l *Library) LoadedAt() time.Time {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.loadedAt
}
