package search

import (
	"testing"

	"github.com/receptbanken/receptbanken/models"
)

func buildTestIndex(t *testing.T) *Index {
	t.Helper()
	idx := New()
	err := idx.Build([]models.ContentItem{
		{Slug: "kladdkaka", Title: "Klassisk kladdkaka", Excerpt: "Kladdig chokladkaka", Category: "Kladdkaka", Tags: []string{"Choklad", "Fika"}},
		{Slug: "carbonara", Title: "Pasta Carbonara", Excerpt: "Krämig pasta", Category: "Pasta"},
		{Slug: "lax", Title: "Lax i ugn", Category: "Fisk"},
	})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	return idx
}

func TestIndexQuery(t *testing.T) {
	t.Parallel()
	idx := buildTestIndex(t)
	if idx.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", idx.Len())
	}

	hits, err := idx.Query("carbonara", 10)
	if err != nil {
		t.Fatalf("Query() error = %v", err)
	}
	if len(hits) != 1 || hits[0].Slug != "carbonara" {
		t.Fatalf("Query(carbonara) = %+v", hits)
	}
}

func TestIndexQueryEmptyAndUnbuilt(t *testing.T) {
	t.Parallel()
	idx := buildTestIndex(t)
	if hits, err := idx.Query("", 10); err != nil || hits != nil {
		t.Fatalf("Query(empty) = %v, %v", hits, err)
	}

	empty := New()
	if hits, err := empty.Query("kladdkaka", 10); err != nil || hits != nil {
		t.Fatalf("Query on unbuilt index = %v, %v", hits, err)
	}
}

func TestIndexRebuildReplaces(t *testing.T) {
	t.Parallel()
	idx := buildTestIndex(t)
	if err := idx.Build([]models.ContentItem{{Slug: "soppa", Title: "Tomatsoppa"}}); err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if idx.Len() != 1 {
		t.Fatalf("Len() after rebuild = %d, want 1", idx.Len())
	}
	hits, err := idx.Query("carbonara", 10)
	if err != nil {
		t.Fatalf("Query() error = %v", err)
	}
	if len(hits) != 0 {
		t.Fatalf("old documents survived rebuild: %+v", hits)
	}
}
