package content

import (
	"testing"

	"github.com/receptbanken/receptbanken/models"
)

func TestRelatedScoresTagOverlapAboveRecency(t *testing.T) {
	t.Parallel()
	items := []models.ContentItem{
		{Slug: "pasta-1", Category: "Pasta", Tags: []string{"Pasta", "Snabbt"}, PublishedAt: day("2024-03-01")},
		{Slug: "tva-taggar", Category: "Pasta", Tags: []string{"Pasta", "Snabbt"}, PublishedAt: day("2023-01-01")},
		{Slug: "en-tagg-ny", Category: "Pasta", Tags: []string{"Pasta"}, PublishedAt: day("2024-02-01")},
		{Slug: "fel-kategori", Category: "Fisk", Tags: []string{"Pasta", "Snabbt"}, PublishedAt: day("2024-02-15")},
	}

	got := Related(items, "pasta-1", []string{"Pasta", "Snabbt"}, "Pasta", 3, TagOverlap{})
	// Two shared tags outrank one shared tag regardless of recency, and the
	// other-category item never appears.
	equalSlugs(t, got, "tva-taggar", "en-tagg-ny")
}

func TestRelatedNeverIncludesReferenceOrOtherCategories(t *testing.T) {
	t.Parallel()
	items := []models.ContentItem{
		{Slug: "ref", Category: "Pasta", Tags: []string{"Pasta"}},
		{Slug: "annan-kategori", Category: "Soppor", Tags: []string{"Pasta", "Snabbt", "Vardagsmat"}},
	}
	got := Related(items, "ref", []string{"Pasta"}, "Pasta", 5, nil)
	if len(got) != 0 {
		t.Fatalf("Related() = %v, want empty: no backfill from other categories", slugs(got))
	}
}

func TestRelatedLimitAndTies(t *testing.T) {
	t.Parallel()
	items := []models.ContentItem{
		{Slug: "a", Category: "Fisk", Tags: []string{"Lax"}, PublishedAt: day("2024-01-01")},
		{Slug: "b", Category: "Fisk", Tags: []string{"Lax"}, PublishedAt: day("2024-02-01")},
		{Slug: "c", Category: "Fisk", Tags: []string{"Lax"}, PublishedAt: day("2024-03-01")},
	}

	got := Related(items, "ingen", []string{"Lax"}, "Fisk", 2, TagOverlap{})
	if len(got) > 2 {
		t.Fatalf("Related() length %d exceeds limit 2", len(got))
	}
	// Equal scores fall back to publish date descending.
	equalSlugs(t, got, "c", "b")
}

func TestTagOverlapIsCaseSensitiveExactMatch(t *testing.T) {
	t.Parallel()
	candidate := models.ContentItem{Tags: []string{"pasta", "Snabbt", "Snabbt"}}
	if got := (TagOverlap{}).Score([]string{"Pasta", "Snabbt"}, candidate); got != 2 {
		t.Fatalf("Score() = %d, want 2: exact matches only, duplicates in the candidate count", got)
	}
}
