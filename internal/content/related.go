package content

import (
	"sort"

	"github.com/receptbanken/receptbanken/models"
)

// Scorer ranks a candidate against the tags of a reference item. Higher is
// more related.
type Scorer interface {
	Score(referenceTags []string, candidate models.ContentItem) int
}

// TagOverlap scores a candidate by the number of its tags that also appear
// in the reference tag set. Matching is exact and case-sensitive.
type TagOverlap struct{}

// Score implements Scorer.
func (TagOverlap) Score(referenceTags []string, candidate models.ContentItem) int {
	ref := make(map[string]struct{}, len(referenceTags))
	for _, t := range referenceTags {
		ref[t] = struct{}{}
	}
	n := 0
	for _, t := range candidate.Tags {
		if _, ok := ref[t]; ok {
			n++
		}
	}
	return n
}

// Related returns up to limit items of the same category as the reference,
// excluding the reference itself, ranked by scorer then by publish date
// descending. Items outside the reference category never appear, even with
// many shared tags; when fewer candidates exist the result is short rather
// than backfilled.
func Related(items []models.ContentItem, excludeSlug string, referenceTags []string, referenceCategory string, limit int, scorer Scorer) []models.ContentItem {
	if scorer == nil {
		scorer = TagOverlap{}
	}
	type scored struct {
		item  models.ContentItem
		score int
	}
	var candidates []scored
	for _, item := range items {
		if item.Slug == excludeSlug || item.Category != referenceCategory {
			continue
		}
		candidates = append(candidates, scored{item: item, score: scorer.Score(referenceTags, item)})
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].score != candidates[j].score {
			return candidates[i].score > candidates[j].score
		}
		return candidates[i].item.PublishedAt.After(candidates[j].item.PublishedAt)
	})
	if limit >= 0 && len(candidates) > limit {
		candidates = candidates[:limit]
	}
	out := make([]models.ContentItem, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, c.item)
	}
	return out
}

// RelatedTo loads the catalog of contentType and ranks it against item.
func (s *Store) RelatedTo(contentType string, item models.ContentItem, limit int, scorer Scorer) ([]models.ContentItem, error) {
	all, err := s.GetAll(contentType)
	if err != nil {
		return nil, err
	}
	return Related(all, item.Slug, item.Tags, item.Category, limit, scorer), nil
}
