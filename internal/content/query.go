package content

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/receptbanken/receptbanken/internal/taxonomy"
	"github.com/receptbanken/receptbanken/models"
)

// AnyValue is the sentinel a criteria field carries when the user picked
// "show everything"; such fields are no-ops when filtering.
const AnyValue = "alla"

// Search keeps the items where q appears, case-insensitively, as a literal
// contiguous substring of the title, excerpt, any tag or the category. An
// empty or whitespace-only query returns the input unchanged.
func Search(items []models.ContentItem, q string) []models.ContentItem {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return items
	}
	var out []models.ContentItem
	for _, item := range items {
		if matchesQuery(item, q) {
			out = append(out, item)
		}
	}
	return out
}

func matchesQuery(item models.ContentItem, q string) bool {
	if strings.Contains(strings.ToLower(item.Title), q) ||
		strings.Contains(strings.ToLower(item.Excerpt), q) ||
		strings.Contains(strings.ToLower(item.Category), q) {
		return true
	}
	for _, tag := range item.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

// Filter applies the set criteria as AND-composed predicates. Unset and
// "alla"-valued fields match everything. The registry supplies the time
// bucket bounds; a nil registry disables only the TimeCategory predicate.
func Filter(items []models.ContentItem, c models.FilterCriteria, reg *taxonomy.Registry) []models.ContentItem {
	var out []models.ContentItem
	for _, item := range items {
		if matchesCriteria(item, c, reg) {
			out = append(out, item)
		}
	}
	return out
}

func matchesCriteria(item models.ContentItem, c models.FilterCriteria, reg *taxonomy.Registry) bool {
	if set(c.Category) && !matchesCategory(item, c.Category) {
		return false
	}
	if set(c.Subcategory) && !strings.EqualFold(item.Subcategory, c.Subcategory) && !hasTagFold(item.Tags, c.Subcategory) {
		return false
	}
	if set(c.MealType) && !strings.EqualFold(item.MealType, c.MealType) {
		return false
	}
	if set(c.CookingMethod) && !strings.EqualFold(item.CookingMethod, c.CookingMethod) {
		return false
	}
	if set(c.Difficulty) && !strings.EqualFold(item.Difficulty, c.Difficulty) {
		return false
	}
	if len(c.DietaryTags) > 0 && !intersectsFold(item.Tags, c.DietaryTags) {
		return false
	}
	if len(c.LifestyleTags) > 0 && !intersectsFold(item.Tags, c.LifestyleTags) {
		return false
	}
	if len(c.Tags) > 0 && !intersectsFold(item.Tags, c.Tags) {
		return false
	}
	if c.MaxTime != nil && !withinTime(item, *c.MaxTime) {
		return false
	}
	if set(c.TimeCategory) && reg != nil {
		bound, ok := reg.TimeBound(c.TimeCategory)
		if ok && !withinTime(item, bound) {
			return false
		}
	}
	if len(c.ExcludeAllergens) > 0 && containsAnyFold(item.Allergens, c.ExcludeAllergens) {
		return false
	}
	if len(c.IncludeIngredients) > 0 && !ingredientsContainAny(item.Ingredients, c.IncludeIngredients) {
		return false
	}
	if len(c.ExcludeIngredients) > 0 && ingredientsContainAny(item.Ingredients, c.ExcludeIngredients) {
		return false
	}
	return true
}

// matchesCategory accepts an exact category match, or falls back to a
// bidirectional substring comparison between the wanted category and each
// tag. The fallback keeps loosely tagged items reachable from category pages
// and can over-match on short category names; parity with the original site
// behaviour.
func matchesCategory(item models.ContentItem, want string) bool {
	if strings.EqualFold(item.Category, want) {
		return true
	}
	w := strings.ToLower(want)
	for _, tag := range item.Tags {
		t := strings.ToLower(tag)
		if strings.Contains(t, w) || strings.Contains(w, t) {
			return true
		}
	}
	return false
}

// withinTime reports whether the item has a stated total time within bound.
// Items without a total time never satisfy a time bound.
func withinTime(item models.ContentItem, bound int) bool {
	return item.TotalTimeMinutes != nil && *item.TotalTimeMinutes <= bound
}

func set(v string) bool {
	v = strings.TrimSpace(v)
	return v != "" && !strings.EqualFold(v, AnyValue)
}

func hasTagFold(tags []string, want string) bool {
	for _, t := range tags {
		if strings.EqualFold(t, want) {
			return true
		}
	}
	return false
}

func intersectsFold(have, want []string) bool {
	for _, w := range want {
		if hasTagFold(have, w) {
			return true
		}
	}
	return false
}

func containsAnyFold(have, want []string) bool {
	for _, h := range have {
		hl := strings.ToLower(h)
		for _, w := range want {
			wl := strings.ToLower(w)
			if strings.Contains(hl, wl) || strings.Contains(wl, hl) {
				return true
			}
		}
	}
	return false
}

func ingredientsContainAny(sections []models.IngredientSection, want []string) bool {
	for _, sec := range sections {
		for _, line := range sec.Items {
			ll := strings.ToLower(line)
			for _, w := range want {
				if strings.Contains(ll, strings.ToLower(w)) {
					return true
				}
			}
		}
	}
	return false
}

// Sort keys accepted by Sort.
const (
	SortNewest   = "newest"
	SortOldest   = "oldest"
	SortRating   = "rating"
	SortQuickest = "quickest"
	SortTitle    = "title"
)

var titleCollator = collate.New(language.Swedish, collate.IgnoreCase)

// Sort returns a new slice ordered by the given key. The sort is stable and
// the input is left untouched. An unknown key returns the input order.
func Sort(items []models.ContentItem, key string) []models.ContentItem {
	out := make([]models.ContentItem, len(items))
	copy(out, items)
	switch key {
	case SortNewest:
		sort.SliceStable(out, func(i, j int) bool { return out[i].PublishedAt.After(out[j].PublishedAt) })
	case SortOldest:
		sort.SliceStable(out, func(i, j int) bool { return out[i].PublishedAt.Before(out[j].PublishedAt) })
	case SortRating:
		sort.SliceStable(out, func(i, j int) bool { return out[i].RatingAverage > out[j].RatingAverage })
	case SortQuickest:
		sort.SliceStable(out, func(i, j int) bool {
			// Untimed recipes sort last.
			ti, tj := out[i].TotalTimeMinutes, out[j].TotalTimeMinutes
			switch {
			case ti == nil:
				return false
			case tj == nil:
				return true
			default:
				return *ti < *tj
			}
		})
	case SortTitle:
		sort.SliceStable(out, func(i, j int) bool {
			return titleCollator.CompareString(out[i].Title, out[j].Title) < 0
		})
	}
	return out
}
