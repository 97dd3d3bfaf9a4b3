package content

import (
	"testing"
	"time"

	"github.com/receptbanken/receptbanken/internal/taxonomy"
	"github.com/receptbanken/receptbanken/models"
)

func minutes(n int) *int { return &n }

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func slugs(items []models.ContentItem) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.Slug)
	}
	return out
}

func equalSlugs(t *testing.T, got []models.ContentItem, want ...string) {
	t.Helper()
	gs := slugs(got)
	if len(gs) != len(want) {
		t.Fatalf("got %v, want %v", gs, want)
	}
	for i := range want {
		if gs[i] != want[i] {
			t.Fatalf("got %v, want %v", gs, want)
		}
	}
}

func TestSearch(t *testing.T) {
	t.Parallel()
	items := []models.ContentItem{
		{Slug: "carbonara", Title: "Pasta Carbonara", Excerpt: "Krämig pasta med guanciale"},
		{Slug: "kladdkaka", Title: "Kladdkaka", Tags: []string{"Choklad", "Fika"}},
		{Slug: "lax", Title: "Lax i ugn", Category: "Fisk"},
		{Slug: "pannkakor", Title: "Amerikanska pannkakor"},
	}

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{name: "empty query is identity", query: "", want: []string{"carbonara", "kladdkaka", "lax", "pannkakor"}},
		{name: "whitespace query is identity", query: "   ", want: []string{"carbonara", "kladdkaka", "lax", "pannkakor"}},
		{name: "case-insensitive title substring", query: "PASTA", want: []string{"carbonara"}},
		{name: "substring matches inside words", query: "pann", want: []string{"pannkakor"}},
		{name: "excerpt substring", query: "guanciale", want: []string{"carbonara"}},
		{name: "tag substring", query: "chok", want: []string{"kladdkaka"}},
		{name: "category substring", query: "fisk", want: []string{"lax"}},
		{name: "multi-word query is one contiguous substring", query: "pasta guanciale", want: nil},
		{name: "no hits", query: "tacos", want: nil},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			equalSlugs(t, Search(items, tt.query), tt.want...)
		})
	}
}

func TestFilterTimeBounds(t *testing.T) {
	t.Parallel()
	reg := taxonomy.Default()
	items := []models.ContentItem{
		{Slug: "snabb", TotalTimeMinutes: minutes(20)},
		{Slug: "timme", TotalTimeMinutes: minutes(60)},
		{Slug: "utan-tid"},
	}

	got := Filter(items, models.FilterCriteria{MaxTime: minutes(30)}, reg)
	// An item without a stated total time never satisfies a time bound.
	equalSlugs(t, got, "snabb")

	got = Filter(items, models.FilterCriteria{TimeCategory: "medel"}, reg)
	equalSlugs(t, got, "snabb", "timme")

	got = Filter(items, models.FilterCriteria{TimeCategory: "mycket-lång"}, reg)
	equalSlugs(t, got, "snabb", "timme")
}

func TestFilterCategory(t *testing.T) {
	t.Parallel()
	reg := taxonomy.Default()
	items := []models.ContentItem{
		{Slug: "exakt", Category: "Pasta"},
		{Slug: "via-tagg", Category: "Middag", Tags: []string{"Pastarätter"}},
		{Slug: "annan", Category: "Fisk"},
	}

	// Exact category match, plus the substring fallback against tags.
	got := Filter(items, models.FilterCriteria{Category: "Pasta"}, reg)
	equalSlugs(t, got, "exakt", "via-tagg")

	// "alla" is a no-op sentinel.
	got = Filter(items, models.FilterCriteria{Category: "alla"}, reg)
	equalSlugs(t, got, "exakt", "via-tagg", "annan")
}

func TestFilterTagSetsAreOrSemantics(t *testing.T) {
	t.Parallel()
	reg := taxonomy.Default()
	items := []models.ContentItem{
		{Slug: "vegansk", Tags: []string{"Veganskt", "Budget"}},
		{Slug: "glutenfri", Tags: []string{"Glutenfritt"}},
		{Slug: "kott", Tags: []string{"Helgmat"}},
	}

	got := Filter(items, models.FilterCriteria{DietaryTags: []string{"Veganskt", "Glutenfritt"}}, reg)
	equalSlugs(t, got, "vegansk", "glutenfri")

	got = Filter(items, models.FilterCriteria{LifestyleTags: []string{"budget"}}, reg)
	equalSlugs(t, got, "vegansk")
}

func TestFilterIngredientsAndAllergens(t *testing.T) {
	t.Parallel()
	reg := taxonomy.Default()
	items := []models.ContentItem{
		{
			Slug:        "carbonara",
			Allergens:   []string{"gluten", "ägg"},
			Ingredients: []models.IngredientSection{{Items: []string{"400 g spaghetti", "2 ägg", "100 g guanciale"}}},
		},
		{
			Slug:        "kycklingsallad",
			Allergens:   []string{"senap"},
			Ingredients: []models.IngredientSection{{Items: []string{"2 kycklingfiléer", "1 romansallad"}}},
		},
	}

	got := Filter(items, models.FilterCriteria{IncludeIngredients: []string{"kyckling"}}, reg)
	equalSlugs(t, got, "kycklingsallad")

	got = Filter(items, models.FilterCriteria{ExcludeIngredients: []string{"Spaghetti"}}, reg)
	equalSlugs(t, got, "kycklingsallad")

	got = Filter(items, models.FilterCriteria{ExcludeAllergens: []string{"Ägg"}}, reg)
	equalSlugs(t, got, "kycklingsallad")

	got = Filter(items, models.FilterCriteria{IncludeIngredients: []string{"guanciale", "romansallad"}}, reg)
	equalSlugs(t, got, "carbonara", "kycklingsallad")
}

func TestFilterScalarPredicates(t *testing.T) {
	t.Parallel()
	reg := taxonomy.Default()
	items := []models.ContentItem{
		{Slug: "a", MealType: "middag", CookingMethod: "ugn", Difficulty: "latt"},
		{Slug: "b", MealType: "lunch", CookingMethod: "stekpanna", Difficulty: "medel"},
	}

	got := Filter(items, models.FilterCriteria{MealType: "Middag"}, reg)
	equalSlugs(t, got, "a")

	got = Filter(items, models.FilterCriteria{CookingMethod: "stekpanna", Difficulty: "medel"}, reg)
	equalSlugs(t, got, "b")

	got = Filter(items, models.FilterCriteria{MealType: "middag", Difficulty: "medel"}, reg)
	equalSlugs(t, got)
}

func TestSort(t *testing.T) {
	t.Parallel()
	items := []models.ContentItem{
		{Slug: "mellan", Title: "Citron", PublishedAt: day("2024-02-01"), RatingAverage: 4.8, TotalTimeMinutes: minutes(45)},
		{Slug: "ny", Title: "banan", PublishedAt: day("2024-03-01"), RatingAverage: 3.2, TotalTimeMinutes: minutes(20)},
		{Slug: "gammal", Title: "Äppelpaj", PublishedAt: day("2024-01-01"), RatingAverage: 4.1},
	}

	equalSlugs(t, Sort(items, SortNewest), "ny", "mellan", "gammal")
	equalSlugs(t, Sort(items, SortOldest), "gammal", "mellan", "ny")
	equalSlugs(t, Sort(items, SortRating), "mellan", "gammal", "ny")
	// Untimed items sort last under quickest.
	equalSlugs(t, Sort(items, SortQuickest), "ny", "mellan", "gammal")
	// Swedish collation, case-insensitive: banan < Citron < Äppelpaj.
	equalSlugs(t, Sort(items, SortTitle), "ny", "mellan", "gammal")
	// Unknown keys leave the order untouched.
	equalSlugs(t, Sort(items, "hemlig"), "mellan", "ny", "gammal")

	// Sort must not mutate its input.
	equalSlugs(t, items, "mellan", "ny", "gammal")
}

func TestSortNewestReversesOldest(t *testing.T) {
	t.Parallel()
	items := []models.ContentItem{
		{Slug: "a", PublishedAt: day("2024-01-01")},
		{Slug: "b", PublishedAt: day("2024-03-01")},
		{Slug: "c", PublishedAt: day("2024-02-01")},
	}
	newest := Sort(items, SortNewest)
	oldest := Sort(items, SortOldest)
	for i := range newest {
		if newest[i].Slug != oldest[len(oldest)-1-i].Slug {
			t.Fatalf("newest %v is not the reverse of oldest %v", slugs(newest), slugs(oldest))
		}
	}
}
