package models

import (
	"errors"
	"time"
)

// ErrContentNotFound is returned by handlers when a slug resolves to no file.
var ErrContentNotFound = errors.New("content not found")

// HeroImage is the optional lead image of a content item.
type HeroImage struct {
	Src string `json:"src" yaml:"src"`
	Alt string `json:"alt,omitempty" yaml:"alt"`
}

// IngredientSection groups free-text ingredient lines under an optional
// heading ("Till såsen", "Garnering").
type IngredientSection struct {
	Title string   `json:"title,omitempty" yaml:"title"`
	Items []string `json:"items" yaml:"items"`
}

// RecipeStep is a single instruction in a recipe.
type RecipeStep struct {
	Order       int    `json:"order,omitempty" yaml:"order"`
	Title       string `json:"title,omitempty" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	TimeMinutes int    `json:"timeMinutes,omitempty" yaml:"timeMinutes"`
	Tip         string `json:"tip,omitempty" yaml:"tip"`
}

// ContentItem is one parsed content file: a recipe, article or author record.
// Slug is derived from the filename and unique within a content type. Body is
// the raw markdown below the frontmatter header; rendering it is the caller's
// concern.
type ContentItem struct {
	Slug          string `json:"slug"`
	Title         string `json:"title"`
	Excerpt       string `json:"excerpt,omitempty"`
	Category      string `json:"category,omitempty"`
	Subcategory   string `json:"subcategory,omitempty"`
	Difficulty    string `json:"difficulty,omitempty"`
	Cuisine       string `json:"cuisine,omitempty"`
	MealType      string `json:"mealType,omitempty"`
	CookingMethod string `json:"cookingMethod,omitempty"`

	Tags        []string            `json:"tags,omitempty"`
	Ingredients []IngredientSection `json:"ingredients,omitempty"`
	Steps       []RecipeStep        `json:"steps,omitempty"`
	Allergens   []string            `json:"allergens,omitempty"`

	Servings int `json:"servings,omitempty"`

	// TotalTimeMinutes is nil when the author did not state a total time.
	// Time-bounded filters must treat nil as "does not satisfy the bound".
	TotalTimeMinutes *int `json:"totalTimeMinutes,omitempty"`
	PrepTimeMinutes  int  `json:"prepTimeMinutes,omitempty"`
	CookTimeMinutes  int  `json:"cookTimeMinutes,omitempty"`

	RatingAverage float64 `json:"ratingAverage,omitempty"`
	RatingCount   int     `json:"ratingCount,omitempty"`

	PublishedAt time.Time `json:"publishedAt"`
	UpdatedAt   time.Time `json:"updatedAt,omitempty"`

	HeroImage *HeroImage `json:"heroImage,omitempty"`

	Body string `json:"-"`
}

// SearchDoc is the subset of ContentItem serialized into the client-side
// search index and returned by the autocomplete endpoint.
type SearchDoc struct {
	Slug             string     `json:"slug"`
	Title            string     `json:"title"`
	Excerpt          string     `json:"excerpt,omitempty"`
	Tags             []string   `json:"tags,omitempty"`
	Category         string     `json:"category,omitempty"`
	Difficulty       string     `json:"difficulty,omitempty"`
	TotalTimeMinutes *int       `json:"totalTimeMinutes,omitempty"`
	RatingAverage    float64    `json:"ratingAverage,omitempty"`
	RatingCount      int        `json:"ratingCount,omitempty"`
	HeroImage        *HeroImage `json:"heroImage,omitempty"`
}

// NewSearchDoc projects an item onto its search-index fields.
func NewSearchDoc(item ContentItem) SearchDoc {
	return SearchDoc{
		Slug:             item.Slug,
		Title:            item.Title,
		Excerpt:          item.Excerpt,
		Tags:             item.Tags,
		Category:         item.Category,
		Difficulty:       item.Difficulty,
		TotalTimeMinutes: item.TotalTimeMinutes,
		RatingAverage:    item.RatingAverage,
		RatingCount:      item.RatingCount,
		HeroImage:        item.HeroImage,
	}
}

// FilterCriteria is a sparse, per-request set of predicates. Zero-valued or
// "alla"-valued fields are no-ops. Built fresh from query parameters for each
// request and never persisted.
type FilterCriteria struct {
	Category      string
	Subcategory   string
	MealType      string
	CookingMethod string
	Difficulty    string
	TimeCategory  string

	// MaxTime is an inclusive upper bound on TotalTimeMinutes. Items without
	// a stated total time never satisfy it.
	MaxTime *int

	DietaryTags        []string
	LifestyleTags      []string
	Tags               []string
	ExcludeAllergens   []string
	IncludeIngredients []string
	ExcludeIngredients []string
}
