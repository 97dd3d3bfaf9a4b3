// Package taxonomy holds the hand-authored navigation vocabulary of the site:
// categories, meal types, cooking methods, dietary and lifestyle tags,
// difficulty levels and time buckets. The registry is built once and never
// mutated; callers that need an alternate vocabulary construct their own
// Registry instead of patching globals.
package taxonomy

import "strings"

// Category is a static navigation entry with its presentational metadata.
type Category struct {
	Key           string   `json:"key"`
	Name          string   `json:"name"`
	Slug          string   `json:"slug"`
	Description   string   `json:"description,omitempty"`
	Icon          string   `json:"icon,omitempty"`
	Color         string   `json:"color,omitempty"`
	Image         string   `json:"image,omitempty"`
	Subcategories []string `json:"subcategories,omitempty"`
}

// Term is a generic slug/name pair used for meal types, cooking methods,
// dietary and lifestyle tags and difficulty levels.
type Term struct {
	Slug string `json:"slug"`
	Name string `json:"name"`
}

// TimeBucket maps a time-category slug to an inclusive upper bound in minutes.
type TimeBucket struct {
	Slug       string `json:"slug"`
	Name       string `json:"name"`
	MaxMinutes int    `json:"maxMinutes"`
}

// Registry is the read-only lookup table set. Construct it once (usually via
// Default) and pass it to whatever needs it.
type Registry struct {
	categories     []Category
	mealTypes      []Term
	cookingMethods []Term
	dietaryTags    []Term
	lifestyleTags  []Term
	difficulties   []Term
	timeBuckets    []TimeBucket

	bySlug map[string]*Category
	bounds map[string]int
}

// New builds a Registry from explicit tables.
func New(categories []Category, mealTypes, cookingMethods, dietaryTags, lifestyleTags, difficulties []Term, timeBuckets []TimeBucket) *Registry {
	r := &Registry{
		categories:     categories,
		mealTypes:      mealTypes,
		cookingMethods: cookingMethods,
		dietaryTags:    dietaryTags,
		lifestyleTags:  lifestyleTags,
		difficulties:   difficulties,
		timeBuckets:    timeBuckets,
		bySlug:         make(map[string]*Category, len(categories)),
		bounds:         make(map[string]int, len(timeBuckets)),
	}
	for i := range r.categories {
		r.bySlug[r.categories[i].Slug] = &r.categories[i]
	}
	for _, b := range timeBuckets {
		r.bounds[b.Slug] = b.MaxMinutes
	}
	return r
}

// Categories returns all category definitions in authored order.
func (r *Registry) Categories() []Category { return r.categories }

// CategoryBySlug resolves a category by slug. URL slugs conventionally carry
// a "-recept" suffix ("kladdkaka-recept"); it is stripped before lookup so
// both forms resolve to the same definition. Returns nil when unknown.
func (r *Registry) CategoryBySlug(slug string) *Category {
	slug = strings.TrimSuffix(strings.ToLower(strings.TrimSpace(slug)), "-recept")
	return r.bySlug[slug]
}

// MealTypes returns all meal type terms.
func (r *Registry) MealTypes() []Term { return r.mealTypes }

// CookingMethods returns all cooking method terms.
func (r *Registry) CookingMethods() []Term { return r.cookingMethods }

// DietaryTags returns all dietary tag terms.
func (r *Registry) DietaryTags() []Term { return r.dietaryTags }

// LifestyleTags returns all lifestyle tag terms.
func (r *Registry) LifestyleTags() []Term { return r.lifestyleTags }

// Difficulties returns all difficulty levels.
func (r *Registry) Difficulties() []Term { return r.difficulties }

// TimeBuckets returns all time buckets.
func (r *Registry) TimeBuckets() []TimeBucket { return r.timeBuckets }

// TimeBound resolves a time-category slug to its upper bound in minutes.
func (r *Registry) TimeBound(slug string) (int, bool) {
	b, ok := r.bounds[strings.ToLower(strings.TrimSpace(slug))]
	return b, ok
}
