// Package content reads recipe, article and author records from flat
// markdown files and provides the in-memory search, filter, sort, related
// and portion-scaling operations over them.
//
// Files live at {dir}/{type}/{slug}.md with a YAML frontmatter header and a
// free-text markdown body. The store re-reads and re-parses on every call;
// any caching sits above it.
package content

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/adrg/frontmatter"

	"github.com/receptbanken/receptbanken/models"
)

// Store reads content items from a directory tree on disk.
type Store struct {
	dir    string
	logger *log.Logger
}

// NewStore creates a store rooted at dir. A nil logger falls back to the
// default logger with a [CONTENT] tag.
func NewStore(dir string, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.New(log.Writer(), "[CONTENT] ", log.LstdFlags)
	}
	return &Store{dir: dir, logger: logger}
}

// Dir returns the content root the store reads from.
func (s *Store) Dir() string { return s.dir }

// frontMatter mirrors the YAML header of a content file. Dates are kept as
// strings here because authors write plain "2024-01-02" values that the YAML
// decoder will not place into a time.Time.
type frontMatter struct {
	Title         string                     `yaml:"title"`
	Excerpt       string                     `yaml:"excerpt"`
	Category      string                     `yaml:"category"`
	Subcategory   string                     `yaml:"subcategory"`
	Difficulty    string                     `yaml:"difficulty"`
	Cuisine       string                     `yaml:"cuisine"`
	MealType      string                     `yaml:"mealType"`
	CookingMethod string                     `yaml:"cookingMethod"`
	Tags          []string                   `yaml:"tags"`
	Ingredients   []models.IngredientSection `yaml:"ingredients"`
	Steps         []models.RecipeStep        `yaml:"steps"`
	Allergens     []string                   `yaml:"allergens"`
	Servings      int                        `yaml:"servings"`
	TotalTime     *int                       `yaml:"totalTimeMinutes"`
	PrepTime      int                        `yaml:"prepTimeMinutes"`
	CookTime      int                        `yaml:"cookTimeMinutes"`
	RatingAverage float64                    `yaml:"ratingAverage"`
	RatingCount   int                        `yaml:"ratingCount"`
	PublishedAt   string                     `yaml:"publishedAt"`
	UpdatedAt     string                     `yaml:"updatedAt"`
	HeroImage     *models.HeroImage          `yaml:"heroImage"`
}

var dateFormats = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	for _, f := range dateFormats {
		if t, err := time.Parse(f, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised date %q", s)
}

// validSlug rejects names that could escape the content directory when
// joined into a path. Slugs come straight from URLs.
func validSlug(slug string) bool {
	if slug == "" || slug == "." || slug == ".." {
		return false
	}
	return !strings.ContainsAny(slug, `/\`)
}

// GetBySlug loads a single item. A missing file is a normal outcome and
// returns (nil, nil); only read or parse failures return an error. Slugs
// carrying path separators can never name an item and resolve as not found.
func (s *Store) GetBySlug(contentType, slug string) (*models.ContentItem, error) {
	if !validSlug(slug) || !validSlug(contentType) {
		return nil, nil
	}
	path := filepath.Join(s.dir, contentType, slug+".md")
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	item, err := parseItem(slug, raw)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return item, nil
}

// ListFiles returns the content filenames of a type, without extensions.
// A missing type directory yields an empty result, not an error.
func (s *Store) ListFiles(contentType string) ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(s.dir, contentType))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("listing %s: %w", contentType, err)
	}
	var slugs []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(strings.ToLower(name), ".md") {
			continue
		}
		slugs = append(slugs, strings.TrimSuffix(name, filepath.Ext(name)))
	}
	return slugs, nil
}

// GetAll loads every item of a type sorted by publish date descending, slug
// ascending on equal dates so listings are reproducible. Files whose header
// fails to parse are logged and skipped; one bad file must not take down the
// whole catalog.
func (s *Store) GetAll(contentType string) ([]models.ContentItem, error) {
	slugs, err := s.ListFiles(contentType)
	if err != nil {
		return nil, err
	}
	items := make([]models.ContentItem, 0, len(slugs))
	for _, slug := range slugs {
		item, err := s.GetBySlug(contentType, slug)
		if err != nil {
			s.logger.Printf("skipping %s/%s: %v", contentType, slug, err)
			continue
		}
		if item == nil {
			continue
		}
		items = append(items, *item)
	}
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].PublishedAt.Equal(items[j].PublishedAt) {
			return items[i].Slug < items[j].Slug
		}
		return items[i].PublishedAt.After(items[j].PublishedAt)
	})
	return items, nil
}

func parseItem(slug string, raw []byte) (*models.ContentItem, error) {
	var fm frontMatter
	body, err := frontmatter.Parse(bytes.NewReader(raw), &fm)
	if err != nil {
		return nil, fmt.Errorf("frontmatter: %w", err)
	}
	published, err := parseDate(fm.PublishedAt)
	if err != nil {
		return nil, fmt.Errorf("publishedAt: %w", err)
	}
	updated, err := parseDate(fm.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("updatedAt: %w", err)
	}
	return &models.ContentItem{
		Slug:             slug,
		Title:            fm.Title,
		Excerpt:          fm.Excerpt,
		Category:         fm.Category,
		Subcategory:      fm.Subcategory,
		Difficulty:       fm.Difficulty,
		Cuisine:          fm.Cuisine,
		MealType:         fm.MealType,
		CookingMethod:    fm.CookingMethod,
		Tags:             fm.Tags,
		Ingredients:      fm.Ingredients,
		Steps:            fm.Steps,
		Allergens:        fm.Allergens,
		Servings:         fm.Servings,
		TotalTimeMinutes: fm.TotalTime,
		PrepTimeMinutes:  fm.PrepTime,
		CookTimeMinutes:  fm.CookTime,
		RatingAverage:    fm.RatingAverage,
		RatingCount:      fm.RatingCount,
		PublishedAt:      published,
		UpdatedAt:        updated,
		HeroImage:        fm.HeroImage,
		Body:             string(body),
	}, nil
}
