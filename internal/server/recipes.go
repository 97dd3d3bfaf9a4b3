package server

import (
	"bytes"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/yuin/goldmark"

	"github.com/receptbanken/receptbanken/internal/content"
	"github.com/receptbanken/receptbanken/internal/search"
	"github.com/receptbanken/receptbanken/internal/taxonomy"
	"github.com/receptbanken/receptbanken/models"
)

const relatedLimit = 4

// ContentHandler serves the recipe read API: listings with search, filter
// and sort, detail views with rendered body and scaled portions, related
// items, the autocomplete endpoint and the client-side search index.
type ContentHandler struct {
	Store       *content.Store
	Library     *Library
	Registry    *taxonomy.Registry
	Scorer      content.Scorer
	Index       *search.Index
	Markdown    goldmark.Markdown
	ContentType string
	MaxResults  int
	Logger      *log.Logger
}

// Register mounts the handler on g.
func (h *ContentHandler) Register(g *echo.Group) {
	g.GET("/recipes", h.list)
	g.GET("/recipes/:slug", h.get)
	g.GET("/recipes/:slug/relaterade", h.related)
	g.GET("/sok", h.autocomplete)
	g.GET("/sokindex.json", h.searchIndex)
}

func (h *ContentHandler) list(c echo.Context) error {
	items := h.Library.Items(h.ContentType)
	items = content.Search(items, c.QueryParam("q"))
	items = content.Filter(items, criteriaFromQuery(c), h.Registry)
	if key := c.QueryParam("sortera"); key != "" {
		items = content.Sort(items, key)
	}

	docs := make([]models.SearchDoc, 0, len(items))
	for _, item := range items {
		docs = append(docs, models.NewSearchDoc(item))
	}
	return c.JSON(http.StatusOK, recipeListResponse{Total: len(docs), Items: docs})
}

func (h *ContentHandler) get(c echo.Context) error {
	slug := c.Param("slug")
	item, err := h.Store.GetBySlug(h.ContentType, slug)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if item == nil {
		return echo.NewHTTPError(http.StatusNotFound, models.ErrContentNotFound.Error())
	}

	resp := recipeDetailResponse{ContentItem: *item}

	if p := c.QueryParam("portioner"); p != "" {
		servings, err := strconv.Atoi(p)
		if err != nil || servings <= 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "portioner must be a positive integer")
		}
		if item.Servings > 0 && servings != item.Servings {
			scaled, err := content.ScaleIngredients(item.Ingredients, item.Servings, servings)
			if err != nil {
				return echo.NewHTTPError(http.StatusBadRequest, err.Error())
			}
			resp.Ingredients = scaled
			resp.Servings = servings
		}
	}

	if h.Markdown != nil && item.Body != "" {
		var buf bytes.Buffer
		if err := h.Markdown.Convert([]byte(item.Body), &buf); err != nil {
			h.Logger.Printf("rendering %s/%s: %v", h.ContentType, slug, err)
		} else {
			resp.BodyHTML = buf.String()
		}
	}

	related := content.Related(h.Library.Items(h.ContentType), item.Slug, item.Tags, item.Category, relatedLimit, h.Scorer)
	for _, r := range related {
		resp.Related = append(resp.Related, models.NewSearchDoc(r))
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *ContentHandler) related(c echo.Context) error {
	slug := c.Param("slug")
	item := h.Library.Find(h.ContentType, slug)
	if item == nil {
		return echo.NewHTTPError(http.StatusNotFound, models.ErrContentNotFound.Error())
	}
	limit := relatedLimit
	if l := c.QueryParam("antal"); l != "" {
		if n, err := strconv.Atoi(l); err == nil && n > 0 {
			limit = n
		}
	}
	related := content.Related(h.Library.Items(h.ContentType), item.Slug, item.Tags, item.Category, limit, h.Scorer)
	docs := make([]models.SearchDoc, 0, len(related))
	for _, r := range related {
		docs = append(docs, models.NewSearchDoc(r))
	}
	return c.JSON(http.StatusOK, recipeListResponse{Total: len(docs), Items: docs})
}

func (h *ContentHandler) autocomplete(c echo.Context) error {
	q := strings.TrimSpace(c.QueryParam("q"))
	if q == "" {
		return c.JSON(http.StatusOK, searchResponse{Query: q, Hits: []models.SearchDoc{}})
	}
	if h.Index == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "search is disabled")
	}
	searchQueries.Inc()
	hits, err := h.Index.Query(q, h.MaxResults)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if hits == nil {
		hits = []models.SearchDoc{}
	}
	return c.JSON(http.StatusOK, searchResponse{Query: q, Hits: hits})
}

func (h *ContentHandler) searchIndex(c echo.Context) error {
	items := h.Library.Items(h.ContentType)
	docs := make([]models.SearchDoc, 0, len(items))
	for _, item := range items {
		docs = append(docs, models.NewSearchDoc(item))
	}
	return c.JSON(http.StatusOK, docs)
}

// criteriaFromQuery maps the Swedish query parameters of the list pages onto
// filter criteria. List-valued parameters are comma separated.
func criteriaFromQuery(c echo.Context) models.FilterCriteria {
	criteria := models.FilterCriteria{
		Category:           c.QueryParam("kategori"),
		Subcategory:        c.QueryParam("underkategori"),
		MealType:           c.QueryParam("maltid"),
		CookingMethod:      c.QueryParam("tillagningsmetod"),
		Difficulty:         c.QueryParam("svarighetsgrad"),
		TimeCategory:       c.QueryParam("tid"),
		DietaryTags:        splitParam(c.QueryParam("kost")),
		LifestyleTags:      splitParam(c.QueryParam("livsstil")),
		Tags:               splitParam(c.QueryParam("tagg")),
		ExcludeAllergens:   splitParam(c.QueryParam("utan-allergen")),
		IncludeIngredients: splitParam(c.QueryParam("med-ingrediens")),
		ExcludeIngredients: splitParam(c.QueryParam("utan-ingrediens")),
	}
	if raw := c.QueryParam("maxtid"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			criteria.MaxTime = &n
		}
	}
	return criteria
}

func splitParam(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
