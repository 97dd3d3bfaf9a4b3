package server

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/receptbanken/receptbanken/internal/taxonomy"
)

// TaxonomyHandler serves the static navigation vocabulary.
type TaxonomyHandler struct {
	Registry *taxonomy.Registry
}

// Register mounts the handler on g.
func (h *TaxonomyHandler) Register(g *echo.Group) {
	g.GET("/kategorier", h.categories)
	g.GET("/kategorier/:slug", h.category)
	g.GET("/maltider", h.mealTypes)
	g.GET("/tillagningsmetoder", h.cookingMethods)
	g.GET("/taxonomier", h.all)
}

func (h *TaxonomyHandler) categories(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Registry.Categories())
}

func (h *TaxonomyHandler) category(c echo.Context) error {
	cat := h.Registry.CategoryBySlug(c.Param("slug"))
	if cat == nil {
		return echo.NewHTTPError(http.StatusNotFound, "unknown category")
	}
	return c.JSON(http.StatusOK, cat)
}

func (h *TaxonomyHandler) mealTypes(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Registry.MealTypes())
}

func (h *TaxonomyHandler) cookingMethods(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Registry.CookingMethods())
}

func (h *TaxonomyHandler) all(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"categories":     h.Registry.Categories(),
		"mealTypes":      h.Registry.MealTypes(),
		"cookingMethods": h.Registry.CookingMethods(),
		"dietaryTags":    h.Registry.DietaryTags(),
		"lifestyleTags":  h.Registry.LifestyleTags(),
		"difficulties":   h.Registry.Difficulties(),
		"timeBuckets":    h.Registry.TimeBuckets(),
	})
}
