package server

import "github.com/receptbanken/receptbanken/models"

// recipeListResponse is the payload of GET /api/recipes.
type recipeListResponse struct {
	Total int                `json:"total"`
	Items []models.SearchDoc `json:"items"`
}

// recipeDetailResponse is the payload of GET /api/recipes/:slug. Ingredients
// and Servings reflect the requested portion count when ?portioner= is given.
type recipeDetailResponse struct {
	models.ContentItem
	BodyHTML string             `json:"bodyHtml,omitempty"`
	Related  []models.SearchDoc `json:"related,omitempty"`
}

// searchResponse is the payload of GET /api/sok.
type searchResponse struct {
	Query string             `json:"query"`
	Hits  []models.SearchDoc `json:"hits"`
}
