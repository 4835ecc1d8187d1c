package api

import (
	"github.com/rpupo63/portfolio-cms-backend/models"
	"github.com/rpupo63/portfolio-cms-backend/views"
)

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	projectHandler projectHandler
	seriesHandler  seriesHandler
	ventureHandler ventureHandler
	resumeHandler  resumeHandler
	contactHandler contactHandler
	pagesHandler   pagesHandler
}

// ErrorResponse represents an error response from the API
// @Description Error response structure
type ErrorResponse struct {
	Error   string `json:"error" example:"Internal Server Error"`
	Status  string `json:"status" example:"error"`
	Field   string `json:"field,omitempty" example:"title"`
	Details string `json:"details,omitempty" example:"Additional error details"`
	Cause   string `json:"cause,omitempty" example:"Underlying error cause"`
}

// ListingResponse is a page's merged, globally ordered card collection.
type ListingResponse struct {
	Items []views.ListingItem `json:"items"`
	Total int                 `json:"total"`
}

// DetailResponse is the resolved content for one slug. Kind names the
// shape; the matching payload field is set.
type DetailResponse struct {
	Kind views.ItemKind `json:"kind"`

	Series         *models.Series    `json:"series,omitempty"`
	SeriesProjects []*models.Project `json:"series_projects,omitempty"`

	Project         *models.Project   `json:"project,omitempty"`
	RelatedProjects []*models.Project `json:"related_projects,omitempty"`

	Venture         *models.Venture   `json:"venture,omitempty"`
	RelatedVentures []*models.Venture `json:"related_ventures,omitempty"`
}

// FeaturedResponse is the homepage-featured project selection.
type FeaturedResponse struct {
	Projects []*models.Project `json:"projects"`
	Total    int               `json:"total"`
}
