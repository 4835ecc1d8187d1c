package api

import (
	"github.com/rpupo63/portfolio-cms-backend/database"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(database database.Database) *routeHandlers {
	return &routeHandlers{
		projectHandler: newProjectHandler(database),
		seriesHandler:  newSeriesHandler(database),
		ventureHandler: newVentureHandler(database),
		resumeHandler:  newResumeHandler(database),
		contactHandler: newContactHandler(database.ContactSubmissionRepo()),
		pagesHandler:   newPagesHandler(database),
	}
}
