package api

import (
	"github.com/go-chi/chi/v5"
)

// setupPublicRoutes wires the visitor-facing pages. List endpoints degrade
// to empty collections on store failure; they never surface error banners.
func setupPublicRoutes(r chi.Router, handlers *routeHandlers) {
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Get("/design-work", handlers.pagesHandler.getDesignWork())
		r.Get("/design-work/{slug}", handlers.pagesHandler.getDesignWorkDetail())
		r.Get("/ventures", handlers.pagesHandler.getVentures())
		r.Get("/ventures/{slug}", handlers.pagesHandler.getVenturesDetail())
		r.Get("/home/featured", handlers.pagesHandler.getHomepageFeatured())
		r.Get("/resume", handlers.pagesHandler.getResume())

		r.Post("/contact", handlers.contactHandler.createSubmission())
	})
}

// setupAdminRoutes wires the authoring endpoints behind the admin gate.
func setupAdminRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware) {
	r.Route("/admin", func(r chi.Router) {
		r.Use(authMiddleware.authenticate)
		r.Use(ColoredHTTPLoggingMiddleware)

		// Project endpoints
		r.Get("/projects", handlers.projectHandler.getAllProjects())
		r.Get("/project/{projectID}", handlers.projectHandler.getProject())
		r.Post("/project", handlers.projectHandler.createProject())
		r.Put("/project/{projectID}", handlers.projectHandler.updateProject())
		r.Delete("/project/{projectID}", handlers.projectHandler.deleteProject())

		// Series endpoints
		r.Get("/series", handlers.seriesHandler.getAllSeries())
		r.Get("/series/{seriesID}", handlers.seriesHandler.getSeries())
		r.Get("/series/{seriesID}/projects", handlers.seriesHandler.getSeriesProjects())
		r.Delete("/series/{seriesID}/project/{projectID}", handlers.seriesHandler.removeSeriesProject())
		r.Post("/series", handlers.seriesHandler.createSeries())
		r.Put("/series/{seriesID}", handlers.seriesHandler.updateSeries())
		r.Delete("/series/{seriesID}", handlers.seriesHandler.deleteSeries())

		// Venture endpoints
		r.Get("/ventures", handlers.ventureHandler.getAllVentures())
		r.Get("/venture/{ventureID}", handlers.ventureHandler.getVenture())
		r.Post("/venture", handlers.ventureHandler.createVenture())
		r.Put("/venture/{ventureID}", handlers.ventureHandler.updateVenture())
		r.Delete("/venture/{ventureID}", handlers.ventureHandler.deleteVenture())

		// Resume endpoints
		r.Get("/experience", handlers.resumeHandler.getAllExperience())
		r.Post("/experience", handlers.resumeHandler.createExperience())
		r.Put("/experience/{experienceID}", handlers.resumeHandler.updateExperience())
		r.Delete("/experience/{experienceID}", handlers.resumeHandler.deleteExperience())

		r.Get("/education", handlers.resumeHandler.getAllEducation())
		r.Post("/education", handlers.resumeHandler.createEducation())
		r.Put("/education/{educationID}", handlers.resumeHandler.updateEducation())
		r.Delete("/education/{educationID}", handlers.resumeHandler.deleteEducation())

		r.Get("/profile", handlers.resumeHandler.getProfile())
		r.Put("/profile", handlers.resumeHandler.updateProfile())
	})
}
