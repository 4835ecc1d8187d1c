package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-cms-backend/database"
	"github.com/rpupo63/portfolio-cms-backend/errs"
	"github.com/rpupo63/portfolio-cms-backend/models"
)

type seriesHandler struct {
	responder   Responder
	logger      zerolog.Logger
	db          database.Database
	seriesRepo  *database.SeriesRepo
	projectRepo *database.ProjectRepo
}

func newSeriesHandler(db database.Database) seriesHandler {
	logger := log.With().Str("handlerName", "seriesHandler").Logger()

	return seriesHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		db:          db,
		seriesRepo:  db.SeriesRepo(),
		projectRepo: db.ProjectRepo(),
	}
}

// SeriesCollection represents multiple series
type SeriesCollection struct {
	Series []*models.Series `json:"series"`
	Total  int              `json:"total,omitempty"`
}

// SeriesProjectsResponse represents the members of one series
type SeriesProjectsResponse struct {
	Series   *models.Series    `json:"series"`
	Projects []*models.Project `json:"projects"`
	Total    int               `json:"total,omitempty"`
}

// getAllSeries retrieves all series, hidden ones included
// @Summary Get all series
// @Description Retrieves every series for the admin dashboard, ordered by sort rank
// @Tags Series
// @Accept json
// @Produce json
// @Success 200 {object} SeriesCollection "List of series"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error fetching series"
// @Router /admin/series [get]
func (h seriesHandler) getAllSeries() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Authentication handled by middleware

		series, err := h.seriesRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find series", "series", err))
			return
		}

		h.responder.WriteJSON(w, SeriesCollection{Series: series, Total: len(series)})
	}
}

// getSeries retrieves a specific series by ID
// @Summary Get series
// @Description Retrieves a single series by ID
// @Tags Series
// @Accept json
// @Produce json
// @Param seriesID path string true "Series ID" format(uuid)
// @Success 200 {object} models.Series "Series details"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid seriesID"
// @Failure 404 {object} ErrorResponse "Not Found - Series not found"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error fetching series"
// @Router /admin/series/{seriesID} [get]
func (h seriesHandler) getSeries() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Authentication handled by middleware

		seriesID, err := uuid.Parse(chi.URLParam(r, "seriesID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewInvalidFieldError("seriesID", "must be a valid UUID"))
			return
		}

		series, err := h.seriesRepo.FindByID(seriesID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find series", "series", err))
			return
		}
		if series == nil {
			h.responder.WriteError(w, errs.NewNotFound("series"))
			return
		}

		h.responder.WriteJSON(w, series)
	}
}

// getSeriesProjects retrieves the member projects of a series
// @Summary Get series projects
// @Description Retrieves the projects belonging to a series, ordered by sort rank
// @Tags Series
// @Accept json
// @Produce json
// @Param seriesID path string true "Series ID" format(uuid)
// @Success 200 {object} SeriesProjectsResponse "Series with member projects"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid seriesID"
// @Failure 404 {object} ErrorResponse "Not Found - Series not found"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error fetching projects"
// @Router /admin/series/{seriesID}/projects [get]
func (h seriesHandler) getSeriesProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Authentication handled by middleware

		seriesID, err := uuid.Parse(chi.URLParam(r, "seriesID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewInvalidFieldError("seriesID", "must be a valid UUID"))
			return
		}

		series, err := h.seriesRepo.FindByID(seriesID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find series", "series", err))
			return
		}
		if series == nil {
			h.responder.WriteError(w, errs.NewNotFound("series"))
			return
		}

		projects, err := h.projectRepo.FindBySeriesID(seriesID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find series projects", "projects", err))
			return
		}

		h.responder.WriteJSON(w, SeriesProjectsResponse{
			Series:   series,
			Projects: projects,
			Total:    len(projects),
		})
	}
}

// removeSeriesProject detaches a project from a series
// @Summary Remove project from series
// @Description Clears a project's series relation; the project itself is kept
// @Tags Series
// @Accept json
// @Produce json
// @Param seriesID path string true "Series ID" format(uuid)
// @Param projectID path string true "Project ID" format(uuid)
// @Success 200 {object} models.Project "Detached project"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid ID or project not in series"
// @Failure 404 {object} ErrorResponse "Not Found - Project not found"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error updating project"
// @Router /admin/series/{seriesID}/project/{projectID} [delete]
func (h seriesHandler) removeSeriesProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Authentication handled by middleware

		seriesID, err := uuid.Parse(chi.URLParam(r, "seriesID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewInvalidFieldError("seriesID", "must be a valid UUID"))
			return
		}
		projectID, err := uuid.Parse(chi.URLParam(r, "projectID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewInvalidFieldError("projectID", "must be a valid UUID"))
			return
		}

		project, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find project", "projects", err))
			return
		}
		if project == nil {
			h.responder.WriteError(w, errs.NewNotFound("project"))
			return
		}
		if project.SeriesID == nil || *project.SeriesID != seriesID {
			h.responder.WriteError(w, errs.NewInvalidFieldError("projectID", "project does not belong to this series"))
			return
		}

		updated, err := h.projectRepo.ClearSeries(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update project", "projects", err))
			return
		}

		h.logger.Info().
			Str("seriesID", seriesID.String()).
			Str("projectID", projectID.String()).
			Msg("Removed project from series")
		h.responder.WriteJSON(w, updated)
	}
}

// createSeries creates a new series
// @Summary Create series
// @Description Creates a new series after validating its badge and slug
// @Tags Series
// @Accept json
// @Produce json
// @Param series body models.Series true "Series to create"
// @Success 201 {object} models.Series "Created series"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid payload"
// @Failure 409 {object} ErrorResponse "Conflict - Slug already in use"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error creating series"
// @Router /admin/series [post]
func (h seriesHandler) createSeries() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Authentication handled by middleware

		var series models.Series
		if err := json.NewDecoder(r.Body).Decode(&series); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("series", err))
			return
		}

		if series.Title == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("title"))
			return
		}
		if series.URLSlug == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("url_slug"))
			return
		}
		if !series.BadgeType.Valid() {
			h.responder.WriteError(w, errs.NewInvalidFieldError("badge_type", "unknown badge type"))
			return
		}

		taken, err := h.db.SlugInUse(series.BadgeType, series.URLSlug, database.SlugKindSeries, uuid.Nil)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("check slug", "series", err))
			return
		}
		if taken {
			h.responder.WriteError(w, errs.NewSlugConflictError(series.URLSlug, string(series.BadgeType)))
			return
		}

		if err := h.seriesRepo.Add(&series); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create series", "series", err))
			return
		}

		h.logger.Info().Str("seriesID", series.ID.String()).Msg("Created series")
		h.responder.WriteJSONStatus(w, http.StatusCreated, series)
	}
}

// updateSeries applies a partial update to a series
// @Summary Update series
// @Description Updates the provided fields of a series, leaving the rest untouched
// @Tags Series
// @Accept json
// @Produce json
// @Param seriesID path string true "Series ID" format(uuid)
// @Param fields body object true "Fields to update"
// @Success 200 {object} models.Series "Updated series"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid payload"
// @Failure 404 {object} ErrorResponse "Not Found - Series not found"
// @Failure 409 {object} ErrorResponse "Conflict - Slug already in use"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error updating series"
// @Router /admin/series/{seriesID} [put]
func (h seriesHandler) updateSeries() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Authentication handled by middleware

		seriesID, err := uuid.Parse(chi.URLParam(r, "seriesID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewInvalidFieldError("seriesID", "must be a valid UUID"))
			return
		}

		existing, err := h.seriesRepo.FindByID(seriesID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find series", "series", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFound("series"))
			return
		}

		var fields map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("series", err))
			return
		}

		badge := existing.BadgeType
		if raw, ok := fields["badge_type"]; ok {
			s, ok := raw.(string)
			if !ok || !models.CoarseBadge(s).Valid() {
				h.responder.WriteError(w, errs.NewInvalidFieldError("badge_type", "unknown badge type"))
				return
			}
			badge = models.CoarseBadge(s)
		}

		if raw, ok := fields["url_slug"]; ok {
			slug, ok := raw.(string)
			if !ok || slug == "" {
				h.responder.WriteError(w, errs.NewInvalidFieldError("url_slug", "must be a non-empty string"))
				return
			}
			taken, err := h.db.SlugInUse(badge, slug, database.SlugKindSeries, seriesID)
			if err != nil {
				h.responder.WriteError(w, wrapDatabaseError("check slug", "series", err))
				return
			}
			if taken {
				h.responder.WriteError(w, errs.NewSlugConflictError(slug, string(badge)))
				return
			}
		}

		series, err := h.seriesRepo.Patch(seriesID, fields)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update series", "series", err))
			return
		}

		h.logger.Info().Str("seriesID", seriesID.String()).Msg("Updated series")
		h.responder.WriteJSON(w, series)
	}
}

// deleteSeries removes a series, detaching its member projects first
// @Summary Delete series
// @Description Permanently deletes a series; member projects are kept and detached
// @Tags Series
// @Accept json
// @Produce json
// @Param seriesID path string true "Series ID" format(uuid)
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid seriesID"
// @Failure 404 {object} ErrorResponse "Not Found - Series not found"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error deleting series"
// @Router /admin/series/{seriesID} [delete]
func (h seriesHandler) deleteSeries() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Authentication handled by middleware

		seriesID, err := uuid.Parse(chi.URLParam(r, "seriesID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewInvalidFieldError("seriesID", "must be a valid UUID"))
			return
		}

		existing, err := h.seriesRepo.FindByID(seriesID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find series", "series", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFound("series"))
			return
		}

		if err := h.seriesRepo.Delete(seriesID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete series", "series", err))
			return
		}

		h.logger.Info().Str("seriesID", seriesID.String()).Msg("Deleted series")
		w.WriteHeader(http.StatusNoContent)
	}
}
