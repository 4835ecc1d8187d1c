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

type projectHandler struct {
	responder   Responder
	logger      zerolog.Logger
	db          database.Database
	projectRepo *database.ProjectRepo
	seriesRepo  *database.SeriesRepo
}

func newProjectHandler(db database.Database) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		db:          db,
		projectRepo: db.ProjectRepo(),
		seriesRepo:  db.SeriesRepo(),
	}
}

// ProjectCollection represents multiple projects
type ProjectCollection struct {
	Projects []*models.Project `json:"projects"`
	Total    int               `json:"total,omitempty"`
}

// checkSeriesCompatible verifies that a project's fine badge rolls up to
// the same coarse badge as the series it is being placed in.
func (h projectHandler) checkSeriesCompatible(seriesID uuid.UUID, badge models.FineBadge) error {
	series, err := h.seriesRepo.FindByID(seriesID)
	if err != nil {
		return wrapDatabaseError("find series", "series", err)
	}
	if series == nil {
		return errs.NewInvalidFieldError("series_id", "series does not exist")
	}
	if badge.Coarse() != series.BadgeType {
		return errs.NewInvalidFieldError("series_id", "project badge does not match series badge")
	}
	return nil
}

// checkSlugAvailable enforces slug uniqueness across every table sharing
// the project's routing namespace.
func (h projectHandler) checkSlugAvailable(coarse models.CoarseBadge, slug string, excludeID uuid.UUID) error {
	taken, err := h.db.SlugInUse(coarse, slug, database.SlugKindProject, excludeID)
	if err != nil {
		return wrapDatabaseError("check slug", "projects", err)
	}
	if taken {
		return errs.NewSlugConflictError(slug, string(coarse))
	}
	return nil
}

// projectPatchPlan is the validation outcome of a partial project update:
// the fine badge the project will carry afterwards, a changed slug needing
// a uniqueness check, and a series whose badge compatibility must be
// verified before the write.
type projectPatchPlan struct {
	badge    models.FineBadge
	slug     string
	seriesID *uuid.UUID
}

// planProjectPatch validates patch fields against the existing row. A
// badge change on a project already in a series re-checks that series even
// when the patch leaves series_id untouched; an explicit null series_id
// detaches the project and needs no check.
func planProjectPatch(existing *models.Project, fields map[string]interface{}) (projectPatchPlan, error) {
	plan := projectPatchPlan{badge: existing.BadgeType}

	badgeChanged := false
	if raw, ok := fields["badgeType"]; ok {
		s, ok := raw.(string)
		if !ok || !models.FineBadge(s).Valid() {
			return plan, errs.NewInvalidFieldError("badgeType", "unknown badge type")
		}
		plan.badge = models.FineBadge(s)
		badgeChanged = plan.badge != existing.BadgeType
	}

	if raw, ok := fields["url_slug"]; ok {
		slug, ok := raw.(string)
		if !ok || slug == "" {
			return plan, errs.NewInvalidFieldError("url_slug", "must be a non-empty string")
		}
		plan.slug = slug
	}

	if raw, ok := fields["series_id"]; ok {
		if raw != nil {
			s, _ := raw.(string)
			seriesID, err := uuid.Parse(s)
			if err != nil {
				return plan, errs.NewInvalidFieldError("series_id", "must be a valid UUID")
			}
			plan.seriesID = &seriesID
		}
	} else if badgeChanged && existing.InSeries() {
		plan.seriesID = existing.SeriesID
	}

	return plan, nil
}

// getAllProjects retrieves all projects, hidden ones included
// @Summary Get all projects
// @Description Retrieves every project for the admin dashboard, ordered by sort rank
// @Tags Projects
// @Accept json
// @Produce json
// @Success 200 {object} ProjectCollection "List of projects"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error fetching projects"
// @Router /admin/projects [get]
func (h projectHandler) getAllProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Authentication handled by middleware

		projects, err := h.projectRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find projects", "projects", err))
			return
		}

		h.responder.WriteJSON(w, ProjectCollection{Projects: projects, Total: len(projects)})
	}
}

// getProject retrieves a specific project by ID
// @Summary Get project
// @Description Retrieves a single project by ID
// @Tags Projects
// @Accept json
// @Produce json
// @Param projectID path string true "Project ID" format(uuid)
// @Success 200 {object} models.Project "Project details"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid projectID"
// @Failure 404 {object} ErrorResponse "Not Found - Project not found"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error fetching project"
// @Router /admin/project/{projectID} [get]
func (h projectHandler) getProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Authentication handled by middleware

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

		// The editor receives the authored inner markup, not the stored
		// styling wrapper, so the wrapper never re-nests on save.
		h.responder.WriteJSON(w, forEditor(project))
	}
}

// createProject creates a new project
// @Summary Create project
// @Description Creates a new project after validating its badge, slug, and series placement
// @Tags Projects
// @Accept json
// @Produce json
// @Param project body models.Project true "Project to create"
// @Success 201 {object} models.Project "Created project"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid payload"
// @Failure 409 {object} ErrorResponse "Conflict - Slug already in use"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error creating project"
// @Router /admin/project [post]
func (h projectHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Authentication handled by middleware

		var project models.Project
		if err := json.NewDecoder(r.Body).Decode(&project); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("project", err))
			return
		}

		if project.Title == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("title"))
			return
		}
		if project.URLSlug == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("url_slug"))
			return
		}
		if !project.BadgeType.Valid() {
			h.responder.WriteError(w, errs.NewInvalidFieldError("badgeType", "unknown badge type"))
			return
		}

		if err := h.checkSlugAvailable(project.BadgeType.Coarse(), project.URLSlug, uuid.Nil); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if project.InSeries() {
			if err := h.checkSeriesCompatible(*project.SeriesID, project.BadgeType); err != nil {
				h.responder.WriteError(w, err)
				return
			}
		}

		normalizeContent(&project)

		if err := h.projectRepo.Add(&project); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create project", "projects", err))
			return
		}

		h.logger.Info().Str("projectID", project.ID.String()).Msg("Created project")
		h.responder.WriteJSONStatus(w, http.StatusCreated, project)
	}
}

// updateProject applies a partial update to a project
// @Summary Update project
// @Description Updates the provided fields of a project, leaving the rest untouched
// @Tags Projects
// @Accept json
// @Produce json
// @Param projectID path string true "Project ID" format(uuid)
// @Param fields body object true "Fields to update"
// @Success 200 {object} models.Project "Updated project"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid payload"
// @Failure 404 {object} ErrorResponse "Not Found - Project not found"
// @Failure 409 {object} ErrorResponse "Conflict - Slug already in use"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error updating project"
// @Router /admin/project/{projectID} [put]
func (h projectHandler) updateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Authentication handled by middleware

		projectID, err := uuid.Parse(chi.URLParam(r, "projectID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewInvalidFieldError("projectID", "must be a valid UUID"))
			return
		}

		existing, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find project", "projects", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFound("project"))
			return
		}

		var fields map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("project", err))
			return
		}

		plan, err := planProjectPatch(existing, fields)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if plan.slug != "" {
			if err := h.checkSlugAvailable(plan.badge.Coarse(), plan.slug, projectID); err != nil {
				h.responder.WriteError(w, err)
				return
			}
		}
		if plan.seriesID != nil {
			if err := h.checkSeriesCompatible(*plan.seriesID, plan.badge); err != nil {
				h.responder.WriteError(w, err)
				return
			}
		}

		normalizePatchContent(fields)

		project, err := h.projectRepo.Patch(projectID, fields)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update project", "projects", err))
			return
		}

		h.logger.Info().Str("projectID", projectID.String()).Msg("Updated project")
		h.responder.WriteJSON(w, project)
	}
}

// deleteProject removes a project
// @Summary Delete project
// @Description Permanently deletes a project
// @Tags Projects
// @Accept json
// @Produce json
// @Param projectID path string true "Project ID" format(uuid)
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid projectID"
// @Failure 404 {object} ErrorResponse "Not Found - Project not found"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error deleting project"
// @Router /admin/project/{projectID} [delete]
func (h projectHandler) deleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Authentication handled by middleware

		projectID, err := uuid.Parse(chi.URLParam(r, "projectID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewInvalidFieldError("projectID", "must be a valid UUID"))
			return
		}

		existing, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find project", "projects", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFound("project"))
			return
		}

		if err := h.projectRepo.Delete(projectID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete project", "projects", err))
			return
		}

		h.logger.Info().Str("projectID", projectID.String()).Msg("Deleted project")
		w.WriteHeader(http.StatusNoContent)
	}
}
