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

type ventureHandler struct {
	responder   Responder
	logger      zerolog.Logger
	db          database.Database
	ventureRepo *database.VentureRepo
}

func newVentureHandler(db database.Database) ventureHandler {
	logger := log.With().Str("handlerName", "ventureHandler").Logger()

	return ventureHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		db:          db,
		ventureRepo: db.VentureRepo(),
	}
}

// VentureCollection represents multiple ventures
type VentureCollection struct {
	Ventures []*models.Venture `json:"ventures"`
	Total    int               `json:"total,omitempty"`
}

func (h ventureHandler) checkSlugAvailable(slug string, excludeID uuid.UUID) error {
	taken, err := h.db.SlugInUse(models.CoarseVentures, slug, database.SlugKindVenture, excludeID)
	if err != nil {
		return wrapDatabaseError("check slug", "ventures", err)
	}
	if taken {
		return errs.NewSlugConflictError(slug, string(models.CoarseVentures))
	}
	return nil
}

// getAllVentures retrieves all ventures, hidden ones included
// @Summary Get all ventures
// @Description Retrieves every venture for the admin dashboard, ordered by sort rank
// @Tags Ventures
// @Accept json
// @Produce json
// @Success 200 {object} VentureCollection "List of ventures"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error fetching ventures"
// @Router /admin/ventures [get]
func (h ventureHandler) getAllVentures() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Authentication handled by middleware

		ventures, err := h.ventureRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find ventures", "ventures", err))
			return
		}

		h.responder.WriteJSON(w, VentureCollection{Ventures: ventures, Total: len(ventures)})
	}
}

// getVenture retrieves a specific venture by ID
// @Summary Get venture
// @Description Retrieves a single venture by ID
// @Tags Ventures
// @Accept json
// @Produce json
// @Param ventureID path string true "Venture ID" format(uuid)
// @Success 200 {object} models.Venture "Venture details"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid ventureID"
// @Failure 404 {object} ErrorResponse "Not Found - Venture not found"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error fetching venture"
// @Router /admin/venture/{ventureID} [get]
func (h ventureHandler) getVenture() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Authentication handled by middleware

		ventureID, err := uuid.Parse(chi.URLParam(r, "ventureID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewInvalidFieldError("ventureID", "must be a valid UUID"))
			return
		}

		venture, err := h.ventureRepo.FindByID(ventureID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find venture", "ventures", err))
			return
		}
		if venture == nil {
			h.responder.WriteError(w, errs.NewNotFound("venture"))
			return
		}

		h.responder.WriteJSON(w, venture)
	}
}

// createVenture creates a new venture
// @Summary Create venture
// @Description Creates a new venture after validating its status and slug
// @Tags Ventures
// @Accept json
// @Produce json
// @Param venture body models.Venture true "Venture to create"
// @Success 201 {object} models.Venture "Created venture"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid payload"
// @Failure 409 {object} ErrorResponse "Conflict - Slug already in use"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error creating venture"
// @Router /admin/venture [post]
func (h ventureHandler) createVenture() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Authentication handled by middleware

		var venture models.Venture
		if err := json.NewDecoder(r.Body).Decode(&venture); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("venture", err))
			return
		}

		if venture.Title == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("title"))
			return
		}
		if venture.URLSlug == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("url_slug"))
			return
		}
		if venture.Status == "" {
			venture.Status = models.VentureActive
		}
		if !venture.Status.Valid() {
			h.responder.WriteError(w, errs.NewInvalidFieldError("status", "unknown venture status"))
			return
		}

		if err := h.checkSlugAvailable(venture.URLSlug, uuid.Nil); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.ventureRepo.Add(&venture); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create venture", "ventures", err))
			return
		}

		h.logger.Info().Str("ventureID", venture.ID.String()).Msg("Created venture")
		h.responder.WriteJSONStatus(w, http.StatusCreated, venture)
	}
}

// updateVenture applies a partial update to a venture
// @Summary Update venture
// @Description Updates the provided fields of a venture, leaving the rest untouched
// @Tags Ventures
// @Accept json
// @Produce json
// @Param ventureID path string true "Venture ID" format(uuid)
// @Param fields body object true "Fields to update"
// @Success 200 {object} models.Venture "Updated venture"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid payload"
// @Failure 404 {object} ErrorResponse "Not Found - Venture not found"
// @Failure 409 {object} ErrorResponse "Conflict - Slug already in use"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error updating venture"
// @Router /admin/venture/{ventureID} [put]
func (h ventureHandler) updateVenture() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Authentication handled by middleware

		ventureID, err := uuid.Parse(chi.URLParam(r, "ventureID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewInvalidFieldError("ventureID", "must be a valid UUID"))
			return
		}

		existing, err := h.ventureRepo.FindByID(ventureID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find venture", "ventures", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFound("venture"))
			return
		}

		var fields map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("venture", err))
			return
		}

		if raw, ok := fields["status"]; ok {
			s, ok := raw.(string)
			if !ok || !models.VentureStatus(s).Valid() {
				h.responder.WriteError(w, errs.NewInvalidFieldError("status", "unknown venture status"))
				return
			}
		}

		if raw, ok := fields["url_slug"]; ok {
			slug, ok := raw.(string)
			if !ok || slug == "" {
				h.responder.WriteError(w, errs.NewInvalidFieldError("url_slug", "must be a non-empty string"))
				return
			}
			if err := h.checkSlugAvailable(slug, ventureID); err != nil {
				h.responder.WriteError(w, err)
				return
			}
		}

		venture, err := h.ventureRepo.Patch(ventureID, fields)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update venture", "ventures", err))
			return
		}

		h.logger.Info().Str("ventureID", ventureID.String()).Msg("Updated venture")
		h.responder.WriteJSON(w, venture)
	}
}

// deleteVenture removes a venture
// @Summary Delete venture
// @Description Permanently deletes a venture
// @Tags Ventures
// @Accept json
// @Produce json
// @Param ventureID path string true "Venture ID" format(uuid)
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid ventureID"
// @Failure 404 {object} ErrorResponse "Not Found - Venture not found"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error deleting venture"
// @Router /admin/venture/{ventureID} [delete]
func (h ventureHandler) deleteVenture() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Authentication handled by middleware

		ventureID, err := uuid.Parse(chi.URLParam(r, "ventureID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewInvalidFieldError("ventureID", "must be a valid UUID"))
			return
		}

		existing, err := h.ventureRepo.FindByID(ventureID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find venture", "ventures", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFound("venture"))
			return
		}

		if err := h.ventureRepo.Delete(ventureID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete venture", "ventures", err))
			return
		}

		h.logger.Info().Str("ventureID", ventureID.String()).Msg("Deleted venture")
		w.WriteHeader(http.StatusNoContent)
	}
}
