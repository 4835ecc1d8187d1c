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

// resumeHandler manages the resume's admin surface: experience entries,
// education entries, and the owner profile.
type resumeHandler struct {
	responder      Responder
	logger         zerolog.Logger
	experienceRepo *database.ExperienceRepo
	educationRepo  *database.EducationRepo
	profileRepo    *database.ProfileRepo
}

func newResumeHandler(db database.Database) resumeHandler {
	logger := log.With().Str("handlerName", "resumeHandler").Logger()

	return resumeHandler{
		responder:      NewResponder(logger),
		logger:         logger,
		experienceRepo: db.ExperienceRepo(),
		educationRepo:  db.EducationRepo(),
		profileRepo:    db.ProfileRepo(),
	}
}

// ExperienceCollection represents multiple experience entries
type ExperienceCollection struct {
	Experience []*models.Experience `json:"experience"`
	Total      int                  `json:"total,omitempty"`
}

// EducationCollection represents multiple education entries
type EducationCollection struct {
	Education []*models.Education `json:"education"`
	Total     int                 `json:"total,omitempty"`
}

// getAllExperience retrieves all experience entries
// @Summary Get all experience
// @Description Retrieves every experience entry, ordered by sort rank
// @Tags Resume
// @Accept json
// @Produce json
// @Success 200 {object} ExperienceCollection "List of experience entries"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error fetching experience"
// @Router /admin/experience [get]
func (h resumeHandler) getAllExperience() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Authentication handled by middleware

		entries, err := h.experienceRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find experience", "experience", err))
			return
		}

		h.responder.WriteJSON(w, ExperienceCollection{Experience: entries, Total: len(entries)})
	}
}

// createExperience creates a new experience entry
// @Summary Create experience
// @Description Creates a new experience entry
// @Tags Resume
// @Accept json
// @Produce json
// @Param entry body models.Experience true "Experience entry to create"
// @Success 201 {object} models.Experience "Created entry"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid payload"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error creating entry"
// @Router /admin/experience [post]
func (h resumeHandler) createExperience() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Authentication handled by middleware

		var entry models.Experience
		if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("experience", err))
			return
		}

		if entry.Title == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("title"))
			return
		}
		if entry.Company == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("company"))
			return
		}
		if entry.StartMonth < 1 || entry.StartMonth > 12 {
			h.responder.WriteError(w, errs.NewInvalidFieldError("start_month", "must be between 1 and 12"))
			return
		}
		if entry.StartYear == 0 {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("start_year"))
			return
		}
		if entry.EndMonth != nil && (*entry.EndMonth < 1 || *entry.EndMonth > 12) {
			h.responder.WriteError(w, errs.NewInvalidFieldError("end_month", "must be between 1 and 12"))
			return
		}

		if err := h.experienceRepo.Add(&entry); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create experience", "experience", err))
			return
		}

		h.logger.Info().Str("experienceID", entry.ID.String()).Msg("Created experience entry")
		h.responder.WriteJSONStatus(w, http.StatusCreated, entry)
	}
}

// updateExperience applies a partial update to an experience entry
// @Summary Update experience
// @Description Updates the provided fields of an experience entry
// @Tags Resume
// @Accept json
// @Produce json
// @Param experienceID path string true "Experience ID" format(uuid)
// @Param fields body object true "Fields to update"
// @Success 200 {object} models.Experience "Updated entry"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid payload"
// @Failure 404 {object} ErrorResponse "Not Found - Entry not found"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error updating entry"
// @Router /admin/experience/{experienceID} [put]
func (h resumeHandler) updateExperience() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Authentication handled by middleware

		experienceID, err := uuid.Parse(chi.URLParam(r, "experienceID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewInvalidFieldError("experienceID", "must be a valid UUID"))
			return
		}

		existing, err := h.experienceRepo.FindByID(experienceID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find experience", "experience", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFound("experience entry"))
			return
		}

		var fields map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("experience", err))
			return
		}

		entry, err := h.experienceRepo.Patch(experienceID, fields)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update experience", "experience", err))
			return
		}

		h.logger.Info().Str("experienceID", experienceID.String()).Msg("Updated experience entry")
		h.responder.WriteJSON(w, entry)
	}
}

// deleteExperience removes an experience entry
// @Summary Delete experience
// @Description Permanently deletes an experience entry
// @Tags Resume
// @Accept json
// @Produce json
// @Param experienceID path string true "Experience ID" format(uuid)
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid experienceID"
// @Failure 404 {object} ErrorResponse "Not Found - Entry not found"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error deleting entry"
// @Router /admin/experience/{experienceID} [delete]
func (h resumeHandler) deleteExperience() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Authentication handled by middleware

		experienceID, err := uuid.Parse(chi.URLParam(r, "experienceID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewInvalidFieldError("experienceID", "must be a valid UUID"))
			return
		}

		existing, err := h.experienceRepo.FindByID(experienceID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find experience", "experience", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFound("experience entry"))
			return
		}

		if err := h.experienceRepo.Delete(experienceID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete experience", "experience", err))
			return
		}

		h.logger.Info().Str("experienceID", experienceID.String()).Msg("Deleted experience entry")
		w.WriteHeader(http.StatusNoContent)
	}
}

// getAllEducation retrieves all education entries
// @Summary Get all education
// @Description Retrieves every education entry, ordered by sort rank
// @Tags Resume
// @Accept json
// @Produce json
// @Success 200 {object} EducationCollection "List of education entries"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error fetching education"
// @Router /admin/education [get]
func (h resumeHandler) getAllEducation() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Authentication handled by middleware

		entries, err := h.educationRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find education", "education", err))
			return
		}

		h.responder.WriteJSON(w, EducationCollection{Education: entries, Total: len(entries)})
	}
}

// createEducation creates a new education entry
// @Summary Create education
// @Description Creates a new education entry
// @Tags Resume
// @Accept json
// @Produce json
// @Param entry body models.Education true "Education entry to create"
// @Success 201 {object} models.Education "Created entry"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid payload"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error creating entry"
// @Router /admin/education [post]
func (h resumeHandler) createEducation() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Authentication handled by middleware

		var entry models.Education
		if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("education", err))
			return
		}

		if entry.Title == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("title"))
			return
		}
		if entry.Institution == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("institution"))
			return
		}
		entry.CoerceYear()
		if entry.Year == 0 {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("year"))
			return
		}

		if err := h.educationRepo.Add(&entry); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create education", "education", err))
			return
		}

		h.logger.Info().Str("educationID", entry.ID.String()).Msg("Created education entry")
		h.responder.WriteJSONStatus(w, http.StatusCreated, entry)
	}
}

// updateEducation applies a partial update to an education entry
// @Summary Update education
// @Description Updates the provided fields of an education entry
// @Tags Resume
// @Accept json
// @Produce json
// @Param educationID path string true "Education ID" format(uuid)
// @Param fields body object true "Fields to update"
// @Success 200 {object} models.Education "Updated entry"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid payload"
// @Failure 404 {object} ErrorResponse "Not Found - Entry not found"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error updating entry"
// @Router /admin/education/{educationID} [put]
func (h resumeHandler) updateEducation() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Authentication handled by middleware

		educationID, err := uuid.Parse(chi.URLParam(r, "educationID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewInvalidFieldError("educationID", "must be a valid UUID"))
			return
		}

		existing, err := h.educationRepo.FindByID(educationID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find education", "education", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFound("education entry"))
			return
		}

		var fields map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("education", err))
			return
		}

		entry, err := h.educationRepo.Patch(educationID, fields)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update education", "education", err))
			return
		}

		h.logger.Info().Str("educationID", educationID.String()).Msg("Updated education entry")
		h.responder.WriteJSON(w, entry)
	}
}

// deleteEducation removes an education entry
// @Summary Delete education
// @Description Permanently deletes an education entry
// @Tags Resume
// @Accept json
// @Produce json
// @Param educationID path string true "Education ID" format(uuid)
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid educationID"
// @Failure 404 {object} ErrorResponse "Not Found - Entry not found"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error deleting entry"
// @Router /admin/education/{educationID} [delete]
func (h resumeHandler) deleteEducation() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Authentication handled by middleware

		educationID, err := uuid.Parse(chi.URLParam(r, "educationID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewInvalidFieldError("educationID", "must be a valid UUID"))
			return
		}

		existing, err := h.educationRepo.FindByID(educationID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find education", "education", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFound("education entry"))
			return
		}

		if err := h.educationRepo.Delete(educationID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete education", "education", err))
			return
		}

		h.logger.Info().Str("educationID", educationID.String()).Msg("Deleted education entry")
		w.WriteHeader(http.StatusNoContent)
	}
}

// getProfile retrieves the owner profile
// @Summary Get profile
// @Description Retrieves the owner profile, falling back to defaults when none exists
// @Tags Resume
// @Accept json
// @Produce json
// @Success 200 {object} models.Profile "Owner profile"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error fetching profile"
// @Router /admin/profile [get]
func (h resumeHandler) getProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Authentication handled by middleware

		profile, err := h.profileRepo.Find()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find profile", "profile", err))
			return
		}
		if profile == nil {
			profile = models.DefaultProfile()
		}

		h.responder.WriteJSON(w, profile)
	}
}

// updateProfile upserts the owner profile
// @Summary Update profile
// @Description Updates the owner profile, creating the row on first write
// @Tags Resume
// @Accept json
// @Produce json
// @Param fields body object true "Fields to update"
// @Success 200 {object} models.Profile "Updated profile"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid payload"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error updating profile"
// @Router /admin/profile [put]
func (h resumeHandler) updateProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Authentication handled by middleware

		var fields map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("profile", err))
			return
		}

		if raw, ok := fields["name"]; ok {
			if s, ok := raw.(string); !ok || s == "" {
				h.responder.WriteError(w, errs.NewInvalidFieldError("name", "must be a non-empty string"))
				return
			}
		}
		if raw, ok := fields["title"]; ok {
			if s, ok := raw.(string); !ok || s == "" {
				h.responder.WriteError(w, errs.NewInvalidFieldError("title", "must be a non-empty string"))
				return
			}
		}

		profile, err := h.profileRepo.Upsert(fields)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update profile", "profile", err))
			return
		}

		h.logger.Info().Msg("Updated profile")
		h.responder.WriteJSON(w, profile)
	}
}
