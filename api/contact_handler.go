package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-cms-backend/database"
	"github.com/rpupo63/portfolio-cms-backend/errs"
	"github.com/rpupo63/portfolio-cms-backend/models"
	"github.com/rpupo63/portfolio-cms-backend/services"
)

type contactHandler struct {
	responder Responder
	logger    zerolog.Logger
	repo      *database.ContactSubmissionRepo
}

func newContactHandler(repo *database.ContactSubmissionRepo) contactHandler {
	logger := log.With().Str("handlerName", "contactHandler").Logger()

	return contactHandler{
		responder: NewResponder(logger),
		logger:    logger,
		repo:      repo,
	}
}

// createSubmission records an inbound contact-form message
// @Summary Submit contact form
// @Description Records a contact-form submission and notifies the site owner
// @Tags Contact
// @Accept json
// @Produce json
// @Param submission body models.ContactSubmission true "Contact submission"
// @Success 201 {object} models.ContactSubmission "Recorded submission"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid payload"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error recording submission"
// @Router /contact [post]
func (h contactHandler) createSubmission() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var submission models.ContactSubmission
		if err := json.NewDecoder(r.Body).Decode(&submission); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("contact submission", err))
			return
		}

		// All four required fields are checked before anything is stored,
		// so a rejected submission leaves no partial row behind.
		if strings.TrimSpace(submission.FirstName) == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("first_name"))
			return
		}
		if strings.TrimSpace(submission.LastName) == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("last_name"))
			return
		}
		if strings.TrimSpace(submission.Email) == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("email"))
			return
		}
		if !strings.Contains(submission.Email, "@") {
			h.responder.WriteError(w, errs.NewInvalidFieldError("email", "must be a valid email address"))
			return
		}
		if strings.TrimSpace(submission.Message) == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("message"))
			return
		}

		if err := h.repo.Add(&submission); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create contact submission", "contact_submissions", err))
			return
		}

		// Notification is best effort. The submission is already durable,
		// so a mail failure must not fail the request.
		go func(s models.ContactSubmission) {
			if err := services.SendContactNotification(&s); err != nil {
				h.logger.Error().Err(err).Msg("Failed to send contact notification")
			}
		}(submission)

		h.logger.Info().Str("submissionID", submission.ID.String()).Msg("Recorded contact submission")
		h.responder.WriteJSONStatus(w, http.StatusCreated, submission)
	}
}
