package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-cms-backend/database"
	"github.com/rpupo63/portfolio-cms-backend/errs"
	"github.com/rpupo63/portfolio-cms-backend/models"
	"github.com/rpupo63/portfolio-cms-backend/views"
)

// pagesHandler serves the visitor-facing pages: merged listings, slug
// detail resolution, the homepage selection, and the assembled resume.
type pagesHandler struct {
	responder      Responder
	logger         zerolog.Logger
	projectRepo    *database.ProjectRepo
	seriesRepo     *database.SeriesRepo
	ventureRepo    *database.VentureRepo
	experienceRepo *database.ExperienceRepo
	educationRepo  *database.EducationRepo
	profileRepo    *database.ProfileRepo
}

func newPagesHandler(db database.Database) pagesHandler {
	logger := log.With().Str("handlerName", "pagesHandler").Logger()

	return pagesHandler{
		responder:      NewResponder(logger),
		logger:         logger,
		projectRepo:    db.ProjectRepo(),
		seriesRepo:     db.SeriesRepo(),
		ventureRepo:    db.VentureRepo(),
		experienceRepo: db.ExperienceRepo(),
		educationRepo:  db.EducationRepo(),
		profileRepo:    db.ProfileRepo(),
	}
}

// loadSnapshot fetches the three slug-namespace collections. A failed
// fetch leaves its readiness flag unset and degrades to an empty slice;
// listings render what loaded, while detail resolution stays pending.
func (h pagesHandler) loadSnapshot() views.Snapshot {
	var snap views.Snapshot

	if projects, err := h.projectRepo.FindVisible(); err != nil {
		h.logger.Error().Err(err).Msg("Failed to fetch projects")
	} else {
		snap.Projects = projects
		snap.ProjectsReady = true
	}

	if ventures, err := h.ventureRepo.FindVisible(); err != nil {
		h.logger.Error().Err(err).Msg("Failed to fetch ventures")
	} else {
		snap.Ventures = ventures
		snap.VenturesReady = true
	}

	if series, err := h.seriesRepo.FindVisible(); err != nil {
		h.logger.Error().Err(err).Msg("Failed to fetch series")
	} else {
		snap.Series = series
		snap.SeriesReady = true
	}

	return snap
}

// getDesignWork returns the merged design-work listing: standalone
// projects and series interleaved by their shared sort rank.
func (h pagesHandler) getDesignWork() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap := h.loadSnapshot()
		items := views.DesignWorkListing(snap.Projects, snap.Series)
		h.responder.WriteJSON(w, ListingResponse{Items: items, Total: len(items)})
	}
}

// getVentures returns the merged ventures listing: venture rows,
// Ventures-badged projects, and Ventures-badged series in one ordering.
func (h pagesHandler) getVentures() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap := h.loadSnapshot()
		items := views.VenturesListing(snap.Ventures, snap.Projects, snap.Series)
		h.responder.WriteJSON(w, ListingResponse{Items: items, Total: len(items)})
	}
}

func (h pagesHandler) getDesignWorkDetail() http.HandlerFunc {
	return h.detail(models.CoarseDesignWork)
}

func (h pagesHandler) getVenturesDetail() http.HandlerFunc {
	return h.detail(models.CoarseVentures)
}

// detail resolves a slug against the three collections of one routing
// namespace. While any collection is unavailable the request is answered
// 503 rather than a false 404; not-found is only reported once every
// source has resolved.
func (h pagesHandler) detail(coarse models.CoarseBadge) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")
		if slug == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing slug"))
			return
		}

		snap := h.loadSnapshot()
		resolution := views.Resolve(slug, coarse, snap)

		switch resolution.State {
		case views.ResolutionPending:
			h.responder.WriteError(w, errs.NewServiceUnavailableError("content is temporarily unavailable"))

		case views.ResolutionSeries:
			members, err := h.projectRepo.FindBySeriesID(resolution.Series.ID)
			if err != nil {
				h.responder.WriteError(w, wrapDatabaseError("find series projects", "projects", err))
				return
			}
			rendered := make([]*models.Project, 0, len(members))
			for _, member := range members {
				rendered = append(rendered, forReader(member))
			}
			h.responder.WriteJSON(w, DetailResponse{
				Kind:           views.ItemSeries,
				Series:         resolution.Series,
				SeriesProjects: rendered,
			})

		case views.ResolutionProject:
			var related []*models.Project
			if coarse == models.CoarseVentures {
				related = views.RelatedVentures(snap.Projects, resolution.Project)
			} else {
				related = views.RelatedProjects(snap.Projects, resolution.Project)
			}
			// Display paths receive rendered content: stored HTML passes
			// through, plain text gets the constrained markdown formatting.
			h.responder.WriteJSON(w, DetailResponse{
				Kind:            views.ItemProject,
				Project:         forReader(resolution.Project),
				RelatedProjects: related,
			})

		case views.ResolutionVenture:
			h.responder.WriteJSON(w, DetailResponse{
				Kind:            views.ItemVenture,
				Venture:         resolution.Venture,
				RelatedVentures: views.RelatedVentureRows(snap.Ventures, resolution.Venture),
			})

		default:
			h.responder.WriteError(w, errs.NewNotFoundError("page not found"))
		}
	}
}

// getHomepageFeatured returns the homepage project selection.
func (h pagesHandler) getHomepageFeatured() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := h.projectRepo.FindVisible()
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to fetch projects")
			projects = nil
		}
		featured := views.HomepageFeatured(projects)
		h.responder.WriteJSON(w, FeaturedResponse{Projects: featured, Total: len(featured)})
	}
}

// getResume returns the assembled resume page: profile (with fallback),
// experience, and education.
func (h pagesHandler) getResume() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profile, err := h.profileRepo.Find()
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to fetch profile")
			profile = nil
		}

		experience, err := h.experienceRepo.FindAll()
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to fetch experience")
			experience = nil
		}

		education, err := h.educationRepo.FindAll()
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to fetch education")
			education = nil
		}

		h.responder.WriteJSON(w, views.ResumeView(profile, experience, education))
	}
}
