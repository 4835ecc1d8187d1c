package views

import (
	"github.com/rpupo63/portfolio-cms-backend/models"
)

// ResolutionState is the outcome of resolving a URL slug against the three
// collections sharing a routing namespace.
type ResolutionState string

const (
	// ResolutionPending means at least one source collection has not
	// resolved yet. A pending slug is never reported as not found.
	ResolutionPending  ResolutionState = "pending"
	ResolutionSeries   ResolutionState = "series"
	ResolutionProject  ResolutionState = "project"
	ResolutionVenture  ResolutionState = "venture"
	ResolutionNotFound ResolutionState = "not_found"
)

// Snapshot carries the three slug-namespace collections together with
// per-collection readiness. A collection whose fetch failed is not ready;
// resolution stays pending rather than producing a false not-found.
type Snapshot struct {
	Projects []*models.Project
	Ventures []*models.Venture
	Series   []*models.Series

	ProjectsReady bool
	VenturesReady bool
	SeriesReady   bool
}

// Ready reports whether every source collection has resolved.
func (s Snapshot) Ready() bool {
	return s.ProjectsReady && s.VenturesReady && s.SeriesReady
}

// Resolution identifies which of the three shapes a slug names. The
// pointer matching State is set; the others are nil.
type Resolution struct {
	State   ResolutionState
	Series  *models.Series
	Project *models.Project
	Venture *models.Venture
}

// Resolve disambiguates a slug within one routing namespace. Series are
// checked first, then the namespace's project slug space, then (for the
// ventures namespace) the ventures table. Matching is exact; no
// case-insensitive leniency.
func Resolve(slug string, coarse models.CoarseBadge, snap Snapshot) Resolution {
	if slug == "" {
		return Resolution{State: ResolutionNotFound}
	}
	if !snap.Ready() {
		return Resolution{State: ResolutionPending}
	}

	for _, s := range snap.Series {
		if s.URLSlug == slug && s.BadgeType == coarse {
			return Resolution{State: ResolutionSeries, Series: s}
		}
	}

	if coarse == models.CoarseVentures {
		for _, v := range snap.Ventures {
			if v.URLSlug == slug {
				return Resolution{State: ResolutionVenture, Venture: v}
			}
		}
		for _, p := range snap.Projects {
			if p.URLSlug == slug && p.BadgeType.Coarse() == models.CoarseVentures {
				return Resolution{State: ResolutionProject, Project: p}
			}
		}
		return Resolution{State: ResolutionNotFound}
	}

	for _, p := range snap.Projects {
		if p.URLSlug == slug {
			return Resolution{State: ResolutionProject, Project: p}
		}
	}
	return Resolution{State: ResolutionNotFound}
}
