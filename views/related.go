package views

import (
	"sort"

	"github.com/rpupo63/portfolio-cms-backend/models"
)

const maxRelatedItems = 3

// RelatedProjects selects up to three other visible projects sharing the
// current project's fine badge, in the order the input collection carries
// them. No relevance ranking beyond the badge match.
func RelatedProjects(projects []*models.Project, current *models.Project) []*models.Project {
	related := make([]*models.Project, 0, maxRelatedItems)
	for _, p := range projects {
		if p.ID == current.ID || !p.IsVisible || p.BadgeType != current.BadgeType {
			continue
		}
		related = append(related, p)
		if len(related) == maxRelatedItems {
			break
		}
	}
	return related
}

// RelatedVentures selects the ventures-badged projects adjacent in sort
// rank to the current one. Unlike RelatedProjects this is a neighbor
// heuristic: one entry before the current rank and up to two after, with
// first/last-three fallbacks at the extremities.
func RelatedVentures(projects []*models.Project, current *models.Project) []*models.Project {
	others := make([]*models.Project, 0, len(projects))
	for _, p := range projects {
		if p.ID == current.ID || !p.IsVisible || p.BadgeType != models.FineVentures {
			continue
		}
		others = append(others, p)
	}
	sort.SliceStable(others, func(i, j int) bool {
		return others[i].SortOrder < others[j].SortOrder
	})

	return neighbors(others, func(p *models.Project) int { return p.SortOrder }, current.SortOrder)
}

// RelatedVentureRows applies the same neighbor heuristic to rows of the
// ventures table.
func RelatedVentureRows(ventures []*models.Venture, current *models.Venture) []*models.Venture {
	others := make([]*models.Venture, 0, len(ventures))
	for _, v := range ventures {
		if v.ID == current.ID || !v.IsVisible {
			continue
		}
		others = append(others, v)
	}
	sort.SliceStable(others, func(i, j int) bool {
		return others[i].SortOrder < others[j].SortOrder
	})

	return neighbors(others, func(v *models.Venture) int { return v.SortOrder }, current.SortOrder)
}

// neighbors picks up to three entries around the current rank from an
// ascending-sorted slice: the first entry ranked above the current marks
// the split; one entry before it and two from it onward are taken. A
// current rank above every entry falls back to the last three, and one
// below every entry to the first three.
func neighbors[T any](sorted []T, order func(T) int, currentOrder int) []T {
	idx := -1
	for i, item := range sorted {
		if order(item) > currentOrder {
			idx = i
			break
		}
	}

	switch {
	case idx == -1:
		if len(sorted) > maxRelatedItems {
			return sorted[len(sorted)-maxRelatedItems:]
		}
		return sorted
	case idx == 0:
		if len(sorted) > maxRelatedItems {
			return sorted[:maxRelatedItems]
		}
		return sorted
	default:
		related := make([]T, 0, maxRelatedItems)
		related = append(related, sorted[idx-1])
		end := idx + 2
		if end > len(sorted) {
			end = len(sorted)
		}
		related = append(related, sorted[idx:end]...)
		if len(related) > maxRelatedItems {
			related = related[:maxRelatedItems]
		}
		return related
	}
}
