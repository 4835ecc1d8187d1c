package views

import (
	"sort"

	"github.com/rpupo63/portfolio-cms-backend/models"
)

// maxHomepageItems caps the featured grid. The admin form suggests display
// orders 1-8 but the store does not enforce that, so the cap is applied
// here rather than trusted.
const maxHomepageItems = 8

// unrankedOrder sorts featured projects without an explicit display order
// after every numbered one.
const unrankedOrder = 999

// HomepageFeatured selects the visible, homepage-flagged projects ordered
// by their display order, unranked entries last, capped at eight.
func HomepageFeatured(projects []*models.Project) []*models.Project {
	featured := make([]*models.Project, 0, len(projects))
	for _, p := range projects {
		if p.ShowOnHomepage && p.IsVisible {
			featured = append(featured, p)
		}
	}

	sort.SliceStable(featured, func(i, j int) bool {
		return displayOrder(featured[i]) < displayOrder(featured[j])
	})

	if len(featured) > maxHomepageItems {
		featured = featured[:maxHomepageItems]
	}
	return featured
}

func displayOrder(p *models.Project) int {
	if p.HomepageDisplayOrder == nil || *p.HomepageDisplayOrder == 0 {
		return unrankedOrder
	}
	return *p.HomepageDisplayOrder
}
