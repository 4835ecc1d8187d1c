// Package views assembles the filtered, merged, and ordered collections
// each page renders. Everything here is a pure function over collections
// already fetched by the database layer; the store offers no server-side
// join across the projects, series, and ventures tables, so the relational
// work happens in memory.
package views

import (
	"sort"

	"github.com/rpupo63/portfolio-cms-backend/models"
)

// ItemKind discriminates the three shapes that can appear in one listing.
type ItemKind string

const (
	ItemProject ItemKind = "project"
	ItemSeries  ItemKind = "series"
	ItemVenture ItemKind = "venture"
)

// ListingItem is one card on a listing page. Exactly one of the three
// pointers is set, indicated by Kind; renderers switch on Kind rather than
// sniffing field presence.
type ListingItem struct {
	Kind    ItemKind        `json:"kind"`
	Project *models.Project `json:"project,omitempty"`
	Series  *models.Series  `json:"series,omitempty"`
	Venture *models.Venture `json:"venture,omitempty"`
}

// SortOrder returns the shared numeric display rank of the item.
func (it ListingItem) SortOrder() int {
	switch it.Kind {
	case ItemProject:
		return it.Project.SortOrder
	case ItemSeries:
		return it.Series.SortOrder
	case ItemVenture:
		return it.Venture.SortOrder
	}
	return 0
}

// DesignWorkListing merges standalone Design Work projects with Design
// Work series into one globally ordered sequence. Projects belonging to a
// series are excluded; they surface only through their series card. The
// merged set is sorted as a whole so a series and an unrelated project
// interleave by their shared rank instead of grouping by type.
func DesignWorkListing(projects []*models.Project, series []*models.Series) []ListingItem {
	items := make([]ListingItem, 0, len(projects)+len(series))

	for _, p := range projects {
		if !p.IsVisible || p.InSeries() {
			continue
		}
		if p.BadgeType.Coarse() != models.CoarseDesignWork {
			continue
		}
		items = append(items, ListingItem{Kind: ItemProject, Project: p})
	}
	for _, s := range series {
		if !s.IsVisible || s.BadgeType != models.CoarseDesignWork {
			continue
		}
		items = append(items, ListingItem{Kind: ItemSeries, Series: s})
	}

	sortListing(items)
	return items
}

// VenturesListing merges three sets onto one page: venture rows,
// Ventures-badged standalone projects, and Ventures-badged series, all
// globally ordered by rank.
func VenturesListing(ventures []*models.Venture, projects []*models.Project, series []*models.Series) []ListingItem {
	items := make([]ListingItem, 0, len(ventures)+len(projects)+len(series))

	for _, v := range ventures {
		if !v.IsVisible {
			continue
		}
		items = append(items, ListingItem{Kind: ItemVenture, Venture: v})
	}
	for _, p := range projects {
		if !p.IsVisible || p.InSeries() {
			continue
		}
		if p.BadgeType.Coarse() != models.CoarseVentures {
			continue
		}
		items = append(items, ListingItem{Kind: ItemProject, Project: p})
	}
	for _, s := range series {
		if !s.IsVisible || s.BadgeType != models.CoarseVentures {
			continue
		}
		items = append(items, ListingItem{Kind: ItemSeries, Series: s})
	}

	sortListing(items)
	return items
}

func sortListing(items []ListingItem) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].SortOrder() < items[j].SortOrder()
	})
}
