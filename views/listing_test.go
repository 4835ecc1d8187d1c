package views

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpupo63/portfolio-cms-backend/models"
)

func testProject(badge models.FineBadge, sortOrder int) *models.Project {
	return &models.Project{
		ID:        uuid.New(),
		Title:     "project",
		BadgeType: badge,
		IsVisible: true,
		SortOrder: sortOrder,
	}
}

func testSeries(badge models.CoarseBadge, sortOrder int) *models.Series {
	return &models.Series{
		ID:        uuid.New(),
		Title:     "series",
		BadgeType: badge,
		IsVisible: true,
		SortOrder: sortOrder,
	}
}

func testVenture(sortOrder int) *models.Venture {
	return &models.Venture{
		ID:        uuid.New(),
		Title:     "venture",
		IsVisible: true,
		SortOrder: sortOrder,
	}
}

func TestDesignWorkListingInterleavesByRank(t *testing.T) {
	first := testProject(models.FineUXDesign, 1)
	middle := testSeries(models.CoarseDesignWork, 2)
	last := testProject(models.FineUXStrategy, 3)

	items := DesignWorkListing([]*models.Project{last, first}, []*models.Series{middle})

	require.Len(t, items, 3)
	assert.Equal(t, ItemProject, items[0].Kind)
	assert.Equal(t, first.ID, items[0].Project.ID)
	assert.Equal(t, ItemSeries, items[1].Kind)
	assert.Equal(t, middle.ID, items[1].Series.ID)
	assert.Equal(t, ItemProject, items[2].Kind)
	assert.Equal(t, last.ID, items[2].Project.ID)
}

func TestDesignWorkListingExcludesSeriesMembers(t *testing.T) {
	series := testSeries(models.CoarseDesignWork, 1)
	member := testProject(models.FineUXDesign, 2)
	member.SeriesID = &series.ID
	standalone := testProject(models.FineUXDesign, 3)

	items := DesignWorkListing([]*models.Project{member, standalone}, []*models.Series{series})

	require.Len(t, items, 2)
	assert.Equal(t, ItemSeries, items[0].Kind)
	assert.Equal(t, standalone.ID, items[1].Project.ID)
}

func TestDesignWorkListingExcludesVenturesBadge(t *testing.T) {
	design := testProject(models.FineManager, 1)
	venture := testProject(models.FineVentures, 2)

	items := DesignWorkListing([]*models.Project{design, venture}, nil)

	require.Len(t, items, 1)
	assert.Equal(t, design.ID, items[0].Project.ID)
}

func TestDesignWorkListingExcludesHidden(t *testing.T) {
	hidden := testProject(models.FineUXDesign, 1)
	hidden.IsVisible = false
	hiddenSeries := testSeries(models.CoarseDesignWork, 2)
	hiddenSeries.IsVisible = false

	items := DesignWorkListing([]*models.Project{hidden}, []*models.Series{hiddenSeries})

	assert.Empty(t, items)
}

func TestVenturesListingMergesThreeSources(t *testing.T) {
	venture := testVenture(1)
	project := testProject(models.FineVentures, 2)
	series := testSeries(models.CoarseVentures, 3)
	designProject := testProject(models.FineUXDesign, 0)
	designSeries := testSeries(models.CoarseDesignWork, 0)

	items := VenturesListing(
		[]*models.Venture{venture},
		[]*models.Project{project, designProject},
		[]*models.Series{series, designSeries},
	)

	require.Len(t, items, 3)
	assert.Equal(t, ItemVenture, items[0].Kind)
	assert.Equal(t, ItemProject, items[1].Kind)
	assert.Equal(t, ItemSeries, items[2].Kind)
}

func TestVenturesListingGlobalOrdering(t *testing.T) {
	late := testVenture(10)
	early := testProject(models.FineVentures, 1)

	items := VenturesListing([]*models.Venture{late}, []*models.Project{early}, nil)

	require.Len(t, items, 2)
	assert.Equal(t, ItemProject, items[0].Kind)
	assert.Equal(t, ItemVenture, items[1].Kind)
}
