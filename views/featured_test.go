package views

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpupo63/portfolio-cms-backend/models"
)

func featuredProject(order *int) *models.Project {
	return &models.Project{
		ID:                   uuid.New(),
		Title:                "featured",
		BadgeType:            models.FineUXDesign,
		IsVisible:            true,
		ShowOnHomepage:       true,
		HomepageDisplayOrder: order,
	}
}

func intPtr(n int) *int {
	return &n
}

func TestHomepageFeaturedOrderingAndCap(t *testing.T) {
	orders := []*int{nil, intPtr(5), intPtr(1), nil, intPtr(3), intPtr(8), intPtr(2), nil, intPtr(4), intPtr(9)}
	projects := make([]*models.Project, 0, len(orders))
	for _, o := range orders {
		projects = append(projects, featuredProject(o))
	}

	featured := HomepageFeatured(projects)

	require.Len(t, featured, 8)

	got := make([]int, 0, len(featured))
	for _, p := range featured {
		if p.HomepageDisplayOrder == nil {
			got = append(got, 0)
			continue
		}
		got = append(got, *p.HomepageDisplayOrder)
	}
	// Numbered entries ascend; the unranked fill the remaining slots.
	assert.Equal(t, []int{1, 2, 3, 4, 5, 8, 9, 0}, got)
}

func TestHomepageFeaturedZeroOrderTreatedAsUnranked(t *testing.T) {
	ranked := featuredProject(intPtr(2))
	zero := featuredProject(intPtr(0))

	featured := HomepageFeatured([]*models.Project{zero, ranked})

	require.Len(t, featured, 2)
	assert.Equal(t, ranked.ID, featured[0].ID)
	assert.Equal(t, zero.ID, featured[1].ID)
}

func TestHomepageFeaturedSkipsHiddenAndUnflagged(t *testing.T) {
	hidden := featuredProject(intPtr(1))
	hidden.IsVisible = false
	unflagged := featuredProject(intPtr(2))
	unflagged.ShowOnHomepage = false
	shown := featuredProject(intPtr(3))

	featured := HomepageFeatured([]*models.Project{hidden, unflagged, shown})

	require.Len(t, featured, 1)
	assert.Equal(t, shown.ID, featured[0].ID)
}

func TestHomepageFeaturedStableForTies(t *testing.T) {
	a := featuredProject(nil)
	b := featuredProject(nil)
	c := featuredProject(nil)

	featured := HomepageFeatured([]*models.Project{a, b, c})

	require.Len(t, featured, 3)
	assert.Equal(t, a.ID, featured[0].ID)
	assert.Equal(t, b.ID, featured[1].ID)
	assert.Equal(t, c.ID, featured[2].ID)
}
