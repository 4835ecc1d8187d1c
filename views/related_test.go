package views

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpupo63/portfolio-cms-backend/models"
)

func ventureRow(title string, sortOrder int) *models.Venture {
	return &models.Venture{
		ID:        uuid.New(),
		Title:     title,
		IsVisible: true,
		SortOrder: sortOrder,
	}
}

func ventureTitles(ventures []*models.Venture) []string {
	titles := make([]string, 0, len(ventures))
	for _, v := range ventures {
		titles = append(titles, v.Title)
	}
	return titles
}

func rankedVentures() []*models.Venture {
	return []*models.Venture{
		ventureRow("a", 10),
		ventureRow("b", 20),
		ventureRow("c", 30),
		ventureRow("d", 40),
		ventureRow("e", 50),
	}
}

func TestRelatedVentureRowsFirstEntry(t *testing.T) {
	all := rankedVentures()
	related := RelatedVentureRows(all, all[0])
	assert.Equal(t, []string{"b", "c", "d"}, ventureTitles(related))
}

func TestRelatedVentureRowsMiddleEntry(t *testing.T) {
	all := rankedVentures()
	related := RelatedVentureRows(all, all[2])
	assert.Equal(t, []string{"b", "d", "e"}, ventureTitles(related))
}

func TestRelatedVentureRowsLastEntry(t *testing.T) {
	all := rankedVentures()
	related := RelatedVentureRows(all, all[4])
	assert.Equal(t, []string{"b", "c", "d"}, ventureTitles(related))
}

func TestRelatedVentureRowsFewEntries(t *testing.T) {
	all := []*models.Venture{
		ventureRow("a", 10),
		ventureRow("b", 20),
	}
	related := RelatedVentureRows(all, all[0])
	assert.Equal(t, []string{"b"}, ventureTitles(related))
}

func TestRelatedVentureRowsSkipsHidden(t *testing.T) {
	all := rankedVentures()
	all[1].IsVisible = false
	related := RelatedVentureRows(all, all[0])
	assert.Equal(t, []string{"c", "d", "e"}, ventureTitles(related))
}

func TestRelatedVenturesUsesVentureBadgeOnly(t *testing.T) {
	current := testProject(models.FineVentures, 30)
	other := testProject(models.FineVentures, 40)
	design := testProject(models.FineUXDesign, 35)

	related := RelatedVentures([]*models.Project{current, other, design}, current)

	require.Len(t, related, 1)
	assert.Equal(t, other.ID, related[0].ID)
}

func TestRelatedProjectsSameFineBadge(t *testing.T) {
	current := testProject(models.FineUXDesign, 1)
	same := testProject(models.FineUXDesign, 2)
	otherBadge := testProject(models.FineUXStrategy, 3)
	hidden := testProject(models.FineUXDesign, 4)
	hidden.IsVisible = false

	related := RelatedProjects([]*models.Project{current, same, otherBadge, hidden}, current)

	require.Len(t, related, 1)
	assert.Equal(t, same.ID, related[0].ID)
}

func TestRelatedProjectsCapsAtThree(t *testing.T) {
	current := testProject(models.FineManager, 0)
	pool := []*models.Project{current}
	for i := 0; i < 5; i++ {
		pool = append(pool, testProject(models.FineManager, i+1))
	}

	related := RelatedProjects(pool, current)

	require.Len(t, related, 3)
	assert.Equal(t, pool[1].ID, related[0].ID)
	assert.Equal(t, pool[2].ID, related[1].ID)
	assert.Equal(t, pool[3].ID, related[2].ID)
}
