package views

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpupo63/portfolio-cms-backend/models"
)

func readySnapshot(projects []*models.Project, ventures []*models.Venture, series []*models.Series) Snapshot {
	return Snapshot{
		Projects:      projects,
		Ventures:      ventures,
		Series:        series,
		ProjectsReady: true,
		VenturesReady: true,
		SeriesReady:   true,
	}
}

func TestResolvePendingWhileAnyCollectionUnready(t *testing.T) {
	snap := readySnapshot(nil, nil, nil)
	snap.VenturesReady = false

	// An unready snapshot must report pending, never a false not-found.
	res := Resolve("anything", models.CoarseVentures, snap)
	assert.Equal(t, ResolutionPending, res.State)
}

func TestResolveEmptySlug(t *testing.T) {
	res := Resolve("", models.CoarseDesignWork, readySnapshot(nil, nil, nil))
	assert.Equal(t, ResolutionNotFound, res.State)
}

func TestResolveNotFoundOnlyWhenReady(t *testing.T) {
	res := Resolve("missing", models.CoarseDesignWork, readySnapshot(nil, nil, nil))
	assert.Equal(t, ResolutionNotFound, res.State)
}

func TestResolveSeriesBeforeProject(t *testing.T) {
	series := testSeries(models.CoarseDesignWork, 1)
	series.URLSlug = "shared"
	project := testProject(models.FineUXDesign, 1)
	project.URLSlug = "shared"

	res := Resolve("shared", models.CoarseDesignWork,
		readySnapshot([]*models.Project{project}, nil, []*models.Series{series}))

	require.Equal(t, ResolutionSeries, res.State)
	assert.Equal(t, series.ID, res.Series.ID)
}

func TestResolveSeriesScopedToNamespace(t *testing.T) {
	series := testSeries(models.CoarseVentures, 1)
	series.URLSlug = "crossover"

	res := Resolve("crossover", models.CoarseDesignWork,
		readySnapshot(nil, nil, []*models.Series{series}))

	assert.Equal(t, ResolutionNotFound, res.State)
}

func TestResolveVenturesNamespacePrefersVentureRow(t *testing.T) {
	venture := testVenture(1)
	venture.URLSlug = "shared"
	project := testProject(models.FineVentures, 1)
	project.URLSlug = "shared"

	res := Resolve("shared", models.CoarseVentures,
		readySnapshot([]*models.Project{project}, []*models.Venture{venture}, nil))

	require.Equal(t, ResolutionVenture, res.State)
	assert.Equal(t, venture.ID, res.Venture.ID)
}

func TestResolveVenturesNamespaceFallsBackToProject(t *testing.T) {
	project := testProject(models.FineVentures, 1)
	project.URLSlug = "only-project"

	res := Resolve("only-project", models.CoarseVentures,
		readySnapshot([]*models.Project{project}, nil, nil))

	require.Equal(t, ResolutionProject, res.State)
	assert.Equal(t, project.ID, res.Project.ID)
}

func TestResolveVenturesNamespaceIgnoresDesignProjects(t *testing.T) {
	project := testProject(models.FineUXDesign, 1)
	project.URLSlug = "design-only"

	res := Resolve("design-only", models.CoarseVentures,
		readySnapshot([]*models.Project{project}, nil, nil))

	assert.Equal(t, ResolutionNotFound, res.State)
}

func TestResolveDesignNamespaceMatchesProject(t *testing.T) {
	project := testProject(models.FineUXStrategy, 1)
	project.URLSlug = "case-study"

	res := Resolve("case-study", models.CoarseDesignWork,
		readySnapshot([]*models.Project{project}, nil, nil))

	require.Equal(t, ResolutionProject, res.State)
	assert.Equal(t, project.ID, res.Project.ID)
}

func TestResumeViewFallsBackToDefaultProfile(t *testing.T) {
	resume := ResumeView(nil, nil, nil)

	require.NotNil(t, resume.Profile)
	assert.Equal(t, "Portfolio Owner", resume.Profile.Name)
	assert.NotNil(t, resume.Experience)
	assert.NotNil(t, resume.Education)
}

func TestResumeViewKeepsProvidedProfile(t *testing.T) {
	profile := &models.Profile{Name: "Someone", Title: "Engineer"}

	resume := ResumeView(profile, nil, nil)

	assert.Equal(t, "Someone", resume.Profile.Name)
}
