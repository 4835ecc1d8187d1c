package api

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpupo63/portfolio-cms-backend/models"
)

func seriesMember(badge models.FineBadge) *models.Project {
	seriesID := uuid.New()
	return &models.Project{
		ID:        uuid.New(),
		Title:     "member",
		BadgeType: badge,
		URLSlug:   "member",
		SeriesID:  &seriesID,
	}
}

func TestPlanProjectPatchBadgeChangeRechecksExistingSeries(t *testing.T) {
	existing := seriesMember(models.FineUXDesign)

	plan, err := planProjectPatch(existing, map[string]interface{}{
		"badgeType": string(models.FineVentures),
	})

	require.NoError(t, err)
	assert.Equal(t, models.FineVentures, plan.badge)
	require.NotNil(t, plan.seriesID)
	assert.Equal(t, *existing.SeriesID, *plan.seriesID)
}

func TestPlanProjectPatchSameBadgeSkipsSeriesCheck(t *testing.T) {
	existing := seriesMember(models.FineUXDesign)

	plan, err := planProjectPatch(existing, map[string]interface{}{
		"badgeType": string(models.FineUXDesign),
	})

	require.NoError(t, err)
	assert.Nil(t, plan.seriesID)
}

func TestPlanProjectPatchBadgeChangeOutsideSeriesNeedsNoCheck(t *testing.T) {
	existing := &models.Project{
		ID:        uuid.New(),
		BadgeType: models.FineUXDesign,
		URLSlug:   "standalone",
	}

	plan, err := planProjectPatch(existing, map[string]interface{}{
		"badgeType": string(models.FineManager),
	})

	require.NoError(t, err)
	assert.Equal(t, models.FineManager, plan.badge)
	assert.Nil(t, plan.seriesID)
}

func TestPlanProjectPatchExplicitSeriesWins(t *testing.T) {
	existing := seriesMember(models.FineUXDesign)
	target := uuid.New()

	plan, err := planProjectPatch(existing, map[string]interface{}{
		"badgeType": string(models.FineVentures),
		"series_id": target.String(),
	})

	require.NoError(t, err)
	require.NotNil(t, plan.seriesID)
	assert.Equal(t, target, *plan.seriesID)
}

func TestPlanProjectPatchNullSeriesDetachesWithoutCheck(t *testing.T) {
	existing := seriesMember(models.FineUXDesign)

	plan, err := planProjectPatch(existing, map[string]interface{}{
		"badgeType": string(models.FineVentures),
		"series_id": nil,
	})

	require.NoError(t, err)
	assert.Nil(t, plan.seriesID)
}

func TestPlanProjectPatchRejectsUnknownBadge(t *testing.T) {
	existing := seriesMember(models.FineUXDesign)

	_, err := planProjectPatch(existing, map[string]interface{}{
		"badgeType": "Gardening",
	})

	assert.Error(t, err)
}

func TestPlanProjectPatchRejectsEmptySlug(t *testing.T) {
	existing := seriesMember(models.FineUXDesign)

	_, err := planProjectPatch(existing, map[string]interface{}{
		"url_slug": "",
	})

	assert.Error(t, err)
}

func TestPlanProjectPatchRejectsMalformedSeriesID(t *testing.T) {
	existing := seriesMember(models.FineUXDesign)

	_, err := planProjectPatch(existing, map[string]interface{}{
		"series_id": "not-a-uuid",
	})

	assert.Error(t, err)
}

func TestPlanProjectPatchCarriesSlug(t *testing.T) {
	existing := seriesMember(models.FineUXDesign)

	plan, err := planProjectPatch(existing, map[string]interface{}{
		"url_slug": "renamed",
	})

	require.NoError(t, err)
	assert.Equal(t, "renamed", plan.slug)
	assert.Equal(t, models.FineUXDesign, plan.badge)
}
