package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFineBadgeCoarseMapping(t *testing.T) {
	assert.Equal(t, CoarseDesignWork, FineUXDesign.Coarse())
	assert.Equal(t, CoarseDesignWork, FineUXStrategy.Coarse())
	assert.Equal(t, CoarseDesignWork, FineManager.Coarse())
	assert.Equal(t, CoarseVentures, FineVentures.Coarse())
}

func TestFineBadgeValid(t *testing.T) {
	for _, b := range []FineBadge{FineUXDesign, FineUXStrategy, FineVentures, FineManager} {
		assert.True(t, b.Valid(), string(b))
	}
	assert.False(t, FineBadge("Design Work").Valid())
	assert.False(t, FineBadge("").Valid())
}

func TestCoarseBadgeValid(t *testing.T) {
	assert.True(t, CoarseDesignWork.Valid())
	assert.True(t, CoarseVentures.Valid())
	assert.False(t, CoarseBadge("UX Design").Valid())
}

func TestFinesForRoundTrips(t *testing.T) {
	for _, coarse := range []CoarseBadge{CoarseDesignWork, CoarseVentures} {
		for _, fine := range FinesFor(coarse) {
			assert.Equal(t, coarse, fine.Coarse())
		}
	}
}

func TestExperienceAssembleDates(t *testing.T) {
	endMonth, endYear := 6, 2023
	entry := Experience{
		StartMonth: 9,
		StartYear:  2020,
		EndMonth:   &endMonth,
		EndYear:    &endYear,
	}
	entry.AssembleDates()

	assert.Equal(t, "2020-09-01", entry.StartDate)
	if assert.NotNil(t, entry.EndDate) {
		assert.Equal(t, "2023-06-01", *entry.EndDate)
	}
}

func TestExperienceAssembleDatesCurrentRole(t *testing.T) {
	endMonth, endYear := 6, 2023
	entry := Experience{
		StartMonth: 1,
		StartYear:  2024,
		EndMonth:   &endMonth,
		EndYear:    &endYear,
		IsCurrent:  true,
	}
	entry.AssembleDates()

	assert.Equal(t, "2024-01-01", entry.StartDate)
	assert.Nil(t, entry.EndDate)
}

func TestEducationCoerceYear(t *testing.T) {
	fromInt := Education{Year: 2019}
	fromInt.CoerceYear()
	assert.Equal(t, "2019", fromInt.DisplayYear)

	fromString := Education{DisplayYear: "2021"}
	fromString.CoerceYear()
	assert.Equal(t, 2021, fromString.Year)
	assert.Equal(t, "2021", fromString.DisplayYear)
}
