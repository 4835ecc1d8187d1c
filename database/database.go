package database

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rpupo63/portfolio-cms-backend/models"
)

type Database struct {
	projectRepo           *ProjectRepo
	seriesRepo            *SeriesRepo
	ventureRepo           *VentureRepo
	experienceRepo        *ExperienceRepo
	educationRepo         *EducationRepo
	profileRepo           *ProfileRepo
	contactSubmissionRepo *ContactSubmissionRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		projectRepo:           NewProjectRepo(db),
		seriesRepo:            NewSeriesRepo(db),
		ventureRepo:           NewVentureRepo(db),
		experienceRepo:        NewExperienceRepo(db),
		educationRepo:         NewEducationRepo(db),
		profileRepo:           NewProfileRepo(db),
		contactSubmissionRepo: NewContactSubmissionRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) SeriesRepo() *SeriesRepo {
	return d.seriesRepo
}

func (d Database) VentureRepo() *VentureRepo {
	return d.ventureRepo
}

func (d Database) ExperienceRepo() *ExperienceRepo {
	return d.experienceRepo
}

func (d Database) EducationRepo() *EducationRepo {
	return d.educationRepo
}

func (d Database) ProfileRepo() *ProfileRepo {
	return d.profileRepo
}

func (d Database) ContactSubmissionRepo() *ContactSubmissionRepo {
	return d.contactSubmissionRepo
}

// SlugKind identifies which table a slug-bearing row lives in, so a row
// being updated can be excluded from its own uniqueness check.
type SlugKind string

const (
	SlugKindProject SlugKind = "project"
	SlugKindSeries  SlugKind = "series"
	SlugKindVenture SlugKind = "venture"
)

// SlugInUse checks whether a slug is already taken anywhere in a routing
// namespace. Projects, series, and ventures share one URL namespace per
// top-level route, so uniqueness has to be checked across all three tables
// at write time.
func (d Database) SlugInUse(coarse models.CoarseBadge, slug string, exclude SlugKind, excludeID uuid.UUID) (bool, error) {
	db := d.projectRepo.db

	var count int64
	projectQuery := db.Model(&models.Project{}).
		Where("url_slug = ?", slug).
		Where(`"badgeType" IN ?`, badgeStrings(models.FinesFor(coarse)))
	if exclude == SlugKindProject {
		projectQuery = projectQuery.Where("id <> ?", excludeID)
	}
	if err := projectQuery.Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 {
		return true, nil
	}

	seriesQuery := db.Model(&models.Series{}).
		Where("url_slug = ?", slug).
		Where("badge_type = ?", string(coarse))
	if exclude == SlugKindSeries {
		seriesQuery = seriesQuery.Where("id <> ?", excludeID)
	}
	if err := seriesQuery.Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 {
		return true, nil
	}

	// The ventures table only participates in the /ventures namespace.
	if coarse != models.CoarseVentures {
		return false, nil
	}
	ventureQuery := db.Model(&models.Venture{}).Where("url_slug = ?", slug)
	if exclude == SlugKindVenture {
		ventureQuery = ventureQuery.Where("id <> ?", excludeID)
	}
	if err := ventureQuery.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func badgeStrings(badges []models.FineBadge) []string {
	out := make([]string, len(badges))
	for i, b := range badges {
		out[i] = string(b)
	}
	return out
}
