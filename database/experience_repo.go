package database

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rpupo63/portfolio-cms-backend/models"
)

type ExperienceRepo struct {
	db *gorm.DB
}

func NewExperienceRepo(db *gorm.DB) *ExperienceRepo {
	return &ExperienceRepo{db}
}

var allowedExperienceFields = map[string]string{
	"title":        "title",
	"company":      "company",
	"location":     "location",
	"start_month":  "start_month",
	"start_year":   "start_year",
	"end_month":    "end_month",
	"end_year":     "end_year",
	"is_current":   "is_current",
	"description":  "description",
	"achievements": "achievements",
	"logo_url":     "logo_url",
	"sort_order":   "sort_order",
}

// FindAll returns all resume entries ordered by sort rank, with the ISO
// date strings assembled from the stored month/year pairs.
func (r *ExperienceRepo) FindAll() ([]*models.Experience, error) {
	var entries []*models.Experience
	err := r.db.Order("sort_order ASC").Find(&entries).Error
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		e.AssembleDates()
	}
	return entries, nil
}

// FindByID returns a resume entry by its ID, or nil when absent.
func (r *ExperienceRepo) FindByID(id uuid.UUID) (*models.Experience, error) {
	var entry models.Experience
	err := r.db.First(&entry, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	entry.AssembleDates()
	return &entry, nil
}

// Add inserts a new resume entry. A current role never persists an end
// date.
func (r *ExperienceRepo) Add(entry *models.Experience) error {
	if entry.IsCurrent {
		entry.EndMonth = nil
		entry.EndYear = nil
	}
	if err := r.db.Create(entry).Error; err != nil {
		return err
	}
	entry.AssembleDates()
	return nil
}

// Patch applies a partial field update, bumping the updated timestamp in
// the same write. Marking a role current clears its end date columns.
func (r *ExperienceRepo) Patch(id uuid.UUID, fields map[string]interface{}) (*models.Experience, error) {
	updates := translatePatch(fields, allowedExperienceFields)

	for _, field := range []string{"start_month", "start_year", "end_month", "end_year", "sort_order"} {
		if v, ok := updates[field]; ok && v != nil {
			if n, converted := asInt(v); converted {
				updates[field] = n
			}
		}
	}
	if v, ok := updates["achievements"]; ok {
		if arr, converted := asStringArray(v); converted {
			updates["achievements"] = arr
		}
	}
	if current, ok := updates["is_current"].(bool); ok && current {
		updates["end_month"] = nil
		updates["end_year"] = nil
	}
	updates["updated_at"] = time.Now().UTC()

	if err := r.db.Model(&models.Experience{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}
	return r.FindByID(id)
}

// Delete removes a resume entry from the database by id
func (r *ExperienceRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Experience{}, "id = ?", id).Error
}
