package database

import (
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rpupo63/portfolio-cms-backend/models"
)

type EducationRepo struct {
	db *gorm.DB
}

func NewEducationRepo(db *gorm.DB) *EducationRepo {
	return &EducationRepo{db}
}

var allowedEducationFields = map[string]string{
	"title":       "title",
	"institution": "institution",
	"year":        "year",
	"emphasis":    "emphasis",
	"logo_url":    "logo_url",
	"sort_order":  "sort_order",
}

// FindAll returns all education entries ordered by sort rank, with the
// integer year column coerced into its string form.
func (r *EducationRepo) FindAll() ([]*models.Education, error) {
	var entries []*models.Education
	err := r.db.Order("sort_order ASC").Find(&entries).Error
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		e.CoerceYear()
	}
	return entries, nil
}

// FindByID returns an education entry by its ID, or nil when absent.
func (r *EducationRepo) FindByID(id uuid.UUID) (*models.Education, error) {
	var entry models.Education
	err := r.db.First(&entry, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	entry.CoerceYear()
	return &entry, nil
}

// Add inserts a new education entry.
func (r *EducationRepo) Add(entry *models.Education) error {
	entry.CoerceYear()
	if err := r.db.Create(entry).Error; err != nil {
		return err
	}
	entry.CoerceYear()
	return nil
}

// Patch applies a partial field update, bumping the updated timestamp in
// the same write. The year field arrives as a string and is written back
// to the integer column.
func (r *EducationRepo) Patch(id uuid.UUID, fields map[string]interface{}) (*models.Education, error) {
	updates := translatePatch(fields, allowedEducationFields)

	if v, ok := updates["year"]; ok {
		switch year := v.(type) {
		case string:
			if n, err := strconv.Atoi(year); err == nil {
				updates["year"] = n
			} else {
				delete(updates, "year")
			}
		default:
			if n, converted := asInt(v); converted {
				updates["year"] = n
			}
		}
	}
	if v, ok := updates["sort_order"]; ok && v != nil {
		if n, converted := asInt(v); converted {
			updates["sort_order"] = n
		}
	}
	updates["updated_at"] = time.Now().UTC()

	if err := r.db.Model(&models.Education{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}
	return r.FindByID(id)
}

// Delete removes an education entry from the database by id
func (r *EducationRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Education{}, "id = ?", id).Error
}
