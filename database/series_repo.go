package database

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rpupo63/portfolio-cms-backend/models"
)

type SeriesRepo struct {
	db *gorm.DB
}

func NewSeriesRepo(db *gorm.DB) *SeriesRepo {
	return &SeriesRepo{db}
}

var allowedSeriesFields = map[string]string{
	"title":       "title",
	"description": "description",
	"badge_type":  "badge_type",
	"image_url":   "image_url",
	"url_slug":    "url_slug",
	"sort_order":  "sort_order",
	"is_visible":  "is_visible",
}

// FindAll returns all series ordered by sort rank.
func (r *SeriesRepo) FindAll() ([]*models.Series, error) {
	var series []*models.Series
	err := r.db.Order("sort_order ASC").Find(&series).Error
	return series, err
}

// FindVisible returns only publicly listed series, ordered by sort rank.
func (r *SeriesRepo) FindVisible() ([]*models.Series, error) {
	var series []*models.Series
	err := r.db.Where("is_visible = ?", true).Order("sort_order ASC").Find(&series).Error
	return series, err
}

// FindByID returns a series by its ID, or nil when absent.
func (r *SeriesRepo) FindByID(id uuid.UUID) (*models.Series, error) {
	var series models.Series
	err := r.db.First(&series, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &series, nil
}

// Add inserts a new series into the database
func (r *SeriesRepo) Add(series *models.Series) error {
	return r.db.Create(series).Error
}

// Patch applies a partial field update, bumping the updated timestamp in
// the same write.
func (r *SeriesRepo) Patch(id uuid.UUID, fields map[string]interface{}) (*models.Series, error) {
	updates := translatePatch(fields, allowedSeriesFields)
	if v, ok := updates["sort_order"]; ok && v != nil {
		if n, converted := asInt(v); converted {
			updates["sort_order"] = n
		}
	}
	updates["updated_at"] = time.Now().UTC()

	if err := r.db.Model(&models.Series{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}
	return r.FindByID(id)
}

// Delete removes a series by id. Member projects are not deleted; their
// series relation is cleared so they fall back to the flat listing.
func (r *SeriesRepo) Delete(id uuid.UUID) error {
	if err := r.db.Model(&models.Project{}).
		Where("series_id = ?", id).
		Updates(map[string]interface{}{"series_id": nil, "updatedAt": time.Now().UTC()}).Error; err != nil {
		return err
	}
	return r.db.Delete(&models.Series{}, "id = ?", id).Error
}
