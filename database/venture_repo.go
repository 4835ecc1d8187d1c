package database

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rpupo63/portfolio-cms-backend/models"
)

type VentureRepo struct {
	db *gorm.DB
}

func NewVentureRepo(db *gorm.DB) *VentureRepo {
	return &VentureRepo{db}
}

var allowedVentureFields = map[string]string{
	"title":       "title",
	"description": "description",
	"image":       "image",
	"url":         "url",
	"status":      "status",
	"is_visible":  "is_visible",
	"sort_order":  "sort_order",
	"url_slug":    "url_slug",
}

// FindAll returns all ventures ordered by sort rank.
func (r *VentureRepo) FindAll() ([]*models.Venture, error) {
	var ventures []*models.Venture
	err := r.db.Order("sort_order ASC").Find(&ventures).Error
	return ventures, err
}

// FindVisible returns only publicly listed ventures, ordered by sort rank.
func (r *VentureRepo) FindVisible() ([]*models.Venture, error) {
	var ventures []*models.Venture
	err := r.db.Where("is_visible = ?", true).Order("sort_order ASC").Find(&ventures).Error
	return ventures, err
}

// FindByID returns a venture by its ID, or nil when absent.
func (r *VentureRepo) FindByID(id uuid.UUID) (*models.Venture, error) {
	var venture models.Venture
	err := r.db.First(&venture, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &venture, nil
}

// Add inserts a new venture into the database
func (r *VentureRepo) Add(venture *models.Venture) error {
	return r.db.Create(venture).Error
}

// Patch applies a partial field update, bumping the updated timestamp in
// the same write.
func (r *VentureRepo) Patch(id uuid.UUID, fields map[string]interface{}) (*models.Venture, error) {
	updates := translatePatch(fields, allowedVentureFields)
	if v, ok := updates["sort_order"]; ok && v != nil {
		if n, converted := asInt(v); converted {
			updates["sort_order"] = n
		}
	}
	updates["updatedAt"] = time.Now().UTC()

	if err := r.db.Model(&models.Venture{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}
	return r.FindByID(id)
}

// Delete removes a venture from the database by id
func (r *VentureRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Venture{}, "id = ?", id).Error
}
