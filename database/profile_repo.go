package database

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/rpupo63/portfolio-cms-backend/models"
)

type ProfileRepo struct {
	db *gorm.DB
}

func NewProfileRepo(db *gorm.DB) *ProfileRepo {
	return &ProfileRepo{db}
}

var allowedProfileFields = map[string]string{
	"name":      "name",
	"title":     "title",
	"bio":       "bio",
	"photo_url": "photo_url",
}

// Find returns the single active profile row, or nil when none exists.
// Callers fall back to models.DefaultProfile in that case.
func (r *ProfileRepo) Find() (*models.Profile, error) {
	var profile models.Profile
	err := r.db.Limit(1).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// Upsert patches the profile row, creating it if the table is empty.
func (r *ProfileRepo) Upsert(fields map[string]interface{}) (*models.Profile, error) {
	updates := translatePatch(fields, allowedProfileFields)

	existing, err := r.Find()
	if err != nil {
		return nil, err
	}

	if existing == nil {
		profile := models.DefaultProfile()
		if name, ok := updates["name"].(string); ok {
			profile.Name = name
		}
		if title, ok := updates["title"].(string); ok {
			profile.Title = title
		}
		if bio, ok := updates["bio"].(string); ok {
			profile.Bio = &bio
		}
		if photo, ok := updates["photo_url"].(string); ok {
			profile.PhotoURL = &photo
		}
		if err := r.db.Create(profile).Error; err != nil {
			return nil, err
		}
		return profile, nil
	}

	updates["updated_at"] = time.Now().UTC()
	if err := r.db.Model(&models.Profile{}).Where("id = ?", existing.ID).Updates(updates).Error; err != nil {
		return nil, err
	}
	return r.Find()
}
