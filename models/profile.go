package models

import (
	"time"

	"github.com/google/uuid"
)

// Profile is the site owner's bio card. At most one row is meaningful;
// pages fall back to DefaultProfile when the table is empty.
type Profile struct {
	ID       uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Name     string    `json:"name" gorm:"type:text;not null"`
	Title    string    `json:"title" gorm:"type:text;not null"`
	Bio      *string   `json:"bio,omitempty" gorm:"type:text"`
	PhotoURL *string   `json:"photo_url,omitempty" gorm:"column:photo_url;type:text"`

	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at;autoUpdateTime"`
}

func (Profile) TableName() string {
	return "profile"
}

// DefaultProfile is rendered when no profile row exists yet.
func DefaultProfile() *Profile {
	return &Profile{
		Name:  "Portfolio Owner",
		Title: "Designer & Strategist",
	}
}
