package models

import (
	"time"

	"github.com/google/uuid"
)

// Series is a named grouping of related projects presented as one
// browsable unit with its own detail page. Member projects must carry a
// fine badge that maps to the series' coarse badge.
type Series struct {
	ID          uuid.UUID   `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Title       string      `json:"title" gorm:"type:text;not null"`
	Description string      `json:"description" gorm:"type:text"`
	BadgeType   CoarseBadge `json:"badge_type" gorm:"column:badge_type;type:text;not null"`
	ImageURL    string      `json:"image_url" gorm:"column:image_url;type:text"`
	URLSlug     string      `json:"url_slug" gorm:"column:url_slug;type:text;not null"`
	SortOrder   int         `json:"sort_order" gorm:"column:sort_order;not null;default:0"`
	IsVisible   bool        `json:"is_visible" gorm:"column:is_visible;not null;default:true"`
	CreatedAt   time.Time   `json:"created_at" gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time   `json:"updated_at" gorm:"column:updated_at;autoUpdateTime"`
}

func (Series) TableName() string {
	return "series"
}
