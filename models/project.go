package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// Metric is one (value, title, description) tuple rendered on a case study.
type Metric struct {
	Value       string `json:"value"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Project represents a case study with its authored content and display
// settings. Column names are pinned to the existing Supabase schema, which
// mixes camelCase and snake_case.
type Project struct {
	ID                   uuid.UUID                   `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Title                string                      `json:"title" gorm:"type:text;not null"`
	BadgeType            FineBadge                   `json:"badgeType" gorm:"column:badgeType;type:text;not null"`
	HeroImage            string                      `json:"heroImage" gorm:"column:heroImage;type:text"`
	Summary              string                      `json:"summary" gorm:"type:text"`
	BusinessDetails      string                      `json:"businessdetails" gorm:"column:businessdetails;type:text"`
	Situation            string                      `json:"situation" gorm:"type:text"`
	Task                 string                      `json:"task" gorm:"type:text"`
	Action               string                      `json:"action" gorm:"type:text"`
	Output               string                      `json:"output" gorm:"type:text"`
	LessonsLearned       string                      `json:"lessonsLearned" gorm:"column:lessonsLearned;type:text"`
	Overview             *string                     `json:"overview,omitempty" gorm:"type:text"`
	Metrics              datatypes.JSONSlice[Metric] `json:"metrics" gorm:"type:jsonb"`
	Images               pq.StringArray              `json:"images" gorm:"type:text[]"`
	IsVisible            bool                        `json:"is_visible" gorm:"column:is_visible;not null;default:true"`
	SortOrder            int                         `json:"sort_order" gorm:"column:sort_order;not null;default:0"`
	URLSlug              string                      `json:"url_slug" gorm:"column:url_slug;type:text;not null"`
	ShowOnHomepage       bool                        `json:"show_on_homepage" gorm:"column:show_on_homepage;not null;default:false"`
	HomepageDisplayOrder *int                        `json:"homepage_display_order" gorm:"column:homepage_display_order"`
	SeriesID             *uuid.UUID                  `json:"series_id,omitempty" gorm:"column:series_id;type:uuid"`
	CreatedAt            time.Time                   `json:"createdAt" gorm:"column:createdAt;autoCreateTime"`
	UpdatedAt            time.Time                   `json:"updatedAt" gorm:"column:updatedAt;autoUpdateTime"`
}

func (Project) TableName() string {
	return "projects"
}

// InSeries reports whether the project surfaces through a series rather
// than the flat listing for its namespace.
func (p *Project) InSeries() bool {
	return p.SeriesID != nil && *p.SeriesID != uuid.Nil
}
