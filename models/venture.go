package models

import (
	"time"

	"github.com/google/uuid"
)

// VentureStatus is the lifecycle state of a standalone venture.
type VentureStatus string

const (
	VentureActive    VentureStatus = "active"
	VentureCompleted VentureStatus = "completed"
	VentureOnHold    VentureStatus = "on-hold"
)

func (s VentureStatus) Valid() bool {
	switch s {
	case VentureActive, VentureCompleted, VentureOnHold:
		return true
	}
	return false
}

// Venture is a standalone business venture. Ventures, Ventures-badged
// projects, and Ventures-badged series all render on the same listing page.
type Venture struct {
	ID          uuid.UUID     `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Title       string        `json:"title" gorm:"type:text;not null"`
	Description string        `json:"description" gorm:"type:text"`
	Image       string        `json:"image" gorm:"type:text"`
	URL         *string       `json:"url,omitempty" gorm:"type:text"`
	Status      VentureStatus `json:"status" gorm:"type:text;not null;default:'active'"`
	IsVisible   bool          `json:"is_visible" gorm:"column:is_visible;not null;default:true"`
	SortOrder   int           `json:"sort_order" gorm:"column:sort_order;not null;default:0"`
	URLSlug     string        `json:"url_slug" gorm:"column:url_slug;type:text;not null"`
	CreatedAt   time.Time     `json:"createdAt" gorm:"column:createdAt;autoCreateTime"`
	UpdatedAt   time.Time     `json:"updatedAt" gorm:"column:updatedAt;autoUpdateTime"`
}

func (Venture) TableName() string {
	return "ventures"
}
