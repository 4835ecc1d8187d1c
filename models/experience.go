package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Experience is a resume entry for a role. The store keeps start/end as
// month/year pairs; StartDate and EndDate are assembled by the data access
// layer so nothing downstream sees the raw column shape.
type Experience struct {
	ID           uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Title        string         `json:"title" gorm:"type:text;not null"`
	Company      string         `json:"company" gorm:"type:text;not null"`
	Location     string         `json:"location" gorm:"type:text"`
	StartMonth   int            `json:"start_month" gorm:"column:start_month;not null"`
	StartYear    int            `json:"start_year" gorm:"column:start_year;not null"`
	EndMonth     *int           `json:"end_month,omitempty" gorm:"column:end_month"`
	EndYear      *int           `json:"end_year,omitempty" gorm:"column:end_year"`
	IsCurrent    bool           `json:"is_current" gorm:"column:is_current;not null;default:false"`
	Description  string         `json:"description" gorm:"type:text"`
	Achievements pq.StringArray `json:"achievements" gorm:"type:text[]"`
	LogoURL      *string        `json:"logo_url,omitempty" gorm:"column:logo_url;type:text"`
	SortOrder    int            `json:"sort_order" gorm:"column:sort_order;not null;default:0"`
	CreatedAt    time.Time      `json:"created_at" gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time      `json:"updated_at" gorm:"column:updated_at;autoUpdateTime"`

	StartDate string  `json:"start_date" gorm:"-"`
	EndDate   *string `json:"end_date" gorm:"-"`
}

func (Experience) TableName() string {
	return "experience"
}

// AssembleDates fills the ISO date strings from the stored month/year
// pairs. A current role has no end date regardless of stored end columns.
func (e *Experience) AssembleDates() {
	e.StartDate = fmt.Sprintf("%04d-%02d-01", e.StartYear, e.StartMonth)
	if e.IsCurrent || e.EndYear == nil || e.EndMonth == nil {
		e.EndDate = nil
		return
	}
	end := fmt.Sprintf("%04d-%02d-01", *e.EndYear, *e.EndMonth)
	e.EndDate = &end
}
