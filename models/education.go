package models

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Education is a resume entry for a degree or program. The store keeps the
// year as an integer; DisplayYear carries the string form the rest of the
// application works with.
type Education struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Title       string    `json:"title" gorm:"type:text;not null"`
	Institution string    `json:"institution" gorm:"type:text;not null"`
	Year        int       `json:"-" gorm:"type:integer;not null"`
	Emphasis    *string   `json:"emphasis,omitempty" gorm:"type:text"`
	LogoURL     *string   `json:"logo_url,omitempty" gorm:"column:logo_url;type:text"`
	SortOrder   int       `json:"sort_order" gorm:"column:sort_order;not null;default:0"`
	CreatedAt   time.Time `json:"created_at" gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"column:updated_at;autoUpdateTime"`

	DisplayYear string `json:"year" gorm:"-"`
}

func (Education) TableName() string {
	return "education"
}

// CoerceYear keeps the integer column and its string form in sync,
// whichever side was populated.
func (e *Education) CoerceYear() {
	if e.Year == 0 && e.DisplayYear != "" {
		if y, err := strconv.Atoi(e.DisplayYear); err == nil {
			e.Year = y
		}
	}
	if e.Year != 0 {
		e.DisplayYear = strconv.Itoa(e.Year)
	}
}
