package models

import (
	"time"

	"github.com/google/uuid"
)

// ContactSubmission is an inbound contact-form message. The table is
// append-only: the application inserts rows and never reads or mutates
// them.
type ContactSubmission struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	FirstName string    `json:"first_name" gorm:"column:first_name;type:text;not null"`
	LastName  string    `json:"last_name" gorm:"column:last_name;type:text;not null"`
	Business  *string   `json:"business,omitempty" gorm:"type:text"`
	Email     string    `json:"email" gorm:"type:text;not null"`
	Phone     *string   `json:"phone,omitempty" gorm:"type:text"`
	Message   string    `json:"message" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;autoCreateTime"`
}

func (ContactSubmission) TableName() string {
	return "contact_submissions"
}
