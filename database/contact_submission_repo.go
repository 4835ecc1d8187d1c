package database

import (
	"gorm.io/gorm"

	"github.com/rpupo63/portfolio-cms-backend/models"
)

// ContactSubmissionRepo only appends. The table is write-only from the
// application's perspective: nothing reads, updates, or deletes rows.
type ContactSubmissionRepo struct {
	db *gorm.DB
}

func NewContactSubmissionRepo(db *gorm.DB) *ContactSubmissionRepo {
	return &ContactSubmissionRepo{db}
}

// Add inserts a new contact submission into the database
func (r *ContactSubmissionRepo) Add(submission *models.ContactSubmission) error {
	return r.db.Create(submission).Error
}
