package database

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rpupo63/portfolio-cms-backend/models"
)

type ProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db}
}

// allowedProjectFields maps application field names to storage columns for
// partial updates. The projects table predates the naming convention, so
// several columns are camelCase.
var allowedProjectFields = map[string]string{
	"title":                  "title",
	"badgeType":              "badgeType",
	"heroImage":              "heroImage",
	"summary":                "summary",
	"businessdetails":        "businessdetails",
	"situation":              "situation",
	"task":                   "task",
	"action":                 "action",
	"output":                 "output",
	"lessonsLearned":         "lessonsLearned",
	"overview":               "overview",
	"metrics":                "metrics",
	"images":                 "images",
	"is_visible":             "is_visible",
	"sort_order":             "sort_order",
	"url_slug":               "url_slug",
	"show_on_homepage":       "show_on_homepage",
	"homepage_display_order": "homepage_display_order",
	"series_id":              "series_id",
}

// FindAll returns all projects ordered by sort rank, newest first within a rank.
func (r *ProjectRepo) FindAll() ([]*models.Project, error) {
	var projects []*models.Project
	err := r.db.Order("sort_order ASC").Order(`"createdAt" DESC`).Find(&projects).Error
	return projects, err
}

// FindVisible returns only publicly listed projects, same ordering as FindAll.
func (r *ProjectRepo) FindVisible() ([]*models.Project, error) {
	var projects []*models.Project
	err := r.db.Where("is_visible = ?", true).
		Order("sort_order ASC").Order(`"createdAt" DESC`).
		Find(&projects).Error
	return projects, err
}

// FindByID returns a project by its ID, or nil when absent.
func (r *ProjectRepo) FindByID(id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := r.db.First(&project, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// FindBySeriesID returns the projects belonging to one series, ordered by
// sort rank.
func (r *ProjectRepo) FindBySeriesID(seriesID uuid.UUID) ([]*models.Project, error) {
	var projects []*models.Project
	err := r.db.Where("series_id = ?", seriesID).
		Order("sort_order ASC").
		Find(&projects).Error
	return projects, err
}

// Add inserts a new project into the database
func (r *ProjectRepo) Add(project *models.Project) error {
	return r.db.Create(project).Error
}

// Patch applies a partial field update and bumps the updated timestamp in
// the same write. The overview column was added after launch, so it is
// only written when non-empty; environments that have not migrated yet
// keep working for every other field.
func (r *ProjectRepo) Patch(id uuid.UUID, fields map[string]interface{}) (*models.Project, error) {
	updates := translatePatch(fields, allowedProjectFields)

	if v, ok := updates["overview"]; ok {
		if s, isString := v.(string); isString && s == "" {
			delete(updates, "overview")
		}
	}
	if v, ok := updates["metrics"]; ok {
		if jsonb, converted := asJSONB(v); converted {
			updates["metrics"] = jsonb
		}
	}
	if v, ok := updates["images"]; ok {
		if arr, converted := asStringArray(v); converted {
			updates["images"] = arr
		}
	}
	for _, field := range []string{"sort_order", "homepage_display_order"} {
		if v, ok := updates[field]; ok && v != nil {
			if n, converted := asInt(v); converted {
				updates[field] = n
			}
		}
	}

	updates["updatedAt"] = time.Now().UTC()

	if err := r.db.Model(&models.Project{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}
	return r.FindByID(id)
}

// ClearSeries removes a project from its series without deleting the
// project.
func (r *ProjectRepo) ClearSeries(id uuid.UUID) (*models.Project, error) {
	return r.Patch(id, map[string]interface{}{"series_id": nil})
}

// Delete removes a project from the database by id
func (r *ProjectRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Project{}, "id = ?", id).Error
}
