package views

import (
	"github.com/rpupo63/portfolio-cms-backend/models"
)

// Resume is the assembled resume page view model.
type Resume struct {
	Profile    *models.Profile      `json:"profile"`
	Experience []*models.Experience `json:"experience"`
	Education  []*models.Education  `json:"education"`
}

// ResumeView combines the profile with the resume collections. A missing
// profile row falls back to the hard-coded default rather than an empty
// page.
func ResumeView(profile *models.Profile, experience []*models.Experience, education []*models.Education) Resume {
	if profile == nil {
		profile = models.DefaultProfile()
	}
	if experience == nil {
		experience = []*models.Experience{}
	}
	if education == nil {
		education = []*models.Education{}
	}
	return Resume{
		Profile:    profile,
		Experience: experience,
		Education:  education,
	}
}
