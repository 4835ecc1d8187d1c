package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpupo63/portfolio-cms-backend/models"
)

const styledWrapper = `<div class="rich-text-content">`

func wrappedProject() *models.Project {
	overview := styledWrapper + "<p>overview</p></div>"
	return &models.Project{
		Title:           "Checkout redesign",
		Summary:         styledWrapper + "<p>summary</p></div>",
		BusinessDetails: styledWrapper + "<p>details</p></div>",
		Situation:       "plain situation",
		Task:            styledWrapper + "<p>task</p></div>",
		Action:          "",
		Output:          styledWrapper + "<p>output</p></div>",
		LessonsLearned:  styledWrapper + "<p>lessons</p></div>",
		Overview:        &overview,
	}
}

func TestForEditorStripsWrapperFromEveryField(t *testing.T) {
	project := wrappedProject()

	edited := forEditor(project)

	assert.Equal(t, "<p>summary</p>", edited.Summary)
	assert.Equal(t, "<p>details</p>", edited.BusinessDetails)
	assert.Equal(t, "<p>task</p>", edited.Task)
	assert.Equal(t, "<p>output</p>", edited.Output)
	assert.Equal(t, "<p>lessons</p>", edited.LessonsLearned)
	require.NotNil(t, edited.Overview)
	assert.Equal(t, "<p>overview</p>", *edited.Overview)

	// Content without the wrapper is untouched.
	assert.Equal(t, "plain situation", edited.Situation)
	assert.Equal(t, "", edited.Action)
}

func TestForEditorLeavesSourceProjectUntouched(t *testing.T) {
	project := wrappedProject()
	storedSummary := project.Summary
	storedOverview := *project.Overview

	forEditor(project)

	assert.Equal(t, storedSummary, project.Summary)
	assert.Equal(t, storedOverview, *project.Overview)
}

func TestForReaderRendersPlainTextFields(t *testing.T) {
	project := &models.Project{
		Summary:   "First line\n\n**bold** and *em*",
		Situation: "<p>already html</p>",
	}

	rendered := forReader(project)

	assert.Equal(t, "<p>First line</p>\n<p><strong>bold</strong> and <em>em</em></p>", rendered.Summary)
	assert.Equal(t, "<p>already html</p>", rendered.Situation)

	// The stored row keeps its authored form for the admin side.
	assert.Equal(t, "First line\n\n**bold** and *em*", project.Summary)
}

func TestNormalizeContentWrapsOnce(t *testing.T) {
	project := &models.Project{
		Summary:   `<p style="color: red">summary</p>`,
		Situation: styledWrapper + "<p>situation</p></div>",
	}

	normalizeContent(project)
	normalizeContent(project)

	assert.Equal(t, styledWrapper+"<p>summary</p></div>", project.Summary)
	assert.Equal(t, styledWrapper+"<p>situation</p></div>", project.Situation)
}

func TestNormalizePatchContentTouchesOnlyRichTextFields(t *testing.T) {
	fields := map[string]interface{}{
		"title":          "New title",
		"url_slug":       "new-slug",
		"summary":        "<p>updated summary</p>",
		"lessonsLearned": "",
		"sort_order":     float64(3),
	}

	normalizePatchContent(fields)

	assert.Equal(t, "New title", fields["title"])
	assert.Equal(t, "new-slug", fields["url_slug"])
	assert.Equal(t, styledWrapper+"<p>updated summary</p></div>", fields["summary"])

	// Empty strings clear the column rather than storing an empty wrapper.
	assert.Equal(t, "", fields["lessonsLearned"])
	assert.Equal(t, float64(3), fields["sort_order"])
}
