package api

import (
	"github.com/rpupo63/portfolio-cms-backend/models"
	"github.com/rpupo63/portfolio-cms-backend/richtext"
)

// richTextFields returns pointers to every rich-text column on a project.
func richTextFields(p *models.Project) []*string {
	fields := []*string{
		&p.Summary,
		&p.BusinessDetails,
		&p.Situation,
		&p.Task,
		&p.Action,
		&p.Output,
		&p.LessonsLearned,
	}
	if p.Overview != nil {
		fields = append(fields, p.Overview)
	}
	return fields
}

// copyProject returns a shallow copy safe for rewriting rich-text fields,
// with the optional overview re-pointed so the source row is untouched.
func copyProject(p *models.Project) *models.Project {
	out := *p
	if p.Overview != nil {
		overview := *p.Overview
		out.Overview = &overview
	}
	return &out
}

// forEditor strips the legacy styling wrapper from each rich-text field so
// the editor loads only the authored markup and never re-nests it on the
// next save.
func forEditor(p *models.Project) *models.Project {
	out := copyProject(p)
	for _, f := range richTextFields(out) {
		*f = richtext.StripWrapper(*f)
	}
	return out
}

// forReader runs each rich-text field through the display renderer: HTML
// fragments pass through, plain text goes through the constrained markdown
// fallback.
func forReader(p *models.Project) *models.Project {
	out := copyProject(p)
	for _, f := range richTextFields(out) {
		*f = richtext.Render(*f)
	}
	return out
}

// normalizeContent rewrites a project's rich-text fields into the shared
// styling wrapper before the row is persisted.
func normalizeContent(p *models.Project) {
	for _, f := range richTextFields(p) {
		*f = richtext.NormalizeStyling(*f)
	}
}

// projectRichTextKeys lists the patchable project fields carrying rich text.
var projectRichTextKeys = []string{
	"summary",
	"businessdetails",
	"situation",
	"task",
	"action",
	"output",
	"lessonsLearned",
	"overview",
}

// normalizePatchContent applies rich-text normalization to any rich-text
// field present in a partial update. Empty strings pass through so the
// write-conditional overview handling is preserved.
func normalizePatchContent(fields map[string]interface{}) {
	for _, key := range projectRichTextKeys {
		if v, ok := fields[key]; ok {
			if s, isString := v.(string); isString && s != "" {
				fields[key] = richtext.NormalizeStyling(s)
			}
		}
	}
}
