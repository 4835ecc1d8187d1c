package richtext

import (
	"html"
	"regexp"
	"strings"
)

// htmlEntityMap mirrors the fixed set of entities the legacy renderer
// decoded before display.
var htmlEntityMap = map[string]string{
	"&lt;":   "<",
	"&gt;":   ">",
	"&amp;":  "&",
	"&quot;": `"`,
	"&#34;":  `"`,
	"&#39;":  "'",
	"&#x27;": "'",
	"&#x2F;": "/",
	"&nbsp;": " ",
}

var (
	entityPattern     = regexp.MustCompile(`&(?:lt|gt|amp|quot|#34|#39|#x27|#x2F|nbsp);`)
	paragraphPattern  = regexp.MustCompile(`\n\s*\n`)
	boldPattern       = regexp.MustCompile(`\*\*(.+?)\*\*`)
	italicPattern     = regexp.MustCompile(`\*(.+?)\*`)
	underscorePattern = regexp.MustCompile(`_(.+?)_`)
)

// DecodeEntities replaces the known HTML entities with their characters.
// Unknown entities pass through untouched.
func DecodeEntities(content string) string {
	if content == "" {
		return ""
	}
	return entityPattern.ReplaceAllStringFunc(content, func(entity string) string {
		if decoded, ok := htmlEntityMap[entity]; ok {
			return decoded
		}
		return entity
	})
}

// Render chooses the rendering strategy by inspecting the content: HTML
// fragments pass through as-is, anything else goes through the constrained
// markdown fallback. The fallback supports only paragraphs, bold, and
// italics; lists, headers, and images are intentionally not supported.
func Render(content string) string {
	decoded := DecodeEntities(content)
	if HasHTML(decoded) {
		return decoded
	}
	return renderMarkdown(decoded)
}

func renderMarkdown(content string) string {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return ""
	}

	var paragraphs []string
	for _, block := range paragraphPattern.Split(trimmed, -1) {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}
		escaped := html.EscapeString(block)
		formatted := boldPattern.ReplaceAllString(escaped, "<strong>$1</strong>")
		formatted = italicPattern.ReplaceAllString(formatted, "<em>$1</em>")
		formatted = underscorePattern.ReplaceAllString(formatted, "<em>$1</em>")
		paragraphs = append(paragraphs, "<p>"+formatted+"</p>")
	}
	return strings.Join(paragraphs, "\n")
}
