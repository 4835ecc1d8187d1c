// Package richtext normalizes authored rich-text content between the
// editor, the store, and the read-only render paths. Content is persisted
// as an HTML fragment; older rows carry a styling wrapper div that must be
// stripped before re-editing so it does not re-nest on every save/load
// cycle.
package richtext

import (
	"regexp"
	"strings"
)

const (
	wrapperOpen  = `<div class="rich-text-content">`
	wrapperClose = `</div>`
)

var (
	tagPattern   = regexp.MustCompile(`<[^>]*>`)
	stylePattern = regexp.MustCompile(`\s?style="[^"]*"`)
)

// HasHTML reports whether the content contains any markup tag.
func HasHTML(content string) bool {
	return tagPattern.MatchString(content)
}

// StripWrapper removes the legacy outer styling wrapper so the editor
// receives only the authored inner markup. Content without the wrapper is
// returned unchanged, which makes the operation idempotent.
func StripWrapper(content string) string {
	trimmed := strings.TrimSpace(content)
	if !strings.HasPrefix(trimmed, wrapperOpen) || !strings.HasSuffix(trimmed, wrapperClose) {
		return content
	}

	inner := trimmed[len(wrapperOpen) : len(trimmed)-len(wrapperClose)]
	if !closesItself(inner) {
		return content
	}
	return strings.TrimSpace(inner)
}

// closesItself verifies the trailing </div> pairs with the wrapper open
// rather than a div inside the authored content.
func closesItself(inner string) bool {
	depth := 0
	for _, tag := range tagPattern.FindAllString(inner, -1) {
		switch {
		case strings.HasPrefix(tag, "<div"):
			depth++
		case strings.HasPrefix(tag, "</div"):
			depth--
			if depth < 0 {
				return false
			}
		}
	}
	return depth == 0
}

// NormalizeStyling strips inline style attributes and wraps the content in
// the shared styling wrapper. Any existing wrapper is stripped first, so
// repeated normalization never nests and normalizing twice equals
// normalizing once.
func NormalizeStyling(content string) string {
	inner := StripWrapper(content)
	inner = stylePattern.ReplaceAllString(inner, "")
	inner = strings.TrimSpace(inner)
	if inner == "" {
		return ""
	}
	return wrapperOpen + inner + wrapperClose
}
