package richtext

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasHTML(t *testing.T) {
	assert.True(t, HasHTML("<p>hello</p>"))
	assert.True(t, HasHTML(`<div class="x">y</div>`))
	assert.False(t, HasHTML("plain text with **markdown**"))
	assert.False(t, HasHTML(""))
}

func TestStripWrapperRemovesOuterDiv(t *testing.T) {
	wrapped := `<div class="rich-text-content"><p>body</p></div>`
	assert.Equal(t, "<p>body</p>", StripWrapper(wrapped))
}

func TestStripWrapperIdempotent(t *testing.T) {
	wrapped := `<div class="rich-text-content"><p>body</p></div>`
	once := StripWrapper(wrapped)
	assert.Equal(t, once, StripWrapper(once))
}

func TestStripWrapperLeavesUnwrappedContent(t *testing.T) {
	content := "<p>no wrapper here</p>"
	assert.Equal(t, content, StripWrapper(content))
}

func TestStripWrapperKeepsInnerDivs(t *testing.T) {
	wrapped := `<div class="rich-text-content"><div>inner</div><p>after</p></div>`
	assert.Equal(t, "<div>inner</div><p>after</p>", StripWrapper(wrapped))
}

func TestStripWrapperRejectsUnbalancedClose(t *testing.T) {
	// The trailing </div> closes an authored div, not the wrapper.
	content := `<div class="rich-text-content"><p>a</p></div><div><p>b</p></div>`
	assert.Equal(t, content, StripWrapper(content))
}

func TestNormalizeStylingWrapsOnce(t *testing.T) {
	normalized := NormalizeStyling("<p>body</p>")
	assert.Equal(t, `<div class="rich-text-content"><p>body</p></div>`, normalized)
}

func TestNormalizeStylingIdempotent(t *testing.T) {
	content := `<p style="color: red">styled</p>`
	once := NormalizeStyling(content)
	twice := NormalizeStyling(once)
	assert.Equal(t, once, twice)
}

func TestNormalizeStylingStripsInlineStyles(t *testing.T) {
	normalized := NormalizeStyling(`<p style="font-size: 30px">big</p>`)
	assert.Equal(t, `<div class="rich-text-content"><p>big</p></div>`, normalized)
}

func TestNormalizeStylingEmptyContent(t *testing.T) {
	assert.Equal(t, "", NormalizeStyling(""))
	assert.Equal(t, "", NormalizeStyling("   "))
}
