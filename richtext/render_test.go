package richtext

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeEntities(t *testing.T) {
	assert.Equal(t, `<p>"a" & 'b'</p>`, DecodeEntities("&lt;p&gt;&quot;a&quot; &amp; &#39;b&#39;&lt;/p&gt;"))
	assert.Equal(t, "a b", DecodeEntities("a&nbsp;b"))
	assert.Equal(t, "", DecodeEntities(""))
}

func TestDecodeEntitiesLeavesUnknownEntities(t *testing.T) {
	assert.Equal(t, "&copy; 2024", DecodeEntities("&copy; 2024"))
}

func TestRenderPassesThroughHTML(t *testing.T) {
	content := "<p>already html with **asterisks**</p>"
	assert.Equal(t, content, Render(content))
}

func TestRenderDecodesEscapedHTML(t *testing.T) {
	assert.Equal(t, "<p>stored escaped</p>", Render("&lt;p&gt;stored escaped&lt;/p&gt;"))
}

func TestRenderMarkdownParagraphs(t *testing.T) {
	rendered := Render("first paragraph\n\nsecond paragraph")
	assert.Equal(t, "<p>first paragraph</p>\n<p>second paragraph</p>", rendered)
}

func TestRenderMarkdownBoldAndItalic(t *testing.T) {
	assert.Equal(t, "<p><strong>bold</strong> and <em>italic</em></p>", Render("**bold** and *italic*"))
	assert.Equal(t, "<p><em>underscored</em></p>", Render("_underscored_"))
}

func TestRenderMarkdownEscapesRawCharacters(t *testing.T) {
	assert.Equal(t, "<p>a &amp; b</p>", Render("a & b"))
}

func TestRenderMarkdownSkipsBlankBlocks(t *testing.T) {
	rendered := Render("one\n\n   \n\ntwo")
	assert.Equal(t, "<p>one</p>\n<p>two</p>", rendered)
}

func TestRenderEmptyContent(t *testing.T) {
	assert.Equal(t, "", Render(""))
	assert.Equal(t, "", Render("   "))
}
