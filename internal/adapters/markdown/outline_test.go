package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fysoref/internal/domain"
)

func TestOutline_NumberedHeadings(t *testing.T) {
	doc := "# Title\n\nIntro.\n\n---\n\n## 1. Field Types\n\nbody\n\n---\n\n## 2. Auth & Roles\n\n### Sub\n\ntext\n\n## Appendix\n"

	got := Outline(doc)
	require.Len(t, got, 3)
	assert.Equal(t, domain.Heading{Number: 1, Title: "Field Types"}, got[0])
	assert.Equal(t, domain.Heading{Number: 2, Title: "Auth & Roles"}, got[1])
	assert.Equal(t, domain.Heading{Title: "Appendix"}, got[2])

	assert.Equal(t, got, Outliner{}.Headings(doc))
}

func TestOutline_IgnoresCodeBlocks(t *testing.T) {
	doc := "## 1. Real\n\n```\n## 2. Not a heading\n```\n\n    ## 3. Indented code\n"

	got := Outline(doc)
	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].Number)
}

func TestOutline_RenderedManifest(t *testing.T) {
	var docs []domain.SourceDocument
	for _, s := range domain.Manifest() {
		docs = append(docs, domain.SourceDocument{Section: s, Found: s.Number%2 == 0})
	}

	got := Outline(domain.Render(docs, "2026-10-17"))
	require.Len(t, got, len(docs))
	for i, h := range got {
		assert.Equal(t, i+1, h.Number)
		assert.Equal(t, docs[i].Section.Title, h.Title)
	}
}

func TestOutline_Empty(t *testing.T) {
	assert.Empty(t, Outline(""))
}
