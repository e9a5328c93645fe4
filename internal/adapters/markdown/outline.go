package markdown

import (
	"bytes"
	"regexp"
	"strconv"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"fysoref/internal/domain"
)

var numberedTitleRegex = regexp.MustCompile(`^(\d+)\.\s+(.*)$`)

// Outliner implements ports.Outliner with goldmark
type Outliner struct{}

// Headings returns the second-level headings of doc
func (Outliner) Headings(doc string) []domain.Heading {
	return Outline(doc)
}

// Outline parses a markdown document and returns its second-level headings
// in document order. Headings inside code blocks are not reported.
func Outline(doc string) []domain.Heading {
	src := []byte(doc)
	root := goldmark.New().Parser().Parse(text.NewReader(src))

	var headings []domain.Heading
	for n := root.FirstChild(); n != nil; n = n.NextSibling() {
		h, ok := n.(*ast.Heading)
		if !ok || h.Level != 2 {
			continue
		}
		headings = append(headings, parseHeading(headingText(h, src)))
	}
	return headings
}

// headingText returns the raw source text of a heading (markup untouched)
func headingText(h *ast.Heading, src []byte) string {
	var buf bytes.Buffer
	lines := h.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		buf.Write(line.Value(src))
	}
	return strings.TrimSpace(buf.String())
}

func parseHeading(raw string) domain.Heading {
	m := numberedTitleRegex.FindStringSubmatch(raw)
	if m == nil {
		return domain.Heading{Title: raw}
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return domain.Heading{Title: raw}
	}
	return domain.Heading{Number: n, Title: m[2]}
}
