package domain

import (
	"cmp"
	"fmt"
	"regexp"
	"slices"
	"strings"
	"time"
)

const (
	documentTitle  = "# Fyso Platform — Consolidated Reference"
	generatedBy    = "<!-- AUTO-GENERATED by scripts/sync-reference.ts — DO NOT EDIT MANUALLY -->"
	sectionDivider = "---"
)

var syncDateRegex = regexp.MustCompile(`Last sync: \d{4}-\d{2}-\d{2}`)

// SourceDocument is a manifest section paired with what was read from its source path
type SourceDocument struct {
	Section Section
	Content string
	Found   bool
}

// Body returns the extractor output, or the not-found notice when the source is absent
func (d SourceDocument) Body() string {
	if !d.Found {
		return d.Section.MissingNotice()
	}
	if d.Section.Extract == nil {
		return ""
	}
	return d.Section.Extract(d.Content)
}

// SyncDate formats the date embedded in the document header (UTC, YYYY-MM-DD)
func SyncDate(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// Render assembles the consolidated reference document.
// Sections are emitted in ascending number order whatever the order of docs.
func Render(docs []SourceDocument, syncDate string) string {
	ordered := slices.Clone(docs)
	slices.SortStableFunc(ordered, func(a, b SourceDocument) int {
		return cmp.Compare(a.Section.Number, b.Section.Number)
	})

	parts := []string{
		documentTitle,
		generatedBy,
		fmt.Sprintf("<!-- Source: skills/*/reference/*.md — Last sync: %s -->", syncDate),
		"",
		fmt.Sprintf("Quick-reference for all Fyso concepts. Read this ONE file instead of %d individual reference files. For deep dives, read the source files in `skills/*/reference/`.", len(ordered)),
	}

	for _, doc := range ordered {
		parts = append(parts,
			"",
			sectionDivider,
			"",
			doc.Section.Heading(),
			"",
			doc.Body(),
			"",
			doc.Section.Footer(),
		)
	}

	return strings.Join(parts, "\n") + "\n"
}

// NormalizeSyncDate replaces every embedded sync date with a constant placeholder
func NormalizeSyncDate(s string) string {
	return syncDateRegex.ReplaceAllString(s, "Last sync: DATE")
}

// EqualIgnoringSyncDate reports whether two documents differ only by their sync date
func EqualIgnoringSyncDate(a, b string) bool {
	return NormalizeSyncDate(a) == NormalizeSyncDate(b)
}

// Heading is a second-level heading of a rendered document
type Heading struct {
	Number int // 0 when the heading is not numbered
	Title  string
}
