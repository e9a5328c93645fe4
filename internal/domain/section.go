package domain

import (
	"cmp"
	"fmt"
	"slices"
)

// OutputFile is the generated reference document, relative to the repository root
const OutputFile = "FYSO-REFERENCE.md"

// Extractor turns the full text of a source file into a markdown fragment
// that is embedded under its section heading
type Extractor func(content string) string

// Section binds one source reference file to one numbered section of the
// generated document
type Section struct {
	Number  int    // e.g., 3
	Title   string // e.g., "Business Rules DSL"
	Source  string // e.g., "skills/fyso-rules/reference/dsl-reference.md"
	Extract Extractor
}

// Heading returns the markdown heading for the section (e.g., "## 3. Business Rules DSL")
func (s Section) Heading() string {
	return fmt.Sprintf("## %d. %s", s.Number, s.Title)
}

// Footer returns the trailing line naming the source path
func (s Section) Footer() string {
	return "Source: `" + s.Source + "`"
}

// MissingNotice returns the placeholder body used when the source file is absent
func (s Section) MissingNotice() string {
	return "> Source file not found: `" + s.Source + "`"
}

// Manifest returns the fixed, ordered list of sections.
// Adding a reference file means adding an entry here.
func Manifest() []Section {
	sections := []Section{
		{Number: 1, Title: "Field Types", Source: "skills/fyso-entity/reference/field-types.md", Extract: static(fieldTypes)},
		{Number: 2, Title: "MCP Operations", Source: "skills/fyso-plan/reference/mcp-operations.md", Extract: static(mcpOperations)},
		{Number: 3, Title: "Business Rules DSL", Source: "skills/fyso-rules/reference/dsl-reference.md", Extract: static(businessRulesDSL)},
		{Number: 4, Title: "Limitations", Source: "skills/fyso-plan/reference/limitations.md", Extract: static(limitations)},
		{Number: 5, Title: "Domain Patterns", Source: "skills/fyso-plan/reference/domain-patterns.md", Extract: ExtractDomainPatterns},
		{Number: 6, Title: "Auth & Roles", Source: "skills/fyso-ui/reference/auth-patterns.md", Extract: static(authRoles)},
		{Number: 7, Title: "UI Components (@fyso/ui)", Source: "skills/fyso-ui/reference/fyso-ui-components.md", Extract: static(uiComponents)},
		{Number: 8, Title: "UI Patterns", Source: "skills/fyso-ui/reference/ui-patterns.md", Extract: static(uiPatterns)},
	}
	SortSections(sections)
	return sections
}

// SortSections sorts sections by number in ascending order
func SortSections(sections []Section) {
	slices.SortStableFunc(sections, func(a, b Section) int {
		return cmp.Compare(a.Number, b.Number)
	})
}

// static wraps a pre-written summary so it fits the Extractor signature.
// The source content is ignored.
func static(block string) Extractor {
	return func(string) string {
		return block
	}
}
