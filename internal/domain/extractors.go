package domain

import (
	"embed"
	"fmt"
	"regexp"
	"strings"
)

//go:embed templates/*.md
var templateFS embed.FS

// Pre-written summaries for sections whose source prose is not mechanically
// summarizable. Regenerating must reproduce them byte-for-byte.
var (
	fieldTypes       = mustTemplate("field-types.md")
	mcpOperations    = mustTemplate("mcp-operations.md")
	businessRulesDSL = mustTemplate("dsl-reference.md")
	limitations      = mustTemplate("limitations.md")
	authRoles        = mustTemplate("auth-patterns.md")
	uiComponents     = mustTemplate("ui-components.md")
	uiPatterns       = mustTemplate("ui-patterns.md")
)

func mustTemplate(name string) string {
	data, err := templateFS.ReadFile("templates/" + name)
	if err != nil {
		panic(fmt.Sprintf("domain: missing embedded template %s: %v", name, err))
	}
	return strings.TrimSuffix(string(data), "\n")
}

var (
	domainHeadingRegex = regexp.MustCompile(`(?m)^## `)
	entityNameRegex    = regexp.MustCompile(`\*\*(\w+)\*\*`)
	relationRegex      = regexp.MustCompile(`rel→(\w+)`)
)

// Section titles that introduce or close the patterns file rather than describe a domain.
// A real domain whose title starts with one of these is dropped as well.
var skippedDomainPrefixes = []string{"Domain", "Universal", "#"}

var rulePrefixes = []string{"- Compute:", "- Validate:", "- Transform:"}

// DomainPattern is the summary of one business domain found in domain-patterns.md
type DomainPattern struct {
	Title     string
	Entities  []string
	Relations []string // one entry per entity line, e.g., "pedidos→clientes, pedidos→productos"
	Rules     []string // e.g., "Compute: total = cantidad * precio"
}

// Markdown renders the pattern as it appears in the generated document
func (p DomainPattern) Markdown() string {
	return fmt.Sprintf("### %s\n- **Entities:** %s\n- **Key relations:** %s\n- **Rules:** %s",
		p.Title,
		strings.Join(p.Entities, ", "),
		strings.Join(p.Relations, ", "),
		strings.Join(p.Rules, ", "),
	)
}

// ParseDomainPatterns scans second-level sections of domain-patterns.md.
// Malformed input yields fewer (possibly zero) patterns, never an error.
func ParseDomainPatterns(content string) []DomainPattern {
	var patterns []DomainPattern

	for _, chunk := range domainHeadingRegex.Split(content, -1) {
		if strings.TrimSpace(chunk) == "" {
			continue
		}

		lines := strings.Split(chunk, "\n")
		title := strings.TrimSpace(lines[0])
		if title == "" || hasAnyPrefix(title, skippedDomainPrefixes) {
			continue
		}

		var entityLines, ruleLines []string
		for _, line := range lines {
			if strings.HasPrefix(line, "- **") {
				entityLines = append(entityLines, line)
			}
			if hasAnyPrefix(line, rulePrefixes) {
				ruleLines = append(ruleLines, line)
			}
		}

		// Sections without entity definitions are prose
		if !strings.Contains(chunk, "### Entities") && len(entityLines) == 0 {
			continue
		}

		pattern := DomainPattern{Title: title}

		for _, line := range entityLines {
			if name := entityName(line); name != "" {
				pattern.Entities = append(pattern.Entities, name)
			}
		}

		for _, line := range entityLines {
			if !strings.Contains(line, "rel→") {
				continue
			}
			entity := entityName(line)
			var rels []string
			for _, m := range relationRegex.FindAllStringSubmatch(line, -1) {
				rels = append(rels, entity+"→"+m[1])
			}
			if joined := strings.Join(rels, ", "); joined != "" {
				pattern.Relations = append(pattern.Relations, joined)
			}
		}

		for _, line := range ruleLines {
			pattern.Rules = append(pattern.Rules, strings.Replace(line, "- ", "", 1))
		}

		patterns = append(patterns, pattern)
	}

	return patterns
}

// ExtractDomainPatterns is the extractor for the Domain Patterns section.
// It is the only extractor that inspects its input.
func ExtractDomainPatterns(content string) string {
	patterns := ParseDomainPatterns(content)
	blocks := make([]string, 0, len(patterns))
	for _, p := range patterns {
		blocks = append(blocks, p.Markdown())
	}
	return strings.Join(blocks, "\n\n")
}

func entityName(line string) string {
	m := entityNameRegex.FindStringSubmatch(line)
	if m == nil {
		return ""
	}
	return m[1]
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}
