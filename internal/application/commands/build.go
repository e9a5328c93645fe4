package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"fysoref/internal/application"
	"fysoref/internal/domain"
	"fysoref/internal/ports"
)

// builtReference is a freshly rendered document and what went into it
type builtReference struct {
	Content     string
	Sections    int
	Missing     []string // source paths that were not found
	Fingerprint string   // sha256 over present sources, in manifest order
}

// validateSections checks that a manifest can be rendered unambiguously
func validateSections(sections []domain.Section) error {
	if len(sections) == 0 {
		return &application.ValidationError{
			Field:   "sections",
			Message: "at least one section is required",
		}
	}

	seen := make(map[int]bool, len(sections))
	for _, s := range sections {
		if s.Number <= 0 {
			return &application.ValidationError{
				Field:   "sections",
				Message: fmt.Sprintf("section %q has non-positive number %d", s.Title, s.Number),
			}
		}
		if seen[s.Number] {
			return &application.ValidationError{
				Field:   "sections",
				Message: fmt.Sprintf("duplicate section number %d", s.Number),
			}
		}
		seen[s.Number] = true

		if strings.TrimSpace(s.Title) == "" {
			return &application.ValidationError{
				Field:   "sections",
				Message: fmt.Sprintf("section %d has no title", s.Number),
			}
		}

		if s.Source == "" {
			return &application.ValidationError{
				Field:   "sections",
				Message: fmt.Sprintf("section %d has no source path", s.Number),
			}
		}
	}
	return nil
}

// buildReference reads every source in manifest order and renders the document
func buildReference(ctx context.Context, reader ports.SourceReader, outliner ports.Outliner, sections []domain.Section, now time.Time, log *slog.Logger) (*builtReference, error) {
	ordered := make([]domain.Section, len(sections))
	copy(ordered, sections)
	domain.SortSections(ordered)

	hasher := sha256.New()
	docs := make([]domain.SourceDocument, 0, len(ordered))
	var missing []string

	for _, s := range ordered {
		content, found, err := reader.ReadSource(ctx, s.Source)
		if err != nil {
			return nil, fmt.Errorf("failed to read section %d source: %w", s.Number, err)
		}
		if found {
			hasher.Write([]byte(content))
			log.Debug("read source", "section", s.Number, "source", s.Source, "bytes", len(content))
		} else {
			missing = append(missing, s.Source)
			log.Debug("source not found", "section", s.Number, "source", s.Source)
		}
		docs = append(docs, domain.SourceDocument{Section: s, Content: content, Found: found})
	}

	content := domain.Render(docs, domain.SyncDate(now))
	if err := verifyOutline(outliner.Headings(content), len(ordered)); err != nil {
		return nil, err
	}

	fingerprint := hex.EncodeToString(hasher.Sum(nil))
	log.Debug("rendered reference", "sections", len(ordered), "missing", len(missing), "fingerprint", fingerprint)

	return &builtReference{
		Content:     content,
		Sections:    len(ordered),
		Missing:     missing,
		Fingerprint: fingerprint,
	}, nil
}

// verifyOutline guards the invariant that numbered headings appear once each,
// strictly increasing
func verifyOutline(headings []domain.Heading, expected int) error {
	got := make([]int, 0, len(headings))
	for _, h := range headings {
		if h.Number > 0 {
			got = append(got, h.Number)
		}
	}

	if len(got) != expected {
		return &application.OrderError{Expected: expected, Got: got}
	}
	for i := 1; i < len(got); i++ {
		if got[i] <= got[i-1] {
			return &application.OrderError{Expected: expected, Got: got}
		}
	}
	return nil
}

func loggerOrDiscard(log *slog.Logger) *slog.Logger {
	if log == nil {
		return slog.New(slog.DiscardHandler)
	}
	return log
}
