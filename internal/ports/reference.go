package ports

import (
	"context"

	"fysoref/internal/domain"
)

// SourceReader reads reference source files relative to the repository root
type SourceReader interface {
	// ReadSource returns the file content and whether the file exists.
	// A missing file is not an error.
	ReadSource(ctx context.Context, relPath string) (content string, found bool, err error)
}

// ReferenceStore reads and writes the generated reference document
type ReferenceStore interface {
	// ReadReference returns the committed document and whether it exists
	ReadReference(ctx context.Context) (content string, found bool, err error)
	// WriteReference overwrites the document wholesale
	WriteReference(ctx context.Context, content string) error
	// ReferencePath returns the location of the document for display
	ReferencePath() string
}

// ReferenceRepository combines source reads with output access
type ReferenceRepository interface {
	SourceReader
	ReferenceStore
}

// Outliner lists the second-level headings of a rendered document in order
type Outliner interface {
	Headings(doc string) []domain.Heading
}
