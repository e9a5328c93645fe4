package filesystem

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"fysoref/internal/domain"
)

// Repository implements ports.ReferenceRepository using the filesystem
type Repository struct {
	rootPath   string
	outputName string
}

// NewRepository creates a new filesystem repository rooted at rootPath.
// The generated document lives at rootPath/domain.OutputFile.
func NewRepository(rootPath string) *Repository {
	// Expand ~ to home directory; keep the path as given when there is none
	if strings.HasPrefix(rootPath, "~") {
		if home, err := os.UserHomeDir(); err == nil {
			rootPath = filepath.Join(home, rootPath[1:])
		}
	}
	return &Repository{rootPath: rootPath, outputName: domain.OutputFile}
}

// RootPath returns the resolved repository root
func (r *Repository) RootPath() string {
	return r.rootPath
}

// ReadSource reads a manifest source file. A missing file reports found=false.
func (r *Repository) ReadSource(ctx context.Context, relPath string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	if !filepath.IsLocal(filepath.FromSlash(relPath)) {
		return "", false, fmt.Errorf("source path escapes repository root: %s", relPath)
	}
	return readOptional(filepath.Join(r.rootPath, filepath.FromSlash(relPath)))
}

// ReadReference reads the committed generated document
func (r *Repository) ReadReference(ctx context.Context) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	return readOptional(r.ReferencePath())
}

// WriteReference overwrites the generated document
func (r *Repository) WriteReference(ctx context.Context, content string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.WriteFile(r.ReferencePath(), []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", r.outputName, err)
	}
	return nil
}

// ReferencePath returns the full path of the generated document
func (r *Repository) ReferencePath() string {
	return filepath.Join(r.rootPath, r.outputName)
}

func readOptional(path string) (string, bool, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), true, nil
}
