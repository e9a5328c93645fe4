package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"fysoref/internal/domain"
	"fysoref/internal/ports"
)

// GenerateResult contains the result of regenerating the reference
type GenerateResult struct {
	Path        string
	Sections    int
	Missing     []string
	Fingerprint string
	Message     string
}

// GenerateCommand rebuilds the reference document and overwrites it
type GenerateCommand struct {
	repo     ports.ReferenceRepository
	outliner ports.Outliner
	log      *slog.Logger
	Sections []domain.Section
	Now      func() time.Time
}

// NewGenerateCommand creates a new GenerateCommand over the fixed manifest
func NewGenerateCommand(repo ports.ReferenceRepository, outliner ports.Outliner, log *slog.Logger) *GenerateCommand {
	return &GenerateCommand{
		repo:     repo,
		outliner: outliner,
		log:      loggerOrDiscard(log),
		Sections: domain.Manifest(),
		Now:      time.Now,
	}
}

// Validate checks the manifest before any file is touched
func (c *GenerateCommand) Validate() error {
	return validateSections(c.Sections)
}

// Execute runs the generate command
func (c *GenerateCommand) Execute(ctx context.Context) (*GenerateResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	built, err := buildReference(ctx, c.repo, c.outliner, c.Sections, c.Now(), c.log)
	if err != nil {
		return nil, err
	}

	if err := c.repo.WriteReference(ctx, built.Content); err != nil {
		return nil, err
	}
	c.log.Info("wrote reference", "path", c.repo.ReferencePath(), "sections", built.Sections)

	return &GenerateResult{
		Path:        c.repo.ReferencePath(),
		Sections:    built.Sections,
		Missing:     built.Missing,
		Fingerprint: built.Fingerprint,
		Message:     fmt.Sprintf("Synced %s (%d sections)", domain.OutputFile, built.Sections),
	}, nil
}
