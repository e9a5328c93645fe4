package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"fysoref/internal/application"
	"fysoref/internal/domain"
	"fysoref/internal/ports"
)

// RemediationCommand is what the operator runs to refresh a stale reference
const RemediationCommand = "sync-reference"

// CheckResult contains the verdict of comparing the committed reference with its sources
type CheckResult struct {
	Path        string
	UpToDate    bool
	Fingerprint string
	Message     string
}

// CheckCommand rebuilds the reference in memory and compares it with the
// committed file, ignoring the sync date. Nothing is written.
type CheckCommand struct {
	repo     ports.ReferenceRepository
	outliner ports.Outliner
	log      *slog.Logger
	Sections []domain.Section
	Now      func() time.Time
}

// NewCheckCommand creates a new CheckCommand over the fixed manifest
func NewCheckCommand(repo ports.ReferenceRepository, outliner ports.Outliner, log *slog.Logger) *CheckCommand {
	return &CheckCommand{
		repo:     repo,
		outliner: outliner,
		log:      loggerOrDiscard(log),
		Sections: domain.Manifest(),
		Now:      time.Now,
	}
}

// Validate checks the manifest before any file is touched
func (c *CheckCommand) Validate() error {
	return validateSections(c.Sections)
}

// Execute runs the check command.
// A stale or missing reference returns a result with UpToDate=false and a
// *application.StaleError.
func (c *CheckCommand) Execute(ctx context.Context) (*CheckResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	built, err := buildReference(ctx, c.repo, c.outliner, c.Sections, c.Now(), c.log)
	if err != nil {
		return nil, err
	}

	current, found, err := c.repo.ReadReference(ctx)
	if err != nil {
		return nil, err
	}

	result := &CheckResult{
		Path:        c.repo.ReferencePath(),
		Fingerprint: built.Fingerprint,
	}

	if found && domain.EqualIgnoringSyncDate(current, built.Content) {
		result.UpToDate = true
		result.Message = fmt.Sprintf("%s is up to date.", domain.OutputFile)
		return result, nil
	}

	c.log.Debug("reference is stale", "path", result.Path, "exists", found)
	result.Message = fmt.Sprintf("%s is OUT OF DATE. Run: %s", domain.OutputFile, RemediationCommand)
	return result, &application.StaleError{Path: domain.OutputFile, Missing: !found}
}
