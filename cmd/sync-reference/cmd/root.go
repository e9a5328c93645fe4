package cmd

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"fysoref/internal/adapters/console"
	"fysoref/internal/adapters/filesystem"
	"fysoref/internal/adapters/markdown"
	"fysoref/internal/application"
	"fysoref/internal/application/commands"
	"fysoref/internal/config"
)

// NewRootCommand builds the sync-reference command
func NewRootCommand() *cobra.Command {
	var checkOnly bool

	rootCmd := &cobra.Command{
		Use:   "sync-reference",
		Short: "Regenerate FYSO-REFERENCE.md from the skill reference files",
		Long: `sync-reference rebuilds FYSO-REFERENCE.md from the eight reference files
under skills/*/reference/.

With --check nothing is written: the document is rebuilt in memory and
compared with the committed file, ignoring the "Last sync" date. A stale
or missing file exits with status 1.

The repository root defaults to the working directory and can be set
with SYNC_REFERENCE_ROOT.

Examples:
  sync-reference
  sync-reference --check`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			log := newLogger(cmd.ErrOrStderr())
			repo := filesystem.NewRepository(config.RootPath())
			outliner := markdown.Outliner{}

			if checkOnly {
				return runCheck(ctx, cmd.OutOrStdout(), commands.NewCheckCommand(repo, outliner, log))
			}
			return runGenerate(ctx, cmd.OutOrStdout(), commands.NewGenerateCommand(repo, outliner, log))
		},
	}

	rootCmd.Flags().BoolVar(&checkOnly, "check", false, "check that FYSO-REFERENCE.md is up to date (exit 1 if stale)")

	return rootCmd
}

// Execute runs the root command and exits non-zero on failure
func Execute() {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		// The stale verdict has already been reported as the status line
		if !errors.Is(err, application.ErrStale) {
			console.Status(rootCmd.ErrOrStderr(), console.KindError, err.Error())
		}
		os.Exit(1)
	}
}

func runGenerate(ctx context.Context, out io.Writer, generateCmd *commands.GenerateCommand) error {
	result, err := generateCmd.Execute(ctx)
	if err != nil {
		return err
	}
	console.Status(out, console.KindSuccess, result.Message)
	return nil
}

func runCheck(ctx context.Context, out io.Writer, checkCmd *commands.CheckCommand) error {
	result, err := checkCmd.Execute(ctx)
	if result != nil {
		kind := console.KindSuccess
		if !result.UpToDate {
			kind = console.KindStale
		}
		console.Status(out, kind, result.Message)
	}
	return err
}

func newLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: config.LogLevel()}))
}
