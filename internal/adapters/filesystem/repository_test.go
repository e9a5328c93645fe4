package filesystem

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fysoref/internal/domain"
)

func setupTestRoot(t *testing.T) string {
	t.Helper()

	root := t.TempDir()

	refDir := filepath.Join(root, "skills", "fyso-plan", "reference")
	if err := os.MkdirAll(refDir, 0755); err != nil {
		t.Fatalf("failed to create reference dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(refDir, "limitations.md"), []byte("# Limitations\n"), 0644); err != nil {
		t.Fatalf("failed to write source: %v", err)
	}

	return root
}

func TestReadSource(t *testing.T) {
	root := setupTestRoot(t)
	repo := NewRepository(root)
	ctx := context.Background()

	t.Run("existing file", func(t *testing.T) {
		content, found, err := repo.ReadSource(ctx, "skills/fyso-plan/reference/limitations.md")
		if err != nil {
			t.Fatalf("ReadSource failed: %v", err)
		}
		if !found {
			t.Fatal("expected file to be found")
		}
		if content != "# Limitations\n" {
			t.Errorf("unexpected content %q", content)
		}
	})

	t.Run("missing file is not an error", func(t *testing.T) {
		content, found, err := repo.ReadSource(ctx, "skills/fyso-rules/reference/dsl-reference.md")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if found || content != "" {
			t.Errorf("expected missing file, got found=%v content=%q", found, content)
		}
	})

	t.Run("path escaping root is rejected", func(t *testing.T) {
		_, _, err := repo.ReadSource(ctx, "../outside.md")
		if err == nil {
			t.Fatal("expected error for path outside root")
		}
		if !strings.Contains(err.Error(), "escapes") {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("directory in place of file fails", func(t *testing.T) {
		_, _, err := repo.ReadSource(ctx, "skills/fyso-plan/reference")
		if err == nil {
			t.Fatal("expected error reading a directory")
		}
	})

	t.Run("cancelled context", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		if _, _, err := repo.ReadSource(cctx, "skills/fyso-plan/reference/limitations.md"); err == nil {
			t.Fatal("expected context error")
		}
	})
}

func TestReference_WriteThenRead(t *testing.T) {
	root := t.TempDir()
	repo := NewRepository(root)
	ctx := context.Background()

	_, found, err := repo.ReadReference(ctx)
	if err != nil {
		t.Fatalf("ReadReference failed: %v", err)
	}
	if found {
		t.Fatal("expected no reference before first write")
	}

	if err := repo.WriteReference(ctx, "first\n"); err != nil {
		t.Fatalf("WriteReference failed: %v", err)
	}
	if err := repo.WriteReference(ctx, "second\n"); err != nil {
		t.Fatalf("WriteReference failed: %v", err)
	}

	content, found, err := repo.ReadReference(ctx)
	if err != nil {
		t.Fatalf("ReadReference failed: %v", err)
	}
	if !found || content != "second\n" {
		t.Errorf("expected overwritten content, got found=%v content=%q", found, content)
	}

	if repo.ReferencePath() != filepath.Join(root, domain.OutputFile) {
		t.Errorf("unexpected reference path %s", repo.ReferencePath())
	}
}

func TestWriteReference_UnwritableRoot(t *testing.T) {
	repo := NewRepository(filepath.Join(t.TempDir(), "does-not-exist"))

	err := repo.WriteReference(context.Background(), "content")
	if err == nil {
		t.Fatal("expected write to fail when root does not exist")
	}
	if !strings.Contains(err.Error(), domain.OutputFile) {
		t.Errorf("expected error to mention %s, got: %v", domain.OutputFile, err)
	}
}

func TestNewRepository_NoHomeKeepsPath(t *testing.T) {
	t.Setenv("HOME", "")

	repo := NewRepository("~/project")
	if repo.RootPath() != "~/project" {
		t.Errorf("expected unexpanded path, got %s", repo.RootPath())
	}
}

func TestNewRepository_ExpandsHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	repo := NewRepository("~/project")
	if repo.RootPath() != filepath.Join(home, "project") {
		t.Errorf("expected %s, got %s", filepath.Join(home, "project"), repo.RootPath())
	}
}
