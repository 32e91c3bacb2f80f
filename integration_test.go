//go:build integration
// +build integration

package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/grovetools/companion/pkg/adapters"
	"github.com/grovetools/companion/pkg/models"
	"github.com/grovetools/companion/pkg/render"
	"github.com/grovetools/companion/pkg/reveal"
	"github.com/grovetools/companion/pkg/service"
	"github.com/grovetools/companion/pkg/settings"
	"github.com/grovetools/companion/pkg/vault"
)

func TestIntegration(t *testing.T) {
	// Skip if not running integration tests
	if os.Getenv("RUN_INTEGRATION_TESTS") == "" {
		t.Skip("Skipping integration test. Set RUN_INTEGRATION_TESTS=1 to run.")
	}

	ctx := context.Background()
	tmpDir := t.TempDir()
	vaultDir := filepath.Join(tmpDir, "vault")
	if err := os.MkdirAll(filepath.Join(vaultDir, "Notes", "Sub"), 0755); err != nil {
		t.Fatalf("failed to create vault: %v", err)
	}
	notePath := filepath.Join(vaultDir, "Notes", "Sub", "entry.md")
	if err := os.WriteFile(notePath, []byte("# Entry\n\n```companion-folder\n```\n"), 0644); err != nil {
		t.Fatalf("failed to write note: %v", err)
	}

	logger := logrus.New()
	logger.SetLevel(logrus.WarnLevel)

	v, err := vault.NewDisk(vaultDir)
	if err != nil {
		t.Fatalf("Failed to open vault: %v", err)
	}

	host, err := settings.NewSQLiteHost(filepath.Join(tmpDir, "data"), v.Root())
	if err != nil {
		t.Fatalf("Failed to open settings database: %v", err)
	}
	defer host.Close()

	store := settings.NewStore(host, logger)
	if err := store.Load(ctx); err != nil {
		t.Fatalf("Failed to load settings: %v", err)
	}
	if err := store.SetCompanionFolderLocation(ctx, "Attachments/"); err != nil {
		t.Fatalf("Failed to save settings: %v", err)
	}

	rec := &reveal.Recorder{}
	svc := service.New(v, store, service.WithRevealer(rec), service.WithLogger(logger))
	a := adapters.New(svc)

	t.Run("RevealCreatesMirroredFolder", func(t *testing.T) {
		p, shown, err := a.FileMenu(ctx, "Notes/Sub/entry.md")
		if err != nil || !shown {
			t.Fatalf("FileMenu failed: shown=%v err=%v", shown, err)
		}
		if p != "Attachments/Notes/Sub/entry" {
			t.Errorf("Expected Attachments/Notes/Sub/entry, got %s", p)
		}

		want := filepath.Join(vaultDir, "Attachments", "Notes", "Sub", "entry")
		if info, err := os.Stat(want); err != nil || !info.IsDir() {
			t.Errorf("Expected folder at %s", want)
		}
		if len(rec.Paths) != 1 || rec.Paths[0] != want {
			t.Errorf("Expected reveal of %s, got %v", want, rec.Paths)
		}
	})

	t.Run("RenderListsChildren", func(t *testing.T) {
		child := filepath.Join(vaultDir, "Attachments", "Notes", "Sub", "entry", "scan.pdf")
		if err := os.WriteFile(child, nil, 0644); err != nil {
			t.Fatalf("failed to write child: %v", err)
		}

		content, err := os.ReadFile(notePath)
		if err != nil {
			t.Fatalf("failed to read note: %v", err)
		}

		got := render.Note(ctx, content, "Notes/Sub/entry.md", a.CodeBlock)
		want := "# Entry\n\nCompanion Folder's (Attachments/Notes/Sub/entry) content is:\n- scan.pdf\n1 files in companion folder.\n"
		if got != want {
			t.Errorf("Unexpected render:\n%s", got)
		}
	})

	t.Run("SettingsSurviveReload", func(t *testing.T) {
		reloaded := settings.NewStore(host, logger)
		if err := reloaded.Load(ctx); err != nil {
			t.Fatalf("Failed to reload settings: %v", err)
		}
		if reloaded.CompanionFolderLocation() != "Attachments/" {
			t.Errorf("Expected Attachments/, got %q", reloaded.CompanionFolderLocation())
		}
		if !svc.Exists(ctx, models.NoteFromPath("Notes/Sub/entry.md")) {
			t.Error("Expected companion folder to exist")
		}
	})
}
