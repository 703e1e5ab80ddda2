package importer

import (
	"bytes"
	"context"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/louisbranch/stickerbook/internal/catalog/sqlite"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "manifest.json")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	return path
}

func TestParseConfigRequiresManifest(t *testing.T) {
	fs := flag.NewFlagSet("importer", flag.ContinueOnError)
	if _, err := ParseConfig(fs, nil); err == nil {
		t.Fatal("expected error when manifest flag is missing")
	}
}

func TestParseConfig(t *testing.T) {
	fs := flag.NewFlagSet("importer", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-manifest", "stickers.json", "-db", "cat.db", "-dry-run"})
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.ManifestPath != "stickers.json" {
		t.Errorf("ManifestPath = %q", cfg.ManifestPath)
	}
	if cfg.DBPath != "cat.db" {
		t.Errorf("DBPath = %q", cfg.DBPath)
	}
	if !cfg.DryRun {
		t.Error("expected DryRun set")
	}
}

func TestRunImportsManifest(t *testing.T) {
	ctx := context.Background()
	manifest := writeManifest(t, `[
		{"filename": "a.png", "caption": "cyber cat"},
		{"filename": "", "caption": "lost caption"},
		{"filename": "b.png", "caption": "cute dog"},
		{"filename": "a.png", "caption": "duplicate"}
	]`)
	dbPath := filepath.Join(t.TempDir(), "catalog.db")

	var out bytes.Buffer
	err := Run(ctx, Config{ManifestPath: manifest, DBPath: dbPath}, &out)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !strings.Contains(out.String(), "imported 2 sticker(s)") {
		t.Fatalf("unexpected output: %s", out.String())
	}
	if !strings.Contains(out.String(), "skipped 2") {
		t.Fatalf("expected skip count in output: %s", out.String())
	}

	store, err := sqlite.Open(dbPath)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer store.Close()

	stickers, err := store.ListStickers(ctx)
	if err != nil {
		t.Fatalf("ListStickers() error = %v", err)
	}
	if len(stickers) != 2 {
		t.Fatalf("got %d stickers, want 2", len(stickers))
	}
	if stickers[0].Filename != "a.png" || stickers[0].Caption != "cyber cat" {
		t.Errorf("first sticker = %+v, want original a.png entry", stickers[0])
	}
	if stickers[1].Filename != "b.png" {
		t.Errorf("second sticker = %+v, want b.png", stickers[1])
	}
}

func TestRunReplacesExistingCatalog(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "catalog.db")

	first := writeManifest(t, `[{"filename": "old.png", "caption": "old"}]`)
	if err := Run(ctx, Config{ManifestPath: first, DBPath: dbPath}, nil); err != nil {
		t.Fatalf("first Run() error = %v", err)
	}

	second := writeManifest(t, `[{"filename": "new.png", "caption": "new"}]`)
	if err := Run(ctx, Config{ManifestPath: second, DBPath: dbPath}, nil); err != nil {
		t.Fatalf("second Run() error = %v", err)
	}

	store, err := sqlite.Open(dbPath)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer store.Close()

	stickers, err := store.ListStickers(ctx)
	if err != nil {
		t.Fatalf("ListStickers() error = %v", err)
	}
	if len(stickers) != 1 || stickers[0].Filename != "new.png" {
		t.Fatalf("got %+v, want only new.png", stickers)
	}
}

func TestRunDryRunWritesNothing(t *testing.T) {
	manifest := writeManifest(t, `[{"filename": "a.png", "caption": "cyber cat"}]`)
	dbPath := filepath.Join(t.TempDir(), "catalog.db")

	var out bytes.Buffer
	err := Run(context.Background(), Config{ManifestPath: manifest, DBPath: dbPath, DryRun: true}, &out)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !strings.Contains(out.String(), "validated 1 sticker(s)") {
		t.Fatalf("unexpected output: %s", out.String())
	}
	if _, err := os.Stat(dbPath); !os.IsNotExist(err) {
		t.Fatal("dry run must not create the database")
	}
}

func TestRunRejectsBadManifest(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "invalid json", content: `{"filename":`},
		{name: "no importable entries", content: `[{"filename": "", "caption": "x"}]`},
		{name: "empty array", content: `[]`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			manifest := writeManifest(t, tc.content)
			err := Run(context.Background(), Config{ManifestPath: manifest, DBPath: filepath.Join(t.TempDir(), "c.db")}, nil)
			if err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestRunMissingManifestFile(t *testing.T) {
	err := Run(context.Background(), Config{
		ManifestPath: filepath.Join(t.TempDir(), "absent.json"),
		DBPath:       filepath.Join(t.TempDir(), "c.db"),
	}, nil)
	if err == nil {
		t.Fatal("expected error for missing manifest file")
	}
}
