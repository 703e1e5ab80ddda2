// Package importer loads a sticker manifest into the catalog database.
//
// The manifest is a JSON array of {filename, caption} entries produced by the
// extractor or written by hand. Import replaces the whole catalog; manifest
// order becomes gallery order.
package importer

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/louisbranch/stickerbook/internal/catalog"
	"github.com/louisbranch/stickerbook/internal/catalog/sqlite"
)

// Config holds configuration for the catalog importer.
type Config struct {
	ManifestPath string
	DBPath       string
	DryRun       bool
}

// ParseConfig parses CLI flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	cfg := Config{
		DBPath: "stickerbook.db",
	}

	fs.StringVar(&cfg.ManifestPath, "manifest", "", "path to the sticker manifest JSON file")
	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "catalog database path")
	fs.BoolVar(&cfg.DryRun, "dry-run", false, "validate without writing to the database")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if strings.TrimSpace(cfg.ManifestPath) == "" {
		return Config{}, errors.New("manifest is required")
	}

	return cfg, nil
}

// manifestEntry is one record in the manifest file.
type manifestEntry struct {
	Filename string `json:"filename"`
	Caption  string `json:"caption"`
}

// Run executes the importer using the provided Config.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if out == nil {
		out = io.Discard
	}

	manifestPath := strings.TrimSpace(cfg.ManifestPath)
	if manifestPath == "" {
		return errors.New("manifest is required")
	}

	entries, err := readManifest(manifestPath)
	if err != nil {
		return err
	}

	stickers, skipped := collectStickers(entries)
	if len(stickers) == 0 {
		return errors.New("manifest has no importable stickers")
	}

	if cfg.DryRun {
		_, err = fmt.Fprintf(out, "validated %d sticker(s), skipped %d\n", len(stickers), skipped)
		return err
	}

	store, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open catalog store: %w", err)
	}
	defer store.Close()

	if err := store.ReplaceStickers(ctx, stickers); err != nil {
		return fmt.Errorf("replace stickers: %w", err)
	}

	_, err = fmt.Fprintf(out, "imported %d sticker(s) into %s, skipped %d\n", len(stickers), cfg.DBPath, skipped)
	return err
}

func readManifest(path string) ([]manifestEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	var entries []manifestEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("decode manifest: %w", err)
	}
	return entries, nil
}

// collectStickers keeps well-formed entries in manifest order. Entries
// without a filename and repeated filenames are skipped, first entry wins.
func collectStickers(entries []manifestEntry) ([]catalog.Sticker, int) {
	var stickers []catalog.Sticker
	seen := make(map[string]bool, len(entries))
	skipped := 0
	for _, entry := range entries {
		if strings.TrimSpace(entry.Filename) == "" || seen[entry.Filename] {
			skipped++
			continue
		}
		seen[entry.Filename] = true
		stickers = append(stickers, catalog.Sticker{
			Filename: entry.Filename,
			Caption:  entry.Caption,
		})
	}
	return stickers, skipped
}
