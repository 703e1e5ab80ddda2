// Package web wires configuration and startup for the gallery web service.
package web

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/louisbranch/stickerbook/internal/catalog"
	"github.com/louisbranch/stickerbook/internal/catalog/sqlite"
	platformcmd "github.com/louisbranch/stickerbook/internal/platform/cmd"
	webservice "github.com/louisbranch/stickerbook/internal/services/web"
)

// Config holds the web command configuration. Environment variables provide
// defaults; flags override them.
type Config struct {
	HTTPAddr  string `env:"STICKERBOOK_WEB_HTTP_ADDR" envDefault:":8080"`
	DBPath    string `env:"STICKERBOOK_DB_PATH" envDefault:"stickerbook.db"`
	AssetsDir string `env:"STICKERBOOK_ASSETS_DIR" envDefault:"assets"`
}

// ParseConfig parses environment defaults and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := platformcmd.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "SQLite catalog database path")
	fs.StringVar(&cfg.AssetsDir, "assets", cfg.AssetsDir, "directory holding sticker image files")
	if err := platformcmd.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run loads the catalog from storage and serves it until ctx ends.
func Run(ctx context.Context, cfg Config) error {
	return platformcmd.RunWithTelemetry(ctx, platformcmd.ServiceWeb, func(ctx context.Context) error {
		cat, err := loadCatalog(ctx, cfg.DBPath)
		if err != nil {
			return err
		}

		server, err := webservice.NewServer(webservice.Config{
			HTTPAddr:  cfg.HTTPAddr,
			AssetsDir: cfg.AssetsDir,
		}, cat)
		if err != nil {
			return fmt.Errorf("init web server: %w", err)
		}
		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve web: %w", err)
		}
		return nil
	})
}

// loadCatalog reads the whole sticker table once. The catalog is immutable
// for the lifetime of the process; a re-import requires a restart.
func loadCatalog(ctx context.Context, dbPath string) (*catalog.Catalog, error) {
	store, err := sqlite.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open catalog store: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Printf("close catalog store: %v", err)
		}
	}()

	stickers, err := store.ListStickers(ctx)
	if err != nil {
		return nil, fmt.Errorf("load stickers: %w", err)
	}
	cat := catalog.New(stickers)
	log.Printf("catalog loaded with %d stickers", cat.Len())
	return cat, nil
}
