// Package sqlite provides the SQLite-backed catalog source.
//
// The running gallery only reads from the store, once, at startup. Writes
// happen out of process through the importer.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/louisbranch/stickerbook/internal/catalog"
	"github.com/louisbranch/stickerbook/internal/catalog/sqlite/migrations"
	sqlitemigrate "github.com/louisbranch/stickerbook/internal/platform/storage/sqlitemigrate"
	_ "modernc.org/sqlite"
)

// Store persists the sticker catalog in SQLite.
type Store struct {
	sqlDB *sql.DB
}

// Open opens a catalog store and applies embedded migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.ApplyMigrations(sqlDB, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// ListStickers returns every sticker in import order.
func (s *Store) ListStickers(ctx context.Context) ([]catalog.Sticker, error) {
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}

	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT filename, caption FROM stickers ORDER BY position ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list stickers: %w", err)
	}
	defer rows.Close()

	var stickers []catalog.Sticker
	for rows.Next() {
		var sticker catalog.Sticker
		if err := rows.Scan(&sticker.Filename, &sticker.Caption); err != nil {
			return nil, fmt.Errorf("scan sticker row: %w", err)
		}
		stickers = append(stickers, sticker)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sticker rows: %w", err)
	}
	return stickers, nil
}

// ReplaceStickers swaps the whole catalog in one transaction, assigning
// positions from slice order. Entries without a filename are rejected here;
// the importer filters them before calling.
func (s *Store) ReplaceStickers(ctx context.Context, stickers []catalog.Sticker) error {
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	for _, sticker := range stickers {
		if strings.TrimSpace(sticker.Filename) == "" {
			return fmt.Errorf("sticker filename is required")
		}
	}

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin replace: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM stickers`); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("clear stickers: %w", err)
	}
	for position, sticker := range stickers {
		if _, err := tx.ExecContext(
			ctx,
			`INSERT INTO stickers (filename, caption, position) VALUES (?, ?, ?)`,
			sticker.Filename,
			sticker.Caption,
			position,
		); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("insert sticker %s: %w", sticker.Filename, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace: %w", err)
	}
	return nil
}
