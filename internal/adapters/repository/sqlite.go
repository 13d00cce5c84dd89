package repository

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite" // migrate driver for modernc sqlite
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/okian/draftsensei/internal/domain/model"
	_ "modernc.org/sqlite" // SQLite driver
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// SQLiteConfig holds the hero database settings.
type SQLiteConfig struct {
	// Path is the database file.
	Path string

	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	BusyTimeout     time.Duration

	// AutoMigrate applies the embedded schema migrations on open.
	AutoMigrate bool
}

// DefaultSQLiteConfig returns the settings used by Open.
func DefaultSQLiteConfig(path string) SQLiteConfig {
	return SQLiteConfig{
		Path:            path,
		MaxOpenConns:    4,
		MaxIdleConns:    2,
		ConnMaxLifetime: 5 * time.Minute,
		BusyTimeout:     5 * time.Second,
		AutoMigrate:     true,
	}
}

// SQLiteSource reads hero records from the heroes table. meta_json holds the
// attribute document; rows whose document does not decode come back without
// meta and are rejected by the catalog.
type SQLiteSource struct {
	db *sql.DB
}

// OpenSQLite opens the database, creating its directory, and migrates the
// schema when configured to.
func OpenSQLite(ctx context.Context, cfg SQLiteConfig) (*SQLiteSource, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("%w: empty sqlite path", ErrReadSource)
	}
	if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}
	if cfg.AutoMigrate {
		if err := migrateUp(cfg.Path); err != nil {
			return nil, err
		}
	}

	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(%d)&_pragma=journal_mode(WAL)",
		filepath.ToSlash(cfg.Path), cfg.BusyTimeout.Milliseconds())
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := db.PingContext(ctx); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			return nil, fmt.Errorf("close database after ping error: %w (original error: %v)", closeErr, err)
		}
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return &SQLiteSource{db: db}, nil
}

func migrateUp(path string) error {
	dir, err := fs.Sub(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("access migrations: %w", err)
	}
	src, err := iofs.New(dir, ".")
	if err != nil {
		return fmt.Errorf("migration source: %w", err)
	}
	normalized := filepath.ToSlash(path)
	if filepath.IsAbs(path) && normalized[0] != '/' {
		normalized = "/" + normalized
	}
	m, err := migrate.NewWithSourceInstance("iofs", src, "sqlite://"+normalized)
	if err != nil {
		return fmt.Errorf("migration instance: %w", err)
	}
	defer func() { _, _ = m.Close() }()
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}

// DB returns the underlying connection pool.
func (s *SQLiteSource) DB() *sql.DB { return s.db }

// Heroes returns every row in id order.
func (s *SQLiteSource) Heroes(ctx context.Context) ([]model.HeroRecord, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT name, meta_json FROM heroes ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("%w: query heroes: %w", ErrReadSource, err)
	}
	defer rows.Close()

	var out []model.HeroRecord
	for rows.Next() {
		var name string
		var meta sql.NullString
		if err := rows.Scan(&name, &meta); err != nil {
			return nil, fmt.Errorf("%w: scan hero: %w", ErrReadSource, err)
		}
		rec := model.HeroRecord{Name: name}
		if meta.Valid && meta.String != "" {
			var m model.Meta
			if json.Unmarshal([]byte(meta.String), &m) == nil {
				rec.Meta = &m
			}
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate heroes: %w", ErrReadSource, err)
	}
	return out, nil
}

// Import inserts records, replacing the meta of heroes already stored under
// the same name. It returns the number of rows written.
func (s *SQLiteSource) Import(ctx context.Context, records []model.HeroRecord) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin import: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO heroes (name, meta_json) VALUES (?, ?)
		ON CONFLICT(name) DO UPDATE SET meta_json = excluded.meta_json, updated_at = CURRENT_TIMESTAMP`)
	if err != nil {
		return 0, fmt.Errorf("prepare import: %w", err)
	}
	defer stmt.Close()

	n := 0
	for _, rec := range records {
		if rec.Name == "" {
			continue
		}
		var meta sql.NullString
		if rec.Meta != nil {
			b, err := json.Marshal(rec.Meta)
			if err != nil {
				return 0, fmt.Errorf("encode meta for %s: %w", rec.Name, err)
			}
			meta = sql.NullString{String: string(b), Valid: true}
		}
		if _, err := stmt.ExecContext(ctx, rec.Name, meta); err != nil {
			return 0, fmt.Errorf("import %s: %w", rec.Name, err)
		}
		n++
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit import: %w", err)
	}
	return n, nil
}

// Close closes the connection pool.
func (s *SQLiteSource) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
