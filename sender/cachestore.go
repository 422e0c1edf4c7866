package sender

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure-Go SQLite driver

	"github.com/andsko/chorus/internal/logging"
)

// CachedResponse is a stored API response with its validators.
type CachedResponse struct {
	Status      int
	ContentType string
	ETag        string
	FreshUntil  time.Time
	Body        []byte
}

// CacheStore persists cached responses in SQLite.
type CacheStore struct {
	sql *sql.DB
	log *logging.Logger
}

type migration struct {
	Version int
	Name    string
	SQL     string
}

var cacheMigrations = []migration{
	{
		Version: 1,
		Name:    "create http_cache",
		SQL: `
			CREATE TABLE http_cache (
				url          TEXT PRIMARY KEY,
				status       INTEGER NOT NULL,
				content_type TEXT NOT NULL DEFAULT '',
				etag         TEXT NOT NULL DEFAULT '',
				fresh_until  INTEGER NOT NULL DEFAULT 0,
				body         BLOB NOT NULL,
				stored_at    TEXT NOT NULL DEFAULT (datetime('now'))
			)
		`,
	},
}

// OpenCache opens (or creates) the cache database at the given path and
// runs migrations. Use ":memory:" for an in-memory cache (useful for
// tests).
func OpenCache(path string, log *logging.Logger) (*CacheStore, error) {
	if log == nil {
		log = logging.Nop()
	}
	if path != ":memory:" {
		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("creating cache directory: %w", err)
		}
	}

	sqlDB, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite: %w", err)
	}

	// WAL mode for better concurrent read performance
	if _, err := sqlDB.Exec("PRAGMA journal_mode=WAL"); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("setting WAL mode: %w", err)
	}

	cs := &CacheStore{sql: sqlDB, log: log.Sub("cache")}

	if err := cs.migrate(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	cs.log.Debug().Str("path", path).Msg("cache opened")
	return cs, nil
}

// Close closes the cache database.
func (cs *CacheStore) Close() error {
	return cs.sql.Close()
}

func (cs *CacheStore) migrate() error {
	if _, err := cs.sql.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at TEXT NOT NULL DEFAULT (datetime('now'))
		)
	`); err != nil {
		return fmt.Errorf("creating migrations table: %w", err)
	}

	for _, m := range cacheMigrations {
		var count int
		err := cs.sql.QueryRow(
			"SELECT COUNT(*) FROM schema_migrations WHERE version = ?", m.Version,
		).Scan(&count)
		if err != nil {
			return fmt.Errorf("checking migration %d: %w", m.Version, err)
		}
		if count > 0 {
			continue
		}

		tx, err := cs.sql.Begin()
		if err != nil {
			return fmt.Errorf("begin migration %d: %w", m.Version, err)
		}
		if _, err := tx.Exec(m.SQL); err != nil {
			tx.Rollback()
			return fmt.Errorf("migration %d (%s): %w", m.Version, m.Name, err)
		}
		if _, err := tx.Exec("INSERT INTO schema_migrations (version) VALUES (?)", m.Version); err != nil {
			tx.Rollback()
			return fmt.Errorf("recording migration %d: %w", m.Version, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit migration %d: %w", m.Version, err)
		}
	}
	return nil
}

// Get returns the cached response for a URL, if any.
func (cs *CacheStore) Get(url string) (CachedResponse, bool, error) {
	var (
		r         CachedResponse
		freshUnix int64
	)
	err := cs.sql.QueryRow(`
		SELECT status, content_type, etag, fresh_until, body
		FROM http_cache WHERE url = ?
	`, url).Scan(&r.Status, &r.ContentType, &r.ETag, &freshUnix, &r.Body)
	if errors.Is(err, sql.ErrNoRows) {
		return CachedResponse{}, false, nil
	}
	if err != nil {
		return CachedResponse{}, false, fmt.Errorf("reading cache entry: %w", err)
	}
	if freshUnix > 0 {
		r.FreshUntil = time.Unix(freshUnix, 0)
	}
	return r, true, nil
}

// Put stores or replaces the cached response for a URL.
func (cs *CacheStore) Put(url string, r CachedResponse) error {
	var freshUnix int64
	if !r.FreshUntil.IsZero() {
		freshUnix = r.FreshUntil.Unix()
	}
	_, err := cs.sql.Exec(`
		INSERT INTO http_cache (url, status, content_type, etag, fresh_until, body)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(url) DO UPDATE SET
			status = excluded.status,
			content_type = excluded.content_type,
			etag = excluded.etag,
			fresh_until = excluded.fresh_until,
			body = excluded.body,
			stored_at = datetime('now')
	`, url, r.Status, r.ContentType, r.ETag, freshUnix, r.Body)
	if err != nil {
		return fmt.Errorf("writing cache entry: %w", err)
	}
	return nil
}

// Delete removes the cached response for a URL.
func (cs *CacheStore) Delete(url string) error {
	_, err := cs.sql.Exec("DELETE FROM http_cache WHERE url = ?", url)
	return err
}
