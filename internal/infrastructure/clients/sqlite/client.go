package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"

	"github.com/simonindia/office-assistant/pkg/config"
	"github.com/simonindia/office-assistant/pkg/retry"
)

// Client represents the local SQLite database client.
type Client struct {
	db *sql.DB
}

// NewClient opens (or creates) the SQLite database file, verifies the
// connection with backoff and applies the schema.
func NewClient(cfg *config.DatabaseConfig) (*Client, error) {
	if dir := filepath.Dir(cfg.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", cfg.Path+"?_pragma=journal_mode(wal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// The driver serializes access to the file; a single connection
	// avoids SQLITE_BUSY under concurrent requests.
	db.SetMaxOpenConns(1)

	err = retry.Do(context.Background(), retry.DefaultConfig(), func() error {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return db.PingContext(ctx)
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to SQLite: %w", err)
	}

	c := &Client{db: db}
	if err := c.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	c.patchLegacyColumns()

	log.Info().Str("path", cfg.Path).Msg("SQLite client initialized")
	return c, nil
}

// DB returns the underlying database connection
func (c *Client) DB() *sql.DB {
	return c.db
}

// Close closes the database connection
func (c *Client) Close() error {
	return c.db.Close()
}

// Ping verifies the connection to the database
func (c *Client) Ping(ctx context.Context) error {
	return c.db.PingContext(ctx)
}

func (c *Client) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS priorities (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		text       TEXT NOT NULL,
		created_at TEXT
	);

	CREATE TABLE IF NOT EXISTS projects (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		name       TEXT NOT NULL,
		health     INTEGER NOT NULL DEFAULT 100,
		risk       TEXT NOT NULL DEFAULT 'None major',
		action     TEXT NOT NULL DEFAULT 'Monitor progress',
		created_at TEXT,
		updated_at TEXT
	);

	CREATE TABLE IF NOT EXISTS meetings (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		time       TEXT NOT NULL,
		title      TEXT NOT NULL,
		location   TEXT NOT NULL DEFAULT 'VC',
		brief      TEXT NOT NULL DEFAULT '',
		critical   INTEGER NOT NULL DEFAULT 0,
		date       TEXT NOT NULL,
		created_at TEXT
	);
	CREATE INDEX IF NOT EXISTS idx_meetings_date ON meetings(date);

	CREATE TABLE IF NOT EXISTS protocol (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		gov        INTEGER NOT NULL DEFAULT 0,
		intl       INTEGER NOT NULL DEFAULT 1,
		notes      TEXT NOT NULL DEFAULT '',
		updated_at TEXT
	);

	CREATE TABLE IF NOT EXISTS time_splits (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		bd         INTEGER NOT NULL DEFAULT 40,
		internal   INTEGER NOT NULL DEFAULT 35,
		strategy   INTEGER NOT NULL DEFAULT 15,
		admin      INTEGER NOT NULL DEFAULT 10,
		updated_at TEXT
	);

	CREATE TABLE IF NOT EXISTS daily_briefs (
		id                 INTEGER PRIMARY KEY AUTOINCREMENT,
		date               TEXT NOT NULL,
		brief_content      TEXT NOT NULL,
		decisions_required TEXT,
		drafts             TEXT,
		followups          TEXT,
		risks              TEXT,
		next_actions       TEXT,
		proton_update      TEXT,
		created_at         TEXT
	);
	CREATE INDEX IF NOT EXISTS idx_daily_briefs_date ON daily_briefs(date);

	CREATE TABLE IF NOT EXISTS learning_memories (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		context    TEXT NOT NULL,
		correction TEXT NOT NULL,
		category   TEXT NOT NULL,
		created_at TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_learning_memories_category ON learning_memories(category);
	CREATE INDEX IF NOT EXISTS idx_learning_memories_created ON learning_memories(created_at DESC);
	`
	_, err := c.db.Exec(schema)
	return err
}

// patchLegacyColumns adds timestamp columns missing from databases
// created before those columns existed. Failures are logged and
// ignored, matching the ad-hoc dev migration this replaces.
func (c *Client) patchLegacyColumns() {
	patches := []struct {
		table  string
		column string
		ddl    string
	}{
		{"priorities", "created_at", "ALTER TABLE priorities ADD COLUMN created_at TEXT"},
		{"projects", "created_at", "ALTER TABLE projects ADD COLUMN created_at TEXT"},
		{"projects", "updated_at", "ALTER TABLE projects ADD COLUMN updated_at TEXT"},
	}

	for _, p := range patches {
		if c.columnExists(p.table, p.column) {
			continue
		}
		if _, err := c.db.Exec(p.ddl); err != nil {
			log.Warn().Err(err).
				Str("table", p.table).
				Str("column", p.column).
				Msg("legacy column patch failed")
		}
	}
}

func (c *Client) columnExists(table, column string) bool {
	rows, err := c.db.Query(fmt.Sprintf("PRAGMA table_info(%q)", table))
	if err != nil {
		return false
	}
	defer rows.Close()

	for rows.Next() {
		var (
			cid       int
			name, typ string
			notNull   int
			dflt      sql.NullString
			pk        int
		)
		if err := rows.Scan(&cid, &name, &typ, &notNull, &dflt, &pk); err != nil {
			return false
		}
		if strings.EqualFold(name, column) {
			return true
		}
	}
	return false
}
