// Package database persists time entries, projects, clients, and settings in
// a local SQLite file.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// timeFormat is the storage format for instants, matching RFC 3339 with the
// original sub-second precision dropped.
const timeFormat = time.RFC3339

// Database owns the SQLite connection. All access goes through its methods;
// the raw handle is unexported.
type Database struct {
	db     *sql.DB
	dbFile string
}

// Open opens (creating if necessary) the database at path and applies the
// schema and migrations.
func Open(ctx context.Context, path string) (*Database, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", path, err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database %s: %w", path, err)
	}
	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}
	d := &Database{db: db, dbFile: path}
	if err := d.createTables(ctx); err != nil {
		db.Close()
		return nil, err
	}
	d.migrate(ctx)
	return d, nil
}

// Close releases the underlying connection.
func (d *Database) Close() error {
	return d.db.Close()
}

func (d *Database) createTables(ctx context.Context) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS entries (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			project TEXT NOT NULL,
			description TEXT NOT NULL,
			start TEXT NOT NULL,
			end TEXT,
			billed INTEGER NOT NULL DEFAULT 0
		);`,
		`CREATE TABLE IF NOT EXISTS projects (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL UNIQUE,
			rate REAL,
			currency TEXT
		);`,
		`CREATE TABLE IF NOT EXISTS clients (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			contact_person TEXT NOT NULL DEFAULT '',
			email TEXT NOT NULL DEFAULT '',
			address_street TEXT NOT NULL DEFAULT '',
			address_city TEXT NOT NULL DEFAULT '',
			address_state TEXT NOT NULL DEFAULT '',
			address_postal TEXT NOT NULL DEFAULT '',
			address_country TEXT NOT NULL DEFAULT ''
		);`,
		`CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT
		);`,
	}
	for _, query := range queries {
		if _, err := d.db.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("create table: %w", err)
		}
	}
	return nil
}

// migrate applies additive schema changes for databases created by earlier
// versions. ALTER TABLE errors are ignored; reruns are harmless.
func (d *Database) migrate(ctx context.Context) {
	_, _ = d.db.ExecContext(ctx, "ALTER TABLE projects ADD COLUMN currency TEXT")
	_, _ = d.db.ExecContext(ctx, "ALTER TABLE clients ADD COLUMN contact_person TEXT NOT NULL DEFAULT ''")
	_, _ = d.db.ExecContext(ctx, "ALTER TABLE clients ADD COLUMN address_country TEXT NOT NULL DEFAULT ''")
}
