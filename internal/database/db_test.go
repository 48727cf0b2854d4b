package database

import (
	"context"
	"path/filepath"
	"testing"
)

func setupTestDB(t *testing.T, ctx context.Context) *Database {
	t.Helper()
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "test.db")
	db, err := Open(ctx, dbPath)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Logf("db close failed: %v", err)
		}
	})
	return db
}

func TestOpenMigrationsIdempotent(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	if err := db.Close(); err != nil {
		t.Fatalf("db close failed: %v", err)
	}
	db2, err := Open(ctx, db.dbFile)
	if err != nil {
		t.Fatalf("Open second run failed: %v", err)
	}
	if err := db2.Close(); err != nil {
		t.Fatalf("db close failed: %v", err)
	}
}
