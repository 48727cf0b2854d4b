package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/meterhq/meter/internal/testutil"
)

func TestEntryRoundTrip(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)

	entry := testutil.NewEntry().WithProject("acme").WithDuration(90 * time.Minute).Build()
	saved, err := db.SaveEntry(ctx, entry)
	if err != nil {
		t.Fatalf("SaveEntry failed: %v", err)
	}
	if saved.ID == 0 {
		t.Fatalf("SaveEntry returned zero ID")
	}

	got, err := db.GetEntry(ctx, saved.ID)
	if err != nil {
		t.Fatalf("GetEntry failed: %v", err)
	}
	if got.Project != "acme" {
		t.Fatalf("expected project acme, got %q", got.Project)
	}
	if got.DurationHours() != 1.5 {
		t.Fatalf("expected 1.5 hours, got %v", got.DurationHours())
	}
	if got.Billed {
		t.Fatalf("expected unbilled entry")
	}
}

func TestGetEntryNotFound(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	if _, err := db.GetEntry(ctx, 999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestStartStopActiveEntry(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)

	started, err := db.StartEntry(ctx, "acme", "api work")
	if err != nil {
		t.Fatalf("StartEntry failed: %v", err)
	}
	if started.End != nil {
		t.Fatalf("started entry must have nil end")
	}

	// A second open entry is refused.
	if _, err := db.StartEntry(ctx, "other", "x"); !errors.Is(err, ErrEntryRunning) {
		t.Fatalf("expected ErrEntryRunning, got %v", err)
	}

	active, err := db.ActiveEntry(ctx)
	if err != nil {
		t.Fatalf("ActiveEntry failed: %v", err)
	}
	if active == nil || active.ID != started.ID {
		t.Fatalf("expected active entry %d, got %+v", started.ID, active)
	}

	stopped, err := db.StopActiveEntry(ctx)
	if err != nil {
		t.Fatalf("StopActiveEntry failed: %v", err)
	}
	if stopped.End == nil {
		t.Fatalf("stopped entry must have an end")
	}

	if active, err := db.ActiveEntry(ctx); err != nil || active != nil {
		t.Fatalf("expected no active entry, got %+v (err %v)", active, err)
	}
	if _, err := db.StopActiveEntry(ctx); !errors.Is(err, ErrNoActiveEntry) {
		t.Fatalf("expected ErrNoActiveEntry, got %v", err)
	}
}

func TestListEntriesBilledFilter(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)

	if _, err := db.SaveEntry(ctx, testutil.NewEntry().WithProject("a").Build()); err != nil {
		t.Fatalf("SaveEntry failed: %v", err)
	}
	billedEntry, err := db.SaveEntry(ctx, testutil.NewEntry().WithProject("b").Billed().Build())
	if err != nil {
		t.Fatalf("SaveEntry failed: %v", err)
	}

	all, err := db.ListEntries(ctx, nil)
	if err != nil {
		t.Fatalf("ListEntries failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(all))
	}

	billed := true
	onlyBilled, err := db.ListEntries(ctx, &billed)
	if err != nil {
		t.Fatalf("ListEntries billed failed: %v", err)
	}
	if len(onlyBilled) != 1 || onlyBilled[0].ID != billedEntry.ID {
		t.Fatalf("expected only the billed entry, got %+v", onlyBilled)
	}
}

func TestListEntriesByDateRange(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)

	june := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	july := time.Date(2025, 7, 10, 12, 0, 0, 0, time.UTC)
	if _, err := db.SaveEntry(ctx, testutil.NewEntry().WithProject("june").EndingAt(june).Build()); err != nil {
		t.Fatalf("SaveEntry failed: %v", err)
	}
	if _, err := db.SaveEntry(ctx, testutil.NewEntry().WithProject("july").EndingAt(july).Build()); err != nil {
		t.Fatalf("SaveEntry failed: %v", err)
	}
	// A running entry never shows up in a range query.
	if _, err := db.StartEntry(ctx, "open", "running"); err != nil {
		t.Fatalf("StartEntry failed: %v", err)
	}

	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 30, 23, 59, 59, 0, time.UTC)
	entries, err := db.ListEntriesByDateRange(ctx, start, end, nil)
	if err != nil {
		t.Fatalf("ListEntriesByDateRange failed: %v", err)
	}
	if len(entries) != 1 || entries[0].Project != "june" {
		t.Fatalf("expected only the june entry, got %+v", entries)
	}
}

func TestBilledFlagUpdates(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)

	e1, err := db.SaveEntry(ctx, testutil.NewEntry().WithProject("a").Build())
	if err != nil {
		t.Fatalf("SaveEntry failed: %v", err)
	}
	if _, err := db.SaveEntry(ctx, testutil.NewEntry().WithProject("b").Build()); err != nil {
		t.Fatalf("SaveEntry failed: %v", err)
	}

	if err := db.SetEntryBilled(ctx, e1.ID, true); err != nil {
		t.Fatalf("SetEntryBilled failed: %v", err)
	}
	got, err := db.GetEntry(ctx, e1.ID)
	if err != nil {
		t.Fatalf("GetEntry failed: %v", err)
	}
	if !got.Billed {
		t.Fatalf("expected billed entry")
	}

	n, err := db.SetAllEntriesBilled(ctx, true)
	if err != nil {
		t.Fatalf("SetAllEntriesBilled failed: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 entry flipped, got %d", n)
	}

	if err := db.SetEntryBilled(ctx, 999, true); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateAndDeleteEntry(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)

	saved, err := db.SaveEntry(ctx, testutil.NewEntry().WithProject("a").Build())
	if err != nil {
		t.Fatalf("SaveEntry failed: %v", err)
	}
	saved.Description = "edited"
	if err := db.UpdateEntry(ctx, saved); err != nil {
		t.Fatalf("UpdateEntry failed: %v", err)
	}
	got, err := db.GetEntry(ctx, saved.ID)
	if err != nil {
		t.Fatalf("GetEntry failed: %v", err)
	}
	if got.Description != "edited" {
		t.Fatalf("expected edited description, got %q", got.Description)
	}

	if err := db.DeleteEntry(ctx, saved.ID); err != nil {
		t.Fatalf("DeleteEntry failed: %v", err)
	}
	if _, err := db.GetEntry(ctx, saved.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}
