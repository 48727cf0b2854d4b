package database

import (
	"context"
	"errors"
	"testing"

	"github.com/meterhq/meter/internal/testutil"
)

func TestProjectRates(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)

	rate := 150.0
	currency := "€"
	if err := db.SetProjectRate(ctx, "acme", &rate, &currency); err != nil {
		t.Fatalf("SetProjectRate failed: %v", err)
	}

	p, err := db.GetProjectByName(ctx, "acme")
	if err != nil {
		t.Fatalf("GetProjectByName failed: %v", err)
	}
	if p.Rate == nil || *p.Rate != 150.0 {
		t.Fatalf("expected rate 150, got %+v", p.Rate)
	}
	if p.FormattedRate() != "€150.00/hr" {
		t.Fatalf("unexpected formatted rate %q", p.FormattedRate())
	}

	// Clearing the rate keeps the project.
	if err := db.SetProjectRate(ctx, "acme", nil, nil); err != nil {
		t.Fatalf("SetProjectRate clear failed: %v", err)
	}
	p, err = db.GetProjectByName(ctx, "acme")
	if err != nil {
		t.Fatalf("GetProjectByName failed: %v", err)
	}
	if p.Rate != nil {
		t.Fatalf("expected cleared rate, got %v", *p.Rate)
	}
	if p.FormattedRate() != "" {
		t.Fatalf("expected empty formatted rate, got %q", p.FormattedRate())
	}
}

func TestGetProjectByNameNotFound(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	if _, err := db.GetProjectByName(ctx, "ghost"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSyncProjectsFromEntries(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)

	for _, name := range []string{"alpha", "beta", "alpha"} {
		if _, err := db.SaveEntry(ctx, testutil.NewEntry().WithProject(name).Build()); err != nil {
			t.Fatalf("SaveEntry failed: %v", err)
		}
	}
	rate := 90.0
	if err := db.SetProjectRate(ctx, "beta", &rate, nil); err != nil {
		t.Fatalf("SetProjectRate failed: %v", err)
	}

	if err := db.SyncProjectsFromEntries(ctx); err != nil {
		t.Fatalf("SyncProjectsFromEntries failed: %v", err)
	}
	projects, err := db.ListProjects(ctx)
	if err != nil {
		t.Fatalf("ListProjects failed: %v", err)
	}
	if len(projects) != 2 {
		t.Fatalf("expected 2 projects, got %d", len(projects))
	}

	// The pre-existing rate survives the sync.
	rates, err := db.ProjectRates(ctx)
	if err != nil {
		t.Fatalf("ProjectRates failed: %v", err)
	}
	if p := rates["beta"]; p.Rate == nil || *p.Rate != 90.0 {
		t.Fatalf("sync clobbered rate: %+v", p)
	}
	if p := rates["alpha"]; p.Rate != nil {
		t.Fatalf("expected no rate for alpha, got %v", *p.Rate)
	}
}
