package database

import (
	"context"
	"errors"
	"testing"

	"github.com/meterhq/meter/internal/testutil"
)

func TestClientCRUD(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)

	id, err := db.AddClient(ctx, testutil.NewClient().WithName("Globex").Build())
	if err != nil {
		t.Fatalf("AddClient failed: %v", err)
	}
	if id == 0 {
		t.Fatalf("AddClient returned zero ID")
	}

	c, err := db.GetClient(ctx, id)
	if err != nil {
		t.Fatalf("GetClient failed: %v", err)
	}
	if c.Name != "Globex" {
		t.Fatalf("expected Globex, got %q", c.Name)
	}

	c.Email = "accounts@globex.test"
	if err := db.UpdateClient(ctx, c); err != nil {
		t.Fatalf("UpdateClient failed: %v", err)
	}
	c, err = db.GetClient(ctx, id)
	if err != nil {
		t.Fatalf("GetClient failed: %v", err)
	}
	if c.Email != "accounts@globex.test" {
		t.Fatalf("expected updated email, got %q", c.Email)
	}

	clients, err := db.ListClients(ctx)
	if err != nil {
		t.Fatalf("ListClients failed: %v", err)
	}
	if len(clients) != 1 {
		t.Fatalf("expected 1 client, got %d", len(clients))
	}

	if err := db.DeleteClient(ctx, id); err != nil {
		t.Fatalf("DeleteClient failed: %v", err)
	}
	if _, err := db.GetClient(ctx, id); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestClientNotFoundOps(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)

	if err := db.DeleteClient(ctx, 404); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	ghost := testutil.NewClient().Build()
	ghost.ID = 404
	if err := db.UpdateClient(ctx, ghost); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
