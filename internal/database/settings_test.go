package database

import (
	"context"
	"testing"

	"github.com/meterhq/meter/internal/models"
)

func TestSettingsRoundTrip(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)

	if _, ok := db.GetSetting(ctx, "missing"); ok {
		t.Fatalf("expected missing key")
	}
	if err := db.SetSetting(ctx, "theme", "dark"); err != nil {
		t.Fatalf("SetSetting failed: %v", err)
	}
	if err := db.SetSetting(ctx, "theme", "light"); err != nil {
		t.Fatalf("SetSetting upsert failed: %v", err)
	}
	v, ok := db.GetSetting(ctx, "theme")
	if !ok || v != "light" {
		t.Fatalf("expected light, got %q (ok=%v)", v, ok)
	}
}

func TestPomodoroConfigPersistence(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)

	// Defaults come back for a fresh database.
	cfg := db.GetPomodoroConfig(ctx)
	if cfg.Enabled {
		t.Fatalf("expected disabled by default")
	}
	if cfg.WorkMinutes != models.DefaultWorkMinutes {
		t.Fatalf("expected default work minutes, got %d", cfg.WorkMinutes)
	}

	cfg.Enabled = true
	cfg.WorkMinutes = 50
	cfg.ShortBreakMinutes = 10
	cfg.LongBreakMinutes = 30
	cfg.CyclesBeforeLongBreak = 2
	if err := db.SetPomodoroConfig(ctx, cfg); err != nil {
		t.Fatalf("SetPomodoroConfig failed: %v", err)
	}

	got := db.GetPomodoroConfig(ctx)
	if got != cfg {
		t.Fatalf("config round trip mismatch: %+v != %+v", got, cfg)
	}

	if err := db.SetPomodoroEnabled(ctx, false); err != nil {
		t.Fatalf("SetPomodoroEnabled failed: %v", err)
	}
	got = db.GetPomodoroConfig(ctx)
	if got.Enabled {
		t.Fatalf("expected disabled")
	}
	if got.WorkMinutes != 50 {
		t.Fatalf("enable toggle clobbered durations: %+v", got)
	}
}

func TestInvoiceSettingsPersistence(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)

	s := db.GetInvoiceSettings(ctx)
	if s.DefaultPaymentTerms != "Due on receipt" {
		t.Fatalf("expected default terms, got %q", s.DefaultPaymentTerms)
	}

	s.BusinessName = "Meter Consulting"
	s.Email = "me@meter.test"
	s.DefaultPaymentTerms = "Net 30"
	s.DefaultTaxRate = 8.5
	s.PaymentInstructions = "Wire to IBAN XX00"
	if err := db.SetInvoiceSettings(ctx, s); err != nil {
		t.Fatalf("SetInvoiceSettings failed: %v", err)
	}

	got := db.GetInvoiceSettings(ctx)
	if got != s {
		t.Fatalf("settings round trip mismatch: %+v != %+v", got, s)
	}
}

func TestNextInvoiceNumber(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)

	for want := int64(1); want <= 3; want++ {
		n, err := db.NextInvoiceNumber(ctx)
		if err != nil {
			t.Fatalf("NextInvoiceNumber failed: %v", err)
		}
		if n != want {
			t.Fatalf("expected invoice number %d, got %d", want, n)
		}
	}
}
