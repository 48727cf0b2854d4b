package invoice

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/meterhq/meter/internal/models"
	"github.com/meterhq/meter/internal/testutil"
)

func testRates() map[string]models.Project {
	rate := 100.0
	return map[string]models.Project{
		"acme": {Name: "acme", Rate: &rate},
	}
}

func testSettings() models.InvoiceSettings {
	return models.InvoiceSettings{
		BusinessName:        "Meter Consulting",
		Email:               "billing@meter.test",
		DefaultPaymentTerms: "Net 30",
		DefaultTaxRate:      10,
		PaymentInstructions: "Wire to IBAN XX00",
	}
}

func TestBuildComputesTotals(t *testing.T) {
	entries := []models.Entry{
		testutil.NewEntry().WithProject("acme").WithDescription("api work").WithDuration(90 * time.Minute).Build(),
		testutil.NewEntry().WithProject("acme").WithDescription("review").WithDuration(30 * time.Minute).Build(),
		testutil.NewEntry().WithProject("internal").WithDuration(time.Hour).Build(),
	}
	start, end := MonthRange(2025, time.June)
	issued := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)

	inv, err := Build(entries, testRates(), nil, testSettings(), 7, issued, start, end)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if len(inv.Groups) != 2 {
		t.Fatalf("expected 2 project groups, got %d", len(inv.Groups))
	}
	// Groups are sorted by project name.
	acme := inv.Groups[0]
	if acme.Project != "acme" || acme.Hours != 2.0 || acme.Amount != 200.0 {
		t.Fatalf("unexpected acme group: %+v", acme)
	}
	internal := inv.Groups[1]
	if internal.HasRate || internal.Amount != 0 {
		t.Fatalf("unrated project must contribute nothing: %+v", internal)
	}

	if inv.Subtotal != 200.0 {
		t.Fatalf("expected subtotal 200, got %v", inv.Subtotal)
	}
	if inv.Tax != 20.0 {
		t.Fatalf("expected tax 20, got %v", inv.Tax)
	}
	if inv.Total != 220.0 {
		t.Fatalf("expected total 220, got %v", inv.Total)
	}
	if want := issued.AddDate(0, 0, 30); !inv.DueDate.Equal(want) {
		t.Fatalf("expected due date %v, got %v", want, inv.DueDate)
	}
}

func TestBuildSkipsRunningEntries(t *testing.T) {
	entries := []models.Entry{
		testutil.NewEntry().WithProject("acme").Running().Build(),
	}
	start, end := MonthRange(2025, time.June)
	if _, err := Build(entries, nil, nil, testSettings(), 1, time.Now(), start, end); err == nil {
		t.Fatalf("expected error when only a running entry is present")
	}
}

func TestDueDate(t *testing.T) {
	issued := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	cases := []struct {
		terms string
		days  int
	}{
		{"Net 15", 15},
		{"net 30", 30},
		{"NET 60", 60},
		{"Due on receipt", 0},
		{"", 0},
		{"Net potato", 0},
	}
	for _, tc := range cases {
		if got := DueDate(issued, tc.terms); !got.Equal(issued.AddDate(0, 0, tc.days)) {
			t.Fatalf("terms %q: expected +%d days, got %v", tc.terms, tc.days, got)
		}
	}
}

func TestMonthRange(t *testing.T) {
	start, end := MonthRange(2025, time.December)
	if start.Month() != time.December || start.Day() != 1 {
		t.Fatalf("unexpected start %v", start)
	}
	if end.Year() != 2026 || end.Month() != time.January {
		t.Fatalf("expected rollover into January, got %v", end)
	}
}

func TestRenderText(t *testing.T) {
	entries := []models.Entry{
		testutil.NewEntry().WithProject("acme").WithDescription("api work").WithDuration(2 * time.Hour).Build(),
	}
	client := testutil.NewClient().Build()
	start, end := MonthRange(2025, time.June)
	issued := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)

	inv, err := Build(entries, testRates(), &client, testSettings(), 12, issued, start, end)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	out := RenderText(inv)
	for _, want := range []string{
		"INVOICE #0012",
		"From: Meter Consulting",
		"Bill To: Globex Corp",
		"Due Date:     2025-07-31",
		"Project: acme ($100.00/hr)",
		"api work",
		"Subtotal: $200.00",
		"Tax (10.00%): $20.00",
		"TOTAL DUE: $220.00",
		"Wire to IBAN XX00",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("rendered invoice missing %q:\n%s", want, out)
		}
	}
}

func TestWritePDF(t *testing.T) {
	entries := []models.Entry{
		testutil.NewEntry().WithProject("acme").WithDuration(time.Hour).Build(),
	}
	start, end := MonthRange(2025, time.June)
	inv, err := Build(entries, testRates(), nil, testSettings(), 1, time.Now(), start, end)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	path := filepath.Join(t.TempDir(), "invoice.pdf")
	if err := WritePDF(inv, path); err != nil {
		t.Fatalf("WritePDF failed: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat failed: %v", err)
	}
	if info.Size() == 0 {
		t.Fatalf("expected non-empty PDF")
	}
}
