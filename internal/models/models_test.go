package models

import (
	"testing"
	"time"
)

func TestEntryDurationHours(t *testing.T) {
	end := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	cases := []struct {
		name string
		d    time.Duration
		want float64
	}{
		{"ninety minutes", 90 * time.Minute, 1.5},
		{"forty five minutes", 45 * time.Minute, 0.75},
		{"rounds to cent", 100 * time.Minute, 1.67},
		{"one second", time.Second, 0.0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := Entry{Start: end.Add(-tc.d), End: &end}
			if got := e.DurationHours(); got != tc.want {
				t.Fatalf("expected %v hours, got %v", tc.want, got)
			}
		})
	}
}

func TestRunningEntryDuration(t *testing.T) {
	e := Entry{Start: time.Now()}
	if e.Duration() != 0 {
		t.Fatalf("running entry must report zero duration")
	}
}

func TestProjectFormattedRate(t *testing.T) {
	rate := 150.0
	eur := "€"
	cases := []struct {
		name string
		p    Project
		want string
	}{
		{"no rate", Project{Name: "a"}, ""},
		{"default currency", Project{Name: "a", Rate: &rate}, "$150.00/hr"},
		{"explicit currency", Project{Name: "a", Rate: &rate, Currency: &eur}, "€150.00/hr"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.p.FormattedRate(); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestClientFormattedAddress(t *testing.T) {
	c := Client{
		AddressStreet:  "100 Industry Way",
		AddressCity:    "Cypress Creek",
		AddressState:   "OR",
		AddressPostal:  "97000",
		AddressCountry: "USA",
	}
	want := "100 Industry Way\nCypress Creek, OR 97000\nUSA"
	if got := c.FormattedAddress(); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
	if got := (Client{}).FormattedAddress(); got != "" {
		t.Fatalf("expected empty address, got %q", got)
	}
}

func TestPomodoroConfigValidate(t *testing.T) {
	cfg := DefaultPomodoroConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("disabled config must validate: %v", err)
	}
	cfg.Enabled = true
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default enabled config must validate: %v", err)
	}
	cfg.WorkMinutes = 0
	if err := cfg.Validate(); err == nil {
		t.Fatalf("zero work duration must fail validation")
	}
	// Disabled configs skip duration checks entirely.
	cfg.Enabled = false
	if err := cfg.Validate(); err != nil {
		t.Fatalf("disabled config must validate: %v", err)
	}
}
