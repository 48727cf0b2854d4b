package models

import (
	"fmt"
	"strings"
	"time"
)

// Entry represents a single tracked work session. An entry with a nil End is
// the currently running timer; only finished entries are billable.
type Entry struct {
	ID          int64
	Project     string
	Description string
	Start       time.Time
	End         *time.Time
	Billed      bool
}

// Duration returns the tracked duration, or zero for a still-running entry.
func (e Entry) Duration() time.Duration {
	if e.End == nil {
		return 0
	}
	return e.End.Sub(e.Start)
}

// DurationHours returns the tracked duration as decimal hours rounded to 0.01.
func (e Entry) DurationHours() float64 {
	hours := e.Duration().Hours()
	return float64(int(hours*100+0.5)) / 100
}

// Project represents a billable project. Rate and Currency are nil when no
// rate has been configured.
type Project struct {
	ID       int64
	Name     string
	Rate     *float64
	Currency *string
}

// FormattedRate formats the rate with currency for display (e.g. "$150.00/hr").
// Returns empty string when no rate is set.
func (p Project) FormattedRate() string {
	if p.Rate == nil {
		return ""
	}
	currency := "$"
	if p.Currency != nil && *p.Currency != "" {
		currency = *p.Currency
	}
	return fmt.Sprintf("%s%.2f/hr", currency, *p.Rate)
}

// Client represents an invoice recipient.
type Client struct {
	ID             int64
	Name           string
	ContactPerson  string
	Email          string
	AddressStreet  string
	AddressCity    string
	AddressState   string
	AddressPostal  string
	AddressCountry string
}

// FormattedAddress renders the postal address as newline-separated lines,
// skipping empty components.
func (c Client) FormattedAddress() string {
	return formatAddress(c.AddressStreet, c.AddressCity, c.AddressState, c.AddressPostal, c.AddressCountry)
}

// InvoiceSettings holds the business identity printed on invoices.
type InvoiceSettings struct {
	BusinessName        string
	AddressStreet       string
	AddressCity         string
	AddressState        string
	AddressPostal       string
	AddressCountry      string
	Email               string
	Phone               string
	TaxID               string
	DefaultPaymentTerms string
	DefaultTaxRate      float64
	PaymentInstructions string
}

// FormattedAddress renders the business address as newline-separated lines.
func (s InvoiceSettings) FormattedAddress() string {
	return formatAddress(s.AddressStreet, s.AddressCity, s.AddressState, s.AddressPostal, s.AddressCountry)
}

func formatAddress(street, city, state, postal, country string) string {
	var lines []string
	if street != "" {
		lines = append(lines, street)
	}
	cityLine := strings.TrimSpace(strings.Trim(fmt.Sprintf("%s, %s %s", city, state, postal), ", "))
	if cityLine != "" {
		lines = append(lines, cityLine)
	}
	if country != "" {
		lines = append(lines, country)
	}
	return strings.Join(lines, "\n")
}

// Default pomodoro cadence (classic 25/5/15 with a long break every 4 cycles).
const (
	DefaultWorkMinutes           = 25
	DefaultShortBreakMinutes     = 5
	DefaultLongBreakMinutes      = 15
	DefaultCyclesBeforeLongBreak = 4
)

// PomodoroConfig holds the persisted work/break cadence.
type PomodoroConfig struct {
	Enabled               bool
	WorkMinutes           uint
	ShortBreakMinutes     uint
	LongBreakMinutes      uint
	CyclesBeforeLongBreak uint
}

// DefaultPomodoroConfig returns the standard cadence, disabled.
func DefaultPomodoroConfig() PomodoroConfig {
	return PomodoroConfig{
		WorkMinutes:           DefaultWorkMinutes,
		ShortBreakMinutes:     DefaultShortBreakMinutes,
		LongBreakMinutes:      DefaultLongBreakMinutes,
		CyclesBeforeLongBreak: DefaultCyclesBeforeLongBreak,
	}
}

// Validate checks that all durations are positive when the mode is enabled.
func (c PomodoroConfig) Validate() error {
	if !c.Enabled {
		return nil
	}
	if c.WorkMinutes == 0 {
		return fmt.Errorf("work duration must be positive")
	}
	if c.ShortBreakMinutes == 0 {
		return fmt.Errorf("short break duration must be positive")
	}
	if c.LongBreakMinutes == 0 {
		return fmt.Errorf("long break duration must be positive")
	}
	if c.CyclesBeforeLongBreak == 0 {
		return fmt.Errorf("cycles before long break must be positive")
	}
	return nil
}

// WorkDuration returns the work period length.
func (c PomodoroConfig) WorkDuration() time.Duration {
	return time.Duration(c.WorkMinutes) * time.Minute
}

// ShortBreakDuration returns the short break length.
func (c PomodoroConfig) ShortBreakDuration() time.Duration {
	return time.Duration(c.ShortBreakMinutes) * time.Minute
}

// LongBreakDuration returns the long break length.
func (c PomodoroConfig) LongBreakDuration() time.Duration {
	return time.Duration(c.LongBreakMinutes) * time.Minute
}
