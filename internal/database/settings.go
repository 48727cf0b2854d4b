package database

import (
	"context"
	"strconv"

	"github.com/meterhq/meter/internal/models"
)

// Settings keys. Everything configurable lives in the settings table so a
// single file holds the whole state.
const (
	keyPomodoroEnabled    = "pomodoro_enabled"
	keyPomodoroWork       = "pomodoro_work_minutes"
	keyPomodoroShortBreak = "pomodoro_short_break_minutes"
	keyPomodoroLongBreak  = "pomodoro_long_break_minutes"
	keyPomodoroCycles     = "pomodoro_cycles_before_long_break"

	keyBusinessName        = "invoice_business_name"
	keyBusinessStreet      = "invoice_address_street"
	keyBusinessCity        = "invoice_address_city"
	keyBusinessState       = "invoice_address_state"
	keyBusinessPostal      = "invoice_address_postal"
	keyBusinessCountry     = "invoice_address_country"
	keyBusinessEmail       = "invoice_email"
	keyBusinessPhone       = "invoice_phone"
	keyBusinessTaxID       = "invoice_tax_id"
	keyPaymentTerms        = "invoice_payment_terms"
	keyDefaultTaxRate      = "invoice_default_tax_rate"
	keyPaymentInstructions = "invoice_payment_instructions"

	keyNextInvoiceNumber = "invoice_next_number"
)

// GetSetting reads one settings value. The second return reports presence.
func (d *Database) GetSetting(ctx context.Context, key string) (string, bool) {
	var value *string
	err := d.db.QueryRowContext(ctx, "SELECT value FROM settings WHERE key = ?", key).Scan(&value)
	if err != nil || value == nil {
		return "", false
	}
	return *value, true
}

// SetSetting upserts one settings value.
func (d *Database) SetSetting(ctx context.Context, key, value string) error {
	_, err := d.db.ExecContext(ctx,
		"INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		key, value)
	return err
}

// GetPomodoroConfig loads the pomodoro cadence, falling back to defaults for
// missing or malformed values.
func (d *Database) GetPomodoroConfig(ctx context.Context) models.PomodoroConfig {
	cfg := models.DefaultPomodoroConfig()
	if v, ok := d.GetSetting(ctx, keyPomodoroEnabled); ok {
		cfg.Enabled = v == "true"
	}
	cfg.WorkMinutes = d.uintSetting(ctx, keyPomodoroWork, cfg.WorkMinutes)
	cfg.ShortBreakMinutes = d.uintSetting(ctx, keyPomodoroShortBreak, cfg.ShortBreakMinutes)
	cfg.LongBreakMinutes = d.uintSetting(ctx, keyPomodoroLongBreak, cfg.LongBreakMinutes)
	cfg.CyclesBeforeLongBreak = d.uintSetting(ctx, keyPomodoroCycles, cfg.CyclesBeforeLongBreak)
	return cfg
}

// SetPomodoroConfig persists the pomodoro cadence.
func (d *Database) SetPomodoroConfig(ctx context.Context, cfg models.PomodoroConfig) error {
	pairs := map[string]string{
		keyPomodoroEnabled:    strconv.FormatBool(cfg.Enabled),
		keyPomodoroWork:       strconv.FormatUint(uint64(cfg.WorkMinutes), 10),
		keyPomodoroShortBreak: strconv.FormatUint(uint64(cfg.ShortBreakMinutes), 10),
		keyPomodoroLongBreak:  strconv.FormatUint(uint64(cfg.LongBreakMinutes), 10),
		keyPomodoroCycles:     strconv.FormatUint(uint64(cfg.CyclesBeforeLongBreak), 10),
	}
	for key, value := range pairs {
		if err := d.SetSetting(ctx, key, value); err != nil {
			return err
		}
	}
	return nil
}

// SetPomodoroEnabled flips only the enabled flag.
func (d *Database) SetPomodoroEnabled(ctx context.Context, enabled bool) error {
	return d.SetSetting(ctx, keyPomodoroEnabled, strconv.FormatBool(enabled))
}

// GetInvoiceSettings loads the business identity for invoices. Missing keys
// come back as empty fields; the payment terms default to due on receipt.
func (d *Database) GetInvoiceSettings(ctx context.Context) models.InvoiceSettings {
	s := models.InvoiceSettings{DefaultPaymentTerms: "Due on receipt"}
	get := func(key string) string {
		v, _ := d.GetSetting(ctx, key)
		return v
	}
	s.BusinessName = get(keyBusinessName)
	s.AddressStreet = get(keyBusinessStreet)
	s.AddressCity = get(keyBusinessCity)
	s.AddressState = get(keyBusinessState)
	s.AddressPostal = get(keyBusinessPostal)
	s.AddressCountry = get(keyBusinessCountry)
	s.Email = get(keyBusinessEmail)
	s.Phone = get(keyBusinessPhone)
	s.TaxID = get(keyBusinessTaxID)
	if v, ok := d.GetSetting(ctx, keyPaymentTerms); ok && v != "" {
		s.DefaultPaymentTerms = v
	}
	if v, ok := d.GetSetting(ctx, keyDefaultTaxRate); ok {
		if rate, err := strconv.ParseFloat(v, 64); err == nil {
			s.DefaultTaxRate = rate
		}
	}
	s.PaymentInstructions = get(keyPaymentInstructions)
	return s
}

// SetInvoiceSettings persists the business identity.
func (d *Database) SetInvoiceSettings(ctx context.Context, s models.InvoiceSettings) error {
	pairs := map[string]string{
		keyBusinessName:        s.BusinessName,
		keyBusinessStreet:      s.AddressStreet,
		keyBusinessCity:        s.AddressCity,
		keyBusinessState:       s.AddressState,
		keyBusinessPostal:      s.AddressPostal,
		keyBusinessCountry:     s.AddressCountry,
		keyBusinessEmail:       s.Email,
		keyBusinessPhone:       s.Phone,
		keyBusinessTaxID:       s.TaxID,
		keyPaymentTerms:        s.DefaultPaymentTerms,
		keyDefaultTaxRate:      strconv.FormatFloat(s.DefaultTaxRate, 'f', -1, 64),
		keyPaymentInstructions: s.PaymentInstructions,
	}
	for key, value := range pairs {
		if err := d.SetSetting(ctx, key, value); err != nil {
			return err
		}
	}
	return nil
}

// NextInvoiceNumber returns the next invoice number and advances the counter.
func (d *Database) NextInvoiceNumber(ctx context.Context) (int64, error) {
	next := int64(1)
	if v, ok := d.GetSetting(ctx, keyNextInvoiceNumber); ok {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			next = n
		}
	}
	if err := d.SetSetting(ctx, keyNextInvoiceNumber, strconv.FormatInt(next+1, 10)); err != nil {
		return 0, err
	}
	return next, nil
}

func (d *Database) uintSetting(ctx context.Context, key string, fallback uint) uint {
	v, ok := d.GetSetting(ctx, key)
	if !ok {
		return fallback
	}
	n, err := strconv.ParseUint(v, 10, 32)
	if err != nil || n == 0 {
		return fallback
	}
	return uint(n)
}
