// Package invoice assembles billable entries into invoices and renders them
// as plain text or PDF.
package invoice

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/meterhq/meter/internal/models"
)

// Line is a single billed work session on an invoice.
type Line struct {
	Description string
	Start       time.Time
	End         time.Time
	Hours       float64
}

// ProjectGroup collects the lines of one project with its rate applied.
type ProjectGroup struct {
	Project  string
	Rate     float64
	HasRate  bool
	Currency string
	Lines    []Line
	Hours    float64
	Amount   float64
}

// Invoice is a fully computed invoice ready for rendering.
type Invoice struct {
	Number      int64
	Date        time.Time
	DueDate     time.Time
	Terms       string
	PeriodStart time.Time
	PeriodEnd   time.Time
	From        models.InvoiceSettings
	To          *models.Client
	Groups      []ProjectGroup
	Currency    string
	Subtotal    float64
	TaxRate     float64
	Tax         float64
	Total       float64
}

// Build groups finished entries by project, applies configured rates and tax,
// and computes totals. Entries still running are skipped. Returns an error
// when nothing is billable.
func Build(entries []models.Entry, rates map[string]models.Project, client *models.Client, settings models.InvoiceSettings, number int64, issued time.Time, periodStart, periodEnd time.Time) (*Invoice, error) {
	groups := make(map[string]*ProjectGroup)
	for _, e := range entries {
		if e.End == nil {
			continue
		}
		g, ok := groups[e.Project]
		if !ok {
			g = &ProjectGroup{Project: e.Project, Currency: "$"}
			if p, ok := rates[e.Project]; ok && p.Rate != nil {
				g.Rate = *p.Rate
				g.HasRate = true
				if p.Currency != nil && *p.Currency != "" {
					g.Currency = *p.Currency
				}
			}
			groups[e.Project] = g
		}
		g.Lines = append(g.Lines, Line{
			Description: e.Description,
			Start:       e.Start,
			End:         *e.End,
			Hours:       e.DurationHours(),
		})
		g.Hours += e.DurationHours()
	}
	if len(groups) == 0 {
		return nil, fmt.Errorf("no billable entries in period")
	}

	inv := &Invoice{
		Number:      number,
		Date:        issued,
		Terms:       settings.DefaultPaymentTerms,
		PeriodStart: periodStart,
		PeriodEnd:   periodEnd,
		From:        settings,
		To:          client,
		TaxRate:     settings.DefaultTaxRate,
		Currency:    "$",
	}
	inv.DueDate = DueDate(issued, inv.Terms)

	names := make([]string, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		g := groups[name]
		sort.Slice(g.Lines, func(i, j int) bool { return g.Lines[i].Start.Before(g.Lines[j].Start) })
		g.Amount = g.Hours * g.Rate
		inv.Subtotal += g.Amount
		if g.HasRate && g.Currency != "$" {
			inv.Currency = g.Currency
		}
		inv.Groups = append(inv.Groups, *g)
	}

	inv.Tax = inv.Subtotal * inv.TaxRate / 100
	inv.Total = inv.Subtotal + inv.Tax
	return inv, nil
}

// DueDate computes the payment due date from terms like "Net 30". Anything
// unrecognized (including "Due on receipt") falls back to the issue date.
func DueDate(issued time.Time, terms string) time.Time {
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(terms)))
	if len(fields) == 2 && fields[0] == "net" {
		if days, err := strconv.Atoi(fields[1]); err == nil && days > 0 {
			return issued.AddDate(0, 0, days)
		}
	}
	return issued
}

// MonthRange returns the half-open [start, end) bounds of a calendar month.
func MonthRange(year int, month time.Month) (time.Time, time.Time) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	return start, start.AddDate(0, 1, 0)
}

func (inv *Invoice) money(amount float64) string {
	return fmt.Sprintf("%s%.2f", inv.Currency, amount)
}
