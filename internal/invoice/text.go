package invoice

import (
	"fmt"
	"strings"
)

const dateLayout = "2006-01-02"

// RenderText renders the invoice as a plain text document suitable for the
// terminal or a .txt attachment.
func RenderText(inv *Invoice) string {
	var b strings.Builder

	fmt.Fprintf(&b, "INVOICE #%04d\n", inv.Number)
	fmt.Fprintf(&b, "%s\n\n", strings.Repeat("=", 60))

	if inv.From.BusinessName != "" {
		fmt.Fprintf(&b, "From: %s\n", inv.From.BusinessName)
		writeIndented(&b, inv.From.FormattedAddress())
		if inv.From.Email != "" {
			fmt.Fprintf(&b, "      %s\n", inv.From.Email)
		}
		if inv.From.Phone != "" {
			fmt.Fprintf(&b, "      %s\n", inv.From.Phone)
		}
		if inv.From.TaxID != "" {
			fmt.Fprintf(&b, "      Tax ID: %s\n", inv.From.TaxID)
		}
		b.WriteString("\n")
	}

	if inv.To != nil {
		fmt.Fprintf(&b, "Bill To: %s\n", inv.To.Name)
		if inv.To.ContactPerson != "" {
			fmt.Fprintf(&b, "      Attn: %s\n", inv.To.ContactPerson)
		}
		writeIndented(&b, inv.To.FormattedAddress())
		if inv.To.Email != "" {
			fmt.Fprintf(&b, "      %s\n", inv.To.Email)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "Invoice Date: %s\n", inv.Date.Format(dateLayout))
	fmt.Fprintf(&b, "Due Date:     %s\n", inv.DueDate.Format(dateLayout))
	if inv.Terms != "" {
		fmt.Fprintf(&b, "Terms:        %s\n", inv.Terms)
	}
	fmt.Fprintf(&b, "Period:       %s to %s\n\n", inv.PeriodStart.Format(dateLayout), inv.PeriodEnd.AddDate(0, 0, -1).Format(dateLayout))

	for _, g := range inv.Groups {
		fmt.Fprintf(&b, "Project: %s", g.Project)
		if g.HasRate {
			fmt.Fprintf(&b, " (%s%.2f/hr)", g.Currency, g.Rate)
		}
		b.WriteString("\n")
		fmt.Fprintf(&b, "%s\n", strings.Repeat("-", 60))
		for _, line := range g.Lines {
			desc := line.Description
			if desc == "" {
				desc = "(no description)"
			}
			fmt.Fprintf(&b, "  %-36s %s %5.2fh\n", truncate(desc, 36), line.Start.Format(dateLayout), line.Hours)
		}
		fmt.Fprintf(&b, "  %50s %5.2fh", "Total:", g.Hours)
		if g.HasRate {
			fmt.Fprintf(&b, "  %s", inv.money(g.Amount))
		}
		b.WriteString("\n\n")
	}

	fmt.Fprintf(&b, "%s\n", strings.Repeat("=", 60))
	fmt.Fprintf(&b, "Subtotal: %s\n", inv.money(inv.Subtotal))
	if inv.TaxRate > 0 {
		fmt.Fprintf(&b, "Tax (%.2f%%): %s\n", inv.TaxRate, inv.money(inv.Tax))
	}
	fmt.Fprintf(&b, "TOTAL DUE: %s\n", inv.money(inv.Total))

	if inv.From.PaymentInstructions != "" {
		fmt.Fprintf(&b, "\nPayment Instructions:\n%s\n", inv.From.PaymentInstructions)
	}

	return b.String()
}

func writeIndented(b *strings.Builder, block string) {
	if block == "" {
		return
	}
	for _, line := range strings.Split(block, "\n") {
		fmt.Fprintf(b, "      %s\n", line)
	}
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
