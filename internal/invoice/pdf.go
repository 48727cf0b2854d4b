package invoice

import (
	"fmt"

	"github.com/go-pdf/fpdf"
)

// WritePDF renders the invoice to an A4 PDF at path.
func WritePDF(inv *Invoice, path string) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 20)
	pdf.Cell(0, 12, fmt.Sprintf("INVOICE #%04d", inv.Number))
	pdf.Ln(16)

	if inv.From.BusinessName != "" {
		pdf.SetFont("Arial", "B", 11)
		pdf.Cell(0, 6, "From")
		pdf.Ln(6)
		pdf.SetFont("Arial", "", 10)
		pdf.MultiCell(0, 5, fromBlock(inv), "", "", false)
		pdf.Ln(3)
	}

	if inv.To != nil {
		pdf.SetFont("Arial", "B", 11)
		pdf.Cell(0, 6, "Bill To")
		pdf.Ln(6)
		pdf.SetFont("Arial", "", 10)
		pdf.MultiCell(0, 5, toBlock(inv), "", "", false)
		pdf.Ln(3)
	}

	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 5, fmt.Sprintf("Invoice Date: %s", inv.Date.Format(dateLayout)))
	pdf.Ln(5)
	pdf.Cell(0, 5, fmt.Sprintf("Due Date: %s", inv.DueDate.Format(dateLayout)))
	pdf.Ln(5)
	if inv.Terms != "" {
		pdf.Cell(0, 5, fmt.Sprintf("Terms: %s", inv.Terms))
		pdf.Ln(5)
	}
	pdf.Cell(0, 5, fmt.Sprintf("Period: %s to %s", inv.PeriodStart.Format(dateLayout), inv.PeriodEnd.AddDate(0, 0, -1).Format(dateLayout)))
	pdf.Ln(10)

	for _, g := range inv.Groups {
		pdf.SetFont("Arial", "B", 12)
		header := g.Project
		if g.HasRate {
			header += fmt.Sprintf("  (%s%.2f/hr)", g.Currency, g.Rate)
		}
		pdf.Cell(0, 8, header)
		pdf.Ln(8)

		pdf.SetFont("Arial", "B", 9)
		pdf.CellFormat(90, 6, "Description", "B", 0, "L", false, 0, "")
		pdf.CellFormat(30, 6, "Start", "B", 0, "L", false, 0, "")
		pdf.CellFormat(30, 6, "End", "B", 0, "L", false, 0, "")
		pdf.CellFormat(20, 6, "Hours", "B", 1, "R", false, 0, "")

		pdf.SetFont("Arial", "", 9)
		for _, line := range g.Lines {
			desc := line.Description
			if desc == "" {
				desc = "(no description)"
			}
			pdf.CellFormat(90, 6, truncate(desc, 52), "", 0, "L", false, 0, "")
			pdf.CellFormat(30, 6, line.Start.Format(dateLayout), "", 0, "L", false, 0, "")
			pdf.CellFormat(30, 6, line.End.Format(dateLayout), "", 0, "L", false, 0, "")
			pdf.CellFormat(20, 6, fmt.Sprintf("%.2f", line.Hours), "", 1, "R", false, 0, "")
		}

		pdf.SetFont("Arial", "B", 9)
		pdf.CellFormat(150, 6, "Total", "T", 0, "R", false, 0, "")
		pdf.CellFormat(20, 6, fmt.Sprintf("%.2f", g.Hours), "T", 1, "R", false, 0, "")
		if g.HasRate {
			pdf.CellFormat(170, 6, inv.money(g.Amount), "", 1, "R", false, 0, "")
		}
		pdf.Ln(4)
	}

	pdf.Ln(4)
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(170, 6, fmt.Sprintf("Subtotal: %s", inv.money(inv.Subtotal)), "", 1, "R", false, 0, "")
	if inv.TaxRate > 0 {
		pdf.CellFormat(170, 6, fmt.Sprintf("Tax (%.2f%%): %s", inv.TaxRate, inv.money(inv.Tax)), "", 1, "R", false, 0, "")
	}
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(170, 8, fmt.Sprintf("TOTAL DUE: %s", inv.money(inv.Total)), "", 1, "R", false, 0, "")

	if inv.From.PaymentInstructions != "" {
		pdf.Ln(6)
		pdf.SetFont("Arial", "B", 10)
		pdf.Cell(0, 6, "Payment Instructions")
		pdf.Ln(6)
		pdf.SetFont("Arial", "", 10)
		pdf.MultiCell(0, 5, inv.From.PaymentInstructions, "", "", false)
	}

	return pdf.OutputFileAndClose(path)
}

func fromBlock(inv *Invoice) string {
	out := inv.From.BusinessName
	if addr := inv.From.FormattedAddress(); addr != "" {
		out += "\n" + addr
	}
	if inv.From.Email != "" {
		out += "\n" + inv.From.Email
	}
	if inv.From.Phone != "" {
		out += "\n" + inv.From.Phone
	}
	if inv.From.TaxID != "" {
		out += "\nTax ID: " + inv.From.TaxID
	}
	return out
}

func toBlock(inv *Invoice) string {
	out := inv.To.Name
	if inv.To.ContactPerson != "" {
		out += "\nAttn: " + inv.To.ContactPerson
	}
	if addr := inv.To.FormattedAddress(); addr != "" {
		out += "\n" + addr
	}
	if inv.To.Email != "" {
		out += "\n" + inv.To.Email
	}
	return out
}
