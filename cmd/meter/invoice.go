package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/meterhq/meter/internal/invoice"
	"github.com/meterhq/meter/internal/models"
	"github.com/meterhq/meter/internal/util"
	"github.com/spf13/cobra"
)

var (
	invoiceMonth    int
	invoiceYear     int
	invoicePDF      bool
	invoiceClientID int64
	invoiceMark     bool
	invoiceOut      string
)

var invoiceCmd = &cobra.Command{
	Use:   "invoice",
	Short: "Generate an invoice from unbilled entries",
	Long: `Generates an invoice from the unbilled entries of a calendar month
(default: the previous month), grouped by project with configured rates
applied. Included entries are marked billed unless --keep-unbilled is set.`,
	RunE: runInvoice,
}

func init() {
	invoiceCmd.Flags().IntVar(&invoiceMonth, "month", 0, "invoice month (1-12, default: previous month)")
	invoiceCmd.Flags().IntVar(&invoiceYear, "year", 0, "invoice year (default: inferred)")
	invoiceCmd.Flags().BoolVar(&invoicePDF, "pdf", false, "write a PDF instead of text")
	invoiceCmd.Flags().Int64Var(&invoiceClientID, "client", 0, "client ID to bill")
	invoiceCmd.Flags().BoolVar(&invoiceMark, "keep-unbilled", false, "do not mark included entries billed")
	invoiceCmd.Flags().StringVarP(&invoiceOut, "output", "o", "", "output path (default: invoices dir for --pdf, stdout otherwise)")
	rootCmd.AddCommand(invoiceCmd)
}

func invoicePeriod(now time.Time) (time.Time, time.Time, error) {
	year, month := now.Year(), now.Month()
	if invoiceMonth == 0 {
		// Default to the month that just ended.
		month--
		if month == 0 {
			month = time.December
			year--
		}
	} else {
		if invoiceMonth < 1 || invoiceMonth > 12 {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid month %d", invoiceMonth)
		}
		month = time.Month(invoiceMonth)
	}
	if invoiceYear != 0 {
		year = invoiceYear
	}
	start, end := invoice.MonthRange(year, month)
	return start, end, nil
}

func runInvoice(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	db, err := openDB(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	now := time.Now()
	start, end, err := invoicePeriod(now)
	if err != nil {
		return err
	}

	unbilled := false
	entries, err := db.ListEntriesByDateRange(ctx, start, end.Add(-time.Second), &unbilled)
	if err != nil {
		return err
	}
	rates, err := db.ProjectRates(ctx)
	if err != nil {
		return err
	}

	var client *models.Client
	if invoiceClientID != 0 {
		c, err := db.GetClient(ctx, invoiceClientID)
		if err != nil {
			return err
		}
		client = &c
	}

	settings := db.GetInvoiceSettings(ctx)
	number, err := db.NextInvoiceNumber(ctx)
	if err != nil {
		return err
	}

	inv, err := invoice.Build(entries, rates, client, settings, number, now, start, end)
	if err != nil {
		return err
	}

	if invoicePDF {
		path := invoiceOut
		if path == "" {
			dir := util.InvoicesDir("meter")
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("create invoices dir: %w", err)
			}
			path = filepath.Join(dir, fmt.Sprintf("invoice_%04d.pdf", inv.Number))
		}
		if err := invoice.WritePDF(inv, path); err != nil {
			return fmt.Errorf("write PDF: %w", err)
		}
		fmt.Printf("Invoice #%04d written to %s\n", inv.Number, path)
	} else {
		text := invoice.RenderText(inv)
		if invoiceOut != "" {
			if err := os.WriteFile(invoiceOut, []byte(text), 0o644); err != nil {
				return err
			}
			fmt.Printf("Invoice #%04d written to %s\n", inv.Number, invoiceOut)
		} else {
			fmt.Print(text)
		}
	}

	if !invoiceMark {
		for _, e := range entries {
			if e.End == nil {
				continue
			}
			if err := db.SetEntryBilled(ctx, e.ID, true); err != nil {
				return err
			}
		}
	}
	return nil
}
