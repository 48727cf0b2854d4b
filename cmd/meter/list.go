package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/meterhq/meter/internal/invoice"
	"github.com/meterhq/meter/internal/models"
	"github.com/meterhq/meter/internal/util"
	"github.com/spf13/cobra"
)

var (
	listBilled   bool
	listUnbilled bool
	listMonth    int
	listYear     int
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded entries, newest first",
	RunE:  runList,
}

func init() {
	listCmd.Flags().BoolVar(&listBilled, "billed", false, "only billed entries")
	listCmd.Flags().BoolVar(&listUnbilled, "unbilled", false, "only unbilled entries")
	listCmd.Flags().IntVar(&listMonth, "month", 0, "restrict to a calendar month (1-12)")
	listCmd.Flags().IntVar(&listYear, "year", 0, "year for --month (default: current)")
	rootCmd.AddCommand(listCmd)
}

func billedFilter() (*bool, error) {
	if listBilled && listUnbilled {
		return nil, fmt.Errorf("--billed and --unbilled are mutually exclusive")
	}
	if listBilled {
		b := true
		return &b, nil
	}
	if listUnbilled {
		b := false
		return &b, nil
	}
	return nil, nil
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	db, err := openDB(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	filter, err := billedFilter()
	if err != nil {
		return err
	}

	var entries []models.Entry
	if listMonth != 0 {
		if listMonth < 1 || listMonth > 12 {
			return fmt.Errorf("invalid month %d", listMonth)
		}
		year := listYear
		if year == 0 {
			year = time.Now().Year()
		}
		start, end := invoice.MonthRange(year, time.Month(listMonth))
		entries, err = db.ListEntriesByDateRange(ctx, start, end.Add(-time.Second), filter)
	} else {
		entries, err = db.ListEntries(ctx, filter)
	}
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("No entries.")
		return nil
	}

	printEntries(entries)
	return nil
}

func printEntries(entries []models.Entry) {
	fmt.Printf("%-5s %-3s %-12s %-20s %-9s %s\n", "ID", "", "DATE", "PROJECT", "TIME", "DESCRIPTION")
	var total time.Duration
	for _, e := range entries {
		billed := ""
		if e.Billed {
			billed = "[x]"
		}
		dur := "running"
		if e.End != nil {
			dur = util.FormatDuration(e.Duration())
			total += e.Duration()
		}
		fmt.Printf("%-5s %-3s %-12s %-20s %-9s %s\n",
			strconv.FormatInt(e.ID, 10), billed,
			e.Start.Local().Format("2006-01-02"),
			truncate(e.Project, 20), dur, e.Description)
	}
	fmt.Printf("\nTotal: %s (%.2fh) across %d entries\n",
		util.FormatDuration(total), total.Hours(), len(entries))
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
