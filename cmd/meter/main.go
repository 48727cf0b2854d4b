package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/meterhq/meter/internal/database"
	"github.com/meterhq/meter/internal/util"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "meter",
	Short: "meter - personal time tracking and invoicing",
	Long: `meter tracks billable time per project, optionally paced by a pomodoro
work/break cadence, and turns unbilled entries into invoices.`,
	SilenceUsage: true,
}

var dbPath string

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "path to the database file (default: XDG data dir)")
}

// openDB opens (creating if needed) the entry database and refreshes the
// projects table from recorded entries.
func openDB(ctx context.Context) (*database.Database, error) {
	path := dbPath
	if path == "" {
		dir := util.DataDir("meter")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
		path = filepath.Join(dir, "meter.db")
	}
	db, err := database.Open(ctx, path)
	if err != nil {
		return nil, err
	}
	if err := db.SyncProjectsFromEntries(ctx); err != nil {
		util.LogError("sync projects", err)
	}
	return db, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
