package main

import (
	"errors"
	"fmt"

	"github.com/meterhq/meter/internal/database"
	"github.com/meterhq/meter/internal/util"
	"github.com/spf13/cobra"
)

var (
	startProject     string
	startDescription string
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start tracking time on a project",
	RunE:  runStart,
}

func init() {
	startCmd.Flags().StringVarP(&startProject, "project", "p", "", "project name")
	startCmd.Flags().StringVarP(&startDescription, "description", "d", "", "what you are working on")
	_ = startCmd.MarkFlagRequired("project")
	rootCmd.AddCommand(startCmd)
}

func runStart(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	db, err := openDB(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	entry, err := db.StartEntry(ctx, startProject, startDescription)
	if err != nil {
		if errors.Is(err, database.ErrEntryRunning) {
			return fmt.Errorf("a timer is already running; stop it first with 'meter stop'")
		}
		return err
	}
	fmt.Printf("Started timer for %q at %s\n", entry.Project, entry.Start.Local().Format("15:04"))
	return nil
}

var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the running timer and record the entry",
	RunE:  runStop,
}

func init() {
	rootCmd.AddCommand(stopCmd)
}

func runStop(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	db, err := openDB(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	entry, err := db.StopActiveEntry(ctx)
	if err != nil {
		if errors.Is(err, database.ErrNoActiveEntry) {
			return fmt.Errorf("no timer is running")
		}
		return err
	}
	fmt.Printf("Stopped timer for %q: %s (%.2fh)\n",
		entry.Project, util.FormatDuration(entry.Duration()), entry.DurationHours())
	return nil
}
