package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/meterhq/meter/internal/timekeeper"
	"github.com/meterhq/meter/internal/util"
	"github.com/spf13/cobra"
)

var (
	addProject     string
	addDescription string
	addDuration    time.Duration
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a finished entry without running a timer",
	RunE:  runAdd,
}

func init() {
	addCmd.Flags().StringVarP(&addProject, "project", "p", "", "project name")
	addCmd.Flags().StringVarP(&addDescription, "description", "d", "", "what the time was spent on")
	addCmd.Flags().DurationVar(&addDuration, "duration", 0, "tracked duration (e.g. 1h30m)")
	_ = addCmd.MarkFlagRequired("project")
	_ = addCmd.MarkFlagRequired("duration")
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	db, err := openDB(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	recorder := timekeeper.NewRecorder(timekeeper.SystemClock(), db)
	entry, err := recorder.Record(ctx, addProject, addDescription, addDuration)
	if err != nil {
		if errors.Is(err, timekeeper.ErrInvalidDuration) {
			return fmt.Errorf("duration must be positive")
		}
		return err
	}
	fmt.Printf("Recorded %s on %q (entry #%d)\n",
		util.FormatDuration(entry.Duration()), entry.Project, entry.ID)
	return nil
}
