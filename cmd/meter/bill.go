package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var (
	billAll   bool
	unbillAll bool
)

var billCmd = &cobra.Command{
	Use:   "bill [entry-id...]",
	Short: "Mark entries as billed",
	RunE: func(cmd *cobra.Command, args []string) error {
		return setBilled(cmd, args, billAll, true)
	},
}

var unbillCmd = &cobra.Command{
	Use:   "unbill [entry-id...]",
	Short: "Mark entries as unbilled",
	RunE: func(cmd *cobra.Command, args []string) error {
		return setBilled(cmd, args, unbillAll, false)
	},
}

func init() {
	billCmd.Flags().BoolVar(&billAll, "all", false, "mark every unbilled entry")
	unbillCmd.Flags().BoolVar(&unbillAll, "all", false, "mark every billed entry")
	rootCmd.AddCommand(billCmd)
	rootCmd.AddCommand(unbillCmd)
}

func setBilled(cmd *cobra.Command, args []string, all, billed bool) error {
	if all == (len(args) > 0) {
		return fmt.Errorf("pass entry IDs or --all, not both")
	}
	ctx := cmd.Context()
	db, err := openDB(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	if all {
		n, err := db.SetAllEntriesBilled(ctx, billed)
		if err != nil {
			return err
		}
		fmt.Printf("Updated %d entries\n", n)
		return nil
	}

	for _, arg := range args {
		id, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid entry ID %q", arg)
		}
		if err := db.SetEntryBilled(ctx, id, billed); err != nil {
			return err
		}
	}
	fmt.Printf("Updated %d entries\n", len(args))
	return nil
}
