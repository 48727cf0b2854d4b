package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	rateValue    float64
	rateCurrency string
	rateClear    bool
)

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "List known projects and their rates",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		db, err := openDB(ctx)
		if err != nil {
			return err
		}
		defer db.Close()

		projects, err := db.ListProjects(ctx)
		if err != nil {
			return err
		}
		if len(projects) == 0 {
			fmt.Println("No projects yet. Record an entry first.")
			return nil
		}
		for _, p := range projects {
			rate := p.FormattedRate()
			if rate == "" {
				rate = "(no rate)"
			}
			fmt.Printf("%-24s %s\n", truncate(p.Name, 24), rate)
		}
		return nil
	},
}

var rateCmd = &cobra.Command{
	Use:   "rate <project>",
	Short: "Show or set a project's hourly rate",
	Args:  cobra.ExactArgs(1),
	RunE:  runRate,
}

func init() {
	rateCmd.Flags().Float64Var(&rateValue, "rate", 0, "hourly rate")
	rateCmd.Flags().StringVar(&rateCurrency, "currency", "", "currency symbol (default $)")
	rateCmd.Flags().BoolVar(&rateClear, "clear", false, "remove the configured rate")
	rootCmd.AddCommand(projectsCmd)
	rootCmd.AddCommand(rateCmd)
}

func runRate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	db, err := openDB(ctx)
	if err != nil {
		return err
	}
	defer db.Close()
	name := args[0]

	if rateClear {
		if err := db.SetProjectRate(ctx, name, nil, nil); err != nil {
			return err
		}
		fmt.Printf("Cleared rate for %q\n", name)
		return nil
	}

	if !cmd.Flags().Changed("rate") {
		p, err := db.GetProjectByName(ctx, name)
		if err != nil {
			return err
		}
		rate := p.FormattedRate()
		if rate == "" {
			rate = "(no rate)"
		}
		fmt.Printf("%s: %s\n", p.Name, rate)
		return nil
	}

	if rateValue <= 0 {
		return fmt.Errorf("rate must be positive")
	}
	var currency *string
	if rateCurrency != "" {
		currency = &rateCurrency
	}
	if err := db.SetProjectRate(ctx, name, &rateValue, currency); err != nil {
		return err
	}
	fmt.Printf("Set rate for %q\n", name)
	return nil
}
