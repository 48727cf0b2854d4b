package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var pomodoroCmd = &cobra.Command{
	Use:   "pomodoro",
	Short: "Show or adjust the pomodoro cadence",
	RunE:  runPomodoro,
}

var (
	pomodoroEnable  bool
	pomodoroDisable bool
	pomodoroWork    uint
	pomodoroShort   uint
	pomodoroLong    uint
	pomodoroCycles  uint
)

func init() {
	f := pomodoroCmd.Flags()
	f.BoolVar(&pomodoroEnable, "enable", false, "enable pomodoro pacing")
	f.BoolVar(&pomodoroDisable, "disable", false, "disable pomodoro pacing")
	f.UintVar(&pomodoroWork, "work", 0, "work period minutes")
	f.UintVar(&pomodoroShort, "short-break", 0, "short break minutes")
	f.UintVar(&pomodoroLong, "long-break", 0, "long break minutes")
	f.UintVar(&pomodoroCycles, "cycles", 0, "work cycles before a long break")
	rootCmd.AddCommand(pomodoroCmd)
}

func runPomodoro(cmd *cobra.Command, args []string) error {
	if pomodoroEnable && pomodoroDisable {
		return fmt.Errorf("--enable and --disable are mutually exclusive")
	}
	ctx := cmd.Context()
	db, err := openDB(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	cfg := db.GetPomodoroConfig(ctx)
	changed := false
	if pomodoroEnable {
		cfg.Enabled = true
		changed = true
	}
	if pomodoroDisable {
		cfg.Enabled = false
		changed = true
	}
	for flag, dst := range map[string]*uint{
		"work":        &cfg.WorkMinutes,
		"short-break": &cfg.ShortBreakMinutes,
		"long-break":  &cfg.LongBreakMinutes,
		"cycles":      &cfg.CyclesBeforeLongBreak,
	} {
		if cmd.Flags().Changed(flag) {
			v, _ := cmd.Flags().GetUint(flag)
			*dst = v
			changed = true
		}
	}

	if changed {
		if err := cfg.Validate(); err != nil {
			return err
		}
		if err := db.SetPomodoroConfig(ctx, cfg); err != nil {
			return err
		}
	}

	state := "disabled"
	if cfg.Enabled {
		state = "enabled"
	}
	fmt.Printf("Pomodoro %s: %dm work / %dm short break / %dm long break every %d cycles\n",
		state, cfg.WorkMinutes, cfg.ShortBreakMinutes, cfg.LongBreakMinutes, cfg.CyclesBeforeLongBreak)
	return nil
}
