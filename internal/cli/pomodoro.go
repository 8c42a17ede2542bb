package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/rcliao/study-tracker/internal/pomodoro"
)

func init() {
	cmd := &cobra.Command{
		Use:   "pomodoro",
		Short: "Run a work/break timer",
		Long:  "Run a Pomodoro-style work/break timer in the terminal. Ctrl-C stops it.",
		Run:   runPomodoro,
	}

	cmd.Flags().Int("work", 25, "Work phase length in minutes")
	cmd.Flags().Int("break", 5, "Break phase length in minutes")
	cmd.Flags().Int("cycles", 0, "Number of work/break cycles (0 = until stopped)")

	RootCmd.AddCommand(cmd)
}

func runPomodoro(cmd *cobra.Command, args []string) {
	workMin, _ := cmd.Flags().GetInt("work")
	breakMin, _ := cmd.Flags().GetInt("break")
	cycles, _ := cmd.Flags().GetInt("cycles")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	timer := &pomodoro.Timer{
		Work:   time.Duration(workMin) * time.Minute,
		Break:  time.Duration(breakMin) * time.Minute,
		Cycles: cycles,
		Notify: func(msg string) {
			// \a rings the terminal bell; delivery is best-effort.
			fmt.Printf("\a%s\n", msg)
		},
	}

	if err := timer.Run(ctx, os.Stdout); err != nil {
		exitErr("pomodoro", err)
	}
}
