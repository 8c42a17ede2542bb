package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/rcliao/study-tracker/internal/terminal"
)

func init() {
	cmd := &cobra.Command{
		Use:   "terminal",
		Short: "Practice Linux commands in a simulated terminal",
		Run:   runTerminal,
	}

	RootCmd.AddCommand(cmd)
}

func runTerminal(cmd *cobra.Command, args []string) {
	if err := terminal.New().Run(os.Stdin, os.Stdout); err != nil {
		exitErr("terminal", err)
	}
}
