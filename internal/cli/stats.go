package cli

import (
	"github.com/spf13/cobra"

	"github.com/rcliao/study-tracker/internal/ledger"
	"github.com/rcliao/study-tracker/internal/store"
)

func init() {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show combined statistics",
		Long:  "Show session statistics, todo statistics and database file statistics in one document.",
		Run:   runStats,
	}

	RootCmd.AddCommand(cmd)
}

func runStats(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	sessionStats, err := ledger.NewSessionLedger(s, logger).Stats(cmd.Context())
	if err != nil {
		exitErr("stats", err)
	}
	todoStats, err := ledger.NewTodoLedger(s, logger).Stats(cmd.Context())
	if err != nil {
		exitErr("stats", err)
	}
	fileStats, err := s.Stats(cmd.Context(), getDBPath())
	if err != nil {
		exitErr("stats", err)
	}

	printJSON(struct {
		Sessions *ledger.SessionStats `json:"sessions"`
		Todos    *ledger.TodoStats    `json:"todos"`
		DB       *store.FileStats     `json:"db"`
	}{Sessions: sessionStats, Todos: todoStats, DB: fileStats})
}
