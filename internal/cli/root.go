// Package cli implements the study-tracker CLI commands.
package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rcliao/study-tracker/internal/config"
	"github.com/rcliao/study-tracker/internal/ledger"
	"github.com/rcliao/study-tracker/internal/store"
)

var (
	dbPath     string
	formatFlag string
	verbose    bool

	logger = zap.NewNop()
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "study-tracker",
	Short: "Track study sessions, todos and practice time",
	Long:  "A tiny CLI for tracking Linux, programming and data-analysis study. SQLite-backed, single binary.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			if l, err := zap.NewDevelopment(); err == nil {
				logger = l
			}
		}
	},
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", "", "Database path (default: $STUDY_TRACKER_DB or ~/.study-tracker/study.db)")
	RootCmd.PersistentFlags().StringVarP(&formatFlag, "format", "f", "", "Output format: json or text (default: $STUDY_TRACKER_FORMAT or json)")
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

func getDBPath() string {
	if dbPath != "" {
		return dbPath
	}
	if cfg, err := config.Load(); err == nil && cfg.DBPath != "" {
		return cfg.DBPath
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".study-tracker", "study.db")
}

func getFormat() string {
	if formatFlag != "" {
		return formatFlag
	}
	if cfg, err := config.Load(); err == nil && cfg.Format != "" {
		return cfg.Format
	}
	return "json"
}

func openStore() (*store.SQLiteStore, error) {
	return store.NewSQLiteStore(getDBPath(), logger)
}

func openSessions() (*ledger.SessionLedger, *store.SQLiteStore, error) {
	s, err := openStore()
	if err != nil {
		return nil, nil, err
	}
	return ledger.NewSessionLedger(s, logger), s, nil
}

func openTodos() (*ledger.TodoLedger, *store.SQLiteStore, error) {
	s, err := openStore()
	if err != nil {
		return nil, nil, err
	}
	return ledger.NewTodoLedger(s, logger), s, nil
}

func printJSON(v interface{}) {
	b, _ := json.MarshalIndent(v, "", "  ")
	fmt.Println(string(b))
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}
