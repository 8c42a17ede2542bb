package cli

import (
	"github.com/spf13/cobra"

	"github.com/rcliao/study-tracker/internal/ledger"
	"github.com/rcliao/study-tracker/internal/model"
)

func init() {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all data as JSON",
		Long:  "Export both collections (sessions and todo projects) as one JSON document, for backup.",
		Run:   runExport,
	}

	RootCmd.AddCommand(cmd)
}

func runExport(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	sessions, err := ledger.NewSessionLedger(s, logger).List(cmd.Context())
	if err != nil {
		exitErr("export", err)
	}
	projects, err := ledger.NewTodoLedger(s, logger).ListProjects(cmd.Context())
	if err != nil {
		exitErr("export", err)
	}

	printJSON(struct {
		Sessions []model.StudySession `json:"sessions"`
		Projects []model.TodoProject  `json:"projects"`
	}{Sessions: sessions, Projects: projects})
}
