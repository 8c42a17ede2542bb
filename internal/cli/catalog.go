package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rcliao/study-tracker/internal/catalog"
	"github.com/rcliao/study-tracker/internal/model"
)

func init() {
	cmd := &cobra.Command{
		Use:       "catalog [category]",
		Short:     "Show the predefined topic catalogs",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"linux", "programming", "data-analysis"},
		Run:       runCatalog,
	}

	RootCmd.AddCommand(cmd)
}

func runCatalog(cmd *cobra.Command, args []string) {
	if len(args) == 0 {
		printJSON(struct {
			Linux        []model.LinuxDistro       `json:"linux"`
			Programming  []model.ProgrammingTopic  `json:"programming"`
			DataAnalysis []model.DataAnalysisTopic `json:"data-analysis"`
		}{
			Linux:        catalog.LinuxDistros(),
			Programming:  catalog.ProgrammingTopics(),
			DataAnalysis: catalog.DataAnalysisTopics(),
		})
		return
	}

	switch model.Category(args[0]) {
	case model.CategoryLinux:
		printJSON(catalog.LinuxDistros())
	case model.CategoryProgramming:
		printJSON(catalog.ProgrammingTopics())
	case model.CategoryDataAnalysis:
		printJSON(catalog.DataAnalysisTopics())
	default:
		exitErr("catalog", fmt.Errorf("unknown category %q (linux, programming, data-analysis)", args[0]))
	}
}
