package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "import [file]",
		Short: "Import a markdown checklist as a todo project",
		Long: `Import a markdown checklist as a new todo project. Reads the given
file, or stdin when no file is supplied.

Checklist lines look like "- [ ] task" or "- [x] done task". Priority is
inferred from !!!, !!, HIGH, URGENT and MEDIUM markers; #word tokens
become tags. Other lines are ignored.`,
		Args: cobra.MaximumNArgs(1),
		Run:  runImport,
	}

	cmd.Flags().StringP("name", "n", "", "Project name (required)")
	cmd.Flags().String("type", "", "Study type: linux, programming, data-analysis")
	cmd.MarkFlagRequired("name")

	RootCmd.AddCommand(cmd)
}

func runImport(cmd *cobra.Command, args []string) {
	name, _ := cmd.Flags().GetString("name")
	typeStr, _ := cmd.Flags().GetString("type")

	studyType, err := parseStudyType(typeStr)
	if err != nil {
		exitErr("import", err)
	}

	var data []byte
	if len(args) == 1 {
		data, err = os.ReadFile(args[0])
		if err != nil {
			exitErr("read file", err)
		}
	} else {
		data, err = io.ReadAll(os.Stdin)
		if err != nil {
			exitErr("read stdin", err)
		}
	}

	l, s, err := openTodos()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	proj, err := l.ImportMarkdown(cmd.Context(), name, string(data), studyType)
	if err != nil {
		exitErr("import", err)
	}
	if proj == nil {
		exitErr("import", fmt.Errorf("imported project not found after creation"))
	}
	printJSON(proj)
}
