package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rcliao/study-tracker/internal/ledger"
	"github.com/rcliao/study-tracker/internal/model"
)

func init() {
	todoCmd := &cobra.Command{
		Use:   "todo",
		Short: "Manage todo projects and items",
	}

	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a todo project",
		Run:   runTodoCreate,
	}
	createCmd.Flags().StringP("name", "n", "", "Project name (required)")
	createCmd.Flags().String("description", "", "Project description")
	createCmd.Flags().String("type", "", "Study type: linux, programming, data-analysis")
	createCmd.MarkFlagRequired("name")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List todo projects, newest first",
		Run:   runTodoList,
	}

	updateCmd := &cobra.Command{
		Use:   "update <projectID>",
		Short: "Update a project's fields",
		Args:  cobra.ExactArgs(1),
		Run:   runTodoUpdate,
	}
	updateCmd.Flags().StringP("name", "n", "", "New project name")
	updateCmd.Flags().String("description", "", "New description")
	updateCmd.Flags().String("type", "", "New study type")

	rmCmd := &cobra.Command{
		Use:   "rm <projectID>",
		Short: "Delete a project and all its items",
		Args:  cobra.ExactArgs(1),
		Run:   runTodoRm,
	}

	addCmd := &cobra.Command{
		Use:   "add <projectID>",
		Short: "Add an item to a project",
		Args:  cobra.ExactArgs(1),
		Run:   runTodoAdd,
	}
	addCmd.Flags().StringP("text", "t", "", "Item text (required)")
	addCmd.Flags().StringP("priority", "p", "low", "Priority: low, medium, high")
	addCmd.Flags().String("tags", "", "Comma-separated tags")
	addCmd.Flags().String("due", "", "Due date (YYYY-MM-DD)")
	addCmd.MarkFlagRequired("text")

	toggleCmd := &cobra.Command{
		Use:   "toggle <projectID> <itemID>",
		Short: "Toggle an item's completed flag",
		Args:  cobra.ExactArgs(2),
		Run:   runTodoToggle,
	}

	rmItemCmd := &cobra.Command{
		Use:   "rm-item <projectID> <itemID>",
		Short: "Delete an item from a project",
		Args:  cobra.ExactArgs(2),
		Run:   runTodoRmItem,
	}

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Show todo statistics",
		Run:   runTodoStats,
	}

	todoCmd.AddCommand(createCmd, listCmd, updateCmd, rmCmd, addCmd, toggleCmd, rmItemCmd, statsCmd)
	RootCmd.AddCommand(todoCmd)
}

func parseStudyType(s string) (model.Category, error) {
	if s == "" {
		return "", nil
	}
	c := model.Category(s)
	if !model.ValidCategories[c] {
		return "", fmt.Errorf("unknown study type %q (linux, programming, data-analysis)", s)
	}
	return c, nil
}

func runTodoCreate(cmd *cobra.Command, args []string) {
	name, _ := cmd.Flags().GetString("name")
	description, _ := cmd.Flags().GetString("description")
	typeStr, _ := cmd.Flags().GetString("type")

	studyType, err := parseStudyType(typeStr)
	if err != nil {
		exitErr("todo create", err)
	}

	l, s, err := openTodos()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	proj, err := l.CreateProject(cmd.Context(), ledger.CreateProjectParams{
		Name:        name,
		Description: description,
		StudyType:   studyType,
	})
	if err != nil {
		exitErr("todo create", err)
	}
	printJSON(proj)
}

func runTodoList(cmd *cobra.Command, args []string) {
	l, s, err := openTodos()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	projects, err := l.ListProjects(cmd.Context())
	if err != nil {
		exitErr("todo list", err)
	}

	if getFormat() == "text" {
		for _, p := range projects {
			done := 0
			for _, it := range p.Items {
				if it.Completed {
					done++
				}
			}
			fmt.Printf("%s  %s  (%d/%d done)\n", p.ID, p.Name, done, len(p.Items))
			for _, it := range p.Items {
				mark := " "
				if it.Completed {
					mark = "x"
				}
				fmt.Printf("  [%s] %s  %s  %s\n", mark, it.ID, it.Priority, it.Text)
			}
		}
		return
	}

	printJSON(projects)
}

func runTodoUpdate(cmd *cobra.Command, args []string) {
	var p ledger.UpdateProjectParams

	if cmd.Flags().Changed("name") {
		name, _ := cmd.Flags().GetString("name")
		p.Name = &name
	}
	if cmd.Flags().Changed("description") {
		description, _ := cmd.Flags().GetString("description")
		p.Description = &description
	}
	if cmd.Flags().Changed("type") {
		typeStr, _ := cmd.Flags().GetString("type")
		studyType, err := parseStudyType(typeStr)
		if err != nil {
			exitErr("todo update", err)
		}
		p.StudyType = &studyType
	}

	l, s, err := openTodos()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	if err := l.UpdateProject(cmd.Context(), args[0], p); err != nil {
		exitErr("todo update", err)
	}
	fmt.Printf(`{"ok":true,"id":%q}`+"\n", args[0])
}

func runTodoRm(cmd *cobra.Command, args []string) {
	l, s, err := openTodos()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	if err := l.DeleteProject(cmd.Context(), args[0]); err != nil {
		exitErr("todo rm", err)
	}
	fmt.Printf(`{"ok":true,"id":%q}`+"\n", args[0])
}

func runTodoAdd(cmd *cobra.Command, args []string) {
	text, _ := cmd.Flags().GetString("text")
	priorityStr, _ := cmd.Flags().GetString("priority")
	tagsStr, _ := cmd.Flags().GetString("tags")
	dueStr, _ := cmd.Flags().GetString("due")

	priority := model.Priority(priorityStr)
	if !model.ValidPriorities[priority] {
		exitErr("todo add", fmt.Errorf("unknown priority %q (low, medium, high)", priorityStr))
	}

	var due *time.Time
	if dueStr != "" {
		t, err := time.Parse("2006-01-02", dueStr)
		if err != nil {
			exitErr("todo add", fmt.Errorf("invalid due date %q (use YYYY-MM-DD)", dueStr))
		}
		due = &t
	}

	l, s, err := openTodos()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	item, err := l.AddItem(cmd.Context(), args[0], ledger.ItemDraft{
		Text:     text,
		Priority: priority,
		Tags:     splitList(tagsStr),
		DueDate:  due,
	})
	if err != nil {
		exitErr("todo add", err)
	}
	if item == nil {
		exitErr("todo add", fmt.Errorf("no project with id %q", args[0]))
	}
	printJSON(item)
}

func runTodoToggle(cmd *cobra.Command, args []string) {
	l, s, err := openTodos()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	if err := l.ToggleItem(cmd.Context(), args[0], args[1]); err != nil {
		exitErr("todo toggle", err)
	}
	fmt.Printf(`{"ok":true,"project":%q,"item":%q}`+"\n", args[0], args[1])
}

func runTodoRmItem(cmd *cobra.Command, args []string) {
	l, s, err := openTodos()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	if err := l.DeleteItem(cmd.Context(), args[0], args[1]); err != nil {
		exitErr("todo rm-item", err)
	}
	fmt.Printf(`{"ok":true,"project":%q,"item":%q}`+"\n", args[0], args[1])
}

func runTodoStats(cmd *cobra.Command, args []string) {
	l, s, err := openTodos()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	stats, err := l.Stats(cmd.Context())
	if err != nil {
		exitErr("todo stats", err)
	}
	printJSON(stats)
}
