package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rcliao/study-tracker/internal/catalog"
	"github.com/rcliao/study-tracker/internal/ledger"
	"github.com/rcliao/study-tracker/internal/model"
)

func init() {
	sessionCmd := &cobra.Command{
		Use:   "session",
		Short: "Manage study sessions",
	}

	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Log a study session",
		Run:   runSessionAdd,
	}
	addCmd.Flags().StringP("title", "t", "", "Session title (required)")
	addCmd.Flags().StringP("category", "c", "", "Category: linux, programming, data-analysis (required)")
	addCmd.Flags().String("topic", "", "Topic name from the category's catalog (required)")
	addCmd.Flags().Int("duration", 0, "Duration in minutes (required)")
	addCmd.Flags().StringP("resources", "r", "", "Comma-separated resource links")
	addCmd.MarkFlagRequired("title")
	addCmd.MarkFlagRequired("category")
	addCmd.MarkFlagRequired("topic")
	addCmd.MarkFlagRequired("duration")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List study sessions, newest first",
		Run:   runSessionList,
	}

	toggleCmd := &cobra.Command{
		Use:   "toggle <id>",
		Short: "Toggle a session's completed flag",
		Args:  cobra.ExactArgs(1),
		Run:   runSessionToggle,
	}

	rmCmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a study session",
		Args:  cobra.ExactArgs(1),
		Run:   runSessionRm,
	}

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Show study session statistics",
		Run:   runSessionStats,
	}

	sessionCmd.AddCommand(addCmd, listCmd, toggleCmd, rmCmd, statsCmd)
	RootCmd.AddCommand(sessionCmd)
}

// resolveTopic looks the topic name up in the catalog for the category.
func resolveTopic(category model.Category, name string) (model.Topic, error) {
	switch category {
	case model.CategoryLinux:
		if d, ok := catalog.FindLinuxDistro(name); ok {
			return model.Topic{Linux: &d}, nil
		}
	case model.CategoryProgramming:
		if p, ok := catalog.FindProgrammingTopic(name); ok {
			return model.Topic{Programming: &p}, nil
		}
	case model.CategoryDataAnalysis:
		if d, ok := catalog.FindDataAnalysisTopic(name); ok {
			return model.Topic{DataAnalysis: &d}, nil
		}
	default:
		return model.Topic{}, fmt.Errorf("unknown category %q", category)
	}
	return model.Topic{}, fmt.Errorf("no %s topic named %q (see: study-tracker catalog %s)", category, name, category)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func runSessionAdd(cmd *cobra.Command, args []string) {
	title, _ := cmd.Flags().GetString("title")
	categoryStr, _ := cmd.Flags().GetString("category")
	topicName, _ := cmd.Flags().GetString("topic")
	duration, _ := cmd.Flags().GetInt("duration")
	resourcesStr, _ := cmd.Flags().GetString("resources")

	category := model.Category(categoryStr)
	if !model.ValidCategories[category] {
		exitErr("session add", fmt.Errorf("unknown category %q (linux, programming, data-analysis)", categoryStr))
	}

	topic, err := resolveTopic(category, topicName)
	if err != nil {
		exitErr("session add", err)
	}

	l, s, err := openSessions()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	sess, err := l.Add(cmd.Context(), ledger.AddParams{
		Title:     title,
		Category:  category,
		Topic:     topic,
		Duration:  duration,
		Resources: splitList(resourcesStr),
	})
	if err != nil {
		exitErr("session add", err)
	}

	printJSON(sess)
}

func runSessionList(cmd *cobra.Command, args []string) {
	l, s, err := openSessions()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	sessions, err := l.List(cmd.Context())
	if err != nil {
		exitErr("session list", err)
	}

	if getFormat() == "text" {
		for _, sess := range sessions {
			mark := " "
			if sess.Completed {
				mark = "x"
			}
			fmt.Printf("[%s] %s  %s/%s  %dm  %s\n",
				mark, sess.ID, sess.Category, sess.TopicName(), sess.Duration, sess.Title)
		}
		return
	}

	printJSON(sessions)
}

func runSessionToggle(cmd *cobra.Command, args []string) {
	l, s, err := openSessions()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	if err := l.Toggle(cmd.Context(), args[0]); err != nil {
		exitErr("session toggle", err)
	}
	fmt.Printf(`{"ok":true,"id":%q}`+"\n", args[0])
}

func runSessionRm(cmd *cobra.Command, args []string) {
	l, s, err := openSessions()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	if err := l.Delete(cmd.Context(), args[0]); err != nil {
		exitErr("session rm", err)
	}
	fmt.Printf(`{"ok":true,"id":%q}`+"\n", args[0])
}

func runSessionStats(cmd *cobra.Command, args []string) {
	l, s, err := openSessions()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	stats, err := l.Stats(cmd.Context())
	if err != nil {
		exitErr("session stats", err)
	}
	printJSON(stats)
}
