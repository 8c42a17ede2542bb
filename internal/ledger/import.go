package ledger

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/rcliao/study-tracker/internal/markdown"
	"github.com/rcliao/study-tracker/internal/model"
)

// ImportMarkdown parses checklist lines out of content and materializes
// them as a new project. Every parsed item goes through the standard
// AddItem path, so each receives its own id and creation time and the
// project's UpdatedAt moves once per item.
func (l *TodoLedger) ImportMarkdown(ctx context.Context, name, content string, studyType model.Category) (*model.TodoProject, error) {
	drafts := markdown.ParseChecklist(content)
	l.log.Debug("parsed markdown checklist", zap.Int("items", len(drafts)))

	proj, err := l.CreateProject(ctx, CreateProjectParams{
		Name:        name,
		Description: fmt.Sprintf("Imported from markdown - %d tasks", len(drafts)),
		StudyType:   studyType,
	})
	if err != nil {
		return nil, err
	}

	for _, d := range drafts {
		if _, err := l.AddItem(ctx, proj.ID, ItemDraft{
			Text:      d.Text,
			Completed: d.Completed,
			Priority:  d.Priority,
			Tags:      d.Tags,
		}); err != nil {
			return nil, err
		}
	}

	return l.GetProject(ctx, proj.ID)
}
