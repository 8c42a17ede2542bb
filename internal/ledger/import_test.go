package ledger

import (
	"context"
	"strings"
	"testing"

	"github.com/rcliao/study-tracker/internal/model"
)

func TestImportMarkdown(t *testing.T) {
	ctx := context.Background()
	l := newTestTodos(t)

	content := `# Linux study plan
- [ ] Learn pipes !!!  #shell
- [x] Read man pages #reading #linux
Just a note, not a task
- [ ] Try systemctl !! MEDIUM
`

	proj, err := l.ImportMarkdown(ctx, "linux basics", content, model.CategoryLinux)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if proj.StudyType != model.CategoryLinux {
		t.Errorf("expected linux study type, got %q", proj.StudyType)
	}
	if !strings.Contains(proj.Description, "3") {
		t.Errorf("expected description to mention 3 tasks, got %q", proj.Description)
	}
	if len(proj.Items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(proj.Items))
	}

	first := proj.Items[0]
	if first.Text != "Learn pipes" || first.Completed || first.Priority != model.PriorityHigh {
		t.Errorf("unexpected first item: %+v", first)
	}
	if len(first.Tags) != 1 || first.Tags[0] != "shell" {
		t.Errorf("unexpected first item tags: %v", first.Tags)
	}

	second := proj.Items[1]
	if second.Text != "Read man pages" || !second.Completed || second.Priority != model.PriorityLow {
		t.Errorf("unexpected second item: %+v", second)
	}
	if len(second.Tags) != 2 || second.Tags[0] != "reading" || second.Tags[1] != "linux" {
		t.Errorf("unexpected second item tags: %v", second.Tags)
	}

	third := proj.Items[2]
	if third.Text != "Try systemctl" || third.Completed || third.Priority != model.PriorityMedium {
		t.Errorf("unexpected third item: %+v", third)
	}
	if len(third.Tags) != 0 {
		t.Errorf("expected no tags, got %v", third.Tags)
	}

	// Each item went through the regular add path and has its own identity.
	if proj.Items[0].ID == "" || proj.Items[0].ID == proj.Items[1].ID {
		t.Error("expected distinct item ids")
	}
	if proj.Items[0].CreatedAt.IsZero() {
		t.Error("expected item createdAt to be set")
	}
}

func TestImportMarkdownEmptyInput(t *testing.T) {
	ctx := context.Background()
	l := newTestTodos(t)

	proj, err := l.ImportMarkdown(ctx, "nothing here", "plain prose\nno checkboxes\n", "")
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if len(proj.Items) != 0 {
		t.Errorf("expected 0 items, got %d", len(proj.Items))
	}
	if !strings.Contains(proj.Description, "0") {
		t.Errorf("expected description to mention 0 tasks, got %q", proj.Description)
	}
	if proj.StudyType != "" {
		t.Errorf("expected unset study type, got %q", proj.StudyType)
	}
}

func TestImportedProjectIsListed(t *testing.T) {
	ctx := context.Background()
	l := newTestTodos(t)

	mustCreateProject(t, l, "existing")
	proj, err := l.ImportMarkdown(ctx, "imported", "- [ ] task one\n", "")
	if err != nil {
		t.Fatalf("import: %v", err)
	}

	got, _ := l.ListProjects(ctx)
	if len(got) != 2 {
		t.Fatalf("expected 2 projects, got %d", len(got))
	}
	if got[0].ID != proj.ID {
		t.Errorf("expected imported project newest first, got %q", got[0].Name)
	}
	if len(got[0].Items) != 1 {
		t.Errorf("imported items not persisted: %+v", got[0].Items)
	}
}
