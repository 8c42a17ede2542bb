package ledger

import (
	"context"
	"encoding/json"
	"math"
	"math/rand"
	"time"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/rcliao/study-tracker/internal/model"
	"github.com/rcliao/study-tracker/internal/store"
)

// TodoLedger owns the todo project collection.
type TodoLedger struct {
	store   store.Store
	log     *zap.Logger
	entropy *rand.Rand
	now     func() time.Time
}

// NewTodoLedger creates a todo ledger over the given store.
func NewTodoLedger(s store.Store, log *zap.Logger) *TodoLedger {
	if log == nil {
		log = zap.NewNop()
	}
	return &TodoLedger{
		store:   s,
		log:     log,
		entropy: rand.New(rand.NewSource(time.Now().UnixNano())),
		now:     time.Now,
	}
}

func (l *TodoLedger) newID() string {
	return ulid.MustNew(ulid.Timestamp(l.now()), l.entropy).String()
}

func (l *TodoLedger) load(ctx context.Context) ([]model.TodoProject, error) {
	value, ok, err := l.store.Load(ctx, store.ProjectsKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	var projects []model.TodoProject
	if err := json.Unmarshal([]byte(value), &projects); err != nil {
		l.log.Warn("discarding malformed todo data", zap.Error(err))
		return nil, nil
	}
	return projects, nil
}

func (l *TodoLedger) save(ctx context.Context, projects []model.TodoProject) error {
	b, err := json.Marshal(projects)
	if err != nil {
		return err
	}
	return l.store.Save(ctx, store.ProjectsKey, string(b))
}

// CreateProjectParams holds the caller-supplied fields of a new project.
type CreateProjectParams struct {
	Name        string
	Description string
	StudyType   model.Category // empty means no study type
}

// UpdateProjectParams holds a partial project update. Nil fields are left
// untouched.
type UpdateProjectParams struct {
	Name        *string
	Description *string
	StudyType   *model.Category
}

// ItemDraft holds the caller-supplied fields of a new todo item.
type ItemDraft struct {
	Text      string
	Completed bool
	Priority  model.Priority
	Tags      []string
	DueDate   *time.Time
}

// ListProjects returns all projects, newest first.
func (l *TodoLedger) ListProjects(ctx context.Context) ([]model.TodoProject, error) {
	return l.load(ctx)
}

// GetProject returns the matching project, or nil when absent.
func (l *TodoLedger) GetProject(ctx context.Context, id string) (*model.TodoProject, error) {
	projects, err := l.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range projects {
		if projects[i].ID == id {
			return &projects[i], nil
		}
	}
	return nil, nil
}

// CreateProject creates an empty project, prepends it to the collection
// and persists. Returns the created record.
func (l *TodoLedger) CreateProject(ctx context.Context, p CreateProjectParams) (*model.TodoProject, error) {
	projects, err := l.load(ctx)
	if err != nil {
		return nil, err
	}

	now := l.now().UTC()
	proj := model.TodoProject{
		ID:          l.newID(),
		Name:        p.Name,
		Description: p.Description,
		StudyType:   p.StudyType,
		Items:       []model.TodoItem{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	projects = append([]model.TodoProject{proj}, projects...)
	if err := l.save(ctx, projects); err != nil {
		return nil, err
	}
	return &proj, nil
}

// UpdateProject merges the supplied fields into the matching project and
// bumps its UpdatedAt. Unknown ids are a silent no-op.
func (l *TodoLedger) UpdateProject(ctx context.Context, id string, p UpdateProjectParams) error {
	projects, err := l.load(ctx)
	if err != nil {
		return err
	}
	for i := range projects {
		if projects[i].ID != id {
			continue
		}
		if p.Name != nil {
			projects[i].Name = *p.Name
		}
		if p.Description != nil {
			projects[i].Description = *p.Description
		}
		if p.StudyType != nil {
			projects[i].StudyType = *p.StudyType
		}
		projects[i].UpdatedAt = l.now().UTC()
		return l.save(ctx, projects)
	}
	return nil
}

// DeleteProject removes the matching project and all its items. Unknown
// ids are a silent no-op.
func (l *TodoLedger) DeleteProject(ctx context.Context, id string) error {
	projects, err := l.load(ctx)
	if err != nil {
		return err
	}
	kept := projects[:0]
	for _, p := range projects {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	return l.save(ctx, kept)
}

// AddItem appends a new item to the matching project and bumps the
// project's UpdatedAt. Returns the created item, or nil when the project
// is absent.
func (l *TodoLedger) AddItem(ctx context.Context, projectID string, d ItemDraft) (*model.TodoItem, error) {
	projects, err := l.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range projects {
		if projects[i].ID != projectID {
			continue
		}
		item := model.TodoItem{
			ID:        l.newID(),
			Text:      d.Text,
			Completed: d.Completed,
			Priority:  d.Priority,
			Tags:      d.Tags,
			DueDate:   d.DueDate,
			CreatedAt: l.now().UTC(),
		}
		projects[i].Items = append(projects[i].Items, item)
		projects[i].UpdatedAt = l.now().UTC()
		if err := l.save(ctx, projects); err != nil {
			return nil, err
		}
		return &item, nil
	}
	return nil, nil
}

// ToggleItem flips the completed flag of the matching item and bumps the
// project's UpdatedAt. Unknown ids are a silent no-op.
func (l *TodoLedger) ToggleItem(ctx context.Context, projectID, itemID string) error {
	projects, err := l.load(ctx)
	if err != nil {
		return err
	}
	for i := range projects {
		if projects[i].ID != projectID {
			continue
		}
		for j := range projects[i].Items {
			if projects[i].Items[j].ID == itemID {
				projects[i].Items[j].Completed = !projects[i].Items[j].Completed
				projects[i].UpdatedAt = l.now().UTC()
				return l.save(ctx, projects)
			}
		}
		return nil
	}
	return nil
}

// DeleteItem removes the matching item and bumps the project's UpdatedAt.
// Unknown ids are a silent no-op.
func (l *TodoLedger) DeleteItem(ctx context.Context, projectID, itemID string) error {
	projects, err := l.load(ctx)
	if err != nil {
		return err
	}
	for i := range projects {
		if projects[i].ID != projectID {
			continue
		}
		kept := projects[i].Items[:0]
		removed := false
		for _, it := range projects[i].Items {
			if it.ID == itemID {
				removed = true
				continue
			}
			kept = append(kept, it)
		}
		if !removed {
			return nil
		}
		projects[i].Items = kept
		projects[i].UpdatedAt = l.now().UTC()
		return l.save(ctx, projects)
	}
	return nil
}

// TodoStats aggregates the todo project collection.
type TodoStats struct {
	TotalProjects  int            `json:"totalProjects"`
	TotalItems     int            `json:"totalItems"`
	CompletedItems int            `json:"completedItems"`
	ProjectsByType map[string]int `json:"projectsByType"`
	CompletionRate int            `json:"completionRate"`
}

// Stats computes the aggregate statistics over all projects. The
// completion rate is a rounded percentage, 0 when there are no items.
func (l *TodoLedger) Stats(ctx context.Context) (*TodoStats, error) {
	projects, err := l.load(ctx)
	if err != nil {
		return nil, err
	}

	st := &TodoStats{
		TotalProjects: len(projects),
		ProjectsByType: map[string]int{
			string(model.CategoryLinux):        0,
			string(model.CategoryProgramming):  0,
			string(model.CategoryDataAnalysis): 0,
			"general":                          0,
		},
	}

	for _, p := range projects {
		if p.StudyType == "" {
			st.ProjectsByType["general"]++
		} else {
			st.ProjectsByType[string(p.StudyType)]++
		}
		st.TotalItems += len(p.Items)
		for _, it := range p.Items {
			if it.Completed {
				st.CompletedItems++
			}
		}
	}

	if st.TotalItems > 0 {
		st.CompletionRate = int(math.Round(float64(st.CompletedItems) / float64(st.TotalItems) * 100))
	}

	return st, nil
}
