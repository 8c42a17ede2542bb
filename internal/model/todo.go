package model

import "time"

// Priority is a todo item priority level.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// ValidPriorities are the allowed item priorities.
var ValidPriorities = map[Priority]bool{
	PriorityLow:    true,
	PriorityMedium: true,
	PriorityHigh:   true,
}

// TodoItem is a single entry in a project's checklist. Tags are kept in
// first-appearance order and are not deduplicated.
type TodoItem struct {
	ID        string     `json:"id"`
	Text      string     `json:"text"`
	Completed bool       `json:"completed"`
	Priority  Priority   `json:"priority"`
	Tags      []string   `json:"tags,omitempty"`
	DueDate   *time.Time `json:"dueDate,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}

// TodoProject groups todo items. It exclusively owns its items; deleting
// the project discards them. StudyType is an optional soft link to a study
// category and may be empty. UpdatedAt moves on every mutation of the
// project or any of its items.
type TodoProject struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	StudyType   Category   `json:"studyType,omitempty"`
	Items       []TodoItem `json:"items"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}
