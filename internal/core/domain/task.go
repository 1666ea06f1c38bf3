package domain

import "time"

type TaskStatus string

const (
	TaskStatusPending TaskStatus = "Pending"
	TaskStatusDone    TaskStatus = "Done"
)

// ParseTaskStatus returns the status matching value, or false when the value
// is outside the closed set.
func ParseTaskStatus(value string) (TaskStatus, bool) {
	switch TaskStatus(value) {
	case TaskStatusPending, TaskStatusDone:
		return TaskStatus(value), true
	}
	return "", false
}

type TaskPriority string

const (
	TaskPriorityHigh   TaskPriority = "High"
	TaskPriorityMedium TaskPriority = "Medium"
	TaskPriorityLow    TaskPriority = "Low"
)

func ParseTaskPriority(value string) (TaskPriority, bool) {
	switch TaskPriority(value) {
	case TaskPriorityHigh, TaskPriorityMedium, TaskPriorityLow:
		return TaskPriority(value), true
	}
	return "", false
}

type Task struct {
	ID          uint64
	UserID      string
	Title       string
	Description *string
	Priority    TaskPriority
	Status      TaskStatus
	DueDate     *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Principal is the authenticated identity behind a request, derived from a
// verified identity-service token.
type Principal struct {
	ID    string
	Email string
	Name  string
}

// TaskFilter narrows a list query. Nil fields mean no constraint.
type TaskFilter struct {
	Status   *TaskStatus
	Priority *TaskPriority
}

type CreateTaskInput struct {
	Title       string
	Description *string
	Priority    TaskPriority
	DueDate     *time.Time
}

// UpdateTaskInput is a partial patch. Pointer fields apply only when non-nil;
// the Set flags distinguish "clear this column" from "leave it untouched".
type UpdateTaskInput struct {
	Title          *string
	Description    *string
	DescriptionSet bool
	Status         *TaskStatus
	Priority       *TaskPriority
	DueDate        *time.Time
	DueDateSet     bool
}

// IsEmpty reports whether the patch carries no field at all.
func (u UpdateTaskInput) IsEmpty() bool {
	return u.Title == nil &&
		!u.DescriptionSet &&
		u.Status == nil &&
		u.Priority == nil &&
		!u.DueDateSet
}
