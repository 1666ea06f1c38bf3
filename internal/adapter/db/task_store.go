package db

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/AshilyAnnMathew/TodoServer/internal/core/domain"
	"github.com/AshilyAnnMathew/TodoServer/internal/core/ports"
)

const selectOwnedTaskQuery = `
SELECT id, user_id, title, description, priority, status, due_date, created_at, updated_at
FROM tasks
WHERE id = ? AND user_id = ?;
`

type TaskStoreScoper struct {
	db *sqlx.DB
}

var _ ports.TaskStoreScoper = (*TaskStoreScoper)(nil)

func NewTaskStoreScoper(db *sqlx.DB) *TaskStoreScoper {
	return &TaskStoreScoper{db: db}
}

func (s *TaskStoreScoper) ScopedTo(principal domain.Principal) ports.TaskStore {
	return &scopedTaskStore{db: s.db, ownerID: principal.ID}
}

// scopedTaskStore carries the owning principal's id into every statement it
// issues. Rows belonging to other principals are unreachable through it.
type scopedTaskStore struct {
	db      *sqlx.DB
	ownerID string
}

type taskRow struct {
	ID          uint64         `db:"id"`
	UserID      string         `db:"user_id"`
	Title       string         `db:"title"`
	Description sql.NullString `db:"description"`
	Priority    string         `db:"priority"`
	Status      string         `db:"status"`
	DueDate     sql.NullTime   `db:"due_date"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

func (s *scopedTaskStore) ListTasks(ctx context.Context, filter domain.TaskFilter) ([]domain.Task, error) {
	query := `SELECT id, user_id, title, description, priority, status, due_date, created_at, updated_at
FROM tasks
WHERE user_id = ?`
	args := []any{s.ownerID}

	if filter.Status != nil {
		query += " AND status = ?"
		args = append(args, string(*filter.Status))
	}
	if filter.Priority != nil {
		query += " AND priority = ?"
		args = append(args, string(*filter.Priority))
	}
	query += " ORDER BY created_at DESC, id DESC"

	var rows []taskRow
	if err := s.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}

	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, mapTaskRowToDomainTask(row))
	}

	return tasks, nil
}

func (s *scopedTaskStore) CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	// user_id and status come from the handle and the lifecycle rule, never
	// from the client payload.
	result, err := s.db.ExecContext(ctx,
		`INSERT INTO tasks (user_id, title, description, priority, status, due_date) VALUES (?, ?, ?, ?, ?, ?)`,
		s.ownerID,
		input.Title,
		nullableString(input.Description),
		string(input.Priority),
		string(domain.TaskStatusPending),
		nullableTime(input.DueDate),
	)
	if err != nil {
		return domain.Task{}, err
	}

	taskID, err := result.LastInsertId()
	if err != nil {
		return domain.Task{}, err
	}

	return s.getOwnedTask(ctx, uint64(taskID))
}

func (s *scopedTaskStore) UpdateTask(ctx context.Context, taskID uint64, patch domain.UpdateTaskInput) (domain.Task, error) {
	assignments := make([]string, 0, 5)
	args := make([]any, 0, 7)

	if patch.Title != nil {
		assignments = append(assignments, "title = ?")
		args = append(args, *patch.Title)
	}
	if patch.DescriptionSet {
		assignments = append(assignments, "description = ?")
		args = append(args, nullableString(patch.Description))
	}
	if patch.Status != nil {
		assignments = append(assignments, "status = ?")
		args = append(args, string(*patch.Status))
	}
	if patch.Priority != nil {
		assignments = append(assignments, "priority = ?")
		args = append(args, string(*patch.Priority))
	}
	if patch.DueDateSet {
		assignments = append(assignments, "due_date = ?")
		args = append(args, nullableTime(patch.DueDate))
	}

	if len(assignments) == 0 {
		return domain.Task{}, domain.ErrEmptyPatch
	}

	// The owner predicate rides on the UPDATE itself: a patch aimed at
	// another principal's row matches zero rows, with no separate
	// fetch-then-check window.
	query := "UPDATE tasks SET " + strings.Join(assignments, ", ") + " WHERE id = ? AND user_id = ?"
	args = append(args, taskID, s.ownerID)

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return domain.Task{}, err
	}

	return s.getOwnedTask(ctx, taskID)
}

func (s *scopedTaskStore) getOwnedTask(ctx context.Context, taskID uint64) (domain.Task, error) {
	var row taskRow
	err := s.db.GetContext(ctx, &row, selectOwnedTaskQuery, taskID, s.ownerID)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Task{}, domain.ErrTaskNotFound
	}
	if err != nil {
		return domain.Task{}, err
	}

	return mapTaskRowToDomainTask(row), nil
}

func mapTaskRowToDomainTask(row taskRow) domain.Task {
	task := domain.Task{
		ID:        row.ID,
		UserID:    row.UserID,
		Title:     row.Title,
		Priority:  domain.TaskPriority(row.Priority),
		Status:    domain.TaskStatus(row.Status),
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}

	if row.Description.Valid {
		value := row.Description.String
		task.Description = &value
	}

	if row.DueDate.Valid {
		value := row.DueDate.Time
		task.DueDate = &value
	}

	return task
}

func nullableString(value *string) sql.NullString {
	if value == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *value, Valid: true}
}

func nullableTime(value *time.Time) sql.NullTime {
	if value == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *value, Valid: true}
}
