package ports

import (
	"context"

	"github.com/AshilyAnnMathew/TodoServer/internal/core/domain"
)

// TokenVerifier resolves a bearer token into an authenticated principal.
type TokenVerifier interface {
	VerifyToken(ctx context.Context, token string) (domain.Principal, error)
}

// TaskStore is a data-access handle already scoped to one principal: every
// query it issues is implicitly restricted to that principal's rows.
type TaskStore interface {
	ListTasks(ctx context.Context, filter domain.TaskFilter) ([]domain.Task, error)
	CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error)
	UpdateTask(ctx context.Context, taskID uint64, patch domain.UpdateTaskInput) (domain.Task, error)
}

// TaskStoreScoper builds a fresh TaskStore bound to the given principal.
// Handles are built once per request and never reused across requests.
type TaskStoreScoper interface {
	ScopedTo(principal domain.Principal) TaskStore
}

type TaskService interface {
	ListTasks(ctx context.Context, filter domain.TaskFilter) ([]domain.Task, error)
	CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error)
	UpdateTask(ctx context.Context, taskID uint64, patch domain.UpdateTaskInput) (domain.Task, error)
}
