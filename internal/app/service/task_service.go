package service

import (
	"context"

	"github.com/AshilyAnnMathew/TodoServer/internal/core/domain"
	"github.com/AshilyAnnMathew/TodoServer/internal/core/ports"
	"github.com/AshilyAnnMathew/TodoServer/internal/core/taskorder"
)

// TaskService wraps a store handle already scoped to one principal, so it is
// built once per request. Ownership enforcement lives in the scoped store;
// the service adds the presentation ordering on list results.
type TaskService struct {
	store ports.TaskStore
}

func NewTaskService(store ports.TaskStore) *TaskService {
	return &TaskService{store: store}
}

func (s *TaskService) ListTasks(ctx context.Context, filter domain.TaskFilter) ([]domain.Task, error) {
	tasks, err := s.store.ListTasks(ctx, filter)
	if err != nil {
		return nil, err
	}

	taskorder.Sort(tasks)
	return tasks, nil
}

func (s *TaskService) CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	return s.store.CreateTask(ctx, input)
}

func (s *TaskService) UpdateTask(ctx context.Context, taskID uint64, patch domain.UpdateTaskInput) (domain.Task, error) {
	return s.store.UpdateTask(ctx, taskID, patch)
}

var _ ports.TaskService = (*TaskService)(nil)
