package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.uber.org/zap"

	"github.com/AshilyAnnMathew/TodoServer/internal/adapter/http/dto"
	"github.com/AshilyAnnMathew/TodoServer/internal/adapter/http/mapper"
	"github.com/AshilyAnnMathew/TodoServer/internal/adapter/http/middleware"
	"github.com/AshilyAnnMathew/TodoServer/internal/adapter/http/validation"
	"github.com/AshilyAnnMathew/TodoServer/internal/app/service"
	"github.com/AshilyAnnMathew/TodoServer/internal/core/domain"
	"github.com/AshilyAnnMathew/TodoServer/internal/core/ports"
	"github.com/AshilyAnnMathew/TodoServer/pkg/apierrors"
)

// TaskHandler serves the task resource. Its data access comes from the
// request-scoped store handle attached by the auth middleware, so the
// handler itself holds no state.
type TaskHandler struct{}

func NewTaskHandler() *TaskHandler {
	return &TaskHandler{}
}

func (h *TaskHandler) ListTasks(c *gin.Context) {
	lang := middleware.GetLang(c)

	svc, ok := h.scopedService(c, apierrors.MsgFailListTasks)
	if !ok {
		return
	}

	filter := domain.TaskFilter{}
	if value := c.Query("status"); value != "" {
		status := domain.TaskStatus(value)
		filter.Status = &status
	}
	if value := c.Query("priority"); value != "" {
		priority := domain.TaskPriority(value)
		filter.Priority = &priority
	}

	tasks, err := svc.ListTasks(c.Request.Context(), filter)
	if err != nil {
		zap.L().Error("failed to list tasks", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListTasks, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItems(tasks))
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	lang := middleware.GetLang(c)

	svc, ok := h.scopedService(c, apierrors.MsgFailCreateTask)
	if !ok {
		return
	}

	var req dto.CreateTaskRequest
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
		)
		return
	}

	input, err := validation.BuildCreateTaskInput(req)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, createValidationMsgKey(err), lang),
		)
		return
	}

	task, err := svc.CreateTask(c.Request.Context(), input)
	if err != nil {
		zap.L().Error("failed to create task", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailCreateTask, lang),
		)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToTaskItem(task))
}

func (h *TaskHandler) UpdateTask(c *gin.Context) {
	lang := middleware.GetLang(c)

	svc, ok := h.scopedService(c, apierrors.MsgFailUpdateTask)
	if !ok {
		return
	}

	taskID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || taskID == 0 {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskID, lang),
		)
		return
	}

	var req dto.UpdateTaskRequest
	var raw map[string]json.RawMessage
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
		)
		return
	}
	if err := c.ShouldBindBodyWith(&raw, binding.JSON); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
		)
		return
	}

	patch, err := validation.BuildUpdateTaskInput(req, raw)
	if err != nil {
		msgKey := apierrors.MsgInvalidTaskPayload
		if errors.Is(err, validation.ErrImmutableField) {
			msgKey = apierrors.MsgImmutableField
		}
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, msgKey, lang),
		)
		return
	}

	task, err := svc.UpdateTask(c.Request.Context(), taskID, patch)
	if err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgTaskNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to update task", zap.Uint64("task_id", taskID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailUpdateTask, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}

// scopedService builds the per-request service around the store handle the
// auth middleware attached. A missing handle means the route was registered
// without the middleware, which is a wiring bug.
func (h *TaskHandler) scopedService(c *gin.Context, failMsgKey string) (ports.TaskService, bool) {
	store, ok := middleware.GetTaskStore(c)
	if !ok {
		zap.L().Error("scoped task store missing from request context")
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, failMsgKey, middleware.GetLang(c)),
		)
		return nil, false
	}
	return service.NewTaskService(store), true
}

func createValidationMsgKey(err error) string {
	switch {
	case errors.Is(err, validation.ErrTitleRequired):
		return apierrors.MsgTitleRequired
	case errors.Is(err, validation.ErrPriorityRequired):
		return apierrors.MsgPriorityRequired
	default:
		return apierrors.MsgInvalidTaskPayload
	}
}
