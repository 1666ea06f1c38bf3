package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/AshilyAnnMathew/TodoServer/internal/adapter/http/dto"
	"github.com/AshilyAnnMathew/TodoServer/internal/core/domain"
)

var (
	ErrInvalidTaskPayload = errors.New("invalid task payload")
	ErrTitleRequired      = errors.New("title is required")
	ErrPriorityRequired   = errors.New("priority is required")
	ErrImmutableField     = errors.New("immutable field in patch")
)

// immutableFields are server-owned columns a patch may never touch.
var immutableFields = []string{"id", "user_id", "created_at", "updated_at"}

func BuildCreateTaskInput(req dto.CreateTaskRequest) (domain.CreateTaskInput, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return domain.CreateTaskInput{}, ErrTitleRequired
	}

	if req.Priority == nil || strings.TrimSpace(*req.Priority) == "" {
		return domain.CreateTaskInput{}, ErrPriorityRequired
	}
	priority, ok := domain.ParseTaskPriority(*req.Priority)
	if !ok {
		return domain.CreateTaskInput{}, ErrPriorityRequired
	}

	dueDate, err := parseDueDate(req.DueDate)
	if err != nil {
		return domain.CreateTaskInput{}, err
	}

	return domain.CreateTaskInput{
		Title:       title,
		Description: req.Description,
		Priority:    priority,
		DueDate:     dueDate,
	}, nil
}

// BuildUpdateTaskInput turns a raw patch body into a whitelisted field patch.
// Only title, description, status, priority and due_date are patchable;
// description and due_date may be cleared with an explicit null.
func BuildUpdateTaskInput(req dto.UpdateTaskRequest, raw map[string]json.RawMessage) (domain.UpdateTaskInput, error) {
	for _, field := range immutableFields {
		if hasJSONField(raw, field) {
			return domain.UpdateTaskInput{}, ErrImmutableField
		}
	}

	var input domain.UpdateTaskInput

	if hasJSONField(raw, "title") {
		if req.Title == nil {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		value := strings.TrimSpace(*req.Title)
		if value == "" {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		input.Title = &value
	}

	if hasJSONField(raw, "description") {
		input.DescriptionSet = true
		if !isJSONNull(raw["description"]) {
			if req.Description == nil {
				return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
			}
			input.Description = req.Description
		}
	}

	if hasJSONField(raw, "status") {
		if req.Status == nil {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		status, ok := domain.ParseTaskStatus(*req.Status)
		if !ok {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		input.Status = &status
	}

	if hasJSONField(raw, "priority") {
		if req.Priority == nil {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		priority, ok := domain.ParseTaskPriority(*req.Priority)
		if !ok {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		input.Priority = &priority
	}

	if hasJSONField(raw, "due_date") {
		input.DueDateSet = true
		if !isJSONNull(raw["due_date"]) {
			if req.DueDate == nil {
				return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
			}
			dueDate, err := parseDueDate(req.DueDate)
			if err != nil {
				return domain.UpdateTaskInput{}, err
			}
			input.DueDate = dueDate
		}
	}

	if input.IsEmpty() {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}

	return input, nil
}

func parseDueDate(value *string) (*time.Time, error) {
	if value == nil {
		return nil, nil
	}
	parsed, err := time.Parse("2006-01-02", *value)
	if err != nil {
		return nil, ErrInvalidTaskPayload
	}
	return &parsed, nil
}

func hasJSONField(raw map[string]json.RawMessage, field string) bool {
	_, ok := raw[field]
	return ok
}

func isJSONNull(value json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(value), []byte("null"))
}
