package dto

type TaskItem struct {
	ID          uint64  `json:"id"`
	UserID      string  `json:"user_id"`
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	Priority    string  `json:"priority"`
	Status      string  `json:"status"`
	DueDate     *string `json:"due_date,omitempty"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

// CreateTaskRequest deliberately avoids "required" binding tags: presence is
// checked in the validation layer so that missing title and missing priority
// each get their own error message.
type CreateTaskRequest struct {
	Title       string  `json:"title" binding:"omitempty,max=255"`
	Description *string `json:"description" binding:"omitempty,max=65535"`
	Priority    *string `json:"priority"`
	DueDate     *string `json:"due_date" binding:"omitempty,datetime=2006-01-02"`
}

type UpdateTaskRequest struct {
	Title       *string `json:"title" binding:"omitempty,max=255"`
	Description *string `json:"description" binding:"omitempty,max=65535"`
	Priority    *string `json:"priority"`
	Status      *string `json:"status"`
	DueDate     *string `json:"due_date" binding:"omitempty,datetime=2006-01-02"`
}
