package apierrors

const (
	MsgMissingToken       = "missingToken"
	MsgInvalidToken       = "invalidToken"
	MsgTitleRequired      = "titleRequired"
	MsgPriorityRequired   = "priorityRequired"
	MsgInvalidTaskPayload = "invalidTaskPayload"
	MsgImmutableField     = "immutableTaskField"
	MsgInvalidTaskID      = "invalidTaskID"
	MsgTaskNotFound       = "taskNotFound"
	MsgFailListTasks      = "failListTasks"
	MsgFailCreateTask     = "failCreateTask"
	MsgFailUpdateTask     = "failUpdateTask"
)
