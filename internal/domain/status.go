package domain

import (
	"encoding/json"
	"strconv"
	"strings"
)

// TaskStatus is the lifecycle state of a task. Any status may follow any other.
type TaskStatus int

// Possible task status values.
const (
	TaskStatusPending TaskStatus = iota
	TaskStatusInProgress
	TaskStatusCompleted
)

// IsValid reports whether s is one of the defined statuses.
func (s TaskStatus) IsValid() bool {
	return s >= TaskStatusPending && s <= TaskStatusCompleted
}

// String returns the snake_case name of the status.
func (s TaskStatus) String() string {
	switch s {
	case TaskStatusPending:
		return "pending"
	case TaskStatusInProgress:
		return "in_progress"
	case TaskStatusCompleted:
		return "completed"
	default:
		return "status(" + strconv.Itoa(int(s)) + ")"
	}
}

// ParseTaskStatus accepts a status name in any case, with or without the
// underscore, or its numeric value.
func ParseTaskStatus(s string) (TaskStatus, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.NewReplacer("_", "", "-", "", " ", "").Replace(key)
	switch key {
	case "pending":
		return TaskStatusPending, nil
	case "inprogress":
		return TaskStatusInProgress, nil
	case "completed":
		return TaskStatusCompleted, nil
	}
	if n, err := strconv.Atoi(key); err == nil && TaskStatus(n).IsValid() {
		return TaskStatus(n), nil
	}
	return TaskStatusPending, NewValidationError("status", "must be one of pending, in_progress, completed", ErrInvalidStatus)
}

// MarshalJSON encodes the status by name.
func (s TaskStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON accepts either the name or the numeric value.
func (s *TaskStatus) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	var parsed TaskStatus
	var err error
	switch v := raw.(type) {
	case string:
		parsed, err = ParseTaskStatus(v)
	case float64:
		parsed, err = ParseTaskStatus(strconv.Itoa(int(v)))
	default:
		err = NewValidationError("status", "must be a string or number", ErrInvalidStatus)
	}
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
