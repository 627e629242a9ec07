package domain

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Priority is the urgency of a task. Values are ordered: a higher value is more urgent.
type Priority int

// Possible priority values, lowest first.
const (
	PriorityNone Priority = iota
	PriorityLow
	PriorityMedium
	PriorityHigh
	PriorityCritical
)

var priorityNames = map[Priority]string{
	PriorityNone:     "none",
	PriorityLow:      "low",
	PriorityMedium:   "medium",
	PriorityHigh:     "high",
	PriorityCritical: "critical",
}

// IsValid reports whether p is one of the defined priorities.
func (p Priority) IsValid() bool {
	return p >= PriorityNone && p <= PriorityCritical
}

// String returns the lowercase name of the priority.
func (p Priority) String() string {
	if name, ok := priorityNames[p]; ok {
		return name
	}
	return "priority(" + strconv.Itoa(int(p)) + ")"
}

// ParsePriority accepts a priority name (any case) or its numeric value.
func ParsePriority(s string) (Priority, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for p, name := range priorityNames {
		if name == key {
			return p, nil
		}
	}
	if n, err := strconv.Atoi(key); err == nil && Priority(n).IsValid() {
		return Priority(n), nil
	}
	return PriorityNone, NewValidationError("priority", "must be one of none, low, medium, high, critical", ErrInvalidPriority)
}

// MarshalJSON encodes the priority by name.
func (p Priority) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

// UnmarshalJSON accepts either the name or the numeric value.
func (p *Priority) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	var parsed Priority
	var err error
	switch v := raw.(type) {
	case string:
		parsed, err = ParsePriority(v)
	case float64:
		parsed, err = ParsePriority(strconv.Itoa(int(v)))
	default:
		err = NewValidationError("priority", "must be a string or number", ErrInvalidPriority)
	}
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
