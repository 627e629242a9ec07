package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Event types published by the services after a successful write.
const (
	TypeCategoryCreated = "category.created"
	TypeCategoryUpdated = "category.updated"
	TypeCategoryDeleted = "category.deleted"
	TypeTaskCreated     = "task.created"
	TypeTaskUpdated     = "task.updated"
	TypeTaskCompleted   = "task.completed"
	TypeTaskDeleted     = "task.deleted"
)

// EntityEvent records a change to a task or category.
// It carries a snapshot of the entity so handlers never need to read the store.
type EntityEvent struct {
	// ID is a unique identifier for this event
	ID uuid.UUID `json:"id"`

	// Type is one of the Type* constants
	Type string `json:"type"`

	// EntityID identifies the task or category that changed
	EntityID uuid.UUID `json:"entity_id"`

	// Payload contains the entity snapshot serialized as JSON
	Payload json.RawMessage `json:"payload,omitempty"`

	// CreatedAt is the timestamp when the event was created
	CreatedAt time.Time `json:"created_at"`
}

// UnmarshalPayload decodes the event payload into the provided structure.
func (e *EntityEvent) UnmarshalPayload(v interface{}) error {
	return json.Unmarshal(e.Payload, v)
}

// NewEntityEvent creates a new EntityEvent with the specified type, entity, and payload.
// A nil payload produces an event without one.
func NewEntityEvent(eventType string, entityID uuid.UUID, payload interface{}) (*EntityEvent, error) {
	var payloadBytes json.RawMessage
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		payloadBytes = b
	}

	return &EntityEvent{
		ID:        uuid.New(),
		Type:      eventType,
		EntityID:  entityID,
		Payload:   payloadBytes,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// EventHandler defines an interface for components that can handle events.
type EventHandler interface {
	// HandleEvent processes the given event within the provided context.
	// Returns an error if the event cannot be handled successfully.
	HandleEvent(ctx context.Context, event *EntityEvent) error
}

// EventHandlerFunc adapts an ordinary function to the EventHandler interface.
type EventHandlerFunc func(ctx context.Context, event *EntityEvent) error

// HandleEvent calls f(ctx, event).
func (f EventHandlerFunc) HandleEvent(ctx context.Context, event *EntityEvent) error {
	return f(ctx, event)
}

// EventEmitter defines an interface for components that can emit events.
// This allows services to publish events without direct knowledge of handlers.
type EventEmitter interface {
	// EmitEvent publishes the given event to all registered handlers.
	// Returns an error if the event cannot be emitted.
	EmitEvent(ctx context.Context, event *EntityEvent) error
}
