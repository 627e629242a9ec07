package events

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
)

type subscription struct {
	handler EventHandler
	types   []string
}

func (s subscription) wants(eventType string) bool {
	return len(s.types) == 0 || slices.Contains(s.types, eventType)
}

// InMemoryEventEmitter dispatches events synchronously, in registration order,
// to the handlers subscribed to their type.
type InMemoryEventEmitter struct {
	mu     sync.RWMutex
	subs   []subscription
	logger *slog.Logger
}

// NewInMemoryEventEmitter creates an emitter with no handlers.
func NewInMemoryEventEmitter(logger *slog.Logger) *InMemoryEventEmitter {
	if logger == nil {
		logger = slog.Default()
	}
	return &InMemoryEventEmitter{logger: logger.With("component", "event_emitter")}
}

// RegisterHandler subscribes handler to every event type.
func (e *InMemoryEventEmitter) RegisterHandler(handler EventHandler) {
	e.Subscribe(handler)
}

// Subscribe registers handler for the listed event types. With no types the
// handler receives everything.
func (e *InMemoryEventEmitter) Subscribe(handler EventHandler, types ...string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.subs = append(e.subs, subscription{handler: handler, types: slices.Clone(types)})
	e.logger.Debug("registered event handler",
		"handler_count", len(e.subs),
		"event_types", types)
}

// EmitEvent delivers event to every matching handler. A failing or panicking
// handler does not stop delivery to the rest; all failures are joined into the
// returned error.
func (e *InMemoryEventEmitter) EmitEvent(ctx context.Context, event *EntityEvent) error {
	if event == nil {
		return errors.New("cannot emit nil event")
	}

	e.mu.RLock()
	subs := slices.Clone(e.subs)
	e.mu.RUnlock()

	var errs []error
	delivered := 0
	for i, sub := range subs {
		if !sub.wants(event.Type) {
			continue
		}
		delivered++
		if err := deliver(ctx, sub.handler, event); err != nil {
			e.logger.Error("event handler failed",
				"error", err,
				"handler_index", i,
				"event_id", event.ID,
				"event_type", event.Type)
			errs = append(errs, err)
		}
	}

	if delivered == 0 {
		e.logger.Debug("no handlers for event",
			"event_id", event.ID,
			"event_type", event.Type)
	}
	return errors.Join(errs...)
}

func deliver(ctx context.Context, h EventHandler, event *EntityEvent) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("event handler panicked: %v", r)
		}
	}()
	return h.HandleEvent(ctx, event)
}
