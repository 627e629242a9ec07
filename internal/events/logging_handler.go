package events

import (
	"context"
	"log/slog"

	"github.com/phrazzld/tasks-api/internal/platform/logger"
)

// LoggingEventHandler writes every event it receives to the log at debug level.
type LoggingEventHandler struct {
	logger *slog.Logger
}

// NewLoggingEventHandler creates a LoggingEventHandler.
func NewLoggingEventHandler(l *slog.Logger) *LoggingEventHandler {
	if l == nil {
		l = slog.Default()
	}
	return &LoggingEventHandler{logger: l.With("component", "event_log")}
}

// HandleEvent implements EventHandler.
func (h *LoggingEventHandler) HandleEvent(ctx context.Context, event *EntityEvent) error {
	logger.FromContextOrDefault(ctx, h.logger).Debug("entity changed",
		"event_id", event.ID,
		"event_type", event.Type,
		"entity_id", event.EntityID,
		"created_at", event.CreatedAt)
	return nil
}
