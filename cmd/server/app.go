package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/tasks-api/internal/config"
	"github.com/phrazzld/tasks-api/internal/events"
	"github.com/phrazzld/tasks-api/internal/platform/memory"
	"github.com/phrazzld/tasks-api/internal/service"
	"github.com/phrazzld/tasks-api/internal/store"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger

	// Stores
	taskStore     store.TaskStore
	categoryStore store.CategoryStore

	// Event system
	eventEmitter events.EventEmitter

	// Services
	categoryService service.CategoryService
	taskService     service.TaskService
}

// newApplication creates a new application instance with all dependencies initialized.
// Both stores are memory-resident; their contents are lost when the process exits.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	app := &application{
		config:        cfg,
		logger:        logger,
		taskStore:     memory.NewTaskStore(logger),
		categoryStore: memory.NewCategoryStore(logger),
	}

	emitter := events.NewInMemoryEventEmitter(logger)
	emitter.RegisterHandler(events.NewLoggingEventHandler(logger))
	app.eventEmitter = emitter

	var err error
	app.categoryService, err = service.NewCategoryService(app.categoryStore, app.eventEmitter, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create category service: %w", err)
	}

	app.taskService, err = service.NewTaskService(
		app.taskStore,
		app.categoryStore,
		app.eventEmitter,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create task service: %w", err)
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns when ctx is canceled and the server has shut down, or when the
// server fails.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	app.logger.Info("Application shutdown completed")
}
