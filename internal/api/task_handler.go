package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/tasks-api/internal/api/shared"
	"github.com/phrazzld/tasks-api/internal/domain"
	"github.com/phrazzld/tasks-api/internal/service"
)

// TaskHandler handles task-related HTTP requests
type TaskHandler struct {
	taskService service.TaskService
	validator   *validator.Validate
}

// NewTaskHandler creates a new TaskHandler
func NewTaskHandler(taskService service.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
		validator:   shared.NewValidator(),
	}
}

// ListTasks handles GET /api/tasks requests
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.taskService.ListTasks(r.Context())
	h.respondWithTasks(w, r, tasks, err)
}

// ListTasksByStatus handles GET /api/tasks/status/{status} requests.
// The status may be given by name or number.
func (h *TaskHandler) ListTasksByStatus(w http.ResponseWriter, r *http.Request) {
	status, err := domain.ParseTaskStatus(chi.URLParam(r, "status"))
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	tasks, err := h.taskService.ListTasksByStatus(r.Context(), status)
	h.respondWithTasks(w, r, tasks, err)
}

// ListTasksByPriority handles GET /api/tasks/priority/{priority} requests.
// The priority may be given by name or number.
func (h *TaskHandler) ListTasksByPriority(w http.ResponseWriter, r *http.Request) {
	priority, err := domain.ParsePriority(chi.URLParam(r, "priority"))
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	tasks, err := h.taskService.ListTasksByPriority(r.Context(), priority)
	h.respondWithTasks(w, r, tasks, err)
}

// ListTasksByCategory handles GET /api/tasks/category/{categoryId} requests
func (h *TaskHandler) ListTasksByCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, ok := handlePathUUID(w, r, "categoryId")
	if !ok {
		return
	}

	tasks, err := h.taskService.ListTasksByCategory(r.Context(), categoryID)
	h.respondWithTasks(w, r, tasks, err)
}

// ListOverdueTasks handles GET /api/tasks/overdue requests
func (h *TaskHandler) ListOverdueTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.taskService.ListOverdueTasks(r.Context())
	h.respondWithTasks(w, r, tasks, err)
}

// GetTask handles GET /api/tasks/{id} requests
func (h *TaskHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	id, ok := handlePathUUID(w, r, "id")
	if !ok {
		return
	}

	task, err := h.taskService.GetTask(r.Context(), id)
	h.respondWithTask(w, r, task, err, "Failed to get task")
}

// CreateTask handles POST /api/tasks requests
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req CreateTaskRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	task, err := h.taskService.CreateTask(r.Context(), req.toParams())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create task")
		return
	}

	requestLogger(r).Info("task created", "task_id", task.ID)
	shared.RespondCreated(w, r, "/api/tasks/"+task.ID.String(), taskToResponse(task))
}

// UpdateTask handles PUT /api/tasks/{id} requests
func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	id, ok := handlePathUUID(w, r, "id")
	if !ok {
		return
	}

	var req UpdateTaskRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	task, err := h.taskService.UpdateTask(r.Context(), id, req.toParams())
	h.respondWithTask(w, r, task, err, "Failed to update task")
}

// CompleteTask handles PATCH /api/tasks/{id}/complete requests
func (h *TaskHandler) CompleteTask(w http.ResponseWriter, r *http.Request) {
	id, ok := handlePathUUID(w, r, "id")
	if !ok {
		return
	}

	task, err := h.taskService.CompleteTask(r.Context(), id)
	h.respondWithTask(w, r, task, err, "Failed to complete task")
}

// DeleteTask handles DELETE /api/tasks/{id} requests
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	id, ok := handlePathUUID(w, r, "id")
	if !ok {
		return
	}

	deleted, err := h.taskService.DeleteTask(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to delete task")
		return
	}
	if !deleted {
		shared.RespondWithError(w, r, http.StatusNotFound, "Task not found")
		return
	}

	shared.RespondNoContent(w)
}

func (h *TaskHandler) respondWithTask(
	w http.ResponseWriter,
	r *http.Request,
	task *domain.Task,
	err error,
	fallbackMsg string,
) {
	if err != nil {
		HandleAPIError(w, r, err, fallbackMsg)
		return
	}
	if task == nil {
		shared.RespondWithError(w, r, http.StatusNotFound, "Task not found")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, taskToResponse(task))
}

func (h *TaskHandler) respondWithTasks(w http.ResponseWriter, r *http.Request, tasks []*domain.Task, err error) {
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list tasks")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, tasksToResponse(tasks))
}
