package api

import "github.com/go-chi/chi/v5"

// RegisterRoutes mounts the category endpoints under /categories.
func (h *CategoryHandler) RegisterRoutes(r chi.Router) {
	r.Route("/categories", func(r chi.Router) {
		r.Get("/", h.ListCategories)
		r.Post("/", h.CreateCategory)
		r.Get("/{id}", h.GetCategory)
		r.Put("/{id}", h.UpdateCategory)
		r.Delete("/{id}", h.DeleteCategory)
	})
}

// RegisterRoutes mounts the task endpoints under /tasks.
// Static segments such as /tasks/overdue take precedence over /tasks/{id}.
func (h *TaskHandler) RegisterRoutes(r chi.Router) {
	r.Route("/tasks", func(r chi.Router) {
		r.Get("/", h.ListTasks)
		r.Post("/", h.CreateTask)
		r.Get("/overdue", h.ListOverdueTasks)
		r.Get("/status/{status}", h.ListTasksByStatus)
		r.Get("/priority/{priority}", h.ListTasksByPriority)
		r.Get("/category/{categoryId}", h.ListTasksByCategory)
		r.Get("/{id}", h.GetTask)
		r.Put("/{id}", h.UpdateTask)
		r.Patch("/{id}/complete", h.CompleteTask)
		r.Delete("/{id}", h.DeleteTask)
	})
}
