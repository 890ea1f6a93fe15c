package api

import (
	"encoding/json/v2"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taskdeck/taskdeck-server/internal/domain"
	"github.com/taskdeck/taskdeck-server/internal/http/response"
	"github.com/taskdeck/taskdeck-server/internal/service"
	"github.com/taskdeck/taskdeck-server/internal/store"
)

// handleListTasks returns the caller's tasks, optionally filtered by
// category_id, priority, and is_completed query parameters.
func (s *Server) handleListTasks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := getUserID(ctx)

	filter := store.TaskFilter{
		CategoryID: r.URL.Query().Get("category_id"),
		Priority:   domain.Priority(r.URL.Query().Get("priority")),
	}
	switch r.URL.Query().Get("is_completed") {
	case "true":
		completed := true
		filter.IsCompleted = &completed
	case "false":
		completed := false
		filter.IsCompleted = &completed
	}

	tasks, err := s.taskService.List(ctx, userID, filter)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, tasks, s.logger)
}

// handleCreateTask creates a new task for the caller.
func (s *Server) handleCreateTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := getUserID(ctx)

	var req service.CreateTaskRequest
	if err := json.UnmarshalRead(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body", s.logger)
		return
	}

	task, err := s.taskService.Create(ctx, userID, req)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Created(w, task, s.logger)
}

// handleGetTask returns a single task owned by the caller.
func (s *Server) handleGetTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := getUserID(ctx)
	id := chi.URLParam(r, "id")

	task, err := s.taskService.Get(ctx, userID, id)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, task, s.logger)
}

// handleUpdateTask applies a partial update to a task owned by the caller.
func (s *Server) handleUpdateTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := getUserID(ctx)
	id := chi.URLParam(r, "id")

	var req service.UpdateTaskRequest
	if err := json.UnmarshalRead(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body", s.logger)
		return
	}

	task, err := s.taskService.Update(ctx, userID, id, req)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, task, s.logger)
}

// handleDeleteTask deletes a task owned by the caller.
func (s *Server) handleDeleteTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := getUserID(ctx)
	id := chi.URLParam(r, "id")

	if err := s.taskService.Delete(ctx, userID, id); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.JSONMessage(w, http.StatusOK, nil, "task deleted", s.logger)
}
