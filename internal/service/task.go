package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/taskdeck/taskdeck-server/internal/domain"
	domainerrors "github.com/taskdeck/taskdeck-server/internal/errors"
	"github.com/taskdeck/taskdeck-server/internal/id"
	"github.com/taskdeck/taskdeck-server/internal/store"
	"github.com/taskdeck/taskdeck-server/internal/validation"
)

// TaskService manages a user's tasks.
type TaskService struct {
	store     store.Store
	validator *validation.Validator
	logger    *slog.Logger
}

// NewTaskService creates a new task service.
func NewTaskService(store store.Store, validator *validation.Validator, logger *slog.Logger) *TaskService {
	return &TaskService{
		store:     store,
		validator: validator,
		logger:    logger,
	}
}

// CreateTaskRequest contains the fields for a new task.
type CreateTaskRequest struct {
	Title       string     `json:"title" validate:"required,max=200"`
	Description *string    `json:"description" validate:"omitempty,max=2000"`
	CategoryID  string     `json:"category_id" validate:"required"`
	Priority    string     `json:"priority" validate:"required,oneof=high medium low"`
	DueDate     *time.Time `json:"due_date"`
}

// UpdateTaskRequest carries a partial task update. Nil fields are left
// unchanged; there is no way to clear a field back to null.
type UpdateTaskRequest struct {
	Title       *string    `json:"title" validate:"omitempty,min=1,max=200"`
	Description *string    `json:"description" validate:"omitempty,max=2000"`
	CategoryID  *string    `json:"category_id" validate:"omitempty,min=1"`
	Priority    *string    `json:"priority" validate:"omitempty,oneof=high medium low"`
	IsCompleted *bool      `json:"is_completed"`
	DueDate     *time.Time `json:"due_date"`
}

// List returns the caller's tasks, newest first, narrowed by the filter.
func (s *TaskService) List(ctx context.Context, ownerID string, filter store.TaskFilter) ([]*domain.Task, error) {
	if filter.Priority != "" && !filter.Priority.Valid() {
		return nil, domainerrors.Validationf("unknown priority %q", filter.Priority)
	}

	tasks, err := s.store.ListTasks(ctx, ownerID, filter)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

// Create adds a new task for the caller. The referenced category must
// exist and belong to the same user.
func (s *TaskService) Create(ctx context.Context, ownerID string, req CreateTaskRequest) (*domain.Task, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	if err := s.checkCategory(ctx, ownerID, req.CategoryID); err != nil {
		return nil, err
	}

	taskID, err := id.Generate("task")
	if err != nil {
		return nil, fmt.Errorf("generate task ID: %w", err)
	}

	task := &domain.Task{
		ID:          taskID,
		UserID:      ownerID,
		CategoryID:  req.CategoryID,
		Title:       req.Title,
		Description: req.Description,
		Priority:    domain.Priority(req.Priority),
		DueDate:     req.DueDate,
	}
	task.InitTimestamps()

	if err := s.store.CreateTask(ctx, task); err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}

	if s.logger != nil {
		s.logger.Info("Task created", "task_id", taskID, "user_id", ownerID)
	}

	return task, nil
}

// Get retrieves a single task owned by the caller.
func (s *TaskService) Get(ctx context.Context, ownerID, taskID string) (*domain.Task, error) {
	task, err := s.store.GetTask(ctx, ownerID, taskID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, domainerrors.NotFound("task not found")
		}
		return nil, fmt.Errorf("get task: %w", err)
	}
	return task, nil
}

// Update applies a partial update to a task owned by the caller. Moving
// the task to a different category re-checks that category's ownership.
func (s *TaskService) Update(ctx context.Context, ownerID, taskID string, req UpdateTaskRequest) (*domain.Task, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	task, err := s.store.GetTask(ctx, ownerID, taskID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, domainerrors.NotFound("task not found")
		}
		return nil, fmt.Errorf("get task: %w", err)
	}

	if req.CategoryID != nil && *req.CategoryID != task.CategoryID {
		if err := s.checkCategory(ctx, ownerID, *req.CategoryID); err != nil {
			return nil, err
		}
		task.CategoryID = *req.CategoryID
	}
	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = req.Description
	}
	if req.Priority != nil {
		task.Priority = domain.Priority(*req.Priority)
	}
	if req.IsCompleted != nil {
		task.IsCompleted = *req.IsCompleted
	}
	if req.DueDate != nil {
		task.DueDate = req.DueDate
	}
	task.Touch()

	if err := s.store.UpdateTask(ctx, task); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, domainerrors.NotFound("task not found")
		}
		return nil, fmt.Errorf("update task: %w", err)
	}

	return task, nil
}

// Delete removes a task owned by the caller.
func (s *TaskService) Delete(ctx context.Context, ownerID, taskID string) error {
	if err := s.store.DeleteTask(ctx, ownerID, taskID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domainerrors.NotFound("task not found")
		}
		return fmt.Errorf("delete task: %w", err)
	}

	if s.logger != nil {
		s.logger.Info("Task deleted", "task_id", taskID, "user_id", ownerID)
	}

	return nil
}

// checkCategory verifies the category exists and belongs to the owner.
// A missing or foreign category is a validation failure, not a 404: the
// task request itself named a category it cannot use.
func (s *TaskService) checkCategory(ctx context.Context, ownerID, categoryID string) error {
	if _, err := s.store.GetCategory(ctx, ownerID, categoryID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domainerrors.Validation("invalid category")
		}
		return fmt.Errorf("check category: %w", err)
	}
	return nil
}
