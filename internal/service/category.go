package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/taskdeck/taskdeck-server/internal/domain"
	domainerrors "github.com/taskdeck/taskdeck-server/internal/errors"
	"github.com/taskdeck/taskdeck-server/internal/id"
	"github.com/taskdeck/taskdeck-server/internal/store"
	"github.com/taskdeck/taskdeck-server/internal/validation"
)

// CategoryService manages a user's task categories.
type CategoryService struct {
	store     store.Store
	validator *validation.Validator
	logger    *slog.Logger
}

// NewCategoryService creates a new category service.
func NewCategoryService(store store.Store, validator *validation.Validator, logger *slog.Logger) *CategoryService {
	return &CategoryService{
		store:     store,
		validator: validator,
		logger:    logger,
	}
}

// CreateCategoryRequest contains the fields for a new category.
type CreateCategoryRequest struct {
	Name  string `json:"name" validate:"required,max=100"`
	Color string `json:"color" validate:"required,max=32"`
}

// List returns the caller's categories, newest first, each annotated with
// the number of tasks it contains.
func (s *CategoryService) List(ctx context.Context, ownerID string) ([]*domain.CategoryWithCount, error) {
	categories, err := s.store.ListCategories(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

// Create adds a new category for the caller. Category names are unique
// per owner; a clash surfaces as an already-exists error.
func (s *CategoryService) Create(ctx context.Context, ownerID string, req CreateCategoryRequest) (*domain.Category, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	categoryID, err := id.Generate("cat")
	if err != nil {
		return nil, fmt.Errorf("generate category ID: %w", err)
	}

	category := &domain.Category{
		ID:     categoryID,
		UserID: ownerID,
		Name:   req.Name,
		Color:  req.Color,
	}
	category.InitTimestamps()

	if err := s.store.CreateCategory(ctx, category); err != nil {
		if errors.Is(err, store.ErrCategoryNameExists) {
			return nil, domainerrors.AlreadyExists("category name already in use")
		}
		return nil, fmt.Errorf("create category: %w", err)
	}

	if s.logger != nil {
		s.logger.Info("Category created", "category_id", categoryID, "user_id", ownerID)
	}

	return category, nil
}

// Delete removes a category and every task in it. The cascade is a single
// transaction; either everything goes or nothing does.
func (s *CategoryService) Delete(ctx context.Context, ownerID, categoryID string) error {
	if err := s.store.DeleteCategoryCascade(ctx, ownerID, categoryID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domainerrors.NotFound("category not found")
		}
		return fmt.Errorf("delete category: %w", err)
	}

	if s.logger != nil {
		s.logger.Info("Category deleted", "category_id", categoryID, "user_id", ownerID)
	}

	return nil
}
