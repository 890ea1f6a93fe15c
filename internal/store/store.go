// Package store defines the persistence contract for users, categories, and tasks.
//
// Every category and task query is scoped by the owning user ID: the
// store never returns or mutates a row whose owner differs from the one
// the caller passes in. Ownership mismatches surface as ErrNotFound so
// callers cannot distinguish "absent" from "someone else's".
package store

import (
	"context"
	"errors"

	"github.com/taskdeck/taskdeck-server/internal/domain"
)

// Sentinel errors returned by store implementations.
var (
	// ErrNotFound indicates the requested row does not exist for the
	// given owner.
	ErrNotFound = errors.New("not found")

	// ErrEmailExists indicates a user with that email already exists.
	// Implementations derive this from the store's own uniqueness
	// constraint, not from a preceding read, so concurrent registrations
	// cannot both succeed.
	ErrEmailExists = errors.New("email already exists")

	// ErrCategoryNameExists indicates the owner already has a category
	// with that name. Backed by a uniqueness constraint like ErrEmailExists.
	ErrCategoryNameExists = errors.New("category name already exists")
)

// TaskFilter narrows ListTasks results. Zero-valued fields are not applied;
// the filters combine independently.
type TaskFilter struct {
	CategoryID  string
	Priority    domain.Priority
	IsCompleted *bool
}

// Store is the persistence interface consumed by the service layer.
//
// Ping reports whether the backing database is reachable; it exists for
// health checks only.
type Store interface {
	// Users.
	CreateUser(ctx context.Context, user *domain.User) error
	GetUser(ctx context.Context, id string) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// Categories, scoped by owner.
	ListCategories(ctx context.Context, ownerID string) ([]*domain.CategoryWithCount, error)
	CreateCategory(ctx context.Context, category *domain.Category) error
	GetCategory(ctx context.Context, ownerID, id string) (*domain.Category, error)
	// DeleteCategoryCascade removes the category and every task referencing
	// it in a single transaction. Returns ErrNotFound if the owner has no
	// such category.
	DeleteCategoryCascade(ctx context.Context, ownerID, id string) error

	// Tasks, scoped by owner.
	ListTasks(ctx context.Context, ownerID string, filter TaskFilter) ([]*domain.Task, error)
	CreateTask(ctx context.Context, task *domain.Task) error
	GetTask(ctx context.Context, ownerID, id string) (*domain.Task, error)
	// UpdateTask persists the full row for the task, matched by ID and
	// owner. Returns ErrNotFound if the owner has no such task.
	UpdateTask(ctx context.Context, task *domain.Task) error
	DeleteTask(ctx context.Context, ownerID, id string) error

	Ping(ctx context.Context) error
	Close() error
}
