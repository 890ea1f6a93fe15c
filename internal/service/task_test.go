package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskdeck/taskdeck-server/internal/domain"
	domainerrors "github.com/taskdeck/taskdeck-server/internal/errors"
	"github.com/taskdeck/taskdeck-server/internal/store"
)

func TestTaskService_Create_Success(t *testing.T) {
	svc := setupServices(t)
	ctx := context.Background()

	alice := registerUser(t, svc, "alice@example.com")
	workID := createCategory(t, svc, alice.User.ID, "Work")

	desc := "quarterly numbers"
	due := time.Now().Add(72 * time.Hour)
	task, err := svc.tasks.Create(ctx, alice.User.ID, CreateTaskRequest{
		Title:       "Write report",
		Description: &desc,
		CategoryID:  workID,
		Priority:    "high",
		DueDate:     &due,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, task.ID)
	assert.Equal(t, alice.User.ID, task.UserID)
	assert.Equal(t, domain.PriorityHigh, task.Priority)
	assert.False(t, task.IsCompleted)
	require.NotNil(t, task.Description)
	assert.Equal(t, desc, *task.Description)
}

func TestTaskService_Create_Validation(t *testing.T) {
	svc := setupServices(t)
	ctx := context.Background()

	alice := registerUser(t, svc, "alice@example.com")
	workID := createCategory(t, svc, alice.User.ID, "Work")

	tests := []struct {
		name string
		req  CreateTaskRequest
	}{
		{"missing title", CreateTaskRequest{CategoryID: workID, Priority: "high"}},
		{"missing category", CreateTaskRequest{Title: "T", Priority: "high"}},
		{"missing priority", CreateTaskRequest{Title: "T", CategoryID: workID}},
		{"unknown priority", CreateTaskRequest{Title: "T", CategoryID: workID, Priority: "urgent"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.tasks.Create(ctx, alice.User.ID, tt.req)
			require.Error(t, err)
			assert.ErrorIs(t, err, domainerrors.ErrValidation)
		})
	}
}

func TestTaskService_Create_ForeignCategory(t *testing.T) {
	svc := setupServices(t)
	ctx := context.Background()

	alice := registerUser(t, svc, "alice@example.com")
	bob := registerUser(t, svc, "bob@example.com")
	aliceCat := createCategory(t, svc, alice.User.ID, "Work")

	// Bob cannot file tasks under Alice's category.
	_, err := svc.tasks.Create(ctx, bob.User.ID, CreateTaskRequest{
		Title:      "Sneaky task",
		CategoryID: aliceCat,
		Priority:   "low",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidation)

	// Same answer for a category that does not exist at all.
	_, err = svc.tasks.Create(ctx, bob.User.ID, CreateTaskRequest{
		Title:      "Orphan task",
		CategoryID: "cat-missing",
		Priority:   "low",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidation)
}

func TestTaskService_List_Filters(t *testing.T) {
	svc := setupServices(t)
	ctx := context.Background()

	alice := registerUser(t, svc, "alice@example.com")
	workID := createCategory(t, svc, alice.User.ID, "Work")
	homeID := createCategory(t, svc, alice.User.ID, "Home")

	reportID := createTask(t, svc, alice.User.ID, workID, "Write report")
	createTask(t, svc, alice.User.ID, homeID, "Clean house")

	tasks, err := svc.tasks.List(ctx, alice.User.ID, store.TaskFilter{CategoryID: workID})
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, reportID, tasks[0].ID)

	_, err = svc.tasks.List(ctx, alice.User.ID, store.TaskFilter{Priority: "urgent"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidation)
}

func TestTaskService_Update_Partial(t *testing.T) {
	svc := setupServices(t)
	ctx := context.Background()

	alice := registerUser(t, svc, "alice@example.com")
	workID := createCategory(t, svc, alice.User.ID, "Work")
	taskID := createTask(t, svc, alice.User.ID, workID, "Write report")

	completed := true
	updated, err := svc.tasks.Update(ctx, alice.User.ID, taskID, UpdateTaskRequest{
		IsCompleted: &completed,
	})
	require.NoError(t, err)
	assert.True(t, updated.IsCompleted)

	// Untouched fields survive the partial update.
	assert.Equal(t, "Write report", updated.Title)
	assert.Equal(t, workID, updated.CategoryID)
	assert.Equal(t, domain.PriorityMedium, updated.Priority)
}

func TestTaskService_Update_MoveCategory(t *testing.T) {
	svc := setupServices(t)
	ctx := context.Background()

	alice := registerUser(t, svc, "alice@example.com")
	bob := registerUser(t, svc, "bob@example.com")
	workID := createCategory(t, svc, alice.User.ID, "Work")
	homeID := createCategory(t, svc, alice.User.ID, "Home")
	bobCat := createCategory(t, svc, bob.User.ID, "Bob stuff")
	taskID := createTask(t, svc, alice.User.ID, workID, "Write report")

	updated, err := svc.tasks.Update(ctx, alice.User.ID, taskID, UpdateTaskRequest{
		CategoryID: &homeID,
	})
	require.NoError(t, err)
	assert.Equal(t, homeID, updated.CategoryID)

	// Moving into another owner's category is rejected.
	_, err = svc.tasks.Update(ctx, alice.User.ID, taskID, UpdateTaskRequest{
		CategoryID: &bobCat,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidation)
}

func TestTaskService_Update_NotFound(t *testing.T) {
	svc := setupServices(t)
	ctx := context.Background()

	alice := registerUser(t, svc, "alice@example.com")
	bob := registerUser(t, svc, "bob@example.com")
	workID := createCategory(t, svc, alice.User.ID, "Work")
	taskID := createTask(t, svc, alice.User.ID, workID, "Write report")

	title := "Hijacked"
	_, err := svc.tasks.Update(ctx, bob.User.ID, taskID, UpdateTaskRequest{Title: &title})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)

	_, err = svc.tasks.Update(ctx, alice.User.ID, "task-missing", UpdateTaskRequest{Title: &title})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestTaskService_Delete(t *testing.T) {
	svc := setupServices(t)
	ctx := context.Background()

	alice := registerUser(t, svc, "alice@example.com")
	bob := registerUser(t, svc, "bob@example.com")
	workID := createCategory(t, svc, alice.User.ID, "Work")
	taskID := createTask(t, svc, alice.User.ID, workID, "Write report")

	// Foreign delete looks like a missing task.
	err := svc.tasks.Delete(ctx, bob.User.ID, taskID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)

	require.NoError(t, svc.tasks.Delete(ctx, alice.User.ID, taskID))

	_, err = svc.tasks.Get(ctx, alice.User.ID, taskID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}
