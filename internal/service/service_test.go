package service

import (
	"context"
	"encoding/hex"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/taskdeck/taskdeck-server/internal/auth"
	"github.com/taskdeck/taskdeck-server/internal/store/sqlite"
	"github.com/taskdeck/taskdeck-server/internal/validation"
)

// testServices bundles the services under test, all backed by the same
// temporary store.
type testServices struct {
	auth       *AuthService
	categories *CategoryService
	tasks      *TaskService
}

// setupServices creates services with temporary storage for testing.
func setupServices(t *testing.T) *testServices {
	t.Helper()

	tmpDir := t.TempDir()

	s, err := sqlite.Open(filepath.Join(tmpDir, "test.db"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	key, err := auth.LoadOrGenerateKey(tmpDir)
	require.NoError(t, err)

	tokenService, err := auth.NewTokenService(hex.EncodeToString(key), time.Hour)
	require.NoError(t, err)

	v := validation.New()

	return &testServices{
		auth:       NewAuthService(s, tokenService, v, nil),
		categories: NewCategoryService(s, v, nil),
		tasks:      NewTaskService(s, v, nil),
	}
}

// registerUser registers a user and returns the auth response.
func registerUser(t *testing.T, svc *testServices, email string) *AuthResponse {
	t.Helper()
	resp, err := svc.auth.Register(context.Background(), RegisterRequest{
		Email:    email,
		Password: "hunter22",
		Name:     "Test User",
		Role:     "individual",
	})
	require.NoError(t, err)
	return resp
}

// createCategory creates a category for the given owner.
func createCategory(t *testing.T, svc *testServices, ownerID, name string) string {
	t.Helper()
	cat, err := svc.categories.Create(context.Background(), ownerID, CreateCategoryRequest{
		Name:  name,
		Color: "#3B82F6",
	})
	require.NoError(t, err)
	return cat.ID
}

// createTask creates a task in the given category.
func createTask(t *testing.T, svc *testServices, ownerID, categoryID, title string) string {
	t.Helper()
	task, err := svc.tasks.Create(context.Background(), ownerID, CreateTaskRequest{
		Title:      title,
		CategoryID: categoryID,
		Priority:   "medium",
	})
	require.NoError(t, err)
	return task.ID
}
