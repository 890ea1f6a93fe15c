package api

import (
	"encoding/json/v2"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCategory(t *testing.T) {
	srv := newTestServer(t)
	_, token := registerAndLogin(t, srv, "alice@example.com")

	rec, env := doRequest(t, srv, http.MethodPost, "/api/v1/categories/", token, map[string]any{
		"name":  "Work",
		"color": "#EF4444",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, env.Success)

	var cat struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Color string `json:"color"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &cat))
	assert.NotEmpty(t, cat.ID)
	assert.Equal(t, "Work", cat.Name)
	assert.Equal(t, "#EF4444", cat.Color)
}

func TestCreateCategory_Validation(t *testing.T) {
	srv := newTestServer(t)
	_, token := registerAndLogin(t, srv, "alice@example.com")

	rec, env := doRequest(t, srv, http.MethodPost, "/api/v1/categories/", token, map[string]any{
		"color": "#EF4444",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, env.Success)
}

func TestCreateCategory_DuplicateName(t *testing.T) {
	srv := newTestServer(t)
	_, token := registerAndLogin(t, srv, "alice@example.com")

	createTestCategory(t, srv, token, "Work")

	rec, env := doRequest(t, srv, http.MethodPost, "/api/v1/categories/", token, map[string]any{
		"name":  "Work",
		"color": "#10B981",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, env.Success)
	assert.NotEmpty(t, env.Error)
}

func TestListCategories_WithTaskCounts(t *testing.T) {
	srv := newTestServer(t)
	_, aliceToken := registerAndLogin(t, srv, "alice@example.com")
	_, bobToken := registerAndLogin(t, srv, "bob@example.com")

	workID := createTestCategory(t, srv, aliceToken, "Work")
	createTestCategory(t, srv, aliceToken, "Home")
	createTestCategory(t, srv, bobToken, "Bob stuff")

	createTestTask(t, srv, aliceToken, workID, "Write report")
	createTestTask(t, srv, aliceToken, workID, "Send email")

	rec, env := doRequest(t, srv, http.MethodGet, "/api/v1/categories/", aliceToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var cats []struct {
		ID        string `json:"id"`
		TaskCount int    `json:"task_count"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &cats))
	require.Len(t, cats, 2, "must only see own categories")

	for _, c := range cats {
		if c.ID == workID {
			assert.Equal(t, 2, c.TaskCount)
		} else {
			assert.Equal(t, 0, c.TaskCount)
		}
	}
}

func TestDeleteCategory_Cascade(t *testing.T) {
	srv := newTestServer(t)
	_, token := registerAndLogin(t, srv, "alice@example.com")

	workID := createTestCategory(t, srv, token, "Work")
	homeID := createTestCategory(t, srv, token, "Home")
	createTestTask(t, srv, token, workID, "Write report")
	survivorID := createTestTask(t, srv, token, homeID, "Clean house")

	rec, env := doRequest(t, srv, http.MethodDelete, "/api/v1/categories/"+workID, token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)
	assert.NotEmpty(t, env.Message)

	// Tasks in the deleted category are gone too.
	rec, env = doRequest(t, srv, http.MethodGet, "/api/v1/tasks/", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var tasks []struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &tasks))
	require.Len(t, tasks, 1)
	assert.Equal(t, survivorID, tasks[0].ID)
}

func TestDeleteCategory_NotFound(t *testing.T) {
	srv := newTestServer(t)
	_, aliceToken := registerAndLogin(t, srv, "alice@example.com")
	_, bobToken := registerAndLogin(t, srv, "bob@example.com")

	workID := createTestCategory(t, srv, aliceToken, "Work")

	rec, _ := doRequest(t, srv, http.MethodDelete, "/api/v1/categories/cat-missing", aliceToken, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// A foreign category gets the same 404 as a missing one.
	rec, _ = doRequest(t, srv, http.MethodDelete, "/api/v1/categories/"+workID, bobToken, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
