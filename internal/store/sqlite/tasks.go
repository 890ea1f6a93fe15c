package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/taskdeck/taskdeck-server/internal/domain"
	"github.com/taskdeck/taskdeck-server/internal/store"
)

// taskColumns is the ordered list of columns selected in task queries.
// Must match the scan order in scanTask.
const taskColumns = `id, user_id, category_id, title, description, priority,
	is_completed, due_date, created_at, updated_at`

// scanTask scans a row into a domain.Task.
func scanTask(scanner interface{ Scan(dest ...any) error }) (*domain.Task, error) {
	var t domain.Task

	var (
		description sql.NullString
		priority    string
		isCompleted int
		dueDate     sql.NullString
		createdAt   string
		updatedAt   string
	)

	err := scanner.Scan(
		&t.ID,
		&t.UserID,
		&t.CategoryID,
		&t.Title,
		&description,
		&priority,
		&isCompleted,
		&dueDate,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if description.Valid {
		t.Description = &description.String
	}
	t.Priority = domain.Priority(priority)
	t.IsCompleted = isCompleted != 0

	t.DueDate, err = parseNullableTime(dueDate)
	if err != nil {
		return nil, err
	}
	t.CreatedAt, err = parseTime(createdAt)
	if err != nil {
		return nil, err
	}
	t.UpdatedAt, err = parseTime(updatedAt)
	if err != nil {
		return nil, err
	}

	return &t, nil
}

// ListTasks returns the owner's tasks, newest first. Filters combine
// independently; zero-valued filter fields are not applied.
func (s *Store) ListTasks(ctx context.Context, ownerID string, filter store.TaskFilter) ([]*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE user_id = ?`
	args := []any{ownerID}

	if filter.CategoryID != "" {
		query += ` AND category_id = ?`
		args = append(args, filter.CategoryID)
	}
	if filter.Priority != "" {
		query += ` AND priority = ?`
		args = append(args, string(filter.Priority))
	}
	if filter.IsCompleted != nil {
		query += ` AND is_completed = ?`
		args = append(args, boolToInt(*filter.IsCompleted))
	}

	query += ` ORDER BY created_at DESC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query tasks: %w", err)
	}
	defer rows.Close()

	var tasks []*domain.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		tasks = append(tasks, t)
	}

	return tasks, rows.Err()
}

// CreateTask inserts a new task.
func (s *Store) CreateTask(ctx context.Context, task *domain.Task) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO tasks (id, user_id, category_id, title, description, priority,
			is_completed, due_date, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		task.ID,
		task.UserID,
		task.CategoryID,
		task.Title,
		nullableString(task.Description),
		string(task.Priority),
		boolToInt(task.IsCompleted),
		nullableTime(task.DueDate),
		formatTime(task.CreatedAt),
		formatTime(task.UpdatedAt),
	)
	return err
}

// GetTask retrieves a task by ID, scoped to the owner.
// Returns store.ErrNotFound if the owner has no such task.
func (s *Store) GetTask(ctx context.Context, ownerID, id string) (*domain.Task, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE id = ? AND user_id = ?`, id, ownerID)

	t, err := scanTask(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}

// UpdateTask persists the full task row, matched by ID and owner.
// Returns store.ErrNotFound if the owner has no such task.
func (s *Store) UpdateTask(ctx context.Context, task *domain.Task) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE tasks
		SET category_id = ?, title = ?, description = ?, priority = ?,
			is_completed = ?, due_date = ?, updated_at = ?
		WHERE id = ? AND user_id = ?`,
		task.CategoryID,
		task.Title,
		nullableString(task.Description),
		string(task.Priority),
		boolToInt(task.IsCompleted),
		nullableTime(task.DueDate),
		formatTime(task.UpdatedAt),
		task.ID,
		task.UserID,
	)
	if err != nil {
		return fmt.Errorf("update task: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return store.ErrNotFound
	}
	return nil
}

// DeleteTask removes a task, scoped to the owner.
// Returns store.ErrNotFound if the owner has no such task.
func (s *Store) DeleteTask(ctx context.Context, ownerID, id string) error {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM tasks WHERE id = ? AND user_id = ?`, id, ownerID)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return store.ErrNotFound
	}
	return nil
}
