package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/taskdeck/taskdeck-server/internal/domain"
	"github.com/taskdeck/taskdeck-server/internal/store"
)

// categoryColumns is the ordered list of columns selected in category queries.
// Must match the scan order in scanCategory.
const categoryColumns = `id, user_id, name, color, created_at, updated_at`

// scanCategory scans a row into a domain.Category.
func scanCategory(scanner interface{ Scan(dest ...any) error }) (*domain.Category, error) {
	var c domain.Category

	var (
		createdAt string
		updatedAt string
	)

	err := scanner.Scan(
		&c.ID,
		&c.UserID,
		&c.Name,
		&c.Color,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	c.CreatedAt, err = parseTime(createdAt)
	if err != nil {
		return nil, err
	}
	c.UpdatedAt, err = parseTime(updatedAt)
	if err != nil {
		return nil, err
	}

	return &c, nil
}

// ListCategories returns all categories for the owner, newest first,
// each with its current task count. The count is derived per query via a
// correlated subquery, never stored.
func (s *Store) ListCategories(ctx context.Context, ownerID string) ([]*domain.CategoryWithCount, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+categoryColumns+`,
			(SELECT COUNT(*) FROM tasks t WHERE t.category_id = categories.id) AS task_count
		FROM categories
		WHERE user_id = ?
		ORDER BY created_at DESC`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("query categories: %w", err)
	}
	defer rows.Close()

	var categories []*domain.CategoryWithCount
	for rows.Next() {
		var c domain.CategoryWithCount
		var createdAt, updatedAt string

		err := rows.Scan(
			&c.ID,
			&c.UserID,
			&c.Name,
			&c.Color,
			&createdAt,
			&updatedAt,
			&c.TaskCount,
		)
		if err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}

		c.CreatedAt, err = parseTime(createdAt)
		if err != nil {
			return nil, err
		}
		c.UpdatedAt, err = parseTime(updatedAt)
		if err != nil {
			return nil, err
		}

		categories = append(categories, &c)
	}

	return categories, rows.Err()
}

// CreateCategory inserts a new category.
// Returns store.ErrCategoryNameExists if the owner already has a category
// with that name; the UNIQUE(user_id, name) constraint is the arbiter.
func (s *Store) CreateCategory(ctx context.Context, category *domain.Category) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO categories (id, user_id, name, color, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		category.ID,
		category.UserID,
		category.Name,
		category.Color,
		formatTime(category.CreatedAt),
		formatTime(category.UpdatedAt),
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return store.ErrCategoryNameExists
		}
		return err
	}
	return nil
}

// GetCategory retrieves a category by ID, scoped to the owner.
// Returns store.ErrNotFound if the owner has no such category.
func (s *Store) GetCategory(ctx context.Context, ownerID, id string) (*domain.Category, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+categoryColumns+` FROM categories WHERE id = ? AND user_id = ?`, id, ownerID)

	c, err := scanCategory(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

// DeleteCategoryCascade removes the category's tasks and then the
// category itself inside one transaction: either both removals commit or
// neither does. Returns store.ErrNotFound if the owner has no such category.
func (s *Store) DeleteCategoryCascade(ctx context.Context, ownerID, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // Rollback after commit is a no-op

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM tasks WHERE category_id = ? AND user_id = ?`, id, ownerID); err != nil {
		return fmt.Errorf("delete category tasks: %w", err)
	}

	res, err := tx.ExecContext(ctx,
		`DELETE FROM categories WHERE id = ? AND user_id = ?`, id, ownerID)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		// Nothing deleted; the rollback also undoes the task deletes,
		// which were all no-ops anyway for a well-formed database.
		return store.ErrNotFound
	}

	return tx.Commit()
}
