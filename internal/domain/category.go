package domain

import "time"

// Category groups tasks for a single owner.
// Names are unique per owner; two users may each have a "Work" category.
type Category struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CategoryWithCount is a category annotated with the number of tasks
// currently referencing it. The count is derived at query time, never stored.
type CategoryWithCount struct {
	Category
	TaskCount int `json:"task_count"`
}

// InitTimestamps sets CreatedAt and UpdatedAt to now.
func (c *Category) InitTimestamps() {
	now := time.Now()
	c.CreatedAt = now
	c.UpdatedAt = now
}
