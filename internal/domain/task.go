package domain

import "time"

// Priority is the urgency level of a task.
type Priority string

const (
	// PriorityHigh marks urgent tasks.
	PriorityHigh Priority = "high"
	// PriorityMedium is the middle ground.
	PriorityMedium Priority = "medium"
	// PriorityLow marks tasks that can wait.
	PriorityLow Priority = "low"
)

// Valid reports whether p is one of the known priorities.
func (p Priority) Valid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
	default:
		return false
	}
	return true
}

// Task is a single to-do item. It always belongs to exactly one owner
// and references a category owned by the same user.
type Task struct {
	ID          string     `json:"id"`
	UserID      string     `json:"user_id"`
	CategoryID  string     `json:"category_id"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	Priority    Priority   `json:"priority"`
	IsCompleted bool       `json:"is_completed"`
	DueDate     *time.Time `json:"due_date"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// InitTimestamps sets CreatedAt and UpdatedAt to now.
func (t *Task) InitTimestamps() {
	now := time.Now()
	t.CreatedAt = now
	t.UpdatedAt = now
}

// Touch refreshes UpdatedAt. Call on every successful update, whether or
// not any field actually changed.
func (t *Task) Touch() {
	t.UpdatedAt = time.Now()
}
