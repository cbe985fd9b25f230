package domain

import "time"

// Activity is one entry of the append-only activity feed. Activities are
// immutable once created; there is no update or delete.
type Activity struct {
	ID           int       `json:"id"`
	UserID       int       `json:"user_id"`
	WorkflowID   *int      `json:"workflow_id,omitempty"`
	ContactID    *int      `json:"contact_id,omitempty"`
	TaskID       *int      `json:"task_id,omitempty"`
	ActivityType string    `json:"activity_type"`
	Description  string    `json:"description"`
	Timestamp    time.Time `json:"timestamp"`
}
