package domain

import "time"

// Task is a user-owned work item, optionally attached to a workflow and/or
// a contact.
type Task struct {
	ID          int        `json:"id"`
	UserID      int        `json:"user_id"`
	WorkflowID  *int       `json:"workflow_id,omitempty"`
	ContactID   *int       `json:"contact_id,omitempty"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
}

func (t *Task) IsCompleted() bool {
	return t != nil && t.Status == "completed"
}

type TaskPatch struct {
	WorkflowID  *int       `json:"workflow_id,omitempty"`
	ContactID   *int       `json:"contact_id,omitempty"`
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	Status      *string    `json:"status,omitempty"`

	// ClearWorkflow detaches the task from its workflow. A nil WorkflowID
	// alone means "leave unchanged", so detaching needs its own flag.
	ClearWorkflow bool `json:"-"`
	ClearContact  bool `json:"-"`
}

func (p TaskPatch) Apply(t *Task) {
	if p.WorkflowID != nil {
		t.WorkflowID = p.WorkflowID
	}
	if p.ClearWorkflow {
		t.WorkflowID = nil
	}
	if p.ContactID != nil {
		t.ContactID = p.ContactID
	}
	if p.ClearContact {
		t.ContactID = nil
	}
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.DueDate != nil {
		t.DueDate = p.DueDate
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
}

// Task statuses.
const (
	TaskStatusPending    = "pending"
	TaskStatusInProgress = "in-progress"
	TaskStatusCompleted  = "completed"
	TaskStatusOverdue    = "overdue"
	TaskStatusScheduled  = "scheduled"
)
