package domain

import "time"

// Workflow is a named sequence of steps within a business domain
// (e.g. "real-estate"). Steps are stored separately and ordered by
// their Order field.
type Workflow struct {
	ID          int       `json:"id"`
	UserID      int       `json:"user_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Domain      string    `json:"domain"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// WorkflowStep is a single step of a workflow. Order is caller-supplied and
// drives retrieval order; it is not required to be unique or contiguous.
type WorkflowStep struct {
	ID          int                    `json:"id"`
	WorkflowID  int                    `json:"workflow_id"`
	Name        string                 `json:"name"`
	Description string                 `json:"description,omitempty"`
	StepType    string                 `json:"step_type"`
	Order       int                    `json:"order"`
	Config      map[string]interface{} `json:"config,omitempty"`
	Status      string                 `json:"status"`
}

type WorkflowPatch struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Domain      *string `json:"domain,omitempty"`
	Status      *string `json:"status,omitempty"`
}

func (p WorkflowPatch) Apply(w *Workflow) {
	if p.Name != nil {
		w.Name = *p.Name
	}
	if p.Description != nil {
		w.Description = *p.Description
	}
	if p.Domain != nil {
		w.Domain = *p.Domain
	}
	if p.Status != nil {
		w.Status = *p.Status
	}
}

type WorkflowStepPatch struct {
	Name        *string                 `json:"name,omitempty"`
	Description *string                 `json:"description,omitempty"`
	StepType    *string                 `json:"step_type,omitempty"`
	Order       *int                    `json:"order,omitempty"`
	Config      *map[string]interface{} `json:"config,omitempty"`
	Status      *string                 `json:"status,omitempty"`
}

func (p WorkflowStepPatch) Apply(s *WorkflowStep) {
	if p.Name != nil {
		s.Name = *p.Name
	}
	if p.Description != nil {
		s.Description = *p.Description
	}
	if p.StepType != nil {
		s.StepType = *p.StepType
	}
	if p.Order != nil {
		s.Order = *p.Order
	}
	if p.Config != nil {
		s.Config = *p.Config
	}
	if p.Status != nil {
		s.Status = *p.Status
	}
}

// Step types.
const (
	StepTypeManual    = "manual"
	StepTypeAutomated = "automated"
	StepTypeAIAgent   = "ai-agent"
)
