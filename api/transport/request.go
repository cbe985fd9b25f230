package transport

// Request payloads. Validation tags are the schema check that runs before
// anything reaches the store; the store itself trusts its input.

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type ContactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"omitempty,email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Type    string `json:"type" validate:"omitempty,oneof=client lead vendor"`
	Status  string `json:"status"`
	Notes   string `json:"notes"`
}

type ContactUpdateRequest struct {
	Name    *string `json:"name" validate:"omitempty,min=1"`
	Email   *string `json:"email" validate:"omitempty,email"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
	Type    *string `json:"type" validate:"omitempty,oneof=client lead vendor"`
	Status  *string `json:"status"`
	Notes   *string `json:"notes"`
}

type WorkflowRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Domain      string `json:"domain" validate:"required"`
	Status      string `json:"status"`
}

type WorkflowUpdateRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1"`
	Description *string `json:"description"`
	Domain      *string `json:"domain" validate:"omitempty,min=1"`
	Status      *string `json:"status"`
}

type WorkflowStepRequest struct {
	Name        string                 `json:"name" validate:"required"`
	Description string                 `json:"description"`
	StepType    string                 `json:"step_type" validate:"required,oneof=manual automated ai-agent"`
	Order       int                    `json:"order"`
	Config      map[string]interface{} `json:"config"`
	Status      string                 `json:"status"`
}

type WorkflowStepUpdateRequest struct {
	Name        *string                 `json:"name" validate:"omitempty,min=1"`
	Description *string                 `json:"description"`
	StepType    *string                 `json:"step_type" validate:"omitempty,oneof=manual automated ai-agent"`
	Order       *int                    `json:"order"`
	Config      *map[string]interface{} `json:"config"`
	Status      *string                 `json:"status"`
}

type AgentRequest struct {
	Name        string                 `json:"name" validate:"required"`
	Description string                 `json:"description"`
	AgentType   string                 `json:"agent_type" validate:"required,oneof=matching communication document analysis"`
	Config      map[string]interface{} `json:"config"`
	Status      string                 `json:"status" validate:"omitempty,oneof=active inactive needs-config"`
}

type AgentUpdateRequest struct {
	Name        *string                 `json:"name" validate:"omitempty,min=1"`
	Description *string                 `json:"description"`
	AgentType   *string                 `json:"agent_type" validate:"omitempty,oneof=matching communication document analysis"`
	Config      *map[string]interface{} `json:"config"`
	Status      *string                 `json:"status" validate:"omitempty,oneof=active inactive needs-config"`
}

type TaskRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	DueDate     string `json:"due_date"`
	Status      string `json:"status" validate:"omitempty,oneof=pending in-progress completed overdue scheduled"`
	WorkflowID  *int   `json:"workflow_id"`
	ContactID   *int   `json:"contact_id"`
}

type TaskUpdateRequest struct {
	Title       *string `json:"title" validate:"omitempty,min=1"`
	Description *string `json:"description"`
	DueDate     *string `json:"due_date"`
	Status      *string `json:"status" validate:"omitempty,oneof=pending in-progress completed overdue scheduled"`
	WorkflowID  *int    `json:"workflow_id"`
	ContactID   *int    `json:"contact_id"`
}

type ActivityRequest struct {
	ActivityType string `json:"activity_type" validate:"required"`
	Description  string `json:"description" validate:"required"`
	WorkflowID   *int   `json:"workflow_id"`
	ContactID    *int   `json:"contact_id"`
	TaskID       *int   `json:"task_id"`
}

type TemplateRequest struct {
	Name         string                 `json:"name" validate:"required"`
	Description  string                 `json:"description"`
	Domain       string                 `json:"domain" validate:"required"`
	TemplateType string                 `json:"template_type" validate:"required,oneof=workflow email document"`
	Content      map[string]interface{} `json:"content" validate:"required"`
	IsPublic     *bool                  `json:"is_public"`
}

type SuggestWorkflowRequest struct {
	Domain      string `json:"domain" validate:"required"`
	Description string `json:"description" validate:"required"`
}
