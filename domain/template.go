package domain

import "time"

// DomainTemplate is built-in reference data: a reusable workflow, email or
// document template for a business domain. Content holds the template body
// as free-form JSON (for workflow templates, a list of step definitions).
type DomainTemplate struct {
	ID           int                    `json:"id"`
	Name         string                 `json:"name"`
	Description  string                 `json:"description,omitempty"`
	Domain       string                 `json:"domain"`
	TemplateType string                 `json:"template_type"`
	Content      map[string]interface{} `json:"content"`
	IsPublic     bool                   `json:"is_public"`
	CreatedAt    time.Time              `json:"created_at"`
}

// Template types.
const (
	TemplateTypeWorkflow = "workflow"
	TemplateTypeEmail    = "email"
	TemplateTypeDocument = "document"
)

// TemplateStep is one step definition inside a workflow template's content.
type TemplateStep struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	StepType    string `json:"step_type"`
}

// WorkflowSteps decodes the step definitions out of a workflow template's
// content. Returns nil when the template carries none.
func (t *DomainTemplate) WorkflowSteps() []TemplateStep {
	if t == nil || t.Content == nil {
		return nil
	}
	raw, ok := t.Content["steps"].([]interface{})
	if !ok {
		return nil
	}
	steps := make([]TemplateStep, 0, len(raw))
	for _, item := range raw {
		entry, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		step := TemplateStep{}
		if v, ok := entry["name"].(string); ok {
			step.Name = v
		}
		if v, ok := entry["description"].(string); ok {
			step.Description = v
		}
		if v, ok := entry["step_type"].(string); ok {
			step.StepType = v
		}
		steps = append(steps, step)
	}
	return steps
}
