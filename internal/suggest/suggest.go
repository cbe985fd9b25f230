// Package suggest generates workflow suggestions for a business domain.
// The real generator calls an OpenAI-compatible chat-completions API; when
// no API key is configured the static generator returns a canned example
// so the feature stays demoable offline.
package suggest

import "context"

// WorkflowSuggestion is a proposed workflow: a name, a description and an
// ordered list of step definitions the client can turn into a real workflow.
type WorkflowSuggestion struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Steps       []SuggestedStep `json:"steps"`
}

type SuggestedStep struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	StepType    string `json:"step_type"`
}

// Generator produces a workflow suggestion from a domain plus a free-text
// description of what the workflow should achieve.
type Generator interface {
	SuggestWorkflow(ctx context.Context, domain, description string) (*WorkflowSuggestion, error)
}

// Static is the offline fallback generator.
type Static struct{}

func (Static) SuggestWorkflow(_ context.Context, _, _ string) (*WorkflowSuggestion, error) {
	return &WorkflowSuggestion{
		Name:        "Example Workflow",
		Description: "This is an example workflow suggestion (OpenAI API key not configured)",
		Steps: []SuggestedStep{
			{Name: "Step 1", Description: "First step", StepType: "manual"},
			{Name: "Step 2", Description: "Second step", StepType: "automated"},
			{Name: "Step 3", Description: "Third step", StepType: "ai-agent"},
		},
	}, nil
}
