package domain

import "time"

// AiAgent is a configured AI assistant owned by a user. Config carries the
// model settings (model name, temperature, ...) as free-form JSON.
type AiAgent struct {
	ID          int                    `json:"id"`
	UserID      int                    `json:"user_id"`
	Name        string                 `json:"name"`
	Description string                 `json:"description,omitempty"`
	AgentType   string                 `json:"agent_type"`
	Config      map[string]interface{} `json:"config,omitempty"`
	Status      string                 `json:"status"`
	CreatedAt   time.Time              `json:"created_at"`
}

type AiAgentPatch struct {
	Name        *string                 `json:"name,omitempty"`
	Description *string                 `json:"description,omitempty"`
	AgentType   *string                 `json:"agent_type,omitempty"`
	Config      *map[string]interface{} `json:"config,omitempty"`
	Status      *string                 `json:"status,omitempty"`
}

func (p AiAgentPatch) Apply(a *AiAgent) {
	if p.Name != nil {
		a.Name = *p.Name
	}
	if p.Description != nil {
		a.Description = *p.Description
	}
	if p.AgentType != nil {
		a.AgentType = *p.AgentType
	}
	if p.Config != nil {
		a.Config = *p.Config
	}
	if p.Status != nil {
		a.Status = *p.Status
	}
}

// Agent types.
const (
	AgentTypeMatching      = "matching"
	AgentTypeCommunication = "communication"
	AgentTypeDocument      = "document"
	AgentTypeAnalysis      = "analysis"
)
