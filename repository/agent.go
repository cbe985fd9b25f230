package repository

import (
	"context"

	"github.com/domainflow/backend/domain"
)

type AgentRepository interface {
	GetByID(ctx context.Context, id int) (*domain.AiAgent, error)
	ListByUser(ctx context.Context, userID int) ([]domain.AiAgent, error)
	Create(ctx context.Context, agent *domain.AiAgent) (*domain.AiAgent, error)
	Update(ctx context.Context, id int, patch domain.AiAgentPatch) (*domain.AiAgent, error)
	Delete(ctx context.Context, id int) error
}
