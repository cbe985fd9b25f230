package agent

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/domainflow/backend/domain"
	"github.com/domainflow/backend/repository"
	activityUC "github.com/domainflow/backend/usecase/activity"
)

type UseCase struct {
	agents   repository.AgentRepository
	recorder *activityUC.Recorder
	logger   *zap.Logger
}

func New(agents repository.AgentRepository, recorder *activityUC.Recorder, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		agents:   agents,
		recorder: recorder,
		logger:   logger,
	}
}

func (uc *UseCase) ListAgents(ctx context.Context, userID int) ([]domain.AiAgent, error) {
	return uc.agents.ListByUser(ctx, userID)
}

func (uc *UseCase) GetAgent(ctx context.Context, id, userID int) (*domain.AiAgent, error) {
	agent, err := uc.agents.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if agent.UserID != userID {
		return nil, domain.ErrAgentNotFound
	}
	return agent, nil
}

func (uc *UseCase) CreateAgent(ctx context.Context, agent *domain.AiAgent) (*domain.AiAgent, error) {
	created, err := uc.agents.Create(ctx, agent)
	if err != nil {
		return nil, err
	}

	uc.recorder.Record(ctx, domain.Activity{
		UserID:       created.UserID,
		ActivityType: "agent-created",
		Description:  fmt.Sprintf("AI Agent %q was created", created.Name),
	})

	return created, nil
}

func (uc *UseCase) UpdateAgent(ctx context.Context, id, userID int, patch domain.AiAgentPatch) (*domain.AiAgent, error) {
	if _, err := uc.GetAgent(ctx, id, userID); err != nil {
		return nil, err
	}
	return uc.agents.Update(ctx, id, patch)
}

func (uc *UseCase) DeleteAgent(ctx context.Context, id, userID int) error {
	if _, err := uc.GetAgent(ctx, id, userID); err != nil {
		return err
	}
	return uc.agents.Delete(ctx, id)
}
