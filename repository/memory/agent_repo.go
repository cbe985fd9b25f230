package memory

import (
	"context"
	"sort"

	"github.com/domainflow/backend/domain"
	"github.com/domainflow/backend/repository"
)

type agentRepository struct {
	store *Store
}

// NewAgentRepository returns the in-memory implementation of AgentRepository.
func NewAgentRepository(store *Store) repository.AgentRepository {
	return &agentRepository{store: store}
}

func (r *agentRepository) GetByID(_ context.Context, id int) (*domain.AiAgent, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	agent, ok := r.store.agents[id]
	if !ok {
		return nil, domain.ErrAgentNotFound
	}
	return &agent, nil
}

func (r *agentRepository) ListByUser(_ context.Context, userID int) ([]domain.AiAgent, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var agents []domain.AiAgent
	for _, agent := range r.store.agents {
		if agent.UserID == userID {
			agents = append(agents, agent)
		}
	}
	sort.Slice(agents, func(i, j int) bool { return agents[i].ID < agents[j].ID })
	return agents, nil
}

func (r *agentRepository) Create(_ context.Context, agent *domain.AiAgent) (*domain.AiAgent, error) {
	if agent == nil {
		return nil, domain.ErrInvalidPayload
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	stored := *agent
	stored.ID = r.store.agentSeq
	r.store.agentSeq++
	if stored.Status == "" {
		stored.Status = "active"
	}
	stored.CreatedAt = r.store.timestamp()
	r.store.agents[stored.ID] = stored

	out := stored
	return &out, nil
}

func (r *agentRepository) Update(_ context.Context, id int, patch domain.AiAgentPatch) (*domain.AiAgent, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	agent, ok := r.store.agents[id]
	if !ok {
		return nil, domain.ErrAgentNotFound
	}
	patch.Apply(&agent)
	r.store.agents[id] = agent

	out := agent
	return &out, nil
}

func (r *agentRepository) Delete(_ context.Context, id int) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.agents[id]; !ok {
		return domain.ErrAgentNotFound
	}
	delete(r.store.agents, id)
	return nil
}
