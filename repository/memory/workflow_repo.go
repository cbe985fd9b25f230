package memory

import (
	"context"
	"sort"

	"github.com/domainflow/backend/domain"
	"github.com/domainflow/backend/repository"
)

type workflowRepository struct {
	store *Store
}

// NewWorkflowRepository returns the in-memory implementation of WorkflowRepository.
func NewWorkflowRepository(store *Store) repository.WorkflowRepository {
	return &workflowRepository{store: store}
}

func (r *workflowRepository) GetByID(_ context.Context, id int) (*domain.Workflow, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	workflow, ok := r.store.workflows[id]
	if !ok {
		return nil, domain.ErrWorkflowNotFound
	}
	return &workflow, nil
}

func (r *workflowRepository) ListByUser(_ context.Context, userID int) ([]domain.Workflow, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var workflows []domain.Workflow
	for _, workflow := range r.store.workflows {
		if workflow.UserID == userID {
			workflows = append(workflows, workflow)
		}
	}
	sort.Slice(workflows, func(i, j int) bool { return workflows[i].ID < workflows[j].ID })
	return workflows, nil
}

func (r *workflowRepository) Create(_ context.Context, workflow *domain.Workflow) (*domain.Workflow, error) {
	if workflow == nil {
		return nil, domain.ErrInvalidPayload
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	stored := *workflow
	stored.ID = r.store.workflowSeq
	r.store.workflowSeq++
	if stored.Status == "" {
		stored.Status = "active"
	}
	stored.CreatedAt = r.store.timestamp()
	r.store.workflows[stored.ID] = stored

	out := stored
	return &out, nil
}

func (r *workflowRepository) Update(_ context.Context, id int, patch domain.WorkflowPatch) (*domain.Workflow, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	workflow, ok := r.store.workflows[id]
	if !ok {
		return nil, domain.ErrWorkflowNotFound
	}
	patch.Apply(&workflow)
	r.store.workflows[id] = workflow

	out := workflow
	return &out, nil
}

func (r *workflowRepository) Delete(_ context.Context, id int) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.workflows[id]; !ok {
		return domain.ErrWorkflowNotFound
	}
	delete(r.store.workflows, id)
	return nil
}
