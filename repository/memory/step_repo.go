package memory

import (
	"context"
	"sort"

	"github.com/domainflow/backend/domain"
	"github.com/domainflow/backend/repository"
)

type stepRepository struct {
	store *Store
}

// NewWorkflowStepRepository returns the in-memory implementation of
// WorkflowStepRepository.
func NewWorkflowStepRepository(store *Store) repository.WorkflowStepRepository {
	return &stepRepository{store: store}
}

func (r *stepRepository) GetByID(_ context.Context, id int) (*domain.WorkflowStep, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	step, ok := r.store.steps[id]
	if !ok {
		return nil, domain.ErrStepNotFound
	}
	return &step, nil
}

// ListByWorkflow returns steps sorted ascending by Order, regardless of
// insertion order. Order values are caller-supplied and may collide; ties
// fall back to id order so the result is stable.
func (r *stepRepository) ListByWorkflow(_ context.Context, workflowID int) ([]domain.WorkflowStep, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var steps []domain.WorkflowStep
	for _, step := range r.store.steps {
		if step.WorkflowID == workflowID {
			steps = append(steps, step)
		}
	}
	sort.Slice(steps, func(i, j int) bool {
		if steps[i].Order != steps[j].Order {
			return steps[i].Order < steps[j].Order
		}
		return steps[i].ID < steps[j].ID
	})
	return steps, nil
}

func (r *stepRepository) Create(_ context.Context, step *domain.WorkflowStep) (*domain.WorkflowStep, error) {
	if step == nil {
		return nil, domain.ErrInvalidPayload
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	stored := *step
	stored.ID = r.store.stepSeq
	r.store.stepSeq++
	if stored.Status == "" {
		stored.Status = "active"
	}
	r.store.steps[stored.ID] = stored

	out := stored
	return &out, nil
}

func (r *stepRepository) Update(_ context.Context, id int, patch domain.WorkflowStepPatch) (*domain.WorkflowStep, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	step, ok := r.store.steps[id]
	if !ok {
		return nil, domain.ErrStepNotFound
	}
	patch.Apply(&step)
	r.store.steps[id] = step

	out := step
	return &out, nil
}

func (r *stepRepository) Delete(_ context.Context, id int) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.steps[id]; !ok {
		return domain.ErrStepNotFound
	}
	delete(r.store.steps, id)
	return nil
}
