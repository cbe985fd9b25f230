package memory

import (
	"context"
	"sort"

	"github.com/domainflow/backend/domain"
	"github.com/domainflow/backend/repository"
)

type taskRepository struct {
	store *Store
}

// NewTaskRepository returns the in-memory implementation of TaskRepository.
func NewTaskRepository(store *Store) repository.TaskRepository {
	return &taskRepository{store: store}
}

func (r *taskRepository) GetByID(_ context.Context, id int) (*domain.Task, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	task, ok := r.store.tasks[id]
	if !ok {
		return nil, domain.ErrTaskNotFound
	}
	return &task, nil
}

func (r *taskRepository) ListByUser(ctx context.Context, userID int) ([]domain.Task, error) {
	return r.list(func(t domain.Task) bool { return t.UserID == userID })
}

func (r *taskRepository) ListByWorkflow(ctx context.Context, workflowID int) ([]domain.Task, error) {
	return r.list(func(t domain.Task) bool { return t.WorkflowID != nil && *t.WorkflowID == workflowID })
}

func (r *taskRepository) ListByContact(ctx context.Context, contactID int) ([]domain.Task, error) {
	return r.list(func(t domain.Task) bool { return t.ContactID != nil && *t.ContactID == contactID })
}

func (r *taskRepository) list(match func(domain.Task) bool) ([]domain.Task, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var tasks []domain.Task
	for _, task := range r.store.tasks {
		if match(task) {
			tasks = append(tasks, task)
		}
	}
	sort.Slice(tasks, func(i, j int) bool { return tasks[i].ID < tasks[j].ID })
	return tasks, nil
}

func (r *taskRepository) Create(_ context.Context, task *domain.Task) (*domain.Task, error) {
	if task == nil {
		return nil, domain.ErrInvalidPayload
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	stored := *task
	stored.ID = r.store.taskSeq
	r.store.taskSeq++
	if stored.Status == "" {
		stored.Status = domain.TaskStatusPending
	}
	stored.CreatedAt = r.store.timestamp()
	r.store.tasks[stored.ID] = stored

	out := stored
	return &out, nil
}

func (r *taskRepository) Update(_ context.Context, id int, patch domain.TaskPatch) (*domain.Task, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	task, ok := r.store.tasks[id]
	if !ok {
		return nil, domain.ErrTaskNotFound
	}
	patch.Apply(&task)
	r.store.tasks[id] = task

	out := task
	return &out, nil
}

func (r *taskRepository) Delete(_ context.Context, id int) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.tasks[id]; !ok {
		return domain.ErrTaskNotFound
	}
	delete(r.store.tasks, id)
	return nil
}
