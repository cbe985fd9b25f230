package memory

import (
	"context"
	"sort"

	"github.com/domainflow/backend/domain"
	"github.com/domainflow/backend/repository"
)

type activityRepository struct {
	store *Store
}

// NewActivityRepository returns the in-memory implementation of
// ActivityRepository. The collection is append-only.
func NewActivityRepository(store *Store) repository.ActivityRepository {
	return &activityRepository{store: store}
}

func (r *activityRepository) GetByID(_ context.Context, id int) (*domain.Activity, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	activity, ok := r.store.activity[id]
	if !ok {
		return nil, domain.ErrActivityNotFound
	}
	return &activity, nil
}

func (r *activityRepository) ListByUser(ctx context.Context, userID int) ([]domain.Activity, error) {
	return r.list(func(a domain.Activity) bool { return a.UserID == userID })
}

func (r *activityRepository) ListByWorkflow(ctx context.Context, workflowID int) ([]domain.Activity, error) {
	return r.list(func(a domain.Activity) bool { return a.WorkflowID != nil && *a.WorkflowID == workflowID })
}

func (r *activityRepository) ListByContact(ctx context.Context, contactID int) ([]domain.Activity, error) {
	return r.list(func(a domain.Activity) bool { return a.ContactID != nil && *a.ContactID == contactID })
}

func (r *activityRepository) ListByTask(ctx context.Context, taskID int) ([]domain.Activity, error) {
	return r.list(func(a domain.Activity) bool { return a.TaskID != nil && *a.TaskID == taskID })
}

// list returns matches newest-first: timestamp descending, id descending on
// equal timestamps so two entries stamped in the same instant keep a stable
// most-recent-first ordering.
func (r *activityRepository) list(match func(domain.Activity) bool) ([]domain.Activity, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var activities []domain.Activity
	for _, activity := range r.store.activity {
		if match(activity) {
			activities = append(activities, activity)
		}
	}
	sort.Slice(activities, func(i, j int) bool {
		if !activities[i].Timestamp.Equal(activities[j].Timestamp) {
			return activities[i].Timestamp.After(activities[j].Timestamp)
		}
		return activities[i].ID > activities[j].ID
	})
	return activities, nil
}

func (r *activityRepository) Create(_ context.Context, activity *domain.Activity) (*domain.Activity, error) {
	if activity == nil {
		return nil, domain.ErrInvalidPayload
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	stored := *activity
	stored.ID = r.store.activitySeq
	r.store.activitySeq++
	if stored.Timestamp.IsZero() {
		stored.Timestamp = r.store.timestamp()
	}
	r.store.activity[stored.ID] = stored

	out := stored
	return &out, nil
}
