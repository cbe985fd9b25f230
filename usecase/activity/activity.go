// Package activity serves the activity feed and owns the Recorder through
// which every other usecase logs its side-effect activities.
package activity

import (
	"context"

	"go.uber.org/zap"

	"github.com/domainflow/backend/domain"
	"github.com/domainflow/backend/repository"
)

type UseCase struct {
	activities repository.ActivityRepository
	logger     *zap.Logger
}

func New(activities repository.ActivityRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		activities: activities,
		logger:     logger,
	}
}

func (uc *UseCase) ListByUser(ctx context.Context, userID int) ([]domain.Activity, error) {
	return uc.activities.ListByUser(ctx, userID)
}

func (uc *UseCase) ListByWorkflow(ctx context.Context, workflowID int) ([]domain.Activity, error) {
	return uc.activities.ListByWorkflow(ctx, workflowID)
}

func (uc *UseCase) ListByContact(ctx context.Context, contactID int) ([]domain.Activity, error) {
	return uc.activities.ListByContact(ctx, contactID)
}

func (uc *UseCase) ListByTask(ctx context.Context, taskID int) ([]domain.Activity, error) {
	return uc.activities.ListByTask(ctx, taskID)
}

// Log appends a caller-supplied activity to the feed, e.g. a note or call
// record posted through the API.
func (uc *UseCase) Log(ctx context.Context, entry *domain.Activity) (*domain.Activity, error) {
	return uc.activities.Create(ctx, entry)
}
