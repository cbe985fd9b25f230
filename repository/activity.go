package repository

import (
	"context"

	"github.com/domainflow/backend/domain"
)

// ActivityRepository is append-only: activities are never updated or
// deleted. Every List method returns newest-first.
type ActivityRepository interface {
	GetByID(ctx context.Context, id int) (*domain.Activity, error)
	ListByUser(ctx context.Context, userID int) ([]domain.Activity, error)
	ListByWorkflow(ctx context.Context, workflowID int) ([]domain.Activity, error)
	ListByContact(ctx context.Context, contactID int) ([]domain.Activity, error)
	ListByTask(ctx context.Context, taskID int) ([]domain.Activity, error)
	Create(ctx context.Context, activity *domain.Activity) (*domain.Activity, error)
}
