package repository

import (
	"context"

	"github.com/domainflow/backend/domain"
)

type TaskRepository interface {
	GetByID(ctx context.Context, id int) (*domain.Task, error)
	ListByUser(ctx context.Context, userID int) ([]domain.Task, error)
	ListByWorkflow(ctx context.Context, workflowID int) ([]domain.Task, error)
	ListByContact(ctx context.Context, contactID int) ([]domain.Task, error)
	Create(ctx context.Context, task *domain.Task) (*domain.Task, error)
	Update(ctx context.Context, id int, patch domain.TaskPatch) (*domain.Task, error)
	Delete(ctx context.Context, id int) error
}
