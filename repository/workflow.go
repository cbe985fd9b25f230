package repository

import (
	"context"

	"github.com/domainflow/backend/domain"
)

type WorkflowRepository interface {
	GetByID(ctx context.Context, id int) (*domain.Workflow, error)
	ListByUser(ctx context.Context, userID int) ([]domain.Workflow, error)
	Create(ctx context.Context, workflow *domain.Workflow) (*domain.Workflow, error)
	Update(ctx context.Context, id int, patch domain.WorkflowPatch) (*domain.Workflow, error)
	Delete(ctx context.Context, id int) error
}

// WorkflowStepRepository manages the steps of workflows. ListByWorkflow
// always returns steps sorted ascending by their Order field.
type WorkflowStepRepository interface {
	GetByID(ctx context.Context, id int) (*domain.WorkflowStep, error)
	ListByWorkflow(ctx context.Context, workflowID int) ([]domain.WorkflowStep, error)
	Create(ctx context.Context, step *domain.WorkflowStep) (*domain.WorkflowStep, error)
	Update(ctx context.Context, id int, patch domain.WorkflowStepPatch) (*domain.WorkflowStep, error)
	Delete(ctx context.Context, id int) error
}
