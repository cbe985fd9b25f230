// Package workflow manages workflows, their ordered steps, and the
// domain-template catalog workflows can be instantiated from.
package workflow

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/domainflow/backend/domain"
	"github.com/domainflow/backend/repository"
	activityUC "github.com/domainflow/backend/usecase/activity"
)

type UseCase struct {
	workflows repository.WorkflowRepository
	steps     repository.WorkflowStepRepository
	tasks     repository.TaskRepository
	templates repository.TemplateRepository
	recorder  *activityUC.Recorder
	logger    *zap.Logger
}

func New(
	workflows repository.WorkflowRepository,
	steps repository.WorkflowStepRepository,
	tasks repository.TaskRepository,
	templates repository.TemplateRepository,
	recorder *activityUC.Recorder,
	logger *zap.Logger,
) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		workflows: workflows,
		steps:     steps,
		tasks:     tasks,
		templates: templates,
		recorder:  recorder,
		logger:    logger,
	}
}

func (uc *UseCase) ListWorkflows(ctx context.Context, userID int) ([]domain.Workflow, error) {
	return uc.workflows.ListByUser(ctx, userID)
}

// GetWorkflow resolves a workflow and checks ownership. A workflow owned by
// someone else is reported as not found, not forbidden, so ids cannot be
// probed.
func (uc *UseCase) GetWorkflow(ctx context.Context, id, userID int) (*domain.Workflow, error) {
	workflow, err := uc.workflows.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if workflow.UserID != userID {
		return nil, domain.ErrWorkflowNotFound
	}
	return workflow, nil
}

func (uc *UseCase) CreateWorkflow(ctx context.Context, workflow *domain.Workflow) (*domain.Workflow, error) {
	created, err := uc.workflows.Create(ctx, workflow)
	if err != nil {
		return nil, err
	}

	uc.recorder.Record(ctx, domain.Activity{
		UserID:       created.UserID,
		WorkflowID:   &created.ID,
		ActivityType: "workflow-created",
		Description:  fmt.Sprintf("Workflow %q was created", created.Name),
	})

	return created, nil
}

func (uc *UseCase) UpdateWorkflow(ctx context.Context, id, userID int, patch domain.WorkflowPatch) (*domain.Workflow, error) {
	if _, err := uc.GetWorkflow(ctx, id, userID); err != nil {
		return nil, err
	}
	return uc.workflows.Update(ctx, id, patch)
}

// DeleteWorkflow removes the workflow together with its steps and detaches
// any tasks still pointing at it. Activities referencing the workflow are
// kept; the feed is an immutable audit log.
func (uc *UseCase) DeleteWorkflow(ctx context.Context, id, userID int) error {
	if _, err := uc.GetWorkflow(ctx, id, userID); err != nil {
		return err
	}
	if err := uc.workflows.Delete(ctx, id); err != nil {
		return err
	}

	steps, err := uc.steps.ListByWorkflow(ctx, id)
	if err == nil {
		for _, step := range steps {
			if err := uc.steps.Delete(ctx, step.ID); err != nil {
				uc.logger.Warn("failed to delete workflow step",
					zap.Int("step_id", step.ID), zap.Int("workflow_id", id), zap.Error(err))
			}
		}
	}

	tasks, err := uc.tasks.ListByWorkflow(ctx, id)
	if err == nil {
		for _, task := range tasks {
			if _, err := uc.tasks.Update(ctx, task.ID, domain.TaskPatch{ClearWorkflow: true}); err != nil {
				uc.logger.Warn("failed to detach task from deleted workflow",
					zap.Int("task_id", task.ID), zap.Int("workflow_id", id), zap.Error(err))
			}
		}
	}

	return nil
}

func (uc *UseCase) ListSteps(ctx context.Context, workflowID, userID int) ([]domain.WorkflowStep, error) {
	if _, err := uc.GetWorkflow(ctx, workflowID, userID); err != nil {
		return nil, err
	}
	return uc.steps.ListByWorkflow(ctx, workflowID)
}

func (uc *UseCase) AddStep(ctx context.Context, userID int, step *domain.WorkflowStep) (*domain.WorkflowStep, error) {
	if _, err := uc.GetWorkflow(ctx, step.WorkflowID, userID); err != nil {
		return nil, err
	}
	return uc.steps.Create(ctx, step)
}

func (uc *UseCase) UpdateStep(ctx context.Context, id, userID int, patch domain.WorkflowStepPatch) (*domain.WorkflowStep, error) {
	step, err := uc.steps.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := uc.GetWorkflow(ctx, step.WorkflowID, userID); err != nil {
		return nil, err
	}
	return uc.steps.Update(ctx, id, patch)
}

func (uc *UseCase) DeleteStep(ctx context.Context, id, userID int) error {
	step, err := uc.steps.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if _, err := uc.GetWorkflow(ctx, step.WorkflowID, userID); err != nil {
		return err
	}
	return uc.steps.Delete(ctx, id)
}

func (uc *UseCase) ListTemplates(ctx context.Context, domainName string) ([]domain.DomainTemplate, error) {
	return uc.templates.ListByDomain(ctx, domainName)
}

func (uc *UseCase) CreateTemplate(ctx context.Context, template *domain.DomainTemplate) (*domain.DomainTemplate, error) {
	return uc.templates.Create(ctx, template)
}

// InstantiateTemplate creates a workflow from a workflow template, copying
// the template's step definitions into real steps ordered 1..n.
func (uc *UseCase) InstantiateTemplate(ctx context.Context, templateID, userID int) (*domain.Workflow, error) {
	template, err := uc.templates.GetByID(ctx, templateID)
	if err != nil {
		return nil, err
	}
	if template.TemplateType != domain.TemplateTypeWorkflow {
		return nil, domain.NewError(domain.ErrCodeInvalid, "template is not a workflow template")
	}

	workflow, err := uc.CreateWorkflow(ctx, &domain.Workflow{
		UserID:      userID,
		Name:        template.Name,
		Description: template.Description,
		Domain:      template.Domain,
		Status:      "active",
	})
	if err != nil {
		return nil, err
	}

	for i, def := range template.WorkflowSteps() {
		if _, err := uc.steps.Create(ctx, &domain.WorkflowStep{
			WorkflowID:  workflow.ID,
			Name:        def.Name,
			Description: def.Description,
			StepType:    def.StepType,
			Order:       i + 1,
			Status:      "active",
		}); err != nil {
			return nil, err
		}
	}

	return workflow, nil
}
