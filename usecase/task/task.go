package task

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/domainflow/backend/domain"
	"github.com/domainflow/backend/repository"
	activityUC "github.com/domainflow/backend/usecase/activity"
)

type UseCase struct {
	tasks    repository.TaskRepository
	recorder *activityUC.Recorder
	logger   *zap.Logger
}

func New(tasks repository.TaskRepository, recorder *activityUC.Recorder, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		tasks:    tasks,
		recorder: recorder,
		logger:   logger,
	}
}

func (uc *UseCase) ListTasks(ctx context.Context, userID int) ([]domain.Task, error) {
	return uc.tasks.ListByUser(ctx, userID)
}

func (uc *UseCase) GetTask(ctx context.Context, id, userID int) (*domain.Task, error) {
	task, err := uc.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if task.UserID != userID {
		return nil, domain.ErrTaskNotFound
	}
	return task, nil
}

func (uc *UseCase) CreateTask(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	created, err := uc.tasks.Create(ctx, task)
	if err != nil {
		return nil, err
	}

	uc.recorder.Record(ctx, domain.Activity{
		UserID:       created.UserID,
		TaskID:       &created.ID,
		WorkflowID:   created.WorkflowID,
		ContactID:    created.ContactID,
		ActivityType: "task-created",
		Description:  fmt.Sprintf("Task %q was created", created.Title),
	})

	return created, nil
}

func (uc *UseCase) UpdateTask(ctx context.Context, id, userID int, patch domain.TaskPatch) (*domain.Task, error) {
	if _, err := uc.GetTask(ctx, id, userID); err != nil {
		return nil, err
	}

	updated, err := uc.tasks.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	uc.recorder.Record(ctx, domain.Activity{
		UserID:       updated.UserID,
		TaskID:       &updated.ID,
		WorkflowID:   updated.WorkflowID,
		ContactID:    updated.ContactID,
		ActivityType: "task-updated",
		Description:  fmt.Sprintf("Task %q was updated", updated.Title),
	})

	return updated, nil
}

func (uc *UseCase) DeleteTask(ctx context.Context, id, userID int) error {
	if _, err := uc.GetTask(ctx, id, userID); err != nil {
		return err
	}
	return uc.tasks.Delete(ctx, id)
}
