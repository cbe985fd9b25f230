package contact

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/domainflow/backend/domain"
	"github.com/domainflow/backend/repository"
	activityUC "github.com/domainflow/backend/usecase/activity"
)

type UseCase struct {
	contacts repository.ContactRepository
	tasks    repository.TaskRepository
	recorder *activityUC.Recorder
	logger   *zap.Logger
}

func New(contacts repository.ContactRepository, tasks repository.TaskRepository, recorder *activityUC.Recorder, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		contacts: contacts,
		tasks:    tasks,
		recorder: recorder,
		logger:   logger,
	}
}

func (uc *UseCase) ListContacts(ctx context.Context, userID int) ([]domain.Contact, error) {
	return uc.contacts.ListByUser(ctx, userID)
}

func (uc *UseCase) GetContact(ctx context.Context, id, userID int) (*domain.Contact, error) {
	contact, err := uc.contacts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if contact.UserID != userID {
		return nil, domain.ErrContactNotFound
	}
	return contact, nil
}

func (uc *UseCase) CreateContact(ctx context.Context, contact *domain.Contact) (*domain.Contact, error) {
	created, err := uc.contacts.Create(ctx, contact)
	if err != nil {
		return nil, err
	}

	uc.recorder.Record(ctx, domain.Activity{
		UserID:       created.UserID,
		ContactID:    &created.ID,
		ActivityType: "contact-created",
		Description:  fmt.Sprintf("%s was added as a new contact", created.Name),
	})

	return created, nil
}

func (uc *UseCase) UpdateContact(ctx context.Context, id, userID int, patch domain.ContactPatch) (*domain.Contact, error) {
	if _, err := uc.GetContact(ctx, id, userID); err != nil {
		return nil, err
	}
	return uc.contacts.Update(ctx, id, patch)
}

// DeleteContact removes the contact and detaches any tasks still pointing
// at it, so no task is left with a dangling contact reference. Activities
// are left alone; the feed is an immutable audit log.
func (uc *UseCase) DeleteContact(ctx context.Context, id, userID int) error {
	if _, err := uc.GetContact(ctx, id, userID); err != nil {
		return err
	}
	if err := uc.contacts.Delete(ctx, id); err != nil {
		return err
	}

	tasks, err := uc.tasks.ListByContact(ctx, id)
	if err != nil {
		return nil
	}
	for _, task := range tasks {
		if _, err := uc.tasks.Update(ctx, task.ID, domain.TaskPatch{ClearContact: true}); err != nil {
			uc.logger.Warn("failed to detach task from deleted contact",
				zap.Int("task_id", task.ID), zap.Int("contact_id", id), zap.Error(err))
		}
	}
	return nil
}
