package contact

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/domainflow/backend/domain"
	"github.com/domainflow/backend/repository"
	"github.com/domainflow/backend/repository/memory"
	activityUC "github.com/domainflow/backend/usecase/activity"
)

func newFixture() (*UseCase, repository.TaskRepository, repository.ActivityRepository) {
	store := memory.NewStore()
	tasks := memory.NewTaskRepository(store)
	activities := memory.NewActivityRepository(store)
	recorder := activityUC.NewRecorder(activities, nil)
	uc := New(memory.NewContactRepository(store), tasks, recorder, nil)
	return uc, tasks, activities
}

func TestCreateContactRecordsActivity(t *testing.T) {
	ctx := context.Background()
	uc, _, activities := newFixture()

	created, err := uc.CreateContact(ctx, &domain.Contact{UserID: 1, Name: "John Smith", Type: "client"})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	feed, err := activities.ListByContact(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, feed, 1)
	assert.Equal(t, "contact-created", feed[0].ActivityType)
	assert.Equal(t, "John Smith was added as a new contact", feed[0].Description)
}

func TestGetContactHidesOtherOwners(t *testing.T) {
	ctx := context.Background()
	uc, _, _ := newFixture()

	created, err := uc.CreateContact(ctx, &domain.Contact{UserID: 1, Name: "Mine"})
	require.NoError(t, err)

	_, err = uc.GetContact(ctx, created.ID, 2)
	assert.ErrorIs(t, err, domain.ErrContactNotFound)
}

func TestDeleteContactDetachesTasks(t *testing.T) {
	ctx := context.Background()
	uc, tasks, activities := newFixture()

	contact, err := uc.CreateContact(ctx, &domain.Contact{UserID: 1, Name: "Sarah Johnson"})
	require.NoError(t, err)

	task, err := tasks.Create(ctx, &domain.Task{UserID: 1, Title: "Send contract", ContactID: &contact.ID})
	require.NoError(t, err)

	require.NoError(t, uc.DeleteContact(ctx, contact.ID, 1))

	_, err = uc.GetContact(ctx, contact.ID, 1)
	assert.ErrorIs(t, err, domain.ErrContactNotFound)

	detached, err := tasks.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Nil(t, detached.ContactID)

	// The feed still remembers the contact.
	feed, err := activities.ListByContact(ctx, contact.ID)
	require.NoError(t, err)
	assert.Len(t, feed, 1)
}

func TestUpdateContactPartial(t *testing.T) {
	ctx := context.Background()
	uc, _, _ := newFixture()

	created, err := uc.CreateContact(ctx, &domain.Contact{UserID: 1, Name: "James Wilson", Type: "lead"})
	require.NoError(t, err)

	status := "inactive"
	updated, err := uc.UpdateContact(ctx, created.ID, 1, domain.ContactPatch{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, "inactive", updated.Status)
	assert.Equal(t, "James Wilson", updated.Name)
	assert.Equal(t, "lead", updated.Type)
}
