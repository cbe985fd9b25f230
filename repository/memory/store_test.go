package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/domainflow/backend/domain"
)

func TestUserRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("create assigns id and defaults", func(t *testing.T) {
		repo := NewUserRepository(NewStore())

		user, err := repo.Create(ctx, &domain.User{
			Username: "demo",
			Password: "demo123",
			Email:    "demo@example.com",
			FullName: "Demo User",
		})
		require.NoError(t, err)
		assert.Equal(t, 1, user.ID)
		assert.Equal(t, "user", user.Role)
		assert.False(t, user.CreatedAt.IsZero())
	})

	t.Run("lookup by id and username", func(t *testing.T) {
		repo := NewUserRepository(NewStore())
		created, err := repo.Create(ctx, &domain.User{Username: "demo", Email: "demo@example.com"})
		require.NoError(t, err)

		byID, err := repo.GetByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "demo", byID.Username)

		byName, err := repo.GetByUsername(ctx, "demo")
		require.NoError(t, err)
		assert.Equal(t, created.ID, byName.ID)

		_, err = repo.GetByID(ctx, 99)
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
		_, err = repo.GetByUsername(ctx, "nobody")
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})

	t.Run("duplicate username rejected", func(t *testing.T) {
		repo := NewUserRepository(NewStore())
		_, err := repo.Create(ctx, &domain.User{Username: "demo", Email: "a@example.com"})
		require.NoError(t, err)

		_, err = repo.Create(ctx, &domain.User{Username: "demo", Email: "b@example.com"})
		assert.ErrorIs(t, err, domain.ErrUsernameTaken)
	})

	t.Run("duplicate email rejected", func(t *testing.T) {
		repo := NewUserRepository(NewStore())
		_, err := repo.Create(ctx, &domain.User{Username: "one", Email: "same@example.com"})
		require.NoError(t, err)

		_, err = repo.Create(ctx, &domain.User{Username: "two", Email: "same@example.com"})
		assert.ErrorIs(t, err, domain.ErrEmailTaken)
	})
}

func TestContactRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("ids grow monotonically and are never reused", func(t *testing.T) {
		repo := NewContactRepository(NewStore())

		first, err := repo.Create(ctx, &domain.Contact{UserID: 1, Name: "First"})
		require.NoError(t, err)
		second, err := repo.Create(ctx, &domain.Contact{UserID: 1, Name: "Second"})
		require.NoError(t, err)
		assert.Equal(t, 1, first.ID)
		assert.Equal(t, 2, second.ID)

		require.NoError(t, repo.Delete(ctx, second.ID))

		third, err := repo.Create(ctx, &domain.Contact{UserID: 1, Name: "Third"})
		require.NoError(t, err)
		assert.Equal(t, 3, third.ID, "deleted ids must not be reused")
	})

	t.Run("list is scoped to owner and sorted by id", func(t *testing.T) {
		repo := NewContactRepository(NewStore())
		_, err := repo.Create(ctx, &domain.Contact{UserID: 1, Name: "Mine"})
		require.NoError(t, err)
		_, err = repo.Create(ctx, &domain.Contact{UserID: 2, Name: "Theirs"})
		require.NoError(t, err)
		_, err = repo.Create(ctx, &domain.Contact{UserID: 1, Name: "Also mine"})
		require.NoError(t, err)

		contacts, err := repo.ListByUser(ctx, 1)
		require.NoError(t, err)
		require.Len(t, contacts, 2)
		assert.Equal(t, "Mine", contacts[0].Name)
		assert.Equal(t, "Also mine", contacts[1].Name)
	})

	t.Run("patch changes only the named fields", func(t *testing.T) {
		repo := NewContactRepository(NewStore())
		created, err := repo.Create(ctx, &domain.Contact{
			UserID: 1,
			Name:   "John Smith",
			Email:  "john.smith@example.com",
			Phone:  "555-123-4567",
			Type:   "client",
			Notes:  "Looking for a 3-bedroom house.",
		})
		require.NoError(t, err)

		phone := "555-000-0000"
		updated, err := repo.Update(ctx, created.ID, domain.ContactPatch{Phone: &phone})
		require.NoError(t, err)
		assert.Equal(t, "555-000-0000", updated.Phone)
		assert.Equal(t, "John Smith", updated.Name)
		assert.Equal(t, "john.smith@example.com", updated.Email)
		assert.Equal(t, "Looking for a 3-bedroom house.", updated.Notes)
		assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	})

	t.Run("update of a missing contact reports not found", func(t *testing.T) {
		repo := NewContactRepository(NewStore())
		name := "Ghost"
		_, err := repo.Update(ctx, 42, domain.ContactPatch{Name: &name})
		assert.ErrorIs(t, err, domain.ErrContactNotFound)
	})

	t.Run("second delete reports not found", func(t *testing.T) {
		repo := NewContactRepository(NewStore())
		created, err := repo.Create(ctx, &domain.Contact{UserID: 1, Name: "Once"})
		require.NoError(t, err)

		require.NoError(t, repo.Delete(ctx, created.ID))
		assert.ErrorIs(t, repo.Delete(ctx, created.ID), domain.ErrContactNotFound)
	})
}

func TestWorkflowStepOrdering(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	workflows := NewWorkflowRepository(store)
	steps := NewWorkflowStepRepository(store)

	workflow, err := workflows.Create(ctx, &domain.Workflow{UserID: 1, Name: "Closing Process", Domain: "real-estate"})
	require.NoError(t, err)

	// Insert out of order on purpose.
	for _, spec := range []struct {
		name  string
		order int
	}{
		{"Negotiation", 2},
		{"Offer Submission", 1},
		{"Inspection", 4},
		{"Document Preparation", 3},
	} {
		_, err := steps.Create(ctx, &domain.WorkflowStep{
			WorkflowID: workflow.ID,
			Name:       spec.name,
			StepType:   domain.StepTypeManual,
			Order:      spec.order,
		})
		require.NoError(t, err)
	}

	listed, err := steps.ListByWorkflow(ctx, workflow.ID)
	require.NoError(t, err)
	require.Len(t, listed, 4)
	assert.Equal(t, "Offer Submission", listed[0].Name)
	assert.Equal(t, "Negotiation", listed[1].Name)
	assert.Equal(t, "Document Preparation", listed[2].Name)
	assert.Equal(t, "Inspection", listed[3].Name)

	// Reordering via patch moves the step in subsequent listings.
	first := 0
	moved, err := steps.Update(ctx, listed[3].ID, domain.WorkflowStepPatch{Order: &first})
	require.NoError(t, err)
	assert.Equal(t, 0, moved.Order)

	listed, err = steps.ListByWorkflow(ctx, workflow.ID)
	require.NoError(t, err)
	assert.Equal(t, "Inspection", listed[0].Name)
}

func TestWorkflowStepOrderTies(t *testing.T) {
	ctx := context.Background()
	steps := NewWorkflowStepRepository(NewStore())

	for _, name := range []string{"A", "B", "C"} {
		_, err := steps.Create(ctx, &domain.WorkflowStep{WorkflowID: 7, Name: name, Order: 1})
		require.NoError(t, err)
	}

	listed, err := steps.ListByWorkflow(ctx, 7)
	require.NoError(t, err)
	require.Len(t, listed, 3)
	// Equal Order values fall back to insertion (id) order.
	assert.Equal(t, "A", listed[0].Name)
	assert.Equal(t, "B", listed[1].Name)
	assert.Equal(t, "C", listed[2].Name)
}

func TestActivityRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("lists newest first", func(t *testing.T) {
		repo := NewActivityRepository(NewStore())
		now := time.Now().UTC()

		for i, age := range []time.Duration{24 * time.Hour, time.Hour, 30 * time.Minute} {
			_, err := repo.Create(ctx, &domain.Activity{
				UserID:       1,
				ActivityType: "workflow",
				Description:  []string{"oldest", "middle", "newest"}[i],
				Timestamp:    now.Add(-age),
			})
			require.NoError(t, err)
		}

		listed, err := repo.ListByUser(ctx, 1)
		require.NoError(t, err)
		require.Len(t, listed, 3)
		assert.Equal(t, "newest", listed[0].Description)
		assert.Equal(t, "middle", listed[1].Description)
		assert.Equal(t, "oldest", listed[2].Description)
	})

	t.Run("equal timestamps order by id descending", func(t *testing.T) {
		repo := NewActivityRepository(NewStore())
		ts := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

		for _, desc := range []string{"first", "second"} {
			_, err := repo.Create(ctx, &domain.Activity{UserID: 1, ActivityType: "contact", Description: desc, Timestamp: ts})
			require.NoError(t, err)
		}

		listed, err := repo.ListByUser(ctx, 1)
		require.NoError(t, err)
		require.Len(t, listed, 2)
		assert.Equal(t, "second", listed[0].Description)
	})

	t.Run("stamps zero timestamps, honors explicit ones", func(t *testing.T) {
		repo := NewActivityRepository(NewStore())

		stamped, err := repo.Create(ctx, &domain.Activity{UserID: 1, ActivityType: "task", Description: "now"})
		require.NoError(t, err)
		assert.WithinDuration(t, time.Now().UTC(), stamped.Timestamp, 5*time.Second)

		past := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
		kept, err := repo.Create(ctx, &domain.Activity{UserID: 1, ActivityType: "task", Description: "then", Timestamp: past})
		require.NoError(t, err)
		assert.True(t, kept.Timestamp.Equal(past))
	})

	t.Run("filters by workflow, contact and task", func(t *testing.T) {
		repo := NewActivityRepository(NewStore())
		workflowID, contactID, taskID := 3, 5, 7

		_, err := repo.Create(ctx, &domain.Activity{UserID: 1, ActivityType: "workflow", Description: "wf", WorkflowID: &workflowID})
		require.NoError(t, err)
		_, err = repo.Create(ctx, &domain.Activity{UserID: 1, ActivityType: "contact", Description: "ct", ContactID: &contactID})
		require.NoError(t, err)
		_, err = repo.Create(ctx, &domain.Activity{UserID: 1, ActivityType: "task", Description: "tk", TaskID: &taskID})
		require.NoError(t, err)

		byWorkflow, err := repo.ListByWorkflow(ctx, workflowID)
		require.NoError(t, err)
		require.Len(t, byWorkflow, 1)
		assert.Equal(t, "wf", byWorkflow[0].Description)

		byContact, err := repo.ListByContact(ctx, contactID)
		require.NoError(t, err)
		require.Len(t, byContact, 1)
		assert.Equal(t, "ct", byContact[0].Description)

		byTask, err := repo.ListByTask(ctx, taskID)
		require.NoError(t, err)
		require.Len(t, byTask, 1)
		assert.Equal(t, "tk", byTask[0].Description)
	})
}

func TestTaskRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewTaskRepository(NewStore())

	workflowID, contactID := 2, 4
	created, err := repo.Create(ctx, &domain.Task{
		UserID:     1,
		Title:      "Follow up with John Smith",
		Status:     domain.TaskStatusPending,
		WorkflowID: &workflowID,
		ContactID:  &contactID,
	})
	require.NoError(t, err)

	t.Run("filters by workflow and contact", func(t *testing.T) {
		byWorkflow, err := repo.ListByWorkflow(ctx, workflowID)
		require.NoError(t, err)
		require.Len(t, byWorkflow, 1)
		assert.Equal(t, created.ID, byWorkflow[0].ID)

		byContact, err := repo.ListByContact(ctx, contactID)
		require.NoError(t, err)
		require.Len(t, byContact, 1)

		none, err := repo.ListByWorkflow(ctx, 99)
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("clear flags null out references", func(t *testing.T) {
		updated, err := repo.Update(ctx, created.ID, domain.TaskPatch{ClearWorkflow: true, ClearContact: true})
		require.NoError(t, err)
		assert.Nil(t, updated.WorkflowID)
		assert.Nil(t, updated.ContactID)
		assert.Equal(t, "Follow up with John Smith", updated.Title)
	})
}

func TestTemplateCatalog(t *testing.T) {
	ctx := context.Background()
	repo := NewTemplateRepository(NewStore())

	t.Run("seeds the real-estate catalog", func(t *testing.T) {
		templates, err := repo.ListByDomain(ctx, "real-estate")
		require.NoError(t, err)
		require.Len(t, templates, 5)

		names := make([]string, len(templates))
		for i, tpl := range templates {
			names[i] = tpl.Name
			assert.Equal(t, domain.TemplateTypeWorkflow, tpl.TemplateType)
			assert.True(t, tpl.IsPublic)
			assert.NotEmpty(t, tpl.WorkflowSteps())
		}
		assert.Equal(t, []string{
			"Lead Qualification",
			"Property Matching",
			"Closing Process",
			"After-Sale Follow Up",
			"Client Onboarding",
		}, names)
	})

	t.Run("unknown domain lists empty", func(t *testing.T) {
		templates, err := repo.ListByDomain(ctx, "sales")
		require.NoError(t, err)
		assert.Empty(t, templates)
	})

	t.Run("created templates keep sequence going", func(t *testing.T) {
		tpl, err := repo.Create(ctx, &domain.DomainTemplate{
			Name:         "Cold Outreach",
			Domain:       "sales",
			TemplateType: domain.TemplateTypeEmail,
		})
		require.NoError(t, err)
		assert.Equal(t, 6, tpl.ID)
	})
}

func TestStoreStats(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	_, err := NewUserRepository(store).Create(ctx, &domain.User{Username: "demo", Email: "demo@example.com"})
	require.NoError(t, err)
	_, err = NewContactRepository(store).Create(ctx, &domain.Contact{UserID: 1, Name: "John Smith"})
	require.NoError(t, err)

	stats := store.Stats()
	assert.Equal(t, 1, stats.Users)
	assert.Equal(t, 1, stats.Contacts)
	assert.Equal(t, 5, stats.DomainTemplates)
	assert.Zero(t, stats.Tasks)
}
