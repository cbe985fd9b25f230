package workflow

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

type fixture struct {
	uc         *UseCase
	steps      repository.WorkflowStepRepository
	tasks      repository.TaskRepository
	activities repository.ActivityRepository
}

func newFixture() fixture {
	store := memory.NewStore()
	steps := memory.NewWorkflowStepRepository(store)
	tasks := memory.NewTaskRepository(store)
	activities := memory.NewActivityRepository(store)
	recorder := activityUC.NewRecorder(activities, nil)

	uc := New(
		memory.NewWorkflowRepository(store),
		steps,
		tasks,
		memory.NewTemplateRepository(store),
		recorder,
		nil,
	)
	return fixture{uc: uc, steps: steps, tasks: tasks, activities: activities}
}

func TestCreateWorkflowRecordsActivity(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	created, err := f.uc.CreateWorkflow(ctx, &domain.Workflow{UserID: 1, Name: "Lead Qualification", Domain: "real-estate"})
	require.NoError(t, err)

	feed, err := f.activities.ListByWorkflow(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, feed, 1)
	assert.Equal(t, "workflow-created", feed[0].ActivityType)
	assert.Equal(t, `Workflow "Lead Qualification" was created`, feed[0].Description)
	assert.Equal(t, 1, feed[0].UserID)
}

func TestGetWorkflowHidesOtherOwners(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	created, err := f.uc.CreateWorkflow(ctx, &domain.Workflow{UserID: 1, Name: "Mine"})
	require.NoError(t, err)

	got, err := f.uc.GetWorkflow(ctx, created.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, "Mine", got.Name)

	_, err = f.uc.GetWorkflow(ctx, created.ID, 2)
	assert.ErrorIs(t, err, domain.ErrWorkflowNotFound)
}

func TestDeleteWorkflowCascades(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	workflow, err := f.uc.CreateWorkflow(ctx, &domain.Workflow{UserID: 1, Name: "Closing Process"})
	require.NoError(t, err)

	step, err := f.uc.AddStep(ctx, 1, &domain.WorkflowStep{WorkflowID: workflow.ID, Name: "Offer Submission", Order: 1})
	require.NoError(t, err)

	task, err := f.tasks.Create(ctx, &domain.Task{UserID: 1, Title: "Send contract", WorkflowID: &workflow.ID})
	require.NoError(t, err)

	require.NoError(t, f.uc.DeleteWorkflow(ctx, workflow.ID, 1))

	_, err = f.uc.GetWorkflow(ctx, workflow.ID, 1)
	assert.ErrorIs(t, err, domain.ErrWorkflowNotFound)

	_, err = f.steps.GetByID(ctx, step.ID)
	assert.ErrorIs(t, err, domain.ErrStepNotFound)

	detached, err := f.tasks.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Nil(t, detached.WorkflowID, "task should survive with its workflow reference cleared")

	// The creation entry stays in the feed after the workflow is gone.
	feed, err := f.activities.ListByWorkflow(ctx, workflow.ID)
	require.NoError(t, err)
	assert.Len(t, feed, 1)
}

func TestDeleteWorkflowChecksOwnership(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	workflow, err := f.uc.CreateWorkflow(ctx, &domain.Workflow{UserID: 1, Name: "Mine"})
	require.NoError(t, err)

	err = f.uc.DeleteWorkflow(ctx, workflow.ID, 2)
	assert.ErrorIs(t, err, domain.ErrWorkflowNotFound)

	_, err = f.uc.GetWorkflow(ctx, workflow.ID, 1)
	assert.NoError(t, err)
}

func TestStepOperationsCheckOwnership(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	workflow, err := f.uc.CreateWorkflow(ctx, &domain.Workflow{UserID: 1, Name: "Mine"})
	require.NoError(t, err)
	step, err := f.uc.AddStep(ctx, 1, &domain.WorkflowStep{WorkflowID: workflow.ID, Name: "Only step", Order: 1})
	require.NoError(t, err)

	_, err = f.uc.AddStep(ctx, 2, &domain.WorkflowStep{WorkflowID: workflow.ID, Name: "Intruder", Order: 2})
	assert.ErrorIs(t, err, domain.ErrWorkflowNotFound)

	name := "Renamed"
	_, err = f.uc.UpdateStep(ctx, step.ID, 2, domain.WorkflowStepPatch{Name: &name})
	assert.ErrorIs(t, err, domain.ErrWorkflowNotFound)

	assert.ErrorIs(t, f.uc.DeleteStep(ctx, step.ID, 2), domain.ErrWorkflowNotFound)

	_, err = f.uc.ListSteps(ctx, workflow.ID, 2)
	assert.ErrorIs(t, err, domain.ErrWorkflowNotFound)
}

func TestInstantiateTemplate(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	templates, err := f.uc.ListTemplates(ctx, "real-estate")
	require.NoError(t, err)
	require.NotEmpty(t, templates)

	var leadQualification *domain.DomainTemplate
	for i := range templates {
		if templates[i].Name == "Lead Qualification" {
			leadQualification = &templates[i]
			break
		}
	}
	require.NotNil(t, leadQualification)

	workflow, err := f.uc.InstantiateTemplate(ctx, leadQualification.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, "Lead Qualification", workflow.Name)
	assert.Equal(t, "real-estate", workflow.Domain)
	assert.Equal(t, "active", workflow.Status)

	steps, err := f.uc.ListSteps(ctx, workflow.ID, 1)
	require.NoError(t, err)
	require.Len(t, steps, 4)
	for i, step := range steps {
		assert.Equal(t, i+1, step.Order)
		assert.Equal(t, workflow.ID, step.WorkflowID)
	}
	assert.Equal(t, "Initial Contact", steps[0].Name)
	assert.Equal(t, domain.StepTypeAIAgent, steps[2].StepType)
}

func TestInstantiateNonWorkflowTemplate(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	tpl, err := f.uc.CreateTemplate(ctx, &domain.DomainTemplate{
		Name:         "Welcome Email",
		Domain:       "real-estate",
		TemplateType: domain.TemplateTypeEmail,
	})
	require.NoError(t, err)

	_, err = f.uc.InstantiateTemplate(ctx, tpl.ID, 1)
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeInvalid))
}
