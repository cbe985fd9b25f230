package bootstrap

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/domainflow/backend/repository/memory"
)

func newRepos() Repositories {
	store := memory.NewStore()
	return Repositories{
		Users:     memory.NewUserRepository(store),
		Contacts:  memory.NewContactRepository(store),
		Workflows: memory.NewWorkflowRepository(store),
		Steps:     memory.NewWorkflowStepRepository(store),
		Agents:    memory.NewAgentRepository(store),
		Tasks:     memory.NewTaskRepository(store),
		Activity:  memory.NewActivityRepository(store),
		Templates: memory.NewTemplateRepository(store),
	}
}

func TestSeederPopulatesDemoData(t *testing.T) {
	ctx := context.Background()
	repos := newRepos()
	seeder := NewSeeder(repos, nil)

	require.NoError(t, seeder.Run(ctx, "demo", "demo123"))

	user, err := repos.Users.GetByUsername(ctx, "demo")
	require.NoError(t, err)
	assert.Equal(t, "admin", user.Role)
	assert.Equal(t, "Demo User", user.FullName)

	workflows, err := repos.Workflows.ListByUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, workflows, 5, "one workflow per real-estate template")
	for _, workflow := range workflows {
		steps, err := repos.Steps.ListByWorkflow(ctx, workflow.ID)
		require.NoError(t, err)
		assert.NotEmpty(t, steps, "workflow %q has no steps", workflow.Name)
		for i, step := range steps {
			assert.Equal(t, i+1, step.Order)
		}
	}

	agents, err := repos.Agents.ListByUser(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, agents, 4)
	assert.Equal(t, "Property Matcher", agents[0].Name)
	assert.Equal(t, "gpt-4o", agents[0].Config["model"])

	contacts, err := repos.Contacts.ListByUser(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, contacts, 3)
	assert.Equal(t, "John Smith", contacts[0].Name)

	tasks, err := repos.Tasks.ListByUser(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, tasks, 4)
	for _, task := range tasks {
		assert.NotNil(t, task.WorkflowID, "task %q should reference a workflow", task.Title)
	}

	feed, err := repos.Activity.ListByUser(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, feed, 4)
	// Newest entry first.
	assert.Equal(t, "ai-agent", feed[0].ActivityType)
	assert.Equal(t, "calendar", feed[3].ActivityType)
}

func TestSeederIsIdempotent(t *testing.T) {
	ctx := context.Background()
	repos := newRepos()
	seeder := NewSeeder(repos, nil)

	require.NoError(t, seeder.Run(ctx, "demo", "demo123"))
	require.NoError(t, seeder.Run(ctx, "demo", "demo123"))

	user, err := repos.Users.GetByUsername(ctx, "demo")
	require.NoError(t, err)

	workflows, err := repos.Workflows.ListByUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, workflows, 5)

	contacts, err := repos.Contacts.ListByUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, contacts, 3)

	agents, err := repos.Agents.ListByUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, agents, 4)

	tasks, err := repos.Tasks.ListByUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, tasks, 4)

	feed, err := repos.Activity.ListByUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, feed, 4)
}
