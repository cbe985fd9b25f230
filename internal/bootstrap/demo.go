// Package bootstrap seeds the demo user and demo data at startup. Every
// block checks whether its collection is already populated before writing,
// so running the seeder twice never duplicates anything.
package bootstrap

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/domainflow/backend/domain"
	"github.com/domainflow/backend/repository"
)

// Repositories bundles the stores the seeder writes to.
type Repositories struct {
	Users     repository.UserRepository
	Contacts  repository.ContactRepository
	Workflows repository.WorkflowRepository
	Steps     repository.WorkflowStepRepository
	Agents    repository.AgentRepository
	Tasks     repository.TaskRepository
	Activity  repository.ActivityRepository
	Templates repository.TemplateRepository
}

type Seeder struct {
	repos  Repositories
	logger *zap.Logger
}

func NewSeeder(repos Repositories, logger *zap.Logger) *Seeder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Seeder{
		repos:  repos,
		logger: logger,
	}
}

// Run ensures the demo user exists and populates demo data scoped to it.
func (s *Seeder) Run(ctx context.Context, username, password string) error {
	user, err := s.ensureUser(ctx, username, password)
	if err != nil {
		return fmt.Errorf("demo user: %w", err)
	}

	if err := s.seedWorkflows(ctx, user.ID); err != nil {
		return fmt.Errorf("demo workflows: %w", err)
	}
	if err := s.seedAgents(ctx, user.ID); err != nil {
		return fmt.Errorf("demo agents: %w", err)
	}
	if err := s.seedContacts(ctx, user.ID); err != nil {
		return fmt.Errorf("demo contacts: %w", err)
	}
	if err := s.seedTasks(ctx, user.ID); err != nil {
		return fmt.Errorf("demo tasks: %w", err)
	}
	if err := s.seedActivities(ctx, user.ID); err != nil {
		return fmt.Errorf("demo activities: %w", err)
	}

	s.logger.Info("demo data ready", zap.Int("user_id", user.ID))
	return nil
}

func (s *Seeder) ensureUser(ctx context.Context, username, password string) (*domain.User, error) {
	if user, err := s.repos.Users.GetByUsername(ctx, username); err == nil {
		return user, nil
	}
	return s.repos.Users.Create(ctx, &domain.User{
		Username: username,
		Password: password,
		Email:    "demo@example.com",
		FullName: "Demo User",
		Role:     "admin",
	})
}

// seedWorkflows instantiates every real-estate workflow template into a
// real workflow with its steps ordered 1..n.
func (s *Seeder) seedWorkflows(ctx context.Context, userID int) error {
	existing, err := s.repos.Workflows.ListByUser(ctx, userID)
	if err != nil || len(existing) > 0 {
		return err
	}

	templates, err := s.repos.Templates.ListByDomain(ctx, "real-estate")
	if err != nil {
		return err
	}

	for _, tpl := range templates {
		if tpl.TemplateType != domain.TemplateTypeWorkflow {
			continue
		}
		workflow, err := s.repos.Workflows.Create(ctx, &domain.Workflow{
			UserID:      userID,
			Name:        tpl.Name,
			Description: tpl.Description,
			Domain:      tpl.Domain,
			Status:      "active",
		})
		if err != nil {
			return err
		}
		for i, def := range tpl.WorkflowSteps() {
			if _, err := s.repos.Steps.Create(ctx, &domain.WorkflowStep{
				WorkflowID:  workflow.ID,
				Name:        def.Name,
				Description: def.Description,
				StepType:    def.StepType,
				Order:       i + 1,
				Status:      "active",
			}); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *Seeder) seedAgents(ctx context.Context, userID int) error {
	existing, err := s.repos.Agents.ListByUser(ctx, userID)
	if err != nil || len(existing) > 0 {
		return err
	}

	agents := []domain.AiAgent{
		{
			Name:        "Property Matcher",
			Description: "Matches clients with properties",
			AgentType:   domain.AgentTypeMatching,
			Status:      "active",
		},
		{
			Name:        "Email Assistant",
			Description: "Handles client communication",
			AgentType:   domain.AgentTypeCommunication,
			Status:      "active",
		},
		{
			Name:        "Doc Processor",
			Description: "Processes legal documents",
			AgentType:   domain.AgentTypeDocument,
			Status:      "needs-config",
		},
		{
			Name:        "Market Analyzer",
			Description: "Analyzes market trends",
			AgentType:   domain.AgentTypeAnalysis,
			Status:      "inactive",
		},
	}

	for _, agent := range agents {
		agent.UserID = userID
		agent.Config = map[string]interface{}{"model": "gpt-4o"}
		if _, err := s.repos.Agents.Create(ctx, &agent); err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) seedContacts(ctx context.Context, userID int) error {
	existing, err := s.repos.Contacts.ListByUser(ctx, userID)
	if err != nil || len(existing) > 0 {
		return err
	}

	contacts := []domain.Contact{
		{
			Name:    "John Smith",
			Email:   "john.smith@example.com",
			Phone:   "555-123-4567",
			Address: "123 Main St, Anytown, USA",
			Type:    "client",
			Status:  "active",
			Notes:   "Looking for a 3-bedroom house in the suburbs.",
		},
		{
			Name:    "Sarah Johnson",
			Email:   "sarah.j@example.com",
			Phone:   "555-987-6543",
			Address: "456 Oak Avenue, Somewhere, USA",
			Type:    "client",
			Status:  "active",
			Notes:   "Interested in investment properties.",
		},
		{
			Name:    "James Wilson",
			Email:   "james.w@example.com",
			Phone:   "555-456-7890",
			Address: "789 Pine Street, Elsewhere, USA",
			Type:    "lead",
			Status:  "active",
			Notes:   "First-time homebuyer looking in urban areas.",
		},
	}

	for _, contact := range contacts {
		contact.UserID = userID
		if _, err := s.repos.Contacts.Create(ctx, &contact); err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) seedTasks(ctx context.Context, userID int) error {
	existing, err := s.repos.Tasks.ListByUser(ctx, userID)
	if err != nil || len(existing) > 0 {
		return err
	}

	workflows, err := s.repos.Workflows.ListByUser(ctx, userID)
	if err != nil {
		return err
	}
	contacts, err := s.repos.Contacts.ListByUser(ctx, userID)
	if err != nil {
		return err
	}
	if len(workflows) == 0 || len(contacts) == 0 {
		return nil
	}

	now := time.Now()
	tasks := []domain.Task{
		{
			Title:       "Follow up with John Smith",
			Description: "Regarding property viewing feedback",
			DueDate:     timePtr(now.Add(time.Hour)),
			Status:      domain.TaskStatusPending,
			WorkflowID:  workflowIDByName(workflows, "Client Onboarding"),
			ContactID:   contactIDByName(contacts, "John Smith"),
		},
		{
			Title:       "Send contract to Sarah Johnson",
			Description: "Purchase agreement for 123 Main St",
			DueDate:     timePtr(now.Add(5 * time.Hour)),
			Status:      domain.TaskStatusInProgress,
			WorkflowID:  workflowIDByName(workflows, "Closing Process"),
			ContactID:   contactIDByName(contacts, "Sarah Johnson"),
		},
		{
			Title:       "Schedule home inspection",
			Description: "For 456 Oak Avenue",
			DueDate:     timePtr(now.Add(-24 * time.Hour)),
			Status:      domain.TaskStatusOverdue,
			WorkflowID:  workflowIDByName(workflows, "Closing Process"),
			ContactID:   contactIDByName(contacts, "Sarah Johnson"),
		},
		{
			Title:       "Update property listing",
			Description: "789 Pine Street - Price reduction",
			DueDate:     timePtr(now.Add(24 * time.Hour)),
			Status:      domain.TaskStatusScheduled,
			WorkflowID:  workflowIDByName(workflows, "Property Matching"),
		},
	}

	for _, task := range tasks {
		task.UserID = userID
		if _, err := s.repos.Tasks.Create(ctx, &task); err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) seedActivities(ctx context.Context, userID int) error {
	existing, err := s.repos.Activity.ListByUser(ctx, userID)
	if err != nil || len(existing) > 0 {
		return err
	}

	workflows, err := s.repos.Workflows.ListByUser(ctx, userID)
	if err != nil {
		return err
	}
	contacts, err := s.repos.Contacts.ListByUser(ctx, userID)
	if err != nil {
		return err
	}
	if len(workflows) == 0 || len(contacts) == 0 {
		return nil
	}

	now := time.Now()
	activities := []domain.Activity{
		{
			ActivityType: "ai-agent",
			Description:  "AI Agent Property Matcher automatically sent 12 property listings to clients",
			Timestamp:    now.Add(-30 * time.Minute),
		},
		{
			ActivityType: "workflow",
			Description:  "After-Sale Follow Up workflow completed for 3 recent property viewings",
			WorkflowID:   workflowIDByName(workflows, "After-Sale Follow Up"),
			Timestamp:    now.Add(-2 * time.Hour),
		},
		{
			ActivityType: "contact",
			Description:  "Sarah Johnson was added as a new client to the database",
			ContactID:    contactIDByName(contacts, "Sarah Johnson"),
			Timestamp:    now.Add(-24 * time.Hour),
		},
		{
			ActivityType: "calendar",
			Description:  "Property Viewing scheduled with James Wilson for tomorrow at 3:00 PM",
			ContactID:    contactIDByName(contacts, "James Wilson"),
			Timestamp:    now.Add(-29 * time.Hour),
		},
	}

	for _, activity := range activities {
		activity.UserID = userID
		if _, err := s.repos.Activity.Create(ctx, &activity); err != nil {
			return err
		}
	}
	return nil
}

// workflowIDByName falls back to the first workflow when no name matches,
// so the seed data stays wired even if the template catalog changes.
func workflowIDByName(workflows []domain.Workflow, name string) *int {
	for _, w := range workflows {
		if w.Name == name {
			id := w.ID
			return &id
		}
	}
	if len(workflows) > 0 {
		id := workflows[0].ID
		return &id
	}
	return nil
}

func contactIDByName(contacts []domain.Contact, name string) *int {
	for _, c := range contacts {
		if c.Name == name {
			id := c.ID
			return &id
		}
	}
	if len(contacts) > 0 {
		id := contacts[0].ID
		return &id
	}
	return nil
}

func timePtr(t time.Time) *time.Time {
	return &t
}
