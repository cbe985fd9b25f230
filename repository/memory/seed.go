package memory

import "github.com/domainflow/backend/domain"

// seedTemplates loads the built-in real-estate workflow template catalog.
// Runs once at store construction; these are the only built-in records.
func (s *Store) seedTemplates() {
	templates := []domain.DomainTemplate{
		{
			Name:         "Lead Qualification",
			Description:  "Workflow for qualifying real estate leads",
			Domain:       "real-estate",
			TemplateType: domain.TemplateTypeWorkflow,
			Content: templateSteps(
				step("Initial Contact", "First contact with lead", domain.StepTypeManual),
				step("Needs Assessment", "Assess client needs and budget", domain.StepTypeManual),
				step("Property Match", "Use AI to match properties", domain.StepTypeAIAgent),
				step("Schedule Viewing", "Schedule property viewings", domain.StepTypeAutomated),
			),
			IsPublic: true,
		},
		{
			Name:         "Property Matching",
			Description:  "Workflow for matching clients with properties",
			Domain:       "real-estate",
			TemplateType: domain.TemplateTypeWorkflow,
			Content: templateSteps(
				step("Client Preferences", "Record client preferences", domain.StepTypeManual),
				step("Market Analysis", "Analyze available properties", domain.StepTypeAIAgent),
				step("Property Selection", "Select properties to show", domain.StepTypeManual),
				step("Client Presentation", "Present properties to client", domain.StepTypeManual),
			),
			IsPublic: true,
		},
		{
			Name:         "Closing Process",
			Description:  "Workflow for property closing process",
			Domain:       "real-estate",
			TemplateType: domain.TemplateTypeWorkflow,
			Content: templateSteps(
				step("Offer Submission", "Submit client offer", domain.StepTypeManual),
				step("Negotiation", "Negotiate terms", domain.StepTypeManual),
				step("Document Preparation", "Prepare legal documents", domain.StepTypeAIAgent),
				step("Inspection", "Schedule property inspection", domain.StepTypeAutomated),
				step("Final Walkthrough", "Complete final walkthrough", domain.StepTypeManual),
				step("Closing Meeting", "Conduct closing meeting", domain.StepTypeManual),
			),
			IsPublic: true,
		},
		{
			Name:         "After-Sale Follow Up",
			Description:  "Workflow for post-sale client follow-up",
			Domain:       "real-estate",
			TemplateType: domain.TemplateTypeWorkflow,
			Content: templateSteps(
				step("Thank You Message", "Send personalized thank you", domain.StepTypeAutomated),
				step("One Week Check-in", "Check on client satisfaction", domain.StepTypeAutomated),
				step("One Month Follow-up", "Check for any issues", domain.StepTypeManual),
				step("Review Request", "Request client review", domain.StepTypeAutomated),
				step("Referral Request", "Ask for referrals", domain.StepTypeManual),
			),
			IsPublic: true,
		},
		{
			Name:         "Client Onboarding",
			Description:  "Workflow for onboarding new clients",
			Domain:       "real-estate",
			TemplateType: domain.TemplateTypeWorkflow,
			Content: templateSteps(
				step("Welcome Email", "Send welcome email", domain.StepTypeAutomated),
				step("Intake Form", "Send intake questionnaire", domain.StepTypeAutomated),
				step("Initial Consultation", "Schedule initial consultation", domain.StepTypeManual),
				step("Preference Analysis", "Analyze client preferences", domain.StepTypeAIAgent),
				step("Service Agreement", "Send service agreement", domain.StepTypeAutomated),
			),
			IsPublic: true,
		},
	}

	for _, tpl := range templates {
		id := s.templateSeq
		s.templateSeq++
		tpl.ID = id
		tpl.CreatedAt = s.timestamp()
		s.templates[id] = tpl
	}
}

func templateSteps(steps ...map[string]interface{}) map[string]interface{} {
	items := make([]interface{}, len(steps))
	for i, st := range steps {
		items[i] = st
	}
	return map[string]interface{}{"steps": items}
}

func step(name, description, stepType string) map[string]interface{} {
	return map[string]interface{}{
		"name":        name,
		"description": description,
		"step_type":   stepType,
	}
}
