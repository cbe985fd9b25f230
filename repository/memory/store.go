// Package memory provides the in-memory repository implementations backing
// the CRM. One Store instance owns every entity collection; the per-entity
// repositories are thin typed views over it. The process keeps exactly one
// Store for its lifetime, constructed in main and passed down explicitly,
// so tests can build as many isolated instances as they need.
package memory

import (
	"sync"
	"time"

	"github.com/domainflow/backend/domain"
)

// Store holds every entity collection plus one id sequence per entity kind.
// Identifiers start at 1, grow monotonically and are never reused, even
// after deletion.
//
// The original execution model assumes a single logical writer; fasthttp
// serves requests concurrently, so the store guards itself with one RWMutex
// instead.
type Store struct {
	mu sync.RWMutex

	users     map[int]domain.User
	contacts  map[int]domain.Contact
	workflows map[int]domain.Workflow
	steps     map[int]domain.WorkflowStep
	agents    map[int]domain.AiAgent
	tasks     map[int]domain.Task
	activity  map[int]domain.Activity
	templates map[int]domain.DomainTemplate

	userSeq     int
	contactSeq  int
	workflowSeq int
	stepSeq     int
	agentSeq    int
	taskSeq     int
	activitySeq int
	templateSeq int

	now func() time.Time
}

// NewStore builds an empty store and seeds the built-in domain template
// catalog. All other collections start empty.
func NewStore() *Store {
	s := &Store{
		users:     make(map[int]domain.User),
		contacts:  make(map[int]domain.Contact),
		workflows: make(map[int]domain.Workflow),
		steps:     make(map[int]domain.WorkflowStep),
		agents:    make(map[int]domain.AiAgent),
		tasks:     make(map[int]domain.Task),
		activity:  make(map[int]domain.Activity),
		templates: make(map[int]domain.DomainTemplate),

		userSeq:     1,
		contactSeq:  1,
		workflowSeq: 1,
		stepSeq:     1,
		agentSeq:    1,
		taskSeq:     1,
		activitySeq: 1,
		templateSeq: 1,

		now: time.Now,
	}
	s.seedTemplates()
	return s
}

// Stats reports per-collection record counts, used by the health endpoint.
type Stats struct {
	Users           int `json:"users"`
	Contacts        int `json:"contacts"`
	Workflows       int `json:"workflows"`
	WorkflowSteps   int `json:"workflow_steps"`
	AiAgents        int `json:"ai_agents"`
	Tasks           int `json:"tasks"`
	Activities      int `json:"activities"`
	DomainTemplates int `json:"domain_templates"`
}

func (s *Store) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Stats{
		Users:           len(s.users),
		Contacts:        len(s.contacts),
		Workflows:       len(s.workflows),
		WorkflowSteps:   len(s.steps),
		AiAgents:        len(s.agents),
		Tasks:           len(s.tasks),
		Activities:      len(s.activity),
		DomainTemplates: len(s.templates),
	}
}

func (s *Store) timestamp() time.Time {
	return s.now().UTC()
}
