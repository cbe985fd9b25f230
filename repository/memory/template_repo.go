package memory

import (
	"context"
	"sort"

	"github.com/domainflow/backend/domain"
	"github.com/domainflow/backend/repository"
)

type templateRepository struct {
	store *Store
}

// NewTemplateRepository returns the in-memory implementation of
// TemplateRepository. The built-in catalog is seeded at store construction;
// additional templates can be created but never updated or deleted.
func NewTemplateRepository(store *Store) repository.TemplateRepository {
	return &templateRepository{store: store}
}

func (r *templateRepository) GetByID(_ context.Context, id int) (*domain.DomainTemplate, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	template, ok := r.store.templates[id]
	if !ok {
		return nil, domain.ErrTemplateNotFound
	}
	return &template, nil
}

func (r *templateRepository) ListByDomain(_ context.Context, domainName string) ([]domain.DomainTemplate, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var templates []domain.DomainTemplate
	for _, template := range r.store.templates {
		if template.Domain == domainName {
			templates = append(templates, template)
		}
	}
	sort.Slice(templates, func(i, j int) bool { return templates[i].ID < templates[j].ID })
	return templates, nil
}

func (r *templateRepository) Create(_ context.Context, template *domain.DomainTemplate) (*domain.DomainTemplate, error) {
	if template == nil {
		return nil, domain.ErrInvalidPayload
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	stored := *template
	stored.ID = r.store.templateSeq
	r.store.templateSeq++
	stored.CreatedAt = r.store.timestamp()
	r.store.templates[stored.ID] = stored

	out := stored
	return &out, nil
}
