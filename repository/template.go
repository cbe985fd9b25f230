package repository

import (
	"context"

	"github.com/domainflow/backend/domain"
)

type TemplateRepository interface {
	GetByID(ctx context.Context, id int) (*domain.DomainTemplate, error)
	ListByDomain(ctx context.Context, domainName string) ([]domain.DomainTemplate, error)
	Create(ctx context.Context, template *domain.DomainTemplate) (*domain.DomainTemplate, error)
}
