package repository

import (
	"context"

	"github.com/domainflow/backend/domain"
)

type ContactRepository interface {
	GetByID(ctx context.Context, id int) (*domain.Contact, error)
	ListByUser(ctx context.Context, userID int) ([]domain.Contact, error)
	Create(ctx context.Context, contact *domain.Contact) (*domain.Contact, error)
	Update(ctx context.Context, id int, patch domain.ContactPatch) (*domain.Contact, error)
	Delete(ctx context.Context, id int) error
}
