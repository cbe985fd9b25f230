package repository

import (
	"context"

	"github.com/domainflow/backend/domain"
)

// UserRepository is read-mostly: users are created once at bootstrap and
// never updated or deleted.
type UserRepository interface {
	GetByID(ctx context.Context, id int) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
