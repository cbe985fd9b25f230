package memory

import (
	"context"

	"github.com/domainflow/backend/domain"
	"github.com/domainflow/backend/repository"
)

type userRepository struct {
	store *Store
}

// NewUserRepository returns the in-memory implementation of UserRepository.
func NewUserRepository(store *Store) repository.UserRepository {
	return &userRepository{store: store}
}

func (r *userRepository) GetByID(_ context.Context, id int) (*domain.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	user, ok := r.store.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &user, nil
}

func (r *userRepository) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, user := range r.store.users {
		if user.Username == username {
			u := user
			return &u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

// Create rejects duplicate usernames and emails with a conflict error. The
// original silently allowed duplicates; that looked like an oversight, so
// uniqueness is enforced here.
func (r *userRepository) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if user == nil {
		return nil, domain.ErrInvalidPayload
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, existing := range r.store.users {
		if existing.Username == user.Username {
			return nil, domain.ErrUsernameTaken
		}
		if existing.Email == user.Email {
			return nil, domain.ErrEmailTaken
		}
	}

	stored := *user
	stored.ID = r.store.userSeq
	r.store.userSeq++
	if stored.Role == "" {
		stored.Role = "user"
	}
	stored.CreatedAt = r.store.timestamp()
	r.store.users[stored.ID] = stored

	out := stored
	return &out, nil
}
