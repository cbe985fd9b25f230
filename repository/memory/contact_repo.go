package memory

import (
	"context"
	"sort"

	"github.com/domainflow/backend/domain"
	"github.com/domainflow/backend/repository"
)

type contactRepository struct {
	store *Store
}

// NewContactRepository returns the in-memory implementation of ContactRepository.
func NewContactRepository(store *Store) repository.ContactRepository {
	return &contactRepository{store: store}
}

func (r *contactRepository) GetByID(_ context.Context, id int) (*domain.Contact, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	contact, ok := r.store.contacts[id]
	if !ok {
		return nil, domain.ErrContactNotFound
	}
	return &contact, nil
}

func (r *contactRepository) ListByUser(_ context.Context, userID int) ([]domain.Contact, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var contacts []domain.Contact
	for _, contact := range r.store.contacts {
		if contact.UserID == userID {
			contacts = append(contacts, contact)
		}
	}
	sort.Slice(contacts, func(i, j int) bool { return contacts[i].ID < contacts[j].ID })
	return contacts, nil
}

func (r *contactRepository) Create(_ context.Context, contact *domain.Contact) (*domain.Contact, error) {
	if contact == nil {
		return nil, domain.ErrInvalidPayload
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	stored := *contact
	stored.ID = r.store.contactSeq
	r.store.contactSeq++
	if stored.Status == "" {
		stored.Status = "active"
	}
	stored.CreatedAt = r.store.timestamp()
	r.store.contacts[stored.ID] = stored

	out := stored
	return &out, nil
}

func (r *contactRepository) Update(_ context.Context, id int, patch domain.ContactPatch) (*domain.Contact, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	contact, ok := r.store.contacts[id]
	if !ok {
		return nil, domain.ErrContactNotFound
	}
	patch.Apply(&contact)
	r.store.contacts[id] = contact

	out := contact
	return &out, nil
}

func (r *contactRepository) Delete(_ context.Context, id int) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.contacts[id]; !ok {
		return domain.ErrContactNotFound
	}
	delete(r.store.contacts, id)
	return nil
}
