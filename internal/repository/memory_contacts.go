package repository

import (
	"context"
	"fmt"
	"sort"

	"facility-monitor/internal/domain"

	"github.com/google/uuid"
)

type MemoryContactsRepo struct {
	s *MemoryStore
}

func NewMemoryContactsRepo(s *MemoryStore) *MemoryContactsRepo {
	return &MemoryContactsRepo{s: s}
}

func (r *MemoryContactsRepo) ListContactsByClient(_ context.Context, clientID string) ([]*domain.Contact, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := []*domain.Contact{}
	for _, c := range r.s.contacts {
		if c.ClientID == clientID {
			cp := c
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Surname1 != out[j].Surname1 {
			return out[i].Surname1 < out[j].Surname1
		}
		return out[i].FirstName < out[j].FirstName
	})
	return out, nil
}

func (r *MemoryContactsRepo) GetContact(_ context.Context, contactID string) (*domain.Contact, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	c, ok := r.s.contacts[contactID]
	if !ok {
		return nil, fmt.Errorf("contact %s: %w", contactID, ErrNotFound)
	}
	cp := c
	return &cp, nil
}

func (r *MemoryContactsRepo) CreateContact(_ context.Context, contact *domain.Contact) (string, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	// FK equivalent: the owning client must exist.
	if _, ok := r.s.clients[contact.ClientID]; !ok {
		return "", fmt.Errorf("client %s: %w", contact.ClientID, ErrNotFound)
	}

	id := uuid.NewString()
	cp := *contact
	cp.ContactID = id
	r.s.contacts[id] = cp
	return id, nil
}

func (r *MemoryContactsRepo) DeleteContact(_ context.Context, contactID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.contacts[contactID]; !ok {
		return fmt.Errorf("contact %s: %w", contactID, ErrNotFound)
	}
	delete(r.s.contacts, contactID)
	return nil
}
