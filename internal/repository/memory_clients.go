package repository

import (
	"context"
	"fmt"
	"sort"

	"facility-monitor/internal/domain"

	"github.com/google/uuid"
)

type MemoryClientsRepo struct {
	s *MemoryStore
}

func NewMemoryClientsRepo(s *MemoryStore) *MemoryClientsRepo {
	return &MemoryClientsRepo{s: s}
}

func (r *MemoryClientsRepo) ListClients(_ context.Context) ([]*domain.Client, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]*domain.Client, 0, len(r.s.clients))
	for _, c := range r.s.clients {
		cp := c
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Surname1 != out[j].Surname1 {
			return out[i].Surname1 < out[j].Surname1
		}
		return out[i].FirstName < out[j].FirstName
	})
	return out, nil
}

func (r *MemoryClientsRepo) GetClient(_ context.Context, clientID string) (*domain.Client, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	c, ok := r.s.clients[clientID]
	if !ok {
		return nil, fmt.Errorf("client %s: %w", clientID, ErrNotFound)
	}
	cp := c
	return &cp, nil
}

func (r *MemoryClientsRepo) CreateClient(_ context.Context, client *domain.Client) (string, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, existing := range r.s.clients {
		if existing.Document == client.Document {
			return "", fmt.Errorf("duplicate document: %s", client.Document)
		}
	}

	id := uuid.NewString()
	cp := *client
	cp.ClientID = id
	r.s.clients[id] = cp
	return id, nil
}

func (r *MemoryClientsRepo) UpdateClient(_ context.Context, clientID string, client *domain.Client) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	existing, ok := r.s.clients[clientID]
	if !ok {
		return fmt.Errorf("client %s: %w", clientID, ErrNotFound)
	}
	cp := *client
	cp.ClientID = clientID
	cp.Identifier = existing.Identifier
	r.s.clients[clientID] = cp
	return nil
}

func (r *MemoryClientsRepo) DeleteClient(_ context.Context, clientID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.clients[clientID]; !ok {
		return fmt.Errorf("client %s: %w", clientID, ErrNotFound)
	}
	delete(r.s.clients, clientID)

	// ON DELETE CASCADE equivalent for owned contacts.
	for id, c := range r.s.contacts {
		if c.ClientID == clientID {
			delete(r.s.contacts, id)
		}
	}
	return nil
}
