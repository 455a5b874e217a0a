package repository

import (
	"context"

	"facility-monitor/internal/domain"
)

// ClientsRepository clients table access.
type ClientsRepository interface {
	ListClients(ctx context.Context) ([]*domain.Client, error)
	GetClient(ctx context.Context, clientID string) (*domain.Client, error)
	CreateClient(ctx context.Context, client *domain.Client) (string, error)
	// UpdateClient overwrites every mutable column from client (full replace).
	UpdateClient(ctx context.Context, clientID string, client *domain.Client) error
	// DeleteClient removes the row and cascades to its contacts.
	DeleteClient(ctx context.Context, clientID string) error
}

// ContactsRepository contacts table access. Contacts belong to exactly
// one client and are cascade-deleted with it.
type ContactsRepository interface {
	ListContactsByClient(ctx context.Context, clientID string) ([]*domain.Contact, error)
	GetContact(ctx context.Context, contactID string) (*domain.Contact, error)
	CreateContact(ctx context.Context, contact *domain.Contact) (string, error)
	DeleteContact(ctx context.Context, contactID string) error
}
