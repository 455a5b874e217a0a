package repository

import (
	"context"

	"facility-monitor/internal/domain"
)

// AccountsRepository accounts table access (the auth collaborator's
// store; this service reads credentials and creates registrations).
type AccountsRepository interface {
	GetAccountByUsername(ctx context.Context, username string) (*domain.Account, error)
	CreateAccount(ctx context.Context, account *domain.Account) (string, error)
	// UpsertSuperuser creates or refreshes a superuser row (dev bootstrap).
	UpsertSuperuser(ctx context.Context, username string, passwordHash []byte) error
}
