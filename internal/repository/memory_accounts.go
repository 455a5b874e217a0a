package repository

import (
	"context"
	"fmt"
	"time"

	"facility-monitor/internal/domain"

	"github.com/google/uuid"
)

type MemoryAccountsRepo struct {
	s *MemoryStore
}

func NewMemoryAccountsRepo(s *MemoryStore) *MemoryAccountsRepo {
	return &MemoryAccountsRepo{s: s}
}

func (r *MemoryAccountsRepo) GetAccountByUsername(_ context.Context, username string) (*domain.Account, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	a, ok := r.s.accounts[username]
	if !ok {
		return nil, fmt.Errorf("account %s: %w", username, ErrNotFound)
	}
	cp := a
	return &cp, nil
}

func (r *MemoryAccountsRepo) CreateAccount(_ context.Context, account *domain.Account) (string, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.accounts[account.Username]; ok {
		return "", fmt.Errorf("duplicate username: %s", account.Username)
	}

	id := uuid.NewString()
	cp := *account
	cp.AccountID = id
	if cp.CreatedAt.IsZero() {
		cp.CreatedAt = time.Now()
	}
	r.s.accounts[cp.Username] = cp
	return id, nil
}

func (r *MemoryAccountsRepo) UpsertSuperuser(_ context.Context, username string, passwordHash []byte) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	a, ok := r.s.accounts[username]
	if !ok {
		a = domain.Account{
			AccountID: uuid.NewString(),
			Username:  username,
			CreatedAt: time.Now(),
		}
	}
	a.PasswordHash = passwordHash
	a.IsSuperuser = true
	r.s.accounts[username] = a
	return nil
}
