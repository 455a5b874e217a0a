package repository

import (
	"context"
	"database/sql"
	"fmt"

	"facility-monitor/internal/domain"
)

type PostgresAccountsRepository struct {
	db *sql.DB
}

func NewPostgresAccountsRepository(db *sql.DB) *PostgresAccountsRepository {
	return &PostgresAccountsRepository{db: db}
}

func (r *PostgresAccountsRepository) GetAccountByUsername(ctx context.Context, username string) (*domain.Account, error) {
	if username == "" {
		return nil, fmt.Errorf("username is required")
	}
	q := `
		SELECT account_id::text, username, email, password_hash, is_superuser, created_at
		FROM accounts
		WHERE username = $1
	`
	var a domain.Account
	err := r.db.QueryRowContext(ctx, q, username).Scan(
		&a.AccountID,
		&a.Username,
		&a.Email,
		&a.PasswordHash,
		&a.IsSuperuser,
		&a.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("account %s: %w", username, ErrNotFound)
		}
		return nil, err
	}
	return &a, nil
}

func (r *PostgresAccountsRepository) CreateAccount(ctx context.Context, account *domain.Account) (string, error) {
	q := `
		INSERT INTO accounts (username, email, password_hash, is_superuser)
		VALUES ($1, $2, $3, $4)
		RETURNING account_id::text
	`
	var id string
	err := r.db.QueryRowContext(ctx, q,
		account.Username,
		account.Email,
		account.PasswordHash,
		account.IsSuperuser,
	).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

// UpsertSuperuser keeps the bootstrap admin usable across restarts
// without failing on the unique username constraint.
func (r *PostgresAccountsRepository) UpsertSuperuser(ctx context.Context, username string, passwordHash []byte) error {
	q := `
		INSERT INTO accounts (username, password_hash, is_superuser)
		VALUES ($1, $2, TRUE)
		ON CONFLICT (username)
		DO UPDATE SET password_hash = EXCLUDED.password_hash,
		              is_superuser = TRUE
	`
	_, err := r.db.ExecContext(ctx, q, username, passwordHash)
	return err
}
