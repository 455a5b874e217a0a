package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMockAccountsDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock, *PostgresAccountsRepository) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	return db, mock, NewPostgresAccountsRepository(db)
}

func TestPostgresAccounts_GetAccountByUsername(t *testing.T) {
	db, mock, repo := setupMockAccountsDB(t)
	defer db.Close()

	accountID := uuid.New().String()
	hash := []byte("$2a$10$fakehash")
	mock.ExpectQuery(`SELECT`).
		WithArgs("admin").
		WillReturnRows(sqlmock.NewRows([]string{
			"account_id", "username", "email", "password_hash", "is_superuser", "created_at",
		}).AddRow(accountID, "admin", nil, hash, true, time.Now()))

	a, err := repo.GetAccountByUsername(context.Background(), "admin")
	require.NoError(t, err)
	assert.Equal(t, accountID, a.AccountID)
	assert.Equal(t, hash, a.PasswordHash)
	assert.True(t, a.IsSuperuser)
	assert.False(t, a.Email.Valid)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresAccounts_GetAccountByUsername_NotFound(t *testing.T) {
	db, mock, repo := setupMockAccountsDB(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT`).
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetAccountByUsername(context.Background(), "ghost")
	assert.True(t, IsNotFound(err))
}

func TestPostgresAccounts_UpsertSuperuser(t *testing.T) {
	db, mock, repo := setupMockAccountsDB(t)
	defer db.Close()

	hash := []byte("$2a$10$fakehash")
	mock.ExpectExec(`INSERT INTO accounts`).
		WithArgs("admin", hash).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.UpsertSuperuser(context.Background(), "admin", hash))
	require.NoError(t, mock.ExpectationsWereMet())
}
