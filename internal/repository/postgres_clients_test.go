package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"facility-monitor/internal/domain"
)

// Non-UUID ids from URL segments must map to not-found (or an empty
// list) without reaching the database. No expectations are set on the
// mocks, so any query would fail them.

func TestPostgresClients_MalformedIDIsNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewPostgresClientsRepository(db)
	ctx := context.Background()

	_, err = repo.GetClient(ctx, "abc")
	assert.True(t, IsNotFound(err))

	err = repo.UpdateClient(ctx, "abc", &domain.Client{FirstName: "Ana", Surname1: "Lopez"})
	assert.True(t, IsNotFound(err))

	err = repo.DeleteClient(ctx, "abc")
	assert.True(t, IsNotFound(err))

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresContacts_MalformedIDIsNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewPostgresContactsRepository(db)
	ctx := context.Background()

	_, err = repo.GetContact(ctx, "abc")
	assert.True(t, IsNotFound(err))

	err = repo.DeleteContact(ctx, "abc")
	assert.True(t, IsNotFound(err))

	contacts, err := repo.ListContactsByClient(ctx, "abc")
	require.NoError(t, err)
	assert.Empty(t, contacts)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresEmployees_MalformedIDIsNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewPostgresEmployeesRepository(db)
	ctx := context.Background()

	_, err = repo.GetEmployee(ctx, "abc")
	assert.True(t, IsNotFound(err))

	err = repo.UpdateEmployee(ctx, "abc", &domain.Employee{FirstName: "Luis", Surname1: "Garcia", RoleTitle: "Nurse"})
	assert.True(t, IsNotFound(err))

	err = repo.DeleteEmployee(ctx, "abc")
	assert.True(t, IsNotFound(err))

	require.NoError(t, mock.ExpectationsWereMet())
}
