package repository

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMockReportsDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock, *PostgresReportsRepository) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	return db, mock, NewPostgresReportsRepository(db)
}

func TestPostgresReports_Totals(t *testing.T) {
	db, mock, repo := setupMockReportsDB(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT`).
		WillReturnRows(sqlmock.NewRows([]string{"zones", "clients", "employees"}).AddRow(3, 12, 5))

	totals, err := repo.Totals(context.Background())
	require.NoError(t, err)
	assert.Equal(t, ReportTotals{Zones: 3, Clients: 12, Employees: 5}, totals)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresReports_ClientsByZone(t *testing.T) {
	db, mock, repo := setupMockReportsDB(t)
	defer db.Close()

	mock.ExpectQuery(`LEFT JOIN zones`).
		WillReturnRows(sqlmock.NewRows([]string{"label", "total"}).
			AddRow("Floor 1", 8).
			AddRow(LabelNoZone, 4))

	buckets, err := repo.ClientsByZone(context.Background())
	require.NoError(t, err)
	require.Len(t, buckets, 2)
	assert.Equal(t, ReportBucket{Label: "Floor 1", Count: 8}, buckets[0])
	assert.Equal(t, ReportBucket{Label: LabelNoZone, Count: 4}, buckets[1])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresReports_ClientsByIllness_Empty(t *testing.T) {
	db, mock, repo := setupMockReportsDB(t)
	defer db.Close()

	mock.ExpectQuery(`FROM clients`).
		WillReturnRows(sqlmock.NewRows([]string{"label", "total"}))

	buckets, err := repo.ClientsByIllness(context.Background())
	require.NoError(t, err)
	assert.Empty(t, buckets)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresReports_EmployeesByRole(t *testing.T) {
	db, mock, repo := setupMockReportsDB(t)
	defer db.Close()

	mock.ExpectQuery(`FROM employees`).
		WillReturnRows(sqlmock.NewRows([]string{"label", "total"}).
			AddRow("Nurse", 3).
			AddRow("Caretaker", 2))

	buckets, err := repo.EmployeesByRole(context.Background())
	require.NoError(t, err)
	require.Len(t, buckets, 2)
	assert.Equal(t, "Nurse", buckets[0].Label)
	require.NoError(t, mock.ExpectationsWereMet())
}
