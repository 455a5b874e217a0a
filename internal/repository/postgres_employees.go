package repository

import (
	"context"
	"database/sql"
	"fmt"

	"facility-monitor/internal/domain"
)

type PostgresEmployeesRepository struct {
	db *sql.DB
}

func NewPostgresEmployeesRepository(db *sql.DB) *PostgresEmployeesRepository {
	return &PostgresEmployeesRepository{db: db}
}

const employeeColumns = `
	employee_id::text,
	identifier,
	first_name,
	surname1,
	role_title,
	active,
	zone_id::text
`

func scanEmployee(row interface{ Scan(...any) error }) (*domain.Employee, error) {
	var e domain.Employee
	if err := row.Scan(
		&e.EmployeeID,
		&e.Identifier,
		&e.FirstName,
		&e.Surname1,
		&e.RoleTitle,
		&e.Active,
		&e.ZoneID,
	); err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *PostgresEmployeesRepository) ListEmployees(ctx context.Context) ([]*domain.Employee, error) {
	q := `SELECT ` + employeeColumns + ` FROM employees ORDER BY surname1, first_name`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*domain.Employee{}
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *PostgresEmployeesRepository) GetEmployee(ctx context.Context, employeeID string) (*domain.Employee, error) {
	if employeeID == "" {
		return nil, fmt.Errorf("employee_id is required")
	}
	if !validUUID(employeeID) {
		return nil, fmt.Errorf("employee %s: %w", employeeID, ErrNotFound)
	}
	q := `SELECT ` + employeeColumns + ` FROM employees WHERE employee_id = $1`
	e, err := scanEmployee(r.db.QueryRowContext(ctx, q, employeeID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("employee %s: %w", employeeID, ErrNotFound)
		}
		return nil, err
	}
	return e, nil
}

func (r *PostgresEmployeesRepository) CreateEmployee(ctx context.Context, employee *domain.Employee) (string, error) {
	q := `
		INSERT INTO employees (identifier, first_name, surname1, role_title, active, zone_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING employee_id::text
	`
	var id string
	err := r.db.QueryRowContext(ctx, q,
		employee.Identifier,
		employee.FirstName,
		employee.Surname1,
		employee.RoleTitle,
		employee.Active,
		employee.ZoneID,
	).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (r *PostgresEmployeesRepository) UpdateEmployee(ctx context.Context, employeeID string, employee *domain.Employee) error {
	q := `
		UPDATE employees
		SET first_name = $1,
		    surname1 = $2,
		    role_title = $3,
		    active = $4,
		    zone_id = $5
		WHERE employee_id = $6
	`
	if !validUUID(employeeID) {
		return fmt.Errorf("employee %s: %w", employeeID, ErrNotFound)
	}
	res, err := r.db.ExecContext(ctx, q,
		employee.FirstName,
		employee.Surname1,
		employee.RoleTitle,
		employee.Active,
		employee.ZoneID,
		employeeID,
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("employee %s: %w", employeeID, ErrNotFound)
	}
	return nil
}

func (r *PostgresEmployeesRepository) DeleteEmployee(ctx context.Context, employeeID string) error {
	if !validUUID(employeeID) {
		return fmt.Errorf("employee %s: %w", employeeID, ErrNotFound)
	}
	res, err := r.db.ExecContext(ctx, `DELETE FROM employees WHERE employee_id = $1`, employeeID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("employee %s: %w", employeeID, ErrNotFound)
	}
	return nil
}
