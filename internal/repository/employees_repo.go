package repository

import (
	"context"

	"facility-monitor/internal/domain"
)

// EmployeesRepository employees table access.
type EmployeesRepository interface {
	ListEmployees(ctx context.Context) ([]*domain.Employee, error)
	GetEmployee(ctx context.Context, employeeID string) (*domain.Employee, error)
	CreateEmployee(ctx context.Context, employee *domain.Employee) (string, error)
	// UpdateEmployee overwrites every mutable column (full replace).
	UpdateEmployee(ctx context.Context, employeeID string, employee *domain.Employee) error
	DeleteEmployee(ctx context.Context, employeeID string) error
}
