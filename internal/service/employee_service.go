package service

import (
	"context"
	"fmt"
	"strings"

	"facility-monitor/internal/domain"
	"facility-monitor/internal/repository"

	"go.uber.org/zap"
)

// EmployeeService employee CRUD with the panel's validation rules.
type EmployeeService interface {
	ListEmployees(ctx context.Context) ([]*domain.Employee, error)
	GetEmployee(ctx context.Context, employeeID string) (*domain.Employee, error)
	AddEmployee(ctx context.Context, req EmployeeRequest) (string, error)
	EditEmployee(ctx context.Context, employeeID string, req EmployeeRequest) error
	DeleteEmployee(ctx context.Context, employeeID string) error
}

// EmployeeRequest the flat field set submitted by the add/edit forms.
type EmployeeRequest struct {
	FirstName string
	Surname1  string
	RoleTitle string
	Active    bool
	ZoneID    string
}

type employeeService struct {
	employees repository.EmployeesRepository
	zones     repository.ZonesRepository
	logger    *zap.Logger
}

func NewEmployeeService(
	employees repository.EmployeesRepository,
	zones repository.ZonesRepository,
	logger *zap.Logger,
) EmployeeService {
	return &employeeService{employees: employees, zones: zones, logger: logger}
}

func (s *employeeService) ListEmployees(ctx context.Context) ([]*domain.Employee, error) {
	return s.employees.ListEmployees(ctx)
}

func (s *employeeService) GetEmployee(ctx context.Context, employeeID string) (*domain.Employee, error) {
	return s.employees.GetEmployee(ctx, employeeID)
}

func (s *employeeService) buildEmployee(ctx context.Context, req EmployeeRequest) (*domain.Employee, error) {
	req.FirstName = strings.TrimSpace(req.FirstName)
	req.Surname1 = strings.TrimSpace(req.Surname1)
	req.RoleTitle = strings.TrimSpace(req.RoleTitle)
	if req.FirstName == "" || req.Surname1 == "" || req.RoleTitle == "" {
		return nil, ErrMissingFields
	}
	zoneRef, err := resolveZoneRef(ctx, s.zones, req.ZoneID)
	if err != nil {
		return nil, err
	}
	return &domain.Employee{
		FirstName: req.FirstName,
		Surname1:  req.Surname1,
		RoleTitle: req.RoleTitle,
		Active:    req.Active,
		ZoneID:    zoneRef,
	}, nil
}

func (s *employeeService) AddEmployee(ctx context.Context, req EmployeeRequest) (string, error) {
	employee, err := s.buildEmployee(ctx, req)
	if err != nil {
		return "", err
	}
	employee.Identifier = newIdentifier()

	id, err := s.employees.CreateEmployee(ctx, employee)
	if err != nil {
		return "", fmt.Errorf("failed to create employee: %w", err)
	}
	s.logger.Info("Employee created", zap.String("employee_id", id))
	return id, nil
}

// EditEmployee is a full replace of every bound field.
func (s *employeeService) EditEmployee(ctx context.Context, employeeID string, req EmployeeRequest) error {
	if _, err := s.employees.GetEmployee(ctx, employeeID); err != nil {
		return err
	}

	employee, err := s.buildEmployee(ctx, req)
	if err != nil {
		return err
	}

	if err := s.employees.UpdateEmployee(ctx, employeeID, employee); err != nil {
		return err
	}
	s.logger.Info("Employee updated", zap.String("employee_id", employeeID))
	return nil
}

func (s *employeeService) DeleteEmployee(ctx context.Context, employeeID string) error {
	if err := s.employees.DeleteEmployee(ctx, employeeID); err != nil {
		return err
	}
	s.logger.Info("Employee deleted", zap.String("employee_id", employeeID))
	return nil
}
