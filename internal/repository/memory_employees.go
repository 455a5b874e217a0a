package repository

import (
	"context"
	"fmt"
	"sort"

	"facility-monitor/internal/domain"

	"github.com/google/uuid"
)

type MemoryEmployeesRepo struct {
	s *MemoryStore
}

func NewMemoryEmployeesRepo(s *MemoryStore) *MemoryEmployeesRepo {
	return &MemoryEmployeesRepo{s: s}
}

func (r *MemoryEmployeesRepo) ListEmployees(_ context.Context) ([]*domain.Employee, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]*domain.Employee, 0, len(r.s.employees))
	for _, e := range r.s.employees {
		cp := e
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Surname1 != out[j].Surname1 {
			return out[i].Surname1 < out[j].Surname1
		}
		return out[i].FirstName < out[j].FirstName
	})
	return out, nil
}

func (r *MemoryEmployeesRepo) GetEmployee(_ context.Context, employeeID string) (*domain.Employee, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	e, ok := r.s.employees[employeeID]
	if !ok {
		return nil, fmt.Errorf("employee %s: %w", employeeID, ErrNotFound)
	}
	cp := e
	return &cp, nil
}

func (r *MemoryEmployeesRepo) CreateEmployee(_ context.Context, employee *domain.Employee) (string, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	id := uuid.NewString()
	cp := *employee
	cp.EmployeeID = id
	r.s.employees[id] = cp
	return id, nil
}

func (r *MemoryEmployeesRepo) UpdateEmployee(_ context.Context, employeeID string, employee *domain.Employee) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	existing, ok := r.s.employees[employeeID]
	if !ok {
		return fmt.Errorf("employee %s: %w", employeeID, ErrNotFound)
	}
	cp := *employee
	cp.EmployeeID = employeeID
	cp.Identifier = existing.Identifier
	r.s.employees[employeeID] = cp
	return nil
}

func (r *MemoryEmployeesRepo) DeleteEmployee(_ context.Context, employeeID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.employees[employeeID]; !ok {
		return fmt.Errorf("employee %s: %w", employeeID, ErrNotFound)
	}
	delete(r.s.employees, employeeID)
	return nil
}
