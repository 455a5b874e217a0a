package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"facility-monitor/internal/domain"
	"facility-monitor/internal/repository"
)

func newEmployeeFixture(t *testing.T) (EmployeeService, ZoneService) {
	t.Helper()
	mem := repository.NewMemoryStore()
	employees := NewEmployeeService(repository.NewMemoryEmployeesRepo(mem), repository.NewMemoryZonesRepo(mem), zap.NewNop())
	zones := NewZoneService(repository.NewMemoryZonesRepo(mem), zap.NewNop())
	return employees, zones
}

func TestAddEmployee(t *testing.T) {
	employees, zones := newEmployeeFixture(t)
	ctx := context.Background()

	zoneID, err := zones.AddZone(ctx, ZoneRequest{ZoneName: "Floor 2", ZoneType: domain.ZoneTypeFloor})
	require.NoError(t, err)

	id, err := employees.AddEmployee(ctx, EmployeeRequest{
		FirstName: "Luis", Surname1: "Garcia", RoleTitle: "Nurse", Active: true, ZoneID: zoneID,
	})
	require.NoError(t, err)

	e, err := employees.GetEmployee(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Nurse", e.RoleTitle)
	assert.Len(t, e.Identifier, 8)
	require.True(t, e.ZoneID.Valid)
	assert.Equal(t, zoneID, e.ZoneID.String)
}

func TestAddEmployee_MissingFields(t *testing.T) {
	employees, _ := newEmployeeFixture(t)

	_, err := employees.AddEmployee(context.Background(), EmployeeRequest{
		FirstName: "Luis", Surname1: "Garcia",
	})
	assert.ErrorIs(t, err, ErrMissingFields)
}

func TestEditEmployee_FullReplace(t *testing.T) {
	employees, zones := newEmployeeFixture(t)
	ctx := context.Background()

	zoneID, err := zones.AddZone(ctx, ZoneRequest{ZoneName: "Floor 2", ZoneType: domain.ZoneTypeFloor})
	require.NoError(t, err)
	id, err := employees.AddEmployee(ctx, EmployeeRequest{
		FirstName: "Luis", Surname1: "Garcia", RoleTitle: "Nurse", Active: true, ZoneID: zoneID,
	})
	require.NoError(t, err)

	require.NoError(t, employees.EditEmployee(ctx, id, EmployeeRequest{
		FirstName: "Luis", Surname1: "Garcia", RoleTitle: "Head nurse",
	}))

	e, err := employees.GetEmployee(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Head nurse", e.RoleTitle)
	assert.False(t, e.Active)
	assert.False(t, e.ZoneID.Valid)
}

func TestEditEmployee_NotFound(t *testing.T) {
	employees, _ := newEmployeeFixture(t)

	err := employees.EditEmployee(context.Background(), "missing", EmployeeRequest{
		FirstName: "Luis", Surname1: "Garcia", RoleTitle: "Nurse",
	})
	assert.True(t, repository.IsNotFound(err))
}

func TestDeleteEmployee(t *testing.T) {
	employees, _ := newEmployeeFixture(t)
	ctx := context.Background()

	id, err := employees.AddEmployee(ctx, EmployeeRequest{
		FirstName: "Luis", Surname1: "Garcia", RoleTitle: "Nurse",
	})
	require.NoError(t, err)

	require.NoError(t, employees.DeleteEmployee(ctx, id))
	_, err = employees.GetEmployee(ctx, id)
	assert.True(t, repository.IsNotFound(err))

	assert.True(t, repository.IsNotFound(employees.DeleteEmployee(ctx, id)))
}
