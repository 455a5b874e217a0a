package service

import (
	"context"
	"fmt"

	"facility-monitor/internal/repository"

	"go.uber.org/zap"
)

// ReportOverview everything the analysis view renders. Recomputed per
// request; no caching, the data volume is a single facility's population.
type ReportOverview struct {
	TotalZones     int
	TotalClients   int
	TotalEmployees int

	ClientsByZone    []repository.ReportBucket
	ClientsByIllness []repository.ReportBucket
	EmployeesByZone  []repository.ReportBucket
	EmployeesByRole  []repository.ReportBucket
}

// ReportService read-only aggregation over clients and employees.
type ReportService interface {
	Overview(ctx context.Context) (*ReportOverview, error)
}

type reportService struct {
	reports repository.ReportsRepository
	logger  *zap.Logger
}

func NewReportService(reports repository.ReportsRepository, logger *zap.Logger) ReportService {
	return &reportService{reports: reports, logger: logger}
}

func (s *reportService) Overview(ctx context.Context) (*ReportOverview, error) {
	totals, err := s.reports.Totals(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count totals: %w", err)
	}

	out := &ReportOverview{
		TotalZones:     totals.Zones,
		TotalClients:   totals.Clients,
		TotalEmployees: totals.Employees,
	}

	if out.ClientsByZone, err = s.reports.ClientsByZone(ctx); err != nil {
		return nil, fmt.Errorf("failed to group clients by zone: %w", err)
	}
	if out.ClientsByIllness, err = s.reports.ClientsByIllness(ctx); err != nil {
		return nil, fmt.Errorf("failed to group clients by illness: %w", err)
	}
	if out.EmployeesByZone, err = s.reports.EmployeesByZone(ctx); err != nil {
		return nil, fmt.Errorf("failed to group employees by zone: %w", err)
	}
	if out.EmployeesByRole, err = s.reports.EmployeesByRole(ctx); err != nil {
		return nil, fmt.Errorf("failed to group employees by role: %w", err)
	}

	return out, nil
}
