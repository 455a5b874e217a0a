package repository

import (
	"context"
)

// Bucket labels for rows without a group value.
const (
	LabelNoZone       = "No zone"
	LabelNotSpecified = "Not specified"
)

// ReportBucket is one row of a grouped count.
type ReportBucket struct {
	Label string
	Count int
}

// ReportTotals scalar row counts per table.
type ReportTotals struct {
	Zones     int
	Clients   int
	Employees int
}

// ReportsRepository read-only grouped counts over clients and employees.
// Every result is ordered count-descending, label-ascending on ties.
type ReportsRepository interface {
	Totals(ctx context.Context) (ReportTotals, error)
	ClientsByZone(ctx context.Context) ([]ReportBucket, error)
	ClientsByIllness(ctx context.Context) ([]ReportBucket, error)
	EmployeesByZone(ctx context.Context) ([]ReportBucket, error)
	EmployeesByRole(ctx context.Context) ([]ReportBucket, error)
}
