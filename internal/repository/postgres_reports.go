package repository

import (
	"context"
	"database/sql"
)

type PostgresReportsRepository struct {
	db *sql.DB
}

func NewPostgresReportsRepository(db *sql.DB) *PostgresReportsRepository {
	return &PostgresReportsRepository{db: db}
}

func (r *PostgresReportsRepository) Totals(ctx context.Context) (ReportTotals, error) {
	var t ReportTotals
	q := `
		SELECT
			(SELECT COUNT(*) FROM zones),
			(SELECT COUNT(*) FROM clients),
			(SELECT COUNT(*) FROM employees)
	`
	if err := r.db.QueryRowContext(ctx, q).Scan(&t.Zones, &t.Clients, &t.Employees); err != nil {
		return ReportTotals{}, err
	}
	return t, nil
}

func (r *PostgresReportsRepository) queryBuckets(ctx context.Context, q string) ([]ReportBucket, error) {
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []ReportBucket{}
	for rows.Next() {
		var b ReportBucket
		if err := rows.Scan(&b.Label, &b.Count); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *PostgresReportsRepository) ClientsByZone(ctx context.Context) ([]ReportBucket, error) {
	q := `
		SELECT COALESCE(z.zone_name, '` + LabelNoZone + `') AS label, COUNT(*) AS total
		FROM clients c
		LEFT JOIN zones z ON z.zone_id = c.zone_id
		GROUP BY label
		ORDER BY total DESC, label ASC
	`
	return r.queryBuckets(ctx, q)
}

func (r *PostgresReportsRepository) ClientsByIllness(ctx context.Context) ([]ReportBucket, error) {
	q := `
		SELECT COALESCE(NULLIF(illness, ''), '` + LabelNotSpecified + `') AS label, COUNT(*) AS total
		FROM clients
		GROUP BY label
		ORDER BY total DESC, label ASC
	`
	return r.queryBuckets(ctx, q)
}

func (r *PostgresReportsRepository) EmployeesByZone(ctx context.Context) ([]ReportBucket, error) {
	q := `
		SELECT COALESCE(z.zone_name, '` + LabelNoZone + `') AS label, COUNT(*) AS total
		FROM employees e
		LEFT JOIN zones z ON z.zone_id = e.zone_id
		GROUP BY label
		ORDER BY total DESC, label ASC
	`
	return r.queryBuckets(ctx, q)
}

func (r *PostgresReportsRepository) EmployeesByRole(ctx context.Context) ([]ReportBucket, error) {
	q := `
		SELECT role_title AS label, COUNT(*) AS total
		FROM employees
		GROUP BY label
		ORDER BY total DESC, label ASC
	`
	return r.queryBuckets(ctx, q)
}
