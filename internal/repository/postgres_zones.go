package repository

import (
	"context"
	"database/sql"
	"fmt"

	"facility-monitor/internal/domain"
)

type PostgresZonesRepository struct {
	db *sql.DB
}

func NewPostgresZonesRepository(db *sql.DB) *PostgresZonesRepository {
	return &PostgresZonesRepository{db: db}
}

const zoneColumns = `
	zone_id::text,
	identifier,
	zone_name,
	zone_type,
	parent_zone_id::text,
	locked,
	total_beds,
	occupied_beds
`

func scanZone(row interface{ Scan(...any) error }) (*domain.Zone, error) {
	var z domain.Zone
	if err := row.Scan(
		&z.ZoneID,
		&z.Identifier,
		&z.ZoneName,
		&z.ZoneType,
		&z.ParentZoneID,
		&z.Locked,
		&z.TotalBeds,
		&z.OccupiedBeds,
	); err != nil {
		return nil, err
	}
	return &z, nil
}

func (r *PostgresZonesRepository) ListZones(ctx context.Context) ([]*domain.Zone, error) {
	q := `SELECT ` + zoneColumns + ` FROM zones ORDER BY zone_name`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*domain.Zone{}
	for rows.Next() {
		z, err := scanZone(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, z)
	}
	return out, rows.Err()
}

func (r *PostgresZonesRepository) GetZone(ctx context.Context, zoneID string) (*domain.Zone, error) {
	if zoneID == "" {
		return nil, fmt.Errorf("zone_id is required")
	}
	if !validUUID(zoneID) {
		return nil, fmt.Errorf("zone %s: %w", zoneID, ErrNotFound)
	}
	q := `SELECT ` + zoneColumns + ` FROM zones WHERE zone_id = $1`
	z, err := scanZone(r.db.QueryRowContext(ctx, q, zoneID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("zone %s: %w", zoneID, ErrNotFound)
		}
		return nil, err
	}
	return z, nil
}

func (r *PostgresZonesRepository) CreateZone(ctx context.Context, zone *domain.Zone) (string, error) {
	q := `
		INSERT INTO zones (identifier, zone_name, zone_type, parent_zone_id, locked, total_beds, occupied_beds)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING zone_id::text
	`
	var id string
	err := r.db.QueryRowContext(ctx, q,
		zone.Identifier,
		zone.ZoneName,
		zone.ZoneType,
		zone.ParentZoneID,
		zone.Locked,
		zone.TotalBeds,
		zone.OccupiedBeds,
	).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (r *PostgresZonesRepository) UpdateZone(ctx context.Context, zoneID string, zone *domain.Zone) error {
	q := `
		UPDATE zones
		SET zone_name = $1,
		    zone_type = $2,
		    parent_zone_id = $3,
		    locked = $4,
		    total_beds = $5,
		    occupied_beds = $6
		WHERE zone_id = $7
	`
	if !validUUID(zoneID) {
		return fmt.Errorf("zone %s: %w", zoneID, ErrNotFound)
	}
	res, err := r.db.ExecContext(ctx, q,
		zone.ZoneName,
		zone.ZoneType,
		zone.ParentZoneID,
		zone.Locked,
		zone.TotalBeds,
		zone.OccupiedBeds,
		zoneID,
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("zone %s: %w", zoneID, ErrNotFound)
	}
	return nil
}

// DeleteZone removes the row. parent_zone_id on children and zone_id on
// clients/employees are nulled by the FK ON DELETE SET NULL clauses.
func (r *PostgresZonesRepository) DeleteZone(ctx context.Context, zoneID string) error {
	if !validUUID(zoneID) {
		return fmt.Errorf("zone %s: %w", zoneID, ErrNotFound)
	}
	res, err := r.db.ExecContext(ctx, `DELETE FROM zones WHERE zone_id = $1`, zoneID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("zone %s: %w", zoneID, ErrNotFound)
	}
	return nil
}
