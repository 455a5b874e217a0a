package service

import (
	"context"
	"database/sql"
	"fmt"

	"facility-monitor/internal/repository"

	"github.com/google/uuid"
)

// newIdentifier returns the short random external identifier generated
// for every row at creation (first 8 chars of a UUID).
func newIdentifier() string {
	return uuid.NewString()[:8]
}

// resolveZoneRef resolves a submitted zone id. Empty or unknown ids
// become NULL; lookup failures other than not-found are propagated so a
// transient error cannot silently drop an assignment.
func resolveZoneRef(ctx context.Context, zones repository.ZonesRepository, zoneID string) (sql.NullString, error) {
	if zoneID == "" {
		return sql.NullString{}, nil
	}
	if _, err := zones.GetZone(ctx, zoneID); err != nil {
		if repository.IsNotFound(err) {
			return sql.NullString{}, nil
		}
		return sql.NullString{}, fmt.Errorf("failed to resolve zone %s: %w", zoneID, err)
	}
	return sql.NullString{String: zoneID, Valid: true}, nil
}

// nullString maps "" to NULL for optional text columns.
func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
