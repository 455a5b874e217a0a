package repository

import (
	"context"

	"facility-monitor/internal/domain"
)

// ZonesRepository zones table access.
// Strongly typed domain models, no map[string]any payloads.
type ZonesRepository interface {
	ListZones(ctx context.Context) ([]*domain.Zone, error)
	GetZone(ctx context.Context, zoneID string) (*domain.Zone, error)
	CreateZone(ctx context.Context, zone *domain.Zone) (string, error)
	// UpdateZone overwrites every mutable column from zone (full replace).
	UpdateZone(ctx context.Context, zoneID string, zone *domain.Zone) error
	// DeleteZone removes the row; referencing clients/employees and child
	// zones get their reference nulled, never cascaded.
	DeleteZone(ctx context.Context, zoneID string) error
}
