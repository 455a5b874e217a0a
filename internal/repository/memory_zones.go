package repository

import (
	"context"
	"database/sql"
	"fmt"
	"sort"

	"facility-monitor/internal/domain"

	"github.com/google/uuid"
)

type MemoryZonesRepo struct {
	s *MemoryStore
}

func NewMemoryZonesRepo(s *MemoryStore) *MemoryZonesRepo {
	return &MemoryZonesRepo{s: s}
}

func (r *MemoryZonesRepo) ListZones(_ context.Context) ([]*domain.Zone, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]*domain.Zone, 0, len(r.s.zones))
	for _, z := range r.s.zones {
		cp := z
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ZoneName < out[j].ZoneName })
	return out, nil
}

func (r *MemoryZonesRepo) GetZone(_ context.Context, zoneID string) (*domain.Zone, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	z, ok := r.s.zones[zoneID]
	if !ok {
		return nil, fmt.Errorf("zone %s: %w", zoneID, ErrNotFound)
	}
	cp := z
	return &cp, nil
}

func (r *MemoryZonesRepo) CreateZone(_ context.Context, zone *domain.Zone) (string, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	id := uuid.NewString()
	cp := *zone
	cp.ZoneID = id
	r.s.zones[id] = cp
	return id, nil
}

func (r *MemoryZonesRepo) UpdateZone(_ context.Context, zoneID string, zone *domain.Zone) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	existing, ok := r.s.zones[zoneID]
	if !ok {
		return fmt.Errorf("zone %s: %w", zoneID, ErrNotFound)
	}
	cp := *zone
	cp.ZoneID = zoneID
	cp.Identifier = existing.Identifier
	r.s.zones[zoneID] = cp
	return nil
}

func (r *MemoryZonesRepo) DeleteZone(_ context.Context, zoneID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.zones[zoneID]; !ok {
		return fmt.Errorf("zone %s: %w", zoneID, ErrNotFound)
	}
	delete(r.s.zones, zoneID)

	// ON DELETE SET NULL equivalents.
	for id, z := range r.s.zones {
		if z.ParentZoneID.Valid && z.ParentZoneID.String == zoneID {
			z.ParentZoneID = sql.NullString{}
			r.s.zones[id] = z
		}
	}
	for id, c := range r.s.clients {
		if c.ZoneID.Valid && c.ZoneID.String == zoneID {
			c.ZoneID = sql.NullString{}
			r.s.clients[id] = c
		}
	}
	for id, e := range r.s.employees {
		if e.ZoneID.Valid && e.ZoneID.String == zoneID {
			e.ZoneID = sql.NullString{}
			r.s.employees[id] = e
		}
	}
	return nil
}
