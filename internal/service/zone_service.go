package service

import (
	"context"
	"fmt"
	"strings"

	"facility-monitor/internal/domain"
	"facility-monitor/internal/repository"

	"go.uber.org/zap"
)

// ZoneService zone CRUD with the panel's validation rules.
type ZoneService interface {
	ListZones(ctx context.Context) ([]*domain.Zone, error)
	GetZone(ctx context.Context, zoneID string) (*domain.Zone, error)
	AddZone(ctx context.Context, req ZoneRequest) (string, error)
	EditZone(ctx context.Context, zoneID string, req ZoneRequest) error
	DeleteZone(ctx context.Context, zoneID string) error
}

// ZoneRequest the flat field set submitted by the add/edit forms.
type ZoneRequest struct {
	ZoneName     string
	ZoneType     int
	ParentZoneID string // resolved permissively; unresolvable means no parent
	Locked       bool
	TotalBeds    int
	OccupiedBeds int
}

type zoneService struct {
	zones  repository.ZonesRepository
	logger *zap.Logger
}

func NewZoneService(zones repository.ZonesRepository, logger *zap.Logger) ZoneService {
	return &zoneService{zones: zones, logger: logger}
}

func (s *zoneService) ListZones(ctx context.Context) ([]*domain.Zone, error) {
	return s.zones.ListZones(ctx)
}

func (s *zoneService) GetZone(ctx context.Context, zoneID string) (*domain.Zone, error) {
	return s.zones.GetZone(ctx, zoneID)
}

func (s *zoneService) buildZone(ctx context.Context, req ZoneRequest) (*domain.Zone, error) {
	req.ZoneName = strings.TrimSpace(req.ZoneName)
	if req.ZoneName == "" || !domain.ValidZoneType(req.ZoneType) {
		return nil, ErrMissingFields
	}
	if req.TotalBeds < 0 || req.OccupiedBeds < 0 {
		return nil, ErrMissingFields
	}
	parentRef, err := resolveZoneRef(ctx, s.zones, req.ParentZoneID)
	if err != nil {
		return nil, err
	}
	return &domain.Zone{
		ZoneName:     req.ZoneName,
		ZoneType:     req.ZoneType,
		ParentZoneID: parentRef,
		Locked:       req.Locked,
		TotalBeds:    req.TotalBeds,
		OccupiedBeds: req.OccupiedBeds,
	}, nil
}

func (s *zoneService) AddZone(ctx context.Context, req ZoneRequest) (string, error) {
	zone, err := s.buildZone(ctx, req)
	if err != nil {
		return "", err
	}
	zone.Identifier = newIdentifier()

	id, err := s.zones.CreateZone(ctx, zone)
	if err != nil {
		return "", fmt.Errorf("failed to create zone: %w", err)
	}
	s.logger.Info("Zone created", zap.String("zone_id", id), zap.String("zone_name", zone.ZoneName))
	return id, nil
}

// EditZone is a full replace: every field comes from the submitted form,
// including a NULL parent when the submitted id does not resolve.
func (s *zoneService) EditZone(ctx context.Context, zoneID string, req ZoneRequest) error {
	if _, err := s.zones.GetZone(ctx, zoneID); err != nil {
		return err
	}

	zone, err := s.buildZone(ctx, req)
	if err != nil {
		return err
	}
	// No self-parenting; the model layer does not enforce this.
	if zone.ParentZoneID.Valid && zone.ParentZoneID.String == zoneID {
		return ErrSelfParent
	}

	if err := s.zones.UpdateZone(ctx, zoneID, zone); err != nil {
		return err
	}
	s.logger.Info("Zone updated", zap.String("zone_id", zoneID))
	return nil
}

func (s *zoneService) DeleteZone(ctx context.Context, zoneID string) error {
	if err := s.zones.DeleteZone(ctx, zoneID); err != nil {
		return err
	}
	s.logger.Info("Zone deleted", zap.String("zone_id", zoneID))
	return nil
}
