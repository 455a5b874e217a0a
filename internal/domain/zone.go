package domain

import (
	"database/sql"
)

// Zone type codes (zones.zone_type).
const (
	ZoneTypeBuilding = 1
	ZoneTypeFloor    = 2
	ZoneTypeCorridor = 3
	ZoneTypeRoom     = 4
	ZoneTypeBed      = 5
	ZoneTypeBathroom = 6
	ZoneTypeGeneric  = 7
)

// ZoneTypeLabels maps zone_type codes to display labels.
var ZoneTypeLabels = map[int]string{
	ZoneTypeBuilding: "Building",
	ZoneTypeFloor:    "Floor",
	ZoneTypeCorridor: "Corridor",
	ZoneTypeRoom:     "Room",
	ZoneTypeBed:      "Bed",
	ZoneTypeBathroom: "Bathroom",
	ZoneTypeGeneric:  "Generic",
}

// ValidZoneType reports whether t is a known zone_type code.
func ValidZoneType(t int) bool {
	_, ok := ZoneTypeLabels[t]
	return ok
}

// Zone domain model (zones table).
// A physical location node. ParentZoneID models a tree but nothing
// traverses it; TotalBeds/OccupiedBeds are advisory counters, never
// derived from child zones.
type Zone struct {
	ZoneID       string         `db:"zone_id"`        // UUID, PRIMARY KEY
	Identifier   string         `db:"identifier"`     // VARCHAR(512), NOT NULL, UNIQUE
	ZoneName     string         `db:"zone_name"`      // VARCHAR(50), NOT NULL, UNIQUE
	ZoneType     int            `db:"zone_type"`      // INT, NOT NULL, DEFAULT 7
	ParentZoneID sql.NullString `db:"parent_zone_id"` // UUID, nullable, ON DELETE SET NULL
	Locked       bool           `db:"locked"`         // BOOLEAN, NOT NULL, DEFAULT FALSE
	TotalBeds    int            `db:"total_beds"`     // INT, NOT NULL, DEFAULT 0
	OccupiedBeds int            `db:"occupied_beds"`  // INT, NOT NULL, DEFAULT 0
}

// TypeLabel returns the display label for the zone's type.
func (z *Zone) TypeLabel() string {
	if l, ok := ZoneTypeLabels[z.ZoneType]; ok {
		return l
	}
	return ZoneTypeLabels[ZoneTypeGeneric]
}
