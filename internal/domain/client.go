package domain

import (
	"database/sql"
)

// Document type codes (clients.document_type).
const (
	DocumentTypeNationalID = 1
	DocumentTypePassport   = 2
)

// DocumentTypeLabels maps document_type codes to display labels.
var DocumentTypeLabels = map[int]string{
	DocumentTypeNationalID: "National ID",
	DocumentTypePassport:   "Passport",
}

// Illness category values (clients.illness).
const (
	IllnessNone         = "none"
	IllnessCardiac      = "cardiac"
	IllnessRespiratory  = "respiratory"
	IllnessNeurological = "neurological"
	IllnessDiabetes     = "diabetes"
	IllnessOther        = "other"
)

// IllnessValues lists the accepted illness categories in form order.
var IllnessValues = []string{
	IllnessNone,
	IllnessCardiac,
	IllnessRespiratory,
	IllnessNeurological,
	IllnessDiabetes,
	IllnessOther,
}

// ValidIllness reports whether v is a known illness category.
func ValidIllness(v string) bool {
	for _, i := range IllnessValues {
		if v == i {
			return true
		}
	}
	return false
}

// Client domain model (clients table).
// A person receiving care, optionally assigned to a zone. Contacts are
// owned rows (ON DELETE CASCADE); the zone reference is nulled when the
// zone is deleted.
type Client struct {
	ClientID     string         `db:"client_id"`     // UUID, PRIMARY KEY
	Identifier   string         `db:"identifier"`    // VARCHAR(512), NOT NULL, UNIQUE
	FirstName    string         `db:"first_name"`    // VARCHAR(50), NOT NULL
	Surname1     string         `db:"surname1"`      // VARCHAR(50), NOT NULL
	Surname2     sql.NullString `db:"surname2"`      // VARCHAR(50), nullable
	Document     string         `db:"document"`      // VARCHAR(50), NOT NULL, UNIQUE
	DocumentType int            `db:"document_type"` // INT, NOT NULL, DEFAULT 2
	Phone        sql.NullString `db:"phone"`         // VARCHAR(50), nullable
	Email        sql.NullString `db:"email"`         // VARCHAR(255), nullable
	BirthDate    sql.NullTime   `db:"birth_date"`    // DATE, nullable
	Active       bool           `db:"active"`        // BOOLEAN, NOT NULL, DEFAULT TRUE
	Illness      string         `db:"illness"`       // VARCHAR(20), NOT NULL, DEFAULT 'none'
	ZoneID       sql.NullString `db:"zone_id"`       // UUID, nullable, ON DELETE SET NULL
}
