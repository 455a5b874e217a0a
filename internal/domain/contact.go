package domain

import (
	"database/sql"
)

// Relationship codes (contacts.relationship).
const (
	RelationshipOther    = 1
	RelationshipChild    = 2
	RelationshipSpouse   = 3
	RelationshipParent   = 4
	RelationshipSibling  = 5
	RelationshipNeighbor = 6
	RelationshipFriend   = 7
	RelationshipFamily   = 8
)

// RelationshipLabels maps relationship codes to display labels.
var RelationshipLabels = map[int]string{
	RelationshipOther:    "Other",
	RelationshipChild:    "Child",
	RelationshipSpouse:   "Spouse",
	RelationshipParent:   "Parent",
	RelationshipSibling:  "Sibling",
	RelationshipNeighbor: "Neighbor",
	RelationshipFriend:   "Friend",
	RelationshipFamily:   "Family",
}

// ValidRelationship reports whether rel is a known relationship code.
func ValidRelationship(rel int) bool {
	_, ok := RelationshipLabels[rel]
	return ok
}

// Contact domain model (contacts table).
// Emergency contact owned by exactly one client; cascade-deleted with it.
type Contact struct {
	ContactID    string         `db:"contact_id"`   // UUID, PRIMARY KEY
	Identifier   string         `db:"identifier"`   // VARCHAR(512), NOT NULL, UNIQUE
	ClientID     string         `db:"client_id"`    // UUID, NOT NULL, ON DELETE CASCADE
	FirstName    string         `db:"first_name"`   // VARCHAR(50), NOT NULL
	Surname1     string         `db:"surname1"`     // VARCHAR(50), NOT NULL
	Surname2     sql.NullString `db:"surname2"`     // VARCHAR(50), nullable
	Relationship int            `db:"relationship"` // INT, NOT NULL, DEFAULT 1
	Phone        sql.NullString `db:"phone"`        // VARCHAR(50), nullable
	Email        sql.NullString `db:"email"`        // VARCHAR(255), nullable
}
