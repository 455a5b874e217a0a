package domain

import (
	"database/sql"
)

// Employee domain model (employees table).
// Staff member optionally assigned to a zone (nulled on zone delete).
type Employee struct {
	EmployeeID string         `db:"employee_id"` // UUID, PRIMARY KEY
	Identifier string         `db:"identifier"`  // VARCHAR(512), NOT NULL, UNIQUE
	FirstName  string         `db:"first_name"`  // VARCHAR(50), NOT NULL
	Surname1   string         `db:"surname1"`    // VARCHAR(50), NOT NULL
	RoleTitle  string         `db:"role_title"`  // VARCHAR(100), NOT NULL
	Active     bool           `db:"active"`      // BOOLEAN, NOT NULL, DEFAULT TRUE
	ZoneID     sql.NullString `db:"zone_id"`     // UUID, nullable, ON DELETE SET NULL
}
