package domain

import (
	"database/sql"
	"time"
)

// Account domain model (accounts table).
// Owned by the authentication collaborator; this service only reads and
// creates rows. IsSuperuser is a single capability bit, not a role.
type Account struct {
	AccountID    string         `db:"account_id"`    // UUID, PRIMARY KEY
	Username     string         `db:"username"`      // VARCHAR(150), NOT NULL, UNIQUE
	Email        sql.NullString `db:"email"`         // VARCHAR(255), nullable
	PasswordHash []byte         `db:"password_hash"` // BYTEA, NOT NULL (bcrypt)
	IsSuperuser  bool           `db:"is_superuser"`  // BOOLEAN, NOT NULL, DEFAULT FALSE
	CreatedAt    time.Time      `db:"created_at"`    // TIMESTAMPTZ, NOT NULL, DEFAULT now()
}
