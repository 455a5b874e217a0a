package repository

import (
	"context"
	"database/sql"
	"fmt"

	"facility-monitor/internal/domain"
)

type PostgresContactsRepository struct {
	db *sql.DB
}

func NewPostgresContactsRepository(db *sql.DB) *PostgresContactsRepository {
	return &PostgresContactsRepository{db: db}
}

const contactColumns = `
	contact_id::text,
	identifier,
	client_id::text,
	first_name,
	surname1,
	surname2,
	relationship,
	phone,
	email
`

func scanContact(row interface{ Scan(...any) error }) (*domain.Contact, error) {
	var c domain.Contact
	if err := row.Scan(
		&c.ContactID,
		&c.Identifier,
		&c.ClientID,
		&c.FirstName,
		&c.Surname1,
		&c.Surname2,
		&c.Relationship,
		&c.Phone,
		&c.Email,
	); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *PostgresContactsRepository) ListContactsByClient(ctx context.Context, clientID string) ([]*domain.Contact, error) {
	if clientID == "" || !validUUID(clientID) {
		return []*domain.Contact{}, nil
	}
	q := `SELECT ` + contactColumns + ` FROM contacts WHERE client_id = $1 ORDER BY surname1, first_name`
	rows, err := r.db.QueryContext(ctx, q, clientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*domain.Contact{}
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *PostgresContactsRepository) GetContact(ctx context.Context, contactID string) (*domain.Contact, error) {
	if contactID == "" {
		return nil, fmt.Errorf("contact_id is required")
	}
	if !validUUID(contactID) {
		return nil, fmt.Errorf("contact %s: %w", contactID, ErrNotFound)
	}
	q := `SELECT ` + contactColumns + ` FROM contacts WHERE contact_id = $1`
	c, err := scanContact(r.db.QueryRowContext(ctx, q, contactID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("contact %s: %w", contactID, ErrNotFound)
		}
		return nil, err
	}
	return c, nil
}

func (r *PostgresContactsRepository) CreateContact(ctx context.Context, contact *domain.Contact) (string, error) {
	q := `
		INSERT INTO contacts (identifier, client_id, first_name, surname1, surname2, relationship, phone, email)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING contact_id::text
	`
	var id string
	err := r.db.QueryRowContext(ctx, q,
		contact.Identifier,
		contact.ClientID,
		contact.FirstName,
		contact.Surname1,
		contact.Surname2,
		contact.Relationship,
		contact.Phone,
		contact.Email,
	).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (r *PostgresContactsRepository) DeleteContact(ctx context.Context, contactID string) error {
	if !validUUID(contactID) {
		return fmt.Errorf("contact %s: %w", contactID, ErrNotFound)
	}
	res, err := r.db.ExecContext(ctx, `DELETE FROM contacts WHERE contact_id = $1`, contactID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("contact %s: %w", contactID, ErrNotFound)
	}
	return nil
}
