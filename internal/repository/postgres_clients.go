package repository

import (
	"context"
	"database/sql"
	"fmt"

	"facility-monitor/internal/domain"
)

type PostgresClientsRepository struct {
	db *sql.DB
}

func NewPostgresClientsRepository(db *sql.DB) *PostgresClientsRepository {
	return &PostgresClientsRepository{db: db}
}

const clientColumns = `
	client_id::text,
	identifier,
	first_name,
	surname1,
	surname2,
	document,
	document_type,
	phone,
	email,
	birth_date,
	active,
	illness,
	zone_id::text
`

func scanClient(row interface{ Scan(...any) error }) (*domain.Client, error) {
	var c domain.Client
	if err := row.Scan(
		&c.ClientID,
		&c.Identifier,
		&c.FirstName,
		&c.Surname1,
		&c.Surname2,
		&c.Document,
		&c.DocumentType,
		&c.Phone,
		&c.Email,
		&c.BirthDate,
		&c.Active,
		&c.Illness,
		&c.ZoneID,
	); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *PostgresClientsRepository) ListClients(ctx context.Context) ([]*domain.Client, error) {
	q := `SELECT ` + clientColumns + ` FROM clients ORDER BY surname1, first_name`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*domain.Client{}
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *PostgresClientsRepository) GetClient(ctx context.Context, clientID string) (*domain.Client, error) {
	if clientID == "" {
		return nil, fmt.Errorf("client_id is required")
	}
	if !validUUID(clientID) {
		return nil, fmt.Errorf("client %s: %w", clientID, ErrNotFound)
	}
	q := `SELECT ` + clientColumns + ` FROM clients WHERE client_id = $1`
	c, err := scanClient(r.db.QueryRowContext(ctx, q, clientID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("client %s: %w", clientID, ErrNotFound)
		}
		return nil, err
	}
	return c, nil
}

func (r *PostgresClientsRepository) CreateClient(ctx context.Context, client *domain.Client) (string, error) {
	q := `
		INSERT INTO clients (
			identifier, first_name, surname1, surname2, document, document_type,
			phone, email, birth_date, active, illness, zone_id
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING client_id::text
	`
	var id string
	err := r.db.QueryRowContext(ctx, q,
		client.Identifier,
		client.FirstName,
		client.Surname1,
		client.Surname2,
		client.Document,
		client.DocumentType,
		client.Phone,
		client.Email,
		client.BirthDate,
		client.Active,
		client.Illness,
		client.ZoneID,
	).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (r *PostgresClientsRepository) UpdateClient(ctx context.Context, clientID string, client *domain.Client) error {
	q := `
		UPDATE clients
		SET first_name = $1,
		    surname1 = $2,
		    surname2 = $3,
		    document = $4,
		    document_type = $5,
		    phone = $6,
		    email = $7,
		    birth_date = $8,
		    active = $9,
		    illness = $10,
		    zone_id = $11
		WHERE client_id = $12
	`
	if !validUUID(clientID) {
		return fmt.Errorf("client %s: %w", clientID, ErrNotFound)
	}
	res, err := r.db.ExecContext(ctx, q,
		client.FirstName,
		client.Surname1,
		client.Surname2,
		client.Document,
		client.DocumentType,
		client.Phone,
		client.Email,
		client.BirthDate,
		client.Active,
		client.Illness,
		client.ZoneID,
		clientID,
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("client %s: %w", clientID, ErrNotFound)
	}
	return nil
}

// DeleteClient removes the row; contacts go with it (ON DELETE CASCADE).
func (r *PostgresClientsRepository) DeleteClient(ctx context.Context, clientID string) error {
	if !validUUID(clientID) {
		return fmt.Errorf("client %s: %w", clientID, ErrNotFound)
	}
	res, err := r.db.ExecContext(ctx, `DELETE FROM clients WHERE client_id = $1`, clientID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("client %s: %w", clientID, ErrNotFound)
	}
	return nil
}
