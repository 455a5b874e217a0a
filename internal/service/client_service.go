package service

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"facility-monitor/internal/domain"
	"facility-monitor/internal/repository"

	"go.uber.org/zap"
)

// ClientService client CRUD plus contact management for owned contacts.
type ClientService interface {
	ListClients(ctx context.Context) ([]*domain.Client, error)
	GetClient(ctx context.Context, clientID string) (*domain.Client, error)
	AddClient(ctx context.Context, req ClientRequest) (string, error)
	EditClient(ctx context.Context, clientID string, req ClientRequest) error
	DeleteClient(ctx context.Context, clientID string) error

	ListContacts(ctx context.Context, clientID string) ([]*domain.Contact, error)
	AddContact(ctx context.Context, req ContactRequest) (string, error)
	DeleteContact(ctx context.Context, contactID string) error
}

// ClientRequest the flat field set submitted by the add/edit forms.
type ClientRequest struct {
	FirstName    string
	Surname1     string
	Surname2     string
	Document     string
	DocumentType int
	Phone        string
	Email        string
	BirthDate    string // "2006-01-02"; blank or unparseable means no date
	Active       bool
	Illness      string
	ZoneID       string
}

// ContactRequest fields for adding an emergency contact to a client.
type ContactRequest struct {
	ClientID     string
	FirstName    string
	Surname1     string
	Surname2     string
	Relationship int
	Phone        string
	Email        string
}

type clientService struct {
	clients  repository.ClientsRepository
	contacts repository.ContactsRepository
	zones    repository.ZonesRepository
	logger   *zap.Logger
}

func NewClientService(
	clients repository.ClientsRepository,
	contacts repository.ContactsRepository,
	zones repository.ZonesRepository,
	logger *zap.Logger,
) ClientService {
	return &clientService{clients: clients, contacts: contacts, zones: zones, logger: logger}
}

func (s *clientService) ListClients(ctx context.Context) ([]*domain.Client, error) {
	return s.clients.ListClients(ctx)
}

func (s *clientService) GetClient(ctx context.Context, clientID string) (*domain.Client, error) {
	return s.clients.GetClient(ctx, clientID)
}

func (s *clientService) buildClient(ctx context.Context, req ClientRequest, forAdd bool) (*domain.Client, error) {
	req.FirstName = strings.TrimSpace(req.FirstName)
	req.Surname1 = strings.TrimSpace(req.Surname1)
	req.Document = strings.TrimSpace(req.Document)
	if req.FirstName == "" || req.Surname1 == "" || req.Document == "" {
		return nil, ErrMissingFields
	}

	docType := req.DocumentType
	if _, ok := domain.DocumentTypeLabels[docType]; !ok {
		docType = domain.DocumentTypePassport
	}

	// Illness is permissive: on add an unknown value falls back to the
	// model default; on edit the submitted value is stored as-is (an empty
	// value lands in the "Not specified" report bucket).
	illness := strings.TrimSpace(req.Illness)
	if forAdd && !domain.ValidIllness(illness) {
		illness = domain.IllnessNone
	}

	var birth sql.NullTime
	if d := strings.TrimSpace(req.BirthDate); d != "" {
		if t, err := time.Parse("2006-01-02", d); err == nil {
			birth = sql.NullTime{Time: t, Valid: true}
		}
	}

	zoneRef, err := resolveZoneRef(ctx, s.zones, req.ZoneID)
	if err != nil {
		return nil, err
	}

	return &domain.Client{
		FirstName:    req.FirstName,
		Surname1:     req.Surname1,
		Surname2:     nullString(strings.TrimSpace(req.Surname2)),
		Document:     req.Document,
		DocumentType: docType,
		Phone:        nullString(strings.TrimSpace(req.Phone)),
		Email:        nullString(strings.TrimSpace(req.Email)),
		BirthDate:    birth,
		Active:       req.Active,
		Illness:      illness,
		ZoneID:       zoneRef,
	}, nil
}

func (s *clientService) AddClient(ctx context.Context, req ClientRequest) (string, error) {
	client, err := s.buildClient(ctx, req, true)
	if err != nil {
		return "", err
	}
	client.Identifier = newIdentifier()

	id, err := s.clients.CreateClient(ctx, client)
	if err != nil {
		return "", fmt.Errorf("failed to create client: %w", err)
	}
	s.logger.Info("Client created", zap.String("client_id", id), zap.String("document", client.Document))
	return id, nil
}

// EditClient is a full replace of every bound field; an unresolvable
// zone id clears the assignment.
func (s *clientService) EditClient(ctx context.Context, clientID string, req ClientRequest) error {
	if _, err := s.clients.GetClient(ctx, clientID); err != nil {
		return err
	}

	client, err := s.buildClient(ctx, req, false)
	if err != nil {
		return err
	}

	if err := s.clients.UpdateClient(ctx, clientID, client); err != nil {
		return err
	}
	s.logger.Info("Client updated", zap.String("client_id", clientID))
	return nil
}

// DeleteClient removes the client and, with it, every owned contact.
func (s *clientService) DeleteClient(ctx context.Context, clientID string) error {
	if err := s.clients.DeleteClient(ctx, clientID); err != nil {
		return err
	}
	s.logger.Info("Client deleted", zap.String("client_id", clientID))
	return nil
}

func (s *clientService) ListContacts(ctx context.Context, clientID string) ([]*domain.Contact, error) {
	return s.contacts.ListContactsByClient(ctx, clientID)
}

func (s *clientService) AddContact(ctx context.Context, req ContactRequest) (string, error) {
	req.FirstName = strings.TrimSpace(req.FirstName)
	req.Surname1 = strings.TrimSpace(req.Surname1)
	if req.FirstName == "" || req.Surname1 == "" {
		return "", ErrMissingFields
	}
	// The owning client must exist; contacts never dangle.
	if _, err := s.clients.GetClient(ctx, req.ClientID); err != nil {
		return "", err
	}

	rel := req.Relationship
	if !domain.ValidRelationship(rel) {
		rel = domain.RelationshipOther
	}

	contact := &domain.Contact{
		Identifier:   newIdentifier(),
		ClientID:     req.ClientID,
		FirstName:    req.FirstName,
		Surname1:     req.Surname1,
		Surname2:     nullString(strings.TrimSpace(req.Surname2)),
		Relationship: rel,
		Phone:        nullString(strings.TrimSpace(req.Phone)),
		Email:        nullString(strings.TrimSpace(req.Email)),
	}

	id, err := s.contacts.CreateContact(ctx, contact)
	if err != nil {
		return "", fmt.Errorf("failed to create contact: %w", err)
	}
	s.logger.Info("Contact created", zap.String("contact_id", id), zap.String("client_id", req.ClientID))
	return id, nil
}

func (s *clientService) DeleteContact(ctx context.Context, contactID string) error {
	if err := s.contacts.DeleteContact(ctx, contactID); err != nil {
		return err
	}
	s.logger.Info("Contact deleted", zap.String("contact_id", contactID))
	return nil
}
