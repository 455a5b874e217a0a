package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"facility-monitor/internal/domain"
	"facility-monitor/internal/repository"
)

func newClientFixture(t *testing.T) (ClientService, ZoneService) {
	t.Helper()
	mem := repository.NewMemoryStore()
	clients := NewClientService(
		repository.NewMemoryClientsRepo(mem),
		repository.NewMemoryContactsRepo(mem),
		repository.NewMemoryZonesRepo(mem),
		zap.NewNop(),
	)
	zones := NewZoneService(repository.NewMemoryZonesRepo(mem), zap.NewNop())
	return clients, zones
}

func validClientReq() ClientRequest {
	return ClientRequest{
		FirstName:    "Ana",
		Surname1:     "Lopez",
		Document:     "12345678Z",
		DocumentType: domain.DocumentTypeNationalID,
		BirthDate:    "1950-06-15",
		Active:       true,
		Illness:      domain.IllnessCardiac,
	}
}

func TestAddClient(t *testing.T) {
	clients, _ := newClientFixture(t)
	ctx := context.Background()

	id, err := clients.AddClient(ctx, validClientReq())
	require.NoError(t, err)

	c, err := clients.GetClient(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Ana", c.FirstName)
	assert.Equal(t, domain.IllnessCardiac, c.Illness)
	assert.Len(t, c.Identifier, 8)
	require.True(t, c.BirthDate.Valid)
	assert.Equal(t, "1950-06-15", c.BirthDate.Time.Format("2006-01-02"))
}

func TestAddClient_MissingFields(t *testing.T) {
	clients, _ := newClientFixture(t)

	req := validClientReq()
	req.Document = "  "
	_, err := clients.AddClient(context.Background(), req)
	assert.ErrorIs(t, err, ErrMissingFields)
}

func TestAddClient_UnknownIllnessFallsBack(t *testing.T) {
	clients, _ := newClientFixture(t)
	ctx := context.Background()

	req := validClientReq()
	req.Illness = "made-up"
	id, err := clients.AddClient(ctx, req)
	require.NoError(t, err)

	c, err := clients.GetClient(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, domain.IllnessNone, c.Illness)
}

func TestAddClient_BadBirthDateBecomesNull(t *testing.T) {
	clients, _ := newClientFixture(t)
	ctx := context.Background()

	req := validClientReq()
	req.BirthDate = "15/06/1950"
	id, err := clients.AddClient(ctx, req)
	require.NoError(t, err)

	c, err := clients.GetClient(ctx, id)
	require.NoError(t, err)
	assert.False(t, c.BirthDate.Valid)
}

func TestAddClient_DuplicateDocument(t *testing.T) {
	clients, _ := newClientFixture(t)
	ctx := context.Background()

	_, err := clients.AddClient(ctx, validClientReq())
	require.NoError(t, err)

	req := validClientReq()
	req.FirstName = "Other"
	_, err = clients.AddClient(ctx, req)
	assert.Error(t, err)
}

func TestEditClient_FullReplace(t *testing.T) {
	clients, zones := newClientFixture(t)
	ctx := context.Background()

	zoneID, err := zones.AddZone(ctx, ZoneRequest{ZoneName: "Floor 1", ZoneType: domain.ZoneTypeFloor})
	require.NoError(t, err)

	req := validClientReq()
	req.ZoneID = zoneID
	req.Phone = "600123456"
	id, err := clients.AddClient(ctx, req)
	require.NoError(t, err)

	// A submission with phone and zone omitted clears both.
	edit := validClientReq()
	edit.FirstName = "Ana Maria"
	require.NoError(t, clients.EditClient(ctx, id, edit))

	c, err := clients.GetClient(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Ana Maria", c.FirstName)
	assert.False(t, c.Phone.Valid)
	assert.False(t, c.ZoneID.Valid)
}

// flakyZonesRepo fails zone lookups on demand while delegating
// everything else to the wrapped repo.
type flakyZonesRepo struct {
	repository.ZonesRepository
	fail bool
}

func (r *flakyZonesRepo) GetZone(ctx context.Context, zoneID string) (*domain.Zone, error) {
	if r.fail {
		return nil, errors.New("driver: bad connection")
	}
	return r.ZonesRepository.GetZone(ctx, zoneID)
}

func TestEditClient_ZoneLookupFailureDoesNotClearZone(t *testing.T) {
	mem := repository.NewMemoryStore()
	zonesRepo := &flakyZonesRepo{ZonesRepository: repository.NewMemoryZonesRepo(mem)}
	clients := NewClientService(
		repository.NewMemoryClientsRepo(mem),
		repository.NewMemoryContactsRepo(mem),
		zonesRepo,
		zap.NewNop(),
	)
	zones := NewZoneService(repository.NewMemoryZonesRepo(mem), zap.NewNop())
	ctx := context.Background()

	zoneID, err := zones.AddZone(ctx, ZoneRequest{ZoneName: "Floor 2", ZoneType: domain.ZoneTypeFloor})
	require.NoError(t, err)

	req := validClientReq()
	req.ZoneID = zoneID
	id, err := clients.AddClient(ctx, req)
	require.NoError(t, err)

	// An edit resubmitting the still-valid zone during a lookup outage
	// must fail, not silently null the assignment.
	zonesRepo.fail = true
	err = clients.EditClient(ctx, id, req)
	require.Error(t, err)
	assert.False(t, repository.IsNotFound(err))

	zonesRepo.fail = false
	c, err := clients.GetClient(ctx, id)
	require.NoError(t, err)
	require.True(t, c.ZoneID.Valid)
	assert.Equal(t, zoneID, c.ZoneID.String)
}

func TestEditClient_KeepsIdentifier(t *testing.T) {
	clients, _ := newClientFixture(t)
	ctx := context.Background()

	id, err := clients.AddClient(ctx, validClientReq())
	require.NoError(t, err)
	before, err := clients.GetClient(ctx, id)
	require.NoError(t, err)

	require.NoError(t, clients.EditClient(ctx, id, validClientReq()))

	after, err := clients.GetClient(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, before.Identifier, after.Identifier)
}

func TestEditClient_StoresIllnessAsIs(t *testing.T) {
	clients, _ := newClientFixture(t)
	ctx := context.Background()

	id, err := clients.AddClient(ctx, validClientReq())
	require.NoError(t, err)

	edit := validClientReq()
	edit.Illness = "custom-category"
	require.NoError(t, clients.EditClient(ctx, id, edit))

	c, err := clients.GetClient(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "custom-category", c.Illness)
}

func TestAddContact(t *testing.T) {
	clients, _ := newClientFixture(t)
	ctx := context.Background()

	clientID, err := clients.AddClient(ctx, validClientReq())
	require.NoError(t, err)

	_, err = clients.AddContact(ctx, ContactRequest{
		ClientID: clientID, FirstName: "Marta", Surname1: "Lopez",
		Relationship: domain.RelationshipFamily, Phone: "600000000",
	})
	require.NoError(t, err)

	contacts, err := clients.ListContacts(ctx, clientID)
	require.NoError(t, err)
	require.Len(t, contacts, 1)
	assert.Equal(t, domain.RelationshipFamily, contacts[0].Relationship)
}

func TestAddContact_UnknownClient(t *testing.T) {
	clients, _ := newClientFixture(t)

	_, err := clients.AddContact(context.Background(), ContactRequest{
		ClientID: "missing", FirstName: "Marta", Surname1: "Lopez",
	})
	assert.True(t, repository.IsNotFound(err))
}

func TestAddContact_InvalidRelationshipFallsBack(t *testing.T) {
	clients, _ := newClientFixture(t)
	ctx := context.Background()

	clientID, err := clients.AddClient(ctx, validClientReq())
	require.NoError(t, err)

	_, err = clients.AddContact(ctx, ContactRequest{
		ClientID: clientID, FirstName: "Marta", Surname1: "Lopez", Relationship: 42,
	})
	require.NoError(t, err)

	contacts, err := clients.ListContacts(ctx, clientID)
	require.NoError(t, err)
	require.Len(t, contacts, 1)
	assert.Equal(t, domain.RelationshipOther, contacts[0].Relationship)
}

func TestDeleteClient_CascadesContacts(t *testing.T) {
	clients, _ := newClientFixture(t)
	ctx := context.Background()

	clientID, err := clients.AddClient(ctx, validClientReq())
	require.NoError(t, err)
	contactID, err := clients.AddContact(ctx, ContactRequest{
		ClientID: clientID, FirstName: "Marta", Surname1: "Lopez",
	})
	require.NoError(t, err)

	require.NoError(t, clients.DeleteClient(ctx, clientID))

	_, err = clients.GetClient(ctx, clientID)
	assert.True(t, repository.IsNotFound(err))
	err = clients.DeleteContact(ctx, contactID)
	assert.True(t, repository.IsNotFound(err))
}
