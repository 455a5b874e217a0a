package repository

import (
	"sync"

	"facility-monitor/internal/domain"
)

// MemoryStore backs the in-memory repositories used when the DB is not
// available (dev) and in unit tests. One shared store keeps the
// cross-table semantics honest: deleting a zone nulls references, and
// deleting a client drops its contacts, the same way the schema's FK
// clauses do in Postgres.
type MemoryStore struct {
	mu sync.RWMutex

	zones     map[string]domain.Zone     // zoneID -> Zone
	clients   map[string]domain.Client   // clientID -> Client
	contacts  map[string]domain.Contact  // contactID -> Contact
	employees map[string]domain.Employee // employeeID -> Employee
	accounts  map[string]domain.Account  // username -> Account
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		zones:     map[string]domain.Zone{},
		clients:   map[string]domain.Client{},
		contacts:  map[string]domain.Contact{},
		employees: map[string]domain.Employee{},
		accounts:  map[string]domain.Account{},
	}
}
