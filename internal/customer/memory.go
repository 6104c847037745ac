package customer

import (
	"context"
	"fmt"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryRepository is an in-memory Repository used in unit tests and as a
// startup fallback when MongoDB is unreachable.
type MemoryRepository struct {
	mu    sync.RWMutex
	store map[int]*Customer
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{store: make(map[int]*Customer)}
}

func (m *MemoryRepository) List(ctx context.Context) ([]Customer, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Customer, 0, len(m.store))
	for _, c := range m.store {
		out = append(out, *c)
	}
	return out, nil
}

func (m *MemoryRepository) GetByID(ctx context.Context, id int) (*Customer, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if c, ok := m.store[id]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, ErrNotFound
}

func (m *MemoryRepository) Create(ctx context.Context, c *Customer) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.store[c.ID]; ok {
		return fmt.Errorf("duplicate key error: id %d already exists", c.ID)
	}
	if c.OID.IsZero() {
		c.OID = primitive.NewObjectID()
	}
	cp := *c
	m.store[c.ID] = &cp
	return nil
}

func (m *MemoryRepository) Update(ctx context.Context, id int, u *Update) (*Customer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.store[id]
	if !ok {
		return nil, ErrNotFound
	}
	if u.Name != nil {
		c.Name = *u.Name
	}
	if u.FirstName != nil {
		c.FirstName = *u.FirstName
	}
	if u.DateOfBirth != nil {
		c.DateOfBirth = *u.DateOfBirth
	}
	if u.Address != nil {
		c.Address = *u.Address
	}
	if u.PhoneNumber != nil {
		c.PhoneNumber = *u.PhoneNumber
	}
	if u.Points != nil {
		c.Points = *u.Points
	}
	if u.ID != nil && *u.ID != id {
		// the body may rewrite the business id; re-key the entry
		delete(m.store, id)
		c.ID = *u.ID
		m.store[c.ID] = c
	}
	cp := *c
	return &cp, nil
}

func (m *MemoryRepository) Delete(ctx context.Context, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.store[id]; !ok {
		return ErrNotFound
	}
	delete(m.store, id)
	return nil
}
