package game

import (
	"context"
	"fmt"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryRepository is an in-memory Repository used in unit tests and as a
// startup fallback when MongoDB is unreachable. It mirrors the Mongo
// semantics: unique business id, shallow-merge updates.
type MemoryRepository struct {
	mu    sync.RWMutex
	store map[int]*Game
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{store: make(map[int]*Game)}
}

func (m *MemoryRepository) List(ctx context.Context) ([]Game, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Game, 0, len(m.store))
	for _, g := range m.store {
		out = append(out, *g)
	}
	return out, nil
}

func (m *MemoryRepository) GetByID(ctx context.Context, id int) (*Game, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if g, ok := m.store[id]; ok {
		cp := *g
		return &cp, nil
	}
	return nil, ErrNotFound
}

func (m *MemoryRepository) Create(ctx context.Context, g *Game) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.store[g.ID]; ok {
		return fmt.Errorf("duplicate key error: id %d already exists", g.ID)
	}
	if g.OID.IsZero() {
		g.OID = primitive.NewObjectID()
	}
	cp := *g
	m.store[g.ID] = &cp
	return nil
}

func (m *MemoryRepository) Update(ctx context.Context, id int, u *Update) (*Game, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	g, ok := m.store[id]
	if !ok {
		return nil, ErrNotFound
	}
	if u.Title != nil {
		g.Title = *u.Title
	}
	if u.Editor != nil {
		g.Editor = *u.Editor
	}
	if u.Platforms != nil {
		g.Platforms = *u.Platforms
	}
	if u.Quantity != nil {
		g.Quantity = *u.Quantity
	}
	if u.ID != nil && *u.ID != id {
		// the body may rewrite the business id; re-key the entry
		delete(m.store, id)
		g.ID = *u.ID
		m.store[g.ID] = g
	}
	cp := *g
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
