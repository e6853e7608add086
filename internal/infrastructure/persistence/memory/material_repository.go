package memory

import (
	"context"
	"sync"

	"github.com/erp/mockerp/internal/domain/material"
)

// MaterialRepository is an in-memory implementation of material.Repository.
// All reads return deep copies so callers can never mutate the master
// through a returned record.
type MaterialRepository struct {
	mu    sync.RWMutex
	items map[string]*material.Material
	order []string
}

// NewMaterialRepository creates an empty in-memory material repository
func NewMaterialRepository() *MaterialRepository {
	return &MaterialRepository{
		items: make(map[string]*material.Material),
	}
}

// FindByID finds a material by its identifier
func (r *MaterialRepository) FindByID(_ context.Context, materialID string) (*material.Material, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.items[materialID]
	if !ok {
		return nil, material.ErrNotFound(materialID)
	}
	return m.Clone(), nil
}

// Exists reports whether a material is defined
func (r *MaterialRepository) Exists(_ context.Context, materialID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.items[materialID]
	return ok, nil
}

// Insert stores a new material; it fails if the identifier is taken
func (r *MaterialRepository) Insert(_ context.Context, m *material.Material) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[m.MaterialID]; ok {
		return material.ErrAlreadyExists(m.MaterialID)
	}
	r.items[m.MaterialID] = m.Clone()
	r.order = append(r.order, m.MaterialID)
	return nil
}

// List returns all materials in definition order
func (r *MaterialRepository) List(_ context.Context) ([]*material.Material, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*material.Material, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.items[id].Clone())
	}
	return out, nil
}
