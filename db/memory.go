package db

import (
	"context"
	"sync"

	"go-healthnav/types"
)

// MemoryStore serves the seed hospitals from process memory. It is the
// mock-data variant of the demo: used when no DATABASE_URL is set, and
// it satisfies the same interfaces as HospitalRepo.
type MemoryStore struct {
	mu        sync.RWMutex
	hospitals []types.Hospital
}

func NewMemoryStore(hospitals []types.Hospital) *MemoryStore {
	copied := make([]types.Hospital, len(hospitals))
	copy(copied, hospitals)
	return &MemoryStore{hospitals: copied}
}

func (m *MemoryStore) List(_ context.Context) ([]types.Hospital, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]types.Hospital, len(m.hospitals))
	copy(out, m.hospitals)
	return out, nil
}

func (m *MemoryStore) Get(_ context.Context, id string) (*types.Hospital, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for i := range m.hospitals {
		if m.hospitals[i].ID == id {
			h := m.hospitals[i]
			return &h, nil
		}
	}
	return nil, nil
}

func (m *MemoryStore) UpdateETA(_ context.Context, id, eta string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.hospitals {
		if m.hospitals[i].ID == id {
			m.hospitals[i].ETA = eta
			break
		}
	}
	return nil
}
