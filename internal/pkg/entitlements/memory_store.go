package entitlements

import (
	"sync"

	"github.com/membergate/membergate/app/models"
)

// MemoryStore is a map-backed Store used in tests and ephemeral deployments.
type MemoryStore struct {
	mu      sync.Mutex
	records map[string]models.EntitlementRecord
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: map[string]models.EntitlementRecord{}}
}

func (s *MemoryStore) Load() (map[string]models.EntitlementRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]models.EntitlementRecord, len(s.records))
	for k, v := range s.records {
		out[k] = v
	}
	return out, nil
}

func (s *MemoryStore) Save(records map[string]models.EntitlementRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = make(map[string]models.EntitlementRecord, len(records))
	for k, v := range records {
		s.records[k] = v
	}
	return nil
}

func (s *MemoryStore) Grant(email, productID string) error {
	return grant(s, email, productID)
}

func (s *MemoryStore) Revoke(email string) error {
	return revoke(s, email)
}

func (s *MemoryStore) Has(email string) (bool, error) {
	return has(s, email)
}
