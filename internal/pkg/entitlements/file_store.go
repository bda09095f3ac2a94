package entitlements

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/gofiber/fiber/v2/log"

	"github.com/membergate/membergate/app/models"
)

const storeFileName = "users.json"

// FileStore keeps the entitlement mapping in a single JSON file. Mutations
// run the whole load-mutate-save cycle behind one mutex so concurrent webhook
// deliveries cannot silently overwrite each other's writes.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore creates a file store under dataDir, creating the directory
// and an empty store file on first run.
func NewFileStore(dataDir string) (*FileStore, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, err
	}
	path := filepath.Join(dataDir, storeFileName)
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := os.WriteFile(path, []byte("{}"), 0o644); err != nil {
			return nil, err
		}
	}
	return &FileStore{path: path}, nil
}

// Path returns the location of the backing file.
func (s *FileStore) Path() string {
	return s.path
}

func (s *FileStore) Load() (map[string]models.EntitlementRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *FileStore) load() (map[string]models.EntitlementRecord, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return fallbackEmpty("read", err), nil
	}
	var records map[string]models.EntitlementRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return fallbackEmpty("parse", err), nil
	}
	if records == nil {
		records = map[string]models.EntitlementRecord{}
	}
	return records, nil
}

// fallbackEmpty is the explicit fail-soft policy for store reads: any read or
// parse failure degrades to an empty mapping so webhook and login flows keep
// working against a fresh store.
func fallbackEmpty(op string, err error) map[string]models.EntitlementRecord {
	log.Warnf("entitlement store %s failed, falling back to empty store: %v", op, err)
	return map[string]models.EntitlementRecord{}
}

func (s *FileStore) Save(records map[string]models.EntitlementRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(records)
}

// save writes to a temp file in the same directory and renames it over the
// store so a crash mid-write leaves the previous snapshot intact.
func (s *FileStore) save(records map[string]models.EntitlementRecord) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(s.path), storeFileName+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}

func (s *FileStore) Grant(email, productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return grant(lockedStore{s}, email, productID)
}

func (s *FileStore) Revoke(email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return revoke(lockedStore{s}, email)
}

func (s *FileStore) Has(email string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return has(lockedStore{s}, email)
}

// lockedStore exposes the unlocked load/save to the shared mutation helpers
// while the caller already holds the FileStore mutex.
type lockedStore struct {
	s *FileStore
}

func (l lockedStore) Load() (map[string]models.EntitlementRecord, error) { return l.s.load() }
func (l lockedStore) Save(r map[string]models.EntitlementRecord) error   { return l.s.save(r) }
func (l lockedStore) Grant(email, productID string) error                { return grant(l, email, productID) }
func (l lockedStore) Revoke(email string) error                          { return revoke(l, email) }
func (l lockedStore) Has(email string) (bool, error)                     { return has(l, email) }
