package entitlements

import (
	"strings"

	"github.com/membergate/membergate/app/models"
)

// Store persists the email -> entitlement mapping. Implementations are
// injected into the controllers so tests can substitute an in-memory store.
type Store interface {
	// Load returns the full mapping. A missing or unreadable backing store
	// yields an empty mapping, never an error (fail-soft read).
	Load() (map[string]models.EntitlementRecord, error)
	// Save overwrites the full mapping.
	Save(records map[string]models.EntitlementRecord) error
	// Grant adds productID to the record for email, creating it if absent.
	Grant(email, productID string) error
	// Revoke removes the record for email entirely.
	Revoke(email string) error
	// Has reports whether email has any entitlement (case-insensitive).
	Has(email string) (bool, error)
}

// NormalizeEmail lower-cases and trims an email so it can act as a store key.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// grant applies the shared load-mutate-save grant cycle for a store.
func grant(s Store, email, productID string) error {
	key := NormalizeEmail(email)
	if key == "" {
		return nil
	}
	records, err := s.Load()
	if err != nil {
		return err
	}
	record, ok := records[key]
	if !ok {
		record = models.EntitlementRecord{Email: key}
	}
	record.AddProduct(productID)
	records[key] = record
	return s.Save(records)
}

// revoke removes the record for email regardless of its granted products.
func revoke(s Store, email string) error {
	key := NormalizeEmail(email)
	if key == "" {
		return nil
	}
	records, err := s.Load()
	if err != nil {
		return err
	}
	if _, ok := records[key]; !ok {
		return nil
	}
	delete(records, key)
	return s.Save(records)
}

func has(s Store, email string) (bool, error) {
	records, err := s.Load()
	if err != nil {
		return false, err
	}
	_, ok := records[NormalizeEmail(email)]
	return ok, nil
}
