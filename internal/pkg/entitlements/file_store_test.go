package entitlements

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFileStore(t *testing.T) *FileStore {
	t.Helper()
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	return store
}

func TestFileStoreFirstRun(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	store, err := NewFileStore(dir)
	require.NoError(t, err)

	records, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, records)

	// Backing file exists after first run.
	_, err = os.Stat(store.Path())
	assert.NoError(t, err)
}

func TestFileStoreGrantCreatesRecord(t *testing.T) {
	store := newTestFileStore(t)

	require.NoError(t, store.Grant("Buyer@Example.COM", "P1"))

	records, err := store.Load()
	require.NoError(t, err)
	record, ok := records["buyer@example.com"]
	require.True(t, ok, "record should be keyed by lower-cased email")
	assert.Equal(t, "buyer@example.com", record.Email)
	assert.Equal(t, []string{"P1"}, record.Products)
}

func TestFileStoreGrantIsIdempotent(t *testing.T) {
	store := newTestFileStore(t)

	require.NoError(t, store.Grant("buyer@example.com", "P1"))
	require.NoError(t, store.Grant("buyer@example.com", "P1"))
	require.NoError(t, store.Grant("buyer@example.com", "P2"))

	records, err := store.Load()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"P1", "P2"}, records["buyer@example.com"].Products)
}

func TestFileStoreGrantWithoutProduct(t *testing.T) {
	store := newTestFileStore(t)

	require.NoError(t, store.Grant("buyer@example.com", ""))

	entitled, err := store.Has("buyer@example.com")
	require.NoError(t, err)
	assert.True(t, entitled, "an event without a product id still entitles the email")

	records, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, records["buyer@example.com"].Products)
}

func TestFileStoreRevokeRemovesWholeRecord(t *testing.T) {
	store := newTestFileStore(t)

	require.NoError(t, store.Grant("buyer@example.com", "P1"))
	require.NoError(t, store.Grant("buyer@example.com", "P2"))
	require.NoError(t, store.Revoke("BUYER@example.com"))

	entitled, err := store.Has("buyer@example.com")
	require.NoError(t, err)
	assert.False(t, entitled)

	// Revoking an unknown email is a no-op, not an error.
	require.NoError(t, store.Revoke("nobody@example.com"))
}

func TestFileStoreHasIsCaseInsensitive(t *testing.T) {
	store := newTestFileStore(t)
	require.NoError(t, store.Grant("buyer@example.com", "P1"))

	entitled, err := store.Has("  Buyer@Example.Com  ")
	require.NoError(t, err)
	assert.True(t, entitled)
}

func TestFileStoreLoadFailsSoft(t *testing.T) {
	store := newTestFileStore(t)
	require.NoError(t, os.WriteFile(store.Path(), []byte("{not json"), 0o644))

	records, err := store.Load()
	require.NoError(t, err, "malformed store must not propagate a parse error")
	assert.Empty(t, records)
}

func TestFileStoreSaveSurvivesReload(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Grant("buyer@example.com", "P1"))

	// A fresh store over the same directory sees the persisted snapshot.
	reopened, err := NewFileStore(dir)
	require.NoError(t, err)
	records, err := reopened.Load()
	require.NoError(t, err)
	assert.Len(t, records, 1)

	// And that snapshot is valid JSON on disk.
	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	var raw map[string]any
	assert.NoError(t, json.Unmarshal(data, &raw))
}

func TestFileStoreSaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Grant("buyer@example.com", "P1"))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file must be renamed over the store")
}
