package pkg_test

import (
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cosmind-backend/models"
	"cosmind-backend/pkg"
)

func openTestStore(t *testing.T) *pkg.KVStore {
	t.Helper()
	store, err := pkg.NewKVStore(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestKVStore_SetGet(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.Set("transits", "2026-08-30", []byte(`{"weeklyForecast":"calm"}`)))

	value, err := store.Get("transits", "2026-08-30")
	require.NoError(t, err)
	assert.Equal(t, `{"weeklyForecast":"calm"}`, string(value))
}

func TestKVStore_GetMissing(t *testing.T) {
	store := openTestStore(t)

	_, err := store.Get("transits", "2026-08-30")
	assert.ErrorIs(t, err, pkg.ErrKeyNotFound)

	// A key missing from an existing namespace reports the same way.
	require.NoError(t, store.Set("transits", "2026-08-29", []byte("x")))
	_, err = store.Get("transits", "2026-08-30")
	assert.ErrorIs(t, err, pkg.ErrKeyNotFound)
}

func TestKVStore_Overwrite(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.Set("transits", "k", []byte("first")))
	require.NoError(t, store.Set("transits", "k", []byte("second")))

	value, err := store.Get("transits", "k")
	require.NoError(t, err)
	assert.Equal(t, "second", string(value))
}

func TestKVStore_Delete(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.Set("transits", "k", []byte("v")))
	require.NoError(t, store.Delete("transits", "k"))
	_, err := store.Get("transits", "k")
	assert.ErrorIs(t, err, pkg.ErrKeyNotFound)

	// Deleting what is not there is fine.
	assert.NoError(t, store.Delete("transits", "k"))
	assert.NoError(t, store.Delete("nowhere", "k"))
}

func TestKVStore_NamespacesAreIsolated(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.Set("a", "k", []byte("from a")))
	require.NoError(t, store.Set("b", "k", []byte("from b")))

	value, err := store.Get("a", "k")
	require.NoError(t, err)
	assert.Equal(t, "from a", string(value))
}

func TestKVStore_PurchaseRecordRoundTrip(t *testing.T) {
	store := openTestStore(t)

	record := models.PurchaseRecord{
		ID:        uuid.New(),
		UserID:    7,
		PackageID: "mystic",
		Tokens:    50,
		Amount:    39.90,
		Status:    models.PurchaseCompleted,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
	encoded, err := json.Marshal(record)
	require.NoError(t, err)
	require.NoError(t, store.Set("purchases", record.ID.String(), encoded))

	raw, err := store.Get("purchases", record.ID.String())
	require.NoError(t, err)

	var decoded models.PurchaseRecord
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, record, decoded)
}
