package sender

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStore(t *testing.T) *CacheStore {
	t.Helper()
	cs, err := OpenCache(":memory:", nil)
	require.NoError(t, err)
	t.Cleanup(func() { cs.Close() })
	return cs
}

func TestOpenCacheInMemory(t *testing.T) {
	cs := testStore(t)
	assert.NotNil(t, cs)
}

func TestCacheMigrationsIdempotent(t *testing.T) {
	cs := testStore(t)

	require.NoError(t, cs.migrate())

	var count int
	err := cs.sql.QueryRow("SELECT COUNT(*) FROM schema_migrations").Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, len(cacheMigrations), count)
}

func TestCacheStorePutGet(t *testing.T) {
	cs := testStore(t)

	entry := CachedResponse{
		Status:      200,
		ContentType: "application/json",
		ETag:        `"abc"`,
		FreshUntil:  time.Now().Add(time.Minute).Truncate(time.Second),
		Body:        []byte(`{"ok":true}`),
	}
	require.NoError(t, cs.Put("https://api.example.com/v1/thing", entry))

	got, ok, err := cs.Get("https://api.example.com/v1/thing")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, entry.Status, got.Status)
	assert.Equal(t, entry.ETag, got.ETag)
	assert.Equal(t, entry.Body, got.Body)
	assert.WithinDuration(t, entry.FreshUntil, got.FreshUntil, time.Second)
}

func TestCacheStoreGetMissing(t *testing.T) {
	cs := testStore(t)

	_, ok, err := cs.Get("https://api.example.com/unknown")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCacheStorePutReplaces(t *testing.T) {
	cs := testStore(t)

	url := "https://api.example.com/v1/thing"
	require.NoError(t, cs.Put(url, CachedResponse{Status: 200, ETag: `"v1"`, Body: []byte("one")}))
	require.NoError(t, cs.Put(url, CachedResponse{Status: 200, ETag: `"v2"`, Body: []byte("two")}))

	got, ok, err := cs.Get(url)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `"v2"`, got.ETag)
	assert.Equal(t, []byte("two"), got.Body)
}

func TestCacheStoreDelete(t *testing.T) {
	cs := testStore(t)

	url := "https://api.example.com/v1/thing"
	require.NoError(t, cs.Put(url, CachedResponse{Status: 200, ETag: `"v"`, Body: []byte("x")}))
	require.NoError(t, cs.Delete(url))

	_, ok, err := cs.Get(url)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCacheStoreZeroFreshness(t *testing.T) {
	cs := testStore(t)

	url := "https://api.example.com/v1/thing"
	require.NoError(t, cs.Put(url, CachedResponse{Status: 200, ETag: `"v"`, Body: []byte("x")}))

	got, ok, err := cs.Get(url)
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, got.FreshUntil.IsZero())
}
