package driver_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"arraylint/internal/driver"
)

func TestDiskCacheRoundTrip(t *testing.T) {
	cache, err := driver.OpenDiskCache("arraylint", t.TempDir())
	require.NoError(t, err)

	key := driver.CacheKey([]byte(cleanSrc), driver.Options{})
	require.False(t, cache.IsClean(key))

	require.NoError(t, cache.MarkClean(key, "a.php"))
	require.True(t, cache.IsClean(key))

	var payload driver.DiskPayload
	ok, err := cache.Get(key, &payload)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "a.php", payload.Path)
	require.Equal(t, key, payload.Key)

	require.NoError(t, cache.DropAll())
	require.False(t, cache.IsClean(key))
}

func TestCacheKeyDependsOnSettings(t *testing.T) {
	content := []byte(cleanSrc)
	base := driver.CacheKey(content, driver.Options{})
	require.Equal(t, base, driver.CacheKey(content, driver.Options{}))
	require.NotEqual(t, base, driver.CacheKey(content, driver.Options{TabWidth: 4}))
	require.NotEqual(t, base, driver.CacheKey([]byte(dirtySrc), driver.Options{}))
	require.NotEqual(t, base, driver.CacheKey(content, driver.Options{Rules: []driver.Rule{growRule{}}}))
}

func TestNilDiskCache(t *testing.T) {
	var cache *driver.DiskCache
	require.NoError(t, cache.Put(driver.Digest{}, &driver.DiskPayload{}))
	require.False(t, cache.IsClean(driver.Digest{}))
	require.NoError(t, cache.DropAll())
	require.Empty(t, cache.Dir())
}
