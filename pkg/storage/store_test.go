// pkg/storage/store_test.go
package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func roundTrip(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	_, ok, err := s.Get(ctx, "never written")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Put(ctx, "queen - bohemian rhapsody", "spotify:track:x"))
	v, ok, err := s.Get(ctx, "queen - bohemian rhapsody")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "spotify:track:x", v)

	require.NoError(t, s.Put(ctx, "queen - bohemian rhapsody", "spotify:track:y"))
	v, _, _ = s.Get(ctx, "queen - bohemian rhapsody")
	assert.Equal(t, "spotify:track:y", v)
}

func TestFileStoreRoundTrip(t *testing.T) {
	s, err := OpenFile(filepath.Join(t.TempDir(), "urls.json"))
	require.NoError(t, err)
	roundTrip(t, s)
	assert.NoError(t, s.Close())
}

func TestFileStorePersistsAcrossOpens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "urls.json")
	s, err := OpenFile(path)
	require.NoError(t, err)
	require.NoError(t, s.Put(context.Background(), "the beatles - let it be", "spotify:track:b"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"the beatles - let it be": "spotify:track:b"}`, string(data))

	reopened, err := OpenFile(path)
	require.NoError(t, err)
	v, ok, err := reopened.Get(context.Background(), "the beatles - let it be")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "spotify:track:b", v)
	assert.Equal(t, 1, reopened.Len())
}

func TestFileStoreReadsExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "urls.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"a - b": "spotify:track:1"}`), 0o644))
	s, err := OpenFile(path)
	require.NoError(t, err)
	v, ok, _ := s.Get(context.Background(), "a - b")
	assert.True(t, ok)
	assert.Equal(t, "spotify:track:1", v)
}

func TestFileStoreCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "urls.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"a - b":`), 0o644))
	_, err := OpenFile(path)
	var ce *CacheError
	assert.True(t, errors.As(err, &ce))
}

func TestFileStoreWriteFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", "urls.json")
	s, err := OpenFile(path)
	require.NoError(t, err)

	err = s.Put(context.Background(), "a - b", "spotify:track:1")
	var ce *CacheError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, "a - b", ce.Key)

	_, ok, _ := s.Get(context.Background(), "a - b")
	assert.False(t, ok, "failed put must not leave the entry in memory")
}

func TestRedisStoreRoundTrip(t *testing.T) {
	mr := miniredis.RunT(t)
	s, err := NewRedis(context.Background(), mr.Addr(), "")
	require.NoError(t, err)
	defer s.Close()

	roundTrip(t, s)
	v, err := mr.Get(DefaultRedisPrefix + "queen - bohemian rhapsody")
	require.NoError(t, err)
	assert.Equal(t, "spotify:track:y", v)
	assert.Zero(t, mr.TTL(DefaultRedisPrefix+"queen - bohemian rhapsody"))
}

func TestRedisStoreUnavailable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	_, err := NewRedis(context.Background(), addr, "x:")
	var ce *CacheError
	assert.True(t, errors.As(err, &ce))
}

func TestRedisStoreGetError(t *testing.T) {
	mr := miniredis.RunT(t)
	s, err := NewRedis(context.Background(), mr.Addr(), "x:")
	require.NoError(t, err)
	defer s.Close()

	mr.SetError("boom")
	_, _, err = s.Get(context.Background(), "a - b")
	var ce *CacheError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, "a - b", ce.Key)
}
