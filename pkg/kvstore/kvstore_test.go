package kvstore

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemoryRoundTrip(t *testing.T) {
	s := NewMemory()

	_, ok, err := s.Get(KeyLibrary)
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, s.Set(KeyLibrary, `{"1":{}}`))

	v, ok, err := s.Get(KeyLibrary)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, `{"1":{}}`, v)
}

func TestSQLiteRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "anihub.db")

	s, err := OpenSQLite(path)
	require.NoError(t, err)
	defer s.Close()

	_, ok, err := s.Get(KeyUsername)
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, s.Set(KeyUsername, "Otaku"))
	require.NoError(t, s.Set(KeyUsername, "Senpai")) // overwrite

	v, ok, err := s.Get(KeyUsername)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "Senpai", v)
}

func TestBadgerRoundTrip(t *testing.T) {
	s, err := OpenBadger(t.TempDir())
	require.NoError(t, err)
	defer s.Close()

	_, ok, err := s.Get(KeyRecentlyViewed)
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, s.Set(KeyRecentlyViewed, "[]"))

	v, ok, err := s.Get(KeyRecentlyViewed)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "[]", v)
}

func TestOpenPicksBackend(t *testing.T) {
	mem, err := Open(":memory:")
	require.NoError(t, err)
	require.IsType(t, &MemoryStore{}, mem)

	sq, err := Open(filepath.Join(t.TempDir(), "data.db"))
	require.NoError(t, err)
	defer sq.Close()
	require.IsType(t, &SQLiteStore{}, sq)

	bd, err := Open(filepath.Join(t.TempDir(), "badger"))
	require.NoError(t, err)
	defer bd.Close()
	require.IsType(t, &BadgerStore{}, bd)
}
