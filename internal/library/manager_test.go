package library

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"anihub/pkg/kvstore"
	"anihub/pkg/models"
)

func anime(id int) models.Anime {
	return models.Anime{MalID: id, Title: fmt.Sprintf("anime-%d", id)}
}

func TestSetStatusAddsAndReplaces(t *testing.T) {
	m := NewManager(kvstore.NewMemory())

	got, err := m.SetStatus(anime(1), models.StatusWatching)
	require.NoError(t, err)
	require.Equal(t, models.StatusWatching, got)

	// Same id again: record is replaced, not duplicated.
	_, err = m.SetStatus(anime(1), models.StatusCompleted)
	require.NoError(t, err)

	items := m.List()
	require.Len(t, items, 1)
	require.Equal(t, models.StatusCompleted, items[0].Status)
}

func TestSetStatusNoneRemoves(t *testing.T) {
	m := NewManager(kvstore.NewMemory())

	_, err := m.SetStatus(anime(1), models.StatusWatching)
	require.NoError(t, err)
	_, err = m.SetStatus(anime(2), models.StatusDropped)
	require.NoError(t, err)

	got, err := m.SetStatus(anime(1), models.StatusNone)
	require.NoError(t, err)
	require.Equal(t, models.StatusNone, got)

	items := m.List()
	require.Len(t, items, 1)
	require.Equal(t, 2, items[0].Anime.MalID)

	_, ok := m.Get(1)
	require.False(t, ok)
}

func TestSetStatusLastWriteWins(t *testing.T) {
	m := NewManager(kvstore.NewMemory())

	statuses := []models.Status{
		models.StatusPlanToWatch,
		models.StatusWatching,
		models.StatusDropped,
		models.StatusFavorite,
	}
	for _, s := range statuses {
		_, err := m.SetStatus(anime(7), s)
		require.NoError(t, err)
	}

	rec, ok := m.Get(7)
	require.True(t, ok)
	require.Equal(t, models.StatusFavorite, rec.Status)
	require.Len(t, m.List(), 1)
}

func TestCorruptCollectionDegradesToEmpty(t *testing.T) {
	store := kvstore.NewMemory()
	require.NoError(t, store.Set(kvstore.KeyLibrary, "{not json"))

	m := NewManager(store)
	require.Empty(t, m.List())

	// And writing through the manager heals the record.
	_, err := m.SetStatus(anime(3), models.StatusWatching)
	require.NoError(t, err)
	require.Len(t, m.List(), 1)
}

func TestStorageFailureSurfaced(t *testing.T) {
	store := kvstore.NewMemory()
	store.FailSet = errors.New("quota exceeded")

	m := NewManager(store)
	_, err := m.SetStatus(anime(1), models.StatusWatching)
	require.Error(t, err)

	require.Error(t, m.RecordView(anime(1)))
	require.Error(t, m.SetDisplayName("x"))
}

func TestRecordViewDedupesToFront(t *testing.T) {
	m := NewManager(kvstore.NewMemory())

	require.NoError(t, m.RecordView(anime(1)))
	require.NoError(t, m.RecordView(anime(2)))
	require.NoError(t, m.RecordView(anime(1)))
	require.NoError(t, m.RecordView(anime(1)))

	recent := m.RecentlyViewed()
	require.Len(t, recent, 2)
	require.Equal(t, 1, recent[0].MalID)
	require.Equal(t, 2, recent[1].MalID)
}

func TestRecordViewCapped(t *testing.T) {
	m := NewManager(kvstore.NewMemory())

	for id := 1; id <= 15; id++ {
		require.NoError(t, m.RecordView(anime(id)))
	}

	recent := m.RecentlyViewed()
	require.Len(t, recent, 10)
	require.Equal(t, 15, recent[0].MalID)
	require.Equal(t, 6, recent[9].MalID)
}

func TestDisplayNameDefaultsAndPersists(t *testing.T) {
	m := NewManager(kvstore.NewMemory())

	require.Equal(t, "Otaku", m.DisplayName())
	require.NoError(t, m.SetDisplayName("Senpai"))
	require.Equal(t, "Senpai", m.DisplayName())
}
