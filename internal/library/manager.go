package library

import (
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"strconv"
	"time"

	"anihub/pkg/kvstore"
	"anihub/pkg/models"
)

const (
	recentCap       = 10
	defaultUsername = "Otaku"
)

// Manager owns the tracked library, the recently-viewed list and the
// display name. Every mutation is a whole-value read-modify-write of the
// backing record, so a failed computation can never leave a partially
// updated collection behind.
type Manager struct {
	store kvstore.Store
}

func NewManager(store kvstore.Store) *Manager {
	return &Manager{store: store}
}

// collection loads and decodes the tracking collection. Missing or
// unparsable stored data degrades to an empty collection rather than
// failing the caller.
func (m *Manager) collection() models.TrackingCollection {
	raw, ok, err := m.store.Get(kvstore.KeyLibrary)
	if err != nil {
		log.Printf("[library] read collection: %v", err)
		return models.TrackingCollection{}
	}
	if !ok {
		return models.TrackingCollection{}
	}

	var col models.TrackingCollection
	if err := json.Unmarshal([]byte(raw), &col); err != nil {
		log.Printf("[library] corrupt collection, starting empty: %v", err)
		return models.TrackingCollection{}
	}
	if col == nil {
		col = models.TrackingCollection{}
	}
	return col
}

func (m *Manager) saveJSON(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := m.store.Set(key, string(data)); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// SetStatus writes, replaces or removes the record for the given title
// and returns the new effective status. StatusNone (or "") removes.
// AddedAt is restamped on every write ("last modified" semantics).
func (m *Manager) SetStatus(anime models.Anime, status models.Status) (models.Status, error) {
	key := strconv.Itoa(anime.MalID)
	col := m.collection()

	if status == models.StatusNone || status == "" {
		delete(col, key)
		status = models.StatusNone
	} else {
		col[key] = models.TrackingRecord{
			Anime:   anime,
			Status:  status,
			AddedAt: time.Now().UnixMilli(),
		}
	}

	if err := m.saveJSON(kvstore.KeyLibrary, col); err != nil {
		return "", err
	}
	return status, nil
}

// Remove deletes any record for id. Missing records are a no-op.
func (m *Manager) Remove(id int) error {
	col := m.collection()
	delete(col, strconv.Itoa(id))
	return m.saveJSON(kvstore.KeyLibrary, col)
}

// Get returns the record for id, if tracked.
func (m *Manager) Get(id int) (models.TrackingRecord, bool) {
	rec, ok := m.collection()[strconv.Itoa(id)]
	return rec, ok
}

// List returns every tracked record, most recently modified first
// (ties broken by id) so output is deterministic.
func (m *Manager) List() []models.TrackingRecord {
	col := m.collection()

	out := make([]models.TrackingRecord, 0, len(col))
	for _, rec := range col {
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].AddedAt != out[j].AddedAt {
			return out[i].AddedAt > out[j].AddedAt
		}
		return out[i].Anime.MalID < out[j].Anime.MalID
	})
	return out
}

// RecordView puts anime at the front of the recently-viewed list,
// removing any earlier entry with the same id and capping the list.
func (m *Manager) RecordView(anime models.Anime) error {
	recent := m.RecentlyViewed()

	next := make([]models.Anime, 0, len(recent)+1)
	next = append(next, anime)
	for _, a := range recent {
		if a.MalID != anime.MalID {
			next = append(next, a)
		}
	}
	if len(next) > recentCap {
		next = next[:recentCap]
	}

	return m.saveJSON(kvstore.KeyRecentlyViewed, next)
}

// RecentlyViewed returns the stored list, newest first. Missing or
// unparsable data degrades to empty.
func (m *Manager) RecentlyViewed() []models.Anime {
	raw, ok, err := m.store.Get(kvstore.KeyRecentlyViewed)
	if err != nil {
		log.Printf("[library] read recently viewed: %v", err)
		return nil
	}
	if !ok {
		return nil
	}

	var recent []models.Anime
	if err := json.Unmarshal([]byte(raw), &recent); err != nil {
		log.Printf("[library] corrupt recently viewed, starting empty: %v", err)
		return nil
	}
	return recent
}

// DisplayName returns the stored profile name, or "Otaku".
func (m *Manager) DisplayName() string {
	name, ok, err := m.store.Get(kvstore.KeyUsername)
	if err != nil {
		log.Printf("[library] read username: %v", err)
		return defaultUsername
	}
	if !ok || name == "" {
		return defaultUsername
	}
	return name
}

func (m *Manager) SetDisplayName(name string) error {
	if err := m.store.Set(kvstore.KeyUsername, name); err != nil {
		return fmt.Errorf("save username: %w", err)
	}
	return nil
}
