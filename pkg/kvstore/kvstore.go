package kvstore

import (
	"log"
	"strings"
)

// Store is the process-wide key/value store the library and profile
// records live in. Implementations are synchronous; callers treat a
// missing key as "use the default", never as an error.
type Store interface {
	// Get returns the stored value and whether the key exists.
	Get(key string) (string, bool, error)
	// Set writes the whole value for a key, replacing any previous one.
	Set(key, value string) error
	Close() error
}

// Fixed keys. The value under Library is a JSON-encoded tracking
// collection, RecentlyViewed a JSON-encoded array capped at 10, and
// Username raw text.
const (
	KeyLibrary        = "library"
	KeyRecentlyViewed = "recentlyViewed"
	KeyUsername       = "username"
)

// Open picks a backend from the DSN shape:
//
//	":memory:"              -> in-memory map (tests, throwaway runs)
//	path ending .db/.sqlite -> SQLite file with a single kv table
//	anything else           -> Badger directory
func Open(dsn string) (Store, error) {
	switch {
	case dsn == ":memory:":
		return NewMemory(), nil
	case strings.HasSuffix(dsn, ".db") || strings.HasSuffix(dsn, ".sqlite"):
		return OpenSQLite(dsn)
	default:
		return OpenBadger(dsn)
	}
}

// MustOpen is Open for main(): any failure is fatal.
func MustOpen(dsn string) Store {
	s, err := Open(dsn)
	if err != nil {
		log.Fatalf("failed to open store at %s: %v", dsn, err)
	}
	return s
}
