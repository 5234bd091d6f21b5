package ratelimit

import (
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
)

const (
	StoreMemory = "memory"
	StoreCache  = "cache"
)

// Store holds rate records by client key. Implementations are not required to
// be safe for concurrent use; FixedWindowLimiter serialises access.
type Store interface {
	Get(key string) (RateRecord, bool)
	Set(key string, rec RateRecord)
	Len() int
	// DeleteExpired drops every record whose window ended before now and
	// returns how many were removed.
	DeleteExpired(now time.Time) int
}

var (
	_ Store = (*MemoryStore)(nil)
	_ Store = (*CacheStore)(nil)
)

// MemoryStore is a plain map.
type MemoryStore struct {
	records map[string]RateRecord
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string]RateRecord)}
}

func (s *MemoryStore) Get(key string) (RateRecord, bool) {
	rec, ok := s.records[key]
	return rec, ok
}

func (s *MemoryStore) Set(key string, rec RateRecord) {
	s.records[key] = rec
}

func (s *MemoryStore) Len() int {
	return len(s.records)
}

func (s *MemoryStore) DeleteExpired(now time.Time) int {
	removed := 0
	for k, rec := range s.records {
		if now.After(rec.ResetAt) {
			delete(s.records, k)
			removed++
		}
	}
	return removed
}

// CacheStore keeps records in a go-cache instance. Items carry a TTL of one
// window so the cache janitor bounds memory on its own; the limiter still
// decides expiry from RateRecord.ResetAt.
type CacheStore struct {
	cache *cache.Cache
}

// NewCacheStore creates a store whose entries expire after window and whose
// janitor runs every cleanupInterval (zero disables the janitor).
func NewCacheStore(window, cleanupInterval time.Duration) *CacheStore {
	return &CacheStore{cache: cache.New(window, cleanupInterval)}
}

func (s *CacheStore) Get(key string) (RateRecord, bool) {
	v, found := s.cache.Get(key)
	if !found {
		return RateRecord{}, false
	}
	rec, ok := v.(RateRecord)
	return rec, ok
}

func (s *CacheStore) Set(key string, rec RateRecord) {
	s.cache.Set(key, rec, cache.DefaultExpiration)
}

func (s *CacheStore) Len() int {
	return s.cache.ItemCount()
}

func (s *CacheStore) DeleteExpired(now time.Time) int {
	s.cache.DeleteExpired()
	removed := 0
	for k, item := range s.cache.Items() {
		rec, ok := item.Object.(RateRecord)
		if !ok || now.After(rec.ResetAt) {
			s.cache.Delete(k)
			removed++
		}
	}
	return removed
}

// NewStore builds the store named by kind.
func NewStore(kind string, window, cleanupInterval time.Duration) (Store, error) {
	switch kind {
	case "", StoreMemory:
		return NewMemoryStore(), nil
	case StoreCache:
		return NewCacheStore(window, cleanupInterval), nil
	default:
		return nil, fmt.Errorf("unknown rate limit store %q", kind)
	}
}
