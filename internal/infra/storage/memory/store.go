// Package memory keeps price quotes and datums in process. It backs the
// caches when no Redis is configured.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/MAYZGitHub/mayz-tools/internal/infra/blockfrost"
	"github.com/MAYZGitHub/mayz-tools/internal/valuation"
)

type quote struct {
	value     string
	expiresAt time.Time // zero means no expiry
}

// Store is an in-process PriceCache and DatumCache.
type Store struct {
	now func() time.Time

	mu     sync.RWMutex
	prices map[string]quote
	datums map[string][]byte
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		now:    time.Now,
		prices: make(map[string]quote),
		datums: make(map[string][]byte),
	}
}

// GetPrice implements valuation.PriceCache. Expired quotes are dropped on
// read.
func (s *Store) GetPrice(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	q, ok := s.prices[key]
	s.mu.RUnlock()

	if !ok {
		return "", false, nil
	}

	if !q.expiresAt.IsZero() && !s.now().Before(q.expiresAt) {
		s.mu.Lock()
		if cur, ok := s.prices[key]; ok && cur == q {
			delete(s.prices, key)
		}
		s.mu.Unlock()
		return "", false, nil
	}

	return q.value, true, nil
}

// SetPrice implements valuation.PriceCache. A non-positive ttl keeps the
// quote until the process exits.
func (s *Store) SetPrice(_ context.Context, key, value string, ttl time.Duration) error {
	q := quote{value: value}
	if ttl > 0 {
		q.expiresAt = s.now().Add(ttl)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.prices[key] = q
	return nil
}

// GetDatum implements blockfrost.DatumCache.
func (s *Store) GetDatum(_ context.Context, hash string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	raw, ok := s.datums[hash]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), raw...), true, nil
}

// SetDatum implements blockfrost.DatumCache.
func (s *Store) SetDatum(_ context.Context, hash string, raw []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.datums[hash] = append([]byte(nil), raw...)
	return nil
}

var (
	_ valuation.PriceCache  = (*Store)(nil)
	_ blockfrost.DatumCache = (*Store)(nil)
)
