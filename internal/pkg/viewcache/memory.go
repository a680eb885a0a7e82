package viewcache

import (
	"context"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// MemoryStore is an in-process LRU store with per-entry expiry
type MemoryStore struct {
	lru *expirable.LRU[string, []byte]
}

// NewMemoryStore creates a store holding at most size entries for ttl each
func NewMemoryStore(size int, ttl time.Duration) *MemoryStore {
	return &MemoryStore{lru: expirable.NewLRU[string, []byte](size, nil, ttl)}
}

func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	value, ok := s.lru.Get(key)
	return value, ok, nil
}

func (s *MemoryStore) Set(_ context.Context, key string, value []byte) error {
	s.lru.Add(key, value)
	return nil
}

func (s *MemoryStore) Invalidate(_ context.Context, key string) error {
	s.lru.Remove(key)
	variant := key + "?"
	for _, k := range s.lru.Keys() {
		if strings.HasPrefix(k, variant) {
			s.lru.Remove(k)
		}
	}
	return nil
}
