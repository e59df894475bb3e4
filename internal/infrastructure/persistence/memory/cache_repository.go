// Package memory provides an in-process cache repository used when Redis is disabled
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/platewise/v1/internal/ports/outbound"
)

type item struct {
	value     []byte
	expiresAt time.Time
}

// CacheRepository is a map-backed cache with TTL expiry
type CacheRepository struct {
	mu   sync.RWMutex
	data map[string]item
}

// NewCacheRepository creates an in-memory cache repository
func NewCacheRepository() outbound.CacheRepository {
	repo := &CacheRepository{
		data: make(map[string]item),
	}
	go repo.evictLoop()
	return repo
}

// Get returns the cached value, or nil on a miss
func (r *CacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	r.mu.RLock()
	it, ok := r.data[key]
	r.mu.RUnlock()

	if !ok || time.Now().After(it.expiresAt) {
		return nil, nil
	}
	return it.value, nil
}

// Set stores a value with the given TTL
func (r *CacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	r.mu.Lock()
	r.data[key] = item{value: value, expiresAt: time.Now().Add(ttl)}
	r.mu.Unlock()
	return nil
}

// Delete removes a key
func (r *CacheRepository) Delete(ctx context.Context, key string) error {
	r.mu.Lock()
	delete(r.data, key)
	r.mu.Unlock()
	return nil
}

// Exists reports whether a live entry is present for the key
func (r *CacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	r.mu.RLock()
	it, ok := r.data[key]
	r.mu.RUnlock()

	return ok && time.Now().Before(it.expiresAt), nil
}

func (r *CacheRepository) evictLoop() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		now := time.Now()
		r.mu.Lock()
		for key, it := range r.data {
			if now.After(it.expiresAt) {
				delete(r.data, key)
			}
		}
		r.mu.Unlock()
	}
}
