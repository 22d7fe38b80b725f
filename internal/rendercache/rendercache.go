// Package rendercache stores serialised cards keyed by a fingerprint of
// everything that affects their output.
package rendercache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/yourorg/listing-studio/internal/card"
	"github.com/yourorg/listing-studio/internal/metrics"
	"github.com/yourorg/listing-studio/internal/redisx"
)

// Backend is the key/value store behind the cache. Get returns
// redisx.ErrMiss for absent keys.
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, val []byte, ttl time.Duration) error
}

type Cache struct {
	backend Backend
	ttl     time.Duration
	metrics *metrics.Metrics
	log     zerolog.Logger
	group   singleflight.Group
}

func New(b Backend, ttl time.Duration, m *metrics.Metrics, log zerolog.Logger) *Cache {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &Cache{backend: b, ttl: ttl, metrics: m, log: log.With().Str("component", "rendercache").Logger()}
}

// Key fingerprints a render request. Identical inputs always produce the
// same key, so entries never need explicit invalidation.
func Key(format string, id card.TemplateID, data card.PropertyDetails, brand *card.BrandSettings, cfg *card.TemplateConfig) string {
	payload, _ := json.Marshal(struct {
		Format string               `json:"f"`
		ID     card.TemplateID      `json:"t"`
		Data   card.PropertyDetails `json:"d"`
		Brand  *card.BrandSettings  `json:"b"`
		Config *card.TemplateConfig `json:"c"`
	}{format, id, data, brand, cfg})
	sum := sha256.Sum256(payload)
	return "card:" + format + ":" + hex.EncodeToString(sum[:16])
}

// GetOrRender returns the cached bytes for key, or calls render, stores
// its output and returns it. Concurrent misses for one key share a single
// render. Backend failures are logged and treated as misses.
func (c *Cache) GetOrRender(ctx context.Context, key string, render func() ([]byte, error)) ([]byte, bool, error) {
	if c == nil {
		b, err := render()
		return b, false, err
	}
	b, err := c.backend.Get(ctx, key)
	if err == nil {
		c.metrics.RecordCache(true)
		return b, true, nil
	}
	if !errors.Is(err, redisx.ErrMiss) {
		c.log.Warn().Err(err).Str("key", key).Msg("cache read failed")
	}
	c.metrics.RecordCache(false)

	v, err, _ := c.group.Do(key, func() (any, error) {
		out, err := render()
		if err != nil {
			return nil, err
		}
		if err := c.backend.Set(ctx, key, out, c.ttl); err != nil {
			c.log.Warn().Err(err).Str("key", key).Msg("cache write failed")
		}
		return out, nil
	})
	if err != nil {
		return nil, false, err
	}
	return v.([]byte), false, nil
}

// DefaultMaxEntries bounds a Memory built by NewMemory.
const DefaultMaxEntries = 4096

const sweepInterval = time.Minute

// Memory is an in-process Backend used when no Redis address is set.
// Expired entries are swept on writes, and once the cache holds max
// entries the one closest to expiry is dropped to make room.
type Memory struct {
	mu        sync.Mutex
	now       func() time.Time
	max       int
	lastSweep time.Time
	entries   map[string]memEntry
}

type memEntry struct {
	val     []byte
	expires time.Time
}

func NewMemory() *Memory {
	return NewMemoryWithLimit(DefaultMaxEntries)
}

func NewMemoryWithLimit(max int) *Memory {
	if max <= 0 {
		max = DefaultMaxEntries
	}
	return &Memory{now: time.Now, max: max, entries: map[string]memEntry{}}
}

func (m *Memory) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.entries[key]
	if !ok {
		return nil, redisx.ErrMiss
	}
	if m.now().After(e.expires) {
		delete(m.entries, key)
		return nil, redisx.ErrMiss
	}
	return e.val, nil
}

func (m *Memory) Set(_ context.Context, key string, val []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.now()
	if now.Sub(m.lastSweep) >= sweepInterval || len(m.entries) >= m.max {
		m.sweep(now)
	}
	if _, ok := m.entries[key]; !ok && len(m.entries) >= m.max {
		m.evictSoonest()
	}
	m.entries[key] = memEntry{val: append([]byte(nil), val...), expires: now.Add(ttl)}
	return nil
}

// Len reports the number of stored entries, expired or not.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

func (m *Memory) sweep(now time.Time) {
	for k, e := range m.entries {
		if now.After(e.expires) {
			delete(m.entries, k)
		}
	}
	m.lastSweep = now
}

func (m *Memory) evictSoonest() {
	var victim string
	var soonest time.Time
	for k, e := range m.entries {
		if victim == "" || e.expires.Before(soonest) {
			victim, soonest = k, e.expires
		}
	}
	delete(m.entries, victim)
}
