package rendercache

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourorg/listing-studio/internal/card"
	"github.com/yourorg/listing-studio/internal/metrics"
	"github.com/yourorg/listing-studio/internal/redisx"
)

func TestKey(t *testing.T) {
	p := card.SampleProperty()
	brand := &card.BrandSettings{PrimaryColor: "#111111"}

	k1 := Key("html", card.Sold, p, brand, nil)
	assert.Equal(t, k1, Key("html", card.Sold, p, brand, nil))
	assert.NotEqual(t, k1, Key("json", card.Sold, p, brand, nil))
	assert.NotEqual(t, k1, Key("html", card.JustListed, p, brand, nil))
	assert.NotEqual(t, k1, Key("html", card.Sold, p, nil, nil))

	p.Price = "$1"
	assert.NotEqual(t, k1, Key("html", card.Sold, p, brand, nil))

	zero := 0.0
	assert.NotEqual(t,
		Key("html", card.Sold, p, brand, &card.TemplateConfig{}),
		Key("html", card.Sold, p, brand, &card.TemplateConfig{OverlayOpacity: &zero}))
}

func TestGetOrRender(t *testing.T) {
	m, err := metrics.New(prometheus.NewRegistry())
	require.NoError(t, err)
	c := New(NewMemory(), time.Minute, m, zerolog.Nop())

	calls := 0
	render := func() ([]byte, error) {
		calls++
		return []byte("<div></div>"), nil
	}

	out, hit, err := c.GetOrRender(context.Background(), "k", render)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, "<div></div>", string(out))

	out, hit, err = c.GetOrRender(context.Background(), "k", render)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, "<div></div>", string(out))
	assert.Equal(t, 1, calls)
}

func TestGetOrRender_ErrorNotCached(t *testing.T) {
	c := New(NewMemory(), time.Minute, nil, zerolog.Nop())
	boom := errors.New("boom")

	_, _, err := c.GetOrRender(context.Background(), "k", func() ([]byte, error) { return nil, boom })
	assert.ErrorIs(t, err, boom)

	out, hit, err := c.GetOrRender(context.Background(), "k", func() ([]byte, error) { return []byte("ok"), nil })
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, "ok", string(out))
}

type failingBackend struct{}

func (failingBackend) Get(context.Context, string) ([]byte, error) {
	return nil, errors.New("connection refused")
}
func (failingBackend) Set(context.Context, string, []byte, time.Duration) error {
	return errors.New("connection refused")
}

func TestGetOrRender_BackendDown(t *testing.T) {
	c := New(failingBackend{}, time.Minute, nil, zerolog.Nop())
	out, hit, err := c.GetOrRender(context.Background(), "k", func() ([]byte, error) { return []byte("ok"), nil })
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, "ok", string(out))
}

func TestGetOrRender_SharesConcurrentMisses(t *testing.T) {
	c := New(NewMemory(), time.Minute, nil, zerolog.Nop())
	var calls atomic.Int32
	release := make(chan struct{})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _, _ = c.GetOrRender(context.Background(), "k", func() ([]byte, error) {
				calls.Add(1)
				<-release
				return []byte("ok"), nil
			})
		}()
	}
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()
	assert.Equal(t, int32(1), calls.Load())
}

func TestMemoryExpiry(t *testing.T) {
	m := NewMemory()
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return now }

	require.NoError(t, m.Set(context.Background(), "k", []byte("v"), time.Minute))
	v, err := m.Get(context.Background(), "k")
	require.NoError(t, err)
	assert.Equal(t, "v", string(v))

	now = now.Add(2 * time.Minute)
	_, err = m.Get(context.Background(), "k")
	assert.ErrorIs(t, err, redisx.ErrMiss)
}

func TestMemory_SweepsExpiredOnWrite(t *testing.T) {
	m := NewMemory()
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return now }
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		require.NoError(t, m.Set(ctx, fmt.Sprintf("stale-%d", i), []byte("v"), time.Minute))
	}
	require.Equal(t, 10, m.Len())

	now = now.Add(5 * time.Minute)
	require.NoError(t, m.Set(ctx, "fresh", []byte("v"), time.Minute))
	assert.Equal(t, 1, m.Len())
	_, err := m.Get(ctx, "fresh")
	assert.NoError(t, err)
}

func TestMemory_BoundedEntries(t *testing.T) {
	m := NewMemoryWithLimit(3)
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return now }
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		now = now.Add(time.Second)
		require.NoError(t, m.Set(ctx, fmt.Sprintf("k%d", i), []byte("v"), time.Hour))
	}
	assert.Equal(t, 3, m.Len())

	_, err := m.Get(ctx, "k0")
	assert.ErrorIs(t, err, redisx.ErrMiss)
	_, err = m.Get(ctx, "k4")
	assert.NoError(t, err)

	require.NoError(t, m.Set(ctx, "k4", []byte("again"), time.Hour))
	assert.Equal(t, 3, m.Len())
}

func TestNilCacheRenders(t *testing.T) {
	var c *Cache
	out, hit, err := c.GetOrRender(context.Background(), "k", func() ([]byte, error) { return []byte("ok"), nil })
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, "ok", string(out))
}

func TestRedisBackend(t *testing.T) {
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TEST_REDIS_ADDR not set")
	}
	rc := redisx.New(addr, "", 0)
	defer rc.Close()
	ctx := context.Background()
	require.NoError(t, rc.Ping(ctx))

	c := New(rc, time.Minute, nil, zerolog.Nop())
	key := Key("html", card.Sold, card.SampleProperty(), nil, nil)
	defer func() { _ = rc.Del(ctx, key) }()

	_, hit, err := c.GetOrRender(ctx, key, func() ([]byte, error) { return []byte("ok"), nil })
	require.NoError(t, err)
	assert.False(t, hit)
	out, hit, err := c.GetOrRender(ctx, key, func() ([]byte, error) { return []byte("other"), nil })
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, "ok", string(out))
}
