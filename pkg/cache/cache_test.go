package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
	
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	
	"github.com/Wenrh2004/playground/pkg/cache/client"
)

type entry struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// memLayer is a map-backed client.Cache.
type memLayer struct {
	mu       sync.Mutex
	name     string
	priority int
	data     map[string][]byte
}

func newMemLayer(name string, priority int) *memLayer {
	return &memLayer{name: name, priority: priority, data: map[string][]byte{}}
}

func (m *memLayer) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	if !ok {
		return nil, client.ErrNotFound
	}
	return v, nil
}

func (m *memLayer) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *memLayer) has(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.data[key]
	return ok
}

func (m *memLayer) GetPriority() int { return m.priority }
func (m *memLayer) GetName() string  { return m.name }

func testConf() *viper.Viper {
	conf := viper.New()
	conf.Set("app.data.cache.prefix", "test")
	return conf
}

func TestSetGet(t *testing.T) {
	mc := NewMultiCache[*entry](testConf(), []client.Cache{client.NewLocalCache(viper.New())})
	ctx := context.Background()
	
	_, err := mc.Get(ctx, "a")
	assert.ErrorIs(t, err, client.ErrNotFound)
	
	require.NoError(t, mc.Set(ctx, "a", &entry{Name: "x", Count: 2}, time.Minute))
	got, err := mc.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, &entry{Name: "x", Count: 2}, got)
}

func TestGetBackfillsHigherPriorityLayer(t *testing.T) {
	fast := newMemLayer("fast", 0)
	slow := newMemLayer("slow", 1)
	mc := NewMultiCache[entry](testConf(), []client.Cache{slow, fast})
	ctx := context.Background()
	
	require.NoError(t, slow.Set(ctx, "TEST:K", []byte(`{"name":"n","count":1}`), 0))
	got, err := mc.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, entry{Name: "n", Count: 1}, got)
	
	assert.Eventually(t, func() bool { return fast.has("TEST:K") }, time.Second, 5*time.Millisecond)
}

func TestGetAndSingleSetCollapsesLoads(t *testing.T) {
	mc := NewMultiCache[int](testConf(), []client.Cache{newMemLayer("mem", 0)})
	ctx := context.Background()
	
	var calls atomic.Int32
	release := make(chan struct{})
	var wg sync.WaitGroup
	results := make([]int, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			v, err := mc.GetAndSingleSet(ctx, "shared", time.Minute, func() (int, error) {
				calls.Add(1)
				<-release
				return 42, nil
			})
			assert.NoError(t, err)
			results[i] = v
		}(i)
	}
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()
	
	assert.LessOrEqual(t, calls.Load(), int32(len(results)))
	for _, v := range results {
		assert.Equal(t, 42, v)
	}
	got, err := mc.Get(ctx, "shared")
	require.NoError(t, err)
	assert.Equal(t, 42, got)
}

func TestGetAndSetPropagatesSourceError(t *testing.T) {
	mc := NewMultiCache[int](testConf(), []client.Cache{newMemLayer("mem", 0)})
	boom := errors.New("boom")
	_, err := mc.GetAndSet(context.Background(), "k", 0, func() (int, error) { return 0, boom })
	assert.ErrorIs(t, err, boom)
}

func TestNewMultiCacheRequiresLayer(t *testing.T) {
	assert.Panics(t, func() { NewMultiCache[int](testConf(), nil) })
}
