package cache

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
	
	"github.com/bytedance/sonic"
	"github.com/spf13/viper"
	"golang.org/x/sync/singleflight"
	
	"github.com/Wenrh2004/playground/pkg/cache/client"
	"github.com/Wenrh2004/playground/pkg/util/str"
)

var ErrMarshal = errors.New("[cache.MultiCache.Set] marshal error")

// MultiCache is a typed cache layered over one or more byte caches. Reads go
// through the layers in priority order; writes go to all of them.
type MultiCache[T any] interface {
	Get(ctx context.Context, key string) (T, error)
	Set(ctx context.Context, key string, value T, expire time.Duration) error
	GetAndSet(ctx context.Context, key string, expire time.Duration, fn func() (T, error)) (T, error)
	GetAndSingleSet(ctx context.Context, key string, expire time.Duration, fn func() (T, error)) (T, error)
}

type multiCache[T any] struct {
	layers []client.Cache
	sf     singleflight.Group
	prefix string
	expire time.Duration
}

func (m *multiCache[T]) buildKey(key string) string {
	return strings.ToUpper(fmt.Sprintf("%s:%s", m.prefix, str.RemoveSpace(key)))
}

func (m *multiCache[T]) ttl(expire time.Duration) time.Duration {
	if expire <= 0 {
		return m.expire
	}
	return expire
}

func (m *multiCache[T]) Get(ctx context.Context, key string) (T, error) {
	var result T
	var errs []error
	cacheKey := m.buildKey(key)
	
	for i, layer := range m.layers {
		raw, err := layer.Get(ctx, cacheKey)
		if err != nil {
			if !errors.Is(err, client.ErrNotFound) {
				errs = append(errs, fmt.Errorf("[cache.MultiCache.Get] %s cache error: %w", layer.GetName(), err))
			}
			continue
		}
		if raw == nil {
			continue
		}
		
		if err := sonic.Unmarshal(raw, &result); err != nil {
			errs = append(errs, fmt.Errorf("[cache.MultiCache.Get] unmarshal from %s cache failed: %w", layer.GetName(), err))
			continue
		}
		
		// 回填到更高优先级的缓存层
		if i > 0 {
			go m.backfill(cacheKey, raw, m.layers[:i])
		}
		return result, nil
	}
	
	if len(errs) > 0 {
		return result, errors.Join(errs...)
	}
	return result, client.ErrNotFound
}

func (m *multiCache[T]) backfill(cacheKey string, raw []byte, layers []client.Cache) {
	ctx := context.Background()
	for _, layer := range layers {
		_ = layer.Set(ctx, cacheKey, raw, m.expire)
	}
}

func (m *multiCache[T]) Set(ctx context.Context, key string, value T, expire time.Duration) error {
	raw, err := sonic.Marshal(value)
	if err != nil {
		return errors.Join(ErrMarshal, err)
	}
	
	var errs []error
	cacheKey := m.buildKey(key)
	for _, layer := range m.layers {
		if err := layer.Set(ctx, cacheKey, raw, m.ttl(expire)); err != nil {
			errs = append(errs, fmt.Errorf("[cache.MultiCache.Set] %s cache error: %w", layer.GetName(), err))
		}
	}
	return errors.Join(errs...)
}

// GetAndSet loads the value from fn and stores it. A failed store is not
// reported unless the value could not be encoded at all.
func (m *multiCache[T]) GetAndSet(ctx context.Context, key string, expire time.Duration, fn func() (T, error)) (T, error) {
	var zero T
	value, err := fn()
	if err != nil {
		return zero, fmt.Errorf("[cache.MultiCache.GetAndSet] source function error: %w", err)
	}
	if err := m.Set(ctx, key, value, expire); err != nil && errors.Is(err, ErrMarshal) {
		return zero, err
	}
	return value, nil
}

// GetAndSingleSet is GetAndSet with concurrent loads of one key collapsed.
func (m *multiCache[T]) GetAndSingleSet(ctx context.Context, key string, expire time.Duration, fn func() (T, error)) (T, error) {
	v, err, _ := m.sf.Do(m.buildKey(key), func() (interface{}, error) {
		return m.GetAndSet(ctx, key, expire, fn)
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return v.(T), nil
}

// NewMultiCache orders layers by priority, lowest value first.
func NewMultiCache[T any](conf *viper.Viper, layers []client.Cache) MultiCache[T] {
	if len(layers) == 0 {
		panic("at least one cache implementation is required")
	}
	
	sorted := append([]client.Cache(nil), layers...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].GetPriority() < sorted[j].GetPriority()
	})
	
	expire := conf.GetDuration("app.data.cache.expire")
	if expire <= 0 {
		expire = 10 * time.Minute
	}
	return &multiCache[T]{
		layers: sorted,
		prefix: conf.GetString("app.data.cache.prefix"),
		expire: expire,
	}
}
