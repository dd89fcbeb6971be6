package client

import (
	"context"
	"errors"
	"fmt"
	"time"
	
	"github.com/coocood/freecache"
	"github.com/spf13/viper"
)

const maxLocalKeyLen = 65535

// LocalCache is an in-process layer backed by freecache.
type LocalCache struct {
	cache    *freecache.Cache
	name     string
	priority int
}

func (l *LocalCache) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, fmt.Errorf("[client.LocalCache.Get]: empty key not allowed")
	}
	
	value, err := l.cache.Get([]byte(key))
	if err != nil {
		if errors.Is(err, freecache.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("[client.LocalCache.Get]: %w", err)
	}
	return value, nil
}

func (l *LocalCache) Set(ctx context.Context, key string, value []byte, expire time.Duration) error {
	switch {
	case key == "":
		return fmt.Errorf("[client.LocalCache.Set]: empty key not allowed")
	case value == nil:
		return fmt.Errorf("[client.LocalCache.Set]: nil value not allowed")
	case len(key) > maxLocalKeyLen:
		return fmt.Errorf("[client.LocalCache.Set]: key too long (max %d bytes)", maxLocalKeyLen)
	}
	
	seconds := int(expire.Seconds())
	if seconds <= 0 {
		seconds = 60
	}
	if err := l.cache.Set([]byte(key), value, seconds); err != nil {
		return fmt.Errorf("[client.LocalCache.Set]: %w", err)
	}
	return nil
}

func (l *LocalCache) GetPriority() int {
	return l.priority
}

func (l *LocalCache) GetName() string {
	return l.name
}

// NewLocalCache sizes the cache from app.data.cache.local.size in megabytes.
func NewLocalCache(conf *viper.Viper) *LocalCache {
	size := conf.GetInt("app.data.cache.local.size")
	if size <= 0 {
		size = 16
	}
	
	return &LocalCache{
		cache:    freecache.NewCache(size * 1024 * 1024),
		name:     "local",
		priority: conf.GetInt("app.data.cache.local.priority"),
	}
}
