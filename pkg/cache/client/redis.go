package client

import (
	"context"
	"errors"
	"fmt"
	"time"
	
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
)

// RedisCache is a shared layer backed by redis.
type RedisCache struct {
	rdb      redis.Cmdable
	name     string
	priority int
}

func (r *RedisCache) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, fmt.Errorf("[client.RedisCache.Get]: empty key not allowed")
	}
	
	val, err := r.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("[client.RedisCache.Get]: %w", err)
	}
	return val, nil
}

func (r *RedisCache) Set(ctx context.Context, key string, value []byte, expire time.Duration) error {
	if key == "" {
		return fmt.Errorf("[client.RedisCache.Set]: empty key not allowed")
	}
	if value == nil {
		return fmt.Errorf("[client.RedisCache.Set]: nil value not allowed")
	}
	if expire <= 0 {
		expire = time.Hour
	}
	
	if err := r.rdb.Set(ctx, key, value, expire).Err(); err != nil {
		return fmt.Errorf("[client.RedisCache.Set]: %w", err)
	}
	return nil
}

func (r *RedisCache) GetName() string {
	return r.name
}

func (r *RedisCache) GetPriority() int {
	return r.priority
}

// NewRedis connects to app.data.redis.* and pings it once.
func NewRedis(conf *viper.Viper) *RedisCache {
	options := &redis.Options{
		Addr:         conf.GetString("app.data.redis.addr"),
		Password:     conf.GetString("app.data.redis.password"),
		DB:           conf.GetInt("app.data.redis.db"),
		PoolSize:     conf.GetInt("app.data.redis.pool_size"),
		MinIdleConns: conf.GetInt("app.data.redis.min_idle_conns"),
		DialTimeout:  conf.GetDuration("app.data.redis.dial_timeout"),
		ReadTimeout:  conf.GetDuration("app.data.redis.read_timeout"),
		WriteTimeout: conf.GetDuration("app.data.redis.write_timeout"),
	}
	if options.PoolSize <= 0 {
		options.PoolSize = 10
	}
	if options.DialTimeout <= 0 {
		options.DialTimeout = 5 * time.Second
	}
	if options.ReadTimeout <= 0 {
		options.ReadTimeout = 3 * time.Second
	}
	if options.WriteTimeout <= 0 {
		options.WriteTimeout = 3 * time.Second
	}
	
	rdb := redis.NewClient(options)
	
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		panic(fmt.Sprintf("Redis connection failed: %s", err.Error()))
	}
	
	return newRedisCache(rdb, conf.GetInt("app.data.cache.redis.priority"))
}

func newRedisCache(rdb redis.Cmdable, priority int) *RedisCache {
	return &RedisCache{
		rdb:      rdb,
		name:     "redis",
		priority: priority,
	}
}
