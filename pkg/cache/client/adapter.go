package client

import (
	"context"
	"errors"
	"time"
	
	"github.com/spf13/viper"
)

// ErrNotFound reports a cache miss.
var ErrNotFound = errors.New("no cache found")

// Cache is a single byte-oriented cache layer.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, expire time.Duration) error
	GetPriority() int
	GetName() string
}

// NewClients builds the configured layers: the in-process cache always, and
// redis when app.data.redis.addr is set.
func NewClients(conf *viper.Viper) []Cache {
	layers := []Cache{NewLocalCache(conf)}
	if conf.GetString("app.data.redis.addr") != "" {
		layers = append(layers, NewRedis(conf))
	}
	return layers
}
