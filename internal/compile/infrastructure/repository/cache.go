package repository

import (
	"github.com/spf13/viper"
	
	"github.com/Wenrh2004/playground/internal/compile/domain/aggregate"
	"github.com/Wenrh2004/playground/pkg/cache"
	"github.com/Wenrh2004/playground/pkg/cache/client"
)

// NewTaskCache caches finished tasks in front of the task table.
func NewTaskCache(conf *viper.Viper, layers []client.Cache) cache.MultiCache[*aggregate.Task] {
	return cache.NewMultiCache[*aggregate.Task](conf, layers)
}
