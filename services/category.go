package services

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"video-sharing/database/db"
	"video-sharing/models"
)

var (
	categoryCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "video_sharing_category_cache_hits_total",
		Help: "Category list lookups served from cache.",
	})
	categoryCacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "video_sharing_category_cache_misses_total",
		Help: "Category list lookups that went to the database.",
	})
)

const categoriesKey = "all"

type CategoryService interface {
	List(ctx context.Context) ([]string, error)
}

type category struct {
	db    db.Querier
	cache *expirable.LRU[string, []string]
}

func NewCategory(q db.Querier, size int, ttl time.Duration) CategoryService {
	if size <= 0 {
		size = 1
	}
	return &category{
		db:    q,
		cache: expirable.NewLRU[string, []string](size, nil, ttl),
	}
}

func (c *category) List(ctx context.Context) ([]string, error) {
	if names, ok := c.cache.Get(categoriesKey); ok {
		categoryCacheHits.Inc()
		return names, nil
	}
	categoryCacheMisses.Inc()

	names, err := c.db.ListCategories(ctx)
	if err != nil {
		return nil, models.IdentifyDbError(err)
	}
	if names == nil {
		names = []string{}
	}
	c.cache.Add(categoriesKey, names)
	return names, nil
}
