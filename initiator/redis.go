package initiator

import (
	"context"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"video-sharing/models"
)

// NewRedisClient does not fail when redis is down: events are best effort.
func NewRedisClient(ctx context.Context, logger *slog.Logger, config models.Config) *redis.Client {
	rdb := redis.NewClient(&redis.Options{
		Addr:     config.Redis.Host + ":" + config.Redis.Port,
		Password: config.Redis.Password,
		DB:       config.Redis.DB,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Warn("redis is not reachable, events will be dropped", "error", err)
		return rdb
	}

	logger.Info("redis connected", "addr", rdb.Options().Addr)
	return rdb
}
