package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"video-sharing/models"
)

const (
	EventVideoUploaded = "video.uploaded"
	EventVideoDeleted  = "video.deleted"
	EventVideoWatched  = "video.watched"
)

// Streamer publishes domain events for downstream consumers.
type Streamer interface {
	Stream(ctx context.Context, event string, values map[string]interface{}) error
}

type redisStreamer struct {
	streamName string
	logger     *slog.Logger
	rc         *redis.Client
}

func NewRedisStreamer(streamName string, logger *slog.Logger, rc *redis.Client) Streamer {
	return &redisStreamer{
		streamName: streamName,
		logger:     logger,
		rc:         rc,
	}
}

func (rs *redisStreamer) Stream(ctx context.Context, event string, values map[string]interface{}) error {
	fields := make(map[string]interface{}, len(values)+1)
	for k, v := range values {
		fields[k] = v
	}
	fields["event"] = event

	id, err := rs.rc.XAdd(ctx, &redis.XAddArgs{
		Stream: rs.streamName,
		ID:     "*",
		Values: fields,
	}).Result()
	if err != nil {
		return models.Internal("failed to publish event", fmt.Errorf("failed to publish event: %w", err)).
			AddParams(fmt.Sprintf("event: %v, values: %v", event, values))
	}

	rs.logger.Debug("event published", "event", event, "id", id)
	return nil
}

// publish sends an event and only logs a failure: the change it describes
// is already committed.
func publish(ctx context.Context, logger *slog.Logger, s Streamer, event string, values map[string]interface{}) {
	if s == nil {
		return
	}
	if err := s.Stream(ctx, event, values); err != nil {
		logger.Warn("failed to publish event", "event", event, "error", err)
	}
}
