package initiator

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"video-sharing/models"
	"video-sharing/services"
)

// InitMinio connects to the static store and creates the buckets it needs.
func InitMinio(ctx context.Context, logger *slog.Logger, config models.Config) (*minio.Client, error) {
	client, err := minio.New(config.Static.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(config.Static.AccessKey, config.Static.SecretKey, ""),
		Secure: config.Static.Secure,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}
	if err := services.EnsureBuckets(ctx, client, config); err != nil {
		return nil, err
	}

	logger.Info("minio connected", "endpoint", config.Static.Endpoint)
	return client, nil
}
