package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/minio/minio-go/v7"

	"video-sharing/models"
)

// ObjectKind is the top-level folder of an object path, e.g. "/videos/abc.mp4".
type ObjectKind string

const (
	ObjectVideo     ObjectKind = "videos"
	ObjectThumbnail ObjectKind = "thumbnails"
)

// StaticStore is the static-file service that holds video and thumbnail files.
type StaticStore interface {
	// Put uploads a local file and returns its object path.
	Put(ctx context.Context, kind ObjectKind, name, filePath, contentType string) (string, error)
	Remove(ctx context.Context, objectPath string) error
	URL(objectPath string) string
}

type minioStore struct {
	client    *minio.Client
	publicURL string
	buckets   map[ObjectKind]string
	logger    *slog.Logger
}

func NewMinioStore(logger *slog.Logger, client *minio.Client, config models.Config) StaticStore {
	return &minioStore{
		client:    client,
		publicURL: strings.TrimRight(config.Static.PublicURL, "/"),
		buckets: map[ObjectKind]string{
			ObjectVideo:     config.Static.VideoBucket,
			ObjectThumbnail: config.Static.ThumbnailBucket,
		},
		logger: logger,
	}
}

func ObjectPath(kind ObjectKind, name string) string {
	return "/" + string(kind) + "/" + name
}

// splitObjectPath maps "/videos/abc.mp4" to (videos, abc.mp4).
func splitObjectPath(objectPath string) (ObjectKind, string, bool) {
	kind, name, ok := strings.Cut(strings.TrimPrefix(objectPath, "/"), "/")
	if !ok || name == "" {
		return "", "", false
	}
	return ObjectKind(kind), name, true
}

func (ms *minioStore) Put(ctx context.Context, kind ObjectKind, name, filePath, contentType string) (string, error) {
	bucket, ok := ms.buckets[kind]
	if !ok {
		return "", models.Internal("unknown object kind", fmt.Errorf("object kind %q", kind))
	}
	_, err := ms.client.FPutObject(ctx, bucket, name, filePath, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", models.Internal("failed to upload file to storage",
			fmt.Errorf("failed to upload file to storage: %w", err)).
			AddParams(fmt.Sprintf("bucket: %v, name: %v", bucket, name))
	}
	return ObjectPath(kind, name), nil
}

func (ms *minioStore) Remove(ctx context.Context, objectPath string) error {
	kind, name, ok := splitObjectPath(objectPath)
	bucket, known := ms.buckets[kind]
	if !ok || !known {
		return models.Internal("invalid object path", fmt.Errorf("object path %q", objectPath))
	}
	if err := ms.client.RemoveObject(ctx, bucket, name, minio.RemoveObjectOptions{}); err != nil {
		return models.Internal("failed to remove file from storage",
			fmt.Errorf("failed to remove file from storage: %w", err)).
			AddParams(fmt.Sprintf("objectPath: %v", objectPath))
	}
	return nil
}

func (ms *minioStore) URL(objectPath string) string {
	kind, name, ok := splitObjectPath(objectPath)
	bucket, known := ms.buckets[kind]
	if !ok || !known {
		return ms.publicURL + objectPath
	}
	return ms.publicURL + "/" + bucket + "/" + name
}

// EnsureBuckets creates the video and thumbnail buckets when missing.
func EnsureBuckets(ctx context.Context, client *minio.Client, config models.Config) error {
	for _, bucket := range []string{config.Static.VideoBucket, config.Static.ThumbnailBucket} {
		exists, err := client.BucketExists(ctx, bucket)
		if err != nil {
			return fmt.Errorf("failed to check bucket %s: %w", bucket, err)
		}
		if exists {
			continue
		}
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create bucket %s: %w", bucket, err)
		}
	}
	return nil
}
