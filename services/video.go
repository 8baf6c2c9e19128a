package services

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"video-sharing/database/db"
	"video-sharing/models"
	"video-sharing/search"
	"video-sharing/utils"
)

// TempRegistry receives local files that must be removed when the request ends.
type TempRegistry interface {
	AddTempFile(path string)
}

type VideoService interface {
	Upload(ctx context.Context, uid uuid.UUID, input models.UploadVideoInput, tmp TempRegistry) (models.Video, error)
	Get(ctx context.Context, id string, viewer *uuid.UUID) (models.VideoDetail, error)
	Load(ctx context.Context, id string) (models.Video, error)
	ListOwn(ctx context.Context, uid uuid.UUID, page search.Page) ([]models.Video, error)
	ListByChannel(ctx context.Context, username string, page search.Page) ([]models.Video, error)
	Update(ctx context.Context, current models.Video, input models.UpdateVideoInput) (models.Video, error)
	Delete(ctx context.Context, current models.Video) (models.Message, error)
}

type video struct {
	logger   *slog.Logger
	db       db.Store
	store    StaticStore
	media    MediaProbe
	streamer Streamer
	tempDir  string
	now      func() time.Time
}

func NewVideo(logger *slog.Logger, store db.Store, static StaticStore, media MediaProbe, streamer Streamer, tempDir string) VideoService {
	return &video{
		logger:   logger,
		db:       store,
		store:    static,
		media:    media,
		streamer: streamer,
		tempDir:  tempDir,
		now:      time.Now,
	}
}

func (v *video) Upload(ctx context.Context, uid uuid.UUID, in models.UploadVideoInput, tmp TempRegistry) (models.Video, error) {
	params := fmt.Sprintf("uid: %v, title: %v, file: %v", uid, in.Title, in.Filename)
	uploadedAt := v.now()

	seconds, err := v.media.Duration(ctx, in.FilePath)
	if err != nil {
		return models.Video{}, err
	}
	duration := math.Floor(seconds)

	thumbnailName := utils.RandomString(32) + ".png"
	thumbnailPath := filepath.Join(v.tempDir, thumbnailName)
	tmp.AddTempFile(thumbnailPath)
	if err := v.media.ExtractFrame(ctx, in.FilePath, duration/2, thumbnailPath); err != nil {
		return models.Video{}, err
	}

	id := utils.NewVideoID()
	videoObject, err := v.store.Put(ctx, ObjectVideo, id+strings.ToLower(filepath.Ext(in.Filename)), in.FilePath, in.ContentType)
	if err != nil {
		return models.Video{}, err
	}
	thumbnailObject, err := v.store.Put(ctx, ObjectThumbnail, thumbnailName, thumbnailPath, "image/png")
	if err != nil {
		return models.Video{}, err
	}

	err = v.db.ExecTx(ctx, func(q db.Querier) error {
		if _, err := q.CreateVideo(ctx, db.CreateVideoParams{
			ID:            id,
			Title:         in.Title,
			Description:   in.Description,
			Duration:      int32(duration),
			VideoPath:     videoObject,
			ThumbnailPath: thumbnailObject,
			UploadedAt:    uploadedAt,
			UploadedBy:    uid,
		}); err != nil {
			return err
		}
		if len(in.Categories) == 0 {
			return nil
		}
		return q.AttachCategories(ctx, db.AttachCategoriesParams{VideoID: id, Names: in.Categories})
	})
	if err != nil {
		return models.Video{}, models.IdentifyDbError(err).AddParams(params)
	}

	publish(ctx, v.logger, v.streamer, EventVideoUploaded, map[string]interface{}{
		"video_id":    id,
		"uploaded_by": uid.String(),
		"video_path":  videoObject,
	})
	return v.Load(ctx, id)
}

func (v *video) Get(ctx context.Context, id string, viewer *uuid.UUID) (models.VideoDetail, error) {
	if err := v.db.IncrementViews(ctx, id); err != nil {
		return models.VideoDetail{}, models.IdentifyDbError(err).AddParams(fmt.Sprintf("id: %v", id))
	}
	if viewer != nil {
		if err := v.db.RecordWatch(ctx, db.RecordWatchParams{UserID: *viewer, VideoID: id}); err != nil {
			return models.VideoDetail{}, models.IdentifyDbError(err).AddParams(fmt.Sprintf("id: %v, viewer: %v", id, *viewer))
		}
		publish(ctx, v.logger, v.streamer, EventVideoWatched, map[string]interface{}{
			"video_id": id,
			"user_id":  viewer.String(),
		})
	}

	found, err := v.Load(ctx, id)
	if err != nil {
		return models.VideoDetail{}, err
	}
	count, err := v.db.GetVideoReactionCount(ctx, id)
	if err != nil {
		return models.VideoDetail{}, models.IdentifyDbError(err).AddParams(fmt.Sprintf("id: %v", id))
	}
	return models.VideoDetail{
		Video:         found,
		ReactionCount: models.ReactionCount{Like: count.Likes, Dislike: count.Dislikes},
	}, nil
}

func (v *video) Load(ctx context.Context, id string) (models.Video, error) {
	row, err := v.db.GetVideo(ctx, id)
	if err != nil {
		return models.Video{}, models.IdentifyDbError(err).AddParams(fmt.Sprintf("id: %v", id))
	}
	return convertVideo(row, v.store), nil
}

func (v *video) ListOwn(ctx context.Context, uid uuid.UUID, page search.Page) ([]models.Video, error) {
	rows, err := v.db.SearchVideos(ctx, search.UploadedBy(uid, page))
	if err != nil {
		return nil, models.IdentifyDbError(err).AddParams(fmt.Sprintf("uid: %v", uid))
	}
	return convertVideos(rows, v.store), nil
}

func (v *video) ListByChannel(ctx context.Context, username string, page search.Page) ([]models.Video, error) {
	owner, err := v.db.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, models.IdentifyDbError(err).AddParams(fmt.Sprintf("username: %v", username))
	}
	return v.ListOwn(ctx, owner.ID, page)
}

func (v *video) Update(ctx context.Context, current models.Video, in models.UpdateVideoInput) (models.Video, error) {
	params := fmt.Sprintf("id: %v", current.ID)

	var newThumbnail *string
	if in.ThumbnailPath != "" {
		name := utils.RandomString(32) + strings.ToLower(filepath.Ext(in.ThumbnailFilename))
		object, err := v.store.Put(ctx, ObjectThumbnail, name, in.ThumbnailPath, in.ThumbnailContentType)
		if err != nil {
			return models.Video{}, err
		}
		if err := v.store.Remove(ctx, current.ThumbnailPath); err != nil {
			return models.Video{}, err
		}
		newThumbnail = &object
	}

	err := v.db.ExecTx(ctx, func(q db.Querier) error {
		if _, err := q.UpdateVideo(ctx, db.UpdateVideoParams{
			ID:            current.ID,
			Title:         text(in.Title),
			Description:   text(in.Description),
			ThumbnailPath: text(newThumbnail),
		}); err != nil {
			return err
		}
		if in.Categories == nil {
			return nil
		}
		if err := q.DetachCategories(ctx, current.ID); err != nil {
			return err
		}
		return q.AttachCategories(ctx, db.AttachCategoriesParams{VideoID: current.ID, Names: in.Categories})
	})
	if err != nil {
		return models.Video{}, models.IdentifyDbError(err).AddParams(params)
	}
	return v.Load(ctx, current.ID)
}

func (v *video) Delete(ctx context.Context, current models.Video) (models.Message, error) {
	if err := v.store.Remove(ctx, current.VideoPath); err != nil {
		return models.Message{}, err
	}
	if err := v.store.Remove(ctx, current.ThumbnailPath); err != nil {
		return models.Message{}, err
	}
	if err := v.db.DeleteVideo(ctx, current.ID); err != nil {
		return models.Message{}, models.IdentifyDbError(err).AddParams(fmt.Sprintf("id: %v", current.ID))
	}

	publish(ctx, v.logger, v.streamer, EventVideoDeleted, map[string]interface{}{
		"video_id":   current.ID,
		"video_path": current.VideoPath,
	})
	return models.Message{Message: "deleted video"}, nil
}
