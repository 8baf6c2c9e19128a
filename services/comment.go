package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"video-sharing/database/db"
	"video-sharing/models"
	"video-sharing/search"
)

type CommentService interface {
	List(ctx context.Context, videoID string, page search.Page) ([]models.Comment, error)
	Create(ctx context.Context, videoID string, uid uuid.UUID, content string) (models.Comment, error)
	Get(ctx context.Context, videoID string, id int64) (models.Comment, error)
	Update(ctx context.Context, videoID string, id int64, content string) (models.Comment, error)
	Delete(ctx context.Context, videoID string, id int64) (models.Message, error)
}

type comment struct {
	db db.Querier
}

func NewComment(q db.Querier) CommentService {
	return &comment{db: q}
}

func (c *comment) List(ctx context.Context, videoID string, page search.Page) ([]models.Comment, error) {
	rows, err := c.db.ListComments(ctx, db.ListCommentsParams{
		VideoID: videoID,
		Limit:   int32(page.Limit),
		Offset:  int32(page.Offset),
	})
	if err != nil {
		return nil, models.IdentifyDbError(err).AddParams(fmt.Sprintf("videoID: %v", videoID))
	}
	out := make([]models.Comment, 0, len(rows))
	for _, r := range rows {
		out = append(out, convertComment(db.GetCommentRow(r)))
	}
	return out, nil
}

func (c *comment) Create(ctx context.Context, videoID string, uid uuid.UUID, content string) (models.Comment, error) {
	created, err := c.db.CreateComment(ctx, db.CreateCommentParams{VideoID: videoID, UserID: uid, Content: content})
	if err != nil {
		return models.Comment{}, models.IdentifyDbError(err).AddParams(fmt.Sprintf("videoID: %v, uid: %v", videoID, uid))
	}
	return c.Get(ctx, videoID, created.ID)
}

func (c *comment) Get(ctx context.Context, videoID string, id int64) (models.Comment, error) {
	row, err := c.db.GetComment(ctx, db.GetCommentParams{ID: id, VideoID: videoID})
	if err != nil {
		return models.Comment{}, models.IdentifyDbError(err).AddParams(fmt.Sprintf("videoID: %v, id: %v", videoID, id))
	}
	return convertComment(row), nil
}

func (c *comment) Update(ctx context.Context, videoID string, id int64, content string) (models.Comment, error) {
	_, err := c.db.UpdateComment(ctx, db.UpdateCommentParams{ID: id, VideoID: videoID, Content: content})
	if err != nil {
		return models.Comment{}, models.IdentifyDbError(err).AddParams(fmt.Sprintf("videoID: %v, id: %v", videoID, id))
	}
	return c.Get(ctx, videoID, id)
}

func (c *comment) Delete(ctx context.Context, videoID string, id int64) (models.Message, error) {
	if err := c.db.DeleteComment(ctx, db.DeleteCommentParams{ID: id, VideoID: videoID}); err != nil {
		return models.Message{}, models.IdentifyDbError(err).AddParams(fmt.Sprintf("videoID: %v, id: %v", videoID, id))
	}
	return models.Message{Message: "deleted comment"}, nil
}
