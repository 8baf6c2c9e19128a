package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"video-sharing/database/db"
	"video-sharing/models"
)

const (
	ReactionLike    = "like"
	ReactionDislike = "dislike"
)

type ReactionService interface {
	ReactVideo(ctx context.Context, videoID string, uid uuid.UUID, reaction string) (models.Message, error)
	UnreactVideo(ctx context.Context, videoID string, uid uuid.UUID) (models.Message, error)
	ReactComment(ctx context.Context, commentID int64, uid uuid.UUID, reaction string) (models.Message, error)
	UnreactComment(ctx context.Context, commentID int64, uid uuid.UUID) (models.Message, error)
}

type reaction struct {
	db db.Querier
}

func NewReaction(q db.Querier) ReactionService {
	return &reaction{db: q}
}

func reactionMessage(like bool) models.Message {
	if like {
		return models.Message{Message: "liked"}
	}
	return models.Message{Message: "disliked"}
}

func (r *reaction) ReactVideo(ctx context.Context, videoID string, uid uuid.UUID, kind string) (models.Message, error) {
	like := kind == ReactionLike
	err := r.db.UpsertVideoReaction(ctx, db.UpsertVideoReactionParams{VideoID: videoID, UserID: uid, Like: like})
	if err != nil {
		return models.Message{}, models.IdentifyDbError(err).AddParams(fmt.Sprintf("videoID: %v, uid: %v", videoID, uid))
	}
	return reactionMessage(like), nil
}

func (r *reaction) UnreactVideo(ctx context.Context, videoID string, uid uuid.UUID) (models.Message, error) {
	_, err := r.db.DeleteVideoReaction(ctx, db.DeleteVideoReactionParams{VideoID: videoID, UserID: uid})
	if err != nil {
		return models.Message{}, models.IdentifyDbError(err).AddParams(fmt.Sprintf("videoID: %v, uid: %v", videoID, uid))
	}
	return models.Message{Message: "deleted reaction"}, nil
}

func (r *reaction) ReactComment(ctx context.Context, commentID int64, uid uuid.UUID, kind string) (models.Message, error) {
	like := kind == ReactionLike
	err := r.db.UpsertCommentReaction(ctx, db.UpsertCommentReactionParams{CommentID: commentID, UserID: uid, Like: like})
	if err != nil {
		return models.Message{}, models.IdentifyDbError(err).AddParams(fmt.Sprintf("commentID: %v, uid: %v", commentID, uid))
	}
	return reactionMessage(like), nil
}

func (r *reaction) UnreactComment(ctx context.Context, commentID int64, uid uuid.UUID) (models.Message, error) {
	_, err := r.db.DeleteCommentReaction(ctx, db.DeleteCommentReactionParams{CommentID: commentID, UserID: uid})
	if err != nil {
		return models.Message{}, models.IdentifyDbError(err).AddParams(fmt.Sprintf("commentID: %v, uid: %v", commentID, uid))
	}
	return models.Message{Message: "deleted reaction"}, nil
}
