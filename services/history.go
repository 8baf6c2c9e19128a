package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"video-sharing/database/db"
	"video-sharing/models"
	"video-sharing/search"
)

type HistoryService interface {
	List(ctx context.Context, uid uuid.UUID, page search.Page) ([]models.Video, error)
	Clear(ctx context.Context, uid uuid.UUID) (models.Message, error)
}

type history struct {
	db    db.Store
	store StaticStore
}

func NewHistory(q db.Store, static StaticStore) HistoryService {
	return &history{db: q, store: static}
}

func (h *history) List(ctx context.Context, uid uuid.UUID, page search.Page) ([]models.Video, error) {
	rows, err := h.db.ListWatchedVideos(ctx, uid, page)
	if err != nil {
		return nil, models.IdentifyDbError(err).AddParams(fmt.Sprintf("uid: %v", uid))
	}
	return convertVideos(rows, h.store), nil
}

func (h *history) Clear(ctx context.Context, uid uuid.UUID) (models.Message, error) {
	if _, err := h.db.ClearHistory(ctx, uid); err != nil {
		return models.Message{}, models.IdentifyDbError(err).AddParams(fmt.Sprintf("uid: %v", uid))
	}
	return models.Message{Message: "deleted histories"}, nil
}
