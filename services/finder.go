package services

import (
	"context"
	"fmt"
	"strconv"

	"video-sharing/database/db"
	"video-sharing/models"
)

// Finder counts the rows an existence guard is looking for.
type Finder interface {
	Count(ctx context.Context, kind models.EntityKind, key models.LookupKey) (int64, error)
}

type finder struct {
	db db.Querier
}

func NewFinder(q db.Querier) Finder {
	return &finder{db: q}
}

func (f *finder) Count(ctx context.Context, kind models.EntityKind, key models.LookupKey) (int64, error) {
	var (
		n   int64
		err error
	)
	switch kind {
	case models.EntityVideo:
		n, err = f.db.CountVideos(ctx, key.ID)
	case models.EntityUser:
		n, err = f.db.CountUsersByUsername(ctx, key.ID)
	case models.EntityComment:
		id, perr := strconv.ParseInt(key.ID, 10, 64)
		if perr != nil {
			return 0, nil
		}
		n, err = f.db.CountCommentsInVideo(ctx, db.CountCommentsInVideoParams{ID: id, VideoID: key.ParentID})
	default:
		return 0, models.Internal("unknown entity kind", fmt.Errorf("entity kind %q", kind))
	}
	if err != nil {
		return 0, models.IdentifyDbError(err).AddParams(fmt.Sprintf("kind: %v, key: %v", kind, key))
	}
	return n, nil
}
