package services

import (
	"context"
	"fmt"

	"video-sharing/database/db"
	"video-sharing/models"
	"video-sharing/search"
	"video-sharing/validation"
)

// SearchService runs video and user searches. Queries must already have
// passed their validation rules.
type SearchService interface {
	Videos(ctx context.Context, query models.SearchVideosQuery) ([]models.Video, error)
	Users(ctx context.Context, query models.SearchUsersQuery) ([]models.PublicUser, error)
}

type searcher struct {
	db    db.Store
	store StaticStore
}

func NewSearch(q db.Store, static StaticStore) SearchService {
	return &searcher{db: q, store: static}
}

// VideoSpec shapes a validated video query. min_duration caps the duration
// and max_upload_date sets the earliest upload date.
func VideoSpec(q models.SearchVideosQuery) search.Spec {
	f := search.VideoFilters{Category: q.Category}
	if q.Q != nil {
		f.Term = *q.Q
	}
	if q.MinDuration != nil {
		if n, ok := validation.ParseNumber(*q.MinDuration); ok {
			f.MaxDuration = &n
		}
	}
	if q.MaxUploadDate != nil {
		if t, ok := validation.ParseDate(*q.MaxUploadDate); ok {
			f.UploadedSince = &t
		}
	}
	return search.Videos(f, search.ParseSort(q.Sort), search.ParsePage(q.Offset, q.Limit))
}

func UserSpec(q models.SearchUsersQuery) search.Spec {
	var term string
	if q.Q != nil {
		term = *q.Q
	}
	return search.Users(term, search.ParsePage(q.Offset, q.Limit))
}

func (s *searcher) Videos(ctx context.Context, q models.SearchVideosQuery) ([]models.Video, error) {
	rows, err := s.db.SearchVideos(ctx, VideoSpec(q))
	if err != nil {
		return nil, models.IdentifyDbError(err).AddParams(fmt.Sprintf("query: %+v", q))
	}
	return convertVideos(rows, s.store), nil
}

func (s *searcher) Users(ctx context.Context, q models.SearchUsersQuery) ([]models.PublicUser, error) {
	rows, err := s.db.SearchUsers(ctx, UserSpec(q))
	if err != nil {
		return nil, models.IdentifyDbError(err).AddParams(fmt.Sprintf("query: %+v", q))
	}
	return convertChannels(rows), nil
}
