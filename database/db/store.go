package db

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"video-sharing/search"
)

// Store is everything the services need from the database.
type Store interface {
	Querier
	SearchVideos(ctx context.Context, spec search.Spec) ([]GetVideoRow, error)
	SearchUsers(ctx context.Context, spec search.Spec) ([]GetChannelRow, error)
	ListWatchedVideos(ctx context.Context, userID uuid.UUID, page search.Page) ([]GetVideoRow, error)
	// ExecTx runs fn inside a transaction; fn's error rolls it back.
	ExecTx(ctx context.Context, fn func(Querier) error) error
}

type SQLStore struct {
	*Queries
	pool *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) Store {
	return &SQLStore{
		Queries: New(pool),
		pool:    pool,
	}
}

func (s *SQLStore) ExecTx(ctx context.Context, fn func(Querier) error) error {
	return pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		return fn(s.WithTx(tx))
	})
}

func (s *SQLStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}
