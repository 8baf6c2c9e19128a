package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"video-sharing/database/db"
	"video-sharing/models"
	"video-sharing/search"
)

type SubscriptionService interface {
	List(ctx context.Context, uid uuid.UUID, page search.Page) ([]models.PublicUser, error)
	Feed(ctx context.Context, uid uuid.UUID, page search.Page) ([]models.Video, error)
	Subscribe(ctx context.Context, uid uuid.UUID, username string) (models.Message, error)
	Unsubscribe(ctx context.Context, uid uuid.UUID, username string) (models.Message, error)
}

type subscription struct {
	db    db.Store
	store StaticStore
}

func NewSubscription(q db.Store, static StaticStore) SubscriptionService {
	return &subscription{db: q, store: static}
}

func (s *subscription) List(ctx context.Context, uid uuid.UUID, page search.Page) ([]models.PublicUser, error) {
	rows, err := s.db.ListSubscriptions(ctx, db.ListSubscriptionsParams{
		SubscriberID: uid,
		Limit:        int32(page.Limit),
		Offset:       int32(page.Offset),
	})
	if err != nil {
		return nil, models.IdentifyDbError(err).AddParams(fmt.Sprintf("uid: %v", uid))
	}
	out := make([]models.PublicUser, 0, len(rows))
	for _, r := range rows {
		out = append(out, convertChannel(db.GetChannelRow(r)))
	}
	return out, nil
}

func (s *subscription) Feed(ctx context.Context, uid uuid.UUID, page search.Page) ([]models.Video, error) {
	rows, err := s.db.SearchVideos(ctx, search.SubscriptionFeed(uid, page))
	if err != nil {
		return nil, models.IdentifyDbError(err).AddParams(fmt.Sprintf("uid: %v", uid))
	}
	return convertVideos(rows, s.store), nil
}

func (s *subscription) channel(ctx context.Context, uid uuid.UUID, username string) (uuid.UUID, error) {
	channel, err := s.db.GetUserByUsername(ctx, username)
	if err != nil {
		return uuid.Nil, models.IdentifyDbError(err).AddParams(fmt.Sprintf("username: %v", username))
	}
	if channel.ID == uid {
		return uuid.Nil, models.ErrInvalidParameter().WithDescription("cannot subscribe to yourself").AddParams(username)
	}
	return channel.ID, nil
}

func (s *subscription) Subscribe(ctx context.Context, uid uuid.UUID, username string) (models.Message, error) {
	channelID, err := s.channel(ctx, uid, username)
	if err != nil {
		return models.Message{}, err
	}
	if err := s.db.Subscribe(ctx, db.SubscribeParams{SubscriberID: uid, ChannelID: channelID}); err != nil {
		return models.Message{}, models.IdentifyDbError(err).AddParams(fmt.Sprintf("uid: %v, username: %v", uid, username))
	}
	return models.Message{Message: "subscribed"}, nil
}

func (s *subscription) Unsubscribe(ctx context.Context, uid uuid.UUID, username string) (models.Message, error) {
	channelID, err := s.channel(ctx, uid, username)
	if err != nil {
		return models.Message{}, err
	}
	if _, err := s.db.Unsubscribe(ctx, db.UnsubscribeParams{SubscriberID: uid, ChannelID: channelID}); err != nil {
		return models.Message{}, models.IdentifyDbError(err).AddParams(fmt.Sprintf("uid: %v, username: %v", uid, username))
	}
	return models.Message{Message: "unsubscribed"}, nil
}
