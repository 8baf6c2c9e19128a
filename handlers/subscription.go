package handlers

import (
	"github.com/gin-gonic/gin"

	"video-sharing/models"
	"video-sharing/search"
	"video-sharing/services"
)

type Subscription interface {
	List(c *gin.Context, q models.PageQuery)
	Feed(c *gin.Context, q models.PageQuery)
	Subscribe(c *gin.Context)
	Unsubscribe(c *gin.Context)
}

type subscription struct {
	subscriptionService services.SubscriptionService
}

func NewSubscription(ss services.SubscriptionService) Subscription {
	return &subscription{subscriptionService: ss}
}

// @Summary List subscribed channels
// @Tags subscriptions
// @Produce  json
// @Success 200 {array} models.PublicUser
// @Router /v1/subscriptions [get]
// @Security BearerAuth
func (s *subscription) List(c *gin.Context, q models.PageQuery) {
	uid, err := principal(c)
	if err != nil {
		fail(c, err)
		return
	}
	channels, err := s.subscriptionService.List(c.Request.Context(), uid, search.ParsePage(q.Offset, q.Limit))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, channels)
}

// @Summary Videos of subscribed channels
// @Tags subscriptions
// @Produce  json
// @Success 200 {array} models.Video
// @Router /v1/subscriptions/videos [get]
// @Security BearerAuth
func (s *subscription) Feed(c *gin.Context, q models.PageQuery) {
	uid, err := principal(c)
	if err != nil {
		fail(c, err)
		return
	}
	videos, err := s.subscriptionService.Feed(c.Request.Context(), uid, search.ParsePage(q.Offset, q.Limit))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, videos)
}

func (s *subscription) Subscribe(c *gin.Context) {
	uid, err := principal(c)
	if err != nil {
		fail(c, err)
		return
	}
	msg, err := s.subscriptionService.Subscribe(c.Request.Context(), uid, c.Param("username"))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, msg)
}

func (s *subscription) Unsubscribe(c *gin.Context) {
	uid, err := principal(c)
	if err != nil {
		fail(c, err)
		return
	}
	msg, err := s.subscriptionService.Unsubscribe(c.Request.Context(), uid, c.Param("username"))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, msg)
}
